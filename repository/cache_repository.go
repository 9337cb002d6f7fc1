package repository

// CacheRepository is a read-through cache in front of a repository.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
