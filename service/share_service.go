package service

import (
	"fmt"
	"log"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"futureself/domain"
	"futureself/repository"
)

// ShareService owns shareable result snapshots. Reads go through the cache
// before hitting the repository; cache failures are never fatal.
type ShareService struct {
	repo  repository.ShareRepository
	cache repository.CacheRepository
}

// NewShareService creates a new ShareService over the given repository and
// cache.
func NewShareService(
	repo repository.ShareRepository,
	cache repository.CacheRepository,
) *ShareService {
	return &ShareService{repo: repo, cache: cache}
}

// Create persists a write-once shared snapshot and returns its generated id.
// The share keyspace is independent from the scenario keyspace.
func (s *ShareService) Create(
	inputs *domain.UserInputs,
	results *domain.ProjectionResults,
	aiStory string,
) (string, error) {
	if inputs == nil {
		return "", fmt.Errorf("%w: inputs are required", repository.ErrValidation)
	}
	if results == nil {
		return "", fmt.Errorf("%w: results are required", repository.ErrValidation)
	}

	result := domain.SharedResult{
		ID:        uuid.New().String(),
		Inputs:    *inputs,
		Results:   *results,
		AiStory:   aiStory,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Save(result); err != nil {
		return "", err
	}
	s.cacheResult(result)
	return result.ID, nil
}

// Get returns the shared result stored under the id, unchanged from
// creation. An unknown id yields repository.ErrNotFound.
func (s *ShareService) Get(id string) (domain.SharedResult, error) {
	if payload, ok := s.cache.Get(shareCacheKey(id)); ok {
		var cached domain.SharedResult
		if err := json.Unmarshal([]byte(payload), &cached); err == nil {
			return cached, nil
		}
		log.Printf("Warning: discarding unreadable cache entry for share %s", id)
	}

	result, err := s.repo.GetByID(id)
	if err != nil {
		return domain.SharedResult{}, err
	}
	s.cacheResult(result)
	return result, nil
}

// cacheResult is best-effort; a cache miss only costs a repository read.
func (s *ShareService) cacheResult(result domain.SharedResult) {
	payload, err := json.Marshal(result)
	if err != nil {
		log.Printf("Warning: failed to marshal share %s for cache: %v", result.ID, err)
		return
	}
	if err := s.cache.Set(shareCacheKey(result.ID), string(payload)); err != nil {
		log.Printf("Warning: failed to cache share %s: %v", result.ID, err)
	}
}

func shareCacheKey(id string) string {
	return "share:" + id
}
