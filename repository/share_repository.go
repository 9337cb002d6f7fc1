package repository

import "futureself/domain"

// ShareRepository stores write-once shared result snapshots keyed by their
// id. No update or delete is exposed.
type ShareRepository interface {
	Save(result domain.SharedResult) error
	GetByID(id string) (domain.SharedResult, error)
}
