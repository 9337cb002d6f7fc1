package repository

import (
	"fmt"
	"sync"

	"futureself/domain"
)

// ShareRepositoryMemory is an in-memory implementation of ShareRepository.
// Safe for concurrent use.
type ShareRepositoryMemory struct {
	mu   sync.Mutex
	data map[string]domain.SharedResult
}

// NewShareRepositoryMemory creates a new in-memory shared-result repository.
func NewShareRepositoryMemory() *ShareRepositoryMemory {
	return &ShareRepositoryMemory{
		data: make(map[string]domain.SharedResult),
	}
}

// Save stores the shared result under its id.
func (r *ShareRepositoryMemory) Save(result domain.SharedResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[result.ID] = result
	return nil
}

// GetByID returns the shared result stored under the id.
func (r *ShareRepositoryMemory) GetByID(id string) (domain.SharedResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result, ok := r.data[id]
	if !ok {
		return domain.SharedResult{}, fmt.Errorf("%w: shared result %s", ErrNotFound, id)
	}
	return result, nil
}
