package repository

import (
	"fmt"
	"sort"
	"sync"

	"futureself/domain"
)

type scenarioEntry struct {
	scenario domain.Scenario
	seq      uint64 // insertion order, breaks CreatedAt ties
}

// ScenarioRepositoryMemory is an in-memory implementation of
// ScenarioRepository. Safe for concurrent use.
type ScenarioRepositoryMemory struct {
	mu   sync.Mutex
	data map[string]scenarioEntry
	seq  uint64
}

// NewScenarioRepositoryMemory creates a new in-memory scenario repository.
func NewScenarioRepositoryMemory() *ScenarioRepositoryMemory {
	return &ScenarioRepositoryMemory{
		data: make(map[string]scenarioEntry),
	}
}

// Save stores the scenario under its id.
func (r *ScenarioRepositoryMemory) Save(scenario domain.Scenario) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.data[scenario.ID] = scenarioEntry{scenario: scenario, seq: r.seq}
	return nil
}

// GetByID returns the scenario stored under the id.
func (r *ScenarioRepositoryMemory) GetByID(id string) (domain.Scenario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.data[id]
	if !ok {
		return domain.Scenario{}, fmt.Errorf("%w: scenario %s", ErrNotFound, id)
	}
	return entry.scenario, nil
}

// ListAll returns every scenario, most recently created first.
func (r *ScenarioRepositoryMemory) ListAll() ([]domain.Scenario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := make([]scenarioEntry, 0, len(r.data))
	for _, entry := range r.data {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].scenario.CreatedAt.Equal(entries[j].scenario.CreatedAt) {
			return entries[i].scenario.CreatedAt.After(entries[j].scenario.CreatedAt)
		}
		return entries[i].seq > entries[j].seq
	})

	scenarios := make([]domain.Scenario, 0, len(entries))
	for _, entry := range entries {
		scenarios = append(scenarios, entry.scenario)
	}
	return scenarios, nil
}

// Delete removes the scenario and reports whether it existed.
func (r *ScenarioRepositoryMemory) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.data[id]
	if ok {
		delete(r.data, id)
	}
	return ok, nil
}
