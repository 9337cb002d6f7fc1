package repository

import "futureself/domain"

// ScenarioRepository stores named scenarios keyed by their id.
type ScenarioRepository interface {
	Save(scenario domain.Scenario) error
	GetByID(id string) (domain.Scenario, error)
	// ListAll returns every scenario, most recently created first.
	ListAll() ([]domain.Scenario, error)
	// Delete reports whether a scenario existed under the id. Idempotent.
	Delete(id string) (bool, error)
}
