package repository

import (
	"database/sql"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"futureself/domain"
)

// ScenarioRepositorySQLite is a durable implementation of ScenarioRepository.
// Inputs and results are stored as JSON blobs; timestamps as epoch millis.
type ScenarioRepositorySQLite struct {
	db *sql.DB
}

// NewScenarioRepositorySQLite creates a scenario repository over an open
// SQLite handle (see OpenSQLite).
func NewScenarioRepositorySQLite(db *sql.DB) *ScenarioRepositorySQLite {
	return &ScenarioRepositorySQLite{db: db}
}

// Save stores the scenario under its id.
func (r *ScenarioRepositorySQLite) Save(scenario domain.Scenario) error {
	inputs, err := json.Marshal(scenario.Inputs)
	if err != nil {
		return fmt.Errorf("marshal inputs: %w", err)
	}
	results, err := json.Marshal(scenario.Results)
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	_, err = r.db.Exec(
		`INSERT INTO scenarios (id, name, inputs, results, ai_story, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		scenario.ID, scenario.Name, string(inputs), string(results),
		scenario.AiStory, toMillis(scenario.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert scenario: %w", err)
	}
	return nil
}

// GetByID returns the scenario stored under the id.
func (r *ScenarioRepositorySQLite) GetByID(id string) (domain.Scenario, error) {
	row := r.db.QueryRow(
		`SELECT id, name, inputs, results, ai_story, created_at
		 FROM scenarios WHERE id = ?`, id,
	)
	scenario, err := scanScenario(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Scenario{}, fmt.Errorf("%w: scenario %s", ErrNotFound, id)
	}
	return scenario, err
}

// ListAll returns every scenario, most recently created first. Insert order
// (rowid) breaks timestamp ties.
func (r *ScenarioRepositorySQLite) ListAll() ([]domain.Scenario, error) {
	rows, err := r.db.Query(
		`SELECT id, name, inputs, results, ai_story, created_at
		 FROM scenarios ORDER BY created_at DESC, rowid DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list scenarios: %w", err)
	}
	defer rows.Close()

	scenarios := []domain.Scenario{}
	for rows.Next() {
		scenario, err := scanScenario(rows.Scan)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, scenario)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list scenarios: %w", err)
	}
	return scenarios, nil
}

// Delete removes the scenario and reports whether it existed.
func (r *ScenarioRepositorySQLite) Delete(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM scenarios WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete scenario: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete scenario: %w", err)
	}
	return affected > 0, nil
}

func scanScenario(scan func(dest ...any) error) (domain.Scenario, error) {
	var scenario domain.Scenario
	var inputs, results string
	var createdAt int64
	if err := scan(&scenario.ID, &scenario.Name, &inputs, &results,
		&scenario.AiStory, &createdAt); err != nil {
		return domain.Scenario{}, err
	}
	if err := json.Unmarshal([]byte(inputs), &scenario.Inputs); err != nil {
		return domain.Scenario{}, fmt.Errorf("unmarshal inputs: %w", err)
	}
	if err := json.Unmarshal([]byte(results), &scenario.Results); err != nil {
		return domain.Scenario{}, fmt.Errorf("unmarshal results: %w", err)
	}
	scenario.CreatedAt = fromMillis(createdAt)
	return scenario, nil
}
