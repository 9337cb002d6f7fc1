package repository

import (
	"database/sql"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"futureself/domain"
)

// ShareRepositorySQLite is a durable implementation of ShareRepository.
type ShareRepositorySQLite struct {
	db *sql.DB
}

// NewShareRepositorySQLite creates a shared-result repository over an open
// SQLite handle (see OpenSQLite).
func NewShareRepositorySQLite(db *sql.DB) *ShareRepositorySQLite {
	return &ShareRepositorySQLite{db: db}
}

// Save stores the shared result under its id.
func (r *ShareRepositorySQLite) Save(result domain.SharedResult) error {
	inputs, err := json.Marshal(result.Inputs)
	if err != nil {
		return fmt.Errorf("marshal inputs: %w", err)
	}
	results, err := json.Marshal(result.Results)
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	_, err = r.db.Exec(
		`INSERT INTO shared_results (id, inputs, results, ai_story, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		result.ID, string(inputs), string(results), result.AiStory,
		toMillis(result.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert shared result: %w", err)
	}
	return nil
}

// GetByID returns the shared result stored under the id.
func (r *ShareRepositorySQLite) GetByID(id string) (domain.SharedResult, error) {
	row := r.db.QueryRow(
		`SELECT id, inputs, results, ai_story, created_at
		 FROM shared_results WHERE id = ?`, id,
	)
	var result domain.SharedResult
	var inputs, results string
	var createdAt int64
	err := row.Scan(&result.ID, &inputs, &results, &result.AiStory, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.SharedResult{}, fmt.Errorf("%w: shared result %s", ErrNotFound, id)
	}
	if err != nil {
		return domain.SharedResult{}, fmt.Errorf("get shared result: %w", err)
	}
	if err := json.Unmarshal([]byte(inputs), &result.Inputs); err != nil {
		return domain.SharedResult{}, fmt.Errorf("unmarshal inputs: %w", err)
	}
	if err := json.Unmarshal([]byte(results), &result.Results); err != nil {
		return domain.SharedResult{}, fmt.Errorf("unmarshal results: %w", err)
	}
	result.CreatedAt = fromMillis(createdAt)
	return result, nil
}
