package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"futureself/domain"
	"futureself/repository"
)

// ScenarioService owns named scenarios: it validates input, assigns ids and
// timestamps, and delegates storage to the injected repository.
type ScenarioService struct {
	repo repository.ScenarioRepository
}

// NewScenarioService creates a new ScenarioService over the given repository.
func NewScenarioService(repo repository.ScenarioRepository) *ScenarioService {
	return &ScenarioService{repo: repo}
}

// Create persists a named scenario and returns its generated id. Ids are
// UUID v4, never caller-supplied and never reused after deletion.
func (s *ScenarioService) Create(
	name string,
	inputs *domain.UserInputs,
	results *domain.ProjectionResults,
	aiStory string,
) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("%w: name is required", repository.ErrValidation)
	}
	if inputs == nil {
		return "", fmt.Errorf("%w: inputs are required", repository.ErrValidation)
	}
	if results == nil {
		return "", fmt.Errorf("%w: results are required", repository.ErrValidation)
	}

	scenario := domain.Scenario{
		ID:        uuid.New().String(),
		Name:      name,
		Inputs:    *inputs,
		Results:   *results,
		AiStory:   aiStory,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Save(scenario); err != nil {
		return "", err
	}
	return scenario.ID, nil
}

// GetByID returns the scenario stored under the id.
func (s *ScenarioService) GetByID(id string) (domain.Scenario, error) {
	return s.repo.GetByID(id)
}

// ListAll returns every scenario, most recently created first.
func (s *ScenarioService) ListAll() ([]domain.Scenario, error) {
	return s.repo.ListAll()
}

// Delete removes the scenario and reports whether it existed. Idempotent.
func (s *ScenarioService) Delete(id string) (bool, error) {
	return s.repo.Delete(id)
}
