package repository

import (
	"errors"
	"testing"
	"time"

	"futureself/domain"
)

func TestScenarioRepositoryMemory_ListAllBreaksTimestampTies(t *testing.T) {
	repo := NewScenarioRepositoryMemory()

	// Same CreatedAt for all three: insertion order must decide.
	createdAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for _, id := range []string{"a", "b", "c"} {
		err := repo.Save(domain.Scenario{ID: id, Name: id, CreatedAt: createdAt})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	scenarios, err := repo.ListAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scenarios) != 3 {
		t.Fatalf("expected 3 scenarios, got %d", len(scenarios))
	}
	if scenarios[0].ID != "c" || scenarios[1].ID != "b" || scenarios[2].ID != "a" {
		t.Errorf("expected insertion-order tie-break c, b, a, got %s, %s, %s",
			scenarios[0].ID, scenarios[1].ID, scenarios[2].ID)
	}
}

func TestScenarioRepositoryMemory_ListAllOrdersByCreatedAt(t *testing.T) {
	repo := NewScenarioRepositoryMemory()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	// Inserted oldest-last on purpose.
	_ = repo.Save(domain.Scenario{ID: "newest", CreatedAt: base.Add(2 * time.Hour)})
	_ = repo.Save(domain.Scenario{ID: "oldest", CreatedAt: base})
	_ = repo.Save(domain.Scenario{ID: "middle", CreatedAt: base.Add(time.Hour)})

	scenarios, err := repo.ListAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scenarios[0].ID != "newest" || scenarios[1].ID != "middle" || scenarios[2].ID != "oldest" {
		t.Errorf("unexpected order: %s, %s, %s",
			scenarios[0].ID, scenarios[1].ID, scenarios[2].ID)
	}
}

func TestScenarioRepositoryMemory_GetByIDNotFound(t *testing.T) {
	repo := NewScenarioRepositoryMemory()

	_, err := repo.GetByID("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}
