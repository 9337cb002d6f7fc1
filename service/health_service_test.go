package service

import (
	"testing"

	"futureself/domain"
)

func TestProjectHealth_OptimalLifestyle(t *testing.T) {
	s := NewHealthService()

	result := s.Project(domain.UserInputs{
		SleepHours:        8,
		DietType:          domain.DietVegan,
		ExerciseFrequency: domain.ExerciseDaily,
		ScreenTime:        4,
	})

	if result.LifeExpectancyChange != 7.0 {
		t.Errorf("expected life expectancy change 7.0, got %v", result.LifeExpectancyChange)
	}
	if result.HealthyYearsGained != 9.0 {
		t.Errorf("expected healthy years gained 9.0, got %v", result.HealthyYearsGained)
	}
	if len(result.RiskFactors) != 0 {
		t.Errorf("expected no risk factors, got %v", result.RiskFactors)
	}
	if len(result.Benefits) != 4 {
		t.Fatalf("expected 4 benefits, got %v", result.Benefits)
	}
	// Evaluation order: sleep, diet, exercise, screen.
	if result.Benefits[0] != "Optimal sleep supports longevity" {
		t.Errorf("unexpected first benefit: %q", result.Benefits[0])
	}
	if result.Benefits[3] != "Moderate screen time supports work-life balance" {
		t.Errorf("unexpected last benefit: %q", result.Benefits[3])
	}
}

func TestProjectHealth_HighRiskLifestyle(t *testing.T) {
	s := NewHealthService()

	result := s.Project(domain.UserInputs{
		SleepHours:        5,
		DietType:          domain.DietHeavyMeat,
		ExerciseFrequency: domain.ExerciseNone,
		ScreenTime:        12,
	})

	if result.LifeExpectancyChange != -7.0 {
		t.Errorf("expected life expectancy change -7.0, got %v", result.LifeExpectancyChange)
	}
	if result.HealthyYearsGained != 0 {
		t.Errorf("healthy years gained must be clamped at 0, got %v", result.HealthyYearsGained)
	}
	if len(result.RiskFactors) != 4 {
		t.Errorf("expected 4 risk factors, got %v", result.RiskFactors)
	}
	if len(result.Benefits) != 0 {
		t.Errorf("expected no benefits, got %v", result.Benefits)
	}
}

func TestProjectHealth_SleepBoundaries(t *testing.T) {
	s := NewHealthService()

	cases := []struct {
		name        string
		sleepHours  float64
		wantChange  float64
		wantMessage bool
	}{
		{"exactly 7 is optimal", 7.0, 1.5, true},
		{"exactly 9 is optimal", 9.0, 1.5, true},
		{"exactly 6 is neutral", 6.0, 0, false},
		{"exactly 10 is neutral", 10.0, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Neutral screen time so only the sleep rule can fire.
			result := s.Project(domain.UserInputs{SleepHours: tc.sleepHours, ScreenTime: 7})

			if result.LifeExpectancyChange != tc.wantChange {
				t.Errorf("sleep %v: expected change %v, got %v",
					tc.sleepHours, tc.wantChange, result.LifeExpectancyChange)
			}
			gotMessage := len(result.Benefits)+len(result.RiskFactors) > 0
			if gotMessage != tc.wantMessage {
				t.Errorf("sleep %v: expected message=%v, benefits=%v risks=%v",
					tc.sleepHours, tc.wantMessage, result.Benefits, result.RiskFactors)
			}
		})
	}
}

func TestProjectHealth_UnknownEnumsContributeNothing(t *testing.T) {
	s := NewHealthService()

	result := s.Project(domain.UserInputs{
		SleepHours:        6.5, // neutral band
		DietType:          "pescatarian",
		ExerciseFrequency: "sometimes",
		ScreenTime:        7, // neutral band
	})

	if result.LifeExpectancyChange != 0 {
		t.Errorf("expected zero change, got %v", result.LifeExpectancyChange)
	}
	if result.HealthyYearsGained != 0 {
		t.Errorf("expected zero healthy years, got %v", result.HealthyYearsGained)
	}
	if len(result.RiskFactors) != 0 || len(result.Benefits) != 0 {
		t.Errorf("expected no messages, got risks=%v benefits=%v",
			result.RiskFactors, result.Benefits)
	}
}

func TestProjectHealth_RoundsToOneDecimal(t *testing.T) {
	s := NewHealthService()

	// Optimal sleep (+1.5) and 1-2x exercise (+1) plus low screen time (+0.5).
	result := s.Project(domain.UserInputs{
		SleepHours:        7.5,
		ExerciseFrequency: domain.ExerciseOneTwo,
		ScreenTime:        2,
	})

	if result.LifeExpectancyChange != 3.0 {
		t.Errorf("expected 3.0, got %v", result.LifeExpectancyChange)
	}
	if result.HealthyYearsGained != 3.0 {
		t.Errorf("expected 3.0 healthy years, got %v", result.HealthyYearsGained)
	}
}
