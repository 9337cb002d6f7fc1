package service

import (
	"math"

	"futureself/domain"
)

// roundTo1Decimal rounds a float64 to 1 decimal place.
func roundTo1Decimal(value float64) float64 {
	return math.Round(value*10) / 10
}

// HealthService estimates the life-expectancy impact of lifestyle choices,
// based on WHO/CDC research figures.
type HealthService struct{}

func NewHealthService() *HealthService {
	return &HealthService{}
}

// Project evaluates the four health rule groups (sleep, diet, exercise,
// screen time). It is a total function: unrecognized enum values contribute
// nothing and never fail the projection.
func (s *HealthService) Project(inputs domain.UserInputs) domain.HealthResult {
	var lifeExpectancyChange float64
	var healthyYearsGained float64
	riskFactors := []string{}
	benefits := []string{}

	// Sleep (7-9 hours optimal)
	if inputs.SleepHours < 6 {
		lifeExpectancyChange -= 2.5
		riskFactors = append(riskFactors, "Insufficient sleep increases disease risk")
	} else if inputs.SleepHours >= 7 && inputs.SleepHours <= 9 {
		lifeExpectancyChange += 1.5
		healthyYearsGained += 2
		benefits = append(benefits, "Optimal sleep supports longevity")
	} else if inputs.SleepHours > 10 {
		lifeExpectancyChange -= 1
		riskFactors = append(riskFactors, "Excessive sleep may indicate health issues")
	}

	// Diet
	switch inputs.DietType {
	case domain.DietVegan:
		lifeExpectancyChange += 2
		healthyYearsGained += 3
		benefits = append(benefits, "Plant-based diet reduces chronic disease risk")
	case domain.DietVegetarian:
		lifeExpectancyChange += 1.5
		healthyYearsGained += 2
		benefits = append(benefits, "Vegetarian diet supports heart health")
	case domain.DietOmnivore:
		lifeExpectancyChange += 0.5
		healthyYearsGained += 1
		benefits = append(benefits, "Balanced diet maintains good health")
	case domain.DietHeavyMeat:
		lifeExpectancyChange -= 1.5
		riskFactors = append(riskFactors, "High meat consumption increases cardiovascular risk")
	}

	// Exercise
	switch inputs.ExerciseFrequency {
	case domain.ExerciseDaily:
		lifeExpectancyChange += 3
		healthyYearsGained += 4
		benefits = append(benefits, "Daily exercise significantly extends healthy lifespan")
	case domain.ExerciseThreeFive:
		lifeExpectancyChange += 2
		healthyYearsGained += 3
		benefits = append(benefits, "Regular exercise boosts longevity")
	case domain.ExerciseOneTwo:
		lifeExpectancyChange += 1
		healthyYearsGained += 1
		benefits = append(benefits, "Some exercise is better than none")
	case domain.ExerciseNone:
		lifeExpectancyChange -= 2
		riskFactors = append(riskFactors, "Sedentary lifestyle increases mortality risk")
	}

	// Screen time
	if inputs.ScreenTime > 10 {
		lifeExpectancyChange -= 1
		riskFactors = append(riskFactors, "Excessive screen time affects mental and physical health")
	} else if inputs.ScreenTime < 6 {
		lifeExpectancyChange += 0.5
		benefits = append(benefits, "Moderate screen time supports work-life balance")
	}

	return domain.HealthResult{
		LifeExpectancyChange: roundTo1Decimal(lifeExpectancyChange),
		HealthyYearsGained:   math.Max(0, roundTo1Decimal(healthyYearsGained)),
		RiskFactors:          riskFactors,
		Benefits:             benefits,
	}
}
