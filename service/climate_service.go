package service

import (
	"math"

	"futureself/domain"
)

// ClimateService estimates the annual carbon footprint of lifestyle choices.
type ClimateService struct{}

func NewClimateService() *ClimateService {
	return &ClimateService{}
}

// Project accumulates the annual CO2 footprint from commute mode, diet and
// screen time, then derives the tree equivalent and the savings against the
// US-average footprint. Total function; unknown enum values contribute zero.
func (s *ClimateService) Project(inputs domain.UserInputs) domain.ClimateResult {
	var footprint float64 // tons CO2 per year

	// Commute (assuming 250 work days per year, 20 miles round trip average)
	switch inputs.CommuteType {
	case domain.CommuteCar:
		footprint = 4.6
	case domain.CommutePublicTransit:
		footprint = 1.2
	case domain.CommuteBike:
		footprint = 0.1 // manufacturing emissions only
	case domain.CommuteWalk:
		footprint = 0.05
	case domain.CommuteRemote:
		footprint = 0.8 // home energy use increase
	}

	// Diet
	switch inputs.DietType {
	case domain.DietHeavyMeat:
		footprint += 3.3
	case domain.DietOmnivore:
		footprint += 2.5
	case domain.DietVegetarian:
		footprint += 1.7
	case domain.DietVegan:
		footprint += 1.5
	}

	// Device usage and electricity
	footprint += inputs.ScreenTime * ScreenTimeTonsPerHour

	// Trees and carbon savings derive from the unrounded footprint.
	treesEquivalent := int(math.Round(footprint / TreeAbsorptionTons))
	carbonSaved := AverageFootprintTons - footprint

	var impactDescription string
	switch {
	case carbonSaved > 5:
		impactDescription = "Excellent! Your choices significantly reduce environmental impact."
	case carbonSaved > 0:
		impactDescription = "Good job! You're below average carbon emissions."
	case carbonSaved > -5:
		impactDescription = "Your footprint is near average. Small changes can make a big difference."
	default:
		impactDescription = "Consider greener alternatives to reduce your environmental impact."
	}

	return domain.ClimateResult{
		AnnualCO2Footprint: roundTo1Decimal(footprint),
		TreesEquivalent:    treesEquivalent,
		CarbonSaved:        roundTo1Decimal(carbonSaved),
		ImpactDescription:  impactDescription,
	}
}
