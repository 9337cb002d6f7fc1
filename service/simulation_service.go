package service

import "futureself/domain"

// SimulationService composes the three projectors into one projection run.
type SimulationService struct {
	health  *HealthService
	climate *ClimateService
	finance *FinanceService
}

func NewSimulationService() *SimulationService {
	return &SimulationService{
		health:  NewHealthService(),
		climate: NewClimateService(),
		finance: NewFinanceService(),
	}
}

// Run projects all three dimensions from one snapshot of inputs. Pure and
// deterministic: the same inputs always produce identical results.
func (s *SimulationService) Run(inputs domain.UserInputs) domain.ProjectionResults {
	return domain.ProjectionResults{
		Health:  s.health.Project(inputs),
		Climate: s.climate.Project(inputs),
		Finance: s.finance.Project(inputs),
	}
}
