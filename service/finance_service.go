package service

import (
	"math"

	"futureself/domain"
)

// FinanceService projects savings growth with monthly compounding over the
// 25-year horizon.
type FinanceService struct{}

func NewFinanceService() *FinanceService {
	return &FinanceService{}
}

// Project computes the future value of a monthly contribution at the fixed
// annual return rate. FutureValue, TotalContributions and InterestEarned are
// each rounded to whole currency units independently, so their sum may be
// off by one unit. MonthlyGrowth samples the growth curve at months 1-12 and
// every 12-month boundary up to month 300.
func (s *FinanceService) Project(inputs domain.UserInputs) domain.FinanceResult {
	monthly := inputs.MonthlySavings
	monthlyRate := AnnualReturnRate / 12

	futureValue := futureValueAt(monthly, monthlyRate, ProjectionMonths)
	totalContributions := monthly * ProjectionMonths
	interestEarned := futureValue - totalContributions

	monthlyGrowth := []int{}
	for month := 1; month <= ProjectionMonths; month++ {
		if month <= 12 || month%12 == 0 {
			value := futureValueAt(monthly, monthlyRate, month)
			monthlyGrowth = append(monthlyGrowth, int(math.Round(value)))
		}
	}

	return domain.FinanceResult{
		FutureValue:        int(math.Round(futureValue)),
		TotalContributions: int(math.Round(totalContributions)),
		InterestEarned:     int(math.Round(interestEarned)),
		MonthlyGrowth:      monthlyGrowth,
	}
}

// futureValueAt is the future value of an ordinary annuity after the given
// number of months. A zero rate falls back to linear growth to avoid
// division by zero.
func futureValueAt(monthly, monthlyRate float64, months int) float64 {
	if monthlyRate == 0 {
		return monthly * float64(months)
	}
	return monthly * ((math.Pow(1+monthlyRate, float64(months)) - 1) / monthlyRate)
}
