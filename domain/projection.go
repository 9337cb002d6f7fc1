package domain

// HealthResult is the health slice of a projection.
type HealthResult struct {
	LifeExpectancyChange float64  `json:"lifeExpectancyChange"`
	HealthyYearsGained   float64  `json:"healthyYearsGained"`
	RiskFactors          []string `json:"riskFactors"`
	Benefits             []string `json:"benefits"`
}

// ClimateResult is the climate slice of a projection. CarbonSaved is
// relative to the 16 t/year US-average footprint and may be negative.
type ClimateResult struct {
	AnnualCO2Footprint float64 `json:"annualCO2Footprint"`
	TreesEquivalent    int     `json:"treesEquivalent"`
	CarbonSaved        float64 `json:"carbonSaved"`
	ImpactDescription  string  `json:"impactDescription"`
}

// FinanceResult is the savings-growth slice of a projection. MonthlyGrowth
// holds the first twelve monthly balances and then one balance per year.
type FinanceResult struct {
	FutureValue        int   `json:"futureValue"`
	TotalContributions int   `json:"totalContributions"`
	InterestEarned     int   `json:"interestEarned"`
	MonthlyGrowth      []int `json:"monthlyGrowth"`
}

// ProjectionResults bundles the three projections for one set of inputs.
type ProjectionResults struct {
	Health  HealthResult  `json:"health"`
	Climate ClimateResult `json:"climate"`
	Finance FinanceResult `json:"finance"`
}
