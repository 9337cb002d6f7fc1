package service

const (
	AnnualReturnRate = 0.05 // nominal annual return on savings
	ProjectionYears  = 25
	ProjectionMonths = ProjectionYears * 12

	// One tree absorbs ~48 lbs (0.024 tons) of CO2 per year.
	TreeAbsorptionTons = 0.024
	// Average annual US carbon footprint in tons of CO2.
	AverageFootprintTons = 16.0
	// Annual tons of CO2 per daily hour of screen time.
	ScreenTimeTonsPerHour = 0.1
)
