package domain

// DietType classifies the user's eating habits. Values outside the known
// set contribute nothing to any projection.
type DietType string

const (
	DietVegan      DietType = "vegan"
	DietVegetarian DietType = "vegetarian"
	DietOmnivore   DietType = "omnivore"
	DietHeavyMeat  DietType = "heavy-meat"
)

// ExerciseFrequency classifies weekly exercise habits.
type ExerciseFrequency string

const (
	ExerciseDaily     ExerciseFrequency = "daily"
	ExerciseThreeFive ExerciseFrequency = "3-5x"
	ExerciseOneTwo    ExerciseFrequency = "1-2x"
	ExerciseNone      ExerciseFrequency = "none"
)

// CommuteType classifies the user's primary commute mode.
type CommuteType string

const (
	CommuteCar           CommuteType = "car"
	CommutePublicTransit CommuteType = "public-transit"
	CommuteBike          CommuteType = "bike"
	CommuteWalk          CommuteType = "walk"
	CommuteRemote        CommuteType = "remote"
)

// UserInputs is the lifestyle snapshot a projection is computed from.
// Immutable per simulation run.
type UserInputs struct {
	SleepHours        float64           `json:"sleepHours"`
	DietType          DietType          `json:"dietType"`
	ExerciseFrequency ExerciseFrequency `json:"exerciseFrequency"`
	CommuteType       CommuteType       `json:"commuteType"`
	ScreenTime        float64           `json:"screenTime"`
	MonthlySavings    float64           `json:"monthlySavings"`
}
