// Package health implements the assessment domain: the submitted profile,
// the derived metrics, and the advisory rules.
package health

// Enumerated form values. They are stored as-is in the database and double
// as translation keys for display.
type (
	Gender       string
	Activity     string
	YesNo        string
	Disturbance  string
	MentalHealth string
	Habit        string
	OilyFood     string
	Regularity   string
	Pregnancy    string
)

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"

	ActivityLow      Activity = "low"
	ActivityModerate Activity = "moderate"
	ActivityHigh     Activity = "high"

	Yes YesNo = "yes"
	No  YesNo = "no"

	DisturbanceNone        Disturbance = "none"
	DisturbanceInsomnia    Disturbance = "insomnia"
	DisturbanceWakingTired Disturbance = "waking_tired"

	MentalUnset    MentalHealth = ""
	MentalGood     MentalHealth = "good"
	MentalModerate MentalHealth = "moderate"
	MentalPoor     MentalHealth = "poor"

	HabitLow      Habit = "low"
	HabitModerate Habit = "moderate"
	HabitHigh     Habit = "high"

	OilyRarely    OilyFood = "rarely"
	OilySometimes OilyFood = "sometimes"
	OilyOften     OilyFood = "often"

	RegularityRegular   Regularity = "regular"
	RegularityIrregular Regularity = "irregular"

	PregnancyYes Pregnancy = "has_pregnancy"
	PregnancyNo  Pregnancy = "no_pregnancy"
)

// FemaleDetails carries the female-only questions. All three are optional
// on the form.
type FemaleDetails struct {
	MenstrualRegularity Regularity
	PregnancyHistory    Pregnancy
	ContraceptiveUse    string
}

// Profile is a validated assessment submission. Female is non-nil exactly
// when Gender is GenderFemale.
type Profile struct {
	Weight            float64
	Height            float64
	Age               int
	Gender            Gender
	Activity          Activity
	ChronicDiseases   YesNo
	SleepHours        float64
	SleepConsistency  YesNo
	SleepDisturbances Disturbance
	SubstanceUse      YesNo
	MentalHealth      MentalHealth
	WaterHabit        Habit
	FruitVegIntake    Habit
	OilyFoodIntake    OilyFood
	Email             string
	Female            *FemaleDetails
}
