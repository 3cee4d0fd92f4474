package health

import "math"

// BMIBracket is the coarse BMI classification used by the rules and the
// dashboard distribution.
type BMIBracket string

const (
	BracketUnderweight BMIBracket = "underweight"
	BracketHealthy     BMIBracket = "healthy"
	BracketOverweight  BMIBracket = "overweight"
	BracketObese       BMIBracket = "obese"
)

func round2(x float64) float64 { return math.Round(x*100) / 100 }

// BMI computes body mass index from weight in kg and height in cm,
// rounded to two decimals.
func BMI(weightKg, heightCm float64) float64 {
	m := heightCm / 100
	return round2(weightKg / (m * m))
}

// Bracket classifies a BMI value. Boundaries are half-open: exactly 18.5
// is healthy, exactly 25 is overweight, exactly 30 is obese.
func Bracket(bmi float64) BMIBracket {
	switch {
	case bmi < 18.5:
		return BracketUnderweight
	case bmi < 25:
		return BracketHealthy
	case bmi < 30:
		return BracketOverweight
	default:
		return BracketObese
	}
}

// activityBonus is the extra ml per kg of body weight for each activity level.
var activityBonus = map[Activity]float64{
	ActivityLow:      0,
	ActivityModerate: 2.5,
	ActivityHigh:     5,
}

// WaterIntakeLiters recommends a daily water intake: 30 ml/kg plus an
// activity bonus, with an extra half litre for people who report drinking
// little water. Rounded to two decimals.
func WaterIntakeLiters(weightKg float64, activity Activity, waterHabit Habit) float64 {
	liters := weightKg * (30 + activityBonus[activity]) / 1000
	if waterHabit == HabitLow {
		liters += 0.5
	}
	return round2(liters)
}
