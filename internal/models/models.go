// Package models defines the persisted entities.
package models

import "gorm.io/gorm"

// HealthRecord is one completed self-assessment. Derived values (BMI,
// water intake, tips) are stored alongside the inputs so the dashboard
// and exports do not need to re-run the advisory engine.
type HealthRecord struct {
	gorm.Model
	Weight              float64 `json:"weight"`
	Height              float64 `json:"height"`
	Age                 int     `json:"age"`
	Gender              string  `json:"gender"`
	ActivityLevel       string  `json:"activity_level" gorm:"column:activity_level"`
	ChronicDiseases     string  `json:"chronic_diseases"`
	SleepHours          float64 `json:"sleep_hours"`
	SleepConsistency    string  `json:"sleep_consistency"`
	SleepDisturbances   string  `json:"sleep_disturbances"`
	SubstanceUse        string  `json:"substance_use"`
	MentalHealth        string  `json:"mental_health"`
	WaterHabit          string  `json:"water_habit"`
	FruitVegIntake      string  `json:"fruit_veg_intake"`
	OilyFoodIntake      string  `json:"oily_food_intake"`
	MenstrualRegularity string  `json:"menstrual_regularity"`
	PregnancyHistory    string  `json:"pregnancy_history"`
	ContraceptiveUse    string  `json:"contraceptive_use"`
	Email               string  `json:"email"`
	BMI                 float64 `json:"bmi"`
	WaterIntake         float64 `json:"water_intake"`
	HealthTips          string  `json:"health_tips"`
	// Timestamp is the submission time formatted "2006-01-02 15:04:05";
	// the dashboard date filter matches on its date prefix.
	Timestamp string `json:"timestamp"`
}

func (HealthRecord) TableName() string { return "health_records" }

// Operator is a dashboard login.
type Operator struct {
	gorm.Model
	Username     string `json:"username" gorm:"uniqueIndex;size:64"`
	PasswordHash string `json:"-"`
}

func (Operator) TableName() string { return "operators" }
