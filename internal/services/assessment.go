// Package services holds the business operations between the handlers
// and the database.
package services

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/healthtotech/healthbuddy/internal/health"
	"github.com/healthtotech/healthbuddy/internal/models"
)

const timestampLayout = "2006-01-02 15:04:05"

// AssessmentService turns a validated profile into a persisted record
// with its derived metrics and tips.
type AssessmentService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewAssessmentService(db *gorm.DB) *AssessmentService {
	return &AssessmentService{db: db, now: time.Now}
}

// AssessmentResult is what the report page renders.
type AssessmentResult struct {
	BMI         float64  `json:"bmi"`
	WaterIntake float64  `json:"water_intake"`
	Tips        []string `json:"health_tips"`
	Record      *models.HealthRecord
}

// Submit computes BMI, water intake and the localized tips for p, stores
// the record and returns the result.
func (s *AssessmentService) Submit(p *health.Profile, lang string) (*AssessmentResult, error) {
	bmi := health.BMI(p.Weight, p.Height)
	water := health.WaterIntakeLiters(p.Weight, p.Activity, p.WaterHabit)
	tips := health.Advise(p, lang)

	rec := &models.HealthRecord{
		Weight:            p.Weight,
		Height:            p.Height,
		Age:               p.Age,
		Gender:            string(p.Gender),
		ActivityLevel:     string(p.Activity),
		ChronicDiseases:   string(p.ChronicDiseases),
		SleepHours:        p.SleepHours,
		SleepConsistency:  string(p.SleepConsistency),
		SleepDisturbances: string(p.SleepDisturbances),
		SubstanceUse:      string(p.SubstanceUse),
		MentalHealth:      string(p.MentalHealth),
		WaterHabit:        string(p.WaterHabit),
		FruitVegIntake:    string(p.FruitVegIntake),
		OilyFoodIntake:    string(p.OilyFoodIntake),
		Email:             p.Email,
		BMI:               bmi,
		WaterIntake:       water,
		HealthTips:        strings.Join(tips, ";"),
		Timestamp:         s.now().Format(timestampLayout),
	}
	if f := p.Female; f != nil {
		rec.MenstrualRegularity = string(f.MenstrualRegularity)
		rec.PregnancyHistory = string(f.PregnancyHistory)
		rec.ContraceptiveUse = f.ContraceptiveUse
	}

	if err := s.db.Create(rec).Error; err != nil {
		return nil, fmt.Errorf("save health record: %w", err)
	}
	return &AssessmentResult{BMI: bmi, WaterIntake: water, Tips: tips, Record: rec}, nil
}
