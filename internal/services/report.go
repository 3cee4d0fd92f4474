package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/healthtotech/healthbuddy/i18n"
	"github.com/healthtotech/healthbuddy/internal/health"
	"github.com/healthtotech/healthbuddy/internal/mailer"
	"github.com/healthtotech/healthbuddy/internal/models"
)

// Filter narrows the dashboard record set. Zero values mean no filtering;
// unknown gender or activity values and malformed dates are ignored rather
// than rejected.
type Filter struct {
	Date     string // "2006-01-02"
	Gender   string
	Activity string
}

var (
	filterGenders    = map[string]bool{"male": true, "female": true, "other": true}
	filterActivities = map[string]bool{"low": true, "moderate": true, "high": true}
)

// Stats are the dashboard aggregates, computed over the filtered set.
// Distribution is keyed by BMI bracket name.
type Stats struct {
	Count        int64            `json:"count"`
	AvgBMI       float64          `json:"avg_bmi"`
	AvgWater     float64          `json:"avg_water"`
	AvgSleep     float64          `json:"avg_sleep"`
	Distribution map[string]int64 `json:"bmi_distribution"`
}

// ReportService serves the dashboard: filtered listings, aggregates and
// exports.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

func (s *ReportService) query(f Filter) *gorm.DB {
	q := s.db.Model(&models.HealthRecord{})
	if _, err := time.Parse("2006-01-02", f.Date); err == nil {
		// Timestamp is "2006-01-02 15:04:05"; match on its date prefix.
		// Only a strict date passes so LIKE metacharacters never reach
		// the pattern.
		q = q.Where("timestamp LIKE ?", f.Date+" %")
	}
	if filterGenders[f.Gender] {
		q = q.Where("gender = ?", f.Gender)
	}
	if filterActivities[f.Activity] {
		q = q.Where("activity_level = ?", f.Activity)
	}
	return q
}

// Records returns the filtered records in insertion order.
func (s *ReportService) Records(f Filter) ([]models.HealthRecord, error) {
	var recs []models.HealthRecord
	if err := s.query(f).Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list health records: %w", err)
	}
	return recs, nil
}

// Stats aggregates the filtered records. BMI is recomputed from weight
// and height so the distribution stays correct even if stored values
// drift. An empty set yields zeros.
func (s *ReportService) Stats(recs []models.HealthRecord) Stats {
	st := Stats{
		Count: int64(len(recs)),
		Distribution: map[string]int64{
			string(health.BracketUnderweight): 0,
			string(health.BracketHealthy):     0,
			string(health.BracketOverweight):  0,
			string(health.BracketObese):       0,
		},
	}
	if len(recs) == 0 {
		return st
	}
	var sumBMI, sumWater, sumSleep float64
	for _, r := range recs {
		bmi := health.BMI(r.Weight, r.Height)
		sumBMI += bmi
		sumWater += r.WaterIntake
		sumSleep += r.SleepHours
		st.Distribution[string(health.Bracket(bmi))]++
	}
	n := float64(len(recs))
	st.AvgBMI = round2(sumBMI / n)
	st.AvgWater = round2(sumWater / n)
	st.AvgSleep = round2(sumSleep / n)
	return st
}

func round2(x float64) float64 { return math.Round(x*100) / 100 }

var exportHeader = []string{
	"ID", "Weight (kg)", "Height (cm)", "Age", "Gender", "Activity Level",
	"Water Intake (L)", "BMI", "Chronic Diseases", "Sleep Hours",
	"Sleep Consistency", "Sleep Disturbances", "Substance Use",
	"Menstrual Regularity", "Pregnancy History", "Contraceptive Use",
	"Health Tips", "Timestamp",
}

func exportRow(r *models.HealthRecord) []string {
	return []string{
		strconv.FormatUint(uint64(r.ID), 10),
		formatFloat(r.Weight),
		formatFloat(r.Height),
		strconv.Itoa(r.Age),
		r.Gender,
		r.ActivityLevel,
		formatFloat(r.WaterIntake),
		formatFloat(health.BMI(r.Weight, r.Height)),
		r.ChronicDiseases,
		formatFloat(r.SleepHours),
		r.SleepConsistency,
		r.SleepDisturbances,
		r.SubstanceUse,
		r.MenstrualRegularity,
		r.PregnancyHistory,
		r.ContraceptiveUse,
		r.HealthTips,
		r.Timestamp,
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// WriteCSV streams the filtered records as CSV.
func (s *ReportService) WriteCSV(w io.Writer, f Filter) error {
	recs, err := s.Records(f)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for i := range recs {
		if err := cw.Write(exportRow(&recs[i])); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the filtered records as a single-sheet workbook.
func (s *ReportService) WriteXLSX(w io.Writer, f Filter) error {
	recs, err := s.Records(f)
	if err != nil {
		return err
	}
	x := excelize.NewFile()
	const sheet = "Records"
	index, err := x.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	x.SetActiveSheet(index)

	for col, h := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		x.SetCellValue(sheet, cell, h)
	}
	if style, err := x.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		first, _ := excelize.CoordinatesToCellName(1, 1)
		last, _ := excelize.CoordinatesToCellName(len(exportHeader), 1)
		x.SetCellStyle(sheet, first, last, style)
	}
	for i := range recs {
		for col, v := range exportRow(&recs[i]) {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			x.SetCellValue(sheet, cell, v)
		}
	}
	x.SetColWidth(sheet, "A", "A", 6)
	x.SetColWidth(sheet, "Q", "Q", 60)
	x.DeleteSheet("Sheet1")
	return x.Write(w)
}

// EmailReport sends the assessment result to the address on the record.
type EmailReport struct {
	sender mailer.Sender
}

func NewEmailReport(sender mailer.Sender) *EmailReport {
	return &EmailReport{sender: sender}
}

// Send builds a localized plain-text report and delivers it. It is a
// no-op when the record carries no email or no sender is configured.
func (e *EmailReport) Send(ctx context.Context, res *AssessmentResult, lang string) error {
	if e == nil || e.sender == nil || res.Record.Email == "" {
		return nil
	}
	r := res.Record
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", i18n.T(lang, "email_greeting"))
	fmt.Fprintf(&b, "%s: %s kg\n", i18n.T(lang, "email_weight"), formatFloat(r.Weight))
	fmt.Fprintf(&b, "%s: %s cm\n", i18n.T(lang, "email_height"), formatFloat(r.Height))
	fmt.Fprintf(&b, "%s: %d\n", i18n.T(lang, "email_age"), r.Age)
	fmt.Fprintf(&b, "%s: %s\n", i18n.T(lang, "email_gender"), i18n.T(lang, r.Gender))
	fmt.Fprintf(&b, "%s: %s\n", i18n.T(lang, "email_activity"), i18n.T(lang, r.ActivityLevel))
	fmt.Fprintf(&b, "%s: %s\n", i18n.T(lang, "email_bmi"), formatFloat(res.BMI))
	fmt.Fprintf(&b, "%s: %s L\n\n", i18n.T(lang, "email_water"), formatFloat(res.WaterIntake))
	fmt.Fprintf(&b, "%s:\n", i18n.T(lang, "email_tips"))
	for _, tip := range res.Tips {
		fmt.Fprintf(&b, "- %s\n", tip)
	}
	fmt.Fprintf(&b, "\n%s\n", i18n.T(lang, "email_disclaimer"))
	return e.sender.Send(ctx, r.Email, i18n.T(lang, "email_subject"), b.String())
}
