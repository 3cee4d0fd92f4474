package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/healthtotech/healthbuddy/internal/health"
)

func seedRecords(t *testing.T, d *gorm.DB) {
	t.Helper()
	svc := NewAssessmentService(d)
	day := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	for i, p := range []*health.Profile{
		testProfile(), // male, high activity, bmi 22.86
		func() *health.Profile {
			p := testProfile()
			p.Gender = health.GenderFemale
			p.Female = &health.FemaleDetails{}
			p.Weight = 45
			p.Height = 180 // bmi 13.89, underweight
			p.Activity = health.ActivityLow
			return p
		}(),
		func() *health.Profile {
			p := testProfile()
			p.Weight = 95
			p.Height = 170 // bmi 32.87, obese
			return p
		}(),
	} {
		ts := day.Add(time.Duration(i) * time.Hour)
		if i == 2 {
			ts = ts.AddDate(0, 0, 1) // last record lands on the next day
		}
		svc.now = func() time.Time { return ts }
		if _, err := svc.Submit(p, "en"); err != nil {
			t.Fatal(err)
		}
	}
}

func TestRecordsFilters(t *testing.T) {
	d := setupTestDB(t)
	seedRecords(t, d)
	svc := NewReportService(d)

	all, err := svc.Records(Filter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}

	byDate, err := svc.Records(Filter{Date: "2025-06-15"})
	if err != nil {
		t.Fatal(err)
	}
	if len(byDate) != 2 {
		t.Fatalf("date filter: expected 2 records, got %d", len(byDate))
	}

	byGender, err := svc.Records(Filter{Gender: "female"})
	if err != nil {
		t.Fatal(err)
	}
	if len(byGender) != 1 || byGender[0].Gender != "female" {
		t.Fatalf("gender filter wrong: %+v", byGender)
	}

	// Unknown filter values are ignored, not applied.
	loose, err := svc.Records(Filter{Gender: "alien", Activity: "extreme"})
	if err != nil {
		t.Fatal(err)
	}
	if len(loose) != 3 {
		t.Fatalf("unknown filters should be ignored, got %d records", len(loose))
	}

	combined, err := svc.Records(Filter{Date: "2025-06-15", Activity: "high"})
	if err != nil {
		t.Fatal(err)
	}
	if len(combined) != 1 {
		t.Fatalf("combined filter: expected 1 record, got %d", len(combined))
	}
}

func TestRecordsDateFilterRejectsPatterns(t *testing.T) {
	d := setupTestDB(t)
	seedRecords(t, d)
	svc := NewReportService(d)

	// Malformed dates must not be applied, and in particular LIKE
	// metacharacters must not turn the filter into a wildcard match.
	for _, date := range []string{"2025-06-%", "2025-06-1_", "%", "not-a-date"} {
		recs, err := svc.Records(Filter{Date: date})
		if err != nil {
			t.Fatal(err)
		}
		if len(recs) != 3 {
			t.Fatalf("date %q: expected filter ignored (3 records), got %d", date, len(recs))
		}
	}

	recs, err := svc.Records(Filter{Date: "2025-06-16"})
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 {
		t.Fatalf("valid date: expected 1 record, got %d", len(recs))
	}
}

func TestStats(t *testing.T) {
	d := setupTestDB(t)
	seedRecords(t, d)
	svc := NewReportService(d)

	recs, err := svc.Records(Filter{})
	if err != nil {
		t.Fatal(err)
	}
	st := svc.Stats(recs)
	if st.Count != 3 {
		t.Fatalf("count = %d", st.Count)
	}
	// (22.86 + 13.89 + 32.87) / 3 = 23.21 (rounded)
	if st.AvgBMI != 23.21 {
		t.Fatalf("avg bmi = %v", st.AvgBMI)
	}
	if st.AvgSleep != 8 {
		t.Fatalf("avg sleep = %v", st.AvgSleep)
	}
	if st.Distribution["underweight"] != 1 ||
		st.Distribution["healthy"] != 1 ||
		st.Distribution["overweight"] != 0 ||
		st.Distribution["obese"] != 1 {
		t.Fatalf("distribution wrong: %v", st.Distribution)
	}
}

func TestStatsEmptySet(t *testing.T) {
	d := setupTestDB(t)
	svc := NewReportService(d)
	st := svc.Stats(nil)
	if st.Count != 0 || st.AvgBMI != 0 || st.AvgWater != 0 || st.AvgSleep != 0 {
		t.Fatalf("empty stats should be zero: %+v", st)
	}
	var total int64
	for _, n := range st.Distribution {
		total += n
	}
	if total != 0 {
		t.Fatalf("empty distribution should be zero: %v", st.Distribution)
	}
}

func TestWriteCSV(t *testing.T) {
	d := setupTestDB(t)
	seedRecords(t, d)
	svc := NewReportService(d)

	var buf bytes.Buffer
	if err := svc.WriteCSV(&buf, Filter{}); err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header + 3 rows, got %d", len(rows))
	}
	if rows[0][0] != "ID" || rows[0][7] != "BMI" || rows[0][17] != "Timestamp" {
		t.Fatalf("header wrong: %v", rows[0])
	}
	// BMI column is recomputed from weight and height.
	if rows[1][7] != "22.86" {
		t.Fatalf("bmi cell = %q", rows[1][7])
	}
	if rows[2][4] != "female" {
		t.Fatalf("gender cell = %q", rows[2][4])
	}
}

func TestWriteXLSX(t *testing.T) {
	d := setupTestDB(t)
	seedRecords(t, d)
	svc := NewReportService(d)

	var buf bytes.Buffer
	if err := svc.WriteXLSX(&buf, Filter{Gender: "male"}); err != nil {
		t.Fatal(err)
	}
	x, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	rows, err := x.GetRows("Records")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 male rows, got %d", len(rows))
	}
	if rows[0][0] != "ID" {
		t.Fatalf("header wrong: %v", rows[0])
	}
}

type fakeSender struct {
	to, subject, body string
	calls             int
}

func (f *fakeSender) Send(_ context.Context, to, subject, body string) error {
	f.calls++
	f.to, f.subject, f.body = to, subject, body
	return nil
}

func TestEmailReport(t *testing.T) {
	d := setupTestDB(t)
	asvc := NewAssessmentService(d)

	p := testProfile()
	p.Email = "user@example.com"
	res, err := asvc.Submit(p, "en")
	if err != nil {
		t.Fatal(err)
	}

	sender := &fakeSender{}
	if err := NewEmailReport(sender).Send(context.Background(), res, "en"); err != nil {
		t.Fatal(err)
	}
	if sender.calls != 1 || sender.to != "user@example.com" {
		t.Fatalf("sender: %+v", sender)
	}
	if sender.subject != "Your HealthBuddy Report" {
		t.Fatalf("subject = %q", sender.subject)
	}
	if !strings.Contains(sender.body, "BMI: 22.86") {
		t.Fatalf("body missing BMI: %q", sender.body)
	}
	if !strings.Contains(sender.body, "- ") {
		t.Fatalf("body missing tip list: %q", sender.body)
	}
}

func TestEmailReportSkipsWithoutAddress(t *testing.T) {
	d := setupTestDB(t)
	asvc := NewAssessmentService(d)
	res, err := asvc.Submit(testProfile(), "en")
	if err != nil {
		t.Fatal(err)
	}
	sender := &fakeSender{}
	if err := NewEmailReport(sender).Send(context.Background(), res, "en"); err != nil {
		t.Fatal(err)
	}
	if sender.calls != 0 {
		t.Fatal("no email expected when the record has no address")
	}
}
