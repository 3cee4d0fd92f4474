package health

import (
	"net/url"
	"testing"
)

func validForm() url.Values {
	return url.Values{
		"weight":         {"70"},
		"height":         {"175"},
		"age":            {"30"},
		"gender":         {"male"},
		"activity_level": {"moderate"},
		"sleep_hours":    {"8"},
	}
}

func TestParseProfileValid(t *testing.T) {
	p, err := ParseProfile(validForm())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Weight != 70 || p.Height != 175 || p.Age != 30 {
		t.Fatalf("numeric fields wrong: %+v", p)
	}
	// Omitted selects take the defaults.
	if p.ChronicDiseases != No || p.SleepDisturbances != DisturbanceNone || p.WaterHabit != HabitModerate {
		t.Fatalf("defaults wrong: %+v", p)
	}
	if p.MentalHealth != MentalUnset {
		t.Fatalf("mental health should default to unset, got %q", p.MentalHealth)
	}
	if p.Female != nil {
		t.Fatal("male profile should have no female details")
	}
}

func TestParseProfileFailFast(t *testing.T) {
	form := validForm()
	form.Set("weight", "-1")
	form.Set("height", "abc")
	_, err := ParseProfile(form)
	if err == nil {
		t.Fatal("expected error")
	}
	// Only the first violation is reported.
	if err.Field != "weight" || err.Code != "error_weight" {
		t.Fatalf("expected weight error first, got %v", err)
	}
}

func TestParseProfileFieldErrors(t *testing.T) {
	cases := []struct {
		field, value, wantField, wantCode string
	}{
		{"weight", "0", "weight", "error_weight"},
		{"height", "", "height", "error_height"},
		{"age", "-5", "age", "error_age"},
		{"age", "30.5", "age", "error_age"},
		{"gender", "robot", "gender", "error_gender"},
		{"activity_level", "", "activity_level", "error_activity"},
		{"sleep_hours", "25", "sleep_hours", "error_sleep_hours"},
		{"email", "not-an-email", "email", "error_email"},
		{"chronic_diseases", "maybe", "chronic_diseases", "error_invalid_input"},
		{"mental_health", "terrible", "mental_health", "error_invalid_input"},
	}
	for _, c := range cases {
		form := validForm()
		form.Set(c.field, c.value)
		_, err := ParseProfile(form)
		if err == nil {
			t.Errorf("%s=%q: expected error", c.field, c.value)
			continue
		}
		if err.Field != c.wantField || err.Code != c.wantCode {
			t.Errorf("%s=%q: got %v, want %s/%s", c.field, c.value, err, c.wantField, c.wantCode)
		}
	}
}

func TestParseProfileSleepHoursZeroAllowed(t *testing.T) {
	form := validForm()
	form.Set("sleep_hours", "0")
	p, err := ParseProfile(form)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.SleepHours != 0 {
		t.Fatalf("sleep hours = %v", p.SleepHours)
	}
}

func TestParseProfileOptionalEmail(t *testing.T) {
	p, err := ParseProfile(validForm())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Email != "" {
		t.Fatalf("email should stay empty, got %q", p.Email)
	}
	form := validForm()
	form.Set("email", "user@example.com")
	p, err = ParseProfile(form)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Email != "user@example.com" {
		t.Fatalf("email = %q", p.Email)
	}
}

func TestParseProfileFemaleDetails(t *testing.T) {
	form := validForm()
	form.Set("gender", "female")
	form.Set("menstrual_regularity", "irregular")
	form.Set("pregnancy_history", "has_pregnancy")
	form.Set("contraceptive_use", "iud")
	p, err := ParseProfile(form)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Female == nil {
		t.Fatal("expected female details")
	}
	if p.Female.MenstrualRegularity != RegularityIrregular || p.Female.PregnancyHistory != PregnancyYes || p.Female.ContraceptiveUse != "iud" {
		t.Fatalf("female details wrong: %+v", p.Female)
	}

	// Female with no answers still gets a non-nil struct.
	form = validForm()
	form.Set("gender", "female")
	p, err = ParseProfile(form)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Female == nil {
		t.Fatal("expected empty female details")
	}

	// Invalid female answers are rejected.
	form.Set("pregnancy_history", "twice")
	if _, err = ParseProfile(form); err == nil || err.Field != "pregnancy_history" {
		t.Fatalf("expected pregnancy_history error, got %v", err)
	}
}
