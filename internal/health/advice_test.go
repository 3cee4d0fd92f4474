package health

import (
	"reflect"
	"testing"
)

func baseProfile() *Profile {
	return &Profile{
		Weight:            70,
		Height:            175,
		Age:               30,
		Gender:            GenderMale,
		Activity:          ActivityModerate,
		ChronicDiseases:   No,
		SleepHours:        8,
		SleepConsistency:  Yes,
		SleepDisturbances: DisturbanceNone,
		SubstanceUse:      No,
		WaterHabit:        HabitModerate,
		FruitVegIntake:    HabitModerate,
		OilyFoodIntake:    OilySometimes,
	}
}

func TestAdviceCodesHealthyBaseline(t *testing.T) {
	got := AdviceCodes(baseProfile())
	want := []string{
		"bmi_healthy",
		"activity_moderate_youth",
		"sleep_good_youth",
		"chronic_disease_no",
		"substance_use_no",
		"general_nutrition",
		"mental_health_tip",
		"hydration",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v\nwant %v", got, want)
	}
}

func TestPoorSleep(t *testing.T) {
	p := baseProfile()
	if p.PoorSleep() {
		t.Fatal("baseline should sleep well")
	}
	p.SleepHours = 6.5
	if !p.PoorSleep() {
		t.Fatal("short nights should count as poor sleep")
	}
	p = baseProfile()
	p.SleepConsistency = No
	if !p.PoorSleep() {
		t.Fatal("irregular bedtime should count as poor sleep")
	}
	p = baseProfile()
	p.SleepDisturbances = DisturbanceInsomnia
	if !p.PoorSleep() {
		t.Fatal("disturbances should count as poor sleep")
	}
}

func TestAdviceCodesDisturbanceTip(t *testing.T) {
	p := baseProfile()
	p.SleepDisturbances = DisturbanceWakingTired
	got := AdviceCodes(p)
	if got[2] != "sleep_poor_youth" {
		t.Fatalf("expected poor sleep tip, got %q", got[2])
	}
	if got[3] != "disturbance_waking_tired" {
		t.Fatalf("expected disturbance tip after sleep tip, got %q", got[3])
	}
}

func TestAdviceCodesAgeSegmentation(t *testing.T) {
	p := baseProfile()
	p.Age = 36
	got := AdviceCodes(p)
	if got[1] != "activity_moderate_elderly" {
		t.Fatalf("activity tip = %q", got[1])
	}
	if got[2] != "sleep_good_elderly" {
		t.Fatalf("sleep tip = %q", got[2])
	}
	// BMI, chronic and substance tips are not age-segmented.
	if got[0] != "bmi_healthy" || got[3] != "chronic_disease_no" {
		t.Fatalf("unexpected codes %v", got)
	}
}

func TestAdviceCodesFemaleRules(t *testing.T) {
	p := baseProfile()
	p.Gender = GenderFemale
	p.Female = &FemaleDetails{
		MenstrualRegularity: RegularityIrregular,
		PregnancyHistory:    PregnancyYes,
		ContraceptiveUse:    "pill",
	}
	got := AdviceCodes(p)
	want := []string{"menstrual_irregular", "pregnancy_history", "contraceptive_use"}
	idx := -1
	for i, c := range got {
		if c == want[0] {
			idx = i
			break
		}
	}
	if idx == -1 {
		t.Fatalf("missing female tips in %v", got)
	}
	if !reflect.DeepEqual(got[idx:idx+3], want) {
		t.Fatalf("female tips out of order: %v", got[idx:idx+3])
	}

	// "none" contraceptive and absent menstrual answer yield no tips.
	p.Female = &FemaleDetails{ContraceptiveUse: "none"}
	for _, c := range AdviceCodes(p) {
		for _, w := range want {
			if c == w {
				t.Fatalf("unexpected female tip %q", c)
			}
		}
	}
}

func TestAdviceCodesMentalHealth(t *testing.T) {
	p := baseProfile()
	p.MentalHealth = MentalPoor
	got := AdviceCodes(p)
	foundSpecific, foundGeneric := false, false
	for _, c := range got {
		if c == "mental_poor" {
			foundSpecific = true
		}
		if c == "mental_health_tip" {
			foundGeneric = true
		}
	}
	if !foundSpecific {
		t.Fatalf("missing mental_poor in %v", got)
	}
	if foundGeneric {
		t.Fatal("generic mental health tip should be suppressed when a specific one applies")
	}
}

func TestAdviseLocalizes(t *testing.T) {
	tips := Advise(baseProfile(), "sw")
	if len(tips) == 0 {
		t.Fatal("no tips")
	}
	if tips[len(tips)-1] != "Kukaa na maji ni muhimu kwa viwango vya nishati na utendaji wa viungo. Beba chupa ya maji ili kufuatilia ulaji." {
		t.Fatalf("hydration tip not localized: %q", tips[len(tips)-1])
	}
}
