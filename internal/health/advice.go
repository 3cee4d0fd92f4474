package health

import "github.com/healthtotech/healthbuddy/i18n"

// AgeBracket splits advice wording between younger and older adults.
type AgeBracket string

const (
	AgeYouth   AgeBracket = "youth"
	AgeElderly AgeBracket = "elderly"
)

// AgeBracketFor classifies an age: 35 and under reads the youth wording.
func AgeBracketFor(age int) AgeBracket {
	if age <= 35 {
		return AgeYouth
	}
	return AgeElderly
}

var bmiTip = map[BMIBracket]string{
	BracketUnderweight: "bmi_underweight",
	BracketHealthy:     "bmi_healthy",
	BracketOverweight:  "bmi_overweight",
	BracketObese:       "bmi_obese",
}

var activityTip = map[Activity]map[AgeBracket]string{
	ActivityLow:      {AgeYouth: "activity_low_youth", AgeElderly: "activity_low_elderly"},
	ActivityModerate: {AgeYouth: "activity_moderate_youth", AgeElderly: "activity_moderate_elderly"},
	ActivityHigh:     {AgeYouth: "activity_high_youth", AgeElderly: "activity_high_elderly"},
}

var sleepTip = map[bool]map[AgeBracket]string{
	true:  {AgeYouth: "sleep_poor_youth", AgeElderly: "sleep_poor_elderly"},
	false: {AgeYouth: "sleep_good_youth", AgeElderly: "sleep_good_elderly"},
}

var disturbanceTip = map[Disturbance]string{
	DisturbanceInsomnia:    "disturbance_insomnia",
	DisturbanceWakingTired: "disturbance_waking_tired",
}

// PoorSleep reports whether the profile's sleep counts as poor: short
// nights, an irregular bedtime, or any reported disturbance.
func (p *Profile) PoorSleep() bool {
	return p.SleepHours < 7 || p.SleepConsistency == No || p.SleepDisturbances != DisturbanceNone
}

// AdviceCodes evaluates the rules in order and returns the translation
// codes of every tip that applies. The order is fixed: BMI bracket,
// activity, sleep, chronic conditions, substance use, female-specific
// questions, then the closing general tips.
func AdviceCodes(p *Profile) []string {
	age := AgeBracketFor(p.Age)
	codes := []string{
		bmiTip[Bracket(BMI(p.Weight, p.Height))],
		activityTip[p.Activity][age],
		sleepTip[p.PoorSleep()][age],
	}
	if p.PoorSleep() {
		if code, ok := disturbanceTip[p.SleepDisturbances]; ok {
			codes = append(codes, code)
		}
	}
	if p.ChronicDiseases == Yes {
		codes = append(codes, "chronic_disease_yes")
	} else {
		codes = append(codes, "chronic_disease_no")
	}
	if p.SubstanceUse == Yes {
		codes = append(codes, "substance_use_yes")
	} else {
		codes = append(codes, "substance_use_no")
	}
	if p.MentalHealth != MentalUnset {
		codes = append(codes, "mental_"+string(p.MentalHealth))
	}
	if p.Female != nil {
		f := p.Female
		switch f.MenstrualRegularity {
		case RegularityIrregular:
			codes = append(codes, "menstrual_irregular")
		case RegularityRegular:
			codes = append(codes, "menstrual_regular")
		}
		if f.PregnancyHistory == PregnancyYes {
			codes = append(codes, "pregnancy_history")
		}
		if f.ContraceptiveUse != "" && f.ContraceptiveUse != "none" {
			codes = append(codes, "contraceptive_use")
		}
	}
	codes = append(codes, "general_nutrition")
	// The generic mental-health tip is redundant when a specific mental
	// wellbeing answer already produced one.
	if p.MentalHealth == MentalUnset {
		codes = append(codes, "mental_health_tip")
	}
	codes = append(codes, "hydration")
	return codes
}

// Advise returns the applicable tips localized for lang, in rule order.
func Advise(p *Profile, lang string) []string {
	codes := AdviceCodes(p)
	tips := make([]string, len(codes))
	for i, c := range codes {
		tips[i] = i18n.T(lang, c)
	}
	return tips
}
