package health

import (
	"net/url"
	"strings"

	"github.com/healthtotech/healthbuddy/validation"
)

// Allowed values per select field. Fields absent from the form fall back
// to the listed default instead of failing.
var (
	genders      = []string{"male", "female", "other"}
	activities   = []string{"low", "moderate", "high"}
	yesNo        = []string{"yes", "no"}
	disturbances = []string{"none", "insomnia", "waking_tired"}
	mentalStates = []string{"good", "moderate", "poor"}
	habits       = []string{"low", "moderate", "high"}
	oilyOptions  = []string{"rarely", "sometimes", "often"}
	regularities   = []string{"regular", "irregular"}
	pregnancies    = []string{"has_pregnancy", "no_pregnancy"}
	contraceptives = []string{"none", "pill", "iud", "other"}
)

func pick(form url.Values, field, fallback string) string {
	v := strings.TrimSpace(form.Get(field))
	if v == "" {
		return fallback
	}
	return v
}

// ParseProfile validates a submitted form and builds a Profile. Validation
// is fail-fast: the first violation is returned and the rest of the form
// is not inspected.
func ParseProfile(form url.Values) (*Profile, *validation.FieldError) {
	weight, ferr := validation.PositiveFloat("weight", form.Get("weight"), "error_weight")
	if ferr != nil {
		return nil, ferr
	}
	height, ferr := validation.PositiveFloat("height", form.Get("height"), "error_height")
	if ferr != nil {
		return nil, ferr
	}
	age, ferr := validation.PositiveInt("age", form.Get("age"), "error_age")
	if ferr != nil {
		return nil, ferr
	}
	gender := form.Get("gender")
	if ferr = validation.OneOf("gender", gender, genders, "error_gender"); ferr != nil {
		return nil, ferr
	}
	activity := form.Get("activity_level")
	if ferr = validation.OneOf("activity_level", activity, activities, "error_activity"); ferr != nil {
		return nil, ferr
	}
	sleepHours, ferr := validation.FloatInRange("sleep_hours", pick(form, "sleep_hours", "0"), 0, 24, "error_sleep_hours")
	if ferr != nil {
		return nil, ferr
	}

	p := &Profile{
		Weight:     weight,
		Height:     height,
		Age:        age,
		Gender:     Gender(gender),
		Activity:   Activity(activity),
		SleepHours: sleepHours,
	}

	// Lifestyle selects default to the least alarming option when omitted.
	for _, f := range []struct {
		field    string
		fallback string
		allowed  []string
		dst      *string
	}{
		{"chronic_diseases", "no", yesNo, (*string)(&p.ChronicDiseases)},
		{"sleep_consistency", "no", yesNo, (*string)(&p.SleepConsistency)},
		{"sleep_disturbances", "none", disturbances, (*string)(&p.SleepDisturbances)},
		{"substance_use", "no", yesNo, (*string)(&p.SubstanceUse)},
		{"water_habit", "moderate", habits, (*string)(&p.WaterHabit)},
		{"fruit_veg_intake", "moderate", habits, (*string)(&p.FruitVegIntake)},
		{"oily_food_intake", "sometimes", oilyOptions, (*string)(&p.OilyFoodIntake)},
	} {
		v := pick(form, f.field, f.fallback)
		if ferr = validation.OneOf(f.field, v, f.allowed, "error_invalid_input"); ferr != nil {
			return nil, ferr
		}
		*f.dst = v
	}

	// Mental wellbeing is optional; when given it must be a known state.
	if v := strings.TrimSpace(form.Get("mental_health")); v != "" {
		if ferr = validation.OneOf("mental_health", v, mentalStates, "error_invalid_input"); ferr != nil {
			return nil, ferr
		}
		p.MentalHealth = MentalHealth(v)
	}

	if email := strings.TrimSpace(form.Get("email")); email != "" {
		if ferr = validation.Email("email", email, "error_email"); ferr != nil {
			return nil, ferr
		}
		p.Email = email
	}

	if p.Gender == GenderFemale {
		f := &FemaleDetails{}
		if v := strings.TrimSpace(form.Get("menstrual_regularity")); v != "" {
			if ferr = validation.OneOf("menstrual_regularity", v, regularities, "error_invalid_input"); ferr != nil {
				return nil, ferr
			}
			f.MenstrualRegularity = Regularity(v)
		}
		if v := strings.TrimSpace(form.Get("pregnancy_history")); v != "" {
			if ferr = validation.OneOf("pregnancy_history", v, pregnancies, "error_invalid_input"); ferr != nil {
				return nil, ferr
			}
			f.PregnancyHistory = Pregnancy(v)
		}
		if v := strings.TrimSpace(form.Get("contraceptive_use")); v != "" {
			if ferr = validation.OneOf("contraceptive_use", v, contraceptives, "error_invalid_input"); ferr != nil {
				return nil, ferr
			}
			f.ContraceptiveUse = v
		}
		p.Female = f
	}

	return p, nil
}
