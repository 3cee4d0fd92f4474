// Package validation provides the low-level checks used when parsing
// submitted forms. Parsing is fail-fast: the first violation aborts the
// submission, so helpers return a *FieldError instead of accumulating.
package validation

import (
	"regexp"
	"strconv"
	"strings"
)

// FieldError identifies the first field that failed validation. Code is a
// translation key; handlers localize it before display.
type FieldError struct {
	Field string
	Code  string
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Code }

// emailRx requires a local part, one @, and a dotted domain with a TLD of
// at least two letters.
var emailRx = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

// PositiveFloat parses value and requires it to be strictly greater than
// zero. Blank and malformed input fail with the same code.
func PositiveFloat(field, value, code string) (float64, *FieldError) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || f <= 0 {
		return 0, &FieldError{Field: field, Code: code}
	}
	return f, nil
}

// PositiveInt parses value as a strictly positive integer.
func PositiveInt(field, value, code string) (int, *FieldError) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return 0, &FieldError{Field: field, Code: code}
	}
	return n, nil
}

// FloatInRange parses value and requires minVal <= value <= maxVal.
func FloatInRange(field, value string, minVal, maxVal float64, code string) (float64, *FieldError) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || f < minVal || f > maxVal {
		return 0, &FieldError{Field: field, Code: code}
	}
	return f, nil
}

// OneOf requires value to be one of allowed.
func OneOf(field, value string, allowed []string, code string) *FieldError {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &FieldError{Field: field, Code: code}
}

// Email validates an email address; empty input is rejected, callers
// treating email as optional should skip the check for blank values.
func Email(field, value, code string) *FieldError {
	if !emailRx.MatchString(strings.TrimSpace(value)) {
		return &FieldError{Field: field, Code: code}
	}
	return nil
}
