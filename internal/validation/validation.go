package validation

import (
	"regexp"
	"strings"
)

// Violations maps a field name to a violation code. Codes are translated
// to messages at the edge.
type Violations map[string]string

// Empty reports whether no violation was recorded.
func (v Violations) Empty() bool { return len(v) == 0 }

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Required records a violation when value is blank.
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

// Email records a violation when value is not a plausible address. Blank
// values pass; combine with Required when the field is mandatory.
func Email(field, value string, v Violations) {
	if value != "" && !emailRe.MatchString(value) {
		v[field] = "invalid_email"
	}
}

// PositiveFloat records a violation when val is not strictly positive.
func PositiveFloat(field string, val float64, v Violations) {
	if val <= 0 {
		v[field] = "must_be_positive"
	}
}

// MinInt records a violation when val is below min.
func MinInt(field string, val, min int, v Violations) {
	if val < min {
		v[field] = "below_minimum"
	}
}
