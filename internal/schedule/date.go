package schedule

import (
	"fmt"
	"regexp"
	"time"
)

// DateFormat is the canonical wire format for trip dates.
const DateFormat = "2006-01-02"

var dateOnlyRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// NormalizeDate produces the canonical YYYY-MM-DD string for a trip date.
// A string already in canonical form is returned unchanged. Times are
// normalized from their year/month/day components in their own location,
// never through UTC conversion, so a date at local midnight renders the
// same day whatever the host timezone offset is.
func NormalizeDate(v interface{}) (string, error) {
	switch d := v.(type) {
	case string:
		if dateOnlyRe.MatchString(d) {
			return d, nil
		}
		// Tolerate timestamps like "2024-01-20T00:00:00Z" by keeping the
		// date part as written.
		if len(d) > 10 && dateOnlyRe.MatchString(d[:10]) {
			return d[:10], nil
		}
		return "", fmt.Errorf("unrecognized date string %q", d)
	case time.Time:
		return NormalizeTime(d), nil
	case *time.Time:
		if d == nil {
			return "", fmt.Errorf("nil date")
		}
		return NormalizeTime(*d), nil
	default:
		return "", fmt.Errorf("unsupported date type %T", v)
	}
}

// NormalizeTime formats a time as canonical YYYY-MM-DD using its calendar
// components in its own location.
func NormalizeTime(t time.Time) string {
	y, m, d := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}

// ParseDate parses a canonical date string back into a time at midnight in
// the given location.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(DateFormat, s, loc)
}
