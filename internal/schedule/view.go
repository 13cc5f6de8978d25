package schedule

import "time"

// ViewMode selects how the planning calendar is laid out.
type ViewMode string

const (
	ViewMonth ViewMode = "month"
	ViewWeek  ViewMode = "week"
	ViewDay   ViewMode = "day"
)

// IsValidViewMode checks if a view mode is valid.
func IsValidViewMode(m ViewMode) bool {
	switch m {
	case ViewMonth, ViewWeek, ViewDay:
		return true
	default:
		return false
	}
}

// DateRange is an inclusive range of canonical dates.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Contains reports whether a canonical date falls inside the range.
// Canonical dates compare correctly as strings.
func (r DateRange) Contains(date string) bool {
	return date >= r.Start && date <= r.End
}

// RangeFor computes the visible date range for a view mode anchored at a
// given day. Month ranges are padded to full Monday-start weeks, matching
// the calendar grid.
func RangeFor(mode ViewMode, anchor time.Time) DateRange {
	switch mode {
	case ViewWeek:
		start := startOfWeek(anchor)
		return DateRange{Start: NormalizeTime(start), End: NormalizeTime(start.AddDate(0, 0, 6))}
	case ViewDay:
		d := NormalizeTime(anchor)
		return DateRange{Start: d, End: d}
	default: // month
		first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		last := first.AddDate(0, 1, -1)
		gridStart := startOfWeek(first)
		gridEnd := startOfWeek(last).AddDate(0, 0, 6)
		return DateRange{Start: NormalizeTime(gridStart), End: NormalizeTime(gridEnd)}
	}
}

// Navigate moves the anchor date one step in the given direction for the
// view mode. Direction is +1 for next, -1 for previous, 0 for today.
func Navigate(mode ViewMode, anchor time.Time, direction int, now time.Time) time.Time {
	if direction == 0 {
		return now
	}
	switch mode {
	case ViewWeek:
		return anchor.AddDate(0, 0, 7*direction)
	case ViewDay:
		return anchor.AddDate(0, 0, direction)
	default:
		return anchor.AddDate(0, direction, 0)
	}
}

// startOfWeek returns the Monday on or before t, at midnight.
func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
