package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRangeFor_Day(t *testing.T) {
	anchor := time.Date(2024, 1, 20, 15, 0, 0, 0, time.UTC)
	r := RangeFor(ViewDay, anchor)
	assert.Equal(t, DateRange{Start: "2024-01-20", End: "2024-01-20"}, r)
}

func TestRangeFor_WeekStartsMonday(t *testing.T) {
	// 2024-01-20 is a Saturday; its week runs Mon 15th to Sun 21st.
	anchor := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	r := RangeFor(ViewWeek, anchor)
	assert.Equal(t, DateRange{Start: "2024-01-15", End: "2024-01-21"}, r)

	// A Monday anchor starts its own week.
	monday := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	r = RangeFor(ViewWeek, monday)
	assert.Equal(t, "2024-01-15", r.Start)
}

func TestRangeFor_MonthPadsToFullWeeks(t *testing.T) {
	// January 2024: the 1st is a Monday, the 31st a Wednesday, so the
	// grid runs Jan 1 to Feb 4.
	anchor := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	r := RangeFor(ViewMonth, anchor)
	assert.Equal(t, DateRange{Start: "2024-01-01", End: "2024-02-04"}, r)

	assert.True(t, r.Contains("2024-01-31"))
	assert.True(t, r.Contains("2024-02-04"))
	assert.False(t, r.Contains("2024-02-05"))
}

func TestNavigate(t *testing.T) {
	anchor := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-02-20", NormalizeTime(Navigate(ViewMonth, anchor, 1, now)))
	assert.Equal(t, "2023-12-20", NormalizeTime(Navigate(ViewMonth, anchor, -1, now)))
	assert.Equal(t, "2024-01-27", NormalizeTime(Navigate(ViewWeek, anchor, 1, now)))
	assert.Equal(t, "2024-01-19", NormalizeTime(Navigate(ViewDay, anchor, -1, now)))
	// Direction zero jumps to today whatever the mode.
	assert.Equal(t, "2024-03-03", NormalizeTime(Navigate(ViewWeek, anchor, 0, now)))
}

func TestIsValidViewMode(t *testing.T) {
	assert.True(t, IsValidViewMode(ViewMonth))
	assert.True(t, IsValidViewMode(ViewWeek))
	assert.True(t, IsValidViewMode(ViewDay))
	assert.False(t, IsValidViewMode("year"))
	assert.False(t, IsValidViewMode(""))
}
