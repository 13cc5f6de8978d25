package schedule

import (
	"strings"

	"github.com/limovia/fleetcrm/internal/models"
)

// AllDrivers is the driver filter value that matches any driver.
const AllDrivers = "all"

// Filter holds the active planning list filters.
type Filter struct {
	Date   string // canonical YYYY-MM-DD, empty matches any date
	Driver string // exact driver name, or AllDrivers
	Search string // case-insensitive substring over title/client/driver
}

// Matches reports whether a trip satisfies every active filter. The date
// must match the trip's normalized date exactly; the driver match is
// case-sensitive; the search term is a case-insensitive substring match.
func (f Filter) Matches(trip models.Trip) bool {
	if f.Date != "" {
		date, err := NormalizeDate(trip.Date)
		if err != nil || date != f.Date {
			return false
		}
	}
	if f.Driver != "" && f.Driver != AllDrivers && trip.DriverName != f.Driver {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		haystack := strings.ToLower(trip.Title + " " + trip.ClientName + " " + trip.DriverName)
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}

// Apply returns the trips matching the filter, preserving input order.
func (f Filter) Apply(trips []models.Trip) []models.Trip {
	matched := make([]models.Trip, 0, len(trips))
	for _, trip := range trips {
		if f.Matches(trip) {
			matched = append(matched, trip)
		}
	}
	return matched
}

// Page is one page of a paginated list.
type Page[T any] struct {
	Items      []T `json:"items"`
	PageNumber int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// Paginate slices items into the requested page. Page numbers are
// 1-based; out-of-range pages return an empty item list with the correct
// totals. TotalPages is ceil(len(items)/size), and walking every page in
// order yields each item exactly once.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size < 1 {
		size = 10
	}
	if page < 1 {
		page = 1
	}
	total := len(items)
	totalPages := (total + size - 1) / size

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      items[start:end],
		PageNumber: page,
		PageSize:   size,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
