package schedule

import (
	"testing"

	"github.com/limovia/fleetcrm/internal/models"
	"github.com/stretchr/testify/assert"
)

func sampleTrips() []models.Trip {
	return []models.Trip{
		{Title: "Transfert CDG", ClientName: "Hotel Le Grand", DriverName: "Jean Dupont", Date: "2024-01-20"},
		{Title: "Mise a disposition", ClientName: "ABT", DriverName: "Marc Lefevre", Date: "2024-01-20"},
		{Title: "Transfert Orly", ClientName: "Hotel Le Grand", DriverName: "Jean Dupont", Date: "2024-01-21"},
		{Title: "Soiree", ClientName: "Prive", DriverName: "Sofia Ricci", Date: "2024-01-19"},
	}
}

func TestFilter_DateExactMatch(t *testing.T) {
	filtered := Filter{Date: "2024-01-20", Driver: AllDrivers}.Apply(sampleTrips())
	assert.Len(t, filtered, 2)
	for _, trip := range filtered {
		assert.Equal(t, "2024-01-20", trip.Date, "adjacent-day trip leaked into the filter")
	}
}

func TestFilter_DriverAllIsIndependentOfDriver(t *testing.T) {
	trips := sampleTrips()
	all := Filter{Driver: AllDrivers}.Apply(trips)
	assert.Len(t, all, len(trips))

	none := Filter{Driver: ""}.Apply(trips)
	assert.Equal(t, all, none)
}

func TestFilter_DriverExactCaseSensitive(t *testing.T) {
	trips := sampleTrips()

	exact := Filter{Driver: "Jean Dupont"}.Apply(trips)
	assert.Len(t, exact, 2)

	// Case-sensitive: a lowercase query matches nothing.
	lower := Filter{Driver: "jean dupont"}.Apply(trips)
	assert.Empty(t, lower)
}

func TestFilter_SearchSubstringCaseInsensitive(t *testing.T) {
	trips := sampleTrips()

	byClient := Filter{Search: "grand"}.Apply(trips)
	assert.Len(t, byClient, 2)

	byTitle := Filter{Search: "TRANSFERT"}.Apply(trips)
	assert.Len(t, byTitle, 2)

	byDriver := Filter{Search: "ricci"}.Apply(trips)
	assert.Len(t, byDriver, 1)

	assert.Empty(t, Filter{Search: "zurich"}.Apply(trips))
}

func TestFilter_Combined(t *testing.T) {
	filtered := Filter{Date: "2024-01-20", Driver: "Jean Dupont", Search: "cdg"}.Apply(sampleTrips())
	assert.Len(t, filtered, 1)
	assert.Equal(t, "Transfert CDG", filtered[0].Title)
}

func TestPaginate_PageCountAndCoverage(t *testing.T) {
	cases := []struct {
		n, size  int
		expected int
	}{
		{10, 3, 4},
		{9, 3, 3},
		{1, 10, 1},
		{0, 10, 0},
		{25, 10, 3},
	}
	for _, tc := range cases {
		items := make([]int, tc.n)
		for i := range items {
			items[i] = i
		}

		first := Paginate(items, 1, tc.size)
		assert.Equal(t, tc.expected, first.TotalPages, "n=%d size=%d", tc.n, tc.size)
		assert.Equal(t, tc.n, first.TotalItems)

		// Concatenating every page reproduces the list exactly once.
		walked := make([]int, 0, tc.n)
		for page := 1; page <= first.TotalPages; page++ {
			walked = append(walked, Paginate(items, page, tc.size).Items...)
		}
		assert.Equal(t, items, walked)
	}
}

func TestPaginate_OutOfRangeAndDefaults(t *testing.T) {
	items := []string{"a", "b", "c"}

	beyond := Paginate(items, 5, 2)
	assert.Empty(t, beyond.Items)
	assert.Equal(t, 2, beyond.TotalPages)

	defaulted := Paginate(items, 0, 0)
	assert.Equal(t, 1, defaulted.PageNumber)
	assert.Equal(t, 10, defaulted.PageSize)
	assert.Equal(t, items, defaulted.Items)
}
