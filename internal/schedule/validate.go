package schedule

import (
	"github.com/limovia/fleetcrm/internal/models"
	"github.com/limovia/fleetcrm/internal/validation"
)

// ValidateTrip checks the fields the booking form requires. A trip that
// fails validation must never reach the store.
func ValidateTrip(trip models.Trip) validation.Violations {
	v := validation.Violations{}
	validation.Required("pickup", trip.Pickup, v)
	validation.Required("destination", trip.Destination, v)
	validation.PositiveFloat("price", trip.Price, v)
	validation.MinInt("passengers", trip.Passengers, 1, v)
	if trip.Date != "" {
		if _, err := NormalizeDate(trip.Date); err != nil {
			v["date"] = "invalid_date"
		}
	} else {
		v["date"] = "required"
	}
	return v
}
