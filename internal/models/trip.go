package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TripStatus represents the lifecycle state of a trip.
type TripStatus string

const (
	TripAssigned  TripStatus = "assigned"
	TripActive    TripStatus = "active"
	TripCompleted TripStatus = "completed"
	TripCancelled TripStatus = "cancelled"
)

// Trip represents a scheduled ride. DriverID and VehicleID reference other
// collections but are not enforced: a trip can outlive the driver or
// vehicle it was booked with, and readers resolve them best effort.
type Trip struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	DriverID    string             `bson:"driver_id" json:"driver_id"`
	DriverName  string             `bson:"driver_name" json:"driver_name"`
	VehicleID   string             `bson:"vehicle_id" json:"vehicle_id"`
	ClientName  string             `bson:"client_name" json:"client_name"`
	Pickup      string             `bson:"pickup" json:"pickup"`
	Destination string             `bson:"destination" json:"destination"`
	Date        string             `bson:"date" json:"date"` // canonical YYYY-MM-DD
	TimeRange   string             `bson:"time_range" json:"time_range"`
	Passengers  int                `bson:"passengers" json:"passengers"`
	Price       float64            `bson:"price" json:"price"`
	Status      TripStatus         `bson:"status" json:"status"`
	Notes       string             `bson:"notes" json:"notes"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
