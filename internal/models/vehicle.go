package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VehicleStatus represents the operational state of a vehicle.
type VehicleStatus string

const (
	VehicleActive       VehicleStatus = "active"
	VehicleMaintenance  VehicleStatus = "maintenance"
	VehicleOutOfService VehicleStatus = "out_of_service"
)

// Vehicle represents a fleet vehicle.
type Vehicle struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Make            string             `bson:"make" json:"make"`
	Model           string             `bson:"model" json:"model"`
	Year            int                `bson:"year" json:"year"`
	Type            string             `bson:"type" json:"type"` // "sedan", "van", "limousine", "suv"
	Capacity        int                `bson:"capacity" json:"capacity"`
	PlateNumber     string             `bson:"plate_number" json:"plate_number"`
	Status          VehicleStatus      `bson:"status" json:"status"`
	CurrentLocation Location           `bson:"current_location" json:"current_location"`
	FuelLevel       float64            `bson:"fuel_level" json:"fuel_level"` // percent
	Mileage         float64            `bson:"mileage" json:"mileage"`       // kilometers
	LastService     *time.Time         `bson:"last_service,omitempty" json:"last_service,omitempty"`
	NextService     *time.Time         `bson:"next_service,omitempty" json:"next_service,omitempty"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
}
