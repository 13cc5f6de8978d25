package models

import "time"

// VehicleTelemetry is one reading published by a vehicle tracker. Applied
// to the vehicle document as a partial update.
type VehicleTelemetry struct {
	VehicleID string    `json:"vehicle_id"`
	Timestamp time.Time `json:"timestamp"`
	Location  Location  `json:"location"`
	FuelLevel float64   `json:"fuel_level"`
	Mileage   float64   `json:"mileage"`
	Status    string    `json:"status,omitempty"`
}
