package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DriverStatus represents the operational state of a driver.
type DriverStatus string

const (
	DriverAvailable DriverStatus = "available"
	DriverOnTrip    DriverStatus = "on_trip"
	DriverOffDuty   DriverStatus = "off_duty"
)

// Driver represents a chauffeur in the fleet. UserID links the driver to
// the account they sign in with; it may be empty for drivers that have no
// account yet.
type Driver struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Email         string             `bson:"email" json:"email"`
	Phone         string             `bson:"phone" json:"phone"`
	LicenseNumber string             `bson:"license_number" json:"license_number"`
	Status        DriverStatus       `bson:"status" json:"status"`
	IsActive      bool               `bson:"is_active" json:"is_active"`
	UserID        string             `bson:"user_id,omitempty" json:"user_id,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}
