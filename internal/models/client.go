package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClientStatus represents whether a client account is usable.
type ClientStatus string

const (
	ClientActive   ClientStatus = "active"
	ClientDisabled ClientStatus = "disabled"
)

// Client represents a customer the fleet works for.
type Client struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Company    string             `bson:"company" json:"company"`
	Contact    string             `bson:"contact" json:"contact"`
	Address    string             `bson:"address" json:"address"`
	PostalCode string             `bson:"postal_code" json:"postal_code"`
	City       string             `bson:"city" json:"city"`
	Country    string             `bson:"country" json:"country"`
	Phone      string             `bson:"phone" json:"phone"`
	Fax        string             `bson:"fax" json:"fax"`
	Email      string             `bson:"email" json:"email"`
	Status     ClientStatus       `bson:"status" json:"status"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}
