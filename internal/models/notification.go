package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification represents a dashboard notification, typically produced when
// a trip is assigned to a driver or changes status.
type Notification struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Recipient  string             `bson:"recipient" json:"recipient"` // user id, or "" for owners
	Kind       string             `bson:"kind" json:"kind"`
	Message    string             `bson:"message" json:"message"`
	EntityKind string             `bson:"entity_kind" json:"entity_kind"`
	EntityID   string             `bson:"entity_id" json:"entity_id"`
	Read       bool               `bson:"read" json:"read"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}
