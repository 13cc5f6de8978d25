package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("document not found")

// findSortedBy returns find options sorting ascending on the given field.
func findSortedBy(field string) *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: field, Value: 1}})
}

// Collection names used by the CRM.
const (
	CollUsers         = "users"
	CollDrivers       = "drivers"
	CollVehicles      = "vehicles"
	CollClients       = "clients"
	CollCompanies     = "companies"
	CollBrands        = "brands"
	CollTrips         = "trips"
	CollDocuments     = "documents"
	CollNotifications = "notifications"
)

// Connect dials MongoDB and verifies the connection with a ping, retrying
// with exponential backoff so the server survives a store that is still
// starting up.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect error: %w", err)
	}

	ping := func() error {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx, nil); err != nil {
			log.WithError(err).Warn("mongo ping failed, retrying")
			return err
		}
		return nil
	}

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5)
	if err := backoff.Retry(ping, backoff.WithContext(policy, ctx)); err != nil {
		return nil, fmt.Errorf("mongo.Ping error: %w", err)
	}
	return client, nil
}

// Store bundles the typed collection accessors over one database.
type Store struct {
	Users         UserCollection
	Drivers       DriverCollection
	Vehicles      VehicleCollection
	Clients       ClientCollection
	Companies     CompanyCollection
	Brands        BrandCollection
	Trips         TripCollection
	Documents     DocumentCollection
	Notifications NotificationCollection
}

// NewStore wires the Mongo-backed collections for the named database.
func NewStore(client *mongo.Client, dbName string) *Store {
	database := client.Database(dbName)
	return &Store{
		Users:         &MongoUserCollection{Collection: database.Collection(CollUsers)},
		Drivers:       &MongoDriverCollection{Collection: database.Collection(CollDrivers)},
		Vehicles:      &MongoVehicleCollection{Collection: database.Collection(CollVehicles)},
		Clients:       &MongoClientCollection{Collection: database.Collection(CollClients)},
		Companies:     &MongoCompanyCollection{Collection: database.Collection(CollCompanies)},
		Brands:        &MongoBrandCollection{Collection: database.Collection(CollBrands)},
		Trips:         &MongoTripCollection{Collection: database.Collection(CollTrips)},
		Documents:     &MongoDocumentCollection{Collection: database.Collection(CollDocuments)},
		Notifications: &MongoNotificationCollection{Collection: database.Collection(CollNotifications)},
	}
}
