package db

import (
	"context"
	"fmt"
	"time"

	"github.com/limovia/fleetcrm/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DriverCollection defines the interface for driver data operations.
type DriverCollection interface {
	InsertDriver(ctx context.Context, driver models.Driver) (string, error)
	FindDrivers(ctx context.Context, filter bson.M) ([]models.Driver, error)
	FindDriverByID(ctx context.Context, id string) (*models.Driver, error)
	FindDriverByEmail(ctx context.Context, email string) (*models.Driver, error)
	FindDriverByUserID(ctx context.Context, userID string) (*models.Driver, error)
	UpdateDriver(ctx context.Context, id string, driver models.Driver) error
	DeleteDriver(ctx context.Context, id string) error
	DeleteAllDrivers(ctx context.Context) error
}

// MongoDriverCollection implements DriverCollection for MongoDB.
type MongoDriverCollection struct {
	Collection *mongo.Collection
}

// InsertDriver inserts a driver record and returns its generated ID.
func (c *MongoDriverCollection) InsertDriver(ctx context.Context, driver models.Driver) (string, error) {
	driver.CreatedAt = time.Now()
	driver.UpdatedAt = time.Now()
	res, err := c.Collection.InsertOne(ctx, driver)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// FindDrivers queries driver records, sorted by name.
func (c *MongoDriverCollection) FindDrivers(ctx context.Context, filter bson.M) ([]models.Driver, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := c.Collection.Find(ctx, filter, findSortedBy("name"))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var drivers []models.Driver
	if err := cursor.All(ctx, &drivers); err != nil {
		return nil, err
	}
	return drivers, nil
}

// FindDriverByID finds a driver by its ID.
func (c *MongoDriverCollection) FindDriverByID(ctx context.Context, id string) (*models.Driver, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid driver ID: %w", err)
	}
	var driver models.Driver
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&driver)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &driver, nil
}

// FindDriverByEmail finds a driver by email. Used for the pre-insert
// duplicate check.
func (c *MongoDriverCollection) FindDriverByEmail(ctx context.Context, email string) (*models.Driver, error) {
	var driver models.Driver
	err := c.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&driver)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &driver, nil
}

// FindDriverByUserID finds the driver profile linked to a user account.
func (c *MongoDriverCollection) FindDriverByUserID(ctx context.Context, userID string) (*models.Driver, error) {
	var driver models.Driver
	err := c.Collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&driver)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &driver, nil
}

// UpdateDriver updates a driver by its ID.
func (c *MongoDriverCollection) UpdateDriver(ctx context.Context, id string, driver models.Driver) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid driver ID: %w", err)
	}
	driver.UpdatedAt = time.Now()
	result, err := c.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": driver})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteDriver deletes a driver by its ID.
func (c *MongoDriverCollection) DeleteDriver(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid driver ID: %w", err)
	}
	result, err := c.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAllDrivers removes every driver record.
func (c *MongoDriverCollection) DeleteAllDrivers(ctx context.Context) error {
	_, err := c.Collection.DeleteMany(ctx, bson.M{})
	return err
}
