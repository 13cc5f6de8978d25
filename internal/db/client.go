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

// ClientCollection defines the interface for client data operations.
type ClientCollection interface {
	InsertClient(ctx context.Context, client models.Client) (string, error)
	FindClients(ctx context.Context, filter bson.M) ([]models.Client, error)
	FindClientByID(ctx context.Context, id string) (*models.Client, error)
	FindClientByEmail(ctx context.Context, email string) (*models.Client, error)
	UpdateClient(ctx context.Context, id string, client models.Client) error
	DeleteClient(ctx context.Context, id string) error
	DeleteAllClients(ctx context.Context) error
}

// MongoClientCollection implements ClientCollection for MongoDB.
type MongoClientCollection struct {
	Collection *mongo.Collection
}

// InsertClient inserts a client record and returns its generated ID.
func (c *MongoClientCollection) InsertClient(ctx context.Context, client models.Client) (string, error) {
	client.CreatedAt = time.Now()
	client.UpdatedAt = time.Now()
	res, err := c.Collection.InsertOne(ctx, client)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// FindClients queries client records, sorted by company name.
func (c *MongoClientCollection) FindClients(ctx context.Context, filter bson.M) ([]models.Client, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := c.Collection.Find(ctx, filter, findSortedBy("company"))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var clients []models.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// FindClientByID finds a client by its ID.
func (c *MongoClientCollection) FindClientByID(ctx context.Context, id string) (*models.Client, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid client ID: %w", err)
	}
	var client models.Client
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&client)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

// FindClientByEmail finds a client by email for the duplicate check.
func (c *MongoClientCollection) FindClientByEmail(ctx context.Context, email string) (*models.Client, error) {
	var client models.Client
	err := c.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&client)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

// UpdateClient updates a client by its ID.
func (c *MongoClientCollection) UpdateClient(ctx context.Context, id string, client models.Client) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid client ID: %w", err)
	}
	client.UpdatedAt = time.Now()
	result, err := c.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": client})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteClient deletes a client by its ID.
func (c *MongoClientCollection) DeleteClient(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid client ID: %w", err)
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

// DeleteAllClients removes every client record.
func (c *MongoClientCollection) DeleteAllClients(ctx context.Context) error {
	_, err := c.Collection.DeleteMany(ctx, bson.M{})
	return err
}
