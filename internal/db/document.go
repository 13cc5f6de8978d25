package db

import (
	"context"
	"fmt"
	"time"

	"github.com/limovia/fleetcrm/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DocumentCollection defines the interface for billing document operations.
// Invoices, quotes, proformas and credit notes share one collection,
// discriminated by the kind field.
type DocumentCollection interface {
	InsertDocument(ctx context.Context, doc models.Document) (string, error)
	FindDocuments(ctx context.Context, kind models.DocumentKind) ([]models.Document, error)
	FindDocumentByID(ctx context.Context, id string) (*models.Document, error)
	CountByKind(ctx context.Context, kind models.DocumentKind) (int64, error)
	UpdateDocument(ctx context.Context, id string, doc models.Document) error
	DeleteDocument(ctx context.Context, id string) error
	DeleteAllDocuments(ctx context.Context) error
}

// MongoDocumentCollection implements DocumentCollection for MongoDB.
type MongoDocumentCollection struct {
	Collection *mongo.Collection
}

// InsertDocument inserts a billing document and returns its generated ID.
func (c *MongoDocumentCollection) InsertDocument(ctx context.Context, doc models.Document) (string, error) {
	doc.CreatedAt = time.Now()
	doc.UpdatedAt = time.Now()
	res, err := c.Collection.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// FindDocuments returns documents of one kind, newest issue date first.
// An empty kind returns everything.
func (c *MongoDocumentCollection) FindDocuments(ctx context.Context, kind models.DocumentKind) ([]models.Document, error) {
	filter := bson.M{}
	if kind != "" {
		filter["kind"] = kind
	}
	opts := options.Find().SetSort(bson.D{{Key: "issue_date", Value: -1}})
	cursor, err := c.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var docs []models.Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// FindDocumentByID finds a billing document by its ID.
func (c *MongoDocumentCollection) FindDocumentByID(ctx context.Context, id string) (*models.Document, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid document ID: %w", err)
	}
	var doc models.Document
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// CountByKind counts documents of one kind. Used for number sequencing.
func (c *MongoDocumentCollection) CountByKind(ctx context.Context, kind models.DocumentKind) (int64, error) {
	return c.Collection.CountDocuments(ctx, bson.M{"kind": kind})
}

// UpdateDocument updates a billing document by its ID.
func (c *MongoDocumentCollection) UpdateDocument(ctx context.Context, id string, doc models.Document) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid document ID: %w", err)
	}
	doc.UpdatedAt = time.Now()
	result, err := c.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": doc})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteDocument deletes a billing document by its ID.
func (c *MongoDocumentCollection) DeleteDocument(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid document ID: %w", err)
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

// DeleteAllDocuments removes every billing document.
func (c *MongoDocumentCollection) DeleteAllDocuments(ctx context.Context) error {
	_, err := c.Collection.DeleteMany(ctx, bson.M{})
	return err
}
