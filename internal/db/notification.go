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

// NotificationCollection defines the interface for notification operations.
type NotificationCollection interface {
	InsertNotification(ctx context.Context, n models.Notification) (string, error)
	FindNotifications(ctx context.Context, recipient string, unreadOnly bool) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string) error
	DeleteAllNotifications(ctx context.Context) error
}

// MongoNotificationCollection implements NotificationCollection for MongoDB.
type MongoNotificationCollection struct {
	Collection *mongo.Collection
}

// InsertNotification inserts a notification and returns its generated ID.
func (c *MongoNotificationCollection) InsertNotification(ctx context.Context, n models.Notification) (string, error) {
	n.CreatedAt = time.Now()
	n.UpdatedAt = time.Now()
	res, err := c.Collection.InsertOne(ctx, n)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// FindNotifications returns notifications for one recipient, newest first.
func (c *MongoNotificationCollection) FindNotifications(ctx context.Context, recipient string, unreadOnly bool) ([]models.Notification, error) {
	filter := bson.M{"recipient": recipient}
	if unreadOnly {
		filter["read"] = false
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := c.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead marks one notification as read.
func (c *MongoNotificationCollection) MarkRead(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid notification ID: %w", err)
	}
	result, err := c.Collection.UpdateOne(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"read": true, "updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAllNotifications removes every notification.
func (c *MongoNotificationCollection) DeleteAllNotifications(ctx context.Context) error {
	_, err := c.Collection.DeleteMany(ctx, bson.M{})
	return err
}
