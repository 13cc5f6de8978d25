package events

import (
	"context"

	"github.com/limovia/fleetcrm/internal/db"
	"github.com/limovia/fleetcrm/internal/i18n"
	"github.com/limovia/fleetcrm/internal/models"
	log "github.com/sirupsen/logrus"
)

// Notifier fans entity changes out to the event topic and, for trip
// changes that concern a driver, to the notifications collection the
// driver dashboard polls.
type Notifier struct {
	producer      *Producer
	notifications db.NotificationCollection
	drivers       db.DriverCollection
}

// NewNotifier builds a notifier. The producer may be nil.
func NewNotifier(producer *Producer, notifications db.NotificationCollection, drivers db.DriverCollection) *Notifier {
	return &Notifier{producer: producer, notifications: notifications, drivers: drivers}
}

// EntityChanged publishes a bare entity-change event.
func (n *Notifier) EntityChanged(eventType EventType, entityKind, entityID, actor string) {
	n.producer.Publish(eventType, entityKind, entityID, actor)
}

// TripChanged publishes the event and notifies the assigned driver. A trip
// whose driver no longer exists is tolerated: the event still goes out and
// the miss is logged.
func (n *Notifier) TripChanged(ctx context.Context, eventType EventType, trip *models.Trip, actor string) {
	n.producer.Publish(eventType, "trip", trip.ID.Hex(), actor)

	if trip.DriverID == "" {
		return
	}
	driver, err := n.drivers.FindDriverByID(ctx, trip.DriverID)
	if err != nil {
		log.WithFields(log.Fields{
			"trip_id":   trip.ID.Hex(),
			"driver_id": trip.DriverID,
		}).WithError(err).Warn("trip references missing driver, skipping notification")
		return
	}
	if driver.UserID == "" {
		return
	}

	kind := "trip_updated"
	switch {
	case eventType == EntityCreated:
		kind = "trip_assigned"
	case eventType == EntityDeleted || trip.Status == models.TripCancelled:
		kind = "trip_cancelled"
	}

	notification := models.Notification{
		Recipient:  driver.UserID,
		Kind:       kind,
		Message:    i18n.T(i18n.DefaultLang, kind),
		EntityKind: "trip",
		EntityID:   trip.ID.Hex(),
	}
	if _, err := n.notifications.InsertNotification(ctx, notification); err != nil {
		log.WithError(err).WithField("trip_id", trip.ID.Hex()).Error("failed to store notification")
	}
}
