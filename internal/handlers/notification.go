package handlers

import (
	"net/http"

	"github.com/limovia/fleetcrm/internal/db"
	"github.com/limovia/fleetcrm/internal/httpx"
	"github.com/limovia/fleetcrm/internal/middleware"
)

// NotificationHandler lets dashboards poll and acknowledge notifications.
type NotificationHandler struct {
	notifications db.NotificationCollection
}

// NewNotificationHandler creates a notification handler.
func NewNotificationHandler(notifications db.NotificationCollection) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// List returns the caller's notifications, optionally unread only.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		httpx.JSONError(w, http.StatusUnauthorized, "user context not found", nil)
		return
	}

	unreadOnly := r.URL.Query().Get("unread") == "true"
	notifications, err := h.notifications.FindNotifications(r.Context(), claims.UserID, unreadOnly)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, notifications)
}

// MarkRead acknowledges one notification.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.notifications.MarkRead(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"id": id})
}
