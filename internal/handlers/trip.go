package handlers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/limovia/fleetcrm/internal/db"
	"github.com/limovia/fleetcrm/internal/events"
	"github.com/limovia/fleetcrm/internal/httpx"
	"github.com/limovia/fleetcrm/internal/middleware"
	"github.com/limovia/fleetcrm/internal/models"
	"github.com/limovia/fleetcrm/internal/pdf"
	"github.com/limovia/fleetcrm/internal/schedule"
	log "github.com/sirupsen/logrus"
)

// TripHandler handles trip CRUD, the planning calendar and the day
// schedule export.
type TripHandler struct {
	trips    db.TripCollection
	drivers  db.DriverCollection
	vehicles db.VehicleCollection
	notifier *events.Notifier
}

// NewTripHandler creates a trip handler.
func NewTripHandler(trips db.TripCollection, drivers db.DriverCollection, vehicles db.VehicleCollection, notifier *events.Notifier) *TripHandler {
	return &TripHandler{trips: trips, drivers: drivers, vehicles: vehicles, notifier: notifier}
}

// tripsForCaller returns the trip list the caller may see: owners see
// everything, drivers only the trips assigned to their driver profile.
func (h *TripHandler) tripsForCaller(r *http.Request) ([]models.Trip, error) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if ok && claims.Role == models.RoleDriver {
		driver, err := h.drivers.FindDriverByUserID(r.Context(), claims.UserID)
		if err != nil {
			// A driver account without a profile sees an empty planning,
			// not an error.
			log.WithField("user_id", claims.UserID).Warn("driver account has no driver profile")
			return nil, nil
		}
		return h.trips.FindTripsByDriver(r.Context(), driver.ID.Hex())
	}
	return h.trips.FindTrips(r.Context(), nil)
}

// List returns the filtered, paginated trip list. Filters: date (canonical
// YYYY-MM-DD), driver name ("all" matches any), search substring.
func (h *TripHandler) List(w http.ResponseWriter, r *http.Request) {
	trips, err := h.tripsForCaller(r)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	filter := schedule.Filter{
		Date:   r.URL.Query().Get("date"),
		Driver: r.URL.Query().Get("driver"),
		Search: r.URL.Query().Get("search"),
	}
	filtered := filter.Apply(trips)

	page := queryInt(r, "page", 1)
	size := queryInt(r, "page_size", 10)
	httpx.JSON(w, http.StatusOK, schedule.Paginate(filtered, page, size))
}

// Planning returns the trips visible in a calendar view. Query params:
// view (month|week|day), anchor (YYYY-MM-DD, default today), direction
// (-1, 0, 1 relative navigation).
func (h *TripHandler) Planning(w http.ResponseWriter, r *http.Request) {
	mode := schedule.ViewMode(r.URL.Query().Get("view"))
	if !schedule.IsValidViewMode(mode) {
		mode = schedule.ViewMonth
	}

	now := time.Now()
	anchor := now
	if s := r.URL.Query().Get("anchor"); s != "" {
		parsed, err := schedule.ParseDate(s, time.Local)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid anchor date", nil)
			return
		}
		anchor = parsed
	}
	if dir := queryInt(r, "direction", 0); dir != 0 {
		anchor = schedule.Navigate(mode, anchor, dir, now)
	}
	dateRange := schedule.RangeFor(mode, anchor)

	trips, err := h.tripsForCaller(r)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	visible := make([]models.Trip, 0, len(trips))
	for _, trip := range trips {
		date, err := schedule.NormalizeDate(trip.Date)
		if err != nil {
			log.WithFields(log.Fields{"trip_id": trip.ID.Hex(), "date": trip.Date}).Warn("skipping trip with bad date")
			continue
		}
		if dateRange.Contains(date) {
			visible = append(visible, trip)
		}
	}

	httpx.JSON(w, http.StatusOK, map[string]any{
		"view":   mode,
		"anchor": schedule.NormalizeTime(anchor),
		"range":  dateRange,
		"trips":  visible,
	})
}

// Get returns one trip.
func (h *TripHandler) Get(w http.ResponseWriter, r *http.Request) {
	trip, err := h.trips.FindTripByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, trip)
}

// Create validates and inserts a trip. Driver and vehicle references are
// resolved best effort: a missing driver does not block the booking, it is
// logged and the name snapshot stays empty.
func (h *TripHandler) Create(w http.ResponseWriter, r *http.Request) {
	var trip models.Trip
	if !decodeBody(w, r, &trip) {
		return
	}
	lang := requestLang(r)

	if v := schedule.ValidateTrip(trip); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation failed", translate(lang, v))
		return
	}
	trip.Date, _ = schedule.NormalizeDate(trip.Date)
	if trip.Status == "" {
		trip.Status = models.TripAssigned
	}
	h.snapshotDriverName(r, &trip)

	id, err := h.trips.InsertTrip(r.Context(), trip)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	created, err := h.trips.FindTripByID(r.Context(), id)
	if err == nil {
		h.notifyTrip(r, events.EntityCreated, created)
	}
	httpx.JSON(w, http.StatusCreated, map[string]string{"id": id})
}

// Update validates and overwrites a trip.
func (h *TripHandler) Update(w http.ResponseWriter, r *http.Request) {
	var trip models.Trip
	if !decodeBody(w, r, &trip) {
		return
	}
	lang := requestLang(r)

	if v := schedule.ValidateTrip(trip); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation failed", translate(lang, v))
		return
	}
	trip.Date, _ = schedule.NormalizeDate(trip.Date)
	h.snapshotDriverName(r, &trip)

	id := r.PathValue("id")
	if err := h.trips.UpdateTrip(r.Context(), id, trip); err != nil {
		writeStoreError(w, err)
		return
	}

	updated, err := h.trips.FindTripByID(r.Context(), id)
	if err == nil {
		h.notifyTrip(r, events.EntityUpdated, updated)
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"id": id})
}

// Delete removes a trip.
func (h *TripHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	trip, findErr := h.trips.FindTripByID(r.Context(), id)
	if err := h.trips.DeleteTrip(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	if findErr == nil {
		h.notifyTrip(r, events.EntityDeleted, trip)
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"id": id})
}

// SchedulePDF streams the day schedule for the given date and driver
// filter as a PDF download.
func (h *TripHandler) SchedulePDF(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = schedule.NormalizeTime(time.Now())
	}
	if _, err := schedule.ParseDate(date, time.Local); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid date", nil)
		return
	}
	driver := r.URL.Query().Get("driver")

	trips, err := h.tripsForCaller(r)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	filtered := schedule.Filter{Date: date, Driver: driver}.Apply(trips)

	var buf bytes.Buffer
	if err := pdf.RenderSchedule(&buf, date, driver, filtered, requestLang(r)); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+pdf.ScheduleFilename(date)+`"`)
	_, _ = w.Write(buf.Bytes())
}

// snapshotDriverName copies the driver's display name onto the trip so the
// planning stays readable after the driver record changes or goes away.
func (h *TripHandler) snapshotDriverName(r *http.Request, trip *models.Trip) {
	if trip.DriverID == "" || trip.DriverName != "" {
		return
	}
	driver, err := h.drivers.FindDriverByID(r.Context(), trip.DriverID)
	if err != nil {
		log.WithFields(log.Fields{"driver_id": trip.DriverID}).Warn("trip references unknown driver")
		return
	}
	trip.DriverName = driver.Name
}

func (h *TripHandler) notifyTrip(r *http.Request, eventType events.EventType, trip *models.Trip) {
	actor := ""
	if claims, ok := middleware.GetUserFromContext(r.Context()); ok {
		actor = claims.Username
	}
	h.notifier.TripChanged(r.Context(), eventType, trip, actor)
}
