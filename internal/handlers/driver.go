package handlers

import (
	"net/http"
	"strings"

	"github.com/limovia/fleetcrm/internal/db"
	"github.com/limovia/fleetcrm/internal/events"
	"github.com/limovia/fleetcrm/internal/httpx"
	"github.com/limovia/fleetcrm/internal/i18n"
	"github.com/limovia/fleetcrm/internal/middleware"
	"github.com/limovia/fleetcrm/internal/models"
	"github.com/limovia/fleetcrm/internal/schedule"
	"github.com/limovia/fleetcrm/internal/validation"
)

// DriverHandler handles driver CRUD.
type DriverHandler struct {
	drivers  db.DriverCollection
	notifier *events.Notifier
}

// NewDriverHandler creates a driver handler.
func NewDriverHandler(drivers db.DriverCollection, notifier *events.Notifier) *DriverHandler {
	return &DriverHandler{drivers: drivers, notifier: notifier}
}

// List returns drivers, filtered by an optional case-insensitive search
// term and paginated.
func (h *DriverHandler) List(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.drivers.FindDrivers(r.Context(), nil)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	if search := r.URL.Query().Get("search"); search != "" {
		needle := strings.ToLower(search)
		filtered := drivers[:0]
		for _, d := range drivers {
			if strings.Contains(strings.ToLower(d.Name+" "+d.Email+" "+d.Phone), needle) {
				filtered = append(filtered, d)
			}
		}
		drivers = filtered
	}

	page := queryInt(r, "page", 1)
	size := queryInt(r, "page_size", 10)
	httpx.JSON(w, http.StatusOK, schedule.Paginate(drivers, page, size))
}

// Get returns one driver.
func (h *DriverHandler) Get(w http.ResponseWriter, r *http.Request) {
	driver, err := h.drivers.FindDriverByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, driver)
}

// Create inserts a driver after validation and the duplicate-email check.
func (h *DriverHandler) Create(w http.ResponseWriter, r *http.Request) {
	var driver models.Driver
	if !decodeBody(w, r, &driver) {
		return
	}
	lang := requestLang(r)

	v := validation.Violations{}
	validation.Required("name", driver.Name, v)
	validation.Email("email", driver.Email, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation failed", translate(lang, v))
		return
	}

	if driver.Email != "" {
		if _, err := h.drivers.FindDriverByEmail(r.Context(), driver.Email); err == nil {
			httpx.JSONError(w, http.StatusConflict, i18n.T(lang, "duplicate_email"), nil)
			return
		}
	}
	if driver.Status == "" {
		driver.Status = models.DriverAvailable
	}
	driver.IsActive = true

	id, err := h.drivers.InsertDriver(r.Context(), driver)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	h.notifyChange(r, events.EntityCreated, id)
	httpx.JSON(w, http.StatusCreated, map[string]string{"id": id})
}

// Update overwrites a driver's fields.
func (h *DriverHandler) Update(w http.ResponseWriter, r *http.Request) {
	var driver models.Driver
	if !decodeBody(w, r, &driver) {
		return
	}
	lang := requestLang(r)

	v := validation.Violations{}
	validation.Required("name", driver.Name, v)
	validation.Email("email", driver.Email, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation failed", translate(lang, v))
		return
	}

	id := r.PathValue("id")
	if err := h.drivers.UpdateDriver(r.Context(), id, driver); err != nil {
		writeStoreError(w, err)
		return
	}
	h.notifyChange(r, events.EntityUpdated, id)
	httpx.JSON(w, http.StatusOK, map[string]string{"id": id})
}

// Delete removes a driver.
func (h *DriverHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.drivers.DeleteDriver(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	h.notifyChange(r, events.EntityDeleted, id)
	httpx.JSON(w, http.StatusOK, map[string]string{"id": id})
}

func (h *DriverHandler) notifyChange(r *http.Request, eventType events.EventType, id string) {
	actor := ""
	if claims, ok := middleware.GetUserFromContext(r.Context()); ok {
		actor = claims.Username
	}
	h.notifier.EntityChanged(eventType, "driver", id, actor)
}
