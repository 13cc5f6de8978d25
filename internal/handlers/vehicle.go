package handlers

import (
	"net/http"
	"strings"

	"github.com/limovia/fleetcrm/internal/db"
	"github.com/limovia/fleetcrm/internal/events"
	"github.com/limovia/fleetcrm/internal/httpx"
	"github.com/limovia/fleetcrm/internal/middleware"
	"github.com/limovia/fleetcrm/internal/models"
	"github.com/limovia/fleetcrm/internal/schedule"
	"github.com/limovia/fleetcrm/internal/validation"
	"go.mongodb.org/mongo-driver/bson"
)

// VehicleHandler handles vehicle CRUD.
type VehicleHandler struct {
	vehicles db.VehicleCollection
	notifier *events.Notifier
}

// NewVehicleHandler creates a vehicle handler.
func NewVehicleHandler(vehicles db.VehicleCollection, notifier *events.Notifier) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles, notifier: notifier}
}

// List returns vehicles with optional status filter, search and pagination.
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter bson.M
	if status := r.URL.Query().Get("status"); status != "" {
		filter = bson.M{"status": status}
	}
	vehicles, err := h.vehicles.FindVehicles(r.Context(), filter)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	if search := r.URL.Query().Get("search"); search != "" {
		needle := strings.ToLower(search)
		filtered := vehicles[:0]
		for _, v := range vehicles {
			if strings.Contains(strings.ToLower(v.Name+" "+v.Make+" "+v.Model+" "+v.PlateNumber), needle) {
				filtered = append(filtered, v)
			}
		}
		vehicles = filtered
	}

	page := queryInt(r, "page", 1)
	size := queryInt(r, "page_size", 10)
	httpx.JSON(w, http.StatusOK, schedule.Paginate(vehicles, page, size))
}

// Get returns one vehicle.
func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	vehicle, err := h.vehicles.FindVehicleByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, vehicle)
}

// Create inserts a vehicle.
func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var vehicle models.Vehicle
	if !decodeBody(w, r, &vehicle) {
		return
	}
	lang := requestLang(r)

	v := validation.Violations{}
	validation.Required("name", vehicle.Name, v)
	validation.MinInt("capacity", vehicle.Capacity, 1, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation failed", translate(lang, v))
		return
	}
	if vehicle.Status == "" {
		vehicle.Status = models.VehicleActive
	}

	id, err := h.vehicles.InsertVehicle(r.Context(), vehicle)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	h.notifyChange(r, events.EntityCreated, id)
	httpx.JSON(w, http.StatusCreated, map[string]string{"id": id})
}

// Update overwrites a vehicle's fields.
func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var vehicle models.Vehicle
	if !decodeBody(w, r, &vehicle) {
		return
	}
	lang := requestLang(r)

	v := validation.Violations{}
	validation.Required("name", vehicle.Name, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation failed", translate(lang, v))
		return
	}

	id := r.PathValue("id")
	if err := h.vehicles.UpdateVehicle(r.Context(), id, vehicle); err != nil {
		writeStoreError(w, err)
		return
	}
	h.notifyChange(r, events.EntityUpdated, id)
	httpx.JSON(w, http.StatusOK, map[string]string{"id": id})
}

// Delete removes a vehicle.
func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.vehicles.DeleteVehicle(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	h.notifyChange(r, events.EntityDeleted, id)
	httpx.JSON(w, http.StatusOK, map[string]string{"id": id})
}

func (h *VehicleHandler) notifyChange(r *http.Request, eventType events.EventType, id string) {
	actor := ""
	if claims, ok := middleware.GetUserFromContext(r.Context()); ok {
		actor = claims.Username
	}
	h.notifier.EntityChanged(eventType, "vehicle", id, actor)
}
