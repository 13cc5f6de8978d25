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

// ClientHandler handles client CRUD.
type ClientHandler struct {
	clients  db.ClientCollection
	notifier *events.Notifier
}

// NewClientHandler creates a client handler.
func NewClientHandler(clients db.ClientCollection, notifier *events.Notifier) *ClientHandler {
	return &ClientHandler{clients: clients, notifier: notifier}
}

// List returns clients with optional search and pagination.
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clients.FindClients(r.Context(), nil)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	if search := r.URL.Query().Get("search"); search != "" {
		needle := strings.ToLower(search)
		filtered := clients[:0]
		for _, c := range clients {
			if strings.Contains(strings.ToLower(c.Company+" "+c.Contact+" "+c.City+" "+c.Email), needle) {
				filtered = append(filtered, c)
			}
		}
		clients = filtered
	}

	page := queryInt(r, "page", 1)
	size := queryInt(r, "page_size", 10)
	httpx.JSON(w, http.StatusOK, schedule.Paginate(clients, page, size))
}

// Get returns one client.
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	client, err := h.clients.FindClientByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, client)
}

// Create inserts a client after validation and the duplicate-email check.
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var client models.Client
	if !decodeBody(w, r, &client) {
		return
	}
	lang := requestLang(r)

	v := validation.Violations{}
	validation.Required("company", client.Company, v)
	validation.Email("email", client.Email, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation failed", translate(lang, v))
		return
	}

	if client.Email != "" {
		if _, err := h.clients.FindClientByEmail(r.Context(), client.Email); err == nil {
			httpx.JSONError(w, http.StatusConflict, i18n.T(lang, "duplicate_email"), nil)
			return
		}
	}
	if client.Status == "" {
		client.Status = models.ClientActive
	}

	id, err := h.clients.InsertClient(r.Context(), client)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	h.notifyChange(r, events.EntityCreated, id)
	httpx.JSON(w, http.StatusCreated, map[string]string{"id": id})
}

// Update overwrites a client's fields.
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	var client models.Client
	if !decodeBody(w, r, &client) {
		return
	}
	lang := requestLang(r)

	v := validation.Violations{}
	validation.Required("company", client.Company, v)
	validation.Email("email", client.Email, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation failed", translate(lang, v))
		return
	}

	id := r.PathValue("id")
	if err := h.clients.UpdateClient(r.Context(), id, client); err != nil {
		writeStoreError(w, err)
		return
	}
	h.notifyChange(r, events.EntityUpdated, id)
	httpx.JSON(w, http.StatusOK, map[string]string{"id": id})
}

// Delete removes a client.
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.clients.DeleteClient(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	h.notifyChange(r, events.EntityDeleted, id)
	httpx.JSON(w, http.StatusOK, map[string]string{"id": id})
}

func (h *ClientHandler) notifyChange(r *http.Request, eventType events.EventType, id string) {
	actor := ""
	if claims, ok := middleware.GetUserFromContext(r.Context()); ok {
		actor = claims.Username
	}
	h.notifier.EntityChanged(eventType, "client", id, actor)
}
