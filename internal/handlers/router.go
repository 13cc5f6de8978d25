package handlers

import (
	"net/http"

	"github.com/limovia/fleetcrm/internal/httpx"
	"github.com/limovia/fleetcrm/internal/middleware"
)

// Handlers bundles the feature handlers the router wires up.
type Handlers struct {
	Auth          *AuthHandler
	Drivers       *DriverHandler
	Vehicles      *VehicleHandler
	Clients       *ClientHandler
	Companies     *CompanyHandler
	Trips         *TripHandler
	Documents     *DocumentHandler
	Notifications *NotificationHandler
}

// NewRouter builds the API mux. Owner-only routes are wrapped in the role
// gate; trips and notifications are reachable by drivers, scoped inside
// the handlers.
func NewRouter(h Handlers, authMW *middleware.AuthMiddleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("GET /api/auth/me", h.Auth.Me)
	mux.HandleFunc("PUT /api/profile/language", h.Auth.UpdateLanguage)

	owner := func(fn http.HandlerFunc) http.Handler {
		return authMW.RequireOwner(fn)
	}

	mux.Handle("GET /api/drivers", owner(h.Drivers.List))
	mux.Handle("GET /api/drivers/{id}", owner(h.Drivers.Get))
	mux.Handle("POST /api/drivers", owner(h.Drivers.Create))
	mux.Handle("PUT /api/drivers/{id}", owner(h.Drivers.Update))
	mux.Handle("DELETE /api/drivers/{id}", owner(h.Drivers.Delete))

	mux.Handle("GET /api/vehicles", owner(h.Vehicles.List))
	mux.Handle("GET /api/vehicles/{id}", owner(h.Vehicles.Get))
	mux.Handle("POST /api/vehicles", owner(h.Vehicles.Create))
	mux.Handle("PUT /api/vehicles/{id}", owner(h.Vehicles.Update))
	mux.Handle("DELETE /api/vehicles/{id}", owner(h.Vehicles.Delete))

	mux.Handle("GET /api/clients", owner(h.Clients.List))
	mux.Handle("GET /api/clients/{id}", owner(h.Clients.Get))
	mux.Handle("POST /api/clients", owner(h.Clients.Create))
	mux.Handle("PUT /api/clients/{id}", owner(h.Clients.Update))
	mux.Handle("DELETE /api/clients/{id}", owner(h.Clients.Delete))

	mux.Handle("GET /api/companies", owner(h.Companies.ListCompanies))
	mux.Handle("POST /api/companies", owner(h.Companies.CreateCompany))
	mux.Handle("PUT /api/companies/{id}", owner(h.Companies.UpdateCompany))
	mux.Handle("DELETE /api/companies/{id}", owner(h.Companies.DeleteCompany))

	mux.Handle("GET /api/brands", owner(h.Companies.ListBrands))
	mux.Handle("POST /api/brands", owner(h.Companies.CreateBrand))
	mux.Handle("PUT /api/brands/{id}", owner(h.Companies.UpdateBrand))
	mux.Handle("DELETE /api/brands/{id}", owner(h.Companies.DeleteBrand))

	mux.HandleFunc("GET /api/trips", h.Trips.List)
	mux.HandleFunc("GET /api/trips/{id}", h.Trips.Get)
	mux.HandleFunc("GET /api/plannings", h.Trips.Planning)
	mux.HandleFunc("GET /api/plannings/pdf", h.Trips.SchedulePDF)
	mux.Handle("POST /api/trips", owner(h.Trips.Create))
	mux.Handle("PUT /api/trips/{id}", owner(h.Trips.Update))
	mux.Handle("DELETE /api/trips/{id}", owner(h.Trips.Delete))

	mux.Handle("GET /api/documents", owner(h.Documents.List))
	mux.Handle("GET /api/documents/{id}", owner(h.Documents.Get))
	mux.Handle("GET /api/documents/{id}/pdf", owner(h.Documents.PDF))
	mux.Handle("POST /api/documents", owner(h.Documents.Create))
	mux.Handle("PUT /api/documents/{id}", owner(h.Documents.Update))
	mux.Handle("DELETE /api/documents/{id}", owner(h.Documents.Delete))

	mux.HandleFunc("GET /api/notifications", h.Notifications.List)
	mux.HandleFunc("POST /api/notifications/{id}/read", h.Notifications.MarkRead)

	return mux
}
