package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/limovia/fleetcrm/internal/auth"
	"github.com/limovia/fleetcrm/internal/config"
	"github.com/limovia/fleetcrm/internal/db"
	"github.com/limovia/fleetcrm/internal/models"
	"github.com/limovia/fleetcrm/internal/schedule"
	log "github.com/sirupsen/logrus"
)

// Bulk tool: populate the collections with sample data, or clear
// everything. Failed items are logged and skipped; the summary at the end
// reports inserted and failed counts per collection.
func main() {
	clear := flag.Bool("clear", false, "delete all data instead of populating")
	flag.Parse()

	cfg := config.Load()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer client.Disconnect(ctx)
	store := db.NewStore(client, cfg.MongoDB)

	if *clear {
		clearAll(ctx, store)
		return
	}
	populate(ctx, store, cfg)
}

func clearAll(ctx context.Context, store *db.Store) {
	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"users", store.Users.DeleteAllUsers},
		{"drivers", store.Drivers.DeleteAllDrivers},
		{"vehicles", store.Vehicles.DeleteAllVehicles},
		{"clients", store.Clients.DeleteAllClients},
		{"companies", store.Companies.DeleteAllCompanies},
		{"brands", store.Brands.DeleteAllBrands},
		{"trips", store.Trips.DeleteAllTrips},
		{"documents", store.Documents.DeleteAllDocuments},
		{"notifications", store.Notifications.DeleteAllNotifications},
	}
	for _, step := range steps {
		if err := step.fn(ctx); err != nil {
			log.WithError(err).WithField("collection", step.name).Error("clear failed, continuing")
			continue
		}
		log.WithField("collection", step.name).Info("cleared")
	}
}

type counter struct {
	inserted int
	failed   int
}

func (c *counter) track(name string, err error) {
	if err != nil {
		c.failed++
		log.WithError(err).WithField("item", name).Warn("insert failed, continuing")
		return
	}
	c.inserted++
}

func populate(ctx context.Context, store *db.Store, cfg config.Config) {
	authService := auth.NewService(cfg.JWTSecret, cfg.JWTExpiry)
	summary := map[string]*counter{}
	count := func(coll string) *counter {
		if summary[coll] == nil {
			summary[coll] = &counter{}
		}
		return summary[coll]
	}

	ownerHash, err := authService.HashPassword("owner-secret-1")
	if err != nil {
		log.WithError(err).Fatal("failed to hash password")
	}
	driverHash, _ := authService.HashPassword("driver-secret-1")

	_, err = store.Users.InsertUser(ctx, models.User{
		Username: "owner", Email: "owner@limovia.example", PasswordHash: ownerHash,
		Role: models.RoleOwner, FirstName: "Olivia", LastName: "Martin", Language: "fr",
	})
	count("users").track("owner", err)

	driverUserID, err := store.Users.InsertUser(ctx, models.User{
		Username: "jdupont", Email: "j.dupont@limovia.example", PasswordHash: driverHash,
		Role: models.RoleDriver, FirstName: "Jean", LastName: "Dupont", Language: "fr",
	})
	count("users").track("jdupont", err)

	drivers := []models.Driver{
		{Name: "Jean Dupont", Email: "j.dupont@limovia.example", Phone: "+33 6 11 22 33 44",
			LicenseNumber: "75-123456", Status: models.DriverAvailable, IsActive: true, UserID: driverUserID},
		{Name: "Marc Lefevre", Email: "m.lefevre@limovia.example", Phone: "+33 6 55 66 77 88",
			LicenseNumber: "75-654321", Status: models.DriverAvailable, IsActive: true},
		{Name: "Sofia Ricci", Email: "s.ricci@limovia.example", Phone: "+33 7 12 34 56 78",
			LicenseNumber: "92-111222", Status: models.DriverOffDuty, IsActive: true},
	}
	driverIDs := make([]string, 0, len(drivers))
	driverNames := make([]string, 0, len(drivers))
	for _, d := range drivers {
		id, err := store.Drivers.InsertDriver(ctx, d)
		count("drivers").track(d.Name, err)
		if err == nil {
			driverIDs = append(driverIDs, id)
			driverNames = append(driverNames, d.Name)
		}
	}

	vehicles := []models.Vehicle{
		{Name: "Berline 1", Make: "Mercedes-Benz", Model: "Classe S", Year: 2022, Type: "sedan",
			Capacity: 3, PlateNumber: "AB-123-CD", Status: models.VehicleActive, FuelLevel: 82, Mileage: 45210},
		{Name: "Van 1", Make: "Mercedes-Benz", Model: "Classe V", Year: 2023, Type: "van",
			Capacity: 7, PlateNumber: "EF-456-GH", Status: models.VehicleActive, FuelLevel: 64, Mileage: 23100},
		{Name: "Limousine 1", Make: "Lincoln", Model: "Continental", Year: 2021, Type: "limousine",
			Capacity: 8, PlateNumber: "IJ-789-KL", Status: models.VehicleMaintenance, FuelLevel: 40, Mileage: 88700},
	}
	vehicleIDs := make([]string, 0, len(vehicles))
	for _, v := range vehicles {
		id, err := store.Vehicles.InsertVehicle(ctx, v)
		count("vehicles").track(v.Name, err)
		if err == nil {
			vehicleIDs = append(vehicleIDs, id)
		}
	}

	clients := []models.Client{
		{Company: "Hotel Le Grand", Contact: "Reception", Address: "12 rue de Rivoli", PostalCode: "75001",
			City: "Paris", Country: "France", Phone: "+33 1 40 00 00 01", Email: "contact@legrand.example", Status: models.ClientActive},
		{Company: "Aeroport Business Travel", Contact: "B. Morel", Address: "95 aerogare CDG", PostalCode: "95700",
			City: "Roissy", Country: "France", Phone: "+33 1 48 00 00 02", Email: "ops@abt.example", Status: models.ClientActive},
	}
	for _, c := range clients {
		_, err := store.Clients.InsertClient(ctx, c)
		count("clients").track(c.Company, err)
	}

	_, err = store.Companies.InsertCompany(ctx, models.Company{
		Name: "Limovia SARL", Address: "8 avenue Montaigne, 75008 Paris",
		Phone: "+33 1 42 00 00 00", Email: "billing@limovia.example",
		VATNumber: "FR 12 345678901", Website: "https://limovia.example",
	})
	count("companies").track("Limovia SARL", err)

	_, err = store.Brands.InsertBrand(ctx, models.Brand{Name: "Limovia Prestige", Status: "active"})
	count("brands").track("Limovia Prestige", err)

	today := schedule.NormalizeTime(time.Now())
	tomorrow := schedule.NormalizeTime(time.Now().AddDate(0, 0, 1))
	trips := []models.Trip{
		{Title: "Transfert CDG", ClientName: "Hotel Le Grand", Pickup: "Hotel Le Grand, Paris",
			Destination: "Aeroport CDG T2E", Date: today, TimeRange: "08:30 - 10:00",
			Passengers: 2, Price: 120, Status: models.TripAssigned},
		{Title: "Mise a disposition", ClientName: "Aeroport Business Travel", Pickup: "Gare de Lyon",
			Destination: "La Defense", Date: today, TimeRange: "14:00 - 18:00",
			Passengers: 3, Price: 340, Status: models.TripAssigned},
		{Title: "Transfert Orly", ClientName: "Hotel Le Grand", Pickup: "Hotel Le Grand, Paris",
			Destination: "Aeroport Orly 4", Date: tomorrow, TimeRange: "09:15 - 10:30",
			Passengers: 1, Price: 95, Status: models.TripAssigned},
	}
	for i := range trips {
		if len(driverIDs) > 0 {
			trips[i].DriverID = driverIDs[i%len(driverIDs)]
			trips[i].DriverName = driverNames[i%len(driverIDs)]
		}
		if len(vehicleIDs) > 0 {
			trips[i].VehicleID = vehicleIDs[i%len(vehicleIDs)]
		}
		_, err := store.Trips.InsertTrip(ctx, trips[i])
		count("trips").track(trips[i].Title, err)
	}

	docs := []models.Document{
		{Kind: models.KindInvoice, Number: "FAC-2026-0001", IssueDate: today,
			ClientName: "Hotel Le Grand", ClientAddr: "12 rue de Rivoli, 75001 Paris",
			Items: []models.LineItem{
				{Description: "Transfert aeroport CDG", Quantity: 1, UnitPrice: 120, VATRate: 10},
				{Description: "Attente (30 min)", Quantity: 1, UnitPrice: 25, VATRate: 10},
			}, Status: models.DocumentSent},
		{Kind: models.KindQuote, Number: "DEV-2026-0001", IssueDate: today,
			ClientName: "Aeroport Business Travel", ClientAddr: "95 aerogare CDG, 95700 Roissy",
			Items: []models.LineItem{
				{Description: "Mise a disposition journee", Quantity: 1, UnitPrice: 680, VATRate: 20},
			}, Status: models.DocumentDraft},
		{Kind: models.KindCreditNote, Number: "AVR-2026-0001", IssueDate: today,
			ClientName: "Hotel Le Grand", ClientAddr: "12 rue de Rivoli, 75001 Paris",
			Items: []models.LineItem{
				{Description: "Annulation transfert du 12/01", Quantity: 1, UnitPrice: -95, VATRate: 10},
			}, Status: models.DocumentSent},
	}
	for _, d := range docs {
		_, err := store.Documents.InsertDocument(ctx, d)
		count("documents").track(d.Number, err)
	}

	for coll, c := range summary {
		entry := log.WithFields(log.Fields{
			"collection": coll,
			"inserted":   c.inserted,
			"failed":     c.failed,
		})
		if c.failed > 0 {
			entry.Warn("populated with failures")
		} else {
			entry.Info("populated")
		}
	}
	fmt.Println("seed complete")
}
