package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/limovia/fleetcrm/internal/auth"
	"github.com/limovia/fleetcrm/internal/config"
	"github.com/limovia/fleetcrm/internal/db"
	"github.com/limovia/fleetcrm/internal/events"
	"github.com/limovia/fleetcrm/internal/handlers"
	"github.com/limovia/fleetcrm/internal/middleware"
	"github.com/limovia/fleetcrm/internal/telemetry"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	if cfg.IsProduction() {
		log.SetFormatter(&log.JSONFormatter{})
	}

	ctx := context.Background()
	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.WithError(err).Warn("mongo disconnect failed")
		}
	}()
	store := db.NewStore(client, cfg.MongoDB)
	log.WithField("db", cfg.MongoDB).Info("connected to MongoDB")

	producer := events.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer func() {
		if err := producer.Close(); err != nil {
			log.WithError(err).Warn("event producer close failed")
		}
	}()
	notifier := events.NewNotifier(producer, store.Notifications, store.Drivers)

	// Telemetry ingest is best effort: the CRM works without a broker.
	if ingestor, err := telemetry.NewIngestor(cfg.MQTTBroker, cfg.MQTTTopic, store.Vehicles); err != nil {
		log.WithError(err).Warn("telemetry ingest disabled")
	} else if err := ingestor.Start(); err != nil {
		log.WithError(err).Warn("telemetry ingest disabled")
		ingestor.Close()
	} else {
		defer ingestor.Close()
	}

	authService := auth.NewService(cfg.JWTSecret, cfg.JWTExpiry)
	authMW := middleware.NewAuthMiddleware(authService)
	rateLimit := middleware.NewRateLimitMiddleware()

	mux := handlers.NewRouter(handlers.Handlers{
		Auth:          handlers.NewAuthHandler(authService, store.Users),
		Drivers:       handlers.NewDriverHandler(store.Drivers, notifier),
		Vehicles:      handlers.NewVehicleHandler(store.Vehicles, notifier),
		Clients:       handlers.NewClientHandler(store.Clients, notifier),
		Companies:     handlers.NewCompanyHandler(store.Companies, store.Brands),
		Trips:         handlers.NewTripHandler(store.Trips, store.Drivers, store.Vehicles, notifier),
		Documents:     handlers.NewDocumentHandler(store.Documents, store.Companies, notifier),
		Notifications: handlers.NewNotificationHandler(store.Notifications),
	}, authMW)

	var handler http.Handler = mux
	handler = authMW.Authenticate(handler)
	handler = rateLimit.RateLimit(300, 60)(handler)
	handler = middleware.CORS(cfg.CORSOrigin)(handler)
	handler = middleware.RequestLogger(handler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("HTTP server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("shutdown failed")
	}
	log.Info("server stopped")
}
