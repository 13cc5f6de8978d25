package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/limovia/fleetcrm/internal/config"
	"github.com/limovia/fleetcrm/internal/db"
	"github.com/limovia/fleetcrm/internal/models"
	log "github.com/sirupsen/logrus"
)

// Base points for simulated movement.
var cities = []models.Location{
	{Lat: 48.8566, Lon: 2.3522},  // Paris
	{Lat: 50.8503, Lon: 4.3517},  // Brussels
	{Lat: 46.2044, Lon: 6.1432},  // Geneva
	{Lat: 51.5074, Lon: -0.1278}, // London
	{Lat: 43.7102, Lon: 7.2620},  // Nice
}

func jitterLocation(base models.Location, meters float64) models.Location {
	latMetersPerDeg := 111320.0
	lonMetersPerDeg := 111320.0 * math.Cos(base.Lat*math.Pi/180)
	dLat := (rand.Float64()*2 - 1) * (meters / latMetersPerDeg)
	dLon := (rand.Float64()*2 - 1) * (meters / lonMetersPerDeg)
	return models.Location{Lat: base.Lat + dLat, Lon: base.Lon + dLon}
}

type vehicleState struct {
	id       string
	position models.Location
	fuel     float64
	mileage  float64
}

func main() {
	cfg := config.Load()

	ctx := context.Background()
	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer client.Disconnect(ctx)
	store := db.NewStore(client, cfg.MongoDB)

	vehicles, err := store.Vehicles.FindVehicles(ctx, nil)
	if err != nil {
		log.WithError(err).Fatal("failed to load vehicles")
	}
	if len(vehicles) == 0 {
		log.Fatal("no vehicles to track, run the seed tool first")
	}

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID("fleetcrm-tracker").
		SetAutoReconnect(true)
	mqttClient := mqtt.NewClient(opts)
	if token := mqttClient.Connect(); token.Wait() && token.Error() != nil {
		log.WithError(token.Error()).Fatal("mqtt connect failed")
	}
	defer mqttClient.Disconnect(250)

	states := make([]*vehicleState, 0, len(vehicles))
	for _, v := range vehicles {
		position := v.CurrentLocation
		if position.Lat == 0 && position.Lon == 0 {
			position = cities[rand.Intn(len(cities))]
		}
		fuel := v.FuelLevel
		if fuel <= 0 {
			fuel = 100
		}
		states = append(states, &vehicleState{
			id:       v.ID.Hex(),
			position: position,
			fuel:     fuel,
			mileage:  v.Mileage,
		})
	}

	interval := 5 * time.Second
	if v := os.Getenv("TRACKER_INTERVAL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			interval = parsed
		}
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.WithField("vehicles", len(states)).Info("tracker started")
	for {
		select {
		case <-ticker.C:
			for _, state := range states {
				publish(mqttClient, cfg.MQTTTopic, state)
			}
		case <-stop:
			log.Info("tracker stopped")
			return
		}
	}
}

func publish(client mqtt.Client, topicPattern string, state *vehicleState) {
	state.position = jitterLocation(state.position, 800)
	state.mileage += rand.Float64() * 1.2
	state.fuel -= rand.Float64() * 0.8
	if state.fuel < 5 {
		state.fuel = 100 // refuel
	}

	tele := models.VehicleTelemetry{
		VehicleID: state.id,
		Timestamp: time.Now(),
		Location:  state.position,
		FuelLevel: state.fuel,
		Mileage:   state.mileage,
	}
	payload, err := json.Marshal(tele)
	if err != nil {
		log.WithError(err).Error("failed to marshal telemetry")
		return
	}

	topic := strings.Replace(topicPattern, "+", state.id, 1)
	token := client.Publish(topic, 1, false, payload)
	if token.Wait() && token.Error() != nil {
		log.WithError(token.Error()).WithField("vehicle_id", state.id).Warn("publish failed")
		return
	}
	log.WithFields(log.Fields{
		"vehicle_id": state.id,
		"fuel":       fmt.Sprintf("%.1f", state.fuel),
		"mileage":    fmt.Sprintf("%.1f", state.mileage),
	}).Debug("telemetry published")
}
