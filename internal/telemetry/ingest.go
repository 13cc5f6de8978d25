package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/limovia/fleetcrm/internal/db"
	"github.com/limovia/fleetcrm/internal/models"
	log "github.com/sirupsen/logrus"
)

// Ingestor subscribes to the tracker topic and applies readings to the
// vehicle documents. Malformed or unmatchable messages are logged and
// dropped; ingest never interrupts the API.
type Ingestor struct {
	client   mqtt.Client
	vehicles db.VehicleCollection
	topic    string
}

// NewIngestor connects to the MQTT broker. Returns an error when the
// broker is unreachable; callers may treat that as non-fatal.
func NewIngestor(brokerURL, topic string, vehicles db.VehicleCollection) (*Ingestor, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID("fleetcrm-ingest").
		SetAutoReconnect(true).
		SetConnectTimeout(10 * time.Second)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(10*time.Second) || token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect failed: %w", token.Error())
	}

	return &Ingestor{client: client, vehicles: vehicles, topic: topic}, nil
}

// Start subscribes to the telemetry topic.
func (i *Ingestor) Start() error {
	token := i.client.Subscribe(i.topic, 1, i.handleMessage)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("mqtt subscribe failed: %w", err)
	}
	log.WithField("topic", i.topic).Info("telemetry ingest started")
	return nil
}

func (i *Ingestor) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	var tele models.VehicleTelemetry
	if err := json.Unmarshal(msg.Payload(), &tele); err != nil {
		log.WithError(err).WithField("topic", msg.Topic()).Warn("dropping malformed telemetry")
		return
	}
	if tele.VehicleID == "" {
		log.WithField("topic", msg.Topic()).Warn("dropping telemetry without vehicle id")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := i.vehicles.ApplyTelemetry(ctx, tele); err != nil {
		log.WithError(err).WithField("vehicle_id", tele.VehicleID).Warn("failed to apply telemetry")
	}
}

// Close disconnects from the broker.
func (i *Ingestor) Close() {
	i.client.Disconnect(250)
}
