package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
)

// EventType identifies what happened to an entity.
type EventType string

const (
	EntityCreated EventType = "created"
	EntityUpdated EventType = "updated"
	EntityDeleted EventType = "deleted"
)

// Event is one entity-change record published to the event topic.
type Event struct {
	Type       EventType `json:"type"`
	EntityKind string    `json:"entity_kind"`
	EntityID   string    `json:"entity_id"`
	Actor      string    `json:"actor"`
	At         time.Time `json:"at"`
}

// KafkaWriter is the subset of kafka.Writer the producer needs; a mock
// implements it in tests.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes entity-change events asynchronously. A nil Producer
// is valid and drops everything, so a missing broker configuration never
// blocks a mutation.
type Producer struct {
	writer    KafkaWriter
	events    chan Event
	closeChan chan struct{}
}

// NewProducer builds a producer writing to the given brokers and topic.
// Returns nil when no brokers are configured.
func NewProducer(brokers []string, topic string) *Producer {
	if len(brokers) == 0 {
		log.Info("no kafka brokers configured, entity events disabled")
		return nil
	}
	p := &Producer{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
			Topic:    topic,
		},
		events:    make(chan Event, 1000),
		closeChan: make(chan struct{}),
	}
	go p.eventLoop()
	return p
}

// NewProducerWithWriter builds a producer over an existing writer. Used in
// tests.
func NewProducerWithWriter(writer KafkaWriter) *Producer {
	p := &Producer{
		writer:    writer,
		events:    make(chan Event, 1000),
		closeChan: make(chan struct{}),
	}
	go p.eventLoop()
	return p
}

// Publish enqueues an event. The queue is bounded; when it is full the
// event is dropped with a warning rather than stalling the caller.
func (p *Producer) Publish(eventType EventType, entityKind, entityID, actor string) {
	if p == nil {
		return
	}
	event := Event{
		Type:       eventType,
		EntityKind: entityKind,
		EntityID:   entityID,
		Actor:      actor,
		At:         time.Now(),
	}
	select {
	case p.events <- event:
	default:
		log.WithFields(log.Fields{
			"event_type":  eventType,
			"entity_kind": entityKind,
			"entity_id":   entityID,
		}).Warn("event queue full, dropping event")
	}
}

func (p *Producer) eventLoop() {
	for {
		select {
		case event := <-p.events:
			p.sendEvent(context.Background(), event)
		case <-p.closeChan:
			return
		}
	}
}

func (p *Producer) sendEvent(ctx context.Context, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.WithError(err).Error("failed to marshal event")
		return
	}
	msg := kafka.Message{
		Key:   []byte(event.EntityKind + ":" + event.EntityID),
		Value: payload,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		log.WithError(err).WithField("entity_id", event.EntityID).Error("failed to publish event")
	}
}

// Close stops the event loop and closes the writer.
func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	close(p.closeChan)
	return p.writer.Close()
}
