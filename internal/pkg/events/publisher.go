package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nsqio/go-nsq"

	"github.com/riderlink/riderlink/internal/pkg/logger"
)

// Publisher emits fleet events (alerts, audit entries) for external
// consumers. Publication is best-effort; failures never affect the
// primary write.
type Publisher interface {
	Publish(eventType string, payload interface{}) error
	Stop()
}

// Event is the wire form of a published fleet event.
type Event struct {
	Type      string      `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// NSQPublisher publishes events to a single NSQ topic.
type NSQPublisher struct {
	producer *nsq.Producer
	topic    string
}

// NewNSQPublisher connects to an NSQ daemon and verifies connectivity.
func NewNSQPublisher(address, topic string) (*NSQPublisher, error) {
	config := nsq.NewConfig()
	producer, err := nsq.NewProducer(address, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}

	if err := producer.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}

	return &NSQPublisher{producer: producer, topic: topic}, nil
}

// Publish sends an event to the configured topic.
func (p *NSQPublisher) Publish(eventType string, payload interface{}) error {
	msg, err := json.Marshal(Event{
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.producer.Publish(p.topic, msg); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	logger.Debug("Published fleet event",
		logger.String("topic", p.topic),
		logger.String("type", eventType),
	)
	return nil
}

// Stop gracefully stops the producer.
func (p *NSQPublisher) Stop() {
	p.producer.Stop()
}

// NoopPublisher discards events; used when no NSQ address is configured.
type NoopPublisher struct{}

// Publish discards the event.
func (NoopPublisher) Publish(string, interface{}) error { return nil }

// Stop is a no-op.
func (NoopPublisher) Stop() {}
