package kafka

import (
	"agent-server/internal/observability"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/segmentio/kafka-go"
)

// ErrMissingLeadID is returned for events without a partition key.
var ErrMissingLeadID = errors.New("event has no lead id")

// MessageWriter is the subset of *kafka.Writer the producer uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer handles publishing events to Kafka
type Producer struct {
	writer MessageWriter
	logger *observability.Logger
}

// ProducerConfig contains configuration for Kafka producer
type ProducerConfig struct {
	Brokers []string
	Topic   string
}

// NewProducer creates a new Kafka producer
func NewProducer(config ProducerConfig, logger *observability.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:  kafka.TCP(config.Brokers...),
		Topic: config.Topic,
		// events for one lead must land on one partition
		Balancer:    &kafka.Hash{},
		Async:       false,
		Compression: kafka.Snappy,
		BatchSize:   100,
	}

	return NewProducerWithWriter(writer, logger)
}

// NewProducerWithWriter wraps an existing writer.
func NewProducerWithWriter(writer MessageWriter, logger *observability.Logger) *Producer {
	return &Producer{
		writer: writer,
		logger: logger,
	}
}

// EventMessage represents an event message structure
type EventMessage struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	LeadID    string                 `json:"lead_id"`
	Data      map[string]interface{} `json:"data"`
	Timestamp string                 `json:"timestamp"`
}

// PublishEvent publishes an event keyed by its lead ID. Keying keeps every
// event for one lead on one partition, so unkeyed events are refused.
func (p *Producer) PublishEvent(ctx context.Context, event EventMessage) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_type", Value: event.Type},
		observability.Field{Key: "event_id", Value: event.ID},
		observability.Field{Key: "lead_id", Value: event.LeadID},
	)

	if event.LeadID == "" {
		p.logger.Error(ctx, "refusing to publish unkeyed event", ErrMissingLeadID)
		return ErrMissingLeadID
	}

	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error(ctx, "failed to marshal event", err)
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.LeadID),
		Value: eventBytes,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(event.ID)},
			{Key: "event_type", Value: []byte(event.Type)},
			{Key: "lead_id", Value: []byte(event.LeadID)},
		},
	}

	err = p.writer.WriteMessages(ctx, msg)
	if err != nil {
		p.logger.Error(ctx, "failed to write message to kafka", err)
		return fmt.Errorf("failed to write message to kafka: %w", err)
	}

	p.logger.Info(ctx, fmt.Sprintf("published event %s to kafka", event.Type))
	return nil
}

// Close closes the Kafka producer
func (p *Producer) Close() error {
	return p.writer.Close()
}
