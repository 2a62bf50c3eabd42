package events

import (
	"agent-server/internal/clients/kafka"
	"agent-server/internal/observability"
	"agent-server/internal/pipeline"
	"agent-server/internal/store"
	"context"
	"time"

	"github.com/google/uuid"
)

// EventProducer is satisfied by *kafka.Producer.
type EventProducer interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// Publisher handles publishing lead events to Kafka
type Publisher struct {
	producer EventProducer
	logger   *observability.Logger
	now      func() time.Time
}

// NewPublisher creates a new event publisher
func NewPublisher(producer EventProducer, logger *observability.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		logger:   logger,
		now:      time.Now,
	}
}

func (p *Publisher) publish(ctx context.Context, eventType string, leadID uuid.UUID, data map[string]interface{}) error {
	event := kafka.EventMessage{
		ID:        uuid.New().String(),
		Type:      eventType,
		LeadID:    leadID.String(),
		Data:      data,
		Timestamp: p.now().UTC().Format(time.RFC3339Nano),
	}
	return p.producer.PublishEvent(ctx, event)
}

func leadData(lead store.Lead) map[string]interface{} {
	data := map[string]interface{}{
		"name":   lead.DisplayName(),
		"email":  lead.Email,
		"status": lead.Status.String(),
	}
	if lead.Source != nil {
		data["source"] = *lead.Source
	}
	return data
}

// PublishLeadCreated publishes a lead.created event
func (p *Publisher) PublishLeadCreated(ctx context.Context, lead store.Lead) error {
	return p.publish(ctx, store.LeadEventCreated, lead.ID, leadData(lead))
}

// PublishLeadUpdated publishes a lead.updated event
func (p *Publisher) PublishLeadUpdated(ctx context.Context, lead store.Lead) error {
	return p.publish(ctx, store.LeadEventUpdated, lead.ID, leadData(lead))
}

// PublishLeadStatusChanged publishes a lead.status_changed event
func (p *Publisher) PublishLeadStatusChanged(ctx context.Context, lead store.Lead, from pipeline.Stage) error {
	data := leadData(lead)
	data["from_status"] = from.String()
	data["to_status"] = lead.Status.String()
	return p.publish(ctx, store.LeadEventStatusChanged, lead.ID, data)
}

// PublishLeadDeleted publishes a lead.deleted event
func (p *Publisher) PublishLeadDeleted(ctx context.Context, leadID uuid.UUID) error {
	return p.publish(ctx, store.LeadEventDeleted, leadID, map[string]interface{}{})
}

// NopPublisher drops every event. Used when Kafka is not configured.
type NopPublisher struct{}

func (NopPublisher) PublishLeadCreated(context.Context, store.Lead) error { return nil }
func (NopPublisher) PublishLeadUpdated(context.Context, store.Lead) error { return nil }
func (NopPublisher) PublishLeadStatusChanged(context.Context, store.Lead, pipeline.Stage) error {
	return nil
}
func (NopPublisher) PublishLeadDeleted(context.Context, uuid.UUID) error { return nil }
