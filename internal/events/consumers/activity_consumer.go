package consumers

import (
	"agent-server/internal/clients/kafka"
	"agent-server/internal/observability"
	"agent-server/internal/store"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EventSource is satisfied by *kafka.Consumer.
type EventSource interface {
	ConsumeEvents(ctx context.Context, handler func(context.Context, kafka.EventMessage) error) error
	Close() error
}

// ActivityStore is the persistence the consumer needs.
type ActivityStore interface {
	CreateLeadActivity(ctx context.Context, params store.CreateLeadActivityParams) error
}

// ActivityConsumer appends lead events to lead_activities. It records
// history only. Events are written one at a time in partition order and the
// source commits each only after its write succeeds.
type ActivityConsumer struct {
	source EventSource
	store  ActivityStore
	logger *observability.Logger
}

// NewActivityConsumer creates a new ActivityConsumer
func NewActivityConsumer(source EventSource, store ActivityStore, logger *observability.Logger) *ActivityConsumer {
	return &ActivityConsumer{
		source: source,
		store:  store,
		logger: logger,
	}
}

// Start consumes until ctx is cancelled or the source fails.
func (c *ActivityConsumer) Start(ctx context.Context) error {
	c.logger.Info(ctx, "Starting activity consumer")

	err := c.source.ConsumeEvents(ctx, c.ProcessEvent)
	if err != nil && ctx.Err() == nil {
		c.logger.Error(ctx, "consumer error", err)
		return err
	}
	if ctx.Err() != nil {
		c.logger.Info(ctx, "Consumer context cancelled")
		return ctx.Err()
	}
	return err
}

// ProcessEvent records one lead event. Non-lead events are ignored. A
// malformed lead id wraps kafka.ErrSkipEvent; store errors are returned as is
// so the event is redelivered.
func (c *ActivityConsumer) ProcessEvent(ctx context.Context, event kafka.EventMessage) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_id", Value: event.ID},
		observability.Field{Key: "event_type", Value: event.Type},
		observability.Field{Key: "lead_id", Value: event.LeadID},
	)

	if !strings.HasPrefix(event.Type, "lead.") {
		c.logger.Info(ctx, fmt.Sprintf("Activity consumer ignoring event type: %s", event.Type))
		return nil
	}

	leadID, err := uuid.Parse(event.LeadID)
	if err != nil {
		return fmt.Errorf("invalid lead id %q: %w: %w", event.LeadID, kafka.ErrSkipEvent, err)
	}

	occurredAt, err := time.Parse(time.RFC3339Nano, event.Timestamp)
	if err != nil {
		occurredAt = time.Now().UTC()
	}

	params := store.CreateLeadActivityParams{
		LeadID:     leadID,
		EventID:    event.ID,
		EventType:  event.Type,
		FromStatus: stringField(event.Data, "from_status"),
		ToStatus:   stringField(event.Data, "to_status"),
		Data:       store.JSONB(event.Data),
		OccurredAt: occurredAt,
	}

	if err := c.store.CreateLeadActivity(ctx, params); err != nil {
		c.logger.Error(ctx, "failed to record lead activity", err)
		return err
	}
	return nil
}

func stringField(data map[string]interface{}, key string) *string {
	v, ok := data[key].(string)
	if !ok || v == "" {
		return nil
	}
	return &v
}

// Stop stops the consumer
func (c *ActivityConsumer) Stop() error {
	c.logger.Info(context.Background(), "Stopping activity consumer")
	return c.source.Close()
}
