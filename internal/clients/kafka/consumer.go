package kafka

import (
	"agent-server/internal/observability"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// MessageReader is the subset of *kafka.Reader the consumer uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

const (
	minFetchBackoff = 100 * time.Millisecond
	maxFetchBackoff = 5 * time.Second
)

// ErrSkipEvent marks a handler failure that redelivery cannot fix. The
// message is committed and skipped.
var ErrSkipEvent = errors.New("event cannot be processed")

// Consumer handles consuming events from Kafka
type Consumer struct {
	reader     MessageReader
	logger     *observability.Logger
	minBackoff time.Duration
	maxBackoff time.Duration
}

// ConsumerConfig contains configuration for Kafka consumer
type ConsumerConfig struct {
	Brokers  []string
	Topic    string
	GroupID  string
	MinBytes int
	MaxBytes int
}

// NewConsumer creates a new Kafka consumer
func NewConsumer(config ConsumerConfig, logger *observability.Logger) *Consumer {
	if config.MinBytes == 0 {
		config.MinBytes = 10e3 // 10KB
	}
	if config.MaxBytes == 0 {
		config.MaxBytes = 10e6 // 10MB
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     config.Brokers,
		Topic:       config.Topic,
		GroupID:     config.GroupID,
		MinBytes:    config.MinBytes,
		MaxBytes:    config.MaxBytes,
		StartOffset: kafka.FirstOffset,
		// manual commit
		CommitInterval: 0,
	})

	return NewConsumerWithReader(reader, logger)
}

// NewConsumerWithReader wraps an existing reader.
func NewConsumerWithReader(reader MessageReader, logger *observability.Logger) *Consumer {
	return &Consumer{
		reader:     reader,
		logger:     logger,
		minBackoff: minFetchBackoff,
		maxBackoff: maxFetchBackoff,
	}
}

// nextBackoff doubles the wait up to the cap.
func (c *Consumer) nextBackoff(current time.Duration) time.Duration {
	if current == 0 {
		return c.minBackoff
	}
	if next := current * 2; next < c.maxBackoff {
		return next
	}
	return c.maxBackoff
}

// sleep waits d or until ctx ends.
func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// ConsumeEvents reads until ctx is cancelled. A message is committed only
// after handler succeeds. Undecodable or unkeyed messages, and handler
// errors wrapping ErrSkipEvent, are committed and skipped. Any other handler
// error retries the same message with backoff, so the committed offset never
// passes an unprocessed event. Fetch errors back off the same way.
func (c *Consumer) ConsumeEvents(ctx context.Context, handler func(context.Context, EventMessage) error) error {
	c.logger.Info(ctx, "Starting Kafka consumer")

	var backoff time.Duration
	for {
		select {
		case <-ctx.Done():
			c.logger.Info(ctx, "Stopping Kafka consumer")
			return ctx.Err()
		default:
			msg, err := c.reader.FetchMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					continue
				}
				backoff = c.nextBackoff(backoff)
				c.logger.Error(observability.WithFields(ctx,
					observability.Field{Key: "backoff_ms", Value: backoff.Milliseconds()},
				), "failed to fetch message from kafka", err)
				sleep(ctx, backoff)
				continue
			}
			backoff = 0

			var event EventMessage
			err = json.Unmarshal(msg.Value, &event)
			if err != nil {
				c.logger.Error(ctx, "failed to unmarshal event", err)
				c.commit(ctx, msg)
				continue
			}

			msgCtx := observability.WithFields(ctx,
				observability.Field{Key: "event_type", Value: event.Type},
				observability.Field{Key: "event_id", Value: event.ID},
				observability.Field{Key: "lead_id", Value: event.LeadID},
				observability.Field{Key: "partition", Value: msg.Partition},
				observability.Field{Key: "offset", Value: msg.Offset},
			)

			if event.LeadID == "" {
				c.logger.Warn(msgCtx, "skipping event without lead id")
				c.commit(msgCtx, msg)
				continue
			}

			c.logger.Info(msgCtx, fmt.Sprintf("processing event %s", event.Type))

			if err := c.handle(msgCtx, event, handler); err != nil {
				// only ctx cancellation ends the retry loop
				return err
			}
			c.commit(msgCtx, msg)
		}
	}
}

// handle runs handler until it succeeds, reports ErrSkipEvent, or ctx ends.
func (c *Consumer) handle(ctx context.Context, event EventMessage, handler func(context.Context, EventMessage) error) error {
	var backoff time.Duration
	for {
		err := handler(ctx, event)
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrSkipEvent) {
			c.logger.Error(ctx, "skipping event that cannot be processed", err)
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		backoff = c.nextBackoff(backoff)
		c.logger.Error(observability.WithFields(ctx,
			observability.Field{Key: "backoff_ms", Value: backoff.Milliseconds()},
		), "failed to process event, retrying", err)
		sleep(ctx, backoff)
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (c *Consumer) commit(ctx context.Context, msg kafka.Message) {
	if err := c.reader.CommitMessages(ctx, msg); err != nil {
		c.logger.Error(ctx, "failed to commit message", err)
	}
}

// Close closes the Kafka consumer
func (c *Consumer) Close() error {
	return c.reader.Close()
}
