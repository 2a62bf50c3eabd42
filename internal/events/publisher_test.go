package events

import (
	"agent-server/internal/clients/kafka"
	"agent-server/internal/leads/processor"
	"agent-server/internal/observability"
	"agent-server/internal/pipeline"
	"agent-server/internal/store"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	_ processor.EventPublisher = (*Publisher)(nil)
	_ processor.EventPublisher = NopPublisher{}
)

type captureProducer struct {
	events []kafka.EventMessage
}

func (c *captureProducer) PublishEvent(_ context.Context, e kafka.EventMessage) error {
	c.events = append(c.events, e)
	return nil
}

func TestPublisher_StatusChanged(t *testing.T) {
	prod := &captureProducer{}
	p := NewPublisher(prod, observability.NewLoggerFromZap(zap.NewNop()))
	p.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	name, source := "Ann", "Zillow"
	lead := store.Lead{ID: uuid.New(), Name: &name, Email: "ann@example.com", Status: pipeline.StageProposal, Source: &source}

	require.NoError(t, p.PublishLeadStatusChanged(context.Background(), lead, pipeline.StageContacted))

	require.Len(t, prod.events, 1)
	e := prod.events[0]
	assert.Equal(t, store.LeadEventStatusChanged, e.Type)
	assert.Equal(t, lead.ID.String(), e.LeadID)
	assert.Equal(t, "2024-05-01T12:00:00Z", e.Timestamp)
	assert.Equal(t, "contacted", e.Data["from_status"])
	assert.Equal(t, "proposal", e.Data["to_status"])
	assert.Equal(t, "Zillow", e.Data["source"])
	_, err := uuid.Parse(e.ID)
	assert.NoError(t, err)
}

func TestPublisher_EventIDsAreUnique(t *testing.T) {
	prod := &captureProducer{}
	p := NewPublisher(prod, observability.NewLoggerFromZap(zap.NewNop()))
	id := uuid.New()

	require.NoError(t, p.PublishLeadCreated(context.Background(), store.Lead{ID: id, Email: "a@example.com"}))
	require.NoError(t, p.PublishLeadDeleted(context.Background(), id))

	require.Len(t, prod.events, 2)
	assert.Equal(t, store.LeadEventCreated, prod.events[0].Type)
	assert.Equal(t, store.LeadEventDeleted, prod.events[1].Type)
	assert.NotEqual(t, prod.events[0].ID, prod.events[1].ID)
}
