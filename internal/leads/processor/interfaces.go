package processor

import (
	"agent-server/internal/pipeline"
	"agent-server/internal/store"
	"context"

	"github.com/google/uuid"
)

// LeadStore defines the database operations required by LeadProcessor
type LeadStore interface {
	CreateLead(ctx context.Context, params store.CreateLeadParams) (store.Lead, error)
	GetLeadByID(ctx context.Context, leadID uuid.UUID) (store.Lead, error)
	ListLeads(ctx context.Context, params store.ListLeadsParams) ([]store.Lead, error)
	UpdateLead(ctx context.Context, leadID uuid.UUID, params store.UpdateLeadParams) (store.Lead, error)
	UpdateLeadStatus(ctx context.Context, leadID uuid.UUID, status pipeline.Stage) (store.Lead, error)
	DeleteLead(ctx context.Context, leadID uuid.UUID) error
	ListLeadActivities(ctx context.Context, leadID uuid.UUID) ([]store.LeadActivity, error)
}

// EventPublisher emits lead lifecycle events.
type EventPublisher interface {
	PublishLeadCreated(ctx context.Context, lead store.Lead) error
	PublishLeadUpdated(ctx context.Context, lead store.Lead) error
	PublishLeadStatusChanged(ctx context.Context, lead store.Lead, from pipeline.Stage) error
	PublishLeadDeleted(ctx context.Context, leadID uuid.UUID) error
}

// TransitionRecorder counts status moves.
type TransitionRecorder interface {
	RecordStatusTransition(from, to string)
}
