package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type CreateLeadActivityParams struct {
	LeadID     uuid.UUID
	EventID    string
	EventType  string
	FromStatus *string
	ToStatus   *string
	Data       JSONB
	OccurredAt time.Time
}

// Redelivered events hit the unique event_id and are dropped.
const sqlCreateLeadActivity = `
INSERT INTO lead_activities (lead_id, event_id, event_type, from_status, to_status, data, occurred_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (event_id) DO NOTHING
`

// CreateLeadActivity appends one event to a lead's history.
func (s *Store) CreateLeadActivity(ctx context.Context, params CreateLeadActivityParams) error {
	_, err := s.db.ExecContext(ctx, sqlCreateLeadActivity,
		params.LeadID,
		params.EventID,
		params.EventType,
		params.FromStatus,
		params.ToStatus,
		params.Data,
		params.OccurredAt)
	if err != nil {
		s.logger.Error(ctx, "failed to create lead activity", err)
		return fmt.Errorf("failed to create lead activity: %w", err)
	}
	return nil
}

const sqlListLeadActivities = `
SELECT id, lead_id, event_id, event_type, from_status, to_status, data, occurred_at, created_at
FROM lead_activities
WHERE lead_id = $1
ORDER BY occurred_at DESC
`

// ListLeadActivities returns a lead's history newest first.
func (s *Store) ListLeadActivities(ctx context.Context, leadID uuid.UUID) ([]LeadActivity, error) {
	activities := []LeadActivity{}
	err := s.db.SelectContext(ctx, &activities, sqlListLeadActivities, leadID)
	if err != nil {
		s.logger.Error(ctx, "failed to list lead activities", err)
		return nil, fmt.Errorf("failed to list lead activities: %w", err)
	}
	return activities, nil
}
