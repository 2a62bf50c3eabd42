package store

import (
	"agent-server/internal/pipeline"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// JSONB is a custom type for JSONB object fields
type JSONB map[string]interface{}

// Value implements the driver.Valuer interface for JSONB
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface for JSONB
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for JSONB")
	}

	// Handle empty or null JSON
	if len(bytes) == 0 || string(bytes) == "null" {
		*j = make(JSONB)
		return nil
	}

	result := make(JSONB)
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*j = result
	return nil
}

// Lead is the canonical lead record. Older clients send first/last name
// pairs and "lead_source"; those are folded into this shape at the HTTP
// boundary.
type Lead struct {
	ID               uuid.UUID      `db:"id" json:"id"`
	Name             *string        `db:"name" json:"name,omitempty"`
	FirstName        *string        `db:"first_name" json:"first_name,omitempty"`
	LastName         *string        `db:"last_name" json:"last_name,omitempty"`
	Email            string         `db:"email" json:"email"`
	Phone            *string        `db:"phone" json:"phone,omitempty"`
	Status           pipeline.Stage `db:"status" json:"status"`
	Source           *string        `db:"source" json:"source,omitempty"`
	PropertyInterest *string        `db:"property_interest" json:"property_interest,omitempty"`
	PropertyType     *string        `db:"property_type" json:"property_type,omitempty"`
	BudgetRange      *string        `db:"budget_range" json:"budget_range,omitempty"`
	Notes            *string        `db:"notes" json:"notes,omitempty"`
	AIScore          *float64       `db:"ai_score" json:"ai_score,omitempty"`
	CreatedAt        time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at" json:"updated_at"`
}

// DisplayName prefers the stored name and falls back to "first last".
func (l Lead) DisplayName() string {
	if l.Name != nil && strings.TrimSpace(*l.Name) != "" {
		return *l.Name
	}
	parts := make([]string, 0, 2)
	if l.FirstName != nil && *l.FirstName != "" {
		parts = append(parts, *l.FirstName)
	}
	if l.LastName != nil && *l.LastName != "" {
		parts = append(parts, *l.LastName)
	}
	return strings.Join(parts, " ")
}

// SourceValue returns the origin channel or "".
func (l Lead) SourceValue() string {
	if l.Source == nil {
		return ""
	}
	return *l.Source
}

// LeadActivity is one entry of a lead's event history.
type LeadActivity struct {
	ID         uuid.UUID `db:"id" json:"id"`
	LeadID     uuid.UUID `db:"lead_id" json:"lead_id"`
	EventID    string    `db:"event_id" json:"event_id"`
	EventType  string    `db:"event_type" json:"event_type"`
	FromStatus *string   `db:"from_status" json:"from_status,omitempty"`
	ToStatus   *string   `db:"to_status" json:"to_status,omitempty"`
	Data       JSONB     `db:"data" json:"data,omitempty"`
	OccurredAt time.Time `db:"occurred_at" json:"occurred_at"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type Campaign struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	Name           string     `db:"name" json:"name"`
	Status         string     `db:"status" json:"status"`
	Type           string     `db:"type" json:"type"`
	Budget         *float64   `db:"budget" json:"budget,omitempty"`
	Goals          *string    `db:"goals" json:"goals,omitempty"`
	TargetAudience *string    `db:"target_audience" json:"target_audience,omitempty"`
	Metrics        JSONB      `db:"metrics" json:"metrics,omitempty"`
	StartDate      *time.Time `db:"start_date" json:"start_date,omitempty"`
	EndDate        *time.Time `db:"end_date" json:"end_date,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}

// AutomationWorkflow stores a workflow graph. The actions blob is never
// interpreted by the server.
type AutomationWorkflow struct {
	ID                uuid.UUID  `db:"id" json:"id"`
	Name              string     `db:"name" json:"name"`
	Description       *string    `db:"description" json:"description,omitempty"`
	TriggerType       string     `db:"trigger_type" json:"trigger_type"`
	TriggerConditions JSONB      `db:"trigger_conditions" json:"trigger_conditions"`
	Actions           JSONB      `db:"actions" json:"actions"`
	IsActive          bool       `db:"is_active" json:"is_active"`
	ExecutionCount    int        `db:"execution_count" json:"execution_count"`
	LastExecuted      *time.Time `db:"last_executed" json:"last_executed,omitempty"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updated_at"`
}

type Task struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Description *string    `db:"description" json:"description,omitempty"`
	DueDate     *time.Time `db:"due_date" json:"due_date,omitempty"`
	Priority    string     `db:"priority" json:"priority"`
	TaskType    *string    `db:"task_type" json:"task_type,omitempty"`
	LeadID      *uuid.UUID `db:"lead_id" json:"lead_id,omitempty"`
	Completed   bool       `db:"completed" json:"completed"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// StageCount is one row of a per-stage aggregate.
type StageCount struct {
	Status pipeline.Stage `db:"status" json:"status"`
	Count  int            `db:"count" json:"count"`
}

// StatusCount is a generic per-status aggregate row.
type StatusCount struct {
	Status string `db:"status" json:"status"`
	Count  int    `db:"count" json:"count"`
}
