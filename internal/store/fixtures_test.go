package store

import (
	"agent-server/internal/pipeline"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Fixtures provides factory functions for creating test data.
// All factory methods use testify/require to fail fast on errors.
type Fixtures struct {
	t      *testing.T
	testDB *TestDB
	ctx    context.Context
}

// NewFixtures creates a new Fixtures instance for test data generation.
func NewFixtures(t *testing.T, testDB *TestDB) *Fixtures {
	return &Fixtures{
		t:      t,
		testDB: testDB,
		ctx:    context.Background(),
	}
}

// --- Lead Fixtures ---

// LeadOpts customizes lead creation.
type LeadOpts struct {
	Name   string
	Email  string
	Status pipeline.Stage
	Source *string
}

// DefaultLeadOpts returns a new lead with a unique email.
func DefaultLeadOpts() LeadOpts {
	return LeadOpts{
		Name:   "Test Lead",
		Email:  "lead-" + uuid.New().String()[:8] + "@example.com",
		Status: pipeline.StageNew,
	}
}

// CreateLead creates a test lead with optional customization.
func (f *Fixtures) CreateLead(opts ...func(*LeadOpts)) Lead {
	f.t.Helper()
	o := DefaultLeadOpts()
	for _, fn := range opts {
		fn(&o)
	}

	lead, err := f.testDB.Store.CreateLead(f.ctx, CreateLeadParams{
		Name:   Ptr(o.Name),
		Email:  o.Email,
		Status: o.Status,
		Source: o.Source,
	})
	require.NoError(f.t, err, "failed to create test lead")
	return lead
}

// --- Task Fixtures ---

// TaskOpts customizes task creation.
type TaskOpts struct {
	Title    string
	Priority string
	DueDate  *time.Time
	LeadID   *uuid.UUID
}

// DefaultTaskOpts returns an undated medium priority task.
func DefaultTaskOpts() TaskOpts {
	return TaskOpts{
		Title:    "Follow up",
		Priority: TaskPriorityMedium,
	}
}

// CreateTask creates a test task with optional customization.
func (f *Fixtures) CreateTask(opts ...func(*TaskOpts)) Task {
	f.t.Helper()
	o := DefaultTaskOpts()
	for _, fn := range opts {
		fn(&o)
	}

	task, err := f.testDB.Store.CreateTask(f.ctx, CreateTaskParams{
		Title:    o.Title,
		Priority: o.Priority,
		DueDate:  o.DueDate,
		LeadID:   o.LeadID,
	})
	require.NoError(f.t, err, "failed to create test task")
	return task
}

// --- Helper Functions ---

// Ptr returns a pointer to the given value.
func Ptr[T any](v T) *T {
	return &v
}
