// Package leadstest provides an in-memory lead store for tests that need the
// full processor and handler stack without PostgreSQL.
package leadstest

import (
	"agent-server/internal/leads/search"
	"agent-server/internal/pipeline"
	"agent-server/internal/store"
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore satisfies the lead processor's store interface.
type MemoryStore struct {
	mu    sync.Mutex
	leads map[uuid.UUID]store.Lead
	now   func() time.Time
	failNext error
}

func NewMemoryStore() *MemoryStore {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	return &MemoryStore{
		leads: map[uuid.UUID]store.Lead{},
		now: func() time.Time {
			tick++
			return base.Add(time.Duration(tick) * time.Second)
		},
	}
}

func (m *MemoryStore) takeFailure() error {
	err := m.failNext
	m.failNext = nil
	return err
}

func (m *MemoryStore) CreateLead(ctx context.Context, params store.CreateLeadParams) (store.Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return store.Lead{}, err
	}
	status := params.Status
	if status == "" {
		status = pipeline.StageNew
	}
	ts := m.now()
	lead := store.Lead{
		ID:               uuid.New(),
		Name:             params.Name,
		FirstName:        params.FirstName,
		LastName:         params.LastName,
		Email:            params.Email,
		Phone:            params.Phone,
		Status:           status,
		Source:           params.Source,
		PropertyInterest: params.PropertyInterest,
		PropertyType:     params.PropertyType,
		BudgetRange:      params.BudgetRange,
		Notes:            params.Notes,
		AIScore:          params.AIScore,
		CreatedAt:        ts,
		UpdatedAt:        ts,
	}
	m.leads[lead.ID] = lead
	return lead, nil
}

func (m *MemoryStore) GetLeadByID(ctx context.Context, leadID uuid.UUID) (store.Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	lead, ok := m.leads[leadID]
	if !ok {
		return store.Lead{}, store.ErrNotFound
	}
	return lead, nil
}

func (m *MemoryStore) ListLeads(ctx context.Context, params store.ListLeadsParams) ([]store.Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]store.Lead, 0, len(m.leads))
	for _, l := range m.leads {
		all = append(all, l)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	term := ""
	if params.Search != nil {
		term = *params.Search
	}
	return search.List(all, term, params.Status), nil
}

func (m *MemoryStore) UpdateLead(ctx context.Context, leadID uuid.UUID, params store.UpdateLeadParams) (store.Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return store.Lead{}, err
	}
	lead, ok := m.leads[leadID]
	if !ok {
		return store.Lead{}, store.ErrNotFound
	}
	setStr := func(dst **string, src *string) {
		if src != nil {
			v := *src
			*dst = &v
		}
	}
	setStr(&lead.Name, params.Name)
	setStr(&lead.FirstName, params.FirstName)
	setStr(&lead.LastName, params.LastName)
	setStr(&lead.Phone, params.Phone)
	setStr(&lead.Source, params.Source)
	setStr(&lead.PropertyInterest, params.PropertyInterest)
	setStr(&lead.PropertyType, params.PropertyType)
	setStr(&lead.BudgetRange, params.BudgetRange)
	setStr(&lead.Notes, params.Notes)
	if params.Email != nil {
		lead.Email = *params.Email
	}
	if params.Status != nil {
		lead.Status = *params.Status
	}
	if params.AIScore != nil {
		v := *params.AIScore
		lead.AIScore = &v
	}
	lead.UpdatedAt = m.now()
	m.leads[leadID] = lead
	return lead, nil
}

func (m *MemoryStore) UpdateLeadStatus(ctx context.Context, leadID uuid.UUID, status pipeline.Stage) (store.Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return store.Lead{}, err
	}
	lead, ok := m.leads[leadID]
	if !ok {
		return store.Lead{}, store.ErrNotFound
	}
	lead.Status = status
	lead.UpdatedAt = m.now()
	m.leads[leadID] = lead
	return lead, nil
}

func (m *MemoryStore) DeleteLead(ctx context.Context, leadID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return err
	}
	if _, ok := m.leads[leadID]; !ok {
		return store.ErrNotFound
	}
	delete(m.leads, leadID)
	return nil
}

func (m *MemoryStore) ListLeadActivities(ctx context.Context, leadID uuid.UUID) ([]store.LeadActivity, error) {
	return []store.LeadActivity{}, nil
}

// Fail makes the next write return err.
func (m *MemoryStore) Fail(err error) {
	m.mu.Lock()
	m.failNext = err
	m.mu.Unlock()
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) PublishLeadCreated(context.Context, store.Lead) error { return nil }
func (NopPublisher) PublishLeadUpdated(context.Context, store.Lead) error { return nil }
func (NopPublisher) PublishLeadStatusChanged(context.Context, store.Lead, pipeline.Stage) error {
	return nil
}
func (NopPublisher) PublishLeadDeleted(context.Context, uuid.UUID) error { return nil }

// NopRecorder drops every transition.
type NopRecorder struct{}

func (NopRecorder) RecordStatusTransition(string, string) {}
