package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"agent-server/internal/leads/search"
	"agent-server/internal/observability"
	"agent-server/internal/pipeline"
	"agent-server/internal/store"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrLeadNotFound      = errors.New("lead not found")
	ErrInvalidLeadStatus = errors.New("invalid lead status")
	ErrNameRequired      = errors.New("lead name is required")
	ErrEmailRequired     = errors.New("lead email is required")
)

type LeadProcessor struct {
	store     LeadStore
	publisher EventPublisher
	metrics   TransitionRecorder
	logger    *observability.Logger
}

func New(store LeadStore, publisher EventPublisher, metrics TransitionRecorder, logger *observability.Logger) LeadProcessor {
	return LeadProcessor{
		store:     store,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
	}
}

// CreateLeadParams represents parameters for creating a lead
type CreateLeadParams struct {
	Name             *string
	FirstName        *string
	LastName         *string
	Email            string
	Phone            *string
	Status           *string
	Source           *string
	PropertyInterest *string
	PropertyType     *string
	BudgetRange      *string
	Notes            *string
	AIScore          *float64
}

// UpdateLeadParams is a partial update; nil fields are left untouched.
type UpdateLeadParams struct {
	Name             *string
	FirstName        *string
	LastName         *string
	Email            *string
	Phone            *string
	Status           *string
	Source           *string
	PropertyInterest *string
	PropertyType     *string
	BudgetRange      *string
	Notes            *string
	AIScore          *float64
}

func parseStatus(raw *string) (*pipeline.Stage, error) {
	if raw == nil {
		return nil, nil
	}
	st, err := pipeline.Parse(*raw)
	if err != nil {
		return nil, ErrInvalidLeadStatus
	}
	return &st, nil
}

func nonEmpty(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

func composeName(first, last *string) *string {
	parts := make([]string, 0, 2)
	if nonEmpty(first) {
		parts = append(parts, strings.TrimSpace(*first))
	}
	if nonEmpty(last) {
		parts = append(parts, strings.TrimSpace(*last))
	}
	if len(parts) == 0 {
		return nil
	}
	name := strings.Join(parts, " ")
	return &name
}

func (p *LeadProcessor) CreateLead(ctx context.Context, params CreateLeadParams) (store.Lead, error) {
	name := params.Name
	if !nonEmpty(name) {
		name = composeName(params.FirstName, params.LastName)
	}
	if name == nil {
		return store.Lead{}, ErrNameRequired
	}
	if strings.TrimSpace(params.Email) == "" {
		return store.Lead{}, ErrEmailRequired
	}

	status := pipeline.StageNew
	if params.Status != nil && *params.Status != "" {
		st, err := parseStatus(params.Status)
		if err != nil {
			return store.Lead{}, err
		}
		status = *st
	}

	lead, err := p.store.CreateLead(ctx, store.CreateLeadParams{
		Name:             name,
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
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create lead", err)
		return store.Lead{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "lead_id", Value: lead.ID.String()})
	p.logger.Info(ctx, "lead created")
	if err := p.publisher.PublishLeadCreated(ctx, lead); err != nil {
		p.logger.Error(ctx, "failed to publish lead created event", err)
	}
	return lead, nil
}

func (p *LeadProcessor) GetLead(ctx context.Context, leadID uuid.UUID) (store.Lead, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "lead_id", Value: leadID.String()})

	lead, err := p.store.GetLeadByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Lead{}, ErrLeadNotFound
		}
		p.logger.Error(ctx, "failed to get lead", err)
		return store.Lead{}, err
	}
	return lead, nil
}

// ListLeads returns leads newest first. status is a literal stage token.
func (p *LeadProcessor) ListLeads(ctx context.Context, status, searchTerm *string) ([]store.Lead, error) {
	st, err := parseStatus(status)
	if err != nil {
		return nil, err
	}

	leads, err := p.store.ListLeads(ctx, store.ListLeadsParams{Status: st, Search: searchTerm})
	if err != nil {
		p.logger.Error(ctx, "failed to list leads", err)
		return nil, err
	}
	return leads, nil
}

// GetBoard groups every lead matching term into one column per stage.
func (p *LeadProcessor) GetBoard(ctx context.Context, term string) ([]search.Column, error) {
	leads, err := p.store.ListLeads(ctx, store.ListLeadsParams{})
	if err != nil {
		p.logger.Error(ctx, "failed to list leads for board", err)
		return nil, err
	}
	return search.Columns(search.Board(leads, term)), nil
}

// UpdateLead writes only the supplied fields.
func (p *LeadProcessor) UpdateLead(ctx context.Context, leadID uuid.UUID, params UpdateLeadParams) (store.Lead, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "lead_id", Value: leadID.String()})

	if params.Email != nil && strings.TrimSpace(*params.Email) == "" {
		return store.Lead{}, ErrEmailRequired
	}
	if params.Name != nil && !nonEmpty(params.Name) && params.FirstName == nil && params.LastName == nil {
		return store.Lead{}, ErrNameRequired
	}
	status, err := parseStatus(params.Status)
	if err != nil {
		return store.Lead{}, err
	}

	var current store.Lead
	needCurrent := status != nil || (!nonEmpty(params.Name) && (params.FirstName != nil || params.LastName != nil))
	if needCurrent {
		current, err = p.store.GetLeadByID(ctx, leadID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return store.Lead{}, ErrLeadNotFound
			}
			p.logger.Error(ctx, "failed to get lead", err)
			return store.Lead{}, err
		}
	}

	name := params.Name
	if !nonEmpty(name) && (params.FirstName != nil || params.LastName != nil) {
		first, last := current.FirstName, current.LastName
		if params.FirstName != nil {
			first = params.FirstName
		}
		if params.LastName != nil {
			last = params.LastName
		}
		name = composeName(first, last)
	}

	lead, err := p.store.UpdateLead(ctx, leadID, store.UpdateLeadParams{
		Name:             name,
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
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Lead{}, ErrLeadNotFound
		}
		p.logger.Error(ctx, "failed to update lead", err)
		return store.Lead{}, err
	}

	if err := p.publisher.PublishLeadUpdated(ctx, lead); err != nil {
		p.logger.Error(ctx, "failed to publish lead updated event", err)
	}
	if status != nil && current.Status != lead.Status {
		p.statusChanged(ctx, lead, current.Status)
	}
	return lead, nil
}

// UpdateLeadStatus moves a lead to another stage. Any stage may follow any other.
func (p *LeadProcessor) UpdateLeadStatus(ctx context.Context, leadID uuid.UUID, status string) (store.Lead, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "lead_id", Value: leadID.String()},
		observability.Field{Key: "status", Value: status},
	)

	to, err := pipeline.Parse(status)
	if err != nil {
		return store.Lead{}, ErrInvalidLeadStatus
	}

	current, err := p.store.GetLeadByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Lead{}, ErrLeadNotFound
		}
		p.logger.Error(ctx, "failed to get lead", err)
		return store.Lead{}, err
	}

	if !pipeline.CanTransition(current.Status, to) {
		return store.Lead{}, ErrInvalidLeadStatus
	}

	lead, err := p.store.UpdateLeadStatus(ctx, leadID, to)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Lead{}, ErrLeadNotFound
		}
		p.logger.Error(ctx, "failed to update lead status", err)
		return store.Lead{}, err
	}

	if current.Status != to {
		p.statusChanged(ctx, lead, current.Status)
	}
	return lead, nil
}

func (p *LeadProcessor) statusChanged(ctx context.Context, lead store.Lead, from pipeline.Stage) {
	p.metrics.RecordStatusTransition(from.String(), lead.Status.String())
	p.logger.Info(ctx, "lead moved from "+from.String()+" to "+lead.Status.String())
	if err := p.publisher.PublishLeadStatusChanged(ctx, lead, from); err != nil {
		p.logger.Error(ctx, "failed to publish lead status changed event", err)
	}
}

// DeleteLead removes a lead permanently.
func (p *LeadProcessor) DeleteLead(ctx context.Context, leadID uuid.UUID) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "lead_id", Value: leadID.String()})

	err := p.store.DeleteLead(ctx, leadID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrLeadNotFound
		}
		p.logger.Error(ctx, "failed to delete lead", err)
		return err
	}

	p.logger.Info(ctx, "lead deleted successfully")
	if err := p.publisher.PublishLeadDeleted(ctx, leadID); err != nil {
		p.logger.Error(ctx, "failed to publish lead deleted event", err)
	}
	return nil
}

// ListLeadActivity returns the recorded history of a lead, newest first.
func (p *LeadProcessor) ListLeadActivity(ctx context.Context, leadID uuid.UUID) ([]store.LeadActivity, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "lead_id", Value: leadID.String()})

	activities, err := p.store.ListLeadActivities(ctx, leadID)
	if err != nil {
		p.logger.Error(ctx, "failed to list lead activity", err)
		return nil, err
	}
	return activities, nil
}
