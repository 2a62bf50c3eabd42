package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"agent-server/internal/automation/builder"
	"agent-server/internal/observability"
	"agent-server/internal/store"
	"context"
	"errors"
	"math"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrWorkflowNotFound     = errors.New("workflow not found")
	ErrWorkflowNameRequired = errors.New("workflow name is required")
	ErrInvalidTriggerType   = errors.New("invalid trigger type")
)

type WorkflowProcessor struct {
	store  WorkflowStore
	logger *observability.Logger
}

func New(store WorkflowStore, logger *observability.Logger) WorkflowProcessor {
	return WorkflowProcessor{
		store:  store,
		logger: logger,
	}
}

type CreateWorkflowParams struct {
	Name              string
	Description       *string
	TriggerType       *string
	TriggerConditions map[string]interface{}
	Actions           map[string]interface{}
	IsActive          bool
}

// UpdateWorkflowParams is a partial update; nil fields are untouched.
type UpdateWorkflowParams struct {
	Name              *string
	Description       *string
	TriggerType       *string
	TriggerConditions map[string]interface{}
	Actions           map[string]interface{}
	IsActive          *bool
}

// WorkflowStats summarises all workflows. AverageExecutions has one decimal.
type WorkflowStats struct {
	Total             int     `json:"total"`
	Active            int     `json:"active"`
	TotalExecutions   int     `json:"total_executions"`
	AverageExecutions float64 `json:"average_executions"`
}

func (p *WorkflowProcessor) CreateWorkflow(ctx context.Context, params CreateWorkflowParams) (store.AutomationWorkflow, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return store.AutomationWorkflow{}, ErrWorkflowNameRequired
	}

	trigger := store.WorkflowTriggerNewLead
	if params.TriggerType != nil {
		if !store.IsValidWorkflowTrigger(*params.TriggerType) {
			return store.AutomationWorkflow{}, ErrInvalidTriggerType
		}
		trigger = *params.TriggerType
	}

	wf, err := p.store.CreateWorkflow(ctx, store.CreateWorkflowParams{
		Name:              name,
		Description:       params.Description,
		TriggerType:       trigger,
		TriggerConditions: store.JSONB(params.TriggerConditions),
		Actions:           store.JSONB(params.Actions),
		IsActive:          params.IsActive,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create workflow", err)
		return store.AutomationWorkflow{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "workflow_id", Value: wf.ID.String()})
	p.logger.Info(ctx, "workflow created")
	return wf, nil
}

// SaveDraft stores a builder graph as an inactive workflow.
func (p *WorkflowProcessor) SaveDraft(ctx context.Context, draft builder.Draft) (store.AutomationWorkflow, error) {
	var description *string
	if draft.Description != "" {
		description = &draft.Description
	}
	trigger := draft.TriggerType
	return p.CreateWorkflow(ctx, CreateWorkflowParams{
		Name:              draft.Name,
		Description:       description,
		TriggerType:       &trigger,
		TriggerConditions: draft.TriggerConditions,
		Actions:           draft.Actions,
		IsActive:          false,
	})
}

func (p *WorkflowProcessor) GetWorkflow(ctx context.Context, workflowID uuid.UUID) (store.AutomationWorkflow, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "workflow_id", Value: workflowID.String()})

	wf, err := p.store.GetWorkflowByID(ctx, workflowID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.AutomationWorkflow{}, ErrWorkflowNotFound
		}
		p.logger.Error(ctx, "failed to get workflow", err)
		return store.AutomationWorkflow{}, err
	}
	return wf, nil
}

// ListWorkflows returns workflows newest first. search matches name or
// description case-insensitively.
func (p *WorkflowProcessor) ListWorkflows(ctx context.Context, search *string) ([]store.AutomationWorkflow, error) {
	workflows, err := p.store.ListWorkflows(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list workflows", err)
		return nil, err
	}
	if search == nil || *search == "" {
		return workflows, nil
	}

	needle := strings.ToLower(*search)
	filtered := make([]store.AutomationWorkflow, 0, len(workflows))
	for _, wf := range workflows {
		description := ""
		if wf.Description != nil {
			description = *wf.Description
		}
		if strings.Contains(strings.ToLower(wf.Name), needle) || strings.Contains(strings.ToLower(description), needle) {
			filtered = append(filtered, wf)
		}
	}
	return filtered, nil
}

func (p *WorkflowProcessor) UpdateWorkflow(ctx context.Context, workflowID uuid.UUID, params UpdateWorkflowParams) (store.AutomationWorkflow, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "workflow_id", Value: workflowID.String()})

	if params.Name != nil && strings.TrimSpace(*params.Name) == "" {
		return store.AutomationWorkflow{}, ErrWorkflowNameRequired
	}
	if params.TriggerType != nil && !store.IsValidWorkflowTrigger(*params.TriggerType) {
		return store.AutomationWorkflow{}, ErrInvalidTriggerType
	}

	wf, err := p.store.UpdateWorkflow(ctx, workflowID, store.UpdateWorkflowParams{
		Name:              params.Name,
		Description:       params.Description,
		TriggerType:       params.TriggerType,
		TriggerConditions: store.JSONB(params.TriggerConditions),
		Actions:           store.JSONB(params.Actions),
		IsActive:          params.IsActive,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.AutomationWorkflow{}, ErrWorkflowNotFound
		}
		p.logger.Error(ctx, "failed to update workflow", err)
		return store.AutomationWorkflow{}, err
	}
	return wf, nil
}

// SetActive switches a workflow on or off. Nothing is executed either way.
func (p *WorkflowProcessor) SetActive(ctx context.Context, workflowID uuid.UUID, active bool) (store.AutomationWorkflow, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "workflow_id", Value: workflowID.String()},
		observability.Field{Key: "is_active", Value: active},
	)

	wf, err := p.store.SetWorkflowActive(ctx, workflowID, active)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.AutomationWorkflow{}, ErrWorkflowNotFound
		}
		p.logger.Error(ctx, "failed to set workflow active", err)
		return store.AutomationWorkflow{}, err
	}

	if active {
		p.logger.Info(ctx, "workflow activated")
	} else {
		p.logger.Info(ctx, "workflow deactivated")
	}
	return wf, nil
}

func (p *WorkflowProcessor) DeleteWorkflow(ctx context.Context, workflowID uuid.UUID) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "workflow_id", Value: workflowID.String()})

	err := p.store.DeleteWorkflow(ctx, workflowID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrWorkflowNotFound
		}
		p.logger.Error(ctx, "failed to delete workflow", err)
		return err
	}

	p.logger.Info(ctx, "workflow deleted successfully")
	return nil
}

func (p *WorkflowProcessor) GetStats(ctx context.Context) (WorkflowStats, error) {
	totals, err := p.store.GetWorkflowTotals(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to get workflow stats", err)
		return WorkflowStats{}, err
	}

	stats := WorkflowStats{
		Total:           totals.Total,
		Active:          totals.Active,
		TotalExecutions: totals.TotalExecutions,
	}
	if totals.Total > 0 {
		stats.AverageExecutions = math.Round(float64(totals.TotalExecutions)/float64(totals.Total)*10) / 10
	}
	return stats, nil
}
