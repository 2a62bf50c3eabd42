package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const workflowColumns = `id, name, description, trigger_type, trigger_conditions, actions, is_active, execution_count, last_executed, created_at, updated_at`

type CreateWorkflowParams struct {
	Name              string
	Description       *string
	TriggerType       string
	TriggerConditions JSONB
	Actions           JSONB
	IsActive          bool
}

type UpdateWorkflowParams struct {
	Name              *string
	Description       *string
	TriggerType       *string
	TriggerConditions JSONB
	Actions           JSONB
	IsActive          *bool
}

// WorkflowTotals aggregates counts across workflows.
type WorkflowTotals struct {
	Total           int `db:"total"`
	Active          int `db:"active"`
	TotalExecutions int `db:"total_executions"`
}

const sqlCreateWorkflow = `
INSERT INTO automation_workflows (name, description, trigger_type, trigger_conditions, actions, is_active)
VALUES ($1, $2, $3, COALESCE($4, '{}'::jsonb), COALESCE($5, '{}'::jsonb), $6)
RETURNING ` + workflowColumns

// CreateWorkflow stores a workflow graph.
func (s *Store) CreateWorkflow(ctx context.Context, params CreateWorkflowParams) (AutomationWorkflow, error) {
	var wf AutomationWorkflow
	err := s.db.GetContext(ctx, &wf, sqlCreateWorkflow,
		params.Name,
		params.Description,
		params.TriggerType,
		params.TriggerConditions,
		params.Actions,
		params.IsActive)
	if err != nil {
		s.logger.Error(ctx, "failed to create workflow", err)
		return AutomationWorkflow{}, fmt.Errorf("failed to create workflow: %w", err)
	}
	return wf, nil
}

const sqlGetWorkflowByID = `SELECT ` + workflowColumns + ` FROM automation_workflows WHERE id = $1`

func (s *Store) GetWorkflowByID(ctx context.Context, workflowID uuid.UUID) (AutomationWorkflow, error) {
	var wf AutomationWorkflow
	err := s.db.GetContext(ctx, &wf, sqlGetWorkflowByID, workflowID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AutomationWorkflow{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get workflow by id", err)
		return AutomationWorkflow{}, fmt.Errorf("failed to get workflow by id: %w", err)
	}
	return wf, nil
}

const sqlListWorkflows = `SELECT ` + workflowColumns + ` FROM automation_workflows ORDER BY created_at DESC`

func (s *Store) ListWorkflows(ctx context.Context) ([]AutomationWorkflow, error) {
	workflows := []AutomationWorkflow{}
	err := s.db.SelectContext(ctx, &workflows, sqlListWorkflows)
	if err != nil {
		s.logger.Error(ctx, "failed to list workflows", err)
		return nil, fmt.Errorf("failed to list workflows: %w", err)
	}
	return workflows, nil
}

const sqlUpdateWorkflow = `
UPDATE automation_workflows
SET name = COALESCE($2, name),
    description = COALESCE($3, description),
    trigger_type = COALESCE($4, trigger_type),
    trigger_conditions = COALESCE($5, trigger_conditions),
    actions = COALESCE($6, actions),
    is_active = COALESCE($7, is_active),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + workflowColumns

func (s *Store) UpdateWorkflow(ctx context.Context, workflowID uuid.UUID, params UpdateWorkflowParams) (AutomationWorkflow, error) {
	var wf AutomationWorkflow
	err := s.db.GetContext(ctx, &wf, sqlUpdateWorkflow,
		workflowID,
		params.Name,
		params.Description,
		params.TriggerType,
		params.TriggerConditions,
		params.Actions,
		params.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AutomationWorkflow{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update workflow", err)
		return AutomationWorkflow{}, fmt.Errorf("failed to update workflow: %w", err)
	}
	return wf, nil
}

const sqlSetWorkflowActive = `
UPDATE automation_workflows
SET is_active = $2,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + workflowColumns

// SetWorkflowActive toggles is_active.
func (s *Store) SetWorkflowActive(ctx context.Context, workflowID uuid.UUID, active bool) (AutomationWorkflow, error) {
	var wf AutomationWorkflow
	err := s.db.GetContext(ctx, &wf, sqlSetWorkflowActive, workflowID, active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AutomationWorkflow{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to set workflow active", err)
		return AutomationWorkflow{}, fmt.Errorf("failed to set workflow active: %w", err)
	}
	return wf, nil
}

const sqlDeleteWorkflow = `DELETE FROM automation_workflows WHERE id = $1`

func (s *Store) DeleteWorkflow(ctx context.Context, workflowID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteWorkflow, workflowID)
	if err != nil {
		s.logger.Error(ctx, "failed to delete workflow", err)
		return fmt.Errorf("failed to delete workflow: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		s.logger.Error(ctx, "failed to get rows affected", err)
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlGetWorkflowTotals = `
SELECT
    COUNT(*)::int AS total,
    COUNT(*) FILTER (WHERE is_active)::int AS active,
    COALESCE(SUM(execution_count), 0)::int AS total_executions
FROM automation_workflows
`

func (s *Store) GetWorkflowTotals(ctx context.Context) (WorkflowTotals, error) {
	var totals WorkflowTotals
	err := s.db.GetContext(ctx, &totals, sqlGetWorkflowTotals)
	if err != nil {
		s.logger.Error(ctx, "failed to get workflow totals", err)
		return WorkflowTotals{}, fmt.Errorf("failed to get workflow totals: %w", err)
	}
	return totals, nil
}
