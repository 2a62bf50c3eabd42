package processor

import (
	"agent-server/internal/store"
	"context"

	"github.com/google/uuid"
)

type WorkflowStore interface {
	CreateWorkflow(ctx context.Context, params store.CreateWorkflowParams) (store.AutomationWorkflow, error)
	GetWorkflowByID(ctx context.Context, workflowID uuid.UUID) (store.AutomationWorkflow, error)
	ListWorkflows(ctx context.Context) ([]store.AutomationWorkflow, error)
	UpdateWorkflow(ctx context.Context, workflowID uuid.UUID, params store.UpdateWorkflowParams) (store.AutomationWorkflow, error)
	SetWorkflowActive(ctx context.Context, workflowID uuid.UUID, active bool) (store.AutomationWorkflow, error)
	DeleteWorkflow(ctx context.Context, workflowID uuid.UUID) error
	GetWorkflowTotals(ctx context.Context) (store.WorkflowTotals, error)
}
