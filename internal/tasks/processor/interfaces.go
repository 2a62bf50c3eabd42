package processor

import (
	"agent-server/internal/store"
	"context"

	"github.com/google/uuid"
)

// TaskStore defines the database operations required by TaskProcessor
type TaskStore interface {
	CreateTask(ctx context.Context, params store.CreateTaskParams) (store.Task, error)
	GetTaskByID(ctx context.Context, taskID uuid.UUID) (store.Task, error)
	ListTasks(ctx context.Context, params store.ListTasksParams) ([]store.Task, error)
	ListUpcomingTasks(ctx context.Context, limit int) ([]store.Task, error)
	UpdateTask(ctx context.Context, taskID uuid.UUID, params store.UpdateTaskParams) (store.Task, error)
	SetTaskCompleted(ctx context.Context, taskID uuid.UUID, completed bool) (store.Task, error)
	DeleteTask(ctx context.Context, taskID uuid.UUID) error
}
