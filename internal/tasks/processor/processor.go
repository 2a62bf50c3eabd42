package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"agent-server/internal/observability"
	"agent-server/internal/store"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrTaskTitleRequired   = errors.New("task title is required")
	ErrInvalidTaskPriority = errors.New("invalid task priority")
)

const (
	DefaultUpcomingLimit = 10
	MaxUpcomingLimit     = 50
)

type TaskProcessor struct {
	store  TaskStore
	logger *observability.Logger
}

func New(store TaskStore, logger *observability.Logger) TaskProcessor {
	return TaskProcessor{
		store:  store,
		logger: logger,
	}
}

type CreateTaskParams struct {
	Title       string
	Description *string
	DueDate     *time.Time
	Priority    *string
	TaskType    *string
	LeadID      *uuid.UUID
}

// UpdateTaskParams is a partial update; nil fields are untouched.
type UpdateTaskParams struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Priority    *string
	TaskType    *string
	LeadID      *uuid.UUID
	Completed   *bool
}

func (p *TaskProcessor) CreateTask(ctx context.Context, params CreateTaskParams) (store.Task, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return store.Task{}, ErrTaskTitleRequired
	}

	priority := store.TaskPriorityMedium
	if params.Priority != nil {
		if !store.IsValidTaskPriority(*params.Priority) {
			return store.Task{}, ErrInvalidTaskPriority
		}
		priority = *params.Priority
	}

	task, err := p.store.CreateTask(ctx, store.CreateTaskParams{
		Title:       title,
		Description: params.Description,
		DueDate:     params.DueDate,
		Priority:    priority,
		TaskType:    params.TaskType,
		LeadID:      params.LeadID,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create task", err)
		return store.Task{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "task_id", Value: task.ID.String()})
	p.logger.Info(ctx, "task created")
	return task, nil
}

func (p *TaskProcessor) GetTask(ctx context.Context, taskID uuid.UUID) (store.Task, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "task_id", Value: taskID.String()})

	task, err := p.store.GetTaskByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Task{}, ErrTaskNotFound
		}
		p.logger.Error(ctx, "failed to get task", err)
		return store.Task{}, err
	}
	return task, nil
}

// ListTasks returns tasks soonest due first, optionally by completion and lead.
func (p *TaskProcessor) ListTasks(ctx context.Context, completed *bool, leadID *uuid.UUID) ([]store.Task, error) {
	tasks, err := p.store.ListTasks(ctx, store.ListTasksParams{Completed: completed, LeadID: leadID})
	if err != nil {
		p.logger.Error(ctx, "failed to list tasks", err)
		return nil, err
	}
	return tasks, nil
}

// ListUpcoming returns at most limit incomplete tasks. Non-positive limits
// use DefaultUpcomingLimit; larger ones are capped at MaxUpcomingLimit.
func (p *TaskProcessor) ListUpcoming(ctx context.Context, limit int) ([]store.Task, error) {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}
	if limit > MaxUpcomingLimit {
		limit = MaxUpcomingLimit
	}

	tasks, err := p.store.ListUpcomingTasks(ctx, limit)
	if err != nil {
		p.logger.Error(ctx, "failed to list upcoming tasks", err)
		return nil, err
	}
	return tasks, nil
}

func (p *TaskProcessor) UpdateTask(ctx context.Context, taskID uuid.UUID, params UpdateTaskParams) (store.Task, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "task_id", Value: taskID.String()})

	if params.Title != nil && strings.TrimSpace(*params.Title) == "" {
		return store.Task{}, ErrTaskTitleRequired
	}
	if params.Priority != nil && !store.IsValidTaskPriority(*params.Priority) {
		return store.Task{}, ErrInvalidTaskPriority
	}

	task, err := p.store.UpdateTask(ctx, taskID, store.UpdateTaskParams{
		Title:       params.Title,
		Description: params.Description,
		DueDate:     params.DueDate,
		Priority:    params.Priority,
		TaskType:    params.TaskType,
		LeadID:      params.LeadID,
		Completed:   params.Completed,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Task{}, ErrTaskNotFound
		}
		p.logger.Error(ctx, "failed to update task", err)
		return store.Task{}, err
	}
	return task, nil
}

func (p *TaskProcessor) SetCompleted(ctx context.Context, taskID uuid.UUID, completed bool) (store.Task, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "task_id", Value: taskID.String()})

	task, err := p.store.SetTaskCompleted(ctx, taskID, completed)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Task{}, ErrTaskNotFound
		}
		p.logger.Error(ctx, "failed to set task completed", err)
		return store.Task{}, err
	}

	if completed {
		p.logger.Info(ctx, "task completed")
	} else {
		p.logger.Info(ctx, "task reopened")
	}
	return task, nil
}

func (p *TaskProcessor) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "task_id", Value: taskID.String()})

	if err := p.store.DeleteTask(ctx, taskID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTaskNotFound
		}
		p.logger.Error(ctx, "failed to delete task", err)
		return err
	}

	p.logger.Info(ctx, "task deleted successfully")
	return nil
}
