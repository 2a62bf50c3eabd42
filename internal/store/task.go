package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const taskColumns = `id, title, description, due_date, priority, task_type, lead_id, completed, created_at, updated_at`

type CreateTaskParams struct {
	Title       string
	Description *string
	DueDate     *time.Time
	Priority    string
	TaskType    *string
	LeadID      *uuid.UUID
}

type UpdateTaskParams struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Priority    *string
	TaskType    *string
	LeadID      *uuid.UUID
	Completed   *bool
}

// ListTasksParams filters ListTasks.
type ListTasksParams struct {
	Completed *bool
	LeadID    *uuid.UUID
}

const sqlCreateTask = `
INSERT INTO tasks (title, description, due_date, priority, task_type, lead_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + taskColumns

func (s *Store) CreateTask(ctx context.Context, params CreateTaskParams) (Task, error) {
	var task Task
	err := s.db.GetContext(ctx, &task, sqlCreateTask,
		params.Title,
		params.Description,
		params.DueDate,
		params.Priority,
		params.TaskType,
		params.LeadID)
	if err != nil {
		s.logger.Error(ctx, "failed to create task", err)
		return Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

const sqlGetTaskByID = `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

func (s *Store) GetTaskByID(ctx context.Context, taskID uuid.UUID) (Task, error) {
	var task Task
	err := s.db.GetContext(ctx, &task, sqlGetTaskByID, taskID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Task{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get task by id", err)
		return Task{}, fmt.Errorf("failed to get task by id: %w", err)
	}
	return task, nil
}

// ListTasks returns tasks by due date, undated last.
func (s *Store) ListTasks(ctx context.Context, params ListTasksParams) ([]Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE 1=1`
	args := []interface{}{}
	argCount := 0

	if params.Completed != nil {
		argCount++
		query += fmt.Sprintf(" AND completed = $%d", argCount)
		args = append(args, *params.Completed)
	}

	if params.LeadID != nil {
		argCount++
		query += fmt.Sprintf(" AND lead_id = $%d", argCount)
		args = append(args, *params.LeadID)
	}

	query += " ORDER BY due_date ASC NULLS LAST, created_at DESC"

	tasks := []Task{}
	err := s.db.SelectContext(ctx, &tasks, query, args...)
	if err != nil {
		s.logger.Error(ctx, "failed to list tasks", err)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

const sqlListUpcomingTasks = `
SELECT ` + taskColumns + `
FROM tasks
WHERE completed = false
ORDER BY due_date ASC NULLS LAST
LIMIT $1
`

// ListUpcomingTasks returns incomplete tasks soonest due first.
func (s *Store) ListUpcomingTasks(ctx context.Context, limit int) ([]Task, error) {
	tasks := []Task{}
	err := s.db.SelectContext(ctx, &tasks, sqlListUpcomingTasks, limit)
	if err != nil {
		s.logger.Error(ctx, "failed to list upcoming tasks", err)
		return nil, fmt.Errorf("failed to list upcoming tasks: %w", err)
	}
	return tasks, nil
}

const sqlUpdateTask = `
UPDATE tasks
SET title = COALESCE($2, title),
    description = COALESCE($3, description),
    due_date = COALESCE($4, due_date),
    priority = COALESCE($5, priority),
    task_type = COALESCE($6, task_type),
    lead_id = COALESCE($7, lead_id),
    completed = COALESCE($8, completed),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + taskColumns

func (s *Store) UpdateTask(ctx context.Context, taskID uuid.UUID, params UpdateTaskParams) (Task, error) {
	var task Task
	err := s.db.GetContext(ctx, &task, sqlUpdateTask,
		taskID,
		params.Title,
		params.Description,
		params.DueDate,
		params.Priority,
		params.TaskType,
		params.LeadID,
		params.Completed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Task{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update task", err)
		return Task{}, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

const sqlSetTaskCompleted = `
UPDATE tasks
SET completed = $2,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + taskColumns

func (s *Store) SetTaskCompleted(ctx context.Context, taskID uuid.UUID, completed bool) (Task, error) {
	var task Task
	err := s.db.GetContext(ctx, &task, sqlSetTaskCompleted, taskID, completed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Task{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to set task completed", err)
		return Task{}, fmt.Errorf("failed to set task completed: %w", err)
	}
	return task, nil
}

const sqlDeleteTask = `DELETE FROM tasks WHERE id = $1`

func (s *Store) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteTask, taskID)
	if err != nil {
		s.logger.Error(ctx, "failed to delete task", err)
		return fmt.Errorf("failed to delete task: %w", err)
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
