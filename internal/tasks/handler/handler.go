package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"agent-server/internal/apierrors"
	"agent-server/internal/observability"
	"agent-server/internal/tasks/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.TaskProcessor
	logger    *observability.Logger
}

func New(processor processor.TaskProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required,max=255"`
	Description *string    `json:"description,omitempty"`
	DueDate     *string    `json:"due_date,omitempty"`
	Priority    *string    `json:"priority,omitempty" binding:"omitempty,oneof=low medium high urgent"`
	TaskType    *string    `json:"task_type,omitempty" binding:"omitempty,max=50"`
	LeadID      *uuid.UUID `json:"lead_id,omitempty"`
}

type UpdateTaskRequest struct {
	Title       *string    `json:"title,omitempty" binding:"omitempty,min=1,max=255"`
	Description *string    `json:"description,omitempty"`
	DueDate     *string    `json:"due_date,omitempty"`
	Priority    *string    `json:"priority,omitempty" binding:"omitempty,oneof=low medium high urgent"`
	TaskType    *string    `json:"task_type,omitempty" binding:"omitempty,max=50"`
	LeadID      *uuid.UUID `json:"lead_id,omitempty"`
	Completed   *bool      `json:"completed,omitempty"`
}

type SetCompletedRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

// parseDueDate accepts a calendar date or an RFC 3339 timestamp.
func parseDueDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, *raw); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("due_date must be a date (YYYY-MM-DD) or RFC 3339 timestamp")
}

func (h *Handler) HandleCreateTask(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, err.Error())
		return
	}

	task, err := h.processor.CreateTask(ctx, processor.CreateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		Priority:    req.Priority,
		TaskType:    req.TaskType,
		LeadID:      req.LeadID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// HandleListTasks lists tasks filtered by ?completed= and ?lead_id=
func (h *Handler) HandleListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	var completed *bool
	if completedStr := c.Query("completed"); completedStr != "" {
		v, err := strconv.ParseBool(completedStr)
		if err != nil {
			apierrors.BadRequest(c, apierrors.CodeInvalidInput, "completed must be true or false")
			return
		}
		completed = &v
	}

	var leadID *uuid.UUID
	if leadStr := c.Query("lead_id"); leadStr != "" {
		id, err := uuid.Parse(leadStr)
		if err != nil {
			apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid lead ID format")
			return
		}
		leadID = &id
	}

	tasks, err := h.processor.ListTasks(ctx, completed, leadID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// HandleListUpcomingTasks lists incomplete tasks soonest first, ?limit= bounded
func (h *Handler) HandleListUpcomingTasks(c *gin.Context) {
	ctx := c.Request.Context()

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		v, err := strconv.Atoi(limitStr)
		if err != nil || v < 1 {
			apierrors.BadRequest(c, apierrors.CodeInvalidInput, "limit must be a positive integer")
			return
		}
		limit = v
	}

	tasks, err := h.processor.ListUpcoming(ctx, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func (h *Handler) HandleGetTask(c *gin.Context) {
	ctx := c.Request.Context()

	taskID, ok := h.getTaskID(c)
	if !ok {
		return
	}

	task, err := h.processor.GetTask(ctx, taskID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *Handler) HandleUpdateTask(c *gin.Context) {
	ctx := c.Request.Context()

	taskID, ok := h.getTaskID(c)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, err.Error())
		return
	}

	task, err := h.processor.UpdateTask(ctx, taskID, processor.UpdateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		Priority:    req.Priority,
		TaskType:    req.TaskType,
		LeadID:      req.LeadID,
		Completed:   req.Completed,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// HandleSetTaskCompleted toggles completion
func (h *Handler) HandleSetTaskCompleted(c *gin.Context) {
	ctx := c.Request.Context()

	taskID, ok := h.getTaskID(c)
	if !ok {
		return
	}

	var req SetCompletedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	task, err := h.processor.SetCompleted(ctx, taskID, *req.Completed)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *Handler) HandleDeleteTask(c *gin.Context) {
	ctx := c.Request.Context()

	taskID, ok := h.getTaskID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteTask(ctx, taskID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) getTaskID(c *gin.Context) (uuid.UUID, bool) {
	taskID, err := uuid.Parse(c.Param("task_id"))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid task ID format")
		return uuid.UUID{}, false
	}
	return taskID, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrTaskNotFound):
		apierrors.NotFound(c, "Task not found")
	case errors.Is(err, processor.ErrTaskTitleRequired):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "title is required")
	case errors.Is(err, processor.ErrInvalidTaskPriority):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid task priority")
	default:
		apierrors.InternalError(c, err)
	}
}
