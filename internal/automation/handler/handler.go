package handler

import (
	"errors"
	"net/http"

	"agent-server/internal/apierrors"
	"agent-server/internal/automation/builder"
	"agent-server/internal/automation/processor"
	"agent-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.WorkflowProcessor
	logger    *observability.Logger
}

func New(processor processor.WorkflowProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type CreateWorkflowRequest struct {
	Name              string                 `json:"name" binding:"required,max=255"`
	Description       *string                `json:"description,omitempty"`
	TriggerType       *string                `json:"trigger_type,omitempty" binding:"omitempty,oneof=new_lead lead_status_change scheduled email_opened form_submitted"`
	TriggerConditions map[string]interface{} `json:"trigger_conditions,omitempty"`
	Actions           map[string]interface{} `json:"actions,omitempty"`
	IsActive          bool                   `json:"is_active"`
}

type UpdateWorkflowRequest struct {
	Name              *string                `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Description       *string                `json:"description,omitempty"`
	TriggerType       *string                `json:"trigger_type,omitempty" binding:"omitempty,oneof=new_lead lead_status_change scheduled email_opened form_submitted"`
	TriggerConditions map[string]interface{} `json:"trigger_conditions,omitempty"`
	Actions           map[string]interface{} `json:"actions,omitempty"`
	IsActive          *bool                  `json:"is_active,omitempty"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// DraftStep is one node to add after the starting trigger.
type DraftStep struct {
	Kind        string `json:"kind" binding:"required,oneof=trigger condition action"`
	Label       string `json:"label,omitempty"`
	TriggerType string `json:"trigger_type,omitempty"`
}

// DraftConnection joins two nodes by position: 0 is the starting trigger,
// n is steps[n-1].
type DraftConnection struct {
	From int `json:"from" binding:"gte=0"`
	To   int `json:"to" binding:"gte=0"`
}

// SaveDraftRequest describes a builder session to replay server-side.
// TriggerType, when set, applies to the starting trigger.
type SaveDraftRequest struct {
	Name        string            `json:"name" binding:"required,max=255"`
	Description string            `json:"description,omitempty"`
	TriggerType string            `json:"trigger_type,omitempty"`
	Steps       []DraftStep       `json:"steps" binding:"dive"`
	Connections []DraftConnection `json:"connections" binding:"dive"`
}

// HandleCreateWorkflow creates a workflow from a raw definition
func (h *Handler) HandleCreateWorkflow(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	wf, err := h.processor.CreateWorkflow(ctx, processor.CreateWorkflowParams{
		Name:              req.Name,
		Description:       req.Description,
		TriggerType:       req.TriggerType,
		TriggerConditions: req.TriggerConditions,
		Actions:           req.Actions,
		IsActive:          req.IsActive,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, wf)
}

// HandleSaveDraft assembles a graph with the builder and stores it inactive
func (h *Handler) HandleSaveDraft(c *gin.Context) {
	ctx := c.Request.Context()

	var req SaveDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	draft, err := buildDraft(req)
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, err.Error())
		return
	}

	wf, err := h.processor.SaveDraft(ctx, draft)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, wf)
}

func buildDraft(req SaveDraftRequest) (builder.Draft, error) {
	b := builder.New()
	ids := []string{b.Nodes()[0].ID}

	if req.TriggerType != "" {
		if err := b.SetTriggerType(ids[0], req.TriggerType); err != nil {
			return builder.Draft{}, err
		}
	}

	for _, step := range req.Steps {
		node, err := b.AddNode(builder.NodeKind(step.Kind), step.Label)
		if err != nil {
			return builder.Draft{}, err
		}
		if step.TriggerType != "" {
			if err := b.SetTriggerType(node.ID, step.TriggerType); err != nil {
				return builder.Draft{}, err
			}
		}
		ids = append(ids, node.ID)
	}

	for _, conn := range req.Connections {
		if conn.From >= len(ids) || conn.To >= len(ids) {
			return builder.Draft{}, builder.ErrNodeNotFound
		}
		if _, err := b.Connect(ids[conn.From], ids[conn.To]); err != nil {
			return builder.Draft{}, err
		}
	}

	return b.Payload(req.Name, req.Description)
}

// HandleListWorkflows lists workflows, filtered by ?search=
func (h *Handler) HandleListWorkflows(c *gin.Context) {
	ctx := c.Request.Context()

	var search *string
	if searchStr := c.Query("search"); searchStr != "" {
		search = &searchStr
	}

	workflows, err := h.processor.ListWorkflows(ctx, search)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"workflows": workflows})
}

func (h *Handler) HandleGetWorkflowStats(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.processor.GetStats(ctx)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// HandleListActionTemplates returns the editor's action palette
func (h *Handler) HandleListActionTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": builder.ActionTemplates})
}

func (h *Handler) HandleGetWorkflow(c *gin.Context) {
	ctx := c.Request.Context()

	workflowID, ok := h.getWorkflowID(c)
	if !ok {
		return
	}

	wf, err := h.processor.GetWorkflow(ctx, workflowID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, wf)
}

func (h *Handler) HandleUpdateWorkflow(c *gin.Context) {
	ctx := c.Request.Context()

	workflowID, ok := h.getWorkflowID(c)
	if !ok {
		return
	}

	var req UpdateWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	wf, err := h.processor.UpdateWorkflow(ctx, workflowID, processor.UpdateWorkflowParams{
		Name:              req.Name,
		Description:       req.Description,
		TriggerType:       req.TriggerType,
		TriggerConditions: req.TriggerConditions,
		Actions:           req.Actions,
		IsActive:          req.IsActive,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, wf)
}

// HandleSetWorkflowActive toggles is_active
func (h *Handler) HandleSetWorkflowActive(c *gin.Context) {
	ctx := c.Request.Context()

	workflowID, ok := h.getWorkflowID(c)
	if !ok {
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	wf, err := h.processor.SetActive(ctx, workflowID, *req.IsActive)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, wf)
}

func (h *Handler) HandleDeleteWorkflow(c *gin.Context) {
	ctx := c.Request.Context()

	workflowID, ok := h.getWorkflowID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteWorkflow(ctx, workflowID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) getWorkflowID(c *gin.Context) (uuid.UUID, bool) {
	workflowID, err := uuid.Parse(c.Param("workflow_id"))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid workflow ID format")
		return uuid.UUID{}, false
	}
	return workflowID, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrWorkflowNotFound):
		apierrors.NotFound(c, "Workflow not found")
	case errors.Is(err, processor.ErrWorkflowNameRequired), errors.Is(err, builder.ErrNameRequired):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "name is required")
	case errors.Is(err, processor.ErrInvalidTriggerType):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid trigger type")
	default:
		apierrors.InternalError(c, err)
	}
}
