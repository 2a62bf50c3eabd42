package handler

import (
	"errors"
	"net/http"

	"agent-server/internal/apierrors"
	"agent-server/internal/leads/processor"
	"agent-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	listPath  = "/leads"
	boardPath = "/leads/board"
)

type Handler struct {
	processor processor.LeadProcessor
	logger    *observability.Logger
}

func New(processor processor.LeadProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateLeadRequest accepts both the name and first/last shapes, and
// lead_source as an alias of source.
type CreateLeadRequest struct {
	Name             *string  `json:"name,omitempty" binding:"omitempty,max=255"`
	FirstName        *string  `json:"first_name,omitempty" binding:"omitempty,max=255"`
	LastName         *string  `json:"last_name,omitempty" binding:"omitempty,max=255"`
	Email            string   `json:"email" binding:"required,email"`
	Phone            *string  `json:"phone,omitempty"`
	Status           *string  `json:"status,omitempty" binding:"omitempty,oneof=new contacted qualified proposal closed_won closed_lost"`
	Source           *string  `json:"source,omitempty"`
	LeadSource       *string  `json:"lead_source,omitempty"`
	PropertyInterest *string  `json:"property_interest,omitempty"`
	PropertyType     *string  `json:"property_type,omitempty"`
	BudgetRange      *string  `json:"budget_range,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
	AIScore          *float64 `json:"ai_score,omitempty" binding:"omitempty,gte=0,lte=100"`
}

// UpdateLeadRequest is a partial update; absent fields are untouched.
type UpdateLeadRequest struct {
	Name             *string  `json:"name,omitempty" binding:"omitempty,max=255"`
	FirstName        *string  `json:"first_name,omitempty" binding:"omitempty,max=255"`
	LastName         *string  `json:"last_name,omitempty" binding:"omitempty,max=255"`
	Email            *string  `json:"email,omitempty" binding:"omitempty,email"`
	Phone            *string  `json:"phone,omitempty"`
	Status           *string  `json:"status,omitempty" binding:"omitempty,oneof=new contacted qualified proposal closed_won closed_lost"`
	Source           *string  `json:"source,omitempty"`
	LeadSource       *string  `json:"lead_source,omitempty"`
	PropertyInterest *string  `json:"property_interest,omitempty"`
	PropertyType     *string  `json:"property_type,omitempty"`
	BudgetRange      *string  `json:"budget_range,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
	AIScore          *float64 `json:"ai_score,omitempty" binding:"omitempty,gte=0,lte=100"`
}

// UpdateLeadStatusRequest represents the HTTP request for moving a lead
type UpdateLeadStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new contacted qualified proposal closed_won closed_lost"`
}

func canonicalSource(source, alias *string) *string {
	if source != nil {
		return source
	}
	return alias
}

// HandleCreateLead creates a new lead
func (h *Handler) HandleCreateLead(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	lead, err := h.processor.CreateLead(ctx, processor.CreateLeadParams{
		Name:             req.Name,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		Status:           req.Status,
		Source:           canonicalSource(req.Source, req.LeadSource),
		PropertyInterest: req.PropertyInterest,
		PropertyType:     req.PropertyType,
		BudgetRange:      req.BudgetRange,
		Notes:            req.Notes,
		AIScore:          req.AIScore,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, lead)
}

// HandleListLeads lists leads newest first, filtered by ?status= and ?search=
func (h *Handler) HandleListLeads(c *gin.Context) {
	ctx := c.Request.Context()

	var status *string
	if statusStr := c.Query("status"); statusStr != "" {
		status = &statusStr
	}

	var search *string
	if searchStr := c.Query("search"); searchStr != "" {
		search = &searchStr
	}

	leads, err := h.processor.ListLeads(ctx, status, search)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"leads":      leads,
		"board_path": boardPath,
	})
}

// HandleGetBoard returns every lead bucketed by stage
func (h *Handler) HandleGetBoard(c *gin.Context) {
	ctx := c.Request.Context()

	columns, err := h.processor.GetBoard(ctx, c.Query("search"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"columns":   columns,
		"list_path": listPath,
	})
}

// HandleGetLead retrieves a lead by ID
func (h *Handler) HandleGetLead(c *gin.Context) {
	ctx := c.Request.Context()

	leadID, ok := h.getLeadID(c)
	if !ok {
		return
	}

	lead, err := h.processor.GetLead(ctx, leadID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, lead)
}

// HandleUpdateLead applies a partial update
func (h *Handler) HandleUpdateLead(c *gin.Context) {
	ctx := c.Request.Context()

	leadID, ok := h.getLeadID(c)
	if !ok {
		return
	}

	var req UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	lead, err := h.processor.UpdateLead(ctx, leadID, processor.UpdateLeadParams{
		Name:             req.Name,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		Status:           req.Status,
		Source:           canonicalSource(req.Source, req.LeadSource),
		PropertyInterest: req.PropertyInterest,
		PropertyType:     req.PropertyType,
		BudgetRange:      req.BudgetRange,
		Notes:            req.Notes,
		AIScore:          req.AIScore,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, lead)
}

// HandleUpdateLeadStatus moves a lead to another stage
func (h *Handler) HandleUpdateLeadStatus(c *gin.Context) {
	ctx := c.Request.Context()

	leadID, ok := h.getLeadID(c)
	if !ok {
		return
	}

	var req UpdateLeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	lead, err := h.processor.UpdateLeadStatus(ctx, leadID, req.Status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, lead)
}

// HandleDeleteLead permanently deletes a lead
func (h *Handler) HandleDeleteLead(c *gin.Context) {
	ctx := c.Request.Context()

	leadID, ok := h.getLeadID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteLead(ctx, leadID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HandleListLeadActivity returns a lead's event history
func (h *Handler) HandleListLeadActivity(c *gin.Context) {
	ctx := c.Request.Context()

	leadID, ok := h.getLeadID(c)
	if !ok {
		return
	}

	activities, err := h.processor.ListLeadActivity(ctx, leadID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

func (h *Handler) getLeadID(c *gin.Context) (uuid.UUID, bool) {
	leadID, err := uuid.Parse(c.Param("lead_id"))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid lead ID format")
		return uuid.UUID{}, false
	}
	return leadID, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrLeadNotFound):
		apierrors.NotFound(c, "Lead not found")
	case errors.Is(err, processor.ErrInvalidLeadStatus):
		apierrors.BadRequest(c, apierrors.CodeInvalidStatus, "Invalid lead status")
	case errors.Is(err, processor.ErrNameRequired):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "name is required")
	case errors.Is(err, processor.ErrEmailRequired):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "email is required")
	default:
		apierrors.InternalError(c, err)
	}
}
