package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"agent-server/internal/apierrors"
	"agent-server/internal/campaign/processor"
	"agent-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.CampaignProcessor
	logger    *observability.Logger
}

func New(processor processor.CampaignProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateCampaignRequest represents the HTTP request for creating a campaign.
// Dates accept YYYY-MM-DD or RFC 3339.
type CreateCampaignRequest struct {
	Name           string                 `json:"name" binding:"required,max=255"`
	Status         *string                `json:"status,omitempty" binding:"omitempty,oneof=draft active paused completed"`
	Type           *string                `json:"type,omitempty" binding:"omitempty,oneof=email social ppc content event"`
	Budget         *float64               `json:"budget,omitempty" binding:"omitempty,gte=0"`
	Goals          *string                `json:"goals,omitempty"`
	TargetAudience *string                `json:"target_audience,omitempty"`
	Metrics        map[string]interface{} `json:"metrics,omitempty"`
	StartDate      *string                `json:"start_date,omitempty"`
	EndDate        *string                `json:"end_date,omitempty"`
}

// UpdateCampaignRequest is a partial update; absent fields are untouched.
type UpdateCampaignRequest struct {
	Name           *string                `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Status         *string                `json:"status,omitempty" binding:"omitempty,oneof=draft active paused completed"`
	Type           *string                `json:"type,omitempty" binding:"omitempty,oneof=email social ppc content event"`
	Budget         *float64               `json:"budget,omitempty" binding:"omitempty,gte=0"`
	Goals          *string                `json:"goals,omitempty"`
	TargetAudience *string                `json:"target_audience,omitempty"`
	Metrics        map[string]interface{} `json:"metrics,omitempty"`
	StartDate      *string                `json:"start_date,omitempty"`
	EndDate        *string                `json:"end_date,omitempty"`
}

func parseDate(field string, raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, *raw); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%s must be a date (YYYY-MM-DD)", field)
}

func parseDates(start, end *string) (*time.Time, *time.Time, error) {
	startDate, err := parseDate("start_date", start)
	if err != nil {
		return nil, nil, err
	}
	endDate, err := parseDate("end_date", end)
	if err != nil {
		return nil, nil, err
	}
	return startDate, endDate, nil
}

// HandleCreateCampaign creates a new campaign
func (h *Handler) HandleCreateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	startDate, endDate, err := parseDates(req.StartDate, req.EndDate)
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, err.Error())
		return
	}

	campaign, err := h.processor.CreateCampaign(ctx, processor.CreateCampaignParams{
		Name:           req.Name,
		Status:         req.Status,
		Type:           req.Type,
		Budget:         req.Budget,
		Goals:          req.Goals,
		TargetAudience: req.TargetAudience,
		Metrics:        req.Metrics,
		StartDate:      startDate,
		EndDate:        endDate,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, campaign)
}

// HandleListCampaigns lists campaigns filtered by ?status= and ?search=
func (h *Handler) HandleListCampaigns(c *gin.Context) {
	ctx := c.Request.Context()

	var status *string
	if statusStr := c.Query("status"); statusStr != "" {
		status = &statusStr
	}

	var search *string
	if searchStr := c.Query("search"); searchStr != "" {
		search = &searchStr
	}

	campaigns, err := h.processor.ListCampaigns(ctx, status, search)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"campaigns": campaigns})
}

// HandleGetCampaignStats returns campaign counts and budgets
func (h *Handler) HandleGetCampaignStats(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.processor.GetStats(ctx)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// HandleGetCampaign retrieves a campaign by ID
func (h *Handler) HandleGetCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	campaign, err := h.processor.GetCampaign(ctx, campaignID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandleUpdateCampaign applies a partial update
func (h *Handler) HandleUpdateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	var req UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	startDate, endDate, err := parseDates(req.StartDate, req.EndDate)
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, err.Error())
		return
	}

	campaign, err := h.processor.UpdateCampaign(ctx, campaignID, processor.UpdateCampaignParams{
		Name:           req.Name,
		Status:         req.Status,
		Type:           req.Type,
		Budget:         req.Budget,
		Goals:          req.Goals,
		TargetAudience: req.TargetAudience,
		Metrics:        req.Metrics,
		StartDate:      startDate,
		EndDate:        endDate,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandleDeleteCampaign deletes a campaign
func (h *Handler) HandleDeleteCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteCampaign(ctx, campaignID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) getCampaignID(c *gin.Context) (uuid.UUID, bool) {
	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid campaign ID format")
		return uuid.UUID{}, false
	}
	return campaignID, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrCampaignNotFound):
		apierrors.NotFound(c, "Campaign not found")
	case errors.Is(err, processor.ErrInvalidCampaignStatus):
		apierrors.BadRequest(c, apierrors.CodeInvalidStatus, "Invalid campaign status")
	case errors.Is(err, processor.ErrInvalidCampaignType):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid campaign type")
	case errors.Is(err, processor.ErrCampaignNameRequired):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "name is required")
	case errors.Is(err, processor.ErrInvalidDateRange):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "end_date must not be before start_date")
	case errors.Is(err, processor.ErrNegativeBudget):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "budget cannot be negative")
	default:
		apierrors.InternalError(c, err)
	}
}
