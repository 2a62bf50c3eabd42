package handler

import (
	"net/http"

	"agent-server/internal/apierrors"
	"agent-server/internal/dashboard/processor"
	"agent-server/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.DashboardProcessor
	logger    *observability.Logger
}

func New(processor processor.DashboardProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleGetOverview returns the dashboard summary cards, recent leads and upcoming tasks
func (h *Handler) HandleGetOverview(c *gin.Context) {
	ctx := c.Request.Context()

	overview, err := h.processor.GetOverview(ctx)
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// HandleGetAnalytics returns pipeline and campaign breakdowns
func (h *Handler) HandleGetAnalytics(c *gin.Context) {
	ctx := c.Request.Context()

	analytics, err := h.processor.GetAnalytics(ctx)
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, analytics)
}
