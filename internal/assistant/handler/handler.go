package handler

import (
	"errors"
	"net/http"

	"agent-server/internal/apierrors"
	"agent-server/internal/assistant/processor"
	"agent-server/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.AssistantProcessor
	logger    *observability.Logger
}

func New(processor processor.AssistantProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type ChatRequest struct {
	Message string `json:"message" binding:"required,max=4000"`
}

// HandleChat answers one prompt
func (h *Handler) HandleChat(c *gin.Context) {
	ctx := c.Request.Context()

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	msg, err := h.processor.Reply(ctx, req.Message)
	if err != nil {
		if errors.Is(err, processor.ErrEmptyMessage) {
			apierrors.BadRequest(c, apierrors.CodeInvalidInput, "message is required")
			return
		}
		apierrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, msg)
}

// HandleGetPrompts returns the greeting, suggested prompts and quick actions
func (h *Handler) HandleGetPrompts(c *gin.Context) {
	c.JSON(http.StatusOK, h.processor.Prompts())
}
