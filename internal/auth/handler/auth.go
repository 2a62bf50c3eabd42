package handler

import (
	"errors"
	"net/http"
	"strings"

	"agent-server/internal/apierrors"
	"agent-server/internal/auth/processor"
	"agent-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// contextKeyUser holds the authenticated processor.User on the gin context.
const contextKeyUser = "User"

type Handler struct {
	authProcessor processor.AuthProcessor
	logger        *observability.Logger
}

type SignupRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func New(authProcessor processor.AuthProcessor, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, logger: logger}
}

func (h *Handler) HandleLogin(c *gin.Context) {
	ctx := c.Request.Context()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	session, err := h.authProcessor.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *Handler) HandleSignup(c *gin.Context) {
	ctx := c.Request.Context()

	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	session, err := h.authProcessor.Signup(ctx, req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.Unauthorized(c, "Authorization token is missing or invalid")
		c.Abort()
		return
	}

	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")

	claims, err := h.authProcessor.ValidateJWTToken(ctx, tokenString)
	if err != nil {
		apierrors.Unauthorized(c, err.Error())
		c.Abort()
		return
	}
	user, err := processor.UserFromClaims(claims)
	if err != nil {
		apierrors.Unauthorized(c, err.Error())
		c.Abort()
		return
	}

	c.Set(contextKeyUser, user)
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: user.ID.String()})
	c.Request = c.Request.WithContext(ctx)
	c.Next()
}

// GetUserInfo returns the user behind the request's token
func (h *Handler) GetUserInfo(c *gin.Context) {
	ctx := c.Request.Context()

	value, ok := c.Get(contextKeyUser)
	user, isUser := value.(processor.User)
	if !ok || !isUser {
		h.logger.Error(ctx, "failed to get user from context", nil)
		apierrors.Unauthorized(c, "Authorization token is missing or invalid")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrInvalidCredentials):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Please enter your email and password.")
	case errors.Is(err, processor.ErrFirstNameRequired):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Please fill in all required fields.")
	default:
		apierrors.InternalError(c, err)
	}
}
