package apierrors

import (
	"net/http"

	"agent-server/internal/observability"

	"github.com/gin-gonic/gin"
)

var logger = observability.NewLogger()

// SetLogger replaces the package logger, used at startup and by tests.
func SetLogger(l *observability.Logger) {
	if l != nil {
		logger = l
	}
}

// ErrorResponse is the JSON structure returned to API clients
type ErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

const (
	CodeInvalidInput  = "INVALID_INPUT"
	CodeInvalidStatus = "INVALID_STATUS"
	CodeNotFound      = "NOT_FOUND"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeInternalError = "INTERNAL_ERROR"
	CodeRateLimited   = "RATE_LIMIT_EXCEEDED"
)

// respond writes the error response and logs correlation info
func respond(c *gin.Context, statusCode int, code, message string) {
	respondWithFields(c, statusCode, code, message, nil)
}

func respondWithFields(c *gin.Context, statusCode int, code, message string, fields map[string]string) {
	ctx := c.Request.Context()
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "status_code", Value: statusCode},
		observability.Field{Key: "error_code", Value: code},
		observability.Field{Key: "error_message", Value: message},
	)
	logger.Info(ctx, "API error response")

	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Error:  message,
		Code:   code,
		Fields: fields,
	})
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	respond(c, http.StatusNotFound, CodeNotFound, message)
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, code, message string) {
	respond(c, http.StatusBadRequest, code, message)
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	respond(c, http.StatusUnauthorized, CodeUnauthorized, message)
}

// TooManyRequests sends a 429 response
func TooManyRequests(c *gin.Context, message string) {
	respond(c, http.StatusTooManyRequests, CodeRateLimited, message)
}

// InternalError sends a sanitized 500 response - never exposes internal details
func InternalError(c *gin.Context, internalErr error) {
	ctx := c.Request.Context()
	logger.Error(ctx, "internal error", internalErr)
	respond(c, http.StatusInternalServerError, CodeInternalError, "An internal error occurred. Please try again later.")
}
