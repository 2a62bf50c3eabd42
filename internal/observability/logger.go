package observability

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field represents a key-value pair for observability.
type Field struct {
	Key   string
	Value interface{}
}

// MetricField represents a key-value pair for logging metrics.
type MetricField struct {
	Key   string
	Value interface{}
}

type ObservabilityContextKey string

const observabilityKey ObservabilityContextKey = "observability_fields"

// WithFields adds a set of observability fields to the context.
func WithFields(ctx context.Context, fields ...Field) context.Context {
	existing := getObservabilityFields(ctx)
	merged := make([]Field, 0, len(existing)+len(fields))
	merged = append(merged, existing...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, observabilityKey, merged)
}

// Get observability fields from context.
func getObservabilityFields(ctx context.Context) []Field {
	if fields, ok := ctx.Value(observabilityKey).([]Field); ok {
		return fields
	}
	return nil
}

// Merge fields from context and additional metric fields, avoiding duplicates.
// Later keys win.
func mergeFields(ctx context.Context, fields []MetricField) []zapcore.Field {
	order := make([]string, 0)
	fieldMap := make(map[string]zapcore.Field)

	for _, f := range getObservabilityFields(ctx) {
		if _, seen := fieldMap[f.Key]; !seen {
			order = append(order, f.Key)
		}
		fieldMap[f.Key] = zap.Any(f.Key, f.Value)
	}

	for _, f := range fields {
		if _, seen := fieldMap[f.Key]; !seen {
			order = append(order, f.Key)
		}
		fieldMap[f.Key] = zap.Any(f.Key, f.Value)
	}

	merged := make([]zapcore.Field, 0, len(order))
	for _, key := range order {
		merged = append(merged, fieldMap[key])
	}
	return merged
}

// GetRealClientIP returns the first X-Forwarded-For hop when present,
// falling back to gin's resolution.
func GetRealClientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	return c.ClientIP()
}

// Probe endpoints polled by infrastructure; no per-request metrics line.
var quietPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// Middleware to add observability fields to Gin context.
func Middleware(l *Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		requestID := c.Request.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = fmt.Sprintf("req-%s", uuid.New().String())
			c.Request.Header.Set("X-Request-ID", requestID)
		}
		c.Writer.Header().Set("X-Request-ID", requestID)

		ctx = WithFields(ctx,
			Field{"request_id", requestID},
			Field{"path", c.Request.URL.Path},
			Field{"method", c.Request.Method},
			Field{"client_ip", GetRealClientIP(c)},
			Field{"user_agent", c.Request.UserAgent()},
		)

		if len(c.Request.URL.RawQuery) > 0 {
			ctx = WithFields(ctx, Field{"query_params", c.Request.URL.RawQuery})
		}

		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				l.Error(c.Request.Context(), "Recovered from panic", fmt.Errorf("reason: %+v", r))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "An internal error occurred. Please try again later.",
					"code":  "INTERNAL_ERROR",
				})
			}

			if quietPaths[c.Request.URL.Path] {
				return
			}
			latency := time.Since(start)
			l.Metrics(c.Request.Context(),
				MetricField{"route", c.FullPath()},
				MetricField{"status", c.Writer.Status()},
				MetricField{"latency_ns", latency.Nanoseconds()},
			)
		}()
		c.Next()
	}
}

// Logger represents a custom logger with Zap integration.
type Logger struct {
	zapLogger *zap.Logger
}

// NewLogger creates a production JSON logger at info level.
func NewLogger() *Logger {
	logger, _ := NewLoggerForEnv("production", "info")
	return logger
}

// NewLoggerForEnv builds a JSON logger for production and a console logger
// everywhere else. level is a zap level name such as "debug" or "warn".
func NewLoggerForEnv(env, level string) (*Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zcfg := zap.NewProductionConfig()
	if env != "production" {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)

	zapLogger, err := zcfg.Build(
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return &Logger{zapLogger: zapLogger}, nil
}

// NewLoggerFromZap wraps an existing zap logger, used by tests to observe output.
func NewLoggerFromZap(z *zap.Logger) *Logger {
	return &Logger{zapLogger: z}
}

// Create a logger with fields from context.
func (l *Logger) loggerFromContext(ctx context.Context) *zap.Logger {
	fields := getObservabilityFields(ctx)
	zapFields := make([]zapcore.Field, len(fields))

	for i, f := range fields {
		zapFields[i] = zap.Any(f.Key, f.Value)
	}

	return l.zapLogger.With(zapFields...)
}

// Info logs an informational message with context-based fields.
func (l *Logger) Info(ctx context.Context, msg string) {
	l.loggerFromContext(ctx).Info(msg)
}

// InfoWithError logs an informational message with context and an error.
func (l *Logger) InfoWithError(ctx context.Context, msg string, err error) {
	l.loggerFromContext(ctx).Info(msg, zap.Error(err))
}

// Error logs an error message with context-based fields.
func (l *Logger) Error(ctx context.Context, msg string, err error) {
	l.loggerFromContext(ctx).Error(msg, zap.Error(err))
}

// Warn logs a warning message with context-based fields.
func (l *Logger) Warn(ctx context.Context, msg string) {
	l.loggerFromContext(ctx).Warn(msg)
}

// Debug logs a debug message with context-based fields.
func (l *Logger) Debug(ctx context.Context, msg string) {
	l.loggerFromContext(ctx).Debug(msg)
}

// Fatal logs a fatal message with context-based fields.
func (l *Logger) Fatal(ctx context.Context, msg string, err error) {
	l.loggerFromContext(ctx).Fatal(msg, zap.Error(err))
}

// Metrics logs metrics-related information using custom MetricField type.
func (l *Logger) Metrics(ctx context.Context, fields ...MetricField) {
	l.zapLogger.Info("Metrics", mergeFields(ctx, fields)...)
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.zapLogger.Sync()
}
