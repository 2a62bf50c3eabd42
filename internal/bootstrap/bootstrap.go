package bootstrap

import (
	"agent-server/internal/api"
	"agent-server/internal/apierrors"
	"agent-server/internal/config"
	"agent-server/internal/events"
	"agent-server/internal/observability"
	"agent-server/internal/ratelimit"
	"agent-server/internal/store"
	"context"
	"fmt"
	"strings"

	assistantHandler "agent-server/internal/assistant/handler"
	assistantProcessor "agent-server/internal/assistant/processor"
	authHandler "agent-server/internal/auth/handler"
	authProcessor "agent-server/internal/auth/processor"
	workflowHandler "agent-server/internal/automation/handler"
	workflowProcessor "agent-server/internal/automation/processor"
	campaignHandler "agent-server/internal/campaign/handler"
	campaignProcessor "agent-server/internal/campaign/processor"
	kafkaClient "agent-server/internal/clients/kafka"
	redisClient "agent-server/internal/clients/redis"
	dashboardHandler "agent-server/internal/dashboard/handler"
	dashboardProcessor "agent-server/internal/dashboard/processor"
	leadHandler "agent-server/internal/leads/handler"
	leadProcessor "agent-server/internal/leads/processor"
	taskHandler "agent-server/internal/tasks/handler"
	taskProcessor "agent-server/internal/tasks/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	Store   store.Store
	Logger  *observability.Logger
	Metrics *observability.Metrics

	Handlers api.Handlers

	// nil when Kafka is disabled
	KafkaProducer *kafkaClient.Producer
	// nil when Redis is disabled
	Redis *redisClient.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}
	apierrors.SetLogger(logger)

	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Metrics.Enabled {
		deps.Metrics = observability.NewMetrics()
	}

	var publisher leadProcessor.EventPublisher = events.NopPublisher{}
	if cfg.Kafka.Enabled() {
		deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: strings.Split(cfg.Kafka.Brokers, ","),
			Topic:   cfg.Kafka.Topic,
		}, logger)
		publisher = events.NewPublisher(deps.KafkaProducer, logger)
		logger.Info(ctx, "lead events will be published to "+cfg.Kafka.Topic)
	} else {
		logger.Info(ctx, "KAFKA_BROKERS not set, lead events disabled")
	}

	deps.Redis, err = redisClient.NewClient(ctx, cfg.Redis, logger)
	if err != nil {
		deps.Cleanup(ctx)
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	limiter := ratelimit.NewService(deps.Redis, cfg.RateLimit.AuthRequests, cfg.RateLimit.Window, logger)
	deps.Handlers.AuthRateLimit = limiter.Middleware("auth")

	authProc := authProcessor.New(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, logger)
	deps.Handlers.Auth = authHandler.New(authProc, logger)

	leadProc := leadProcessor.New(&deps.Store, publisher, deps.Metrics, logger)
	deps.Handlers.Leads = leadHandler.New(leadProc, logger)

	campaignProc := campaignProcessor.New(&deps.Store, logger)
	deps.Handlers.Campaigns = campaignHandler.New(campaignProc, logger)

	workflowProc := workflowProcessor.New(&deps.Store, logger)
	deps.Handlers.Workflows = workflowHandler.New(workflowProc, logger)

	taskProc := taskProcessor.New(&deps.Store, logger)
	deps.Handlers.Tasks = taskHandler.New(taskProc, logger)

	dashboardProc := dashboardProcessor.New(&deps.Store, logger)
	deps.Handlers.Dashboard = dashboardHandler.New(dashboardProc, logger)

	assistantProc := assistantProcessor.New(logger)
	deps.Handlers.Assistant = assistantHandler.New(assistantProc, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup(ctx context.Context) {
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close kafka producer", err)
		}
	}
	if err := d.Redis.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close redis", err)
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close database", err)
	}
}
