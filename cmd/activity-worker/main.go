package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"agent-server/internal/clients/kafka"
	"agent-server/internal/config"
	"agent-server/internal/events/consumers"
	"agent-server/internal/observability"
	"agent-server/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if !cfg.Kafka.Enabled() {
		log.Fatal("KAFKA_BROKERS is not set")
	}

	logger, err := observability.NewLoggerForEnv(cfg.Log.Env, cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	ctx := context.Background()

	logger.Info(ctx, "Starting lead activity worker...")

	dataStore, err := store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer dataStore.Close()

	brokers := strings.Split(cfg.Kafka.Brokers, ",")
	kafkaConsumer := kafka.NewConsumer(kafka.ConsumerConfig{
		Brokers: brokers,
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.ConsumerGroup,
	}, logger)

	activityConsumer := consumers.NewActivityConsumer(kafkaConsumer, &dataStore, logger)

	logger.Info(ctx, fmt.Sprintf(`Activity worker configuration:
  - Kafka brokers: %v
  - Kafka topic: %s
  - Consumer group: %s`,
		brokers, cfg.Kafka.Topic, cfg.Kafka.ConsumerGroup))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := activityConsumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error(ctx, "Activity consumer error", err)
			cancel()
		}
	}()

	select {
	case <-sigChan:
		logger.Info(ctx, "Received shutdown signal, stopping worker...")
	case <-ctx.Done():
	}
	cancel()

	if err := activityConsumer.Stop(); err != nil {
		logger.Error(ctx, "Error stopping activity consumer", err)
	}

	logger.Info(ctx, "Lead activity worker stopped")
}
