package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-hrms/internal/app"
	"go-hrms/internal/messaging/kafka/producer"
	"go-hrms/internal/shared/connection"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// The worker relays pending outbox rows to Kafka.
func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	db, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		logger.Fatal("redis connection failed", zap.Error(err))
	}

	writer, err := connection.ConnectKafkaWithRetry(os.Getenv("KAFKA_BROKER"), 5)
	if err != nil {
		logger.Fatal("kafka connection failed", zap.Error(err))
	}
	defer writer.Close()

	reg, err := app.NewRegistry(db, rdb)
	if err != nil {
		logger.Fatal("registry init failed", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		cancel()
	}()

	producer.ProcessOutboxEvents(ctx, reg.OutboxRepo, writer, logger, 3*time.Second)
}
