package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-hrms/internal/app"
	"go-hrms/internal/attendance"
	"go-hrms/internal/employee"
	"go-hrms/internal/shared/connection"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// The consumer binary runs both Kafka consumers: leave-approved events
// materialize LEAVE attendance rows, employee-created events are
// audited.
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

	reg, err := app.NewRegistry(db, rdb)
	if err != nil {
		logger.Fatal("registry init failed", zap.Error(err))
	}

	broker := os.Getenv("KAFKA_BROKER")

	leaveConsumer := attendance.NewLeaveApprovedConsumer(
		broker,
		"hrms.attendance.leave-approved",
		reg.AttendanceRepo,
		reg.SalaryService,
	)
	createdConsumer := employee.NewCreatedConsumer(broker, "hrms.employee.created-audit")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		cancel()
	}()

	go func() {
		if err := createdConsumer.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Error("employee created consumer exited", zap.Error(err))
		}
	}()

	if err := leaveConsumer.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("leave approved consumer exited", zap.Error(err))
	}
}
