package main

import (
	"os"

	"go-hrms/internal/app"
	"go-hrms/internal/bootstrap"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/connection"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

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

	if err := reg.RBACService.ReloadPolicy(); err != nil {
		logger.Warn("initial rbac policy load failed", zap.Error(err))
	}

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	router := app.NewRouter(reg, rdb, logger)
	if err := bootstrap.RunServer(addr, router, logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
