package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/sayakroy83/Authentication-System/internal/app"
	"github.com/sayakroy83/Authentication-System/internal/config"
)

func main() {
	// .env is optional; deployed environments set real variables.
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}
	if err := app.Run(cfg); err != nil {
		logger.Fatal("app", zap.Error(err))
	}
}
