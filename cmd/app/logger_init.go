package main

import (
	"github.com/orevault/orevault/internal/config"
	"github.com/orevault/orevault/internal/logger"
)

// initLogger initializes the logger from the app configuration
func initLogger(cfg *config.Config) {
	addSource := cfg.Log.Environment == "dev" || cfg.Log.Environment == "development"

	logger.InitLogger(logger.NewConfig(
		cfg.Log.Level,
		cfg.Log.Format,
		cfg.Log.Environment,
		addSource,
	))
}
