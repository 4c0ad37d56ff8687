package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/agenthands/concord/internal/config"
	"github.com/agenthands/concord/internal/logging"
	"github.com/agenthands/concord/internal/server"
)

func main() {
	log := logging.Log

	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using defaults")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		log.Fatalf("Invalid environment override: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if err := logging.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}

	srv := server.NewServer(cfg, log)
	r := srv.SetupRouter()

	log.WithField("port", cfg.Server.Port).Info("Starting server")
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
