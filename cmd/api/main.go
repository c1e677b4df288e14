package main

import (
	"log"

	"portfolio-backend/internal/bootstrap"
	"portfolio-backend/internal/shared/config"
	"portfolio-backend/internal/shared/server"
	"portfolio-backend/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	telemetry.Setup(nil, cfg.LogLevel, cfg.LogFormat)

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	if app.DB != nil {
		defer app.DB.Close()
	}

	addr := server.Addr(cfg.Port)
	telemetry.Info("server.start", map[string]any{"addr": addr, "env": cfg.Env})

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
