package main

import (
	"log"

	"nextskill-backend/internal/bootstrap"
	"nextskill-backend/internal/shared/config"
	"nextskill-backend/internal/shared/server"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s (extractor=%s)", addr, app.Engine.Mode())

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
