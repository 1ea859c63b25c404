package main

import (
	"log"

	"Platform/internal/app"
	"Platform/internal/config"
)

func main() {
	cfg, err := config.LoadGateway()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	application, err := app.NewGateway(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}
	log.Printf("gateway ready, routing auth=%s users=%s orders=%s",
		cfg.Targets.AuthURL, cfg.Targets.UserURL, cfg.Targets.OrderURL)

	app.Serve(cfg.HTTP, application)
}
