package main

import (
	"log"

	"Platform/internal/app"
	"Platform/internal/config"
)

func main() {
	cfg, err := config.LoadAuth()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	log.Printf("config loaded, connecting to DB...")

	application, err := app.NewAuth(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}
	log.Printf("auth service ready, starting HTTP server")

	app.Serve(cfg.HTTP, application)
}
