package main

import (
	"log"

	"Platform/internal/app"
	"Platform/internal/config"
)

func main() {
	cfg, err := config.LoadOrder()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	log.Printf("config loaded, connecting to DB and Redis...")

	application, err := app.NewOrder(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}
	log.Printf("order service ready, starting HTTP server")

	app.Serve(cfg.HTTP, application)
}
