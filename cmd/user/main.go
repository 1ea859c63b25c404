package main

import (
	"log"

	"Platform/internal/app"
	"Platform/internal/config"
)

func main() {
	cfg, err := config.LoadUser()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	log.Printf("config loaded, connecting to DB...")

	application, err := app.NewUser(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}
	log.Printf("user service ready, starting HTTP server")

	app.Serve(cfg.HTTP, application)
}
