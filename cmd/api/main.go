package main

import (
	"context"
	"log"

	"github.com/linguahub/admin-console-backend/config"
	"github.com/linguahub/admin-console-backend/internal/bootstrap"
	"github.com/linguahub/admin-console-backend/internal/firebase"
)

const serviceName = "admin-console-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	clients, err := firebase.Initialize(context.Background(), &cfg.Firebase)
	if err != nil {
		log.Fatalf("firebase: %v", err)
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		Config:      cfg,
		AuthClient:  clients.Auth,
		DBClient:    clients.Database,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
