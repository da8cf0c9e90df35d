package main

import (
	"context"
	"log"

	"github.com/planboard/planboard-backend/config"
	"github.com/planboard/planboard-backend/internal/bootstrap"
	"github.com/planboard/planboard-backend/internal/schedule/service"
	"github.com/planboard/planboard-backend/internal/schedule/snapshot"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()
	store, closeStore, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer closeStore()

	svc := service.NewProjectService(store)
	if err := svc.SeedSampleBoard(ctx); err != nil {
		log.Printf("seed: %v", err)
	}

	if cfg.Export.Schedule != "" {
		scheduler := snapshot.NewScheduler(store, cfg.Export.Dir, cfg.Export.Schedule)
		if err := scheduler.Start(); err != nil {
			log.Fatalf("snapshot scheduler: %v", err)
		}
		defer scheduler.Stop()
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    "planboard-backend",
		Version:        cfg.App.Version,
		APIKey:         cfg.Server.APIKey,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Store:          store,
		Service:        svc,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
