package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/planboard/planboard-backend/config"
	"github.com/planboard/planboard-backend/internal/bootstrap"
	"github.com/planboard/planboard-backend/internal/schedule/snapshot"
)

// One-shot export: writes every stored project as an indented JSON
// file, then exits. An optional argument overrides the export dir.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	dir := cfg.Export.Dir
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	store, closeStore, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer closeStore()

	n, err := snapshot.WriteAll(ctx, store, dir)
	if err != nil {
		log.Fatalf("snapshot: %v", err)
	}
	log.Printf("wrote %d project snapshot(s) to %s", n, dir)
}
