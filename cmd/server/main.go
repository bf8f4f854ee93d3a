package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gravitas-games/hextile/internal/config"
	"github.com/gravitas-games/hextile/internal/gamemap"
	"github.com/gravitas-games/hextile/internal/persistence"
	"github.com/gravitas-games/hextile/internal/server"
)

func main() {
	log.Println("Starting hextile server...")

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/server.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Configuration loaded from %s", configPath)
	log.Printf("Server will run on %s:%d", cfg.Server.Host, cfg.Server.Port)

	gm, err := gamemap.New(cfg.Grid)
	if err != nil {
		log.Fatalf("Failed to create map: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}
	db, err := persistence.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := restoreOrGenerate(ctx, db, gm); err != nil {
		log.Fatalf("Failed to prepare map: %v", err)
	}

	srv, err := server.New(cfg, gm)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Start server in goroutine
	errChan := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		log.Printf("Server listening on %s", addr)
		if err := srv.Start(addr); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		log.Fatalf("Server error: %v", err)
	case sig := <-sigChan:
		log.Printf("Received signal %v, shutting down...", sig)
	}

	if err := srv.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	if err := db.SaveMap(ctx, gm); err != nil {
		log.Printf("Failed to save map snapshot: %v", err)
	} else {
		log.Printf("Saved %d tiles to %s", gm.Len(), cfg.Database.Path)
	}

	log.Println("Server stopped")
}

// restoreOrGenerate loads the stored snapshot, or generates fresh terrain
// and stores it when there is none.
func restoreOrGenerate(ctx context.Context, db *persistence.DB, gm *gamemap.GameMap) error {
	n, err := db.LoadMap(ctx, gm)
	if err == nil {
		log.Printf("Restored %d tiles from snapshot", n)
		return nil
	}
	if !errors.Is(err, persistence.ErrNoSnapshot) {
		return err
	}

	log.Println("No snapshot found, generating terrain")
	if err := gm.Generate(); err != nil {
		return err
	}
	return db.SaveMap(ctx, gm)
}
