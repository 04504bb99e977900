/**
 * @description
 * One-shot JSONBin sync.
 * Pushes a snapshot of the seeded catalog to JSONBin, updating the configured
 * bin when JSONBIN_BIN_ID is set. Useful to bootstrap a remote backup without
 * running the server.
 */

package main

import (
	"context"
	"log"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/paintcompare/backend/internal/config"
	"github.com/paintcompare/backend/internal/jsonbin"
	"github.com/paintcompare/backend/internal/services"
	"github.com/paintcompare/backend/internal/store"
	"github.com/redis/go-redis/v9"
)

func main() {
	log.Println("🚀 Starting manual snapshot sync to JSONBin...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Throwaway in-memory cache; nothing here outlives the process
	mr, err := miniredis.Run()
	if err != nil {
		log.Fatalf("failed to start in-memory redis: %v", err)
	}
	defer mr.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	memStore := store.NewSeeded()
	analyticsSvc := services.NewAnalyticsService(memStore, redisClient)
	backupSvc := services.NewBackupService(memStore, jsonbin.NewClient(cfg), analyticsSvc, cfg.JSONBin.BinID)

	binID, isNew, err := backupSvc.Sync(context.Background())
	if err != nil {
		log.Fatalf("snapshot sync failed: %v", err)
	}

	if isNew {
		log.Printf("✅ Created new backup bin %s", binID)
	} else {
		log.Printf("✅ Updated backup bin %s", binID)
	}
}
