package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"impactnet/internal/config"
	"impactnet/internal/database"
	"impactnet/internal/modules/notification"
)

// Deletes read notifications older than NOTIFICATION_MAX_AGE. Meant to
// run from cron.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	cutoff := time.Now().Add(-cfg.NotificationMaxAge)
	deleted, err := notification.NewRepository(db).DeleteReadBefore(context.Background(), cutoff)
	if err != nil {
		log.Fatalf("notification cleanup failed: %v", err)
	}

	log.Printf("notification cleanup completed: deleted=%d cutoff=%s", deleted, cutoff.Format(time.RFC3339))
}
