package main

import (
	"context"
	"log"
	"time"

	"github.com/clinicdesk/clinic-service/internal/auth"
	"github.com/clinicdesk/clinic-service/internal/db"
)

// Removes expired sessions. Intended to run as a periodic job; the API
// never reads expired rows, this just keeps the table small.
func main() {
	log.Println("Session Cleanup Job - Starting")

	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	store := auth.NewStore(database, 0)

	purged, err := store.DeleteExpired(ctx)
	if err != nil {
		log.Fatalf("Cleanup failed: %v", err)
	}

	log.Printf("✓ Cleanup completed successfully: %d expired sessions removed", purged)
	log.Println("Session Cleanup Job - Finished")
}
