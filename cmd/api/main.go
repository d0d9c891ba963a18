package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clinicdesk/clinic-service/internal/config"
	"github.com/clinicdesk/clinic-service/internal/db"
	clinichttp "github.com/clinicdesk/clinic-service/internal/http"
	"github.com/clinicdesk/clinic-service/internal/messaging"
	"github.com/clinicdesk/clinic-service/internal/telemetry"
	"github.com/clinicdesk/clinic-service/internal/users"
)

func main() {
	log.Println("clinic-service starting")

	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// Telemetry is best effort; the service runs without a collector.
	provider, err := telemetry.InitProvider(ctx, telemetry.LoadConfig())
	if err != nil {
		log.Printf("Warning: OpenTelemetry initialization failed: %v", err)
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := provider.Shutdown(shutdownCtx); err != nil {
				log.Printf("Warning: OpenTelemetry shutdown failed: %v", err)
			}
		}()
	}

	metrics, err := telemetry.InitMetrics()
	if err != nil {
		log.Printf("Warning: metrics initialization failed: %v", err)
		metrics = nil
	}

	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := db.Migrate(ctx, database); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Events are best effort too; a nil publisher disables publishing.
	var publisher messaging.PublisherInterface
	if p, err := messaging.NewPublisher(); err != nil {
		log.Printf("Warning: RabbitMQ unavailable, events disabled: %v", err)
	} else {
		publisher = p
		defer p.Close()
	}

	userService := users.NewService(users.NewRepository(database))
	if err := userService.EnsureDefaultAdmin(ctx, cfg.Bootstrap); err != nil {
		log.Fatalf("Failed to ensure default admin: %v", err)
	}

	router := clinichttp.SetupRouter(database, cfg, publisher, metrics)
	handler := clinichttp.CORSMiddleware(cfg.Server.AllowedOrigins)(router)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("✓ clinic-service listening on :%d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Warning: server shutdown failed: %v", err)
	}
	log.Println("✓ Server stopped")
}
