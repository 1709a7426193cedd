// cmd/pos/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/your-org/pos-terminal/internal/config"
	"github.com/your-org/pos-terminal/internal/domain/cart"
	"github.com/your-org/pos-terminal/internal/domain/catalog"
	"github.com/your-org/pos-terminal/internal/domain/checkout"
	"github.com/your-org/pos-terminal/internal/domain/order"
	"github.com/your-org/pos-terminal/internal/infrastructure/database/redis"
	"github.com/your-org/pos-terminal/internal/interfaces/http"
	"github.com/your-org/pos-terminal/internal/interfaces/http/handlers"
	"github.com/your-org/pos-terminal/internal/pkg/receipt"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Connect to Redis for cart session persistence
	redisClient, err := redis.NewConnection(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	if err := redisClient.Health(); err != nil {
		log.Fatalf("Redis health check failed: %v", err)
	}

	// Backend clients
	catalogClient := catalog.NewClient(cfg.Backend.BaseURL, cfg.Backend.RequestTimeout)
	orderClient := order.NewClient(cfg.Backend.BaseURL, cfg.Backend.RequestTimeout)

	// Cart store with session recovery
	store := cart.NewStore(catalogClient)
	session := cart.NewSessionStore(redisClient.GetClient(), cfg.App.TerminalID)

	restoreCtx, cancelRestore := context.WithTimeout(context.Background(), 5*time.Second)
	if lines, err := session.Load(restoreCtx); err != nil {
		log.Printf("Warning: Cart session restore failed: %v", err)
	} else if len(lines) > 0 {
		store.Replace(lines)
		log.Printf("🛒 Restored %d cart line(s) from previous session", len(lines))
	}
	cancelRestore()

	// Checkout pipeline
	checkoutService := checkout.NewService(catalogClient, orderClient, cfg.App.Channel)

	log.Println("✅ All systems operational!")

	// Create and start the HTTP facade
	server := http.NewServer(cfg, &handlers.Dependencies{
		Config:   cfg,
		Catalog:  catalogClient,
		Cart:     store,
		Session:  session,
		Checkout: checkoutService,
		Orders:   orderClient,
		Receipts: receipt.NewService(cfg),
	})

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("👋 Shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		log.Printf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	log.Println("✅ Server shutdown completed")
}
