// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/logistics-backend/internal/config"
	"github.com/your-org/logistics-backend/internal/domain/audit"
	"github.com/your-org/logistics-backend/internal/domain/catalog"
	"github.com/your-org/logistics-backend/internal/domain/forecast"
	"github.com/your-org/logistics-backend/internal/domain/inventory"
	"github.com/your-org/logistics-backend/internal/domain/supplychain"
	"github.com/your-org/logistics-backend/internal/domain/user"
	"github.com/your-org/logistics-backend/internal/infrastructure/database/redis"
	"github.com/your-org/logistics-backend/internal/interfaces/http"
	"github.com/your-org/logistics-backend/internal/interfaces/http/handlers"
	"github.com/your-org/logistics-backend/internal/interfaces/http/routes"
	"github.com/your-org/logistics-backend/internal/seed"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Connect to Redis. Refresh-token sessions and rate limiting live here;
	// all domain data is held in memory and does not survive a restart.
	redisClient, err := redis.NewConnection(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	if err := redisClient.Health(); err != nil {
		log.Fatalf("Redis health check failed: %v", err)
	}

	// Build the domain services. The catalog is the root of the product
	// graph; stock records and supply chain records cascade off it.
	catalogService := catalog.NewService()
	supplyChainService := supplychain.NewService(catalogService)
	inventoryService := inventory.NewService(catalogService, supplyChainService)
	catalogService.OnDelete(inventoryService.RemoveByProduct)
	catalogService.OnDelete(supplyChainService.RemoveByProduct)

	userService := user.NewService(cfg)
	auditService := audit.NewService(userService)
	forecastEngine := forecast.NewEngine(catalogService)

	// Seed the demo dataset in development
	if cfg.IsDevelopment() && cfg.Seed.Enabled {
		stores := &seed.Stores{
			Catalog:     catalogService,
			Inventory:   inventoryService,
			SupplyChain: supplyChainService,
			Users:       userService,
			Audit:       auditService,
			Forecast:    forecastEngine,
		}
		if err := seed.Load(stores, logrus.StandardLogger()); err != nil {
			log.Printf("Warning: demo data seeding failed: %v", err)
		}
	}

	sessions := redis.NewSessionStore(redisClient)

	deps := &routes.Dependencies{
		Config:      cfg,
		Evaluator:   user.NewEvaluator(),
		Auth:        handlers.NewAuthHandler(userService, auditService, sessions, cfg),
		Products:    handlers.NewProductHandler(catalogService, auditService),
		Inventory:   handlers.NewInventoryHandler(inventoryService, auditService),
		SupplyChain: handlers.NewSupplyChainHandler(supplyChainService, auditService),
		Users:       handlers.NewUserHandler(userService, auditService),
		Audit:       handlers.NewAuditHandler(auditService),
		Forecast:    handlers.NewForecastHandler(forecastEngine, auditService),
	}

	log.Println("✅ All systems operational!")

	// Create and start HTTP server
	server := http.NewServer(cfg, deps, redisClient.GetClient())

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

	// Give server 30 seconds to shutdown gracefully
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		log.Printf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	log.Println("✅ Server shutdown completed")
}
