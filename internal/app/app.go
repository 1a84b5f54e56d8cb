package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/nepsepulse/config"
	"github.com/guttosm/nepsepulse/internal/api"
	"github.com/guttosm/nepsepulse/internal/nepse"
	"github.com/guttosm/nepsepulse/internal/ratelimit"
	"github.com/guttosm/nepsepulse/internal/service"
)

// clientBuilder constructs the upstream exchange client.
// Indirection for unit testing.
var clientBuilder = func(cfg config.NepseConfig) *nepse.HTTPClient {
	return nepse.NewHTTPClient(nepse.Config{
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		VerifyTLS: cfg.VerifyTLS,
	})
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the upstream exchange HTTP client from configuration.
//   - Initializes the service layer (pass-through market data and statistics).
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes and the global token bucket.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (idle upstream connections).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Upstream exchange client
	client := clientBuilder(cfg.Nepse)

	// Service layer (business logic)
	market := service.NewMarketService(client)
	stats := service.NewStatsService(client)

	// HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(market, stats)

	// Global request budget shared by all routes
	bucket := ratelimit.NewTokenBucket(cfg.RateLimit.Capacity, cfg.RateLimit.RefillPerSecond)

	// Setup Gin router with routes
	router := api.NewRouter(handler, bucket)

	// Register health and readiness probes; readiness depends on the
	// upstream market-open endpoint answering within a short window.
	healthHandler := api.NewHealthHandler(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_, err := client.MarketStatus(ctx)
		return err
	})
	healthHandler.Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		client.CloseIdleConnections()
	}

	return router, cleanup, nil
}
