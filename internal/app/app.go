package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pricetrail/pricetrail/config"
	"github.com/pricetrail/pricetrail/internal/api"
	"github.com/pricetrail/pricetrail/internal/service"
	"github.com/pricetrail/pricetrail/internal/storage"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Initializes the repository layer (products and price periods).
//   - Creates the service and HTTP handler layers.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (e.g., DB connection).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Connect to PostgreSQL
	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	// Initialize repository layer (responsible for DB access)
	products := storage.NewProductRepository(db)
	periods := storage.NewPricePeriodRepository(db)

	// Initialize service layer (business logic)
	svc := service.NewCatalogService(products, periods)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(db.Ping)
	healthHandler.Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}
