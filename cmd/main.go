package main

//
//  @title           pricetrail API
//  @version         1.0
//  @description     Product price-history tracking & average-price service.
//  @termsOfService  https://github.com/pricetrail/pricetrail
//  @contact.name    API Support
//  @contact.url     https://github.com/pricetrail/pricetrail
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        products
//  @tag.description Product catalog endpoints
//
//  @tag.name        periods
//  @tag.description Price period admission and history
//
//  @tag.name        average-price
//  @tag.description Average effective price queries
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pricetrail/pricetrail/config"
	_ "github.com/pricetrail/pricetrail/docs" // swagger docs
	"github.com/pricetrail/pricetrail/internal/app"
	"github.com/pricetrail/pricetrail/internal/logger"
	"github.com/pricetrail/pricetrail/internal/seed"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., DB connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the pricetrail application.
//
// Modes (selected via --mode flag):
//   - seed: Imports product catalog .csv files from ./data/catalog/.
//   - api:  Starts the REST API exposing products, price periods and averages.
//
// Flags:
//   - --mode: Execution mode ("seed" or "api"). Default: "api".
//   - --dir:  Directory containing .csv catalog files. Default: "./data/catalog".
//   - --port: Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: seed or api")
	dir := flag.String("dir", "./data/catalog", "Directory with .csv catalog files")
	parallel := flag.Int("parallel", 0, "How many files to import concurrently (0=auto up to CPU, max 8)")
	force := flag.Bool("force", false, "Reimport files even if already imported (deletes that file's products)")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "seed":
		// Seed mode: import catalog files and exit
		logger.L().Info().Msg("running catalog seed")

		// Direct DB connection for the import
		db, err := app.InitPostgres(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("db connect error")
		}
		defer func() { _ = db.Close() }()

		if err := seed.ProcessDirectory(ctx, *dir, db, *parallel, *force); err != nil {
			logger.L().Fatal().Err(err).Msg("seed failed")
		}
		logger.L().Info().Msg("seed completed successfully")

	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
