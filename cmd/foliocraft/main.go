// Package main is the entry point for the FolioCraft server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foliocraft/internal/cache"
	"foliocraft/internal/config"
	"foliocraft/internal/database"
	"foliocraft/internal/handlers"
	"foliocraft/internal/renderer"
	"foliocraft/internal/router"
	"foliocraft/internal/sectiontypes"
	"foliocraft/internal/store"
)

func main() {
	// Structured logger — text output, debug level for now.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey for the rendered-page cache. The app works without
	// it in development; every public request then renders fresh.
	var pageCache *cache.PageCache
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		if !cfg.IsDev() {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		slog.Warn("valkey unavailable, page caching disabled", "error", err)
	} else {
		defer valkeyClient.Close()
		pageCache = cache.NewPageCache(valkeyClient, cache.DefaultPageTTL)
		// Cached pages carry the markup of whichever binary rendered them;
		// a new deploy may render differently, so start clean.
		pageCache.InvalidateAll(context.Background())
	}

	// The section type registry is the in-process catalog of everything a
	// portfolio can be composed of.
	registry := sectiontypes.New()

	// Initialize data stores.
	portfolioStore := store.NewPortfolioStore(db)
	sectionStore := store.NewSectionStore(db, registry)
	themeStore := store.NewThemeStore(db)

	// Initialize the section renderer for public portfolio pages.
	rnd := renderer.New()

	// Create handler groups with their dependencies.
	portfolioHandlers := handlers.NewPortfolios(portfolioStore, pageCache)
	sectionHandlers := handlers.NewSections(sectionStore, portfolioStore, pageCache)
	catalogHandlers := handlers.NewCatalog(registry, themeStore)
	publicHandlers := handlers.NewPublic(portfolioStore, sectionStore, themeStore, rnd, pageCache)

	// Set up the Chi router with all middleware and routes.
	r := router.New(portfolioHandlers, sectionHandlers, catalogHandlers, publicHandlers)

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
