package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Benjie-san/cbc-journal/internal/server/handlers"
	"github.com/Benjie-san/cbc-journal/internal/server/middleware"
	"github.com/Benjie-san/cbc-journal/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const (
	defaultAccessTokenTTL  = 15 * time.Minute
	defaultRefreshTokenTTL = 30 * 24 * time.Hour
	shutdownTimeout        = 10 * time.Second
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", ":8080", "Listen address")
	dbPath := flag.String("db", "cbc-journal-server.db", "Path to SQLite database")
	jwtSecret := flag.String("jwt-secret", "", "JWT signing secret (or JWT_SECRET env var)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	secret := *jwtSecret
	if secret == "" {
		secret = os.Getenv("JWT_SECRET")
	}
	if secret == "" {
		logger.Error("JWT secret is required: pass -jwt-secret or set JWT_SECRET")
		os.Exit(1)
	}

	ctx := context.Background()

	store, err := sqlite.New(ctx, *dbPath)
	if err != nil {
		logger.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", "error", err)
		}
	}()

	jwtConfig := handlers.JWTConfig{
		Secret:          []byte(secret),
		AccessTokenTTL:  defaultAccessTokenTTL,
		RefreshTokenTTL: defaultRefreshTokenTTL,
	}

	authHandler := handlers.NewAuthHandler(logger, store, store, jwtConfig)
	entriesHandler := handlers.NewEntriesHandler(logger, store)

	requireAuth := middleware.AuthMiddleware(logger, jwtConfig)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/health", handlers.HealthHandler)
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/v1/auth/refresh", authHandler.Refresh)

	mux.Handle("POST /api/v1/entries", requireAuth(http.HandlerFunc(entriesHandler.Create)))
	mux.Handle("GET /api/v1/entries", requireAuth(http.HandlerFunc(entriesHandler.ListActive)))
	mux.Handle("GET /api/v1/entries/trashed", requireAuth(http.HandlerFunc(entriesHandler.ListTrashed)))
	mux.Handle("PUT /api/v1/entries/{id}", requireAuth(http.HandlerFunc(entriesHandler.Update)))
	mux.Handle("DELETE /api/v1/entries/{id}", requireAuth(http.HandlerFunc(entriesHandler.Delete)))
	mux.Handle("POST /api/v1/entries/{id}/restore", requireAuth(http.HandlerFunc(entriesHandler.Restore)))
	mux.Handle("DELETE /api/v1/entries/{id}/purge", requireAuth(http.HandlerFunc(entriesHandler.Purge)))

	handler := middleware.RecoveryMiddleware(logger)(
		middleware.LoggingMiddleware(logger)(
			middleware.RateLimitMiddleware(300, time.Minute, logger)(mux),
		),
	)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("server starting", "addr", *addr, "version", Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

func printVersion() {
	fmt.Printf("CBC Journal Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
