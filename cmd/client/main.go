package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/Benjie-san/cbc-journal/internal/client/api"
	"github.com/Benjie-san/cbc-journal/internal/client/auth"
	"github.com/Benjie-san/cbc-journal/internal/client/cli"
	"github.com/Benjie-san/cbc-journal/internal/client/iocli"
	"github.com/Benjie-san/cbc-journal/internal/client/journal"
	"github.com/Benjie-san/cbc-journal/internal/client/storage/boltdb"
	"github.com/Benjie-san/cbc-journal/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "cbc-journal.db", "Path to local database")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logLevel := slog.LevelWarn
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	stdio := iocli.NewStdio()

	args := flag.Args()
	if len(args) == 0 {
		cli.New(stdio, nil, nil, nil).PrintUsage()
		os.Exit(1)
	}

	command := args[0]
	ctx := context.Background()

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(*serverURL)
	authService := auth.NewService(apiClient, boltStorage, logger)
	reconciler := sync.NewReconciler(apiClient, boltStorage, boltStorage, authService, logger)

	// Debounced autosave trigger: mutations schedule a pass, Flush drains it
	// before the process exits so a one-shot command still syncs.
	autosync := journal.NewDebouncer(journal.DefaultAutosyncDelay, func() {
		if _, err := reconciler.Sync(context.Background()); err != nil {
			logger.Debug("background sync failed", "error", err)
		}
	})
	defer autosync.Flush()

	journalService := journal.NewService(boltStorage, autosync, logger)

	c := cli.New(stdio, authService, journalService, reconciler)
	if err := c.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("CBC Journal Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
