package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/mmynk/clubledger/internal/config"
	"github.com/mmynk/clubledger/internal/menu"
	"github.com/mmynk/clubledger/internal/metrics"
	"github.com/mmynk/clubledger/internal/registry"
	"github.com/mmynk/clubledger/internal/storage"
	"github.com/mmynk/clubledger/internal/storage/csvfile"
	"github.com/mmynk/clubledger/internal/storage/sqlite"
	"github.com/mmynk/clubledger/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))

	if err := run(context.Background(), cfg); err != nil {
		slog.Error("Exiting with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	snap, err := store.Load(ctx)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		slog.Info("No saved tables found, starting with empty tables", "backend", cfg.Backend)
		fmt.Println("No saved tables found. Starting with empty tables.")
	case err != nil:
		return fmt.Errorf("failed to load tables: %w", err)
	default:
		slog.Info("Tables loaded", "backend", cfg.Backend, "members", len(snap.Members), "payments", len(snap.Payments))
		fmt.Println("Tables loaded successfully.")
	}

	members := registry.NewMemberStore()
	members.Load(snap.Members)
	payments := registry.NewPaymentStore()
	payments.Load(snap.Payments)

	recorder := metrics.New()
	m := menu.New(os.Stdin, os.Stdout, members, payments, store, menu.Options{
		CascadeDelete: cfg.CascadeDelete,
		Metrics:       recorder,
	})
	runErr := m.Run(ctx)

	if summary, err := recorder.Summary(); err == nil {
		args := make([]any, 0, 2*len(summary))
		for k, v := range summary {
			args = append(args, k, v)
		}
		slog.Debug("Session metrics", args...)
	}
	if cfg.MetricsFile != "" {
		if err := recorder.WriteTextfile(cfg.MetricsFile); err != nil {
			slog.Warn("Metrics not written", "path", cfg.MetricsFile, "error", err)
		}
	}

	return runErr
}

func openStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		store, err := sqlite.New(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		slog.Info("Storage initialized", "backend", cfg.Backend, "database", cfg.DBPath)
		return store, nil
	default:
		slog.Info("Storage initialized", "backend", cfg.Backend, "members", cfg.MembersPath, "payments", cfg.PaymentsPath)
		return csvfile.New(cfg.MembersPath, cfg.PaymentsPath), nil
	}
}
