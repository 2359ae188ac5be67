// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stackboard Contributors

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/stackboard/stackboard/internal/auth"
	authpg "github.com/stackboard/stackboard/internal/auth/postgres"
	"github.com/stackboard/stackboard/internal/board"
	boardpg "github.com/stackboard/stackboard/internal/board/postgres"
	"github.com/stackboard/stackboard/internal/config"
	"github.com/stackboard/stackboard/internal/logging"
	"github.com/stackboard/stackboard/internal/observability"
	"github.com/stackboard/stackboard/internal/store"
	"github.com/stackboard/stackboard/internal/web"
)

const shutdownTimeout = 10 * time.Second

// newServeCmd creates the serve subcommand with all flags configured.
func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long: `Start the Stackboard HTTP API together with the observability
server (metrics and health probes). The process runs until SIGINT or
SIGTERM and then shuts down gracefully.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configFile, cmd.Flags())
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().String("listen-addr", config.DefaultListenAddr, "API listen address")
	cmd.Flags().String("metrics-addr", config.DefaultMetricsAddr, "metrics/health HTTP address (empty = disabled)")
	cmd.Flags().String("database-url", "", "PostgreSQL connection string")
	cmd.Flags().String("log-format", config.DefaultLogFormat, "log format (json or text)")

	return cmd
}

// runServe wires the full service and blocks until shutdown.
func runServe(ctx context.Context, cfg config.Config) error {
	logging.SetDefault("stackboard", version, cfg.LogFormat)

	slog.Info("starting stackboard",
		"listen_addr", cfg.ListenAddr,
		"metrics_addr", cfg.MetricsAddr,
		"log_format", cfg.LogFormat,
	)

	pool, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	tokens, err := auth.NewTokenIssuer([]byte(cfg.SecretKey))
	if err != nil {
		return fmt.Errorf("failed to create token issuer: %w", err)
	}

	authService := auth.NewService(
		authpg.NewUserRepository(pool),
		auth.NewBcryptHasher(),
		tokens,
	)
	boardService := board.NewService(board.ServiceConfig{
		BoardRepo: boardpg.NewBoardRepository(pool),
		ListRepo:  boardpg.NewListRepository(pool),
		CardRepo:  boardpg.NewCardRepository(pool),
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Observability server first so metrics exist before requests arrive.
	var obsServer *observability.Server
	var metrics *observability.Metrics
	if cfg.MetricsAddr != "" {
		obsServer = observability.NewServer(cfg.MetricsAddr, store.Ready(pool))
		obsErrCh, obsErr := obsServer.Start()
		if obsErr != nil {
			return fmt.Errorf("failed to start observability server: %w", obsErr)
		}
		go func() {
			if serveErr := <-obsErrCh; serveErr != nil {
				slog.Error("observability server failed", "error", serveErr)
				cancel()
			}
		}()
		metrics = obsServer.Metrics()
	} else {
		// Metrics disabled: record into a registry nothing scrapes.
		metrics = observability.NewMetrics(prometheus.NewRegistry())
	}

	apiServer := web.NewServer(web.Config{
		Addr:    cfg.ListenAddr,
		Auth:    authService,
		Boards:  boardService,
		Metrics: metrics,
	})
	apiErrCh, err := apiServer.Start()
	if err != nil {
		stopObservability(obsServer)
		return fmt.Errorf("failed to start api server: %w", err)
	}
	go func() {
		if serveErr := <-apiErrCh; serveErr != nil {
			slog.Error("api server failed", "error", serveErr)
			cancel()
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	slog.Info("stackboard ready", "addr", apiServer.Addr())

	select {
	case sig := <-sigChan:
		slog.Info("received shutdown signal", "signal", sig.String())
	case <-ctx.Done():
		slog.Info("shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := apiServer.Stop(shutdownCtx); err != nil {
		slog.Error("api server shutdown failed", "error", err)
	}
	stopObservability(obsServer)

	slog.Info("stackboard stopped")
	return nil
}

func stopObservability(s *observability.Server) {
	if s == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Stop(ctx); err != nil {
		slog.Error("observability server shutdown failed", "error", err)
	}
}
