// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/antonk-nf/algopath2-sub001/internal/api"
	"github.com/antonk-nf/algopath2-sub001/internal/config"
	"github.com/antonk-nf/algopath2-sub001/internal/logging"
	"github.com/antonk-nf/algopath2-sub001/internal/middleware"
	"github.com/antonk-nf/algopath2-sub001/internal/supervisor"
	"github.com/antonk-nf/algopath2-sub001/internal/supervisor/services"
)

const (
	perfSamples       = 1000
	slowRequestCutoff = time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logger := logging.Logger()

	logger.Info().
		Str("source", cfg.Source.Path).
		Str("environment", cfg.Server.Environment).
		Bool("reload_on_change", cfg.Source.ReloadOnChange).
		Msg("Starting AlgoPath")
	if cfg.ShouldWarnAboutCORS() {
		logger.Warn().Msg("CORS allows any origin in production")
	}
	if cfg.Security.AdminToken == "" {
		logger.Warn().Msg("ADMIN_TOKEN is not set; admin endpoints are unauthenticated")
	}

	comps, err := initComponents(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize components")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	initialLoad(ctx, comps, cfg, logger)

	reloadSvc := services.NewReloadService(comps.lookup, comps.source, buildReloadConfig(cfg), logger)
	perfMon := middleware.NewPerformanceMonitor(perfSamples, slowRequestCutoff, logger)

	handler, err := api.NewHandler(comps.lookup, comps.engine,
		api.WithReloader(reloadSvc, cfg.Source.LoadTimeout),
		api.WithPerformanceMonitor(perfMon),
		api.WithAuditLogger(logging.NewAuditLogger()),
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create API handler")
	}

	router := api.NewRouter(handler, &api.RouterConfig{
		Middleware:     buildMiddlewareConfig(cfg),
		AdminToken:     cfg.Security.AdminToken,
		RequestTimeout: cfg.Server.Timeout,
	}, logger)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	treeCfg := supervisor.DefaultTreeConfig()
	treeCfg.ShutdownTimeout = cfg.Server.ShutdownTimeout
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), treeCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddDataService(reloadSvc)
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout, logger))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	var treeErr error
	select {
	case <-ctx.Done():
		logger.Info().Msg("Waiting for supervisor to finish")
		treeErr = <-errCh
	case treeErr = <-errCh:
	}
	if treeErr != nil && !errors.Is(treeErr, context.Canceled) {
		logger.Error().Err(treeErr).Msg("Supervisor tree error")
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logger.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}

	logger.Info().Msg("AlgoPath stopped")
}
