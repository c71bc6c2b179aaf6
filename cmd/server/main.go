// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
// *****************************************************************************************************//
// Package main is the entry point for the Mood2Music search proxy.
//
// The server keeps the YouTube Data API key on the server side. Clients call
// GET /api/search?q=<query> and receive the upstream JSON unchanged, or a 500
// with a short {"error": ...} body. It also serves the mood catalog under
// /api/v1/moods and a liveness probe at /health.
//
// The main function loads configuration, sets up logging and telemetry, builds
// the application state and runs the HTTP server until SIGINT or SIGTERM, then
// shuts it down gracefully.
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mood2music/mood2music/internal/api"
	"github.com/mood2music/mood2music/internal/telemetry"
)

const shutdownTimeout = 5 * time.Second

func main() {
	config, err := GetConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	telemetry.SetupLogging(config.Application.LogFile, true)
	slog.Info("Logging initialized")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.SetupOpenTelemetry(ctx, config)
	if err != nil {
		slog.Error("Failed to setup OpenTelemetry", "error", err)
		os.Exit(1)
	}
	slog.Info("Tracing initialized")

	if err := InitState(ctx); err != nil {
		slog.Error("Failed to initialize state", "error", err)
		os.Exit(1)
	}
	defer state.cloud.Close()
	slog.Info("Initialized State")

	if config.YouTube.APIKey() == "" {
		slog.Warn("youtube api key is not set; searches will fail until it is", "env", config.YouTube.APIKeyEnv)
	}

	srv := &http.Server{
		Addr:         ":" + strconv.Itoa(config.Application.Port),
		Handler:      api.NewRouter(config.Application.Name, state.searchService),
		ReadTimeout:  time.Duration(config.Application.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(config.Application.WriteTimeoutSeconds) * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Server ready", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutdown Server ...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return errors.Join(srv.Shutdown(shutdownCtx), shutdownTelemetry(shutdownCtx))
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
	slog.Info("Server exiting")
}
