// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package main contains the setup and initialization logic for the application's state.
// This file creates the state manager that holds the configuration, the outbound
// HTTP client for the YouTube Data API and the search service built on it.
//
// Functions:
//   - SetupOS: Fills in the config directory and runtime when the environment has none.
//   - GetConfig: Loads the configuration once and caches it.
//   - InitState: Creates the service clients and the SearchService.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mood2music/mood2music/internal/cloud"
	"github.com/mood2music/mood2music/internal/core/services"
)

// StateManager holds all the shared dependencies for the application.
type StateManager struct {
	config        *cloud.Config
	cloud         *cloud.ServiceClients
	searchService *services.SearchService
}

var state = &StateManager{}

// SetupOS defaults the configuration loader to the "configs" directory and the
// "local" runtime. Values already present in the environment are kept, so a
// deployment can point MOOD_RUNTIME at its own override file.
func SetupOS() error {
	if os.Getenv(cloud.EnvConfigFilePrefix) == "" {
		if err := os.Setenv(cloud.EnvConfigFilePrefix, "configs"); err != nil {
			return err
		}
	}
	if os.Getenv(cloud.EnvConfigRuntime) == "" {
		return os.Setenv(cloud.EnvConfigRuntime, "local")
	}
	return nil
}

// GetConfig loads the configuration on first use and returns the cached copy
// afterwards. A .env file in the working directory is applied first so the
// credential can be kept out of the shell profile during development.
func GetConfig() (*cloud.Config, error) {
	if state.config != nil {
		return state.config, nil
	}
	if err := cloud.LoadDotEnv(".env"); err != nil {
		return nil, err
	}
	if err := SetupOS(); err != nil {
		return nil, fmt.Errorf("failed to setup os: %w", err)
	}
	config := cloud.NewConfig()
	if err := cloud.LoadConfig(config); err != nil {
		return nil, err
	}
	state.config = config
	return config, nil
}

// InitState creates the outbound clients and the SearchService.
//
// Inputs:
//   - ctx: The root context.Context for the application.
func InitState(ctx context.Context) error {
	config, err := GetConfig()
	if err != nil {
		return err
	}

	cloudClients, err := cloud.NewCloudServiceClients(ctx, config)
	if err != nil {
		return err
	}
	state.cloud = cloudClients
	state.searchService = services.NewSearchService(cloudClients.YouTubeHTTPClient, config.YouTube)
	return nil
}
