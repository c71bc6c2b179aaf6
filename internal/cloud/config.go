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

// Package cloud defines the data structures for application configuration,
// loaded from TOML files, and the shared clients used to reach the YouTube
// Data API.
//
// Structs:
//   - YouTube: Settings for the upstream search endpoint and its credential.
//   - Telemetry: Settings for the OpenTelemetry exporters.
//   - Client: Settings used by the terminal client when talking to the proxy.
//   - Config: The top-level struct that aggregates all other configuration structs.
package cloud

import (
	"os"
	"time"
)

// YouTube represents the configuration of the upstream video search API.
type YouTube struct {
	BaseURL        string `toml:"base_url"`        // Root of the Data API, e.g. "https://www.googleapis.com/youtube/v3".
	APIKeyEnv      string `toml:"api_key_env"`     // Name of the environment variable holding the API key.
	Referer        string `toml:"referer"`         // Deployment origin sent as the Referer header; the key is scoped to it.
	MaxResults     int    `toml:"max_results"`     // Result-count cap sent with every search.
	TimeoutSeconds int    `toml:"timeout_seconds"` // Outbound request timeout. Zero disables it.
}

// Telemetry represents the configuration of the trace and metric exporters.
type Telemetry struct {
	Enabled         bool   `toml:"enabled"`           // Export traces and metrics to Google Cloud.
	GoogleProjectId string `toml:"google_project_id"` // The Google Cloud project receiving telemetry.
}

// Client represents the configuration of the terminal client.
type Client struct {
	ProxyURL       string `toml:"proxy_url"`       // Base URL of the search proxy, e.g. "http://localhost:8080".
	TimeoutSeconds int    `toml:"timeout_seconds"` // Timeout for a single proxy call.
	LogFile        string `toml:"log_file"`        // Where the client writes its operational log.
}

// Config represents the overall configuration for the application, loaded from TOML files.
type Config struct {
	// Application holds general application settings.
	Application struct {
		Name                string `toml:"name"`                  // The name of the application, used as the OTel service name.
		Port                int    `toml:"port"`                  // The port the proxy listens on.
		ReadTimeoutSeconds  int    `toml:"read_timeout_seconds"`  // http.Server read timeout.
		WriteTimeoutSeconds int    `toml:"write_timeout_seconds"` // http.Server write timeout.
		LogFile             string `toml:"log_file"`              // Where the server writes its log in addition to stdout.
	} `toml:"application"`
	YouTube   YouTube   `toml:"youtube"`
	Telemetry Telemetry `toml:"telemetry"`
	Client    Client    `toml:"client"`
}

// NewConfig creates a Config populated with defaults. Values decoded from the
// TOML files overwrite these.
func NewConfig() *Config {
	c := &Config{
		YouTube: YouTube{
			BaseURL:        "https://www.googleapis.com/youtube/v3",
			APIKeyEnv:      "YOUTUBE_API_KEY",
			Referer:        "https://mood2music.replit.app",
			MaxResults:     50,
			TimeoutSeconds: 10,
		},
		Client: Client{
			ProxyURL:       "http://localhost:8080",
			TimeoutSeconds: 15,
			LogFile:        "moodtui.log",
		},
	}
	c.Application.Name = "mood2music"
	c.Application.Port = 8080
	c.Application.ReadTimeoutSeconds = 20
	c.Application.WriteTimeoutSeconds = 20
	c.Application.LogFile = "app.log"
	return c
}

// APIKey returns the credential from the configured environment variable. It is
// read on every call so a missing key is reported per request, not at startup.
func (y YouTube) APIKey() string {
	return os.Getenv(y.APIKeyEnv)
}

// Timeout converts TimeoutSeconds to a time.Duration.
func (y YouTube) Timeout() time.Duration {
	return time.Duration(y.TimeoutSeconds) * time.Second
}

// Timeout converts TimeoutSeconds to a time.Duration.
func (c Client) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
