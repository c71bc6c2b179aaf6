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

// Package cloud provides components for interacting with Google Cloud services.
// This file builds and holds the clients used to reach the YouTube Data API,
// so they can be created once at startup and shared by every request.
//
// Structs:
//   - ServiceClients: A container for the outbound HTTP client.
//
// Functions:
//   - Close: Releases idle connections.
//   - NewCloudServiceClients: Creates the clients from configuration.
package cloud

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// ServiceClients is a central container for the clients that talk to external
// Google services.
type ServiceClients struct {
	YouTubeHTTPClient *http.Client // Client for the YouTube Data API: traced, Referer-stamped, time-bounded.
}

// Close releases idle connections held by the clients.
func (c *ServiceClients) Close() {
	if c.YouTubeHTTPClient != nil {
		c.YouTubeHTTPClient.CloseIdleConnections()
	}
}

// NewCloudServiceClients initializes the outbound clients based on the provided
// configuration. The transport chain is otelhttp (span per request) around
// RefererTransport around the default transport.
//
// Inputs:
//   - ctx: The root context. Unused until a client needs to dial at construction time.
//   - config: The loaded application configuration.
//
// Outputs:
//   - *ServiceClients: The initialized clients.
//   - error: An error if the configured YouTube base URL is not an absolute URL.
func NewCloudServiceClients(_ context.Context, config *Config) (*ServiceClients, error) {
	u, err := url.Parse(config.YouTube.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid youtube base_url %q: %w", config.YouTube.BaseURL, err)
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("youtube base_url %q is not absolute", config.YouTube.BaseURL)
	}

	transport := otelhttp.NewTransport(
		NewRefererTransport(http.DefaultTransport, config.YouTube.Referer),
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return "youtube " + r.Method + " " + r.URL.Path
		}),
	)
	return &ServiceClients{
		YouTubeHTTPClient: &http.Client{
			Transport: transport,
			Timeout:   config.YouTube.Timeout(),
		},
	}, nil
}
