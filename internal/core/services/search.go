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

// Package services contains the business logic for interacting with data sources.
// This file, `search.go`, defines the SearchService, the server side of the
// search proxy. It holds the YouTube credential so clients never see it,
// forwards one search per call and hands the upstream JSON back untouched.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/time/rate"
	"google.golang.org/api/googleapi"

	"github.com/mood2music/mood2music/internal/cloud"
)

// Errors returned by Search. Match them with errors.Is.
var (
	// ErrAPIKeyNotConfigured means the credential variable is unset or empty.
	// The upstream is not contacted.
	ErrAPIKeyNotConfigured = errors.New("youtube api key is not configured")
	// ErrUpstream wraps every failure talking to the YouTube API: transport
	// errors, non-2xx statuses and bodies that are not JSON.
	ErrUpstream = errors.New("youtube api request failed")
)

const meterName = "github.com/mood2music/mood2music/internal/core/services"

// Search outcomes recorded on the request counter.
const (
	outcomeOK            = "ok"
	outcomeNotConfigured = "not_configured"
	outcomeUpstreamError = "upstream_error"
)

// SearchService forwards search queries to the YouTube Data API. It is safe
// for concurrent use; nothing is cached between calls.
type SearchService struct {
	HTTPClient *http.Client  // Client used for the upstream call. Expected to add the Referer header.
	Config     cloud.YouTube // Base URL, credential variable and result cap.

	requests   metric.Int64Counter
	keyWarning rate.Sometimes
}

// NewSearchService creates a SearchService bound to the given client and settings.
func NewSearchService(client *http.Client, config cloud.YouTube) *SearchService {
	if client == nil {
		client = http.DefaultClient
	}
	requests, err := otel.Meter(meterName).Int64Counter(
		"mood2music.search.requests",
		metric.WithDescription("Searches forwarded to the YouTube Data API, by outcome."),
	)
	if err != nil {
		slog.Warn("failed to create search request counter", "error", err)
	}
	return &SearchService{
		HTTPClient: client,
		Config:     config,
		requests:   requests,
		keyWarning: rate.Sometimes{First: 1, Interval: time.Minute},
	}
}

// Search runs one video search for query and returns the upstream JSON body
// byte for byte.
//
// Inputs:
//   - ctx: The request context; cancelling it aborts the upstream call.
//   - query: Free-text query, e.g. "Jazz music". It is encoded here.
//
// Outputs:
//   - json.RawMessage: The unmodified YouTube search response.
//   - error: ErrAPIKeyNotConfigured, or an error wrapping ErrUpstream.
func (s *SearchService) Search(ctx context.Context, query string) (json.RawMessage, error) {
	apiKey := s.Config.APIKey()
	if apiKey == "" {
		s.keyWarning.Do(func() {
			slog.WarnContext(ctx, "youtube api key is not configured", "env", s.Config.APIKeyEnv)
		})
		s.record(ctx, outcomeNotConfigured)
		return nil, ErrAPIKeyNotConfigured
	}

	endpoint, err := url.JoinPath(s.Config.BaseURL, SearchResource)
	if err != nil {
		s.record(ctx, outcomeUpstreamError)
		return nil, fmt.Errorf("%w: invalid base url: %w", ErrUpstream, err)
	}
	endpoint += "?" + searchParams(query, apiKey, s.Config.MaxResults).Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		s.record(ctx, outcomeUpstreamError)
		return nil, fmt.Errorf("%w: %w", ErrUpstream, withoutURL(err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		// url.Error embeds the request URL, which carries the key.
		err = withoutURL(err)
		slog.ErrorContext(ctx, "error fetching youtube data", "query", query, "error", err)
		s.record(ctx, outcomeUpstreamError)
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if err := googleapi.CheckResponse(resp); err != nil {
		attrs := []any{"query", query, "status", resp.StatusCode}
		var gerr *googleapi.Error
		if errors.As(err, &gerr) {
			attrs = append(attrs, "reason", gerr.Message)
		}
		slog.ErrorContext(ctx, "youtube api returned an error", attrs...)
		s.record(ctx, outcomeUpstreamError)
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		slog.ErrorContext(ctx, "error reading youtube response", "query", query, "error", err)
		s.record(ctx, outcomeUpstreamError)
		return nil, fmt.Errorf("%w: read body: %w", ErrUpstream, err)
	}
	if !json.Valid(body) {
		slog.ErrorContext(ctx, "youtube response is not valid json", "query", query, "bytes", len(body))
		s.record(ctx, outcomeUpstreamError)
		return nil, fmt.Errorf("%w: response is not valid json", ErrUpstream)
	}

	s.record(ctx, outcomeOK)
	return json.RawMessage(body), nil
}

func (s *SearchService) record(ctx context.Context, outcome string) {
	if s.requests == nil {
		return
	}
	s.requests.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// withoutURL unwraps a *url.Error so the request URL, and the key inside it,
// never reaches a log line or an error message.
func withoutURL(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return fmt.Errorf("%s: %w", uerr.Op, uerr.Err)
	}
	return err
}
