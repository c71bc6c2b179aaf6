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

// Package test provides utility functions and mock data to support the application's
// test suite. It loads the test configuration, fakes the YouTube Data API with an
// httptest server and builds sample search documents.
package test

import (
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/mood2music/mood2music/internal/cloud"
)

var (
	configOnce sync.Once
	config     *cloud.Config
)

// HandleErr is a simple test helper function that checks if an error is not nil.
// If an error exists, it fails the test immediately.
//
// Inputs:
//   - err: The error to check.
//   - t: The *testing.T object from the current test.
func HandleErr(err error, t *testing.T) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// ConfigDir returns the absolute path of the repository's configs directory.
// Package tests run with their own directory as the working directory, so the
// path is resolved from this file's location.
func ConfigDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "configs")
}

// SetupOS points the configuration loader at the repository configs and the
// "test" runtime, so `.env.test.toml` overrides the base file.
func SetupOS() (err error) {
	if err = os.Setenv(cloud.EnvConfigFilePrefix, ConfigDir()); err != nil {
		return err
	}
	return os.Setenv(cloud.EnvConfigRuntime, "test")
}

// GetConfig loads the test configuration once and returns a copy, so a test
// may change fields without affecting others.
//
// Returns:
//   - A pointer to a copy of the loaded cloud.Config struct.
func GetConfig() *cloud.Config {
	configOnce.Do(func() {
		if err := SetupOS(); err != nil {
			log.Fatalf("failed to setup environment for test: %v\n", err)
		}
		c := cloud.NewConfig()
		if err := cloud.LoadConfig(c); err != nil {
			log.Fatalf("failed to load test configuration: %v\n", err)
		}
		config = c
	})
	out := *config
	return &out
}

// SearchResponse builds a YouTube search document with one video item per id.
// Passing no ids gives {"kind":...,"items":[]}.
func SearchResponse(ids ...string) string {
	type resourceID struct {
		Kind    string `json:"kind"`
		VideoID string `json:"videoId"`
	}
	type snippet struct {
		Title string `json:"title"`
	}
	type item struct {
		Kind    string     `json:"kind"`
		ID      resourceID `json:"id"`
		Snippet snippet    `json:"snippet"`
	}
	doc := struct {
		Kind  string `json:"kind"`
		Items []item `json:"items"`
	}{Kind: "youtube#searchListResponse", Items: []item{}}
	for _, id := range ids {
		doc.Items = append(doc.Items, item{
			Kind:    "youtube#searchResult",
			ID:      resourceID{Kind: "youtube#video", VideoID: id},
			Snippet: snippet{Title: "Video " + id},
		})
	}
	b, err := json.Marshal(doc)
	if err != nil {
		panic(err)
	}
	return string(b)
}

// RequestLog records the requests a fake server received.
type RequestLog struct {
	mu       sync.Mutex
	requests []*http.Request
}

// Count returns the number of requests received so far.
func (l *RequestLog) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.requests)
}

// Last returns the most recent request, or nil.
func (l *RequestLog) Last() *http.Request {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.requests) == 0 {
		return nil
	}
	return l.requests[len(l.requests)-1]
}

func (l *RequestLog) add(r *http.Request) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.requests = append(l.requests, r.Clone(r.Context()))
}

// NewFakeServer starts an httptest server that answers every request with
// status and body, and records what it received. It is closed when the test ends.
func NewFakeServer(t *testing.T, status int, body string) (*httptest.Server, *RequestLog) {
	t.Helper()
	return NewRecordingServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=UTF-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

// NewRecordingServer starts an httptest server with a custom handler and
// records every request before the handler runs.
func NewRecordingServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *RequestLog) {
	t.Helper()
	reqLog := &RequestLog{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqLog.add(r)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, reqLog
}
