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

package picker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/api/youtube/v3"

	"github.com/mood2music/mood2music/internal/cloud"
	"github.com/mood2music/mood2music/internal/core/model"
)

// SearchPath is the proxy route the client calls.
const SearchPath = "/api/search"

const maxBodyBytes = 8 << 20

var (
	// ErrProxy is returned when the proxy answers with an error marker.
	ErrProxy = errors.New("search proxy returned an error")
	// ErrNoResults is returned when the response holds no playable video.
	ErrNoResults = errors.New("search returned no playable videos")
)

// searchResponse is the slice of the YouTube search document the client
// reads. Error is set only by the proxy's failure body.
type searchResponse struct {
	Error json.RawMessage        `json:"error"`
	Items []*youtube.SearchResult `json:"items"`
}

// Client asks the search proxy for videos and picks one at random.
type Client struct {
	HTTPClient *http.Client
	ProxyURL   string
	// IntN returns a uniform value in [0, n). Defaults to math/rand/v2.IntN.
	IntN func(n int) int
}

// NewClient builds a Client for the proxy named in config. Outbound calls
// are traced and bounded by the configured timeout.
func NewClient(config cloud.Client) *Client {
	return &Client{
		HTTPClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   config.Timeout(),
		},
		ProxyURL: config.ProxyURL,
		IntN:     rand.IntN,
	}
}

// Search asks the proxy for "{genre} music" and returns one video chosen
// uniformly at random from the playable results. Every call is one outbound
// request; nothing is cached. Failures are logged and returned so the caller
// can treat them as an absent song.
func (c *Client) Search(ctx context.Context, genre string) (*model.Video, error) {
	query := model.SearchQuery(genre)
	v, err := c.search(ctx, query)
	if err != nil {
		slog.WarnContext(ctx, "song search failed", "query", query, "error", err)
		return nil, err
	}
	slog.DebugContext(ctx, "song picked", "query", query, "video_id", v.ID)
	return v, nil
}

func (c *Client) search(ctx context.Context, query string) (*model.Video, error) {
	endpoint := strings.TrimSuffix(c.ProxyURL, "/") + SearchPath + "?" + url.Values{"q": {query}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call proxy: %w", err)
	}
	defer resp.Body.Close()

	var body searchResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}
	if len(body.Error) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrProxy, body.Error)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrProxy, resp.StatusCode)
	}
	return c.pick(body.Items)
}

// pick chooses uniformly among items that carry a video id.
func (c *Client) pick(items []*youtube.SearchResult) (*model.Video, error) {
	playable := make([]model.Video, 0, len(items))
	for _, it := range items {
		if it == nil || it.Id == nil || it.Id.VideoId == "" {
			continue
		}
		v := model.Video{ID: it.Id.VideoId}
		if it.Snippet != nil {
			v.Title = it.Snippet.Title
		}
		playable = append(playable, v)
	}
	if len(playable) == 0 {
		return nil, ErrNoResults
	}

	intN := c.IntN
	if intN == nil {
		intN = rand.IntN
	}
	v := playable[intN(len(playable))]
	return &v, nil
}
