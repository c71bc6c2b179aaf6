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

package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mood2music/mood2music/internal/core/services"
)

// Error bodies returned by the search endpoint. Upstream detail never leaves
// the server.
const (
	MsgAPIKeyNotConfigured = "YouTube API key is not configured"
	MsgUpstreamFailure     = "Error fetching data from YouTube API"
)

// Searcher runs one video search and returns the raw upstream document.
// *services.SearchService satisfies it.
type Searcher interface {
	Search(ctx context.Context, query string) (json.RawMessage, error)
}

// SearchRouter registers GET /search?q=<query> on r.
//
// A successful search is relayed verbatim with status 200. Every failure is
// a 500 with a JSON body of the form {"error": "<message>"}.
func SearchRouter(r gin.IRouter, searcher Searcher) {
	r.GET("/search", func(c *gin.Context) {
		query := c.Query("q")

		body, err := searcher.Search(c.Request.Context(), query)
		if err != nil {
			msg := MsgUpstreamFailure
			if errors.Is(err, services.ErrAPIKeyNotConfigured) {
				msg = MsgAPIKeyNotConfigured
			} else {
				slog.ErrorContext(c.Request.Context(), "search failed",
					"request_id", c.GetString(RequestIDKey), "query", query, "error", err)
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
	})
}
