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
// This file, `queries.go`, centralizes the fixed parameters of the YouTube Data
// API search request so the request shape can be read in one place.
package services

import (
	"net/url"
	"strconv"
)

const (
	// SearchResource is the Data API resource queried, relative to the base URL.
	SearchResource = "search"

	// SearchPart selects the snippet section, which carries titles and thumbnails
	// next to the id the client needs.
	SearchPart = "snippet"

	// SearchType restricts results to videos; channels and playlists have no
	// id.videoId and could never be played.
	SearchType = "video"

	// DefaultMaxResults is the result-count cap when the configuration has none.
	// It is also the largest page the API serves.
	DefaultMaxResults = 50

	// maxResponseBytes bounds how much of the upstream body is buffered.
	maxResponseBytes = 8 << 20
)

// searchParams returns the query string for one search:
//
//	part=snippet&maxResults=<n>&q=<query>&type=video&key=<credential>
func searchParams(query, apiKey string, maxResults int) url.Values {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	v := url.Values{}
	v.Set("part", SearchPart)
	v.Set("maxResults", strconv.Itoa(maxResults))
	v.Set("q", query)
	v.Set("type", SearchType)
	v.Set("key", apiKey)
	return v
}
