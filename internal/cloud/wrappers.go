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
// This file implements a decorator around http.RoundTripper that stamps every
// outbound request with the deployment Referer. The YouTube API key is
// restricted to HTTP referrers, so a request without it is rejected upstream.
package cloud

import (
	"net/http"
)

// RefererTransport wraps another RoundTripper and sets the Referer header on
// requests that do not already carry one.
type RefererTransport struct {
	Base    http.RoundTripper // The wrapped transport. nil means http.DefaultTransport.
	Referer string            // The value sent in the Referer header.
}

// NewRefererTransport creates a RefererTransport around base.
func NewRefererTransport(base http.RoundTripper, referer string) *RefererTransport {
	return &RefererTransport{Base: base, Referer: referer}
}

// RoundTrip implements http.RoundTripper. The caller's request is cloned
// before the header is added, as the RoundTripper contract requires.
func (t *RefererTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	if t.Referer == "" || req.Header.Get("Referer") != "" {
		return base.RoundTrip(req)
	}
	r := req.Clone(req.Context())
	r.Header.Set("Referer", t.Referer)
	return base.RoundTrip(r)
}
