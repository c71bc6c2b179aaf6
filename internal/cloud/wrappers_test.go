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

package cloud

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestRefererTransport(t *testing.T) {
	tests := []struct {
		name     string
		referer  string
		incoming string
		want     string
	}{
		{name: "adds header", referer: "https://mood2music.example", want: "https://mood2music.example"},
		{name: "keeps existing", referer: "https://mood2music.example", incoming: "https://caller.example", want: "https://caller.example"},
		{name: "empty referer", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			base := roundTripFunc(func(r *http.Request) (*http.Response, error) {
				got = r.Header.Get("Referer")
				return httptest.NewRecorder().Result(), nil
			})
			req := httptest.NewRequest(http.MethodGet, "http://upstream.example/search", nil)
			if tt.incoming != "" {
				req.Header.Set("Referer", tt.incoming)
			}

			resp, err := NewRefererTransport(base, tt.referer).RoundTrip(req)
			require.NoError(t, err)
			resp.Body.Close()

			assert.Equal(t, tt.want, got)
			// The caller's request is never modified.
			assert.Equal(t, tt.incoming, req.Header.Get("Referer"))
		})
	}
}

func TestRefererTransportDefaultBase(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Referer")
	}))
	defer srv.Close()

	client := &http.Client{Transport: &RefererTransport{Referer: "https://mood2music.example"}}
	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "https://mood2music.example", got)
}
