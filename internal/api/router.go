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

// Package api contains the HTTP surface of the Mood2Music server.
//
// Functions:
//   - NewRouter: Builds the gin engine with tracing, CORS, request ids and every route.
//   - SearchRouter: Registers the search proxy endpoint.
//   - MoodRouter: Registers the read-only mood catalog endpoints.
//   - Health: Registers the liveness probe.
package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// NewRouter assembles the server's gin engine.
//
// Inputs:
//   - serviceName: Name reported on the server spans.
//   - searcher: Backs GET /api/search.
//
// Outputs:
//   - *gin.Engine: Ready to be used as an http.Handler.
func NewRouter(serviceName string, searcher Searcher) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(serviceName))
	r.Use(cors.Default())
	r.Use(RequestID())
	r.Use(AccessLog())

	Health(r)

	apiGroup := r.Group("/api")
	{
		SearchRouter(apiGroup, searcher)
	}

	apiV1 := r.Group("/api/v1")
	{
		MoodRouter(apiV1)
	}
	return r
}
