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
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mood2music/mood2music/internal/core/model"
)

// MoodRouter sets up the read-only catalog routes.
//
// This function defines the following endpoints:
//   - GET /moods: The full catalog, in display order.
//   - GET /moods/:name: One mood by name, ignoring case.
func MoodRouter(r *gin.RouterGroup) {
	moods := r.Group("/moods")
	{
		moods.GET("", func(c *gin.Context) {
			c.JSON(http.StatusOK, model.Moods())
		})

		moods.GET("/:name", func(c *gin.Context) {
			m, ok := model.MoodByName(c.Param("name"))
			if !ok {
				c.JSON(http.StatusNotFound, gin.H{"error": "Mood not found"})
				return
			}
			c.JSON(http.StatusOK, m)
		})
	}
}
