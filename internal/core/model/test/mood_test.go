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

// Package model_test contains unit tests for the data models defined in the
// model package: the mood catalog, its lookups and the embed URL helpers.
package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mood2music/mood2music/internal/core/model"
)

// TestMoodsCatalogOrder pins the fifteen moods, their genres and icons in
// display order.
func TestMoodsCatalogOrder(t *testing.T) {
	want := []model.Mood{
		{Name: "Romantic", Genre: "Jazz", Icon: "fa-heart"},
		{Name: "Adventurous", Genre: "Rock", Icon: "fa-mountain"},
		{Name: "Happy", Genre: "Pop", Icon: "fa-smile"},
		{Name: "Relaxed", Genre: "Classical", Icon: "fa-leaf"},
		{Name: "Energetic", Genre: "Electronic", Icon: "fa-bolt"},
		{Name: "Melancholic", Genre: "Blues", Icon: "fa-cloud-rain"},
		{Name: "Nostalgic", Genre: "Oldies", Icon: "fa-clock"},
		{Name: "Focused", Genre: "Ambient", Icon: "fa-bullseye"},
		{Name: "Angry", Genre: "Metal", Icon: "fa-fire"},
		{Name: "Peaceful", Genre: "Nature Sounds", Icon: "fa-tree"},
		{Name: "Excited", Genre: "Dance", Icon: "fa-star"},
		{Name: "Confident", Genre: "Hip Hop", Icon: "fa-crown"},
		{Name: "Dreamy", Genre: "Indie", Icon: "fa-cloud"},
		{Name: "Curious", Genre: "World", Icon: "fa-globe"},
		{Name: "Determined", Genre: "Motivational", Icon: "fa-fist-raised"},
	}
	assert.Equal(t, want, model.Moods())
}

func TestMoodNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range model.Moods() {
		assert.False(t, seen[m.Name], "duplicate mood %q", m.Name)
		seen[m.Name] = true
	}
}

// TestMoodsReturnsCopy checks callers cannot mutate the catalog.
func TestMoodsReturnsCopy(t *testing.T) {
	moods := model.Moods()
	moods[0].Genre = "Polka"
	assert.Equal(t, "Jazz", model.Moods()[0].Genre)
}

func TestSearchQuery(t *testing.T) {
	romantic, ok := model.MoodByName("Romantic")
	require.True(t, ok)
	assert.Equal(t, "Jazz music", romantic.SearchQuery())
	assert.Equal(t, "Nature Sounds music", model.SearchQuery("Nature Sounds"))
}

func TestMoodByName(t *testing.T) {
	tests := []struct {
		in    string
		want  string
		found bool
	}{
		{in: "Romantic", want: "Romantic", found: true},
		{in: "  hip hop", found: false},
		{in: "confident", want: "Confident", found: true},
		{in: " DREAMY ", want: "Dreamy", found: true},
		{in: "Sleepy", found: false},
		{in: "", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m, ok := model.MoodByName(tt.in)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, m.Name)
		})
	}
}

func TestFindMood(t *testing.T) {
	tests := []struct {
		in    string
		want  string
		found bool
	}{
		{in: "Melancholic", want: "Melancholic", found: true},
		{in: "melancolic", want: "Melancholic", found: true},
		{in: "Nostalgik", want: "Nostalgic", found: true},
		{in: "determind", want: "Determined", found: true},
		{in: "zzz", found: false},
		{in: "   ", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m, ok := model.FindMood(tt.in)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, m.Name)
		})
	}
}

func TestEmbedURL(t *testing.T) {
	assert.Equal(t, "https://www.youtube.com/embed/abc123", model.EmbedURL("abc123"))
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", model.Video{ID: "dQw4w9WgXcQ"}.EmbedURL())
	assert.Empty(t, model.EmbedURL(""))
	assert.Empty(t, model.Video{Title: "no id"}.EmbedURL())
}
