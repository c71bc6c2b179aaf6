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

// Package model defines the core data structures for the application.
// This file, `mood.go`, holds the mood catalog: the fixed, ordered list of
// moods a listener can pick, each mapped to one music genre and one icon.
package model

import (
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Mood is a named emotional category. Genre is the term used to search for
// videos; Icon is a Font Awesome icon name used by clients that draw one.
type Mood struct {
	Name  string `json:"name"`
	Genre string `json:"genre"`
	Icon  string `json:"icon"`
}

// SearchQuery returns the free-text query used to search for videos of the
// mood's genre.
func (m Mood) SearchQuery() string {
	return SearchQuery(m.Genre)
}

// SearchQuery returns the video search query for a genre, e.g. "Jazz music".
func SearchQuery(genre string) string {
	return genre + " music"
}

// catalog is never mutated. Callers get copies from Moods.
var catalog = [...]Mood{
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

// FuzzyMatchThreshold is the minimum Jaro-Winkler similarity FindMood accepts.
const FuzzyMatchThreshold = 0.85

// Moods returns the catalog in display order. The slice is a fresh copy.
func Moods() []Mood {
	out := make([]Mood, len(catalog))
	copy(out, catalog[:])
	return out
}

// MoodByName looks a mood up by name, ignoring case and surrounding spaces.
func MoodByName(name string) (Mood, bool) {
	name = strings.TrimSpace(name)
	for _, m := range catalog {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return Mood{}, false
}

// FindMood returns the mood whose name matches exactly or, failing that, the
// closest name by Jaro-Winkler similarity when it scores at least
// FuzzyMatchThreshold. Ties keep the earlier catalog entry.
func FindMood(name string) (Mood, bool) {
	if m, ok := MoodByName(name); ok {
		return m, true
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Mood{}, false
	}

	jw := metrics.NewJaroWinkler()
	jw.CaseSensitive = false

	best, bestScore := -1, 0.0
	for i, m := range catalog {
		if score := strutil.Similarity(name, m.Name, jw); score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 || bestScore < FuzzyMatchThreshold {
		return Mood{}, false
	}
	return catalog[best], true
}
