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

// Package picker holds the client side of Mood2Music: the selection state
// machine and the client that asks the search proxy for a song.
//
// The Controller performs no I/O. Each transition that needs a song returns a
// Request; the caller runs it (see Client.Search) and feeds the outcome back
// through Resolve. Requests carry a sequence number and only the most recently
// issued one may resolve, so a slow reply can never overwrite a newer choice.
package picker

import "github.com/mood2music/mood2music/internal/core/model"

// State is the selection state of one client session. CurrentSong is only
// meaningful while SelectedMood is set; a nil pointer means absent.
type State struct {
	SelectedMood *model.Mood
	CurrentSong  *model.Video
}

// Request describes one search the caller should run.
type Request struct {
	Seq   uint64
	Mood  model.Mood
	Query string
}

// Controller is the selection state machine. It is not safe for concurrent
// use; drive it from a single goroutine such as a UI event loop.
type Controller struct {
	state    State
	seq      uint64
	inFlight bool
}

// NewController returns a Controller in the idle state.
func NewController() *Controller {
	return &Controller{}
}

// State returns a snapshot of the current selection.
func (c *Controller) State() State {
	s := State{}
	if c.state.SelectedMood != nil {
		m := *c.state.SelectedMood
		s.SelectedMood = &m
	}
	if c.state.CurrentSong != nil {
		v := *c.state.CurrentSong
		s.CurrentSong = &v
	}
	return s
}

// Loading reports whether the latest issued request is still unresolved.
func (c *Controller) Loading() bool {
	return c.inFlight
}

// Select picks a mood, clears the current song and returns the search to run.
func (c *Controller) Select(m model.Mood) Request {
	c.state.SelectedMood = &m
	c.state.CurrentSong = nil
	return c.issue(m)
}

// Refresh returns a new search for the selected mood. It returns false, and
// nothing should be sent, when no mood is selected. The current song is kept
// until the new one resolves.
func (c *Controller) Refresh() (Request, bool) {
	if c.state.SelectedMood == nil {
		return Request{}, false
	}
	return c.issue(*c.state.SelectedMood), true
}

// Reset returns to the idle state. Any search still in flight is abandoned.
func (c *Controller) Reset() {
	c.state = State{}
	c.inFlight = false
	c.seq++
}

// Resolve applies the outcome of request seq. A nil video is a failed or empty
// search and leaves the current song as it is. Resolutions for anything other
// than the latest issued request are dropped; the return value reports whether
// this one was applied.
func (c *Controller) Resolve(seq uint64, v *model.Video) bool {
	if !c.inFlight || seq != c.seq || c.state.SelectedMood == nil {
		return false
	}
	c.inFlight = false
	if v != nil {
		song := *v
		c.state.CurrentSong = &song
	}
	return true
}

func (c *Controller) issue(m model.Mood) Request {
	c.seq++
	c.inFlight = true
	return Request{Seq: c.seq, Mood: m, Query: m.SearchQuery()}
}
