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
// This file, `video.go`, contains the transient video types a client holds
// after picking a search result. Nothing here is persisted.
package model

import "net/url"

// EmbedURLPrefix is the player URL template; the video id is appended.
const EmbedURLPrefix = "https://www.youtube.com/embed/"

// Video is a playable search result. ID is the opaque YouTube video id; Title
// is whatever the search snippet carried and may be empty.
type Video struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
}

// EmbedURL returns the embedded player URL for the video, or "" when there is
// no id to play.
func (v Video) EmbedURL() string {
	return EmbedURL(v.ID)
}

// EmbedURL returns the embedded player URL for a video id, or "" for an empty id.
func EmbedURL(videoID string) string {
	if videoID == "" {
		return ""
	}
	return EmbedURLPrefix + url.PathEscape(videoID)
}
