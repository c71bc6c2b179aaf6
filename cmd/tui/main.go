// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package main is the terminal client for Mood2Music. It talks to the search
// proxy only; the YouTube key never reaches this process.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mood2music/mood2music/internal/cloud"
	"github.com/mood2music/mood2music/internal/core/model"
	"github.com/mood2music/mood2music/internal/core/picker"
	"github.com/mood2music/mood2music/internal/telemetry"
	"github.com/mood2music/mood2music/internal/tui"
)

func main() {
	moodName := flag.String("mood", "", "start on this mood (close spellings are accepted)")
	proxyURL := flag.String("proxy", "", "search proxy base URL (overrides client.proxy_url)")
	flag.Parse()

	if os.Getenv(cloud.EnvConfigFilePrefix) == "" {
		_ = os.Setenv(cloud.EnvConfigFilePrefix, "configs")
	}
	if os.Getenv(cloud.EnvConfigRuntime) == "" {
		_ = os.Setenv(cloud.EnvConfigRuntime, "local")
	}
	config := cloud.NewConfig()
	if err := cloud.LoadConfig(config); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *proxyURL != "" {
		config.Client.ProxyURL = *proxyURL
	}

	// The terminal belongs to the UI; logs only go to the file.
	telemetry.SetupLogging(config.Client.LogFile, false)

	var preselect *model.Mood
	if *moodName != "" {
		m, ok := model.FindMood(*moodName)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown mood %q\n", *moodName)
			os.Exit(2)
		}
		preselect = &m
	}

	if err := tui.Run(picker.NewClient(config.Client), preselect); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
