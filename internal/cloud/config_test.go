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
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoadConfigHierarchy(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env.toml", `
[application]
name = "base"
port = 9000

[youtube]
referer = "https://base.example"
max_results = 25
`)
	writeFile(t, dir, ".env.prod.toml", `
[youtube]
referer = "https://prod.example"
`)
	t.Setenv(EnvConfigFilePrefix, dir)
	t.Setenv(EnvConfigRuntime, "prod")

	config := NewConfig()
	require.NoError(t, LoadConfig(config))

	assert.Equal(t, "base", config.Application.Name)
	assert.Equal(t, 9000, config.Application.Port)
	assert.Equal(t, "https://prod.example", config.YouTube.Referer)
	assert.Equal(t, 25, config.YouTube.MaxResults)
	// Untouched keys keep their defaults.
	assert.Equal(t, "YOUTUBE_API_KEY", config.YouTube.APIKeyEnv)
	assert.Equal(t, 10*time.Second, config.YouTube.Timeout())
	assert.Equal(t, 15*time.Second, config.Client.Timeout())
}

func TestLoadConfigMissingFilesKeepDefaults(t *testing.T) {
	t.Setenv(EnvConfigFilePrefix, t.TempDir())
	t.Setenv(EnvConfigRuntime, "nowhere")

	config := NewConfig()
	require.NoError(t, LoadConfig(config))
	assert.Equal(t, NewConfig(), config)
}

func TestLoadConfigInvalidFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env.toml", "[application\nname = ")
	t.Setenv(EnvConfigFilePrefix, dir)
	t.Setenv(EnvConfigRuntime, "test")

	err := LoadConfig(NewConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".env.toml")
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "MOOD2MUSIC_DOTENV_A=from-file\nMOOD2MUSIC_DOTENV_B=from-file\n")
	t.Setenv("MOOD2MUSIC_DOTENV_A", "")
	os.Unsetenv("MOOD2MUSIC_DOTENV_A")
	t.Setenv("MOOD2MUSIC_DOTENV_B", "from-env")

	require.NoError(t, LoadDotEnv(filepath.Join(dir, ".env")))

	assert.Equal(t, "from-file", os.Getenv("MOOD2MUSIC_DOTENV_A"))
	assert.Equal(t, "from-env", os.Getenv("MOOD2MUSIC_DOTENV_B"))
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestAPIKeyReadsEnvironment(t *testing.T) {
	y := YouTube{APIKeyEnv: "MOOD2MUSIC_TEST_KEY_LOOKUP"}
	t.Setenv("MOOD2MUSIC_TEST_KEY_LOOKUP", "")
	assert.Empty(t, y.APIKey())

	t.Setenv("MOOD2MUSIC_TEST_KEY_LOOKUP", "secret")
	assert.Equal(t, "secret", y.APIKey())
}

func TestNewCloudServiceClients(t *testing.T) {
	config := NewConfig()
	clients, err := NewCloudServiceClients(context.Background(), config)
	require.NoError(t, err)
	defer clients.Close()
	assert.Equal(t, 10*time.Second, clients.YouTubeHTTPClient.Timeout)

	config.YouTube.BaseURL = "/relative/path"
	_, err = NewCloudServiceClients(context.Background(), config)
	assert.Error(t, err)

	config.YouTube.BaseURL = "http://[::1"
	_, err = NewCloudServiceClients(context.Background(), config)
	assert.Error(t, err)
}
