package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeJSONConfig(t, `{
		"app": {"version": "1.0.0", "log_level": "info"},
		"server": {
			"http_address": "localhost:9000",
			"request_timeout": "15s",
			"shutdown_timeout": "1s",
			"allowed_origins": ["http://localhost:3000"]
		},
		"storage": {"db": {"dsn": "study.db"}},
		"ai": {
			"api_key": "json-key",
			"base_url": "http://llm.local/v1",
			"model": "json-model",
			"temperature": 0.3,
			"request_timeout": "25s"
		},
		"adapter": {"http_address": "http://localhost:9000", "request_timeout": "40s"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "study.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "json-key", cfg.AI.APIKey)
	assert.Equal(t, "http://llm.local/v1", cfg.AI.BaseURL)
	assert.Equal(t, "json-model", cfg.AI.Model)
	require.NotNil(t, cfg.AI.Temperature)
	assert.InDelta(t, 0.3, *cfg.AI.Temperature, 1e-9)
	assert.Equal(t, 25*time.Second, cfg.AI.RequestTimeout)
	assert.Equal(t, "http://localhost:9000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 40*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseJSON_PartialConfig(t *testing.T) {
	path := writeJSONConfig(t, `{"ai": {"model": "only-model"}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "only-model", cfg.AI.Model)
	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.AI.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidContent(t *testing.T) {
	path := writeJSONConfig(t, `{"server": `)

	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{name: "string seconds", input: `"30s"`, expected: 30 * time.Second},
		{name: "string minutes", input: `"2m"`, expected: 2 * time.Minute},
		{name: "nanoseconds number", input: `1000000000`, expected: time.Second},
		{name: "invalid string", input: `"soon"`, wantErr: true},
		{name: "boolean", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(b))
}
