// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DefaultAllowedOrigins, cfg.Server.AllowedOrigins)
	assert.Equal(t, DefaultAIBaseURL, cfg.AI.BaseURL)
	assert.Equal(t, DefaultAIModel, cfg.AI.Model)
	require.NotNil(t, cfg.AI.Temperature)
	assert.InDelta(t, DefaultAITemperature, *cfg.AI.Temperature, 1e-9)
	assert.Equal(t, DefaultAIRequestTimeout, cfg.AI.RequestTimeout)
	assert.Equal(t, DefaultAdapterAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultVersion, cfg.App.Version)
	assert.Empty(t, cfg.AI.APIKey)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestConfigBuilder_EarlierSourceWins(t *testing.T) {
	env := &StructuredConfig{
		Server: Server{HTTPAddress: "localhost:7000"},
	}
	flags := &StructuredConfig{
		Server: Server{HTTPAddress: "localhost:8000", RequestTimeout: 10 * time.Second},
		AI:     AI{Model: "flag-model"},
	}

	b := newConfigBuilder()
	b.configs = append(b.configs, env, flags)

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "localhost:7000", cfg.Server.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "flag-model", cfg.AI.Model)
	assert.Equal(t, DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
}

func TestConfigBuilder_ZeroTemperatureKept(t *testing.T) {
	envCfg := &StructuredConfig{}
	require.NoError(t, parseEnvFrom(envCfg, map[string]string{"AI_TEMPERATURE": "0"}))

	flagsCfg, err := parseFlags("test", []string{"-ai-temperature=0"})
	require.NoError(t, err)

	for name, src := range map[string]*StructuredConfig{"env": envCfg, "flags": flagsCfg} {
		t.Run(name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, src)

			cfg, err := b.withDefaults().build()
			require.NoError(t, err)

			require.NotNil(t, cfg.AI.Temperature)
			assert.Zero(t, *cfg.AI.Temperature)
		})
	}
}

func TestConfigBuilder_TemperatureUnsetUsesDefault(t *testing.T) {
	flagsCfg, err := parseFlags("test", nil)
	require.NoError(t, err)
	assert.Nil(t, flagsCfg.AI.Temperature)

	b := newConfigBuilder()
	b.configs = append(b.configs, flagsCfg)

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	require.NotNil(t, cfg.AI.Temperature)
	assert.InDelta(t, DefaultAITemperature, *cfg.AI.Temperature, 1e-9)
}

func TestConfigBuilder_GroqAPIKeyFallback(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{GroqAPIKey: "groq-key"})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, "groq-key", cfg.AI.APIKey)
}

func TestConfigBuilder_ExplicitKeyBeatsGroqKey(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		GroqAPIKey: "groq-key",
		AI:         AI{APIKey: "explicit"},
	})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, "explicit", cfg.AI.APIKey)
}

func TestConfigBuilder_JSONFromEarlierSource(t *testing.T) {
	path := writeJSONConfig(t, `{"ai": {"model": "json-model"}, "server": {"http_address": "localhost:6000"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: path,
		Server:       Server{HTTPAddress: "localhost:7000"},
	})

	cfg, err := b.withJSON().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "localhost:7000", cfg.Server.HTTPAddress)
	assert.Equal(t, "json-model", cfg.AI.Model)
}

func TestConfigBuilder_JSONErrorIsReported(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/definitely/missing.json"})

	_, err := b.withJSON().withDefaults().build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error occured during building config")
}

func TestConfigBuilder_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *StructuredConfig
		wantErr error
	}{
		{
			name:    "temperature too high",
			cfg:     &StructuredConfig{AI: AI{Temperature: Float64(2.5)}},
			wantErr: ErrInvalidAIConfigs,
		},
		{
			name:    "base url without scheme",
			cfg:     &StructuredConfig{AI: AI{BaseURL: "api.groq.com"}},
			wantErr: ErrInvalidAIConfigs,
		},
		{
			name:    "negative ai timeout",
			cfg:     &StructuredConfig{AI: AI{RequestTimeout: -time.Second}},
			wantErr: ErrInvalidAIConfigs,
		},
		{
			name:    "negative server timeout",
			cfg:     &StructuredConfig{Server: Server{ShutdownTimeout: -time.Second}},
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, tt.cfg)

			_, err := b.withDefaults().build()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestNewClientConfig(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	clientCfg, err := newClientConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, DefaultAdapterAddress, clientCfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultAdapterRequestTimeout, clientCfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultLogLevel, clientCfg.LogLevel)
}

func TestNewClientConfig_Invalid(t *testing.T) {
	_, err := newClientConfig(&StructuredConfig{})
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}
