// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// A missing AI API key is deliberately not an error: the server starts and
// AI endpoints answer with failure responses.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	if t := cfg.AI.Temperature; t != nil && (*t < 0 || *t > 2) {
		return fmt.Errorf("%w: temperature must be within [0, 2]", ErrInvalidAIConfigs)
	}
	if cfg.AI.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAIConfigs)
	}
	if cfg.AI.BaseURL != "" {
		u, err := url.Parse(cfg.AI.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: invalid base url %q", ErrInvalidAIConfigs, cfg.AI.BaseURL)
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
