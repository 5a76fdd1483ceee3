// Copyright (c) 2026, RustPython Contributors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/time/rate"

	"github.com/owljoa/RustPython/pkg/defaults"
	"github.com/owljoa/RustPython/pkg/serializer"
)

// Config holds server configuration.
type Config struct {
	// Server configuration
	Address string `json:"address" yaml:"address"`
	Port    int    `json:"port" yaml:"port"`

	// Rate limiting configuration
	RateLimit      rate.Limit `json:"rateLimit" yaml:"rateLimit"`
	RateLimitBurst int        `json:"rateLimitBurst" yaml:"rateLimitBurst"`

	// Request limits
	MaxRequestBytes int64 `json:"maxRequestBytes" yaml:"maxRequestBytes"`

	// Encodings resolved into the cache before the server reports ready.
	WarmEncodings []string `json:"warmEncodings" yaml:"warmEncodings"`

	// Timeouts
	ReadTimeout     time.Duration `json:"readTimeout" yaml:"readTimeout"`
	WriteTimeout    time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
	IdleTimeout     time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
	ShutdownTimeout time.Duration `json:"shutdownTimeout" yaml:"shutdownTimeout"`
}

// DefaultConfig returns sensible defaults, with environment overrides for
// the knobs operators most often tune.
func DefaultConfig() *Config {
	cfg := &Config{
		Address:         "",
		Port:            8080,
		RateLimit:       100, // 100 req/s
		RateLimitBurst:  200, // burst of 200
		MaxRequestBytes: 1 << 20,
		WarmEncodings:   []string{"utf-8", "ascii", "latin-1"},
		ReadTimeout:     defaults.ServerReadTimeout,
		WriteTimeout:    defaults.ServerWriteTimeout,
		IdleTimeout:     defaults.ServerIdleTimeout,
		ShutdownTimeout: defaults.ServerShutdownTimeout,
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		var port int
		if _, err := fmt.Sscanf(portStr, "%d", &port); err == nil {
			cfg.Port = port
		}
	}

	// Allow customization of shutdown timeout to match eviction grace periods
	if shutdownStr := os.Getenv("SHUTDOWN_TIMEOUT_SECONDS"); shutdownStr != "" {
		var seconds int
		if _, err := fmt.Sscanf(shutdownStr, "%d", &seconds); err == nil && seconds > 0 {
			cfg.ShutdownTimeout = time.Duration(seconds) * time.Second
		}
	}

	return cfg
}

// LoadConfig reads configuration from a JSON or YAML file, layered over the
// defaults. Fields absent from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	reader, err := serializer.NewFileReaderAuto(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config %q: %w", path, err)
	}
	defer reader.Close()

	if err := reader.Deserialize(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	return cfg, nil
}
