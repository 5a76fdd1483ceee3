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
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/owljoa/RustPython/pkg/codecs"
	"github.com/owljoa/RustPython/pkg/defaults"
	"github.com/owljoa/RustPython/pkg/encodings"
	"github.com/owljoa/RustPython/pkg/logging"
)

const name = "pycodecd"

// version is set at build time via ldflags.
var version = "dev"

// Server is the codec service HTTP server.
type Server struct {
	config      *Config
	httpServer  *http.Server
	rateLimiter *rate.Limiter
	registry    *codecs.Registry

	mu    sync.RWMutex
	ready bool
}

// NewServer creates a server with its own codec registry, populated with
// the built-in encodings provider.
func NewServer(config *Config) (*Server, error) {
	if config == nil {
		config = DefaultConfig()
	}

	reg := codecs.New()
	if _, err := encodings.Register(reg); err != nil {
		return nil, fmt.Errorf("failed to register encodings: %w", err)
	}

	return NewServerWithRegistry(config, reg), nil
}

// NewServerWithRegistry creates a server backed by the given registry.
// Used when the caller shares a registry across components.
func NewServerWithRegistry(config *Config, reg *codecs.Registry) *Server {
	if config == nil {
		config = DefaultConfig()
	}

	s := &Server{
		config:      config,
		rateLimiter: rate.NewLimiter(config.RateLimit, config.RateLimitBurst),
		registry:    reg,
	}

	mux := http.NewServeMux()
	s.setupRoutes(mux)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", config.Address, config.Port),
		Handler:           mux,
		ReadTimeout:       config.ReadTimeout,
		ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
		WriteTimeout:      config.WriteTimeout,
		IdleTimeout:       config.IdleTimeout,
	}

	return s
}

// SetReady sets the server's readiness state.
func (s *Server) SetReady(ready bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = ready
}

// Registry returns the codec registry backing the server.
func (s *Server) Registry() *codecs.Registry {
	return s.registry
}

// Start runs the HTTP server until the context is canceled. The configured
// warm encodings are resolved before the server reports ready.
func (s *Server) Start(ctx context.Context) error {
	warmCtx, cancel := context.WithTimeout(ctx, defaults.WarmTimeout)
	defer cancel()
	if err := s.registry.Warm(warmCtx, s.config.WarmEncodings...); err != nil {
		return fmt.Errorf("failed to warm codec registry: %w", err)
	}
	s.SetReady(true)

	slog.Info("starting server",
		"name", name,
		"version", version,
		"address", s.httpServer.Addr,
	)

	errChan := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		return s.Shutdown()
	}
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	s.SetReady(false)

	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	slog.Info("shutting down server", "timeout", s.config.ShutdownTimeout.String())

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	return nil
}

// Run starts the server with default configuration and blocks until
// an interrupt or termination signal.
func Run() error {
	return RunWithConfig(DefaultConfig())
}

// RunWithConfig starts the server with the provided configuration and
// blocks until an interrupt or termination signal.
func RunWithConfig(config *Config) error {
	logging.SetDefaultStructuredLogger(name, version)

	if config == nil {
		config = DefaultConfig()
	}

	slog.Debug("server configuration",
		"port", config.Port,
		"rateLimit", config.RateLimit,
		"rateLimitBurst", config.RateLimitBurst,
		"maxRequestBytes", config.MaxRequestBytes,
		"warmEncodings", config.WarmEncodings,
		"shutdownTimeout", config.ShutdownTimeout.String(),
	)

	srv, err := NewServer(config)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Start(gctx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server exited with error: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
