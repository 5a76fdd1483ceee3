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

package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/owljoa/RustPython/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Run the codec HTTP service",
		Description: `Run the codec service, exposing encode and decode operations over HTTP.

The service listens on the configured port (default 8080) and serves:
  POST /v1/encode    - encode text to bytes
  POST /v1/decode    - decode bytes to text
  GET  /v1/encodings - list registered encodings
  GET  /v1/errors    - list registered error handlers
  GET  /health       - liveness probe
  GET  /ready        - readiness probe
  GET  /metrics      - Prometheus metrics

# Examples

Run with defaults:
  pycodec serve

Run on a custom port with a config file:
  pycodec serve --port 9090 --config service.yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a JSON or YAML config file",
			},
			&cli.IntFlag{
				Name:    "port",
				Sources: cli.EnvVars("PORT"),
				Usage:   "port to listen on (overrides config)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := server.DefaultConfig()

			if path := cmd.String("config"); path != "" {
				var err error
				cfg, err = server.LoadConfig(path)
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
			}

			if port := cmd.Int("port"); port != 0 {
				cfg.Port = int(port)
			}

			return server.RunWithConfig(cfg)
		},
	}
}
