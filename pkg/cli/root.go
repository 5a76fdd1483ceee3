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
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/owljoa/RustPython/pkg/codecs"
	"github.com/owljoa/RustPython/pkg/encodings"
	"github.com/owljoa/RustPython/pkg/logging"
)

const (
	name           = "pycodec"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Shared flags used by multiple commands.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   "json",
		Usage:   "output format (json, yaml, table)",
	}

	encodingFlag = &cli.StringFlag{
		Name:    "encoding",
		Aliases: []string{"e"},
		Value:   "utf-8",
		Usage:   "encoding name or alias (e.g., utf-8, ascii, latin-1, utf-16)",
	}

	errorsFlag = &cli.StringFlag{
		Name:  "errors",
		Value: "strict",
		Usage: "error policy (strict, ignore, replace, xmlcharrefreplace, backslashreplace)",
	}
)

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Usage:                 "Text codec toolkit",
		Description: `Encode text to bytes and decode bytes to text using registered codecs,
with configurable error handling for characters and bytes the target
encoding cannot represent.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Usage:   "log level (debug, info, warn, error)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			encodeCmd(),
			decodeCmd(),
			encodingsCmd(),
			errorsCmd(),
			serveCmd(),
		},
	}
}

// Execute runs the CLI. This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRegistry creates a codec registry populated with the built-in encodings.
func newRegistry() (*codecs.Registry, error) {
	reg := codecs.New()
	if _, err := encodings.Register(reg); err != nil {
		return nil, fmt.Errorf("failed to register encodings: %w", err)
	}
	return reg, nil
}
