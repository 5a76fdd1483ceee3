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

	"github.com/urfave/cli/v3"

	"github.com/owljoa/RustPython/pkg/encodings"
	"github.com/owljoa/RustPython/pkg/header"
)

// listResult is the structured output of the listing commands.
type listResult struct {
	header.Header `json:",inline" yaml:",inline"`

	Encodings []string `json:"encodings,omitempty" yaml:"encodings,omitempty"`
	Handlers  []string `json:"handlers,omitempty" yaml:"handlers,omitempty"`
}

// newListResult creates a listResult with an initialized header.
func newListResult(kind header.Kind) listResult {
	var res listResult
	res.Init(kind, apiVersion, version)
	return res
}

func encodingsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "encodings",
		EnableShellCompletion: true,
		Usage:                 "List the built-in encodings",
		Description: `List the canonical names of the built-in encodings. Each encoding is
also reachable through its aliases (e.g., u8 and cp65001 for utf-8).`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			res := newListResult(header.KindEncodingList)
			res.Encodings = encodings.Names()
			return writeResult(ctx, cmd, res)
		},
	}
}

func errorsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "errors",
		EnableShellCompletion: true,
		Usage:                 "List the registered error handlers",
		Description: `List the names accepted by the --errors flag. The built-in handlers are
strict (fail on the first bad element), ignore (drop bad elements),
replace (substitute ? or U+FFFD), xmlcharrefreplace (XML character
references, encoding only), and backslashreplace (backslash escapes).`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			reg, err := newRegistry()
			if err != nil {
				return err
			}
			res := newListResult(header.KindErrorHandlerList)
			res.Handlers = reg.ErrorHandlerNames()
			return writeResult(ctx, cmd, res)
		},
	}
}
