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
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/urfave/cli/v3"

	"github.com/owljoa/RustPython/pkg/header"
	"github.com/owljoa/RustPython/pkg/serializer"
)

// apiVersion identifies the result document schema.
const apiVersion = "pycodec/v1"

// convertResult is the structured output of the encode and decode commands.
// Data carries the byte payload hex-encoded so every output format can
// render it.
type convertResult struct {
	header.Header `json:",inline" yaml:",inline"`

	Encoding string `json:"encoding" yaml:"encoding"`
	Errors   string `json:"errors" yaml:"errors"`
	Text     string `json:"text,omitempty" yaml:"text,omitempty"`
	Data     string `json:"data,omitempty" yaml:"data,omitempty"`
	Len      int    `json:"len" yaml:"len"`
}

// newConvertResult creates a convertResult with an initialized header.
func newConvertResult(kind header.Kind) convertResult {
	var res convertResult
	res.Init(kind, apiVersion, version)
	return res
}

func encodeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "encode",
		EnableShellCompletion: true,
		Usage:                 "Encode text to bytes",
		ArgsUsage:             "[TEXT]",
		Description: `Encode text to bytes under the selected encoding.

Input is the TEXT argument, the --input file, or stdin, in that order of
precedence. By default the result is a structured document with the byte
payload hex-encoded; use --raw to write the bytes themselves.

# Examples

Encode a string as UTF-8:
  pycodec encode "héllo"

Encode as ASCII, replacing unencodable characters:
  pycodec encode --encoding ascii --errors replace "héllo"

Write the raw bytes to a file:
  pycodec encode --encoding utf-16 --raw --output out.bin "héllo"`,
		Flags: []cli.Flag{
			encodingFlag,
			errorsFlag,
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"f"},
				Usage:   "read input text from file instead of the argument or stdin",
			},
			&cli.BoolFlag{
				Name:  "raw",
				Usage: "write the encoded bytes directly instead of a structured document",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			text, err := readTextInput(cmd)
			if err != nil {
				return err
			}

			reg, err := newRegistry()
			if err != nil {
				return err
			}

			encoding := cmd.String("encoding")
			errs := cmd.String("errors")

			data, err := reg.EncodeText(text, encoding, errs)
			if err != nil {
				return err
			}

			if cmd.Bool("raw") {
				return writeRaw(cmd.String("output"), data)
			}

			res := newConvertResult(header.KindEncodeResult)
			res.Encoding = encoding
			res.Errors = errs
			res.Data = hex.EncodeToString(data)
			res.Len = utf8.RuneCountInString(text)

			return writeResult(ctx, cmd, res)
		},
	}
}

func decodeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "decode",
		EnableShellCompletion: true,
		Usage:                 "Decode bytes to text",
		ArgsUsage:             "[HEX]",
		Description: `Decode bytes to text under the selected encoding.

Input is the hex-encoded HEX argument, the raw bytes of the --input file,
or raw bytes from stdin, in that order of precedence. By default the
result is a structured document; use --raw to write the decoded text
itself.

# Examples

Decode hex-encoded Latin-1 bytes:
  pycodec decode --encoding latin-1 63616665e9

Decode a file, substituting malformed sequences:
  pycodec decode --input data.bin --errors replace --raw`,
		Flags: []cli.Flag{
			encodingFlag,
			errorsFlag,
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"f"},
				Usage:   "read input bytes from file instead of the argument or stdin",
			},
			&cli.BoolFlag{
				Name:  "raw",
				Usage: "write the decoded text directly instead of a structured document",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			data, err := readByteInput(cmd)
			if err != nil {
				return err
			}

			reg, err := newRegistry()
			if err != nil {
				return err
			}

			encoding := cmd.String("encoding")
			errs := cmd.String("errors")

			text, err := reg.DecodeText(data, encoding, errs)
			if err != nil {
				return err
			}

			if cmd.Bool("raw") {
				return writeRaw(cmd.String("output"), []byte(text))
			}

			res := newConvertResult(header.KindDecodeResult)
			res.Encoding = encoding
			res.Errors = errs
			res.Text = text
			res.Len = len(data)

			return writeResult(ctx, cmd, res)
		},
	}
}

// readTextInput resolves the encode command input: argument, file, or stdin.
func readTextInput(cmd *cli.Command) (string, error) {
	if arg := cmd.Args().First(); arg != "" {
		return arg, nil
	}
	if path := cmd.String("input"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read input file %q: %w", path, err)
		}
		return string(b), nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(b), nil
}

// readByteInput resolves the decode command input: hex argument, file, or stdin.
func readByteInput(cmd *cli.Command) ([]byte, error) {
	if arg := cmd.Args().First(); arg != "" {
		b, err := hex.DecodeString(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid hex argument: %w", err)
		}
		return b, nil
	}
	if path := cmd.String("input"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read input file %q: %w", path, err)
		}
		return b, nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return b, nil
}

// writeResult serializes the payload to the configured output and format.
func writeResult(ctx context.Context, cmd *cli.Command, payload any) error {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return fmt.Errorf("unknown output format: %q", outFormat)
	}

	ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	return ser.Serialize(ctx, payload)
}

// writeRaw writes bytes to the output file, or stdout when no path is set.
func writeRaw(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write output file %q: %w", path, err)
	}
	return nil
}
