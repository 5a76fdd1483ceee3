// Package cli implements the command-line interface for the pycodec tool.
//
// # Overview
//
// The pycodec CLI exposes the codec registry from the command line: encoding
// text to bytes, decoding bytes back to text, listing the available encodings
// and error handlers, and running the codec HTTP service.
//
// # Commands
//
// encode - Encode text to bytes:
//
//	pycodec encode --encoding ascii --errors replace "héllo"
//
// Encodes the argument, an input file, or stdin under the selected encoding.
// The byte payload is hex-encoded in the structured output; --raw writes the
// bytes themselves.
//
// decode - Decode bytes to text:
//
//	pycodec decode --encoding latin-1 63616665e9
//
// Decodes a hex argument, the raw bytes of an input file, or stdin.
//
// encodings - List the built-in encodings:
//
//	pycodec encodings
//
// errors - List the registered error handlers:
//
//	pycodec errors
//
// serve - Run the codec HTTP service:
//
//	pycodec serve --port 9090
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (default: warn)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Formats
//
// The structured commands accept --format json (default), yaml, or table,
// and --output to write to a file instead of stdout.
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, lookup failure, conversion failure)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized packages:
//   - pkg/codecs - Codec registry and error handler table
//   - pkg/encodings - Built-in encodings provider
//   - pkg/server - HTTP service
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/owljoa/RustPython/pkg/cli.version=1.0.0'"
package cli
