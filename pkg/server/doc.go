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

// Package server implements the codec resolution HTTP API.
//
// The server exposes the codec registry over HTTP: text conversion through
// registered codecs, the list of built-in encodings, and the error-handler
// table. It follows production-grade service conventions:
//
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request ID tracking for distributed tracing
//   - Panic recovery for resilience
//   - Prometheus metrics on /metrics
//   - Graceful shutdown handling
//   - Health and readiness probes
//
// # Usage
//
// Basic server startup:
//
//	package main
//
//	import (
//	    "github.com/owljoa/RustPython/pkg/server"
//	)
//
//	func main() {
//	    if err := server.Run(); err != nil {
//	        panic(err)
//	    }
//	}
//
// Custom configuration:
//
//	config := server.DefaultConfig()
//	config.Port = 9090
//	config.RateLimit = 200  // 200 requests/sec
//	config.RateLimitBurst = 400
//
//	if err := server.RunWithConfig(config); err != nil {
//	    panic(err)
//	}
//
// # API Endpoints
//
//   - GET  /             service description and route list
//   - GET  /health       liveness probe
//   - GET  /ready        readiness probe
//   - GET  /metrics      Prometheus metrics
//   - POST /v1/encode    encode text under an error policy
//   - POST /v1/decode    decode bytes under an error policy
//   - GET  /v1/encodings built-in encoding names
//   - GET  /v1/errors    registered error-handler names
package server
