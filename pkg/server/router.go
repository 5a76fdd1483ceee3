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
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/owljoa/RustPython/pkg/errors"
	"github.com/owljoa/RustPython/pkg/serializer"
)

// setupRoutes registers all HTTP routes on the given mux.
func (s *Server) setupRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", s.withMiddleware(s.handleDefault))
	mux.HandleFunc("/health", s.withMiddleware(s.handleHealth))
	mux.HandleFunc("/ready", s.withMiddleware(s.handleReady))
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/v1/encode", s.withMiddleware(s.handleEncode))
	mux.HandleFunc("/v1/decode", s.withMiddleware(s.handleDecode))
	mux.HandleFunc("/v1/encodings", s.withMiddleware(s.handleEncodings))
	mux.HandleFunc("/v1/errors", s.withMiddleware(s.handleErrorHandlers))
}

// handleDefault lists the available routes.
func (s *Server) handleDefault(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.writeError(w, r, http.StatusNotFound, errors.ErrCodeInvalidRequest, "Resource not found", false, nil)
		return
	}

	routes := map[string]string{
		"GET /":             "this route listing",
		"GET /health":       "liveness probe",
		"GET /ready":        "readiness probe",
		"GET /metrics":      "Prometheus metrics",
		"POST /v1/encode":   "encode text to bytes",
		"POST /v1/decode":   "decode bytes to text",
		"GET /v1/encodings": "list registered encodings",
		"GET /v1/errors":    "list registered error handlers",
	}

	serializer.RespondJSON(w, http.StatusOK, routes)
}
