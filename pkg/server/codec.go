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
	"encoding/json"
	"net/http"
	"unicode/utf8"

	"github.com/owljoa/RustPython/pkg/encodings"
	"github.com/owljoa/RustPython/pkg/errors"
	"github.com/owljoa/RustPython/pkg/serializer"
)

// decodeRequest parses a JSON request body into req, enforcing the
// configured body size limit. It writes the error response itself and
// returns false when the request cannot be used.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request, req *ConvertRequest) bool {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		s.writeError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed, use POST", false, nil)
		return false
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxRequestBytes)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Invalid request body: "+err.Error(), false, nil)
		return false
	}

	if req.Encoding == "" {
		s.writeError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Missing required field: encoding", false, nil)
		return false
	}

	return true
}

// handleEncode converts text to bytes under the requested encoding.
func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	var req ConvertRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}

	data, err := s.registry.EncodeText(req.Text, req.Encoding, req.Errors)
	if err != nil {
		s.writeCodecError(w, r, err)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, ConvertResponse{
		Encoding: req.Encoding,
		Errors:   req.Errors,
		Data:     data,
		Len:      utf8.RuneCountInString(req.Text),
	})
}

// handleDecode converts bytes to text under the requested encoding.
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	var req ConvertRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}

	text, err := s.registry.DecodeText(req.Data, req.Encoding, req.Errors)
	if err != nil {
		s.writeCodecError(w, r, err)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, ConvertResponse{
		Encoding: req.Encoding,
		Errors:   req.Errors,
		Text:     text,
		Len:      len(req.Data),
	})
}

// handleEncodings lists the encodings served by the built-in provider.
func (s *Server) handleEncodings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		s.writeError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed, use GET", false, nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, EncodingsResponse{
		Encodings: encodings.Names(),
	})
}

// handleErrorHandlers lists the registered error handler names.
func (s *Server) handleErrorHandlers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		s.writeError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed, use GET", false, nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, ErrorHandlersResponse{
		Handlers: s.registry.ErrorHandlerNames(),
	})
}
