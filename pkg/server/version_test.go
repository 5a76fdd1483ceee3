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
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNegotiateAPIVersion(t *testing.T) {
	tests := []struct {
		name   string
		accept string
		want   string
	}{
		{"no header", "", "v1"},
		{"generic json", "application/json", "v1"},
		{"vendor v1", "application/vnd.rustpython.codec.v1+json", "v1"},
		{"vendor v1 with params", "application/vnd.rustpython.codec.v1+json; q=0.9", "v1"},
		{"unsupported version", "application/vnd.rustpython.codec.v2+json", "v1"},
		{"multiple types", "text/html, application/vnd.rustpython.codec.v1+json", "v1"},
		{"wildcard", "*/*", "v1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.accept != "" {
				r.Header.Set("Accept", tc.accept)
			}
			assert.Equal(t, tc.want, negotiateAPIVersion(r))
		})
	}
}

func TestSetAPIVersionHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	SetAPIVersionHeader(rec, "v1")
	assert.Equal(t, "v1", rec.Header().Get("X-API-Version"))
}

func TestVersionMiddlewareSetsHeader(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, DefaultAPIVersion, rec.Header().Get("X-API-Version"))
}
