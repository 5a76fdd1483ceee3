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
	"strings"
)

const (
	// DefaultAPIVersion is the default API version used when none is specified
	DefaultAPIVersion = "v1"

	// apiVersionHeader is the response header carrying the negotiated version
	apiVersionHeader = "X-API-Version"

	// vendorMIMEPrefix is the Accept media type prefix used for version negotiation
	vendorMIMEPrefix = "application/vnd.rustpython.codec."
)

// negotiateAPIVersion determines the API version from the request.
// Clients may request a version via the Accept header using the vendor
// media type, e.g. "application/vnd.rustpython.codec.v1+json".
// Unrecognized or missing versions fall back to DefaultAPIVersion.
func negotiateAPIVersion(r *http.Request) string {
	accept := r.Header.Get("Accept")
	if accept == "" {
		return DefaultAPIVersion
	}

	for _, part := range strings.Split(accept, ",") {
		mediaType := strings.TrimSpace(part)
		// Drop any media type parameters (e.g. ";q=0.9")
		if idx := strings.Index(mediaType, ";"); idx >= 0 {
			mediaType = strings.TrimSpace(mediaType[:idx])
		}
		if !strings.HasPrefix(mediaType, vendorMIMEPrefix) {
			continue
		}
		rest := strings.TrimPrefix(mediaType, vendorMIMEPrefix)
		// Strip the suffix, e.g. "+json"
		if idx := strings.Index(rest, "+"); idx >= 0 {
			rest = rest[:idx]
		}
		if isValidAPIVersion(rest) {
			return rest
		}
	}

	return DefaultAPIVersion
}

// isValidAPIVersion reports whether the server supports the given version.
func isValidAPIVersion(version string) bool {
	return version == "v1"
}

// SetAPIVersionHeader sets the negotiated API version on the response.
func SetAPIVersionHeader(w http.ResponseWriter, version string) {
	w.Header().Set(apiVersionHeader, version)
}
