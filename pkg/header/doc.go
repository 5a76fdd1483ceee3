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

// Package header provides common header types for pycodec result documents.
//
// This package defines the Header type used across encode and decode results
// and the listing documents to provide consistent metadata and versioning
// information.
//
// # Usage
//
// Create a header for an encode result:
//
//	h := header.New(
//	    header.WithKind(header.KindEncodeResult),
//	    header.WithAPIVersion("pycodec/v1"),
//	    header.WithMetadata("encoding", "utf-8"),
//	)
//
// # Serialization
//
// Headers serialize consistently to JSON and YAML:
//
//	{
//	  "kind": "EncodeResult",
//	  "apiVersion": "pycodec/v1",
//	  "metadata": {
//	    "timestamp": "2026-08-29T10:30:00Z",
//	    "version": "v1.0.0"
//	  }
//	}
//
// # API Versioning
//
// The APIVersion field enables evolution of the result formats. Consumers
// should check APIVersion before parsing:
//
//	if h.APIVersion != "pycodec/v1" {
//	    return fmt.Errorf("unsupported API version: %s", h.APIVersion)
//	}
package header
