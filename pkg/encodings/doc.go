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

// Package encodings provides the built-in codec set and registers it on a
// codec registry as a single search function.
//
// # Codecs
//
// utf-8 and ascii are implemented directly so their error paths can report
// exact byte and character spans and recover through the registered error
// handlers. Single-byte character maps (latin-1, windows-1252, koi8-r and
// the rest of the WHATWG index) are driven per code unit through
// golang.org/x/text/encoding/charmap. utf-16 and its byte-order variants,
// plus every multi-byte encoding the WHATWG index knows, go through the
// golang.org/x/text transform machinery.
//
// hex and base64 are bytes-to-bytes pseudo-codecs. They carry the non-text
// marker, so the text-only entry points reject them and callers are pointed
// at the generic ones.
//
// # Names
//
// Lookup accepts the common alias spellings (u8, latin1, iso-8859-1, 646,
// us-ascii, ...) after registry normalization. Unknown names fall through to
// the WHATWG name index before the search function reports no match.
package encodings
