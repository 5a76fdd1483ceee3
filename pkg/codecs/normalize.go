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

package codecs

// NormalizeEncodingName returns the canonical cache key for an encoding
// name. From the first space or ASCII uppercase letter onward, spaces become
// hyphens and uppercase letters are lowered; everything before that offset
// is left untouched. Names with no space and no uppercase letter are
// returned unchanged without allocating.
//
// The asymmetry is deliberate: an already-canonical prefix is never copied
// or refolded, and cache keys depend on this exact behavior.
func NormalizeEncodingName(encoding string) string {
	i := 0
	for ; i < len(encoding); i++ {
		if c := encoding[i]; c == ' ' || ('A' <= c && c <= 'Z') {
			break
		}
	}
	if i == len(encoding) {
		return encoding
	}

	out := []byte(encoding)
	for ; i < len(out); i++ {
		switch c := out[i]; {
		case c == ' ':
			out[i] = '-'
		case 'A' <= c && c <= 'Z':
			out[i] = c + ('a' - 'A')
		}
	}
	return string(out)
}
