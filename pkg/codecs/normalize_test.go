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

import "testing"

func TestNormalizeEncodingName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"uppercase", "UTF8", "utf8"},
		{"space becomes hyphen", "Latin 1", "latin-1"},
		{"already canonical", "utf-8", "utf-8"},
		{"empty", "", ""},
		{"only prefix preserved", "abcDEF", "abcdef"},
		{"space only trigger", "iso 8859 1", "iso-8859-1"},
		{"mixed trigger midway", "aB c", "ab-c"},
		{"hyphen untouched", "utf_8", "utf_8"},
		{"non-ascii left alone", "código", "código"},
		{"trailing space", "ascii ", "ascii-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeEncodingName(tt.input); got != tt.want {
				t.Errorf("NormalizeEncodingName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// The prefix before the first trigger character must never be folded, even
// when it contains characters a full-string fold would rewrite.
func TestNormalizeEncodingName_PrefixAsymmetry(t *testing.T) {
	// The hyphen already in the prefix stays; the space after the first
	// uppercase letter is rewritten.
	if got := NormalizeEncodingName("x-macJapanese Extra"); got != "x-macjapanese-extra" {
		t.Errorf("got %q", got)
	}
}

func TestNormalizeEncodingName_Idempotent(t *testing.T) {
	inputs := []string{"UTF8", "Latin 1", "utf-8", "", "A B C", "mixedCase name", "ASCII"}
	for _, in := range inputs {
		once := NormalizeEncodingName(in)
		twice := NormalizeEncodingName(once)
		if once != twice {
			t.Errorf("not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalizeEncodingName_NoAllocationPath(t *testing.T) {
	// Already-normalized names are returned unchanged.
	in := "utf-8"
	if got := NormalizeEncodingName(in); got != in {
		t.Errorf("got %q, want input unchanged", got)
	}
	allocs := testing.AllocsPerRun(100, func() {
		_ = NormalizeEncodingName("latin-1")
	})
	if allocs != 0 {
		t.Errorf("expected zero allocations on the fast path, got %v", allocs)
	}
}
