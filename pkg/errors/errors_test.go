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

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestStructuredError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *StructuredError
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrCodeLookup, "unknown encoding: bogus"),
			want: "[LOOKUP_ERROR] unknown encoding: bogus",
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeType, "bad codec tuple", errors.New("boom")),
			want: "[TYPE_ERROR] bad codec tuple: boom",
		},
		{
			name: "formatted",
			err:  Newf(ErrCodeLookup, "unknown error handler name '%s'", "surrogate"),
			want: "[LOOKUP_ERROR] unknown error handler name 'surrogate'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStructuredError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}

	var se *StructuredError
	if !errors.As(err, &se) {
		t.Fatal("errors.As should extract StructuredError")
	}
	if se.Code != ErrCodeInternal {
		t.Errorf("Code = %s, want %s", se.Code, ErrCodeInternal)
	}
}

func TestHasCode(t *testing.T) {
	err := New(ErrCodeType, "codec search functions must return 4-tuples")

	if !HasCode(err, ErrCodeType) {
		t.Error("HasCode should match the error's own code")
	}
	if HasCode(err, ErrCodeLookup) {
		t.Error("HasCode should not match a different code")
	}
	if HasCode(errors.New("plain"), ErrCodeType) {
		t.Error("HasCode should not match a plain error")
	}
	if HasCode(nil, ErrCodeType) {
		t.Error("HasCode should not match nil")
	}

	// Wrapped via %w still matches.
	wrapped := fmt.Errorf("context: %w", err)
	if !HasCode(wrapped, ErrCodeType) {
		t.Error("HasCode should match through fmt wrapping")
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(New(ErrCodeValue, "bad span")); got != ErrCodeValue {
		t.Errorf("CodeOf = %s, want %s", got, ErrCodeValue)
	}
	if got := CodeOf(errors.New("plain")); got != ErrCodeInternal {
		t.Errorf("CodeOf(plain) = %s, want %s", got, ErrCodeInternal)
	}
}

func TestNewWithContext(t *testing.T) {
	err := NewWithContext(ErrCodeInvalidRequest, "bad request", map[string]any{
		"encoding": "utf-8",
	})
	if err.Context["encoding"] != "utf-8" {
		t.Error("context should be preserved")
	}

	werr := WrapWithContext(ErrCodeInternal, "bad state", errors.New("x"), map[string]any{"n": 1})
	if werr.Context["n"] != 1 || werr.Cause == nil {
		t.Error("wrapped context and cause should be preserved")
	}
}
