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

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/owljoa/RustPython/pkg/errors"
)

// searchFor builds a search function answering only the given name.
func searchFor(name string, calls *int32) SearchFunc {
	return func(encoding string) (any, error) {
		if calls != nil {
			atomic.AddInt32(calls, 1)
		}
		if encoding != name {
			return nil, nil
		}
		return identityTuple(), nil
	}
}

func TestRegistry_LookupCachesHandle(t *testing.T) {
	reg := New()
	var calls int32
	if err := reg.Register(searchFor("spam", &calls)); err != nil {
		t.Fatal(err)
	}

	first, err := reg.Lookup("spam")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	second, err := reg.Lookup("spam")
	if err != nil {
		t.Fatalf("second Lookup: %v", err)
	}

	if first != second {
		t.Error("second lookup should return the identical cached codec")
	}
	if calls != 1 {
		t.Errorf("search function invoked %d times, want 1", calls)
	}
}

func TestRegistry_LookupNormalizesName(t *testing.T) {
	reg := New()
	var seen string
	err := reg.Register(func(encoding string) (any, error) {
		seen = encoding
		return identityTuple(), nil
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := reg.Lookup("Latin 1"); err != nil {
		t.Fatal(err)
	}
	if seen != "latin-1" {
		t.Errorf("search function received %q, want normalized \"latin-1\"", seen)
	}

	// The cache key is the normalized form: a differently-spelled request
	// for the same encoding is a cache hit.
	seen = ""
	if _, err := reg.Lookup("LATIN 1"); err != nil {
		t.Fatal(err)
	}
	if seen != "" {
		t.Error("second spelling should hit the cache without invoking the search function")
	}
}

func TestRegistry_LookupUnknown(t *testing.T) {
	reg := New()
	if err := reg.Register(searchFor("spam", nil)); err != nil {
		t.Fatal(err)
	}

	_, err := reg.Lookup("no-such-encoding")
	if err == nil {
		t.Fatal("expected lookup error")
	}
	if !errors.HasCode(err, errors.ErrCodeLookup) {
		t.Errorf("want LOOKUP_ERROR, got %v", err)
	}
	if !strings.Contains(err.Error(), "no-such-encoding") {
		t.Errorf("error should name the encoding: %v", err)
	}
}

func TestRegistry_LookupEmptyPath(t *testing.T) {
	reg := New()
	if _, err := reg.Lookup("utf-8"); !errors.HasCode(err, errors.ErrCodeLookup) {
		t.Errorf("want LOOKUP_ERROR with no search functions, got %v", err)
	}
}

func TestRegistry_SearchOrder(t *testing.T) {
	reg := New()
	var order []string
	mk := func(id string, match bool) SearchFunc {
		return func(encoding string) (any, error) {
			order = append(order, id)
			if !match {
				return nil, nil
			}
			return identityTuple(), nil
		}
	}
	_ = reg.Register(mk("first", false))
	_ = reg.Register(mk("second", true))
	_ = reg.Register(mk("third", true))

	if _, err := reg.Lookup("x"); err != nil {
		t.Fatal(err)
	}
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("search order = %v, want [first second]", order)
	}
}

func TestRegistry_MalformedSearchResultIsFatal(t *testing.T) {
	reg := New()
	_ = reg.Register(func(encoding string) (any, error) {
		return []any{"bogus"}, nil
	})
	// A later search function that would match must never be consulted.
	var calls int32
	_ = reg.Register(searchFor("x", &calls))

	_, err := reg.Lookup("x")
	if !errors.HasCode(err, errors.ErrCodeType) {
		t.Fatalf("want TYPE_ERROR, got %v", err)
	}
	if calls != 0 {
		t.Error("malformed result must not be skipped")
	}
}

func TestRegistry_RegisterNil(t *testing.T) {
	reg := New()
	err := reg.Register(nil)
	if !errors.HasCode(err, errors.ErrCodeType) {
		t.Errorf("want TYPE_ERROR, got %v", err)
	}
	if !strings.Contains(err.Error(), "argument must be callable") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestRegistry_Forget(t *testing.T) {
	reg := New()
	var calls int32
	_ = reg.Register(searchFor("spam", &calls))

	if _, err := reg.Lookup("spam"); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Fatalf("calls = %d", calls)
	}

	removed := reg.Forget("SPAM")
	if removed == nil {
		t.Fatal("Forget should return the evicted codec")
	}
	if reg.Forget("spam") != nil {
		t.Error("second Forget should find nothing")
	}

	if _, err := reg.Lookup("spam"); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("lookup after Forget should re-run resolution, calls = %d", calls)
	}
}

func TestRegistry_ReentrantSearchFunction(t *testing.T) {
	reg := New()
	// The search function recurses into the registry and registers another
	// search function. Must not deadlock.
	_ = reg.Register(func(encoding string) (any, error) {
		if encoding == "outer" {
			_ = reg.Register(searchFor("inner", nil))
			if _, err := reg.Lookup("inner"); err != nil {
				return nil, err
			}
			return identityTuple(), nil
		}
		return nil, nil
	})

	if _, err := reg.Lookup("outer"); err != nil {
		t.Fatalf("reentrant lookup failed: %v", err)
	}
	if _, err := reg.Lookup("inner"); err != nil {
		t.Fatalf("inner codec should be resolvable: %v", err)
	}
}

func TestRegistry_ConcurrentFirstLookup(t *testing.T) {
	reg := New()
	release := make(chan struct{})
	_ = reg.Register(func(encoding string) (any, error) {
		<-release // hold every racer inside resolution
		return identityTuple(), nil
	})

	const n = 16
	var wg sync.WaitGroup
	results := make([]*Codec, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = reg.Lookup("racy")
		}(i)
	}
	close(release)
	wg.Wait()

	for i := 0; i < n; i++ {
		if errs[i] != nil {
			t.Fatalf("goroutine %d: %v", i, errs[i])
		}
	}
	stored, err := reg.Lookup("racy")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < n; i++ {
		if results[i] != stored {
			t.Fatalf("goroutine %d observed a different codec than the stored one", i)
		}
	}
}

func TestRegistry_EncodeDecode(t *testing.T) {
	reg := New()
	_ = reg.Register(searchFor("identity", nil))

	out, err := reg.Encode("hello", "identity", "")
	if err != nil {
		t.Fatal(err)
	}
	if string(out.([]byte)) != "hello" {
		t.Errorf("Encode = %v", out)
	}

	back, err := reg.Decode([]byte("hello"), "identity", "")
	if err != nil {
		t.Fatal(err)
	}
	if back.(string) != "hello" {
		t.Errorf("Decode = %v", back)
	}
}

func TestRegistry_EncodeTextWrongResultKind(t *testing.T) {
	reg := New()
	tup := identityTuple()
	tup.Encode = func(obj any, errs string) (Result, error) {
		return Result{Object: 42, Len: 1}, nil // not bytes
	}
	tup.Decode = func(obj any, errs string) (Result, error) {
		return Result{Object: []byte("zz"), Len: 1}, nil // not text
	}
	_ = reg.Register(func(encoding string) (any, error) { return tup, nil })

	_, err := reg.EncodeText("x", "weird", "")
	if !errors.HasCode(err, errors.ErrCodeType) {
		t.Fatalf("want TYPE_ERROR, got %v", err)
	}
	for _, want := range []string{"'weird'", "'int'", "instead of 'bytes'", "codecs.Encode()"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("encode error %q missing %q", err.Error(), want)
		}
	}

	_, err = reg.DecodeText([]byte("x"), "weird", "")
	if !errors.HasCode(err, errors.ErrCodeType) {
		t.Fatalf("want TYPE_ERROR, got %v", err)
	}
	for _, want := range []string{"'weird'", "'bytes'", "instead of 'str'", "codecs.Decode()"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("decode error %q missing %q", err.Error(), want)
		}
	}
}

func TestRegistry_LookupTextRejectsNonText(t *testing.T) {
	reg := New()
	_ = reg.Register(func(encoding string) (any, error) {
		return nonTextTuple{identityTuple()}, nil
	})

	_, err := reg.EncodeText("x", "binaryish", "")
	if !errors.HasCode(err, errors.ErrCodeLookup) {
		t.Fatalf("want LOOKUP_ERROR, got %v", err)
	}
	if !strings.Contains(err.Error(), "is not a text encoding") ||
		!strings.Contains(err.Error(), "codecs.Encode()") {
		t.Errorf("unexpected message: %v", err)
	}

	// The generic entry point still works.
	if _, err := reg.Encode("x", "binaryish", ""); err != nil {
		t.Errorf("generic Encode should accept non-text codecs: %v", err)
	}
}

func TestRegistry_ErrorHandlerTable(t *testing.T) {
	reg := New()

	for _, name := range []string{"strict", "ignore", "replace", "xmlcharrefreplace", "backslashreplace"} {
		if _, err := reg.LookupError(name); err != nil {
			t.Errorf("built-in handler %q missing: %v", name, err)
		}
	}

	_, err := reg.LookupError("surrogatepass")
	if !errors.HasCode(err, errors.ErrCodeLookup) {
		t.Fatalf("want LOOKUP_ERROR, got %v", err)
	}
	if !strings.Contains(err.Error(), "unknown error handler name 'surrogatepass'") {
		t.Errorf("unexpected message: %v", err)
	}

	custom := func(exc *UnicodeError) (string, int, error) { return "!", exc.End, nil }
	prev := reg.RegisterError("strict", custom)
	if prev == nil {
		t.Fatal("overwriting a built-in should return the previous handler")
	}
	h, err := reg.LookupError("strict")
	if err != nil {
		t.Fatal(err)
	}
	repl, _, _ := h(&UnicodeError{Kind: DecodeError, Object: []byte("a"), Start: 0, End: 1})
	if repl != "!" {
		t.Error("lookup should return the overwriting handler")
	}
}

func TestRegistry_ErrorHandlerNames(t *testing.T) {
	reg := New()
	names := reg.ErrorHandlerNames()
	want := []string{"backslashreplace", "ignore", "replace", "strict", "xmlcharrefreplace"}
	if len(names) != len(want) {
		t.Fatalf("names = %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names = %v, want %v", names, want)
		}
	}
}

func TestRegistry_Warm(t *testing.T) {
	reg := New()
	var calls int32
	_ = reg.Register(func(encoding string) (any, error) {
		atomic.AddInt32(&calls, 1)
		return identityTuple(), nil
	})

	if err := reg.Warm(context.Background(), "a", "b", "c"); err != nil {
		t.Fatal(err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}

	// All warmed names hit the cache now.
	for _, name := range []string{"a", "b", "c"} {
		if _, err := reg.Lookup(name); err != nil {
			t.Fatal(err)
		}
	}
	if calls != 3 {
		t.Errorf("warm lookups should not re-resolve, calls = %d", calls)
	}
}

func TestRegistry_WarmFailure(t *testing.T) {
	reg := New()
	_ = reg.Register(searchFor("known", nil))
	if err := reg.Warm(context.Background(), "known", "missing"); err == nil {
		t.Error("Warm should surface resolution failures")
	}
}

func TestRegistry_IncrementalConstruction(t *testing.T) {
	reg := New()
	_ = reg.Register(searchFor("identity", nil))

	if _, err := reg.IncrementalEncoder("identity", "replace"); err != nil {
		t.Fatal(err)
	}
	if _, err := reg.IncrementalDecoder("identity", ""); err != nil {
		t.Fatal(err)
	}
}

func TestDefaultEncoding(t *testing.T) {
	if DefaultEncoding != "utf-8" {
		t.Errorf("DefaultEncoding = %q", DefaultEncoding)
	}
	if NormalizeEncodingName(DefaultEncoding) != DefaultEncoding {
		t.Error("the default encoding name must already be canonical")
	}
}
