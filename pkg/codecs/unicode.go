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
	"fmt"
	"strings"

	"github.com/owljoa/RustPython/pkg/errors"
)

// ErrorKind discriminates the three Unicode failure shapes an error handler
// can be asked to recover from.
type ErrorKind int

const (
	// DecodeError reports malformed bytes while decoding. Span offsets
	// index into the original byte sequence.
	DecodeError ErrorKind = iota
	// EncodeError reports unencodable text while encoding. Span offsets
	// index characters of the original text.
	EncodeError
	// TranslateError reports untranslatable text. Span offsets index
	// characters of the original text.
	TranslateError
)

// String returns the runtime-level exception name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case DecodeError:
		return "UnicodeDecodeError"
	case EncodeError:
		return "UnicodeEncodeError"
	case TranslateError:
		return "UnicodeTranslateError"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Code maps the kind to its structured error code.
func (k ErrorKind) Code() errors.ErrorCode {
	switch k {
	case DecodeError:
		return errors.ErrCodeUnicodeDecode
	case EncodeError:
		return errors.ErrCodeUnicodeEncode
	default:
		return errors.ErrCodeUnicodeTranslate
	}
}

// UnicodeError describes one encode, decode, or translate failure. It is
// produced by a codec's error-raising path, handed to exactly one error
// handler, and discarded. Object holds the original input: a []byte for
// decode errors, a string for encode and translate errors. [Start, End) is
// the half-open faulty span in Object's units (bytes or characters).
type UnicodeError struct {
	Kind     ErrorKind
	Encoding string
	Object   any
	Start    int
	End      int
	Reason   string
}

// Error implements the error interface with reference-runtime message shapes.
func (e *UnicodeError) Error() string {
	switch e.Kind {
	case DecodeError:
		if b, ok := e.Object.([]byte); ok && e.End == e.Start+1 && e.Start >= 0 && e.Start < len(b) {
			return fmt.Sprintf("'%s' codec can't decode byte 0x%02x in position %d: %s",
				e.Encoding, b[e.Start], e.Start, e.Reason)
		}
		return fmt.Sprintf("'%s' codec can't decode bytes in position %d-%d: %s",
			e.Encoding, e.Start, e.End-1, e.Reason)
	case EncodeError:
		if c, ok := e.faultyChar(); ok {
			return fmt.Sprintf("'%s' codec can't encode character %q in position %d: %s",
				e.Encoding, c, e.Start, e.Reason)
		}
		return fmt.Sprintf("'%s' codec can't encode characters in position %d-%d: %s",
			e.Encoding, e.Start, e.End-1, e.Reason)
	case TranslateError:
		if c, ok := e.faultyChar(); ok {
			return fmt.Sprintf("can't translate character %q in position %d: %s",
				c, e.Start, e.Reason)
		}
		return fmt.Sprintf("can't translate characters in position %d-%d: %s",
			e.Start, e.End-1, e.Reason)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
	}
}

// faultyChar returns the single character of a one-character faulty span.
func (e *UnicodeError) faultyChar() (rune, bool) {
	s, ok := e.Object.(string)
	if !ok || e.End != e.Start+1 {
		return 0, false
	}
	for _, r := range charSpan(s, e.Start, e.End) {
		return r, true
	}
	return 0, false
}

// span validates and returns the half-open faulty range.
func (e *UnicodeError) span() (start, end int, err error) {
	if e.Start < 0 || e.End < e.Start {
		return 0, 0, errors.Newf(errors.ErrCodeValue,
			"invalid error span [%d, %d)", e.Start, e.End)
	}
	return e.Start, e.End, nil
}

// bytesObject returns the original input of a decode error.
func (e *UnicodeError) bytesObject() ([]byte, error) {
	b, ok := e.Object.([]byte)
	if !ok {
		return nil, errors.Newf(errors.ErrCodeType,
			"a bytes object is required, not '%s'", KindName(e.Object))
	}
	return b, nil
}

// textObject returns the original input of an encode or translate error.
func (e *UnicodeError) textObject() (string, error) {
	s, ok := e.Object.(string)
	if !ok {
		return "", errors.Newf(errors.ErrCodeType,
			"a str object is required, not '%s'", KindName(e.Object))
	}
	return s, nil
}

// KindName maps a Go value to the runtime-level name used in error messages.
func KindName(v any) string {
	switch v.(type) {
	case nil:
		return "NoneType"
	case string:
		return "str"
	case []byte:
		return "bytes"
	case bool:
		return "bool"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "int"
	case float32, float64:
		return "float"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// charSpan returns the substring covering character positions [start, end).
// Out-of-range positions clamp to the string's ends.
func charSpan(s string, start, end int) string {
	if start >= end {
		return ""
	}
	var b strings.Builder
	i := 0
	for _, r := range s {
		if i >= end {
			break
		}
		if i >= start {
			b.WriteRune(r)
		}
		i++
	}
	return b.String()
}
