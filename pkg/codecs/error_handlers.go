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
	"strconv"
	"strings"

	"github.com/owljoa/RustPython/pkg/errors"
)

// ErrorHandler is an error-recovery policy. It consumes one error
// description and either propagates a failure or returns the replacement
// text plus the input offset at which the codec resumes. Recovery always
// resumes at the description's End offset; handlers differ only in how they
// render the faulty span.
type ErrorHandler func(exc *UnicodeError) (replacement string, resume int, err error)

// Names of the five handlers pre-registered in every Registry.
const (
	HandlerStrict            = "strict"
	HandlerIgnore            = "ignore"
	HandlerReplace           = "replace"
	HandlerXMLCharRefReplace = "xmlcharrefreplace"
	HandlerBackslashReplace  = "backslashreplace"
)

func badExcValue() error {
	return errors.New(errors.ErrCodeType, "codec must pass exception instance")
}

func badErrKind(kind ErrorKind) error {
	return errors.Newf(errors.ErrCodeType,
		"don't know how to handle %s in error callback", kind)
}

// StrictErrors re-raises the error description unchanged.
func StrictErrors(exc *UnicodeError) (string, int, error) {
	if exc == nil {
		return "", 0, badExcValue()
	}
	return "", 0, exc
}

// IgnoreErrors drops the faulty span and resumes directly after it.
func IgnoreErrors(exc *UnicodeError) (string, int, error) {
	if exc == nil {
		return "", 0, badExcValue()
	}
	switch exc.Kind {
	case DecodeError, EncodeError, TranslateError:
	default:
		return "", 0, badErrKind(exc.Kind)
	}
	_, end, err := exc.span()
	if err != nil {
		return "", 0, err
	}
	return "", end, nil
}

// ReplaceErrors substitutes the faulty span: one U+FFFD for a decode error
// regardless of span width, '?' per character for an encode error, and
// U+FFFD per character for a translate error.
func ReplaceErrors(exc *UnicodeError) (string, int, error) {
	const replacementChar = "\uFFFD"
	if exc == nil {
		return "", 0, badExcValue()
	}
	switch exc.Kind {
	case DecodeError:
		_, end, err := exc.span()
		if err != nil {
			return "", 0, err
		}
		return replacementChar, end, nil
	case EncodeError:
		start, end, err := exc.span()
		if err != nil {
			return "", 0, err
		}
		return strings.Repeat("?", end-start), end, nil
	case TranslateError:
		start, end, err := exc.span()
		if err != nil {
			return "", 0, err
		}
		return strings.Repeat(replacementChar, end-start), end, nil
	default:
		return "", 0, badErrKind(exc.Kind)
	}
}

// XMLCharRefReplaceErrors renders each character of the faulty span as a
// decimal numeric character reference. It applies to encode and translate
// errors only.
func XMLCharRefReplaceErrors(exc *UnicodeError) (string, int, error) {
	if exc == nil {
		return "", 0, badExcValue()
	}
	if exc.Kind != EncodeError && exc.Kind != TranslateError {
		return "", 0, badErrKind(exc.Kind)
	}
	start, end, err := exc.span()
	if err != nil {
		return "", 0, err
	}
	s, err := exc.textObject()
	if err != nil {
		return "", 0, err
	}

	span := charSpan(s, start, end)
	// rough guess: 3 decimal digits plus the &#; framing
	var out strings.Builder
	out.Grow(len(span) * 6)
	for _, c := range span {
		out.WriteString("&#")
		out.WriteString(strconv.Itoa(int(c)))
		out.WriteByte(';')
	}
	return out.String(), end, nil
}

// BackslashReplaceErrors renders the faulty span as backslash escapes: \xhh
// per byte for decode errors; \xhh, \uhhhh, or \Uhhhhhhhh per character for
// encode and translate errors, picked by codepoint magnitude.
func BackslashReplaceErrors(exc *UnicodeError) (string, int, error) {
	if exc == nil {
		return "", 0, badExcValue()
	}
	if exc.Kind == DecodeError {
		start, end, err := exc.span()
		if err != nil {
			return "", 0, err
		}
		b, err := exc.bytesObject()
		if err != nil {
			return "", 0, err
		}
		lo, hi := clampSpan(start, end, len(b))
		var out strings.Builder
		out.Grow(4 * (hi - lo))
		for _, c := range b[lo:hi] {
			fmt.Fprintf(&out, `\x%02x`, c)
		}
		return out.String(), end, nil
	}
	if exc.Kind != EncodeError && exc.Kind != TranslateError {
		return "", 0, badErrKind(exc.Kind)
	}
	start, end, err := exc.span()
	if err != nil {
		return "", 0, err
	}
	s, err := exc.textObject()
	if err != nil {
		return "", 0, err
	}

	// minimum 4 output bytes per char: \xhh
	var out strings.Builder
	out.Grow(4 * (end - start))
	for _, c := range charSpan(s, start, end) {
		switch {
		case c >= 0x10000:
			fmt.Fprintf(&out, `\U%08x`, c)
		case c >= 0x100:
			fmt.Fprintf(&out, `\u%04x`, c)
		default:
			fmt.Fprintf(&out, `\x%02x`, c)
		}
	}
	return out.String(), end, nil
}

func clampSpan(start, end, n int) (int, int) {
	if start > n {
		start = n
	}
	if end > n {
		end = n
	}
	return start, end
}
