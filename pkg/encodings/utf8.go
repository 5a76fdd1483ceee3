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

package encodings

import (
	"strings"
	"unicode/utf8"

	"github.com/owljoa/RustPython/pkg/codecs"
)

func (p *Provider) utf8Tuple() codecs.Tuple {
	return codecs.Tuple{
		Encode: p.utf8Encode,
		Decode: p.utf8Decode,
		IncrementalEncoder: func(errs string) (any, error) {
			return &IncrementalEncoder{encode: p.utf8Encode, errs: errs}, nil
		},
		IncrementalDecoder: func(errs string) (any, error) {
			return &IncrementalDecoder{decode: p.utf8Decode, errs: errs, tail: utf8TailLen}, nil
		},
	}
}

// utf8Encode converts text to its UTF-8 bytes. Host strings are UTF-8 by
// construction, so well-formed input is a straight copy; bytes that do not
// form a valid sequence are routed through the error handler one character
// position at a time.
func (p *Provider) utf8Encode(obj any, errs string) (codecs.Result, error) {
	s, err := asText(obj, encUTF8)
	if err != nil {
		return codecs.Result{}, err
	}
	n := utf8.RuneCountInString(s)
	if utf8.ValidString(s) {
		return codecs.Result{Object: []byte(s), Len: n}, nil
	}

	out := make([]byte, 0, len(s))
	pos := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			exc := &codecs.UnicodeError{
				Kind:     codecs.EncodeError,
				Encoding: encUTF8,
				Object:   s,
				Start:    pos,
				End:      pos + 1,
				Reason:   "surrogates not allowed",
			}
			repl, resume, herr := p.recover(errs, exc)
			if herr != nil {
				return codecs.Result{}, herr
			}
			out = append(out, repl...)
			if resume <= pos {
				resume = pos + 1
			}
			for pos < resume && i < len(s) {
				_, sz := utf8.DecodeRuneInString(s[i:])
				i += sz
				pos++
			}
			continue
		}
		out = utf8.AppendRune(out, r)
		i += size
		pos++
	}
	return codecs.Result{Object: out, Len: n}, nil
}

// utf8Decode converts UTF-8 bytes to text, classifying each malformed
// sequence and recovering through the error handler.
func (p *Provider) utf8Decode(obj any, errs string) (codecs.Result, error) {
	b, err := asBytes(obj, encUTF8)
	if err != nil {
		return codecs.Result{}, err
	}
	if utf8.Valid(b) {
		return codecs.Result{Object: string(b), Len: len(b)}, nil
	}

	var out strings.Builder
	out.Grow(len(b))
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			end, reason := classifyUTF8Fault(b, i)
			exc := &codecs.UnicodeError{
				Kind:     codecs.DecodeError,
				Encoding: encUTF8,
				Object:   b,
				Start:    i,
				End:      end,
				Reason:   reason,
			}
			repl, resume, herr := p.recover(errs, exc)
			if herr != nil {
				return codecs.Result{}, herr
			}
			out.WriteString(repl)
			if resume <= i {
				// A handler must move forward or decoding would never end.
				resume = i + 1
			}
			i = resume
			continue
		}
		out.WriteRune(r)
		i += size
	}
	return codecs.Result{Object: out.String(), Len: len(b)}, nil
}

// classifyUTF8Fault reports the extent and reason of the malformed sequence
// starting at i. The returned end is the first byte not part of the fault.
func classifyUTF8Fault(b []byte, i int) (end int, reason string) {
	c := b[i]
	var want int
	switch {
	case c < 0xC2 || c > 0xF4:
		return i + 1, "invalid start byte"
	case c < 0xE0:
		want = 2
	case c < 0xF0:
		want = 3
	default:
		want = 4
	}
	j := i + 1
	for j < i+want && j < len(b) && b[j]&0xC0 == 0x80 {
		j++
	}
	if j == len(b) && j < i+want {
		return j, "unexpected end of data"
	}
	return j, "invalid continuation byte"
}

// utf8TailLen reports how many trailing bytes of buf start a sequence that
// is incomplete but could still be completed by more input.
func utf8TailLen(buf []byte) int {
	for back := 1; back <= 3 && back <= len(buf); back++ {
		c := buf[len(buf)-back]
		if c&0xC0 == 0x80 {
			continue
		}
		var want int
		switch {
		case c < 0x80:
			want = 1
		case c >= 0xC2 && c < 0xE0:
			want = 2
		case c >= 0xE0 && c < 0xF0:
			want = 3
		case c >= 0xF0 && c <= 0xF4:
			want = 4
		default:
			return 0
		}
		if want > back {
			return back
		}
		return 0
	}
	return 0
}
