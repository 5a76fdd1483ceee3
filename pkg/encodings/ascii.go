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

	"github.com/owljoa/RustPython/pkg/codecs"
)

func (p *Provider) asciiTuple() codecs.Tuple {
	return codecs.Tuple{
		Encode: p.asciiEncode,
		Decode: p.asciiDecode,
		IncrementalEncoder: func(errs string) (any, error) {
			return &IncrementalEncoder{encode: p.asciiEncode, errs: errs}, nil
		},
		IncrementalDecoder: func(errs string) (any, error) {
			return &IncrementalDecoder{decode: p.asciiDecode, errs: errs}, nil
		},
	}
}

// asciiEncode maps each character below U+0080 to its byte. Consecutive
// unencodable characters are reported to the error handler as one span, and
// the handler's replacement text must itself be ASCII or the original error
// is raised.
func (p *Provider) asciiEncode(obj any, errs string) (codecs.Result, error) {
	s, err := asText(obj, encASCII)
	if err != nil {
		return codecs.Result{}, err
	}
	runes := []rune(s)
	out := make([]byte, 0, len(runes))
	for i := 0; i < len(runes); {
		if runes[i] < 0x80 {
			out = append(out, byte(runes[i]))
			i++
			continue
		}
		j := i + 1
		for j < len(runes) && runes[j] >= 0x80 {
			j++
		}
		exc := &codecs.UnicodeError{
			Kind:     codecs.EncodeError,
			Encoding: encASCII,
			Object:   s,
			Start:    i,
			End:      j,
			Reason:   "ordinal not in range(128)",
		}
		repl, resume, herr := p.recover(errs, exc)
		if herr != nil {
			return codecs.Result{}, herr
		}
		for _, r := range repl {
			if r >= 0x80 {
				return codecs.Result{}, exc
			}
			out = append(out, byte(r))
		}
		if resume <= i {
			resume = j
		}
		i = resume
	}
	return codecs.Result{Object: out, Len: len(runes)}, nil
}

// asciiDecode maps each byte below 0x80 to its character.
func (p *Provider) asciiDecode(obj any, errs string) (codecs.Result, error) {
	b, err := asBytes(obj, encASCII)
	if err != nil {
		return codecs.Result{}, err
	}
	var out strings.Builder
	out.Grow(len(b))
	for i := 0; i < len(b); {
		if b[i] < 0x80 {
			out.WriteByte(b[i])
			i++
			continue
		}
		exc := &codecs.UnicodeError{
			Kind:     codecs.DecodeError,
			Encoding: encASCII,
			Object:   b,
			Start:    i,
			End:      i + 1,
			Reason:   "ordinal not in range(128)",
		}
		repl, resume, herr := p.recover(errs, exc)
		if herr != nil {
			return codecs.Result{}, herr
		}
		out.WriteString(repl)
		if resume <= i {
			resume = i + 1
		}
		i = resume
	}
	return codecs.Result{Object: out.String(), Len: len(b)}, nil
}
