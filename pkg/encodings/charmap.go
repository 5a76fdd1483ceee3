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

	"golang.org/x/text/encoding/charmap"

	"github.com/owljoa/RustPython/pkg/codecs"
)

// charmapCodec drives a single-byte character map per code unit so error
// spans are exact and recovery goes through the handler table.
type charmapCodec struct {
	p    *Provider
	name string
	cm   *charmap.Charmap
}

func (p *Provider) charmapTuple(name string, cm *charmap.Charmap) codecs.Tuple {
	c := &charmapCodec{p: p, name: name, cm: cm}
	return codecs.Tuple{
		Encode: c.encode,
		Decode: c.decode,
		IncrementalEncoder: func(errs string) (any, error) {
			return &IncrementalEncoder{encode: c.encode, errs: errs}, nil
		},
		IncrementalDecoder: func(errs string) (any, error) {
			return &IncrementalDecoder{decode: c.decode, errs: errs}, nil
		},
	}
}

func (c *charmapCodec) encode(obj any, errs string) (codecs.Result, error) {
	s, err := asText(obj, c.name)
	if err != nil {
		return codecs.Result{}, err
	}
	runes := []rune(s)
	out := make([]byte, 0, len(runes))
	for i := 0; i < len(runes); {
		if b, ok := c.cm.EncodeRune(runes[i]); ok {
			out = append(out, b)
			i++
			continue
		}
		j := i + 1
		for j < len(runes) {
			if _, ok := c.cm.EncodeRune(runes[j]); ok {
				break
			}
			j++
		}
		exc := &codecs.UnicodeError{
			Kind:     codecs.EncodeError,
			Encoding: c.name,
			Object:   s,
			Start:    i,
			End:      j,
			Reason:   "character maps to <undefined>",
		}
		repl, resume, herr := c.p.recover(errs, exc)
		if herr != nil {
			return codecs.Result{}, herr
		}
		for _, r := range repl {
			b, ok := c.cm.EncodeRune(r)
			if !ok {
				// The replacement has to survive the same map.
				return codecs.Result{}, exc
			}
			out = append(out, b)
		}
		if resume <= i {
			resume = j
		}
		i = resume
	}
	return codecs.Result{Object: out, Len: len(runes)}, nil
}

func (c *charmapCodec) decode(obj any, errs string) (codecs.Result, error) {
	b, err := asBytes(obj, c.name)
	if err != nil {
		return codecs.Result{}, err
	}
	var out strings.Builder
	out.Grow(len(b))
	for i := 0; i < len(b); {
		r := c.cm.DecodeByte(b[i])
		if r != utf8.RuneError {
			out.WriteRune(r)
			i++
			continue
		}
		exc := &codecs.UnicodeError{
			Kind:     codecs.DecodeError,
			Encoding: c.name,
			Object:   b,
			Start:    i,
			End:      i + 1,
			Reason:   "character maps to <undefined>",
		}
		repl, resume, herr := c.p.recover(errs, exc)
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
