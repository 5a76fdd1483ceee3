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
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/owljoa/RustPython/pkg/codecs"
	"github.com/owljoa/RustPython/pkg/errors"
)

// transformCodec adapts a golang.org/x/text encoding. The transform
// machinery reports failures without per-position detail, so codecs built
// on it propagate the transformer's error instead of routing spans through
// the handler table.
type transformCodec struct {
	name string
	enc  encoding.Encoding
}

func (p *Provider) transformTuple(name string, enc encoding.Encoding) codecs.Tuple {
	c := transformCodec{name: name, enc: enc}
	return codecs.Tuple{
		Encode: c.encode,
		Decode: c.decode,
		IncrementalEncoder: func(errs string) (any, error) {
			return &transformEncoder{name: name, tr: enc.NewEncoder()}, nil
		},
		IncrementalDecoder: func(errs string) (any, error) {
			return &transformDecoder{name: name, tr: enc.NewDecoder()}, nil
		},
	}
}

func (c transformCodec) encode(obj any, errs string) (codecs.Result, error) {
	s, err := asText(obj, c.name)
	if err != nil {
		return codecs.Result{}, err
	}
	b, err := c.enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return codecs.Result{}, errors.Wrap(errors.ErrCodeUnicodeEncode,
			fmt.Sprintf("'%s' codec can't encode input", c.name), err)
	}
	return codecs.Result{Object: b, Len: utf8.RuneCountInString(s)}, nil
}

func (c transformCodec) decode(obj any, errs string) (codecs.Result, error) {
	b, err := asBytes(obj, c.name)
	if err != nil {
		return codecs.Result{}, err
	}
	s, err := c.enc.NewDecoder().Bytes(b)
	if err != nil {
		return codecs.Result{}, errors.Wrap(errors.ErrCodeUnicodeDecode,
			fmt.Sprintf("'%s' codec can't decode input", c.name), err)
	}
	return codecs.Result{Object: string(s), Len: len(b)}, nil
}

// transformEncoder feeds text chunks through a persistent transformer so
// encoder state (a pending byte-order mark, shift state) survives across
// calls.
type transformEncoder struct {
	name string
	tr   transform.Transformer
}

// Encode converts one chunk of text to bytes.
func (e *transformEncoder) Encode(text string) ([]byte, error) {
	out, err := pump(e.tr, []byte(text), true)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnicodeEncode,
			fmt.Sprintf("'%s' codec can't encode input", e.name), err)
	}
	return out, nil
}

// Reset restores the initial encoder state.
func (e *transformEncoder) Reset() {
	e.tr.Reset()
}

// transformDecoder buffers bytes across calls until the transformer has
// complete code units to emit.
type transformDecoder struct {
	name    string
	tr      transform.Transformer
	pending []byte
}

// Decode converts one chunk of bytes to text. Trailing bytes that do not
// yet form a complete code unit are held until the next call; final reports
// end of input and flushes them.
func (d *transformDecoder) Decode(p []byte, final bool) (string, error) {
	src := append(d.pending, p...)
	out, nSrc, err := pumpN(d.tr, src, final)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeUnicodeDecode,
			fmt.Sprintf("'%s' codec can't decode input", d.name), err)
	}
	d.pending = append(d.pending[:0], src[nSrc:]...)
	return string(out), nil
}

// Reset restores the initial decoder state and drops buffered bytes.
func (d *transformDecoder) Reset() {
	d.tr.Reset()
	d.pending = d.pending[:0]
}

// pump runs src through tr, growing the destination until the transformer
// is done.
func pump(tr transform.Transformer, src []byte, atEOF bool) ([]byte, error) {
	out, _, err := pumpN(tr, src, atEOF)
	return out, err
}

// pumpN is pump reporting how much of src was consumed. ErrShortSrc with
// atEOF false is not an error: the caller buffers the remainder.
func pumpN(tr transform.Transformer, src []byte, atEOF bool) ([]byte, int, error) {
	dst := make([]byte, len(src)*2+16)
	var out []byte
	total := 0
	for {
		nDst, nSrc, err := tr.Transform(dst, src[total:], atEOF)
		out = append(out, dst[:nDst]...)
		total += nSrc
		switch err {
		case nil:
			return out, total, nil
		case transform.ErrShortDst:
			dst = make([]byte, len(dst)*2)
		case transform.ErrShortSrc:
			if !atEOF {
				return out, total, nil
			}
			return out, total, err
		default:
			return out, total, err
		}
	}
}
