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
	"encoding/base64"
	"encoding/hex"

	"github.com/owljoa/RustPython/pkg/codecs"
	"github.com/owljoa/RustPython/pkg/errors"
)

// binaryTuple carries the marker declaring a bytes-to-bytes codec, keeping
// it out of the text-only entry points.
type binaryTuple struct{ codecs.Tuple }

func (binaryTuple) IsTextEncoding() bool { return false }

// binaryInput accepts bytes or text for the pseudo-codecs; text contributes
// its UTF-8 form.
func binaryInput(obj any, encoding string) ([]byte, error) {
	switch v := obj.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.Newf(errors.ErrCodeType,
			"'%s' codec expected bytes, got '%s'", encoding, codecs.KindName(obj))
	}
}

func hexTuple() any {
	encode := func(obj any, errs string) (codecs.Result, error) {
		b, err := binaryInput(obj, encHex)
		if err != nil {
			return codecs.Result{}, err
		}
		out := make([]byte, hex.EncodedLen(len(b)))
		hex.Encode(out, b)
		return codecs.Result{Object: out, Len: len(b)}, nil
	}
	decode := func(obj any, errs string) (codecs.Result, error) {
		b, err := binaryInput(obj, encHex)
		if err != nil {
			return codecs.Result{}, err
		}
		out := make([]byte, hex.DecodedLen(len(b)))
		n, err := hex.Decode(out, b)
		if err != nil {
			return codecs.Result{}, errors.Wrap(errors.ErrCodeValue,
				"non-hexadecimal digit found", err)
		}
		return codecs.Result{Object: out[:n], Len: len(b)}, nil
	}
	return binaryTuple{codecs.Tuple{
		Encode:             encode,
		Decode:             decode,
		IncrementalEncoder: binaryNoIncremental(encHex),
		IncrementalDecoder: binaryNoIncremental(encHex),
	}}
}

func base64Tuple() any {
	std := base64.StdEncoding
	encode := func(obj any, errs string) (codecs.Result, error) {
		b, err := binaryInput(obj, encBase64)
		if err != nil {
			return codecs.Result{}, err
		}
		out := make([]byte, std.EncodedLen(len(b)))
		std.Encode(out, b)
		return codecs.Result{Object: out, Len: len(b)}, nil
	}
	decode := func(obj any, errs string) (codecs.Result, error) {
		b, err := binaryInput(obj, encBase64)
		if err != nil {
			return codecs.Result{}, err
		}
		out := make([]byte, std.DecodedLen(len(b)))
		n, err := std.Decode(out, b)
		if err != nil {
			return codecs.Result{}, errors.Wrap(errors.ErrCodeValue,
				"invalid base64-encoded data", err)
		}
		return codecs.Result{Object: out[:n], Len: len(b)}, nil
	}
	return binaryTuple{codecs.Tuple{
		Encode:             encode,
		Decode:             decode,
		IncrementalEncoder: binaryNoIncremental(encBase64),
		IncrementalDecoder: binaryNoIncremental(encBase64),
	}}
}

// binaryNoIncremental rejects incremental use of a whole-buffer pseudo-codec.
func binaryNoIncremental(name string) codecs.IncrementalFactory {
	return func(errs string) (any, error) {
		return nil, errors.Newf(errors.ErrCodeLookup,
			"'%s' codec does not support incremental operation", name)
	}
}
