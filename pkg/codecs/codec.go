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
	"reflect"

	"github.com/owljoa/RustPython/pkg/errors"
)

// Result is the (object, length) pair every encode and decode capability
// must produce. Object holds the converted value and Len the number of input
// elements consumed. The registry layer returns only Object to callers.
type Result struct {
	Object any
	Len    int
}

// EncodeFunc converts an object under an error policy named by errs.
// An empty errs means the codec's default policy (strict).
type EncodeFunc func(obj any, errs string) (Result, error)

// DecodeFunc converts an object back under an error policy named by errs.
type DecodeFunc func(obj any, errs string) (Result, error)

// IncrementalFactory builds a stateful incremental encoder or decoder bound
// to the given error policy. The returned object's interface is owned by the
// caller; the registry only constructs it.
type IncrementalFactory func(errs string) (any, error)

// SearchFunc is a codec search function. It receives the normalized encoding
// name and returns the codec bundle for it, or nil when the name is not
// recognized. Returning a non-nil value that is not a valid 4-element bundle
// is a type error, not a miss.
type SearchFunc func(encoding string) (any, error)

// Tuple is the raw capability bundle a search function produces: encode,
// decode, incremental encoder factory, incremental decoder factory.
type Tuple struct {
	Encode             EncodeFunc
	Decode             DecodeFunc
	IncrementalEncoder IncrementalFactory
	IncrementalDecoder IncrementalFactory
}

// TextMarker is the optional marker a search function result can carry to
// declare whether the codec converts between text and bytes. Results without
// the marker are treated as text codecs.
type TextMarker interface {
	IsTextEncoding() bool
}

// Codec is an immutable, validated bundle of the four codec capabilities.
// Codecs are shared by reference: the registry hands the same *Codec to
// every caller that resolves the same name.
type Codec struct {
	tuple  Tuple
	isText bool
}

// NewCodec validates a search function result and wraps it in a Codec.
// Accepted forms are an existing *Codec, a Tuple, or a 4-element []any whose
// slots hold the capability functions in order. Anything else, including a
// sequence of the wrong length, is a type error.
func NewCodec(v any) (*Codec, error) {
	isText := true
	if m, ok := v.(TextMarker); ok {
		isText = m.IsTextEncoding()
	}

	switch t := v.(type) {
	case *Codec:
		return t, nil
	case Tuple:
		return codecFromTuple(t, isText)
	case []any:
		tuple, ok := tupleFromSlice(t)
		if !ok {
			return nil, badSearchResult()
		}
		return codecFromTuple(tuple, isText)
	default:
		if tuple, ok := embeddedTuple(v); ok {
			return codecFromTuple(tuple, isText)
		}
		return nil, badSearchResult()
	}
}

// embeddedTuple unwraps wrapper structs that embed a Tuple, the usual shape
// for results that also carry the text marker.
func embeddedTuple(v any) (Tuple, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Struct {
		return Tuple{}, false
	}
	tupleType := reflect.TypeOf(Tuple{})
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Type().Field(i)
		if f.Anonymous && f.Type == tupleType {
			return rv.Field(i).Interface().(Tuple), true
		}
	}
	return Tuple{}, false
}

func codecFromTuple(t Tuple, isText bool) (*Codec, error) {
	if t.Encode == nil || t.Decode == nil || t.IncrementalEncoder == nil || t.IncrementalDecoder == nil {
		return nil, badSearchResult()
	}
	return &Codec{tuple: t, isText: isText}, nil
}

func tupleFromSlice(slots []any) (Tuple, bool) {
	if len(slots) != 4 {
		return Tuple{}, false
	}
	enc, ok := asEncodeFunc(slots[0])
	if !ok {
		return Tuple{}, false
	}
	dec, ok := asDecodeFunc(slots[1])
	if !ok {
		return Tuple{}, false
	}
	ief, ok := asIncrementalFactory(slots[2])
	if !ok {
		return Tuple{}, false
	}
	idf, ok := asIncrementalFactory(slots[3])
	if !ok {
		return Tuple{}, false
	}
	return Tuple{Encode: enc, Decode: dec, IncrementalEncoder: ief, IncrementalDecoder: idf}, true
}

func asEncodeFunc(v any) (EncodeFunc, bool) {
	switch f := v.(type) {
	case EncodeFunc:
		return f, true
	case func(any, string) (Result, error):
		return f, true
	}
	return nil, false
}

func asDecodeFunc(v any) (DecodeFunc, bool) {
	switch f := v.(type) {
	case DecodeFunc:
		return f, true
	case func(any, string) (Result, error):
		return f, true
	}
	return nil, false
}

func asIncrementalFactory(v any) (IncrementalFactory, bool) {
	switch f := v.(type) {
	case IncrementalFactory:
		return f, true
	case func(string) (any, error):
		return f, true
	}
	return nil, false
}

func badSearchResult() error {
	return errors.New(errors.ErrCodeType, "codec search functions must return 4-tuples")
}

// IsTextCodec reports whether the codec converts between text and byte
// sequences, as declared by the optional TextMarker on the search result.
func (c *Codec) IsTextCodec() bool {
	return c.isText
}

// Encode runs the codec's encode capability. The capability reports how much
// of the input it consumed; only the converted object is returned here.
func (c *Codec) Encode(obj any, errs string) (any, error) {
	res, err := c.tuple.Encode(obj, errs)
	if err != nil {
		return nil, err
	}
	return res.Object, nil
}

// Decode runs the codec's decode capability.
func (c *Codec) Decode(obj any, errs string) (any, error) {
	res, err := c.tuple.Decode(obj, errs)
	if err != nil {
		return nil, err
	}
	return res.Object, nil
}

// IncrementalEncoder builds a stateful encoder bound to the error policy.
func (c *Codec) IncrementalEncoder(errs string) (any, error) {
	return c.tuple.IncrementalEncoder(errs)
}

// IncrementalDecoder builds a stateful decoder bound to the error policy.
func (c *Codec) IncrementalDecoder(errs string) (any, error) {
	return c.tuple.IncrementalDecoder(errs)
}
