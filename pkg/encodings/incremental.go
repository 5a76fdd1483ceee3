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

import "github.com/owljoa/RustPython/pkg/codecs"

// IncrementalEncoder drives a stateless encode capability one text chunk at
// a time under a fixed error policy.
type IncrementalEncoder struct {
	encode codecs.EncodeFunc
	errs   string
}

// Encode converts one chunk of text to bytes.
func (e *IncrementalEncoder) Encode(text string) ([]byte, error) {
	res, err := e.encode(text, e.errs)
	if err != nil {
		return nil, err
	}
	return res.Object.([]byte), nil
}

// Reset is a no-op; the wrapped capability carries no state.
func (e *IncrementalEncoder) Reset() {}

// IncrementalDecoder drives a decode capability one byte chunk at a time.
// When the codec's sequences can span chunk boundaries, tail reports how
// many trailing bytes to withhold until more input arrives.
type IncrementalDecoder struct {
	decode  codecs.DecodeFunc
	errs    string
	tail    func([]byte) int
	pending []byte
}

// Decode converts one chunk of bytes to text. With final false, an
// incomplete trailing sequence is buffered for the next call instead of
// being reported as malformed.
func (d *IncrementalDecoder) Decode(p []byte, final bool) (string, error) {
	buf := append(d.pending, p...)
	keep := 0
	if !final && d.tail != nil {
		keep = d.tail(buf)
	}
	res, err := d.decode(buf[:len(buf)-keep], d.errs)
	if err != nil {
		return "", err
	}
	d.pending = append(d.pending[:0], buf[len(buf)-keep:]...)
	return res.Object.(string), nil
}

// Reset drops buffered bytes.
func (d *IncrementalDecoder) Reset() {
	d.pending = d.pending[:0]
}
