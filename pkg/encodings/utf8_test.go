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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owljoa/RustPython/pkg/codecs"
)

func TestUTF8_Roundtrip(t *testing.T) {
	reg := newRegistry(t)

	b, err := reg.EncodeText("héllo 🐍", "utf-8", "")
	require.NoError(t, err)
	assert.Equal(t, []byte("héllo 🐍"), b)

	s, err := reg.DecodeText(b, "utf-8", "")
	require.NoError(t, err)
	assert.Equal(t, "héllo 🐍", s)
}

func TestUTF8_DecodeStrictReportsPosition(t *testing.T) {
	reg := newRegistry(t)

	_, err := reg.DecodeText([]byte("ab\xffcd"), "utf-8", "strict")
	require.Error(t, err)

	var uerr *codecs.UnicodeError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, codecs.DecodeError, uerr.Kind)
	assert.Equal(t, 2, uerr.Start)
	assert.Equal(t, 3, uerr.End)
	assert.Equal(t,
		"'utf-8' codec can't decode byte 0xff in position 2: invalid start byte",
		err.Error())
}

func TestUTF8_DecodeRecovery(t *testing.T) {
	reg := newRegistry(t)

	cases := []struct {
		errs string
		want string
	}{
		{"replace", "a�b"},
		{"ignore", "ab"},
		{"backslashreplace", `a\xffb`},
	}
	for _, tc := range cases {
		t.Run(tc.errs, func(t *testing.T) {
			s, err := reg.DecodeText([]byte("a\xffb"), "utf-8", tc.errs)
			require.NoError(t, err)
			assert.Equal(t, tc.want, s)
		})
	}
}

func TestUTF8_DecodeTruncatedSequence(t *testing.T) {
	reg := newRegistry(t)

	// 0xC3 opens a two-byte sequence that never completes.
	_, err := reg.DecodeText([]byte("ab\xc3"), "utf-8", "")
	require.Error(t, err)

	var uerr *codecs.UnicodeError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "unexpected end of data", uerr.Reason)
}

func TestClassifyUTF8Fault(t *testing.T) {
	cases := []struct {
		name   string
		input  []byte
		at     int
		end    int
		reason string
	}{
		{"stray continuation", []byte{0x61, 0x80}, 1, 2, "invalid start byte"},
		{"overlong lead", []byte{0xc0, 0xaf}, 0, 1, "invalid start byte"},
		{"bad continuation", []byte{0xe2, 0x28, 0xa1}, 0, 1, "invalid continuation byte"},
		{"truncated tail", []byte{0xf0, 0x9f, 0x90}, 0, 3, "unexpected end of data"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			end, reason := classifyUTF8Fault(tc.input, tc.at)
			assert.Equal(t, tc.end, end)
			assert.Equal(t, tc.reason, reason)
		})
	}
}

func TestUTF8_IncrementalDecoder(t *testing.T) {
	reg := newRegistry(t)

	obj, err := reg.IncrementalDecoder("utf-8", "strict")
	require.NoError(t, err)
	dec := obj.(*IncrementalDecoder)

	// "é" split across two chunks.
	out, err := dec.Decode([]byte("a\xc3"), false)
	require.NoError(t, err)
	assert.Equal(t, "a", out)

	out, err = dec.Decode([]byte("\xa9b"), true)
	require.NoError(t, err)
	assert.Equal(t, "éb", out)
}

func TestUTF8_IncrementalDecoderFinalFlushes(t *testing.T) {
	reg := newRegistry(t)

	obj, err := reg.IncrementalDecoder("utf-8", "strict")
	require.NoError(t, err)
	dec := obj.(*IncrementalDecoder)

	// A lone lead byte is held while more input may come, but final input
	// must surface it as an error.
	out, err := dec.Decode([]byte{0xc3}, false)
	require.NoError(t, err)
	assert.Equal(t, "", out)

	_, err = dec.Decode(nil, true)
	require.Error(t, err)

	var uerr *codecs.UnicodeError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "unexpected end of data", uerr.Reason)
}

func TestUTF8_IncrementalEncoder(t *testing.T) {
	reg := newRegistry(t)

	obj, err := reg.IncrementalEncoder("utf-8", "strict")
	require.NoError(t, err)
	enc := obj.(*IncrementalEncoder)

	b, err := enc.Encode("héllo")
	require.NoError(t, err)
	assert.Equal(t, []byte("héllo"), b)
}

func TestUTF8TailLen(t *testing.T) {
	assert.Equal(t, 0, utf8TailLen([]byte("abc")))
	assert.Equal(t, 1, utf8TailLen([]byte{0x61, 0xc3}))
	assert.Equal(t, 2, utf8TailLen([]byte{0xf0, 0x9f}))
	assert.Equal(t, 3, utf8TailLen([]byte{0xf0, 0x9f, 0x90}))
	// A complete sequence holds nothing back.
	assert.Equal(t, 0, utf8TailLen([]byte("é")))
}
