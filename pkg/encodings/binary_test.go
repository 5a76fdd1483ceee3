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

	"github.com/owljoa/RustPython/pkg/errors"
)

func TestHex_Roundtrip(t *testing.T) {
	reg := newRegistry(t)

	out, err := reg.Encode([]byte{0xde, 0xad, 0xbe, 0xef}, "hex", "")
	require.NoError(t, err)
	assert.Equal(t, []byte("deadbeef"), out)

	back, err := reg.Decode([]byte("deadbeef"), "hex", "")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, back)
}

func TestHex_InvalidDigit(t *testing.T) {
	reg := newRegistry(t)

	_, err := reg.Decode([]byte("zz"), "hex", "")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeValue))
	assert.Contains(t, err.Error(), "non-hexadecimal digit found")
}

func TestBase64_Roundtrip(t *testing.T) {
	reg := newRegistry(t)

	out, err := reg.Encode([]byte("hello world"), "base64", "")
	require.NoError(t, err)
	assert.Equal(t, []byte("aGVsbG8gd29ybGQ="), out)

	back, err := reg.Decode(out, "base64", "")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello world"), back)
}

func TestBase64_InvalidPadding(t *testing.T) {
	reg := newRegistry(t)

	_, err := reg.Decode([]byte("a"), "base64", "")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeValue))
}

func TestBinary_NoIncrementalSupport(t *testing.T) {
	reg := newRegistry(t)

	for _, name := range []string{"hex", "base64"} {
		_, err := reg.IncrementalEncoder(name, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not support incremental operation")

		_, err = reg.IncrementalDecoder(name, "")
		require.Error(t, err)
	}
}

func TestBinary_AcceptsTextInput(t *testing.T) {
	reg := newRegistry(t)

	out, err := reg.Encode("hi", "hex", "")
	require.NoError(t, err)
	assert.Equal(t, []byte("6869"), out)
}
