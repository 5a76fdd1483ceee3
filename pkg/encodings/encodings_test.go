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
	"github.com/owljoa/RustPython/pkg/errors"
)

func newRegistry(t *testing.T) *codecs.Registry {
	t.Helper()
	reg := codecs.New()
	_, err := Register(reg)
	require.NoError(t, err)
	return reg
}

func TestRegister_ResolvesBuiltins(t *testing.T) {
	reg := newRegistry(t)
	for _, name := range []string{
		"utf-8", "ascii", "latin-1",
		"utf-16", "utf-16-le", "utf-16-be",
		"hex", "base64", "windows-1252", "koi8-r",
	} {
		codec, err := reg.Lookup(name)
		require.NoErrorf(t, err, "lookup %q", name)
		require.NotNil(t, codec)
	}
}

func TestRegister_Aliases(t *testing.T) {
	reg := newRegistry(t)
	canonical, err := reg.Lookup("utf-8")
	require.NoError(t, err)

	for _, alias := range []string{"utf8", "u8", "UTF8", "cp65001"} {
		codec, err := reg.Lookup(alias)
		require.NoErrorf(t, err, "lookup %q", alias)
		// Same tuple, but cached under its own normalized name.
		assert.NotNil(t, codec)
	}

	// The canonical spelling keeps hitting its cache entry.
	again, err := reg.Lookup("utf-8")
	require.NoError(t, err)
	assert.Same(t, canonical, again)
}

func TestRegister_UnknownNameFallsThrough(t *testing.T) {
	reg := newRegistry(t)
	_, err := reg.Lookup("no-such-charset")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeLookup))
	assert.Contains(t, err.Error(), "unknown encoding: no-such-charset")
}

func TestBinaryCodecs_AreNotText(t *testing.T) {
	reg := newRegistry(t)

	for _, name := range []string{"hex", "base64"} {
		codec, err := reg.Lookup(name)
		require.NoError(t, err)
		assert.Falsef(t, codec.IsTextCodec(), "%s must carry the non-text marker", name)

		_, err = reg.EncodeText("ab", name, "")
		require.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.ErrCodeLookup))
		assert.Contains(t, err.Error(), "is not a text encoding")
	}
}

func TestTextCodecs_RejectWrongInputKind(t *testing.T) {
	reg := newRegistry(t)

	_, err := reg.Encode(42, "utf-8", "")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeType))
	assert.Contains(t, err.Error(), "'int'")

	_, err = reg.Decode(3.5, "ascii", "")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeType))
	assert.Contains(t, err.Error(), "'float'")
}

func TestNames_SortedAndCanonical(t *testing.T) {
	names := Names()
	require.NotEmpty(t, names)
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "utf-8")
	assert.Contains(t, names, "hex")
}
