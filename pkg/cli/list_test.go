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

package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owljoa/RustPython/pkg/header"
)

func runListCLI(t *testing.T, command string) listResult {
	t.Helper()
	out := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, rootCmd().Run(t.Context(), []string{name, command, "--output", out}))

	b, err := os.ReadFile(out)
	require.NoError(t, err)

	var res listResult
	require.NoError(t, json.Unmarshal(b, &res))
	return res
}

func TestEncodingsCmd(t *testing.T) {
	res := runListCLI(t, "encodings")
	assert.Equal(t, header.KindEncodingList, res.Kind)
	assert.Contains(t, res.Encodings, "utf-8")
	assert.Contains(t, res.Encodings, "ascii")
	assert.Contains(t, res.Encodings, "base64")
}

func TestErrorsCmd(t *testing.T) {
	res := runListCLI(t, "errors")
	assert.Equal(t, header.KindErrorHandlerList, res.Kind)
	assert.Contains(t, res.Handlers, "strict")
	assert.Contains(t, res.Handlers, "ignore")
	assert.Contains(t, res.Handlers, "replace")
	assert.Contains(t, res.Handlers, "xmlcharrefreplace")
	assert.Contains(t, res.Handlers, "backslashreplace")
}
