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

package serializer

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusCreated, samplePayload{Encoding: "utf-8", Len: 3})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var out samplePayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "utf-8", out.Encoding)
}

func TestRespondJSON_EncodingFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	// Channels cannot be JSON-encoded.
	RespondJSON(rec, http.StatusOK, map[string]any{"ch": make(chan int)})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHttpReader_Read(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, HttpReaderUserAgent, r.Header.Get("User-Agent"))
		w.Write([]byte("payload"))
	}))
	defer srv.Close()

	r := NewHttpReader()
	data, err := r.Read(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)
}

func TestHttpReader_ReadErrors(t *testing.T) {
	r := NewHttpReader()

	_, err := r.Read("")
	require.Error(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err = r.Read(srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status")
}

func TestHttpReader_Options(t *testing.T) {
	r := NewHttpReader(
		WithUserAgent("custom/1.0"),
		WithTotalTimeout(2*time.Second),
		WithInsecureSkipVerify(true),
	)

	assert.Equal(t, "custom/1.0", r.UserAgent)
	assert.Equal(t, 2*time.Second, r.Client.Timeout)

	tr, ok := r.Client.Transport.(*http.Transport)
	require.True(t, ok)
	assert.True(t, tr.TLSClientConfig.InsecureSkipVerify)
}
