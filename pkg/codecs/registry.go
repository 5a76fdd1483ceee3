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
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/owljoa/RustPython/pkg/errors"
)

// DefaultEncoding is the process-wide default encoding name.
const DefaultEncoding = "utf-8"

// Registry resolves encoding names to codecs and holds the error-handler
// table. All state is guarded by a single reader/writer lock; search
// functions are always invoked with no lock held so they may safely recurse
// into the registry.
type Registry struct {
	mu            sync.RWMutex
	searchPath    []SearchFunc
	searchCache   map[string]*Codec
	errorHandlers map[string]ErrorHandler
}

// New creates a Registry with an empty search path and the five built-in
// error handlers pre-registered.
func New() *Registry {
	return &Registry{
		searchCache: make(map[string]*Codec),
		errorHandlers: map[string]ErrorHandler{
			HandlerStrict:            StrictErrors,
			HandlerIgnore:            IgnoreErrors,
			HandlerReplace:           ReplaceErrors,
			HandlerXMLCharRefReplace: XMLCharRefReplaceErrors,
			HandlerBackslashReplace:  BackslashReplaceErrors,
		},
	}
}

// Register appends a search function to the end of the search path. Earlier
// registrations keep priority. Search functions are never removed; use
// Forget to force re-resolution of individual names.
func (r *Registry) Register(search SearchFunc) error {
	if search == nil {
		return errors.New(errors.ErrCodeType, "argument must be callable")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.searchPath = append(r.searchPath, search)
	return nil
}

// Lookup resolves an encoding name to a codec. The normalized name is
// checked against the cache first; on a miss every search function is tried
// in registration order with no lock held. The first match is inserted
// race-tolerantly: if another goroutine resolved the same name in the
// meantime, the already-stored codec wins and is returned, so concurrent
// first lookups converge on one shared instance.
func (r *Registry) Lookup(encoding string) (*Codec, error) {
	encoding = NormalizeEncodingName(encoding)

	r.mu.RLock()
	if codec, ok := r.searchCache[encoding]; ok {
		r.mu.RUnlock()
		lookupsTotal.WithLabelValues(lookupHit).Inc()
		return codec, nil
	}
	// Snapshot the search path so iteration never observes concurrent
	// appends, then release the lock: search functions may block or call
	// back into the registry.
	searchPath := make([]SearchFunc, len(r.searchPath))
	copy(searchPath, r.searchPath)
	r.mu.RUnlock()

	for _, search := range searchPath {
		res, err := search(encoding)
		if err != nil {
			lookupsTotal.WithLabelValues(lookupError).Inc()
			return nil, err
		}
		if res == nil {
			continue
		}
		codec, err := NewCodec(res)
		if err != nil {
			lookupsTotal.WithLabelValues(lookupError).Inc()
			return nil, err
		}

		r.mu.Lock()
		// someone might have raced us to this, so use theirs
		if existing, ok := r.searchCache[encoding]; ok {
			codec = existing
		} else {
			r.searchCache[encoding] = codec
		}
		r.mu.Unlock()
		lookupsTotal.WithLabelValues(lookupResolved).Inc()
		return codec, nil
	}

	lookupsTotal.WithLabelValues(lookupUnknown).Inc()
	return nil, errors.Newf(errors.ErrCodeLookup, "unknown encoding: %s", encoding)
}

// lookupTextEncoding resolves a name and requires a text codec, pointing the
// caller at the generic entry point named by genericFunc otherwise.
func (r *Registry) lookupTextEncoding(encoding, genericFunc string) (*Codec, error) {
	codec, err := r.Lookup(encoding)
	if err != nil {
		return nil, err
	}
	if !codec.IsTextCodec() {
		return nil, errors.Newf(errors.ErrCodeLookup,
			"'%s' is not a text encoding; use %s to handle arbitrary codecs",
			encoding, genericFunc)
	}
	return codec, nil
}

// Forget evicts the cache entry for an encoding name, returning the removed
// codec if one was cached. The search path is unaffected; the next Lookup
// re-runs resolution from the start of the path.
func (r *Registry) Forget(encoding string) *Codec {
	encoding = NormalizeEncodingName(encoding)
	r.mu.Lock()
	defer r.mu.Unlock()
	codec := r.searchCache[encoding]
	delete(r.searchCache, encoding)
	return codec
}

// Encode resolves the encoding and runs its encode capability on obj.
func (r *Registry) Encode(obj any, encoding, errs string) (any, error) {
	codec, err := r.Lookup(encoding)
	if err != nil {
		return nil, err
	}
	return codec.Encode(obj, errs)
}

// Decode resolves the encoding and runs its decode capability on obj.
func (r *Registry) Decode(obj any, encoding, errs string) (any, error) {
	codec, err := r.Lookup(encoding)
	if err != nil {
		return nil, err
	}
	return codec.Decode(obj, errs)
}

// EncodeText encodes text through a text codec and requires a byte-sequence
// result. Non-text codecs and results of any other kind are rejected.
func (r *Registry) EncodeText(text, encoding, errs string) ([]byte, error) {
	codec, err := r.lookupTextEncoding(encoding, "codecs.Encode()")
	if err != nil {
		return nil, err
	}
	res, err := codec.Encode(text, errs)
	if err != nil {
		return nil, err
	}
	b, ok := res.([]byte)
	if !ok {
		return nil, errors.Newf(errors.ErrCodeType,
			"'%s' encoder returned '%s' instead of 'bytes'; use codecs.Encode() to encode arbitrary types",
			encoding, KindName(res))
	}
	return b, nil
}

// DecodeText decodes through a text codec and requires a text result.
func (r *Registry) DecodeText(obj any, encoding, errs string) (string, error) {
	codec, err := r.lookupTextEncoding(encoding, "codecs.Decode()")
	if err != nil {
		return "", err
	}
	res, err := codec.Decode(obj, errs)
	if err != nil {
		return "", err
	}
	s, ok := res.(string)
	if !ok {
		return "", errors.Newf(errors.ErrCodeType,
			"'%s' decoder returned '%s' instead of 'str'; use codecs.Decode() to encode arbitrary types",
			encoding, KindName(res))
	}
	return s, nil
}

// IncrementalEncoder resolves the encoding and builds a stateful encoder
// bound to the error policy. The returned object is driven by the caller.
func (r *Registry) IncrementalEncoder(encoding, errs string) (any, error) {
	codec, err := r.Lookup(encoding)
	if err != nil {
		return nil, err
	}
	return codec.IncrementalEncoder(errs)
}

// IncrementalDecoder resolves the encoding and builds a stateful decoder.
func (r *Registry) IncrementalDecoder(encoding, errs string) (any, error) {
	codec, err := r.Lookup(encoding)
	if err != nil {
		return nil, err
	}
	return codec.IncrementalDecoder(errs)
}

// RegisterError binds an error handler name, overwriting unconditionally,
// and returns the previous binding if any.
func (r *Registry) RegisterError(name string, handler ErrorHandler) ErrorHandler {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev := r.errorHandlers[name]
	r.errorHandlers[name] = handler
	return prev
}

// LookupErrorOpt returns the handler bound to name, if any.
func (r *Registry) LookupErrorOpt(name string) (ErrorHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.errorHandlers[name]
	return h, ok
}

// LookupError returns the handler bound to name or a lookup error.
func (r *Registry) LookupError(name string) (ErrorHandler, error) {
	if h, ok := r.LookupErrorOpt(name); ok {
		return h, nil
	}
	return nil, errors.Newf(errors.ErrCodeLookup, "unknown error handler name '%s'", name)
}

// ErrorHandlerNames returns the registered handler names, sorted.
func (r *Registry) ErrorHandlerNames() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.errorHandlers))
	for name := range r.errorHandlers {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Warm resolves a set of encoding names concurrently, failing on the first
// name no search function recognizes. Used at startup to pre-populate the
// cache before traffic arrives.
func (r *Registry) Warm(ctx context.Context, names ...string) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, name := range names {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			_, err := r.Lookup(name)
			return err
		})
	}
	return g.Wait()
}

// Global default registry. The runtime constructs its own Registry at
// startup and passes it down; Default exists for the binaries that want a
// shared process-wide instance.
var defaultRegistry = New()

// Default returns the process-wide registry instance.
func Default() *Registry {
	return defaultRegistry
}
