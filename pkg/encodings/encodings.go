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
	"sort"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"

	"github.com/owljoa/RustPython/pkg/codecs"
	"github.com/owljoa/RustPython/pkg/errors"
)

// Canonical names of the directly implemented codecs.
const (
	encUTF8    = "utf-8"
	encASCII   = "ascii"
	encLatin1  = "latin-1"
	encUTF16   = "utf-16"
	encUTF16LE = "utf-16-le"
	encUTF16BE = "utf-16-be"
	encHex     = "hex"
	encBase64  = "base64"
)

// aliases maps normalized alias spellings to canonical names. Keys are in
// the form the registry's name normalization produces.
var aliases = map[string]string{
	"utf8":         encUTF8,
	"utf_8":        encUTF8,
	"u8":           encUTF8,
	"cp65001":      encUTF8,
	"us-ascii":     encASCII,
	"646":          encASCII,
	"cp367":        encASCII,
	"latin":        encLatin1,
	"latin1":       encLatin1,
	"latin_1":      encLatin1,
	"l1":           encLatin1,
	"8859":         encLatin1,
	"cp819":        encLatin1,
	"iso-8859-1":   encLatin1,
	"iso8859-1":    encLatin1,
	"utf16":        encUTF16,
	"utf_16":       encUTF16,
	"u16":          encUTF16,
	"utf-16le":     encUTF16LE,
	"utf_16_le":    encUTF16LE,
	"utf-16be":     encUTF16BE,
	"utf_16_be":    encUTF16BE,
	"hex_codec":    encHex,
	"base64_codec": encBase64,
	"base-64":      encBase64,
}

// canonical resolves alias spellings, passing unknown names through.
func canonical(name string) string {
	if c, ok := aliases[name]; ok {
		return c
	}
	return name
}

// Provider serves the built-in codecs. It holds the registry it was
// registered on so codec error paths can resolve error handlers through the
// same handler table user code registers into.
type Provider struct {
	reg *codecs.Registry
}

// Register appends the built-in search function to the registry's search
// path and returns the provider backing it.
func Register(reg *codecs.Registry) (*Provider, error) {
	p := &Provider{reg: reg}
	if err := reg.Register(p.Search); err != nil {
		return nil, err
	}
	return p, nil
}

// Search resolves a normalized encoding name to a built-in codec tuple. A
// nil result means the name is not a built-in; resolution then falls through
// to any later search functions.
//
// The directly implemented names are matched before the WHATWG index is
// consulted: the index follows browser compatibility mappings (for example
// it treats ascii and latin1 as windows-1252), which is not what these names
// mean here.
func (p *Provider) Search(name string) (any, error) {
	switch canonical(name) {
	case encUTF8:
		return p.utf8Tuple(), nil
	case encASCII:
		return p.asciiTuple(), nil
	case encLatin1:
		return p.charmapTuple(encLatin1, charmap.ISO8859_1), nil
	case encUTF16:
		return p.transformTuple(encUTF16, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)), nil
	case encUTF16LE:
		return p.transformTuple(encUTF16LE, unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)), nil
	case encUTF16BE:
		return p.transformTuple(encUTF16BE, unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)), nil
	case encHex:
		return hexTuple(), nil
	case encBase64:
		return base64Tuple(), nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		// Not in the index either. Report no match, not failure.
		return nil, nil
	}
	if cm, ok := enc.(*charmap.Charmap); ok {
		return p.charmapTuple(name, cm), nil
	}
	return p.transformTuple(name, enc), nil
}

// Names returns the canonical names this provider resolves, sorted. The
// WHATWG index has no enumeration API, so the charmap names listed here are
// the commonly requested subset rather than the full index.
func Names() []string {
	names := []string{
		encUTF8, encASCII, encLatin1,
		encUTF16, encUTF16LE, encUTF16BE,
		encHex, encBase64,
		"windows-1250", "windows-1251", "windows-1252",
		"iso-8859-2", "iso-8859-5", "iso-8859-15",
		"koi8-r", "ibm866", "macintosh",
	}
	sort.Strings(names)
	return names
}

// recover routes a codec failure through the named error handler. The empty
// policy name means strict.
func (p *Provider) recover(errs string, exc *codecs.UnicodeError) (string, int, error) {
	name := errs
	if name == "" {
		name = codecs.HandlerStrict
	}
	handler, err := p.reg.LookupError(name)
	if err != nil {
		return "", 0, err
	}
	return handler(exc)
}

// asText requires a string input for an encode capability.
func asText(obj any, encoding string) (string, error) {
	s, ok := obj.(string)
	if !ok {
		return "", errors.Newf(errors.ErrCodeType,
			"'%s' encoder expected str, got '%s'", encoding, codecs.KindName(obj))
	}
	return s, nil
}

// asBytes requires a byte-sequence input for a decode capability.
func asBytes(obj any, encoding string) ([]byte, error) {
	switch v := obj.(type) {
	case []byte:
		return v, nil
	case string:
		// Accept text on the decode side the way buffer-protocol inputs are
		// accepted: the bytes are the text's UTF-8 form.
		return []byte(v), nil
	default:
		return nil, errors.Newf(errors.ErrCodeType,
			"'%s' decoder expected bytes, got '%s'", encoding, codecs.KindName(obj))
	}
}
