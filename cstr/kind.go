// Copyright (C) 2022-2026  Nexedi SA and Contributors.
//                          Kirill Smelkov <kirr@nexedi.com>
//
// This program is free software: you can Use, Study, Modify and Redistribute
// it under the terms of the GNU General Public License version 3, or (at your
// option) any later version, as published by the Free Software Foundation.
//
// You can also Link and Combine this program with other software covered by
// the terms of any of the Free Software licenses or any of the Open Source
// Initiative approved licenses and Convey the resulting work. Corresponding
// source of such a combination shall include the source code for all other
// software used.
//
// This program is distributed WITHOUT ANY WARRANTY; without even the implied
// warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//
// See COPYING file for full licensing terms.
// See https://www.nexedi.com/licensing for rationale and options.

// Package cstr provides flexible immutable NUL-terminated strings.
//
// The stored payload always carries the terminating NUL and contains no
// interior NUL, so a value's bytes can be handed to C-style interfaces
// as-is. Use Inner to view the payload without the terminator.
package cstr

//go:generate go run lab.nexedi.com/kirr/flexstr/cmd/genflex -pkg cstr -type C -view string -empty "\"\\x00\"" -noun "NUL-terminated string" -out zz_alias.go

import (
	"strings"

	"github.com/pkg/errors"

	"lab.nexedi.com/kirr/flexstr/flex"
	"lab.nexedi.com/kirr/flexstr/mem"
)

// C adapts NUL-terminated byte payload to the flex core.
//
// Payload coming in through the typed constructors (New, FromStatic, ...)
// is trusted to already carry the terminator and no interior NUL; use
// FromString to convert a plain Go string safely, or FromRaw to validate
// raw bytes.
type C struct{}

func (C) FromBytes(b []byte) string {
	return mem.String(b)
}

func (C) TryFromRaw(b []byte) (string, error) {
	for i := 0; i < len(b)-1; i++ {
		if b[i] == 0 {
			// interior NUL: the valid prefix ends right before it
			return "", &flex.ConvertError{Kind: "cstr", ValidLen: i, BadLen: 1}
		}
	}
	if len(b) == 0 || b[len(b)-1] != 0 {
		// missing terminator is reported as truncation
		return "", &flex.ConvertError{Kind: "cstr", ValidLen: len(b), BadLen: 0}
	}
	return mem.String(b), nil
}

func (C) Empty() (string, bool) {
	// a NUL-terminated string is never zero-length; the shortest value is
	// the lone terminator, which the Empty variable wraps instead
	return "", false
}

func (C) Length(s string) int {
	return len(s)
}

func (C) Bytes(s string) []byte {
	return mem.Bytes(s)
}

// FromString converts a plain Go string, appending the terminator.
// It fails if s contains an interior NUL.
func FromString(s string) (Str, error) {
	if i := strings.IndexByte(s, 0); i >= 0 {
		err := &flex.ConvertError{Kind: "cstr", ValidLen: i, BadLen: 1}
		return Str{}, errors.Wrapf(err, "cstr: FromString %q", s)
	}
	return New(s + "\x00"), nil
}

// Inner returns v's payload without the terminating NUL.
//
// A value that carries no terminator (the zero value, or payload that
// bypassed validation) is returned whole rather than with its last byte
// stripped.
func Inner(v *Str) string {
	s := v.String()
	if len(s) == 0 || s[len(s)-1] != 0 {
		return s
	}
	return s[:len(s)-1]
}
