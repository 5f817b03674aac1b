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

// Package pathstr provides flexible immutable filesystem paths.
//
// Paths are byte payloads with OS-native semantics; most real paths fit
// the inline capacity, so keys of path-indexed maps and caches avoid heap
// allocation entirely.
package pathstr

//go:generate go run lab.nexedi.com/kirr/flexstr/cmd/genflex -pkg pathstr -type Path -view string -empty "\"\"" -noun "filesystem path" -out zz_alias.go

import (
	"path/filepath"

	"lab.nexedi.com/kirr/flexstr/mem"
)

// Path adapts filesystem path payload to the flex core.
type Path struct{}

func (Path) FromBytes(b []byte) string {
	return mem.String(b)
}

func (Path) TryFromRaw(b []byte) (string, error) {
	return mem.String(b), nil
}

func (Path) Empty() (string, bool) {
	return "", true
}

func (Path) Length(s string) int {
	return len(s)
}

func (Path) Bytes(s string) []byte {
	return mem.Bytes(s)
}

// JoinPath joins elem onto v with the OS path separator and returns the
// result as a new path value.
func JoinPath(v *Str, elem ...string) Str {
	return New(filepath.Join(append([]string{v.String()}, elem...)...))
}

// Ext returns the file name extension of v.
func Ext(v *Str) string {
	return filepath.Ext(v.String())
}

// Base returns the last element of v.
func Base(v *Str) string {
	return filepath.Base(v.String())
}
