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

// Package osstr provides flexible immutable OS-native strings.
//
// Go passes strings to the operating system as raw bytes, so an OS-native
// string here is a byte payload in a Go string with no encoding
// requirement - the contract environment variables, process arguments and
// unix file names actually have. The raw-bytes constructors never fail.
package osstr

//go:generate go run lab.nexedi.com/kirr/flexstr/cmd/genflex -pkg osstr -type OS -view string -empty "\"\"" -noun "OS-native string" -out zz_alias.go

import (
	"lab.nexedi.com/kirr/flexstr/mem"
)

// OS adapts OS-native byte payload to the flex core.
type OS struct{}

func (OS) FromBytes(b []byte) string {
	return mem.String(b)
}

func (OS) TryFromRaw(b []byte) (string, error) {
	return mem.String(b), nil
}

func (OS) Empty() (string, bool) {
	return "", true
}

func (OS) Length(s string) int {
	return len(s)
}

func (OS) Bytes(s string) []byte {
	return mem.Bytes(s)
}
