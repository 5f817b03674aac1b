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

// Package mem provides ways to work with memory as either string or []byte
// without copying.
//
// The conversions alias the original memory: a string obtained via String
// observes further writes to the source []byte, and a []byte obtained via
// Bytes must not be written to at all.
package mem

import (
	"unsafe"
)

// Bytes converts string -> []byte without copying.
func Bytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// String converts []byte -> string without copying.
func String(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
