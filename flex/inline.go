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

package flex

import (
	"unsafe"
)

// WordSize is the size of one machine word in bytes.
const WordSize = int(unsafe.Sizeof(uintptr(0)))

// InlineCap is how many bytes of payload a value can hold without going to
// the heap: the three-word footprint minus the embedded length and the
// discriminant. 22 bytes on 64-bit, 10 bytes on 32-bit.
const InlineCap = 3*WordSize - 2

// inline is a fixed-capacity byte buffer with embedded length.
//
// Invariant: n <= InlineCap; data[:n] is the payload and is always a value
// the kind adapter can present as the semantic type.
type inline struct {
	data [InlineCap]byte
	n    uint8
}

// newInline copies b into an inline buffer.
//
// It succeeds iff len(b) <= InlineCap. On failure nothing is copied and the
// zero inline is returned together with ok=false.
func newInline(b []byte) (ib inline, ok bool) {
	if len(b) > InlineCap {
		return inline{}, false
	}
	copy(ib.data[:], b)
	ib.n = uint8(len(b))
	return ib, true
}

// tryConcat appends b in place if the result still fits.
//
// The append is all-or-nothing: on overflow the buffer is left completely
// unmodified and false is returned.
func (ib *inline) tryConcat(b []byte) bool {
	if int(ib.n)+len(b) > InlineCap {
		return false
	}
	copy(ib.data[ib.n:], b)
	ib.n += uint8(len(b))
	return true
}

// slice returns the payload bytes.
//
// The returned slice aliases the buffer and is valid only while the
// enclosing value is alive.
func (ib *inline) slice() []byte {
	return ib.data[:ib.n]
}
