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
	"math/bits"
	"unicode/utf8"

	"lab.nexedi.com/kirr/flexstr/mem"
)

// builder state. Promotion is one-directional: a builder never returns to
// a smaller accumulation strategy once content is folded into a larger one.
type bstate uint8

const (
	bSmall   bstate = iota // inline-sized buffer, no allocation yet
	bRegular               // growable heap buffer
	bLarge                 // adopted owned string, passed through on Finish
)

// Builder accumulates writes and finishes into a Flex value with minimal
// copying: content that fits inline never allocates, an adopted owned
// string is passed through to the backend without a copy, and everything
// else is copied once into a growable buffer that the finished value then
// takes over.
//
// The zero Builder is ready to use. A Builder is single-owner and must be
// consumed exactly once with Finish; it must not be used afterwards and
// must not be shared between goroutines.
type Builder[S any, K Str[S], H Heap[H]] struct {
	state bstate
	ib    inline
	buf   []byte // bRegular accumulation
	owned string // bLarge pass-through
}

// Len returns the number of bytes accumulated so far.
func (b *Builder[S, K, H]) Len() int {
	switch b.state {
	case bSmall:
		return int(b.ib.n)
	case bRegular:
		return len(b.buf)
	default:
		return len(b.owned)
	}
}

// ceilPow2 returns minimal y >= x, such that y = 2^i.
func ceilPow2(x int) int {
	if bits.OnesCount(uint(x)) <= 1 {
		return x // either 0 or 2^i already
	}
	return 1 << bits.Len(uint(x))
}

// promote moves accumulation to a growable buffer with room for total
// bytes, folding in whatever has been written so far. Capacity is rounded
// up to a power of two so that a sequence of writes reallocates O(log n)
// times.
func (b *Builder[S, K, H]) promote(total int) {
	switch b.state {
	case bSmall:
		if total < 2*InlineCap {
			total = 2 * InlineCap
		}
		buf := make([]byte, 0, ceilPow2(total))
		b.buf = append(buf, b.ib.slice()...)
	case bRegular:
		if cap(b.buf) < total {
			buf := make([]byte, len(b.buf), ceilPow2(total))
			copy(buf, b.buf)
			b.buf = buf
		}
		return
	case bLarge:
		if total < len(b.owned) {
			total = len(b.owned)
		}
		buf := make([]byte, 0, ceilPow2(total))
		b.buf = append(buf, b.owned...)
		b.owned = ""
	}
	b.state = bRegular
}

// Grow guarantees room for n more bytes, promoting out of the inline
// buffer if they cannot fit there.
func (b *Builder[S, K, H]) Grow(n int) {
	if b.state == bSmall && int(b.ib.n)+n <= InlineCap {
		return
	}
	b.promote(b.Len() + n)
}

// Write appends p. It implements io.Writer and never fails; by
// construction there is always room to grow.
func (b *Builder[S, K, H]) Write(p []byte) (int, error) {
	if b.state == bSmall {
		if b.ib.tryConcat(p) {
			return len(p), nil
		}
		// the write overflows inline capacity; from here on accumulation
		// is heap-backed
		b.promote(int(b.ib.n) + len(p))
	} else if b.state == bLarge {
		b.promote(len(b.owned) + len(p))
	}
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// WriteString appends s. It implements io.StringWriter and never fails.
func (b *Builder[S, K, H]) WriteString(s string) (int, error) {
	return b.Write(mem.Bytes(s))
}

// WriteByte appends a single byte. It never fails.
func (b *Builder[S, K, H]) WriteByte(c byte) error {
	var p [1]byte
	p[0] = c
	b.Write(p[:])
	return nil
}

// WriteRune appends the UTF-8 encoding of r. It never fails.
func (b *Builder[S, K, H]) WriteRune(r rune) (int, error) {
	var p [utf8.UTFMax]byte
	n := utf8.EncodeRune(p[:], r)
	return b.Write(p[:n])
}

// WriteOwned appends s, adopting it without a copy when the builder is
// still empty and s is too large to ever finish inline. Used when
// collecting from sequences that yield already-owned strings.
func (b *Builder[S, K, H]) WriteOwned(s string) {
	if len(s) > InlineCap && b.Len() == 0 {
		b.owned = s
		b.buf = nil
		b.state = bLarge
		return
	}
	b.WriteString(s)
}

// Finish consumes the builder and returns the accumulated content as a
// Flex value. Inline-sized content becomes an inlined value with no extra
// copy; everything else goes to the storage backend, adopting the
// builder's buffer or pass-through string without another copy.
//
// The builder must not be used after Finish.
func (b *Builder[S, K, H]) Finish() Flex[S, K, H] {
	switch b.state {
	case bSmall:
		if b.ib.n == 0 {
			return Flex[S, K, H]{} // zero value = empty static
		}
		return Flex[S, K, H]{disc: dInlined, ib: b.ib}
	case bRegular:
		return fromOwned[S, K, H](mem.String(b.buf))
	default:
		return fromOwned[S, K, H](b.owned)
	}
}
