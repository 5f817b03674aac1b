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

// Package flex provides the generic core of the flexible string family.
//
// A Flex value is an immutable string that transparently holds either a
// wrapped reference (no copy), a short payload stored inline in the value
// itself (no allocation), or a handle into a pluggable heap backend. Which
// representation is picked is decided by the smart constructors; once a
// value is constructed its content and representation never change.
//
// The core is generic over two collaborators supplied by the per-kind
// packages (str, rawstr, cstr, osstr, pathstr):
//
//   - Str  - the kind adapter: validation and zero-copy views of storage
//     bytes as the kind's semantic type;
//   - Heap - the storage backend: Local (single-owner, refcounted clone),
//     Shared (goroutine-safe sharing) or Owned (exclusive, clone copies).
//
// Use the per-kind packages rather than this one unless defining a new
// string kind or backend.
package flex

import (
	"bytes"
	"hash/maphash"

	"lab.nexedi.com/kirr/flexstr/mem"
)

// disc identifies which representation a value currently holds.
type disc uint8

const (
	dStatic disc = iota // wrapped reference with unbounded validity; zero value => empty static
	dInlined            // payload stored in the value's own inline buffer
	dHeap               // storage-backend handle
	dBorrow             // wrapped reference whose validity is bounded by the caller
)

// Flex is a flexible immutable string parameterized by semantic type S,
// kind adapter K and storage backend H.
//
// The zero value is a valid empty static string. Values are cheap to copy;
// they must be compared with Equal, not ==, because == compares the
// representation while two values in different representations can hold
// equal content.
type Flex[S any, K Str[S], H Heap[H]] struct {
	disc disc
	ib   inline
	str  string // dStatic and dBorrow payload
	heap H      // dHeap payload
}

// ---- constructors ----

// FromStatic wraps s without copying.
//
// The caller asserts that the bytes behind s stay alive and unmodified for
// the life of the program, which in Go is automatic for string-typed
// kinds and a contract the caller must keep for byte-slice kinds.
func FromStatic[S any, K Str[S], H Heap[H]](s S) Flex[S, K, H] {
	var k K
	return Flex[S, K, H]{disc: dStatic, str: mem.String(k.Bytes(s))}
}

// TryInline attempts to store s inline.
//
// It succeeds iff the storage length of s is at most InlineCap. On failure
// nothing is copied and ok=false is returned, leaving the caller free to
// pick a fallback.
func TryInline[S any, K Str[S], H Heap[H]](s S) (v Flex[S, K, H], ok bool) {
	var k K
	ib, ok := newInline(k.Bytes(s))
	if !ok {
		return Flex[S, K, H]{}, false
	}
	return Flex[S, K, H]{disc: dInlined, ib: ib}, true
}

// FromRef constructs a value from borrowed data, selecting storage
// automatically: the shared empty singleton for empty input, inline when
// the payload fits, heap otherwise.
//
// The result does not alias s: inline and heap storage both detach from
// the source, so FromRef is also the way to drop a small substring's
// reference to a large backing array.
func FromRef[S any, K Str[S], H Heap[H]](s S) Flex[S, K, H] {
	var k K
	if k.Length(s) == 0 {
		if _, ok := k.Empty(); ok {
			return Flex[S, K, H]{} // zero value = empty static
		}
	}
	if v, ok := TryInline[S, K, H](s); ok {
		return v
	}
	return FromRefHeap[S, K, H](s)
}

// FromRefHeap constructs a heap value from borrowed data, skipping the
// inline attempt. Use it when the data is already known to exceed
// InlineCap to avoid a wasted probe.
func FromRefHeap[S any, K Str[S], H Heap[H]](s S) Flex[S, K, H] {
	var k K
	var h H
	checkHeap[H]()
	return Flex[S, K, H]{disc: dHeap, heap: h.FromRef(k.Bytes(s))}
}

// FromBorrow wraps caller-held bytes without copying.
//
// The value is valid only while the caller keeps b alive and unmodified.
// The bytes must already be valid for the kind; use FromRaw when they are
// not vetted.
func FromBorrow[S any, K Str[S], H Heap[H]](b []byte) Flex[S, K, H] {
	return Flex[S, K, H]{disc: dBorrow, str: mem.String(b)}
}

// FromRaw validates raw bytes via the kind adapter and, on success,
// constructs a detached value the same way FromRef does.
func FromRaw[S any, K Str[S], H Heap[H]](b []byte) (Flex[S, K, H], error) {
	var k K
	s, err := k.TryFromRaw(b)
	if err != nil {
		return Flex[S, K, H]{}, err
	}
	return FromRef[S, K, H](s), nil
}

// fromOwned adopts an already-owned immutable string as a heap value
// without copying. Used by the builder and the unmarshalling paths.
func fromOwned[S any, K Str[S], H Heap[H]](s string) Flex[S, K, H] {
	var h H
	checkHeap[H]()
	return Flex[S, K, H]{disc: dHeap, heap: h.FromOwned(s)}
}

// ---- accessors ----

// bytes returns the payload of the active representation without copying.
func (v *Flex[S, K, H]) bytes() []byte {
	switch v.disc {
	case dInlined:
		return v.ib.slice()
	case dHeap:
		return mem.Bytes(v.heap.View())
	default: // dStatic, dBorrow
		return mem.Bytes(v.str)
	}
}

// View presents the value as its semantic type. O(1).
//
// For inlined values the result aliases storage inside the value itself
// and is valid only while v is alive.
func (v *Flex[S, K, H]) View() S {
	var k K
	return k.FromBytes(v.bytes())
}

// String returns the payload as a string without copying. O(1).
//
// For non-text kinds the result is the raw storage bytes (including, for
// NUL-terminated kinds, the terminator).
func (v *Flex[S, K, H]) String() string {
	return mem.String(v.bytes())
}

// Len returns the storage length in bytes (not characters).
func (v *Flex[S, K, H]) Len() int {
	return len(v.bytes())
}

// IsEmpty reports whether the value has zero length.
func (v *Flex[S, K, H]) IsEmpty() bool {
	return v.Len() == 0
}

// IsStatic reports whether the value wraps a static reference.
func (v *Flex[S, K, H]) IsStatic() bool { return v.disc == dStatic }

// IsInlined reports whether the payload is stored inline in the value.
func (v *Flex[S, K, H]) IsInlined() bool { return v.disc == dInlined }

// IsHeap reports whether the payload lives in the storage backend.
func (v *Flex[S, K, H]) IsHeap() bool { return v.disc == dHeap }

// IsBorrow reports whether the value wraps caller-held bytes.
func (v *Flex[S, K, H]) IsBorrow() bool { return v.disc == dBorrow }

// Clone returns a value observably equal to v.
//
// Static and Borrow clone by copying the reference, Inlined by copying the
// fixed buffer - all O(1). Heap defers to the backend: O(1) for Local and
// Shared, O(length) for Owned.
func (v *Flex[S, K, H]) Clone() Flex[S, K, H] {
	c := *v
	if v.disc == dHeap {
		c.heap = v.heap.Clone()
	}
	return c
}

// ---- content comparison ----

// Equal reports whether v and o hold equal content.
//
// Comparison goes through the semantic view, never the representation: a
// static and a heap value holding the same bytes are equal.
func (v *Flex[S, K, H]) Equal(o *Flex[S, K, H]) bool {
	return bytes.Equal(v.bytes(), o.bytes())
}

// EqualString reports whether v's payload equals s.
func (v *Flex[S, K, H]) EqualString(s string) bool {
	return v.String() == s
}

// Compare compares content bytewise and returns -1, 0 or +1.
func (v *Flex[S, K, H]) Compare(o *Flex[S, K, H]) int {
	return bytes.Compare(v.bytes(), o.bytes())
}

// Hash hashes the content under seed.
//
// Values with equal content hash identically regardless of representation
// or backend.
func (v *Flex[S, K, H]) Hash(seed maphash.Seed) uint64 {
	return maphash.String(seed, v.String())
}

// ---- concatenation ----

// Append returns the concatenation of v and s as a new value; v itself is
// unchanged.
//
// When v is already inlined and the combined payload still fits, the
// result is built by growing a copy of the inline buffer in place.
// Otherwise a fresh heap value is built through the builder, with total
// data copied exactly once whatever the input representations.
func (v *Flex[S, K, H]) Append(s S) Flex[S, K, H] {
	var k K
	rhs := k.Bytes(s)
	if v.disc == dInlined {
		c := *v
		if c.ib.tryConcat(rhs) {
			return c
		}
	}
	lhs := v.bytes()
	var b Builder[S, K, H]
	b.promote(len(lhs) + len(rhs))
	b.Write(lhs)
	b.Write(rhs)
	return b.Finish()
}
