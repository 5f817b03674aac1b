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
	"fmt"
	"reflect"
	"strings"
)

// Heap is the capability set a storage backend provides for heap-resident
// payload. A backend is fixed per concrete alias at definition time; the
// core never inspects which backend is active beyond these four operations.
//
// A handle must occupy exactly two machine words - the core verifies this
// on the first heap construction for an alias and panics on mismatch (see
// checkHeap).
type Heap[H any] interface {
	// FromRef copies borrowed bytes into owned storage.
	// It is invoked on the zero value of the handle type.
	FromRef(b []byte) H

	// FromOwned adopts an already-owned immutable string without copying.
	// It is invoked on the zero value of the handle type.
	FromOwned(s string) H

	// Clone returns a handle observably equal to the original. Cost is
	// backend-dependent: a count bump or header copy for sharing backends,
	// a full duplication for an exclusive-owning backend.
	Clone() H

	// View returns the payload.
	View() string
}

// checkHeap verifies that the backend handle has the expected two-word
// footprint.
//
// The check is done at run time, not compile time: Go generics cannot
// constrain the size of a type parameter, so a misconfigured alias is
// caught on its first heap construction instead.
func checkHeap[H any]() {
	htyp := reflect.TypeOf((*H)(nil)).Elem() // reflect.TypeFor needs go >= 1.22
	size := int(htyp.Size())
	if size != 2*WordSize {
		panic(fmt.Sprintf("flex: backend %s is %d bytes; must be exactly %d (2 machine words)",
			htyp, size, 2*WordSize))
	}
}

// ---- standard backends ----

type localBox struct {
	s    string
	refs int
}

// Local is the single-owner reference-counted backend.
//
// Clone is a plain (non-atomic) count bump and is therefore cheap, but a
// value using Local must not be shared across goroutines. This is the
// default backend for the per-kind aliases.
type Local struct {
	box *localBox
	n   int // payload length, cached to avoid the box indirection
}

func (Local) FromRef(b []byte) Local {
	return Local{box: &localBox{s: string(b), refs: 1}, n: len(b)}
}

func (Local) FromOwned(s string) Local {
	return Local{box: &localBox{s: s, refs: 1}, n: len(s)}
}

func (l Local) Clone() Local {
	l.box.refs++
	return l
}

func (l Local) View() string {
	return l.box.s
}

// Refs reports how many handles share the payload. Intended for
// introspection and tests.
func (l Local) Refs() int {
	return l.box.refs
}

// Shared is the shareable backend.
//
// The handle is an immutable string header; Clone copies the header and the
// garbage collector takes the role an atomic reference count plays
// elsewhere. Values using Shared are safe to share across goroutines.
type Shared struct {
	s string
}

func (Shared) FromRef(b []byte) Shared {
	return Shared{s: string(b)}
}

func (Shared) FromOwned(s string) Shared {
	return Shared{s: s}
}

func (s Shared) Clone() Shared {
	return s
}

func (s Shared) View() string {
	return s.s
}

// Owned is the exclusive-owning backend.
//
// Clone performs a full byte duplication, so cloning a value using Owned is
// O(length), not O(1) as with Local or Shared.
type Owned struct {
	s string
}

func (Owned) FromRef(b []byte) Owned {
	return Owned{s: string(b)}
}

func (Owned) FromOwned(s string) Owned {
	return Owned{s: s}
}

func (o Owned) Clone() Owned {
	return Owned{s: strings.Clone(o.s)}
}

func (o Owned) View() string {
	return o.s
}
