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

package str

import (
	"fmt"

	"lab.nexedi.com/kirr/flexstr/flex"
)

// Sprintf is like fmt.Sprintf but produces a Str, formatting through the
// flex builder: short results come out inlined without touching the heap.
func Sprintf(format string, argv ...interface{}) Str {
	var b flex.Builder[string, Text, flex.Local]
	sprintf(&b, format, argv...)
	return b.Finish()
}

// SprintfShared is like Sprintf but returns a SharedStr.
func SprintfShared(format string, argv ...interface{}) SharedStr {
	var b flex.Builder[string, Text, flex.Shared]
	sprintf(&b, format, argv...)
	return b.Finish()
}

// SprintfOwned is like Sprintf but returns a OwnedStr.
func SprintfOwned(format string, argv ...interface{}) OwnedStr {
	var b flex.Builder[string, Text, flex.Owned]
	sprintf(&b, format, argv...)
	return b.Finish()
}

func sprintf[H flex.Heap[H]](b *flex.Builder[string, Text, H], format string, argv ...interface{}) {
	_, err := fmt.Fprintf(b, format, argv...)
	if err != nil {
		// the builder's Write never fails; if an error shows up here it
		// is an internal bug, not a condition for the caller to handle
		panic("str: Sprintf: builder write failed: " + err.Error())
	}
}

// Concat returns the concatenation of parts as a Str, copying every part
// exactly once.
func Concat(parts ...string) Str {
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	var b flex.Builder[string, Text, flex.Local]
	b.Grow(total)
	for _, p := range parts {
		b.WriteString(p)
	}
	return b.Finish()
}

// Join returns the elements of parts joined by sep as a Str.
func Join(parts []string, sep string) Str {
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	if len(parts) > 1 {
		total += len(sep) * (len(parts) - 1)
	}
	var b flex.Builder[string, Text, flex.Local]
	b.Grow(total)
	for i, p := range parts {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(p)
	}
	return b.Finish()
}

// Collect concatenates already-constructed values into one Str.
//
// A single long heap value is passed through to the result without its
// bytes being copied at all.
func Collect(values ...Str) Str {
	var b flex.Builder[string, Text, flex.Local]
	for i := range values {
		v := &values[i]
		if v.IsHeap() {
			b.WriteOwned(v.String())
		} else {
			b.WriteString(v.String())
		}
	}
	return b.Finish()
}
