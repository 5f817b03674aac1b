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

// Str is the capability set a wrapped string kind supplies to the core.
//
// An implementation is a zero-size struct; the core always calls these
// methods on its zero value. See str.Text, rawstr.Raw, cstr.C, osstr.OS and
// pathstr.Path for the standard kinds.
type Str[S any] interface {
	// FromBytes presents already-vetted storage bytes as the semantic
	// type, without copying.
	FromBytes(b []byte) S

	// TryFromRaw validates raw bytes and presents them as the semantic
	// type, without copying. On failure the error is (or wraps) a
	// *ConvertError carrying the valid-prefix and bad-span lengths.
	TryFromRaw(b []byte) (S, error)

	// Empty returns the kind's shared empty value, if the kind has one.
	Empty() (S, bool)

	// Length returns the storage length of s in bytes (not characters).
	Length(s S) int

	// Bytes returns the storage bytes of s, without copying.
	Bytes(s S) []byte
}
