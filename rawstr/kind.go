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

// Package rawstr provides flexible immutable raw byte strings.
//
// A rawstr.Str holds arbitrary bytes with no encoding requirement; the
// raw-bytes constructors never fail. Views returned by Str.View alias the
// value's storage and must be treated as read-only.
package rawstr

//go:generate go run lab.nexedi.com/kirr/flexstr/cmd/genflex -pkg rawstr -type Raw -view []byte -empty nil -noun "raw byte string" -out zz_alias.go

// Raw adapts arbitrary byte payload to the flex core. No validation: any
// byte sequence is a valid raw string.
type Raw struct{}

func (Raw) FromBytes(b []byte) []byte {
	return b
}

func (Raw) TryFromRaw(b []byte) ([]byte, error) {
	return b, nil
}

func (Raw) Empty() ([]byte, bool) {
	return nil, true
}

func (Raw) Length(b []byte) int {
	return len(b)
}

func (Raw) Bytes(b []byte) []byte {
	return b
}
