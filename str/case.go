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

// Case conversion without the intermediate string allocation: the result
// is accumulated directly in a flex builder, so converting an inline-sized
// value stays allocation-free.

package str

import (
	"strings"
	"unicode"

	"lab.nexedi.com/kirr/flexstr/flex"
)

// ToASCIILower returns v with ASCII letters lowercased; other bytes pass
// through untouched.
func ToASCIILower(v *Str) Str {
	return mapASCII(v, func(c byte) byte {
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		return c
	})
}

// ToASCIIUpper returns v with ASCII letters uppercased; other bytes pass
// through untouched.
func ToASCIIUpper(v *Str) Str {
	return mapASCII(v, func(c byte) byte {
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		return c
	})
}

func mapASCII(v *Str, f func(byte) byte) Str {
	s := v.String()
	var b flex.Builder[string, Text, flex.Local]
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		b.WriteByte(f(s[i]))
	}
	return b.Finish()
}

// ToLower returns v lowercased with full Unicode case mapping.
func ToLower(v *Str) Str {
	return mapRunes(v, unicode.ToLower)
}

// ToUpper returns v uppercased with full Unicode case mapping.
func ToUpper(v *Str) Str {
	return mapRunes(v, unicode.ToUpper)
}

func mapRunes(v *Str, f func(rune) rune) Str {
	s := v.String()
	var b flex.Builder[string, Text, flex.Local]
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(f(r))
	}
	return b.Finish()
}

// EqualFold reports whether v and s are equal under Unicode case folding.
func EqualFold(v *Str, s string) bool {
	return strings.EqualFold(v.String(), s)
}
