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
	"strings"

	"github.com/pkg/errors"
)

// Splitting produces detached values: every piece is restored through the
// smart constructors, so short pieces come out inlined and no piece pins
// the backing of v.

// SplitLines splits v into lines. The last line, if it is empty, is
// omitted from the result (rationale is: strings.Split("hello\nworld\n",
// "\n") -> ["hello", "world", ""]).
func SplitLines(v *Str, sep string) []Str {
	sv := strings.Split(v.String(), sep)
	l := len(sv)
	if l > 0 && sv[l-1] == "" {
		sv = sv[:l-1]
	}
	out := make([]Str, len(sv))
	for i, s := range sv {
		out[i] = New(s)
	}
	return out
}

// Split2 splits v by sep and expects exactly 2 parts.
func Split2(v *Str, sep string) (s1, s2 Str, err error) {
	parts := strings.Split(v.String(), sep)
	if len(parts) != 2 {
		return Str{}, Str{}, errors.Errorf("split2: %q has %v parts (expected 2, sep: %q)", v.String(), len(parts), sep)
	}
	return New(parts[0]), New(parts[1]), nil
}

// HeadTail splits v = (head+sep+tail) -> head, tail.
func HeadTail(v *Str, sep string) (head, tail Str, err error) {
	parts := strings.SplitN(v.String(), sep, 2)
	if len(parts) != 2 {
		return Str{}, Str{}, errors.Errorf("headtail: %q has no %q", v.String(), sep)
	}
	return New(parts[0]), New(parts[1]), nil
}
