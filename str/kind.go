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

// Package str provides flexible immutable UTF-8 strings.
//
// A Str transparently wraps a static string, an inline payload of up to
// flex.InlineCap bytes, or heap storage, and is cheap to clone in all
// three cases. SharedStr and OwnedStr are the same type over the Shared
// and Owned storage backends. See package flex for the underlying model.
package str

//go:generate go run lab.nexedi.com/kirr/flexstr/cmd/genflex -pkg str -type Text -view string -empty "\"\"" -noun "UTF-8 string" -out zz_alias.go

import (
	"unicode/utf8"

	"lab.nexedi.com/kirr/flexstr/flex"
	"lab.nexedi.com/kirr/flexstr/mem"
)

// Text adapts Go strings holding UTF-8 text to the flex core.
//
// Strings coming in through the typed constructors are trusted to be valid
// UTF-8 the same way the rest of the Go ecosystem trusts them; only the
// raw-bytes path validates.
type Text struct{}

func (Text) FromBytes(b []byte) string {
	return mem.String(b)
}

func (Text) TryFromRaw(b []byte) (string, error) {
	if valid, bad := utf8Range(b); valid != len(b) {
		return "", &flex.ConvertError{Kind: "str", ValidLen: valid, BadLen: bad}
	}
	return mem.String(b), nil
}

func (Text) Empty() (string, bool) {
	return "", true
}

func (Text) Length(s string) int {
	return len(s)
}

func (Text) Bytes(s string) []byte {
	return mem.Bytes(s)
}

// utf8Range scans b and returns the length of its valid UTF-8 prefix
// together with the length of the invalid span that follows, if any.
// bad=0 with valid<len(b) means b ends in the middle of a sequence.
//
// The invalid span is the maximal subpart of the ill-formed subsequence
// (Unicode TUS "U+FFFD substitution of maximal subparts"): the longest
// prefix of the remaining bytes that could still begin some well-formed
// sequence. A byte that can start nothing, or a second byte outside the
// range its lead accepts, is a 1-byte span on its own.
func utf8Range(b []byte) (valid, bad int) {
	i := 0
	for i < len(b) {
		if b[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRune(b[i:])
		if r != utf8.RuneError || size > 1 {
			i += size
			continue
		}

		want, accept := seqLen(b[i])
		if want == 0 {
			return i, 1 // stray continuation or illegal byte
		}
		j := i + 1
		if j < len(b) {
			if b[j] < accept.lo || accept.hi < b[j] {
				// second byte cannot follow this lead (overlong
				// encoding, surrogate half, out of range): the lead
				// alone is the subpart
				return i, 1
			}
			j++
			for j < len(b) && j < i+want && b[j]&0xC0 == 0x80 {
				j++
			}
		}
		if j == len(b) && j < i+want {
			return i, 0 // sequence truncated by end of input
		}
		return i, j - i
	}
	return len(b), 0
}

// acceptRange bounds the second byte a UTF-8 lead accepts; RFC 3629
// excludes overlong encodings, surrogates and values above U+10FFFF via
// the second byte.
type acceptRange struct {
	lo, hi byte
}

// seqLen returns the sequence length a UTF-8 leading byte announces,
// together with the range its second byte must fall in, or 0 if c cannot
// start a sequence.
func seqLen(c byte) (int, acceptRange) {
	switch {
	case 0xC2 <= c && c <= 0xDF:
		return 2, acceptRange{0x80, 0xBF}
	case c == 0xE0:
		return 3, acceptRange{0xA0, 0xBF}
	case c == 0xED:
		return 3, acceptRange{0x80, 0x9F}
	case 0xE1 <= c && c <= 0xEF:
		return 3, acceptRange{0x80, 0xBF}
	case c == 0xF0:
		return 4, acceptRange{0x90, 0xBF}
	case 0xF1 <= c && c <= 0xF3:
		return 4, acceptRange{0x80, 0xBF}
	case c == 0xF4:
		return 4, acceptRange{0x80, 0x8F}
	default:
		return 0, acceptRange{} // 0x80-0xC1 and 0xF5-0xFF start nothing
	}
}
