// Copyright (C) 2022-2026  Nexedi SA and Contributors.
//                          Kirill Smelkov <kirr@nexedi.com>
//
// This program is free software: you can Use, Study, Modify and Redistribute
// it under the terms of the GNU General Public License version 3, or (at your
// option) any later version, as published by the Free Software Foundation.
//
// This program is distributed WITHOUT ANY WARRANTY; without even the implied
// warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//
// See COPYING file for full licensing terms.

package cstr

import (
	"testing"

	"github.com/pkg/errors"

	"lab.nexedi.com/kirr/flexstr/flex"
)

func TestFromRaw(t *testing.T) {
	var tests = []struct {
		input string
		err   *flex.ConvertError // nil = ok
	}{
		{"\x00", nil},
		{"abc\x00", nil},
		{"", &flex.ConvertError{Kind: "cstr", ValidLen: 0, BadLen: 0}},
		{"abc", &flex.ConvertError{Kind: "cstr", ValidLen: 3, BadLen: 0}},
		{"ab\x00c\x00", &flex.ConvertError{Kind: "cstr", ValidLen: 2, BadLen: 1}},
		{"\x00\x00", &flex.ConvertError{Kind: "cstr", ValidLen: 0, BadLen: 1}},
	}

	for _, tt := range tests {
		v, err := FromRaw([]byte(tt.input))
		if tt.err == nil {
			if err != nil {
				t.Errorf("FromRaw(%q) -> error %v", tt.input, err)
			} else if v.String() != tt.input {
				t.Errorf("FromRaw(%q) -> %q", tt.input, v.String())
			}
			continue
		}

		var e *flex.ConvertError
		if !errors.As(err, &e) {
			t.Errorf("FromRaw(%q) -> %v  ; want *flex.ConvertError", tt.input, err)
			continue
		}
		if *e != *tt.err {
			t.Errorf("FromRaw(%q) -> %+v  ; want %+v", tt.input, e, tt.err)
		}
	}
}

func TestFromString(t *testing.T) {
	v, err := FromString("hello")
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != "hello\x00" || !v.IsInlined() {
		t.Fatalf("FromString -> %q inlined=%v", v.String(), v.IsInlined())
	}
	if Inner(&v) != "hello" {
		t.Fatalf("Inner -> %q", Inner(&v))
	}

	_, err = FromString("he\x00llo")
	var e *flex.ConvertError
	if !errors.As(err, &e) || e.ValidLen != 2 || e.BadLen != 1 {
		t.Fatalf("FromString(interior NUL) -> %v", err)
	}
}

func TestEmpty(t *testing.T) {
	if Empty.String() != "\x00" || Inner(&Empty) != "" {
		t.Fatalf("Empty -> %q", Empty.String())
	}
	// Len counts storage bytes, terminator included
	if Empty.Len() != 1 {
		t.Fatalf("Empty.Len() -> %d", Empty.Len())
	}
}

func TestInnerZeroValue(t *testing.T) {
	var v Str
	if Inner(&v) != "" {
		t.Fatalf("Inner(zero) -> %q", Inner(&v))
	}
}

func TestInnerUnterminated(t *testing.T) {
	// typed constructors trust their input; payload that sneaked in
	// without a terminator must not lose its last byte
	v := New("abc")
	if Inner(&v) != "abc" {
		t.Fatalf("Inner(unterminated) -> %q", Inner(&v))
	}
}
