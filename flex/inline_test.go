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

package flex

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewInline(t *testing.T) {
	var tests = []struct {
		input string
		ok    bool
	}{
		{"", true},
		{"a", true},
		{strings.Repeat("x", InlineCap-1), true},
		{strings.Repeat("x", InlineCap), true},
		{strings.Repeat("x", InlineCap+1), false},
		{strings.Repeat("x", 10*InlineCap), false},
	}

	for _, tt := range tests {
		ib, ok := newInline([]byte(tt.input))
		if ok != tt.ok {
			t.Errorf("newInline(%d bytes) -> ok=%v  ; want %v", len(tt.input), ok, tt.ok)
			continue
		}
		if !ok {
			// failure must hand back the zero buffer - nothing copied
			if ib != (inline{}) {
				t.Errorf("newInline(%d bytes) failed but wrote into the buffer", len(tt.input))
			}
			continue
		}
		if string(ib.slice()) != tt.input {
			t.Errorf("newInline(%q) -> %q", tt.input, ib.slice())
		}
	}
}

func TestInlineTryConcat(t *testing.T) {
	ib, _ := newInline([]byte("hello "))

	if !ib.tryConcat([]byte("world")) {
		t.Fatal("tryConcat: fitting append failed")
	}
	if string(ib.slice()) != "hello world" {
		t.Fatalf("tryConcat -> %q", ib.slice())
	}

	// overflowing append must be all-or-nothing
	before := ib
	if ib.tryConcat(bytes.Repeat([]byte("y"), InlineCap)) {
		t.Fatal("tryConcat: overflowing append succeeded")
	}
	if ib != before {
		t.Fatal("tryConcat: overflowing append modified the buffer")
	}

	// fill up to exactly InlineCap
	if !ib.tryConcat(bytes.Repeat([]byte("z"), InlineCap-len(ib.slice()))) {
		t.Fatal("tryConcat: append up to capacity failed")
	}
}
