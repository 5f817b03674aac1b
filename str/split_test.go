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

package str

import (
	"testing"
)

func TestSplitLines(t *testing.T) {
	var tests = []struct {
		input, sep string
		output     []string
	}{
		{"", "\n", []string{}},
		{"hello", "\n", []string{"hello"}},
		{"hello\n", "\n", []string{"hello"}},
		{"hello\nworld", "\n", []string{"hello", "world"}},
		{"hello\nworld\n", "\n", []string{"hello", "world"}},
		{"hello\x00world\x00", "\x00", []string{"hello", "world"}},
	}

	for _, tt := range tests {
		v := New(tt.input)
		sv := SplitLines(&v, tt.sep)
		bad := len(sv) != len(tt.output)
		if !bad {
			for i := range sv {
				if sv[i].View() != tt.output[i] {
					bad = true
				}
			}
		}
		if bad {
			t.Errorf("splitlines(%q, %q) -> %v lines  ; want %q", tt.input, tt.sep, len(sv), tt.output)
		}
	}
}

func TestSplit2(t *testing.T) {
	var tests = []struct {
		input, s1, s2 string
		ok            bool
	}{
		{"", "", "", false},
		{" ", "", "", true},
		{"hello", "", "", false},
		{"hello world", "hello", "world", true},
		{"hello world 1", "", "", false},
	}

	for _, tt := range tests {
		v := New(tt.input)
		s1, s2, err := Split2(&v, " ")
		ok := err == nil
		if s1.View() != tt.s1 || s2.View() != tt.s2 || ok != tt.ok {
			t.Errorf("split2(%q) -> %q %q %v  ; want %q %q %v",
				tt.input, s1.View(), s2.View(), ok, tt.s1, tt.s2, tt.ok)
		}
	}
}

func TestHeadTail(t *testing.T) {
	var tests = []struct {
		input, head, tail string
		ok                bool
	}{
		{"", "", "", false},
		{" ", "", "", true},
		{"  ", "", " ", true},
		{"hello world", "hello", "world", true},
		{"hello world 1", "hello", "world 1", true},
		{"hello  world 2", "hello", " world 2", true},
	}

	for _, tt := range tests {
		v := New(tt.input)
		head, tail, err := HeadTail(&v, " ")
		ok := err == nil
		if head.View() != tt.head || tail.View() != tt.tail || ok != tt.ok {
			t.Errorf("headtail(%q) -> %q %q %v  ; want %q %q %v",
				tt.input, head.View(), tail.View(), ok, tt.head, tt.tail, tt.ok)
		}
	}
}
