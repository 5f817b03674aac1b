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
	"strings"
	"testing"
)

type tbuilder = Builder[string, testKind, Local]

func TestCeilPow2(t *testing.T) {
	var tests = []struct{ x, y int }{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 8},
		{23, 32},
		{44, 64},
		{1<<20 - 1, 1 << 20},
		{1 << 20, 1 << 20},
	}

	for _, tt := range tests {
		if y := ceilPow2(tt.x); y != tt.y {
			t.Errorf("ceilPow2(%v) -> %v  ; want %v", tt.x, y, tt.y)
		}
	}
}

func TestBuilderEmpty(t *testing.T) {
	var b tbuilder
	v := b.Finish()
	if !v.IsStatic() || !v.IsEmpty() {
		t.Fatalf("empty Finish: IsStatic=%v IsEmpty=%v", v.IsStatic(), v.IsEmpty())
	}
}

func TestBuilderInlineSized(t *testing.T) {
	var b tbuilder
	b.WriteString("count to ")
	b.WriteByte('1')
	b.WriteByte('0')
	if b.Len() != 11 {
		t.Fatalf("Len() -> %d", b.Len())
	}
	v := b.Finish()
	if !v.IsInlined() || v.View() != "count to 10" {
		t.Fatalf("Finish: IsInlined=%v View=%q", v.IsInlined(), v.View())
	}
}

// Writing byte by byte, accumulation stays inline through byte InlineCap
// and moves to the heap buffer on the first byte past it.
func TestBuilderPromotionBoundary(t *testing.T) {
	var b tbuilder
	for i := 0; i < InlineCap; i++ {
		b.WriteByte('a')
		if b.state != bSmall {
			t.Fatalf("byte %d: state=%v  ; want bSmall", i+1, b.state)
		}
	}
	b.WriteByte('b')
	if b.state != bRegular {
		t.Fatalf("byte %d: state=%v  ; want bRegular", InlineCap+1, b.state)
	}

	v := b.Finish()
	if !v.IsHeap() {
		t.Fatal("Finish after promotion: not heap")
	}
	if want := strings.Repeat("a", InlineCap) + "b"; v.View() != want {
		t.Fatalf("View() -> %q", v.View())
	}
}

func TestBuilderOneShotLarge(t *testing.T) {
	var b tbuilder
	big := strings.Repeat("x", InlineCap+1)
	b.WriteString(big)
	v := b.Finish()
	if !v.IsHeap() || v.View() != big {
		t.Fatalf("IsHeap=%v View=%q", v.IsHeap(), v.View())
	}
}

func TestBuilderWriteRune(t *testing.T) {
	var b tbuilder
	b.WriteString("smile ")
	n, err := b.WriteRune('☺')
	if n != 3 || err != nil {
		t.Fatalf("WriteRune -> %d, %v", n, err)
	}
	if v := b.Finish(); v.View() != "smile ☺" {
		t.Fatalf("View() -> %q", v.View())
	}
}

func TestBuilderGrow(t *testing.T) {
	var b tbuilder
	b.Grow(5)
	if b.state != bSmall {
		t.Fatal("Grow(5) left the inline buffer")
	}
	b.Grow(InlineCap + 1)
	if b.state != bRegular {
		t.Fatal("Grow past InlineCap did not promote")
	}
	b.WriteString("after grow")
	if v := b.Finish(); v.View() != "after grow" {
		t.Fatalf("View() -> %q", v.View())
	}
}

func TestBuilderWriteOwnedAdopts(t *testing.T) {
	big := strings.Repeat("q", 3*InlineCap)
	var b tbuilder
	b.WriteOwned(big)
	if b.state != bLarge {
		t.Fatal("WriteOwned(big) into empty builder did not adopt")
	}
	v := b.Finish()
	if !v.IsHeap() || v.View() != big {
		t.Fatalf("IsHeap=%v View=%q", v.IsHeap(), v.View())
	}
	// adopted string is passed through, not copied
	if sdata(v.String()) != sdata(big) {
		t.Fatal("Finish copied the adopted string")
	}
}

func TestBuilderWriteOwnedSmall(t *testing.T) {
	var b tbuilder
	b.WriteOwned("tiny")
	if b.state != bSmall {
		t.Fatal("WriteOwned(small) left the inline buffer")
	}
	if v := b.Finish(); !v.IsInlined() || v.View() != "tiny" {
		t.Fatalf("IsInlined=%v View=%q", v.IsInlined(), v.View())
	}
}

func TestBuilderWriteOwnedAfterContent(t *testing.T) {
	big := strings.Repeat("w", 2*InlineCap)
	var b tbuilder
	b.WriteString("lead ")
	b.WriteOwned(big)
	v := b.Finish()
	if !v.IsHeap() || v.View() != "lead "+big {
		t.Fatalf("IsHeap=%v View=%q", v.IsHeap(), v.View())
	}
}

func TestBuilderWriteAfterAdopt(t *testing.T) {
	big := strings.Repeat("e", 2*InlineCap)
	var b tbuilder
	b.WriteOwned(big)
	b.WriteString(" tail")
	if b.state != bRegular {
		t.Fatalf("state=%v  ; want bRegular", b.state)
	}
	if v := b.Finish(); v.View() != big+" tail" {
		t.Fatalf("View() -> %q", v.View())
	}
}

func TestBuilderFinishNoCopy(t *testing.T) {
	// the regular buffer is handed to the backend, not re-copied
	var b tbuilder
	big := strings.Repeat("r", 2*InlineCap)
	b.WriteString(big)
	p := &b.buf[0]
	v := b.Finish()
	if sdata(v.String()) != p {
		t.Fatal("Finish copied the regular buffer")
	}
}
