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

package main

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	k := &kind{
		Pkg:   "str",
		Type:  "Text",
		View:  "string",
		Empty: `""`,
		Noun:  "UTF-8 string",
		Name:  "Str",
	}
	out, err := generate(k)
	if err != nil {
		t.Fatal(err)
	}
	src := string(out)

	if !strings.HasPrefix(src, "// Code generated by genflex -pkg str -type Text; DO NOT EDIT.\n") {
		t.Errorf("missing generated-code marker:\n%s", src[:80])
	}

	// one alias per backend, the Empty value and the full constructor
	// family for each alias
	for _, want := range []string{
		"package str\n",
		"type Str = flex.Flex[string, Text, flex.Local]\n",
		"type SharedStr = flex.Flex[string, Text, flex.Shared]\n",
		"type OwnedStr = flex.Flex[string, Text, flex.Owned]\n",
		`var Empty = FromStatic("")` + "\n",
		"func New(s string) Str {\n\treturn flex.FromRef[string, Text, flex.Local](s)\n}\n",
		"func TryInline(s string) (Str, bool) {\n",
		"func FromRaw(b []byte) (Str, error) {\n",
		"func NewHeapShared(s string) SharedStr {\n\treturn flex.FromRefHeap[string, Text, flex.Shared](s)\n}\n",
		"func FromBorrowOwned(b []byte) OwnedStr {\n",
		"// NewShared is like New but returns a SharedStr.\n",
		"// FromRaw validates raw bytes as a UTF-8 string and then selects\n",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source lacks %q", want)
		}
	}

	if n := strings.Count(src, "\nfunc "); n != 6*3 {
		t.Errorf("generated %d constructors  ; want %d", n, 6*3)
	}
}

func TestGenerateByteView(t *testing.T) {
	k := &kind{
		Pkg:   "rawstr",
		Type:  "Raw",
		View:  "[]byte",
		Empty: "nil",
		Noun:  "raw byte string",
		Name:  "Str",
	}
	out, err := generate(k)
	if err != nil {
		t.Fatal(err)
	}
	src := string(out)

	for _, want := range []string{
		"type Str = flex.Flex[[]byte, Raw, flex.Local]\n",
		"var Empty = FromStatic(nil)\n",
		"func New(s []byte) Str {\n",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source lacks %q", want)
		}
	}
}
