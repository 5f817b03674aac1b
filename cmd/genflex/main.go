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

/*
Genflex generates the alias and constructor boilerplate of a string-kind
package.

Every kind package (str, rawstr, cstr, ...) exposes the same surface: three
type aliases - one per storage backend - and the constructor family for
each of them. The bodies are one-line trampolines into package flex; only
the semantic view type, the adapter type and the wording differ per kind.
Genflex writes that file so the kind packages cannot drift apart:

	genflex -pkg str -type Text -view string -empty "\"\"" -noun "UTF-8 string" -out zz_alias.go

It is normally driven by the go:generate line each kind package carries.
*/
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"golang.org/x/tools/imports"
)

// backend describes one storage backend an alias family covers.
type backend struct {
	suffix string // alias / constructor name suffix ("" for the default)
	typ    string // flex backend type
	note   string // clone/sharing behaviour for the alias doc comment
}

var backends = []backend{
	{"", "Local", "clone is a reference-count bump; values must not be shared between goroutines"},
	{"Shared", "Shared", "clone is O(1) and values are safe to share between goroutines"},
	{"Owned", "Owned", "clone duplicates heap content"},
}

// kind is everything the template needs to know about the package being
// generated.
type kind struct {
	Pkg   string // package name
	Type  string // adapter type implementing flex.Str
	View  string // semantic view type (the S of flex.Flex)
	Empty string // literal for the empty view value
	Noun  string // human wording, e.g. "UTF-8 string"
	Name  string // base alias name
}

func main() {
	log.SetPrefix("genflex: ")
	log.SetFlags(0)

	var k kind
	var out string
	pflag.StringVar(&k.Pkg, "pkg", "", "package name to generate for")
	pflag.StringVar(&k.Type, "type", "", "adapter type implementing flex.Str")
	pflag.StringVar(&k.View, "view", "string", "semantic view type")
	pflag.StringVar(&k.Empty, "empty", `""`, "literal for the empty view value")
	pflag.StringVar(&k.Noun, "noun", "string", "wording used in doc comments")
	pflag.StringVar(&k.Name, "name", "Str", "base alias name")
	pflag.StringVar(&out, "out", "zz_alias.go", "output file")
	pflag.Parse()

	if k.Pkg == "" || k.Type == "" {
		log.Fatal("-pkg and -type are required")
	}

	src, err := generate(&k)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(out, src, 0666); err != nil {
		log.Fatal(err)
	}
}

// generate renders the alias file for k and formats it.
func generate(k *kind) ([]byte, error) {
	buf := &bytes.Buffer{}

	fmt.Fprintf(buf, "// Code generated by genflex -pkg %s -type %s; DO NOT EDIT.\n\n", k.Pkg, k.Type)
	fmt.Fprintf(buf, "package %s\n\n", k.Pkg)
	fmt.Fprintf(buf, "import (\n\t\"lab.nexedi.com/kirr/flexstr/flex\"\n)\n")

	for _, b := range backends {
		name := alias(k, b)
		fmt.Fprintf(buf, "\n// %s is a flexible immutable %s backed by flex.%s:\n// %s.\n", name, k.Noun, b.typ, b.note)
		fmt.Fprintf(buf, "type %s = flex.Flex[%s, %s, flex.%s]\n", name, k.View, k.Type, b.typ)
	}

	fmt.Fprintf(buf, "\n// Empty is the empty %s.\nvar Empty = FromStatic(%s)\n", alias(k, backends[0]), k.Empty)

	for _, b := range backends {
		name := alias(k, b)
		emit := func(op, params, doc, body string) {
			fmt.Fprintf(buf, "\n%s\nfunc %s%s(%s) %s {\n\t%s\n}\n", doc, op, b.suffix, params, ret(op, name), body)
		}

		emit("New", "s "+k.View,
			docf(b, "New", name, fmt.Sprintf("returns s as a %s, selecting storage automatically:\n// empty input is wrapped statically, short input is inlined, long input\n// goes to the heap. The result does not alias s.", name)),
			trampoline("FromRef", k, b, "s"))
		emit("FromStatic", "s "+k.View,
			docf(b, "FromStatic", name, "wraps s without copying; s must stay alive and\n// unmodified for the life of the program."),
			trampoline("FromStatic", k, b, "s"))
		emit("TryInline", "s "+k.View,
			docf(b, "TryInline", name, "stores s inline in the returned value. It fails,\n// copying nothing, if s is longer than flex.InlineCap bytes."),
			trampoline("TryInline", k, b, "s"))
		emit("NewHeap", "s "+k.View,
			docf(b, "NewHeap", name, "forces heap storage, skipping the inline attempt.\n// Use it when s is already known to exceed flex.InlineCap bytes."),
			trampoline("FromRefHeap", k, b, "s"))
		emit("FromBorrow", "b []byte",
			docf(b, "FromBorrow", name, "wraps caller-held bytes without copying. The value\n// is valid only while b stays alive and unmodified."),
			trampoline("FromBorrow", k, b, "b"))
		emit("FromRaw", "b []byte",
			docf(b, "FromRaw", name, fmt.Sprintf("validates raw bytes as a %s and then selects\n// storage the way New does.", k.Noun)),
			trampoline("FromRaw", k, b, "b"))
	}

	src, err := imports.Process("zz_alias.go", buf.Bytes(), nil)
	return src, errors.Wrapf(err, "formatting generated %s", k.Pkg)
}

// alias returns the alias name for backend b.
func alias(k *kind, b backend) string {
	return b.suffix + k.Name
}

// ret returns the result type of constructor op on alias name.
func ret(op, name string) string {
	switch op {
	case "TryInline":
		return "(" + name + ", bool)"
	case "FromRaw":
		return "(" + name + ", error)"
	}
	return name
}

// docf builds the doc comment for one constructor. The default backend
// gets the full wording; the other backends refer back to it.
func docf(b backend, op, name, long string) string {
	if b.suffix != "" {
		return fmt.Sprintf("// %s%s is like %s but returns a %s.", op, b.suffix, op, name)
	}
	return fmt.Sprintf("// %s %s", op, long)
}

// trampoline builds the one-line body delegating to the flex core.
func trampoline(op string, k *kind, b backend, arg string) string {
	return fmt.Sprintf("return flex.%s[%s, %s, flex.%s](%s)", op, k.View, k.Type, b.typ, arg)
}
