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

package pathstr

import (
	"path/filepath"
	"testing"
)

func TestJoinPath(t *testing.T) {
	v := New("etc")
	j := JoinPath(&v, "ssh", "sshd_config")
	if want := filepath.Join("etc", "ssh", "sshd_config"); j.View() != want {
		t.Fatalf("JoinPath -> %q  ; want %q", j.View(), want)
	}
	// short paths stay inline
	if !j.IsInlined() {
		t.Fatal("JoinPath result not inlined")
	}
}

func TestExtBase(t *testing.T) {
	v := New(filepath.Join("dir", "file.txt"))
	if Ext(&v) != ".txt" {
		t.Fatalf("Ext -> %q", Ext(&v))
	}
	if Base(&v) != "file.txt" {
		t.Fatalf("Base -> %q", Base(&v))
	}
}

func TestMapKey(t *testing.T) {
	// inline-sized paths as map keys allocate nothing per lookup
	cache := map[string]int{}
	for i, p := range []string{"a/b", "c/d", "a/b"} {
		v := New(p)
		cache[v.String()] = i
	}
	if len(cache) != 2 || cache["a/b"] != 2 {
		t.Fatalf("cache = %v", cache)
	}
}
