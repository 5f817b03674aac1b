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

// Package xtesting provides addons to std package testing.
package xtesting

import (
	"reflect"
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

// Asserter is a handy object to make asserts in tests.
//
// For example:
//
//	assert := xtesting.Assert(t)
//	assert.Eq(a, b)
//	..
type Asserter struct {
	t testing.TB
}

// Assert creates Asserter bound to t for reporting.
func Assert(t testing.TB) *Asserter {
	return &Asserter{t}
}

// Eq asserts that a == b and reports an error if not.
func (x *Asserter) Eq(a, b interface{}) {
	x.t.Helper()
	if !reflect.DeepEqual(a, b) {
		x.t.Errorf("not equal:\nhave: %v\nwant: %v\ndiff:\n%s", a, b, pretty.Compare(b, a))
	}
}

// True asserts that cond holds, reporting msg otherwise.
func (x *Asserter) True(cond bool, msg string) {
	x.t.Helper()
	if !cond {
		x.t.Errorf("assert failed: %s", msg)
	}
}

// False asserts that cond does not hold, reporting msg otherwise.
func (x *Asserter) False(cond bool, msg string) {
	x.t.Helper()
	if cond {
		x.t.Errorf("assert failed: !%s", msg)
	}
}
