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

package flex

import (
	"fmt"
)

// ConvertError is returned when raw bytes cannot be presented as a kind's
// semantic type.
//
// It carries enough position information for the caller to choose a
// truncation or lossy-substitution strategy instead of failing outright.
type ConvertError struct {
	Kind     string // string kind that rejected the input, e.g. "str"
	ValidLen int    // length of the valid prefix, in bytes
	BadLen   int    // length of the invalid span; 0 means the input ended mid-sequence
}

func (e *ConvertError) Error() string {
	if e.BadLen == 0 {
		return fmt.Sprintf("%s: truncated input after %d valid bytes", e.Kind, e.ValidLen)
	}
	return fmt.Sprintf("%s: invalid %d-byte span at byte %d", e.Kind, e.BadLen, e.ValidLen)
}
