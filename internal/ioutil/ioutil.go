// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package ioutil provides helpers for buffers returned by the kernel.
package ioutil

import (
	"bytes"
	"slices"
)

// CStringAt returns a copy of the NUL-terminated string starting at offset.
//
// If there is no terminator, the string runs up to the end of the buffer.
// The second return value is false if offset is out of bounds.
func CStringAt(buf []byte, offset uint32) ([]byte, bool) {
	if uint64(offset) >= uint64(len(buf)) {
		return nil, false
	}

	s := buf[offset:]

	if idx := bytes.IndexByte(s, 0); idx >= 0 {
		s = s[:idx]
	}

	return slices.Clone(s), true
}
