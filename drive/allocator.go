// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package drive

import "sync"

// Allocator provides scratch buffers.
//
// Every buffer returned by Alloc is passed to Free exactly once.
type Allocator interface {
	// Alloc returns a zeroed buffer of exactly size bytes.
	Alloc(size int) []byte
	// Free releases the buffer.
	Free(buf []byte)
}

var defaultAllocator Allocator = &poolAllocator{}

type poolAllocator struct {
	pool sync.Pool
}

func (a *poolAllocator) Alloc(size int) []byte {
	if p, ok := a.pool.Get().(*[]byte); ok && cap(*p) >= size {
		buf := (*p)[:size]
		clear(buf)

		return buf
	}

	return make([]byte, size)
}

func (a *poolAllocator) Free(buf []byte) {
	a.pool.Put(&buf)
}

// scratch is a buffer acquired from an Allocator, released at most once.
type scratch struct {
	buf   []byte
	alloc Allocator
}

func newScratch(alloc Allocator, size int) *scratch {
	return &scratch{
		buf:   alloc.Alloc(size),
		alloc: alloc,
	}
}

func (s *scratch) release() {
	if s.buf == nil {
		return
	}

	s.alloc.Free(s.buf)
	s.buf = nil
}
