// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package drivetest provides fake drives for tests.
package drivetest

import (
	"syscall"

	"github.com/siderolabs/go-devicecontrol/drive"
	"github.com/siderolabs/go-devicecontrol/internal/winstructs"
)

// Windows error codes.
const (
	ErrorInvalidFunction = syscall.Errno(1)
	ErrorFileNotFound    = syscall.Errno(2)
	ErrorAccessDenied    = syscall.Errno(5)
	ErrorNotReady        = syscall.Errno(21)
	ErrorGenFailure      = syscall.Errno(31)
)

// Call is a recorded device control request.
type Call struct {
	Code   uint32
	InLen  int
	OutLen int
}

// Disk is a fake physical drive.
//
// Replies are copied into the caller's buffer, truncated to its size.
// A nil reply fails the request with ErrorInvalidFunction.
type Disk struct {
	Geometry   []byte
	GeometryEx []byte
	Descriptor []byte

	// DescriptorFunc overrides Descriptor, it receives the output buffer capacity.
	DescriptorFunc func(capacity int) []byte

	// Errors fail requests with the given control codes.
	Errors map[uint32]error

	Calls []Call
}

// CallsFor returns the recorded requests with the given control code.
func (d *Disk) CallsFor(code uint32) []Call {
	var calls []Call

	for _, c := range d.Calls {
		if c.Code == code {
			calls = append(calls, c)
		}
	}

	return calls
}

func (d *Disk) reply(code uint32, out []byte) (uint32, error) {
	if err, ok := d.Errors[code]; ok {
		return 0, err
	}

	var reply []byte

	switch code {
	case winstructs.IOCTL_DISK_GET_DRIVE_GEOMETRY:
		reply = d.Geometry
	case winstructs.IOCTL_DISK_GET_DRIVE_GEOMETRY_EX:
		reply = d.GeometryEx
	case winstructs.IOCTL_STORAGE_QUERY_PROPERTY:
		reply = d.Descriptor

		if d.DescriptorFunc != nil {
			reply = d.DescriptorFunc(len(out))
		}
	}

	if reply == nil {
		return 0, ErrorInvalidFunction
	}

	return uint32(copy(out, reply)), nil
}

// Host is a set of fake drives addressed by path.
//
// It tracks opened and closed handles.
type Host struct {
	Disks map[string]*Disk

	Opened       int
	Closed       int
	DoubleClosed int
}

// NewHost returns a host with the given drives attached by index.
func NewHost(disks map[uint]*Disk) *Host {
	h := &Host{
		Disks: map[string]*Disk{},
	}

	for index, disk := range disks {
		h.Disks[drive.PhysicalDrivePath(index)] = disk
	}

	return h
}

// Open implements drive.Opener.
func (h *Host) Open(path string) (drive.Handle, error) {
	disk, ok := h.Disks[path]
	if !ok {
		return nil, ErrorFileNotFound
	}

	h.Opened++

	return &handle{host: h, disk: disk}, nil
}

// Live returns the number of handles which are not closed.
func (h *Host) Live() int {
	return h.Opened - h.Closed
}

type handle struct {
	host   *Host
	disk   *Disk
	closed bool
}

func (h *handle) IoControl(code uint32, in, out []byte) (uint32, error) {
	if h.closed {
		return 0, syscall.Errno(6) // ERROR_INVALID_HANDLE
	}

	h.disk.Calls = append(h.disk.Calls, Call{Code: code, InLen: len(in), OutLen: len(out)})

	return h.disk.reply(code, out)
}

func (h *handle) Close() error {
	if h.closed {
		h.host.DoubleClosed++

		return syscall.Errno(6)
	}

	h.closed = true
	h.host.Closed++

	return nil
}

// Allocator is a drive.Allocator which tracks buffers.
type Allocator struct {
	live map[*byte]struct{}

	Sizes       []int
	Freed       int
	DoubleFreed int
}

// NewAllocator returns a new tracking allocator.
func NewAllocator() *Allocator {
	return &Allocator{
		live: map[*byte]struct{}{},
	}
}

// Alloc implements drive.Allocator.
func (a *Allocator) Alloc(size int) []byte {
	buf := make([]byte, size, max(size, 1))

	a.live[&buf[:1][0]] = struct{}{}
	a.Sizes = append(a.Sizes, size)

	return buf
}

// Free implements drive.Allocator.
func (a *Allocator) Free(buf []byte) {
	key := &buf[:1][0]

	if _, ok := a.live[key]; !ok {
		a.DoubleFreed++

		return
	}

	delete(a.live, key)
	a.Freed++
}

// Live returns the number of buffers which are not freed.
func (a *Allocator) Live() int {
	return len(a.live)
}
