// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package drive

import (
	"errors"
	"fmt"
	"syscall"
)

// Common errors.
var (
	ErrClosed              = errors.New("device is closed")
	ErrNotSupported        = errors.New("device control is not supported on this platform")
	ErrMalformedGeometry   = errors.New("malformed drive geometry")
	ErrMalformedDescriptor = errors.New("malformed storage device descriptor")
	ErrDescriptorTooLarge  = errors.New("storage device descriptor does not fit the buffer")
)

// HandleOpenError is returned when the device can't be opened.
type HandleOpenError struct {
	Path string
	Code syscall.Errno
}

func (e *HandleOpenError) Error() string {
	return fmt.Sprintf("failed to open %q: %s (error %d)", e.Path, e.Code, uint32(e.Code))
}

// Unwrap returns the OS error.
func (e *HandleOpenError) Unwrap() error {
	return e.Code
}

// ControlError is returned when the OS rejects a device control request.
type ControlError struct {
	Op   string
	Code syscall.Errno
}

func (e *ControlError) Error() string {
	return fmt.Sprintf("%s failed: %s (error %d)", e.Op, e.Code, uint32(e.Code))
}

// Unwrap returns the OS error.
func (e *ControlError) Unwrap() error {
	return e.Code
}

// ErrorCode returns the OS error code carried by err.
func ErrorCode(err error) (uint32, bool) {
	var errno syscall.Errno

	if !errors.As(err, &errno) {
		return 0, false
	}

	return uint32(errno), true
}

func newHandleOpenError(path string, err error) error {
	var errno syscall.Errno

	if !errors.As(err, &errno) {
		return fmt.Errorf("failed to open %q: %w", path, err)
	}

	return &HandleOpenError{Path: path, Code: errno}
}

func newControlError(op string, err error) error {
	var errno syscall.Errno

	if !errors.As(err, &errno) {
		return fmt.Errorf("%s failed: %w", op, err)
	}

	return &ControlError{Op: op, Code: errno}
}
