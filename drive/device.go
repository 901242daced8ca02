// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package drive queries physical drives via device control requests.
package drive

import (
	"fmt"

	"go.uber.org/zap"
)

// DefaultBlockSize is the default block size in bytes.
const DefaultBlockSize = 512

// Handle is an open handle to a device.
type Handle interface {
	// IoControl issues a synchronous device control request.
	//
	// It returns the number of bytes written to out.
	IoControl(code uint32, in, out []byte) (uint32, error)
	// Close releases the handle.
	Close() error
}

// Opener opens a handle to the device at the path.
type Opener func(path string) (Handle, error)

// Device wraps device control operations on a physical drive.
//
// Device is not safe for concurrent use.
type Device struct {
	h    Handle
	path string

	options Options
}

// PhysicalDrivePath returns the path of the physical drive with the given index.
func PhysicalDrivePath(index uint) string {
	return fmt.Sprintf(`\\.\PhysicalDrive%d`, index)
}

// NewFromHandle returns a new Device which takes ownership of the handle.
func NewFromHandle(h Handle, path string, opts ...Option) *Device {
	return &Device{
		h:       h,
		path:    path,
		options: applyOptions(opts...),
	}
}

// NewFromPath opens the device at the path.
//
// The device is opened for querying only: no read or write access is requested,
// and other openers may read and write the device.
func NewFromPath(path string, opts ...Option) (*Device, error) {
	options := applyOptions(opts...)

	h, err := options.Opener(path)
	if err != nil {
		options.Logger.Debug("failed to open device", zap.String("path", path), zap.Error(err))

		return nil, newHandleOpenError(path, err)
	}

	return &Device{
		h:       h,
		path:    path,
		options: options,
	}, nil
}

// NewFromIndex opens the physical drive with the given index.
func NewFromIndex(index uint, opts ...Option) (*Device, error) {
	return NewFromPath(PhysicalDrivePath(index), opts...)
}

// Path returns the path the device was opened with.
func (d *Device) Path() string {
	return d.path
}

// Close releases the device handle.
//
// Closing an already closed device is a no-op.
func (d *Device) Close() error {
	if d.h == nil {
		return nil
	}

	h := d.h
	d.h = nil

	return h.Close()
}

func (d *Device) ioctl(op string, code uint32, in, out []byte) (uint32, error) {
	if d.h == nil {
		return 0, ErrClosed
	}

	n, err := d.h.IoControl(code, in, out)
	if err != nil {
		d.options.Logger.Debug("device control request failed",
			zap.String("path", d.path),
			zap.String("op", op),
			zap.Error(err),
		)

		return 0, newControlError(op, err)
	}

	return min(n, uint32(len(out))), nil
}

// withDevice opens the device at the path, runs fn and closes the device.
func withDevice(path string, opts []Option, fn func(*Device) error) error {
	d, err := NewFromPath(path, opts...)
	if err != nil {
		return err
	}

	defer d.Close() //nolint:errcheck

	return fn(d)
}
