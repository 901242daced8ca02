// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

//go:build windows

package drive

import (
	"golang.org/x/sys/windows"
)

type osHandle windows.Handle

// openDevice opens the device with no data access, shared for read and write.
func openDevice(path string) (Handle, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, err
	}

	h, err := windows.CreateFile(
		p,
		0,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_EXISTING,
		0,
		0,
	)
	if err != nil {
		return nil, err
	}

	return osHandle(h), nil
}

func (h osHandle) IoControl(code uint32, in, out []byte) (uint32, error) {
	var (
		inBuf, outBuf *byte
		returned      uint32
	)

	if len(in) > 0 {
		inBuf = &in[0]
	}

	if len(out) > 0 {
		outBuf = &out[0]
	}

	err := windows.DeviceIoControl(windows.Handle(h), code, inBuf, uint32(len(in)), outBuf, uint32(len(out)), &returned, nil)

	return returned, err
}

func (h osHandle) Close() error {
	return windows.CloseHandle(windows.Handle(h))
}
