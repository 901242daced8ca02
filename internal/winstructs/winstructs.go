// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package winstructs provides encoded definitions for Windows storage IOCTL structures.
//
// Each structure is a view over a byte slice in the layout the Windows kernel
// uses (little endian, natural alignment), so buffers can be passed directly to
// DeviceIoControl and decoded on any platform.
package winstructs

import "encoding/binary"

// Device type and access values used to build control codes.
//
//nolint:revive,stylecheck
const (
	FILE_DEVICE_DISK       = 0x00000007
	FILE_DEVICE_MASS_STORE = 0x0000002d

	METHOD_BUFFERED = 0
	FILE_ANY_ACCESS = 0
)

// Control codes, see CTL_CODE in winioctl.h.
//
//nolint:revive,stylecheck
const (
	IOCTL_DISK_GET_DRIVE_GEOMETRY    = (FILE_DEVICE_DISK << 16) | (FILE_ANY_ACCESS << 14) | (0x0000 << 2) | METHOD_BUFFERED
	IOCTL_DISK_GET_DRIVE_GEOMETRY_EX = (FILE_DEVICE_DISK << 16) | (FILE_ANY_ACCESS << 14) | (0x0028 << 2) | METHOD_BUFFERED
	IOCTL_STORAGE_QUERY_PROPERTY     = (FILE_DEVICE_MASS_STORE << 16) | (FILE_ANY_ACCESS << 14) | (0x0500 << 2) | METHOD_BUFFERED
)

// STORAGE_PROPERTY_ID values.
//
//nolint:revive,stylecheck
const (
	StorageDeviceProperty  = 0
	StorageAdapterProperty = 1
)

// STORAGE_QUERY_TYPE values.
//
//nolint:revive,stylecheck
const (
	PropertyStandardQuery = 0
	PropertyExistsQuery   = 1
)

// PARTITION_STYLE values.
//
//nolint:revive,stylecheck
const (
	PARTITION_STYLE_MBR = 0
	PARTITION_STYLE_GPT = 1
	PARTITION_STYLE_RAW = 2
)

var order = binary.LittleEndian
