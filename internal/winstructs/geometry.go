// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package winstructs

// DISK_GEOMETRY:
//
//	LARGE_INTEGER Cylinders;          // 0
//	MEDIA_TYPE    MediaType;          // 8
//	DWORD         TracksPerCylinder;  // 12
//	DWORD         SectorsPerTrack;    // 16
//	DWORD         BytesPerSector;     // 20

// DiskGeometry is a view over DISK_GEOMETRY.
type DiskGeometry []byte

// DISKGEOMETRY_SIZE is the size of DISK_GEOMETRY.
const DISKGEOMETRY_SIZE = 24 //nolint:revive,stylecheck

//nolint:revive,stylecheck
func (s DiskGeometry) Get_Cylinders() uint64 { return order.Uint64(s[0:8]) }

//nolint:revive,stylecheck
func (s DiskGeometry) Put_Cylinders(v uint64) { order.PutUint64(s[0:8], v) }

//nolint:revive,stylecheck
func (s DiskGeometry) Get_MediaType() uint32 { return order.Uint32(s[8:12]) }

//nolint:revive,stylecheck
func (s DiskGeometry) Put_MediaType(v uint32) { order.PutUint32(s[8:12], v) }

//nolint:revive,stylecheck
func (s DiskGeometry) Get_TracksPerCylinder() uint32 { return order.Uint32(s[12:16]) }

//nolint:revive,stylecheck
func (s DiskGeometry) Put_TracksPerCylinder(v uint32) { order.PutUint32(s[12:16], v) }

//nolint:revive,stylecheck
func (s DiskGeometry) Get_SectorsPerTrack() uint32 { return order.Uint32(s[16:20]) }

//nolint:revive,stylecheck
func (s DiskGeometry) Put_SectorsPerTrack(v uint32) { order.PutUint32(s[16:20], v) }

//nolint:revive,stylecheck
func (s DiskGeometry) Get_BytesPerSector() uint32 { return order.Uint32(s[20:24]) }

//nolint:revive,stylecheck
func (s DiskGeometry) Put_BytesPerSector(v uint32) { order.PutUint32(s[20:24], v) }

// DISK_GEOMETRY_EX:
//
//	DISK_GEOMETRY Geometry;  // 0
//	LARGE_INTEGER DiskSize;  // 24
//	BYTE          Data[1];   // 32: DISK_PARTITION_INFO, DISK_DETECTION_INFO

// DiskGeometryEx is a view over DISK_GEOMETRY_EX.
type DiskGeometryEx []byte

// DISKGEOMETRYEX_SIZE is the buffer size used for IOCTL_DISK_GET_DRIVE_GEOMETRY_EX.
//
// DISK_GEOMETRY_EX with DISK_PARTITION_INFO and DISK_DETECTION_INFO takes 112 bytes.
const DISKGEOMETRYEX_SIZE = 0x80 //nolint:revive,stylecheck

// DISKGEOMETRYEX_HEADER_SIZE is the size of the fixed part of DISK_GEOMETRY_EX.
const DISKGEOMETRYEX_HEADER_SIZE = 32 //nolint:revive,stylecheck

//nolint:revive,stylecheck
func (s DiskGeometryEx) Get_Geometry() DiskGeometry { return DiskGeometry(s[0:DISKGEOMETRY_SIZE]) }

//nolint:revive,stylecheck
func (s DiskGeometryEx) Get_DiskSize() uint64 { return order.Uint64(s[24:32]) }

//nolint:revive,stylecheck
func (s DiskGeometryEx) Put_DiskSize(v uint64) { order.PutUint64(s[24:32], v) }

// PartitionInfo returns the DISK_PARTITION_INFO following the fixed part.
func (s DiskGeometryEx) PartitionInfo() DiskPartitionInfo {
	return DiskPartitionInfo(s[DISKGEOMETRYEX_HEADER_SIZE : DISKGEOMETRYEX_HEADER_SIZE+DISKPARTITIONINFO_SIZE])
}

// DISK_PARTITION_INFO:
//
//	DWORD SizeOfPartitionInfo;  // 0
//	PARTITION_STYLE PartitionStyle;  // 4
//	union {
//	  struct { DWORD Signature; DWORD CheckSum; } Mbr;  // 8
//	  struct { GUID DiskId; } Gpt;  // 8
//	};

// DiskPartitionInfo is a view over DISK_PARTITION_INFO.
type DiskPartitionInfo []byte

// DISKPARTITIONINFO_SIZE is the size of DISK_PARTITION_INFO.
const DISKPARTITIONINFO_SIZE = 24 //nolint:revive,stylecheck

//nolint:revive,stylecheck
func (s DiskPartitionInfo) Get_SizeOfPartitionInfo() uint32 { return order.Uint32(s[0:4]) }

//nolint:revive,stylecheck
func (s DiskPartitionInfo) Put_SizeOfPartitionInfo(v uint32) { order.PutUint32(s[0:4], v) }

//nolint:revive,stylecheck
func (s DiskPartitionInfo) Get_PartitionStyle() uint32 { return order.Uint32(s[4:8]) }

//nolint:revive,stylecheck
func (s DiskPartitionInfo) Put_PartitionStyle(v uint32) { order.PutUint32(s[4:8], v) }

//nolint:revive,stylecheck
func (s DiskPartitionInfo) Get_Mbr_Signature() uint32 { return order.Uint32(s[8:12]) }

//nolint:revive,stylecheck
func (s DiskPartitionInfo) Put_Mbr_Signature(v uint32) { order.PutUint32(s[8:12], v) }

//nolint:revive,stylecheck
func (s DiskPartitionInfo) Get_Mbr_CheckSum() uint32 { return order.Uint32(s[12:16]) }

//nolint:revive,stylecheck
func (s DiskPartitionInfo) Get_Gpt_DiskId() []byte { return s[8:24] }

//nolint:revive,stylecheck
func (s DiskPartitionInfo) Put_Gpt_DiskId(v []byte) { copy(s[8:24], v) }
