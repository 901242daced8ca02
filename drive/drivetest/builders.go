// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package drivetest

import (
	"github.com/siderolabs/go-devicecontrol/drive"
	"github.com/siderolabs/go-devicecontrol/internal/gptutil"
	"github.com/siderolabs/go-devicecontrol/internal/winstructs"
)

// NewGeometry encodes a DISK_GEOMETRY reply.
func NewGeometry(g drive.Geometry) []byte {
	buf := make([]byte, winstructs.DISKGEOMETRY_SIZE)
	putGeometry(winstructs.DiskGeometry(buf), g)

	return buf
}

// NewGeometryEx encodes a DISK_GEOMETRY_EX reply.
func NewGeometryEx(g drive.GeometryEx) []byte {
	buf := make([]byte, winstructs.DISKGEOMETRYEX_SIZE)
	s := winstructs.DiskGeometryEx(buf)

	putGeometry(s.Get_Geometry(), g.Geometry)
	s.Put_DiskSize(g.DiskSize)

	info := s.PartitionInfo()
	info.Put_SizeOfPartitionInfo(winstructs.DISKPARTITIONINFO_SIZE)
	info.Put_PartitionStyle(uint32(g.PartitionStyle))

	switch g.PartitionStyle {
	case drive.PartitionStyleMBR:
		info.Put_Mbr_Signature(g.MBRSignature)
	case drive.PartitionStyleGPT:
		info.Put_Gpt_DiskId(gptutil.Encode(g.GPTDiskID))
	case drive.PartitionStyleRAW:
	}

	return buf
}

func putGeometry(s winstructs.DiskGeometry, g drive.Geometry) {
	s.Put_Cylinders(g.Cylinders)
	s.Put_MediaType(uint32(g.MediaType))
	s.Put_TracksPerCylinder(g.TracksPerCylinder)
	s.Put_SectorsPerTrack(g.SectorsPerTrack)
	s.Put_BytesPerSector(g.BytesPerSector)
}

// DescriptorFields describes a STORAGE_DEVICE_DESCRIPTOR reply.
//
// Empty strings are encoded as a zero offset.
type DescriptorFields struct {
	VendorID        string
	ProductID       string
	ProductRevision string
	SerialNumber    string

	BusType   drive.BusType
	Removable bool

	// Version defaults to the size of STORAGE_DEVICE_DESCRIPTOR.
	Version uint32
}

// NewDescriptor encodes a STORAGE_DEVICE_DESCRIPTOR reply with the strings appended after the header.
func NewDescriptor(f DescriptorFields) []byte {
	buf := make([]byte, winstructs.STORAGEDEVICEDESCRIPTOR_SIZE)

	appendString := func(s string) uint32 {
		if s == "" {
			return 0
		}

		offset := uint32(len(buf))
		buf = append(buf, s...)
		buf = append(buf, 0)

		return offset
	}

	vendorOffset := appendString(f.VendorID)
	productOffset := appendString(f.ProductID)
	revisionOffset := appendString(f.ProductRevision)
	serialOffset := appendString(f.SerialNumber)

	version := f.Version
	if version == 0 {
		version = winstructs.STORAGEDEVICEDESCRIPTOR_SIZE
	}

	desc := winstructs.StorageDeviceDescriptor(buf)
	desc.Put_Version(version)
	desc.Put_Size(uint32(len(buf)))
	desc.Put_RemovableMedia(f.Removable)
	desc.Put_BusType(uint32(f.BusType))
	desc.Put_VendorIdOffset(vendorOffset)
	desc.Put_ProductIdOffset(productOffset)
	desc.Put_ProductRevisionOffset(revisionOffset)
	desc.Put_SerialNumberOffset(serialOffset)

	return buf
}
