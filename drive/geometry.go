// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package drive

import (
	"math/bits"

	"github.com/google/uuid"

	"github.com/siderolabs/go-devicecontrol/internal/gptutil"
	"github.com/siderolabs/go-devicecontrol/internal/winstructs"
)

// GiB is the size of a binary gigabyte.
const GiB = 1024 * 1024 * 1024

// Geometry describes the cylinder/track/sector layout of a drive.
type Geometry struct {
	Cylinders         uint64
	MediaType         MediaType
	TracksPerCylinder uint32
	SectorsPerTrack   uint32
	BytesPerSector    uint32
}

// Size returns the drive size in bytes derived from the geometry.
//
// The second return value is false if the size does not fit into 64 bits.
func (g Geometry) Size() (uint64, bool) {
	size := g.Cylinders

	for _, v := range []uint32{g.TracksPerCylinder, g.SectorsPerTrack, g.BytesPerSector} {
		var hi uint64

		hi, size = bits.Mul64(size, uint64(v))
		if hi != 0 {
			return 0, false
		}
	}

	return size, true
}

// SizeGiB returns the drive size in binary gigabytes.
func (g Geometry) SizeGiB() float64 {
	if size, ok := g.Size(); ok {
		return float64(size) / GiB
	}

	return float64(g.Cylinders) * float64(g.TracksPerCylinder) * float64(g.SectorsPerTrack) * float64(g.BytesPerSector) / GiB
}

// SectorSize returns the sector size in bytes, or DefaultBlockSize if the
// reported one is not a power of two.
func (g Geometry) SectorSize() uint {
	if !isPowerOf2(g.BytesPerSector) {
		return DefaultBlockSize
	}

	return uint(g.BytesPerSector)
}

func geometryFromStruct(s winstructs.DiskGeometry) Geometry {
	return Geometry{
		Cylinders:         s.Get_Cylinders(),
		MediaType:         MediaType(s.Get_MediaType()),
		TracksPerCylinder: s.Get_TracksPerCylinder(),
		SectorsPerTrack:   s.Get_SectorsPerTrack(),
		BytesPerSector:    s.Get_BytesPerSector(),
	}
}

// GetGeometry returns the drive geometry.
func (d *Device) GetGeometry() (Geometry, error) {
	buf := make([]byte, winstructs.DISKGEOMETRY_SIZE)

	n, err := d.ioctl("get drive geometry", winstructs.IOCTL_DISK_GET_DRIVE_GEOMETRY, nil, buf)
	if err != nil {
		return Geometry{}, err
	}

	if n < winstructs.DISKGEOMETRY_SIZE {
		return Geometry{}, ErrMalformedGeometry
	}

	return geometryFromStruct(winstructs.DiskGeometry(buf)), nil
}


// PartitionStyle is the partitioning scheme of a drive.
type PartitionStyle uint32

// Partition styles.
const (
	PartitionStyleMBR PartitionStyle = winstructs.PARTITION_STYLE_MBR
	PartitionStyleGPT PartitionStyle = winstructs.PARTITION_STYLE_GPT
	PartitionStyleRAW PartitionStyle = winstructs.PARTITION_STYLE_RAW
)

func (s PartitionStyle) String() string {
	switch s {
	case PartitionStyleMBR:
		return "MBR"
	case PartitionStyleGPT:
		return "GPT"
	default:
		return "RAW"
	}
}

// GeometryEx is the extended drive geometry.
type GeometryEx struct {
	Geometry

	// DiskSize is the size of the drive as reported by the OS.
	DiskSize uint64

	PartitionStyle PartitionStyle

	// MBRSignature is set for MBR drives.
	MBRSignature uint32
	// GPTDiskID is set for GPT drives.
	GPTDiskID uuid.UUID
}

// GetGeometryEx returns the extended drive geometry with partitioning information.
func (d *Device) GetGeometryEx() (GeometryEx, error) {
	buf := make([]byte, winstructs.DISKGEOMETRYEX_SIZE)

	n, err := d.ioctl("get drive geometry ex", winstructs.IOCTL_DISK_GET_DRIVE_GEOMETRY_EX, nil, buf)
	if err != nil {
		return GeometryEx{}, err
	}

	if n < winstructs.DISKGEOMETRYEX_HEADER_SIZE {
		return GeometryEx{}, ErrMalformedGeometry
	}

	s := winstructs.DiskGeometryEx(buf)

	res := GeometryEx{
		Geometry:       geometryFromStruct(s.Get_Geometry()),
		DiskSize:       s.Get_DiskSize(),
		PartitionStyle: PartitionStyleRAW,
	}

	if n < winstructs.DISKGEOMETRYEX_HEADER_SIZE+winstructs.DISKPARTITIONINFO_SIZE {
		return res, nil
	}

	info := s.PartitionInfo()

	switch PartitionStyle(info.Get_PartitionStyle()) {
	case PartitionStyleMBR:
		res.PartitionStyle = PartitionStyleMBR
		res.MBRSignature = info.Get_Mbr_Signature()
	case PartitionStyleGPT:
		diskID, err := gptutil.DiskID(info.Get_Gpt_DiskId())
		if err != nil {
			return GeometryEx{}, err
		}

		res.PartitionStyle = PartitionStyleGPT
		res.GPTDiskID = diskID
	case PartitionStyleRAW:
	}

	return res, nil
}

// GetDriveGeometry opens the device at the path and returns its geometry.
func GetDriveGeometry(path string, opts ...Option) (Geometry, error) {
	var g Geometry

	err := withDevice(path, opts, func(d *Device) error {
		var err error

		g, err = d.GetGeometry()

		return err
	})

	return g, err
}
