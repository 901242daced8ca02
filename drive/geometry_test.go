// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package drive_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siderolabs/go-devicecontrol/drive"
	"github.com/siderolabs/go-devicecontrol/drive/drivetest"
	"github.com/siderolabs/go-devicecontrol/internal/winstructs"
)

func TestGeometrySize(t *testing.T) {
	g := drive.Geometry{
		Cylinders:         10,
		TracksPerCylinder: 2,
		SectorsPerTrack:   18,
		BytesPerSector:    512,
	}

	size, ok := g.Size()
	assert.True(t, ok)
	assert.EqualValues(t, 184320, size)
	assert.Equal(t, "0.00", fmt.Sprintf("%.2f", g.SizeGiB()))

	g = drive.Geometry{
		Cylinders:         121601,
		TracksPerCylinder: 255,
		SectorsPerTrack:   63,
		BytesPerSector:    512,
	}

	size, ok = g.Size()
	assert.True(t, ok)
	assert.EqualValues(t, 1000202273280, size)
	assert.Equal(t, "931.51", fmt.Sprintf("%.2f", g.SizeGiB()))

	g = drive.Geometry{
		Cylinders:         1 << 40,
		TracksPerCylinder: 255,
		SectorsPerTrack:   63,
		BytesPerSector:    4096,
	}

	_, ok = g.Size()
	assert.False(t, ok)
	assert.InDelta(t, float64(1<<40)*255*63*4096/drive.GiB, g.SizeGiB(), 1)
}

func TestGetDriveGeometry(t *testing.T) {
	geometry := drive.Geometry{
		Cylinders:         121601,
		MediaType:         drive.MediaTypeFixed,
		TracksPerCylinder: 255,
		SectorsPerTrack:   63,
		BytesPerSector:    512,
	}

	for _, test := range []struct { //nolint:govet
		name string
		disk *drivetest.Disk

		expected      drive.Geometry
		expectedError error
	}{
		{
			name:     "ok",
			disk:     &drivetest.Disk{Geometry: drivetest.NewGeometry(geometry)},
			expected: geometry,
		},
		{
			name: "failure",
			disk: &drivetest.Disk{
				Errors: map[uint32]error{
					winstructs.IOCTL_DISK_GET_DRIVE_GEOMETRY: drivetest.ErrorNotReady,
				},
			},
			expectedError: drivetest.ErrorNotReady,
		},
		{
			name:          "short reply",
			disk:          &drivetest.Disk{Geometry: make([]byte, 10)},
			expectedError: drive.ErrMalformedGeometry,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, alloc, opts := setup(t, map[uint]*drivetest.Disk{0: test.disk})

			g, err := drive.GetDriveGeometry(drive.PhysicalDrivePath(0), opts...)

			if test.expectedError != nil {
				require.ErrorIs(t, err, test.expectedError)
				assert.Zero(t, g)
			} else {
				require.NoError(t, err)
				assert.Equal(t, test.expected, g)
				assert.Equal(t, "fixed", g.MediaType.String())
			}

			calls := test.disk.CallsFor(winstructs.IOCTL_DISK_GET_DRIVE_GEOMETRY)
			require.Len(t, calls, 1)
			assert.Zero(t, calls[0].InLen)
			assert.Equal(t, winstructs.DISKGEOMETRY_SIZE, calls[0].OutLen)

			assert.Empty(t, alloc.Sizes)
		})
	}
}

func TestGetDriveGeometryMissingDrive(t *testing.T) {
	host, _, opts := setup(t, nil)

	_, err := drive.GetDriveGeometry(drive.PhysicalDrivePath(7), opts...)

	var openErr *drive.HandleOpenError

	require.ErrorAs(t, err, &openErr)
	assert.Zero(t, host.Opened)

	code, ok := drive.ErrorCode(err)
	assert.True(t, ok)
	assert.EqualValues(t, 2, code)
}

func TestGetGeometryEx(t *testing.T) {
	geometry := drive.Geometry{
		Cylinders:         121601,
		MediaType:         drive.MediaTypeFixed,
		TracksPerCylinder: 255,
		SectorsPerTrack:   63,
		BytesPerSector:    512,
	}

	for _, test := range []struct {
		name     string
		expected drive.GeometryEx
	}{
		{
			name: "gpt",
			expected: drive.GeometryEx{
				Geometry:       geometry,
				DiskSize:       1000204886016,
				PartitionStyle: drive.PartitionStyleGPT,
				GPTDiskID:      uuid.MustParse("ddda0816-8b53-47bf-a813-9ebb1f73aaa2"),
			},
		},
		{
			name: "mbr",
			expected: drive.GeometryEx{
				Geometry:       geometry,
				DiskSize:       1000204886016,
				PartitionStyle: drive.PartitionStyleMBR,
				MBRSignature:   0x1a2b3c4d,
			},
		},
		{
			name: "raw",
			expected: drive.GeometryEx{
				Geometry:       geometry,
				DiskSize:       1000204886016,
				PartitionStyle: drive.PartitionStyleRAW,
			},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			disk := &drivetest.Disk{GeometryEx: drivetest.NewGeometryEx(test.expected)}

			_, _, opts := setup(t, map[uint]*drivetest.Disk{0: disk})

			d, err := drive.NewFromIndex(0, opts...)
			require.NoError(t, err)

			t.Cleanup(func() {
				assert.NoError(t, d.Close())
			})

			g, err := d.GetGeometryEx()
			require.NoError(t, err)

			assert.Equal(t, test.expected, g)
			assert.Equal(t, strings.ToUpper(test.name), g.PartitionStyle.String())
		})
	}
}

func TestGeometrySectorSize(t *testing.T) {
	for bytesPerSector, expected := range map[uint32]uint{
		512:  512,
		4096: 4096,
		520:  drive.DefaultBlockSize,
		0:    drive.DefaultBlockSize,
	} {
		assert.Equal(t, expected, drive.Geometry{BytesPerSector: bytesPerSector}.SectorSize(), "bytes per sector %d", bytesPerSector)
	}
}
