// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siderolabs/go-devicecontrol/drive"
	"github.com/siderolabs/go-devicecontrol/drive/drivetest"
)

func execute(t *testing.T, host *drivetest.Host, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd(drive.WithOpener(host.Open))

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--wait=false"}, args...))

	err := cmd.Execute()

	assert.Zero(t, host.Live())

	return out.String(), err
}

func TestRootCmd(t *testing.T) {
	host := drivetest.NewHost(map[uint]*drivetest.Disk{
		2: {
			Geometry: drivetest.NewGeometry(drive.Geometry{
				Cylinders:         10,
				TracksPerCylinder: 2,
				SectorsPerTrack:   18,
				BytesPerSector:    512,
			}),
			Descriptor: drivetest.NewDescriptor(drivetest.DescriptorFields{SerialNumber: "0123ABC"}),
		},
	})

	out, err := execute(t, host, "--drive", "2", "--geometry-drive", "2")
	require.NoError(t, err)

	assert.Equal(t, `0123ABC
Drive path      = \\.\PhysicalDrive2
Cylinders       = 10
Tracks/cylinder = 2
Sectors/track   = 18
Bytes/sector    = 512
Disk size       = 184320 (Bytes)
                = 0.00 (Gb)
`, out)
}

func TestRootCmdGeometryFailed(t *testing.T) {
	host := drivetest.NewHost(nil)

	out, err := execute(t, host, "--drive", "0", "--geometry-path", `\\.\PhysicalDrive5`)
	require.ErrorIs(t, err, errGeometryFailed)

	assert.Equal(t, `Serial number query for \\.\PhysicalDrive0 failed. Error 2.
GetDriveGeometry failed. Error 2.
`, out)
}

func TestRootCmdBadArgs(t *testing.T) {
	_, err := execute(t, drivetest.NewHost(nil), "extra")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errGeometryFailed)
}

func TestRootCmdSingleDisk(t *testing.T) {
	host := drivetest.NewHost(map[uint]*drivetest.Disk{
		0: {
			Geometry: drivetest.NewGeometry(drive.Geometry{
				Cylinders:         10,
				TracksPerCylinder: 2,
				SectorsPerTrack:   18,
				BytesPerSector:    512,
			}),
			Descriptor: drivetest.NewDescriptor(drivetest.DescriptorFields{SerialNumber: "0123ABC"}),
		},
	})

	for _, test := range []struct {
		name string
		args []string
	}{
		{
			name: "default",
		},
		{
			name: "debug",
			args: []string{"--debug"},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			cmd := newRootCmd(drive.WithOpener(host.Open))

			var stdout, stderr bytes.Buffer

			cmd.SetOut(&stdout)
			cmd.SetErr(&stderr)
			cmd.SetArgs(append([]string{"--wait=false"}, test.args...))

			require.NoError(t, cmd.Execute())
			assert.Zero(t, host.Live())

			assert.Equal(t, `0123ABC
Serial number query for \\.\PhysicalDrive1 failed. Error 2.
Drive path      = \\.\PhysicalDrive0
Cylinders       = 10
Tracks/cylinder = 2
Sectors/track   = 18
Bytes/sector    = 512
Disk size       = 184320 (Bytes)
                = 0.00 (Gb)
`, stdout.String())

			if test.args == nil {
				assert.Empty(t, stderr.String())

				return
			}

			assert.Contains(t, stderr.String(), "serial number query failed")
			assert.NotContains(t, stderr.String(), "\n\t")
			assert.NotContains(t, stderr.String(), "report.Run")
		})
	}
}
