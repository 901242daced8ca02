// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/siderolabs/go-devicecontrol/drive"
)

// WriteTo writes the human-readable report.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer

	for _, res := range r.Serials {
		switch {
		case res.Err != nil:
			fmt.Fprintf(&buf, "Serial number query for %s failed. Error %s.\n", res.Path, errorCode(res.Err))
		case res.SerialNumber != "":
			fmt.Fprintf(&buf, "%s\n", res.SerialNumber)
		}
	}

	r.writeGeometry(&buf)

	n, err := w.Write(buf.Bytes())

	return int64(n), err
}

func (r *Report) writeGeometry(buf *bytes.Buffer) {
	g := r.Geometry

	if g.Err != nil {
		fmt.Fprintf(buf, "GetDriveGeometry failed. Error %s.\n", errorCode(g.Err))

		return
	}

	fmt.Fprintf(buf, "Drive path      = %s\n", g.Path)
	fmt.Fprintf(buf, "Cylinders       = %d\n", g.Geometry.Cylinders)
	fmt.Fprintf(buf, "Tracks/cylinder = %d\n", g.Geometry.TracksPerCylinder)
	fmt.Fprintf(buf, "Sectors/track   = %d\n", g.Geometry.SectorsPerTrack)
	fmt.Fprintf(buf, "Bytes/sector    = %d\n", g.Geometry.BytesPerSector)

	if size, ok := g.Geometry.Size(); ok {
		fmt.Fprintf(buf, "Disk size       = %d (Bytes)\n", size)
	} else {
		buf.WriteString("Disk size       = overflow\n")
	}

	fmt.Fprintf(buf, "                = %.2f (Gb)\n", g.Geometry.SizeGiB())

	if !r.extended {
		return
	}

	if g.ExErr != nil {
		fmt.Fprintf(buf, "GetDriveGeometryEx failed. Error %s.\n", errorCode(g.ExErr))

		return
	}

	fmt.Fprintf(buf, "Reported size   = %d (Bytes)\n", g.Ex.DiskSize)
	fmt.Fprintf(buf, "Sector size     = %d\n", g.Ex.Geometry.SectorSize())
	fmt.Fprintf(buf, "Partition style = %s\n", g.Ex.PartitionStyle)

	switch g.Ex.PartitionStyle {
	case drive.PartitionStyleMBR:
		fmt.Fprintf(buf, "Disk signature  = 0x%08x\n", g.Ex.MBRSignature)
	case drive.PartitionStyleGPT:
		fmt.Fprintf(buf, "Disk ID         = %s\n", g.Ex.GPTDiskID)
	case drive.PartitionStyleRAW:
	}
}

// errorCode formats the OS error code, or the error itself if it doesn't carry one.
func errorCode(err error) string {
	if code, ok := drive.ErrorCode(err); ok {
		return fmt.Sprintf("%d", code)
	}

	return err.Error()
}
