// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package drive

import "strconv"

// MediaType is the MEDIA_TYPE of a drive.
type MediaType uint32

// Media types of interest, floppy formats are not listed.
const (
	MediaTypeUnknown   MediaType = 0
	MediaTypeRemovable MediaType = 11
	MediaTypeFixed     MediaType = 12
)

func (m MediaType) String() string {
	switch m {
	case MediaTypeUnknown:
		return "unknown"
	case MediaTypeRemovable:
		return "removable"
	case MediaTypeFixed:
		return "fixed"
	default:
		return "media(" + strconv.FormatUint(uint64(m), 10) + ")"
	}
}

// BusType is the STORAGE_BUS_TYPE of a drive.
type BusType uint32

// Bus types.
const (
	BusTypeUnknown BusType = iota
	BusTypeScsi
	BusTypeAtapi
	BusTypeAta
	BusType1394
	BusTypeSsa
	BusTypeFibre
	BusTypeUsb
	BusTypeRAID
	BusTypeiScsi
	BusTypeSas
	BusTypeSata
	BusTypeSd
	BusTypeMmc
	BusTypeVirtual
	BusTypeFileBackedVirtual
	BusTypeSpaces
	BusTypeNvme
	BusTypeSCM
	BusTypeUfs
)

var busTypeNames = [...]string{
	BusTypeUnknown:           "Unknown",
	BusTypeScsi:              "SCSI",
	BusTypeAtapi:             "ATAPI",
	BusTypeAta:               "ATA",
	BusType1394:              "1394",
	BusTypeSsa:               "SSA",
	BusTypeFibre:             "Fibre",
	BusTypeUsb:               "USB",
	BusTypeRAID:              "RAID",
	BusTypeiScsi:             "iSCSI",
	BusTypeSas:               "SAS",
	BusTypeSata:              "SATA",
	BusTypeSd:                "SD",
	BusTypeMmc:               "MMC",
	BusTypeVirtual:           "Virtual",
	BusTypeFileBackedVirtual: "FileBackedVirtual",
	BusTypeSpaces:            "Spaces",
	BusTypeNvme:              "NVMe",
	BusTypeSCM:               "SCM",
	BusTypeUfs:               "UFS",
}

func (b BusType) String() string {
	if int(b) < len(busTypeNames) {
		return busTypeNames[b]
	}

	return "bus(" + strconv.FormatUint(uint64(b), 10) + ")"
}
