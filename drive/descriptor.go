// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package drive

import (
	"fmt"

	"github.com/siderolabs/go-pointer"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"

	"github.com/siderolabs/go-devicecontrol/internal/winstructs"
)

const (
	// initialDescriptorSize leaves room for the vendor, product and serial strings of a typical device.
	initialDescriptorSize = winstructs.STORAGEDEVICEDESCRIPTOR_SIZE + 0x100

	// maxDescriptorAttempts is the initial attempt plus one retry with the size reported by the device.
	maxDescriptorAttempts = 2

	maxDescriptorSize = 64 * 1024
)

// Descriptor is the storage device descriptor of a drive.
//
// String fields are nil if the device doesn't report them.
type Descriptor struct { //nolint:govet
	VendorID        *string
	ProductID       *string
	ProductRevision *string
	SerialNumber    *string

	BusType         BusType
	DeviceType      uint8
	Removable       bool
	CommandQueueing bool
}

// GetDescriptor returns the storage device descriptor.
func (d *Device) GetDescriptor() (*Descriptor, error) {
	var res *Descriptor

	err := d.queryDescriptor(func(desc winstructs.StorageDeviceDescriptor) error {
		var err error

		res, err = decodeDescriptor(desc)

		return err
	})

	return res, err
}

// GetSerialNumber returns the drive serial number.
//
// Empty string is returned if the device doesn't report a serial number.
func (d *Device) GetSerialNumber() (string, error) {
	var serial string

	err := d.queryDescriptor(func(desc winstructs.StorageDeviceDescriptor) error {
		s, err := descriptorString(desc, desc.Get_SerialNumberOffset())
		if err != nil {
			return err
		}

		if s != nil {
			serial = *s
		}

		return nil
	})

	return serial, err
}

// GetPhysicalDriveSerialNumber opens the physical drive with the given index and returns its serial number.
func GetPhysicalDriveSerialNumber(index uint, opts ...Option) (string, error) {
	var serial string

	err := withDevice(PhysicalDrivePath(index), opts, func(d *Device) error {
		var err error

		serial, err = d.GetSerialNumber()

		return err
	})

	return serial, err
}

// queryDescriptor issues the storage property query and calls fn with the complete descriptor.
//
// The descriptor is only valid until fn returns.
func (d *Device) queryDescriptor(fn func(winstructs.StorageDeviceDescriptor) error) error {
	if d.h == nil {
		return ErrClosed
	}

	query := winstructs.NewStoragePropertyQuery(winstructs.StorageDeviceProperty)
	size := uint32(initialDescriptorSize)

	for attempt := 0; attempt < maxDescriptorAttempts; attempt++ {
		required, err := d.tryQueryDescriptor(query, size, fn)
		if err != nil {
			return err
		}

		if required == 0 {
			return nil
		}

		d.options.Logger.Debug("storage device descriptor doesn't fit the buffer",
			zap.String("path", d.path),
			zap.Int("attempt", attempt),
			zap.Uint32("size", size),
			zap.Uint32("required", required),
		)

		if required > maxDescriptorSize {
			break
		}

		size = required
	}

	return ErrDescriptorTooLarge
}

// tryQueryDescriptor returns the required buffer size if the descriptor doesn't fit, zero otherwise.
func (d *Device) tryQueryDescriptor(query winstructs.StoragePropertyQuery, size uint32, fn func(winstructs.StorageDeviceDescriptor) error) (uint32, error) {
	buf := newScratch(d.options.Allocator, int(size))
	defer buf.release()

	n, err := d.ioctl("query storage property", winstructs.IOCTL_STORAGE_QUERY_PROPERTY, query, buf.buf)
	if err != nil {
		return 0, err
	}

	desc := winstructs.StorageDeviceDescriptor(buf.buf[:n])

	if !desc.Supported() {
		return 0, ErrMalformedDescriptor
	}

	if !desc.Fits(len(buf.buf)) {
		return desc.Get_Size(), nil
	}

	if n < winstructs.STORAGEDEVICEDESCRIPTOR_SIZE {
		return 0, ErrMalformedDescriptor
	}

	return 0, fn(desc)
}

func decodeDescriptor(desc winstructs.StorageDeviceDescriptor) (*Descriptor, error) {
	res := &Descriptor{
		BusType:         BusType(desc.Get_BusType()),
		DeviceType:      desc.Get_DeviceType(),
		Removable:       desc.Get_RemovableMedia(),
		CommandQueueing: desc.Get_CommandQueueing(),
	}

	for _, field := range []struct {
		offset uint32
		dest   **string
	}{
		{desc.Get_VendorIdOffset(), &res.VendorID},
		{desc.Get_ProductIdOffset(), &res.ProductID},
		{desc.Get_ProductRevisionOffset(), &res.ProductRevision},
		{desc.Get_SerialNumberOffset(), &res.SerialNumber},
	} {
		s, err := descriptorString(desc, field.offset)
		if err != nil {
			return nil, err
		}

		*field.dest = s
	}

	return res, nil
}

// descriptorString returns the string at the offset decoded from the ANSI code page.
func descriptorString(desc winstructs.StorageDeviceDescriptor, offset uint32) (*string, error) {
	raw, ok := desc.StringAt(offset)
	if !ok {
		return nil, fmt.Errorf("%w: string offset %d is out of bounds", ErrMalformedDescriptor, offset)
	}

	if offset == 0 {
		return nil, nil //nolint:nilnil
	}

	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return pointer.To(string(raw)), nil
	}

	return pointer.To(string(decoded)), nil
}
