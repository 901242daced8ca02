// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package winstructs

import (
	"github.com/siderolabs/go-devicecontrol/internal/ioutil"
)

// NewStoragePropertyQuery builds a standard query for the given property.
func NewStoragePropertyQuery(propertyID uint32) StoragePropertyQuery {
	q := StoragePropertyQuery(make([]byte, STORAGEPROPERTYQUERY_SIZE))

	q.Put_PropertyId(propertyID)
	q.Put_QueryType(PropertyStandardQuery)

	return q
}

// Supported returns true if the descriptor version is recent enough to carry
// all STORAGE_DEVICE_DESCRIPTOR fields.
func (s StorageDeviceDescriptor) Supported() bool {
	return len(s) >= STORAGEDESCRIPTORHEADER_SIZE && s.Get_Version() >= STORAGEDEVICEDESCRIPTOR_SIZE
}

// Fits returns true if the descriptor reported by the device fits into
// a buffer of the given capacity.
func (s StorageDeviceDescriptor) Fits(capacity int) bool {
	return uint64(s.Get_Size()) <= uint64(capacity)
}

// StringAt returns the NUL-terminated string at the offset.
//
// Zero offset means the field is absent. The second return value is false
// if the offset points into the header or outside of the descriptor.
func (s StorageDeviceDescriptor) StringAt(offset uint32) ([]byte, bool) {
	if offset == 0 {
		return nil, true
	}

	if offset < STORAGEDEVICEDESCRIPTOR_SIZE {
		return nil, false
	}

	return ioutil.CStringAt(s, offset)
}
