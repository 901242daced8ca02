// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package winstructs

// STORAGE_PROPERTY_QUERY:
//
//	STORAGE_PROPERTY_ID PropertyId;            // 0
//	STORAGE_QUERY_TYPE  QueryType;             // 4
//	BYTE                AdditionalParameters[1];  // 8

// StoragePropertyQuery is a view over STORAGE_PROPERTY_QUERY.
type StoragePropertyQuery []byte

// STORAGEPROPERTYQUERY_SIZE is the size of STORAGE_PROPERTY_QUERY.
const STORAGEPROPERTYQUERY_SIZE = 12 //nolint:revive,stylecheck

//nolint:revive,stylecheck
func (s StoragePropertyQuery) Get_PropertyId() uint32 { return order.Uint32(s[0:4]) }

//nolint:revive,stylecheck
func (s StoragePropertyQuery) Put_PropertyId(v uint32) { order.PutUint32(s[0:4], v) }

//nolint:revive,stylecheck
func (s StoragePropertyQuery) Get_QueryType() uint32 { return order.Uint32(s[4:8]) }

//nolint:revive,stylecheck
func (s StoragePropertyQuery) Put_QueryType(v uint32) { order.PutUint32(s[4:8], v) }

// STORAGE_DEVICE_DESCRIPTOR:
//
//	DWORD            Version;                // 0
//	DWORD            Size;                   // 4
//	BYTE             DeviceType;             // 8
//	BYTE             DeviceTypeModifier;     // 9
//	BOOLEAN          RemovableMedia;         // 10
//	BOOLEAN          CommandQueueing;        // 11
//	DWORD            VendorIdOffset;         // 12
//	DWORD            ProductIdOffset;        // 16
//	DWORD            ProductRevisionOffset;  // 20
//	DWORD            SerialNumberOffset;     // 24
//	STORAGE_BUS_TYPE BusType;                // 28
//	DWORD            RawPropertiesLength;    // 32
//	BYTE             RawDeviceProperties[1]; // 36

// StorageDeviceDescriptor is a view over STORAGE_DEVICE_DESCRIPTOR.
type StorageDeviceDescriptor []byte

// STORAGEDEVICEDESCRIPTOR_SIZE is the size of STORAGE_DEVICE_DESCRIPTOR.
const STORAGEDEVICEDESCRIPTOR_SIZE = 40 //nolint:revive,stylecheck

// STORAGEDESCRIPTORHEADER_SIZE is the size of STORAGE_DESCRIPTOR_HEADER (Version and Size).
const STORAGEDESCRIPTORHEADER_SIZE = 8 //nolint:revive,stylecheck

//nolint:revive,stylecheck
func (s StorageDeviceDescriptor) Get_Version() uint32 { return order.Uint32(s[0:4]) }

//nolint:revive,stylecheck
func (s StorageDeviceDescriptor) Put_Version(v uint32) { order.PutUint32(s[0:4], v) }

//nolint:revive,stylecheck
func (s StorageDeviceDescriptor) Get_Size() uint32 { return order.Uint32(s[4:8]) }

//nolint:revive,stylecheck
func (s StorageDeviceDescriptor) Put_Size(v uint32) { order.PutUint32(s[4:8], v) }

//nolint:revive,stylecheck
func (s StorageDeviceDescriptor) Get_DeviceType() uint8 { return s[8] }

//nolint:revive,stylecheck
func (s StorageDeviceDescriptor) Put_DeviceType(v uint8) { s[8] = v }

//nolint:revive,stylecheck
func (s StorageDeviceDescriptor) Get_DeviceTypeModifier() uint8 { return s[9] }

//nolint:revive,stylecheck
func (s StorageDeviceDescriptor) Get_RemovableMedia() bool { return s[10] != 0 }

//nolint:revive,stylecheck
func (s StorageDeviceDescriptor) Put_RemovableMedia(v bool) { s[10] = boolByte(v) }

//nolint:revive,stylecheck
func (s StorageDeviceDescriptor) Get_CommandQueueing() bool { return s[11] != 0 }

//nolint:revive,stylecheck
func (s StorageDeviceDescriptor) Put_CommandQueueing(v bool) { s[11] = boolByte(v) }

//nolint:revive,stylecheck
func (s StorageDeviceDescriptor) Get_VendorIdOffset() uint32 { return order.Uint32(s[12:16]) }

//nolint:revive,stylecheck
func (s StorageDeviceDescriptor) Put_VendorIdOffset(v uint32) { order.PutUint32(s[12:16], v) }

//nolint:revive,stylecheck
func (s StorageDeviceDescriptor) Get_ProductIdOffset() uint32 { return order.Uint32(s[16:20]) }

//nolint:revive,stylecheck
func (s StorageDeviceDescriptor) Put_ProductIdOffset(v uint32) { order.PutUint32(s[16:20], v) }

//nolint:revive,stylecheck
func (s StorageDeviceDescriptor) Get_ProductRevisionOffset() uint32 { return order.Uint32(s[20:24]) }

//nolint:revive,stylecheck
func (s StorageDeviceDescriptor) Put_ProductRevisionOffset(v uint32) { order.PutUint32(s[20:24], v) }

//nolint:revive,stylecheck
func (s StorageDeviceDescriptor) Get_SerialNumberOffset() uint32 { return order.Uint32(s[24:28]) }

//nolint:revive,stylecheck
func (s StorageDeviceDescriptor) Put_SerialNumberOffset(v uint32) { order.PutUint32(s[24:28], v) }

//nolint:revive,stylecheck
func (s StorageDeviceDescriptor) Get_BusType() uint32 { return order.Uint32(s[28:32]) }

//nolint:revive,stylecheck
func (s StorageDeviceDescriptor) Put_BusType(v uint32) { order.PutUint32(s[28:32], v) }

//nolint:revive,stylecheck
func (s StorageDeviceDescriptor) Get_RawPropertiesLength() uint32 { return order.Uint32(s[32:36]) }

func boolByte(v bool) byte {
	if v {
		return 1
	}

	return 0
}
