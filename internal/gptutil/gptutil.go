// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package gptutil decodes GPT disk GUIDs as reported by Windows.
package gptutil

import (
	"fmt"

	"github.com/google/uuid"
)

// guidLayout maps UUID byte positions to the mixed-endian GUID positions:
// Data1, Data2 and Data3 are little-endian, Data4 is kept as is.
var guidLayout = [16]int{3, 2, 1, 0, 5, 4, 7, 6, 8, 9, 10, 11, 12, 13, 14, 15}

// DiskID converts a mixed-endian GUID to a UUID.
func DiskID(guid []byte) (uuid.UUID, error) {
	var id uuid.UUID

	if len(guid) != len(id) {
		return uuid.Nil, fmt.Errorf("invalid GUID length %d", len(guid))
	}

	for i, j := range guidLayout {
		id[i] = guid[j]
	}

	return id, nil
}

// Encode is the inverse of DiskID, used to build DISK_PARTITION_INFO replies.
func Encode(id uuid.UUID) []byte {
	guid := make([]byte, len(id))

	for i, j := range guidLayout {
		guid[j] = id[i]
	}

	return guid
}
