// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package gptutil_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siderolabs/go-devicecontrol/internal/gptutil"
)

func TestDiskID(t *testing.T) {
	// DDDA0816-8B53-47BF-A813-9EBB1F73AAA2 as stored in DISK_PARTITION_INFO.
	guid := []byte{0x16, 0x08, 0xda, 0xdd, 0x53, 0x8b, 0xbf, 0x47, 0xa8, 0x13, 0x9e, 0xbb, 0x1f, 0x73, 0xaa, 0xa2}

	id, err := gptutil.DiskID(guid)
	require.NoError(t, err)

	assert.Equal(t, uuid.MustParse("ddda0816-8b53-47bf-a813-9ebb1f73aaa2"), id)
	assert.Equal(t, guid, gptutil.Encode(id))
}

func TestDiskIDInvalidLength(t *testing.T) {
	for _, guid := range [][]byte{nil, make([]byte, 15), make([]byte, 17)} {
		id, err := gptutil.DiskID(guid)
		require.Error(t, err)
		assert.Equal(t, uuid.Nil, id)
	}
}
