// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package drive_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/siderolabs/go-devicecontrol/drive"
	"github.com/siderolabs/go-devicecontrol/drive/drivetest"
)

func TestErrorCode(t *testing.T) {
	code, ok := drive.ErrorCode(&drive.HandleOpenError{Path: `\\.\PhysicalDrive1`, Code: drivetest.ErrorAccessDenied})
	assert.True(t, ok)
	assert.EqualValues(t, 5, code)

	code, ok = drive.ErrorCode(fmt.Errorf("wrapped: %w", &drive.ControlError{Op: "get drive geometry", Code: drivetest.ErrorInvalidFunction}))
	assert.True(t, ok)
	assert.EqualValues(t, 1, code)

	_, ok = drive.ErrorCode(drive.ErrMalformedDescriptor)
	assert.False(t, ok)

	_, ok = drive.ErrorCode(errors.New("boom"))
	assert.False(t, ok)
}

func TestErrorMessages(t *testing.T) {
	err := &drive.ControlError{Op: "get drive geometry", Code: drivetest.ErrorGenFailure}
	assert.Contains(t, err.Error(), "get drive geometry failed")
	assert.Contains(t, err.Error(), "(error 31)")

	openErr := &drive.HandleOpenError{Path: `\\.\PhysicalDrive9`, Code: drivetest.ErrorFileNotFound}
	assert.Contains(t, openErr.Error(), `"\\\\.\\PhysicalDrive9"`)
	assert.Contains(t, openErr.Error(), "(error 2)")
}

func TestPhysicalDrivePath(t *testing.T) {
	assert.Equal(t, `\\.\PhysicalDrive0`, drive.PhysicalDrivePath(0))
	assert.Equal(t, `\\.\PhysicalDrive12`, drive.PhysicalDrivePath(12))
}
