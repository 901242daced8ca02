// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package report queries drive serial numbers and geometry and formats the results.
package report

import (
	"github.com/siderolabs/gen/xslices"
	"go.uber.org/zap"

	"github.com/siderolabs/go-devicecontrol/drive"
)

// Options configure the report.
type Options struct {
	// Logger to use for logging.
	Logger *zap.Logger

	// Drives are the physical drive indices to query serial numbers for.
	Drives []uint
	// GeometryPath is the device to query geometry for, defaults to the first physical drive.
	GeometryPath string
	// Extended adds the extended geometry to the report.
	Extended bool

	// DriveOptions are passed to every opened device.
	DriveOptions []drive.Option
}

// DefaultOptions returns the options matching the classic report:
// serial numbers for the first two drives, geometry of the first one.
func DefaultOptions() Options {
	return Options{
		Logger:       zap.NewNop(),
		Drives:       []uint{0, 1},
		GeometryPath: drive.PhysicalDrivePath(0),
	}
}

// SerialResult is the serial number query result for a drive.
type SerialResult struct {
	Path         string
	SerialNumber string
	Err          error
}

// GeometryResult is the geometry query result.
type GeometryResult struct {
	Path     string
	Geometry drive.Geometry
	Err      error

	// Ex and ExErr are only set for extended reports.
	Ex    *drive.GeometryEx
	ExErr error
}

// Report is the result of the queries.
type Report struct {
	Serials  []SerialResult
	Geometry GeometryResult

	extended bool
}

// Run runs the queries.
func Run(opts Options) *Report {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if opts.GeometryPath == "" {
		opts.GeometryPath = drive.PhysicalDrivePath(0)
	}

	driveOpts := append([]drive.Option{drive.WithLogger(logger)}, opts.DriveOptions...)

	r := &Report{
		Geometry: queryGeometry(logger, opts.GeometryPath, opts.Extended, driveOpts),
		extended: opts.Extended,
	}

	r.Serials = xslices.Map(opts.Drives, func(index uint) SerialResult {
		res := SerialResult{
			Path: drive.PhysicalDrivePath(index),
		}

		res.SerialNumber, res.Err = drive.GetPhysicalDriveSerialNumber(index, driveOpts...)
		if res.Err != nil {
			logger.Debug("serial number query failed", zap.String("path", res.Path), zap.Error(res.Err))
		}

		return res
	})

	return r
}

func queryGeometry(logger *zap.Logger, path string, extended bool, driveOpts []drive.Option) GeometryResult {
	res := GeometryResult{
		Path: path,
	}

	d, err := drive.NewFromPath(path, driveOpts...)
	if err != nil {
		logger.Debug("failed to open device", zap.String("path", path), zap.Error(err))

		res.Err = err

		return res
	}

	defer d.Close() //nolint:errcheck

	res.Geometry, res.Err = d.GetGeometry()
	if res.Err != nil {
		logger.Debug("drive geometry query failed", zap.String("path", path), zap.Error(res.Err))

		return res
	}

	if extended {
		var ex drive.GeometryEx

		ex, res.ExErr = d.GetGeometryEx()
		if res.ExErr != nil {
			logger.Debug("extended drive geometry query failed", zap.String("path", path), zap.Error(res.ExErr))
		} else {
			res.Ex = &ex
		}
	}

	return res
}

// OK returns true if the geometry query succeeded.
func (r *Report) OK() bool {
	return r.Geometry.Err == nil
}

// SerialNumbers returns the non-empty serial numbers in drive order.
func (r *Report) SerialNumbers() []string {
	return xslices.Map(
		xslices.Filter(r.Serials, func(res SerialResult) bool { return res.SerialNumber != "" }),
		func(res SerialResult) string { return res.SerialNumber },
	)
}
