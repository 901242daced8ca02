// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package main implements devicecontrol, which prints serial numbers and geometry of physical drives.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/siderolabs/go-devicecontrol/drive"
	"github.com/siderolabs/go-devicecontrol/report"
)

var errGeometryFailed = errors.New("drive geometry query failed")

type flags struct {
	drives        []uint
	geometryDrive uint
	geometryPath  string
	extended      bool
	wait          bool
	debug         bool
}

func newRootCmd(driveOpts ...drive.Option) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:           "devicecontrol",
		Short:         "Print serial numbers and geometry of physical drives",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(f.debug, cmd.ErrOrStderr())

			defer logger.Sync() //nolint:errcheck

			geometryPath := f.geometryPath
			if geometryPath == "" {
				geometryPath = drive.PhysicalDrivePath(f.geometryDrive)
			}

			r := report.Run(report.Options{
				Logger:       logger,
				Drives:       f.drives,
				GeometryPath: geometryPath,
				Extended:     f.extended,
				DriveOptions: driveOpts,
			})

			if _, err := r.WriteTo(cmd.OutOrStdout()); err != nil {
				return err
			}

			if f.wait {
				if err := waitForKeypress(os.Stdin, cmd.ErrOrStderr()); err != nil {
					logger.Warn("failed to wait for a keypress", zap.Error(err))
				}
			}

			if !r.OK() {
				return errGeometryFailed
			}

			return nil
		},
	}

	cmd.Flags().UintSliceVarP(&f.drives, "drive", "d", []uint{0, 1}, "physical drive indices to print serial numbers for")
	cmd.Flags().UintVarP(&f.geometryDrive, "geometry-drive", "g", 0, "physical drive index to print geometry for")
	cmd.Flags().StringVar(&f.geometryPath, "geometry-path", "", "device path to print geometry for, overrides --geometry-drive")
	cmd.Flags().BoolVarP(&f.extended, "extended", "x", false, "print disk size and partitioning reported by the OS")
	cmd.Flags().BoolVar(&f.wait, "wait", true, "wait for a keypress before exiting")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "enable debug logging")

	return cmd
}

// newLogger writes console-encoded logs without stack traces to w.
func newLogger(debug bool, w io.Writer) *zap.Logger {
	level := zapcore.WarnLevel
	if debug {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)

	return zap.New(core, zap.AddCaller())
}

// waitForKeypress reads a single key if in is a terminal.
func waitForKeypress(in *os.File, prompt io.Writer) error {
	fd := int(in.Fd())

	if !term.IsTerminal(fd) {
		return nil
	}

	fmt.Fprintln(prompt, "Press any key to exit...")

	state, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}

	defer term.Restore(fd, state) //nolint:errcheck

	_, err = in.Read(make([]byte, 1))

	return err
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errGeometryFailed) {
			fmt.Fprintln(os.Stderr, err)
		}

		os.Exit(1)
	}
}
