// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package drive

import "go.uber.org/zap"

// Options configure a Device.
type Options struct {
	// Logger to use for logging.
	Logger *zap.Logger
	// Opener opens device handles, defaults to the operating system.
	Opener Opener
	// Allocator provides scratch buffers for variable-length replies.
	Allocator Allocator
}

// Option is a function that sets some option.
type Option func(*Options)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithOpener replaces the function used to open device handles.
func WithOpener(opener Opener) Option {
	return func(o *Options) {
		o.Opener = opener
	}
}

// WithAllocator replaces the scratch buffer allocator.
func WithAllocator(allocator Allocator) Option {
	return func(o *Options) {
		o.Allocator = allocator
	}
}

func applyOptions(opts ...Option) Options {
	o := Options{
		Logger:    zap.NewNop(),
		Opener:    openDevice,
		Allocator: defaultAllocator,
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
