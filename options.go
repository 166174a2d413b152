package starkgo

import (
	"log/slog"

	"github.com/starklab/starkgo/codec"
)

type options struct {
	codec    codec.Codec
	logger   *Logger
	readOnly bool
}

// Option configures Open behavior.
type Option func(*options)

// WithCodec configures the payload codec for newly created storage files.
//
// If nil is passed, codec.Default is used. Existing files always open with
// the codec recorded in their header.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithReadOnly opens the storage file read-only; the file must exist and
// all mutating operations fail.
func WithReadOnly() Option {
	return func(o *options) {
		o.readOnly = true
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		codec:  codec.Default,
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
