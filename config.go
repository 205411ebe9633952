// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package carve

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// ConfigOption is a function pointer to implement the option pattern
type ConfigOption func(*Config)

// Config provides a configuration struct and options to adjust the
// configuration.
//
// The configuration struct holds all configuration options for the carving
// process. The configuration options can be adjusted using the option
// pattern style.
//
// The default configuration carves the three well-known container variants
// (uncompressed, zlib, LZMA) and limits input and object sizes to prevent
// memory exhaustion on adversarial buffers.
type Config struct {
	// concurrency is the number of workers reconstructing candidates in
	// parallel. Candidates share only the read-only input buffer, so any
	// value >1 is safe; results are re-sorted by offset either way.
	concurrency int

	// logger stream for carving
	logger logger

	// maxInputSize is the maximum size of the input buffer.
	// Set value to -1 to disable the check.
	maxInputSize int64

	// maxObjectSize is the maximum size of a single object after
	// decompression. Set value to -1 to disable the check.
	maxObjectSize int64

	// signatures is the ordered set of magic signatures the scanner
	// searches for
	signatures [][]byte

	// telemetryHook is a function to consume telemetry data after a
	// finished carving run
	// Important: do not adjust this value after carving started
	telemetryHook TelemetryHook
}

// Concurrency returns the number of parallel reconstruction workers.
func (c *Config) Concurrency() int {
	return c.concurrency
}

// Logger returns the logger.
func (c *Config) Logger() logger {
	return c.logger
}

// MaxInputSize returns the maximum size of the input buffer.
func (c *Config) MaxInputSize() int64 {
	return c.maxInputSize
}

// MaxObjectSize returns the maximum size of a single decompressed object.
func (c *Config) MaxObjectSize() int64 {
	return c.maxObjectSize
}

// CheckInputSize checks if size exceeds the configured maximum. If the
// maximum is exceeded, a [ErrMaxInputSizeExceeded] error is returned.
func (c *Config) CheckInputSize(size int64) error {

	// check if disabled
	if c.MaxInputSize() == -1 {
		return nil
	}

	// check value
	if size > c.MaxInputSize() {
		return ErrMaxInputSizeExceeded
	}
	return nil
}

// Signatures returns the configured signature set in scan order.
func (c *Config) Signatures() [][]byte {
	return c.signatures
}

// TelemetryHook returns the telemetry hook.
func (c *Config) TelemetryHook() TelemetryHook {
	if c.telemetryHook == nil {
		return func(ctx context.Context, d *TelemetryData) {
			// noop
		}
	}
	return c.telemetryHook
}

const (
	// defaultSignatures is the pipe-delimited default signature set:
	// uncompressed, zlib and LZMA container variants.
	defaultSignatures = "FWS|CWS|ZWS"

	defaultConcurrency   = 1             // sequential
	defaultMaxInputSize  = 1 << (10 * 3) // 1 Gb
	defaultMaxObjectSize = 1 << (10 * 3) // 1 Gb
)

var (
	// slog to discard
	defaultLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	// no operation telemetry hook
	defaultTelemetryHook = func(ctx context.Context, d *TelemetryData) {
		// noop
	}
)

// NewConfig is a generator option that takes opts as adjustments of the
// default configuration in an option pattern style.
func NewConfig(opts ...ConfigOption) *Config {

	// setup default values
	config := &Config{
		concurrency:   defaultConcurrency,
		logger:        defaultLogger,
		maxInputSize:  defaultMaxInputSize,
		maxObjectSize: defaultMaxObjectSize,
		signatures:    parseSignatures(defaultSignatures),
		telemetryHook: defaultTelemetryHook,
	}

	// Loop through each option
	for _, opt := range opts {
		opt(config)
	}

	return config
}

// WithConcurrency options pattern function to set the number of parallel
// reconstruction workers. Values below 1 are treated as 1.
func WithConcurrency(n int) ConfigOption {
	return func(c *Config) {
		if n < 1 {
			n = 1
		}
		c.concurrency = n
	}
}

// WithLogger options pattern function to set a custom logger.
func WithLogger(l logger) ConfigOption {
	return func(c *Config) {
		c.logger = l
	}
}

// WithMaxInputSize options pattern function to set the maximum size of the
// input buffer. Set value to -1 to disable the check.
func WithMaxInputSize(size int64) ConfigOption {
	return func(c *Config) {
		c.maxInputSize = size
	}
}

// WithMaxObjectSize options pattern function to set the maximum size of a
// single decompressed object. Set value to -1 to disable the check.
func WithMaxObjectSize(size int64) ConfigOption {
	return func(c *Config) {
		c.maxObjectSize = size
	}
}

// WithSignatures options pattern function to set the signature set from a
// pipe-delimited string, e.g. "FWS|CWS|ZWS". Empty elements are ignored; an
// entirely empty string leaves the default signature set in place.
func WithSignatures(signatures string) ConfigOption {
	return func(c *Config) {
		if sigs := parseSignatures(signatures); len(sigs) > 0 {
			c.signatures = sigs
		}
	}
}

// WithSignatureSet options pattern function to set the signature set from
// raw byte strings, for signatures that cannot be expressed in a delimited
// string. Empty elements are ignored.
func WithSignatureSet(signatures [][]byte) ConfigOption {
	return func(c *Config) {
		sigs := make([][]byte, 0, len(signatures))
		for _, sig := range signatures {
			if len(sig) > 0 {
				sigs = append(sigs, sig)
			}
		}
		if len(sigs) > 0 {
			c.signatures = sigs
		}
	}
}

// WithTelemetryHook options pattern function to set a telemetry hook that
// consumes the [TelemetryData] after a finished carving run.
func WithTelemetryHook(hook TelemetryHook) ConfigOption {
	return func(c *Config) {
		c.telemetryHook = hook
	}
}

// parseSignatures splits a pipe-delimited signature string into the ordered
// signature set, skipping empty elements.
func parseSignatures(signatures string) [][]byte {
	var sigs [][]byte
	for _, sig := range strings.Split(signatures, "|") {
		if sig == "" {
			continue
		}
		sigs = append(sigs, []byte(sig))
	}
	return sigs
}
