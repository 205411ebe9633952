// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package carve provides a function to locate and recover embedded,
// possibly-compressed container objects from an arbitrary byte buffer.
//
// The buffer is scanned for a configurable set of magic signatures. Each
// match is treated as a candidate object with a fixed 8-byte header (magic,
// version, declared length); the body is decompressed according to the
// matched variant, validated against the declared length, and a normalized,
// uncompressed object is synthesized for every valid candidate.
//
// Configuration is done using the [Config], which can be used to set the
// signature set, the logger, the telemetry hook and the input and object
// size limits. Telemetry data is captured during the carving process as
// [TelemetryData].
package carve
