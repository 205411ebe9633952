// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package carve

import (
	"context"
	"encoding/json"
	"time"
)

// TelemetryData holds all telemetry data of a carving run.
type TelemetryData struct {
	// CarvedObjects is the number of successfully carved objects
	CarvedObjects int64 `json:"carved_objects"`

	// CarveDuration is the time it took to process the buffer
	CarveDuration time.Duration `json:"carve_duration"`

	// CarveErrors is the number of candidates that failed to carve
	CarveErrors int64 `json:"carve_errors"`

	// CarveSize is the total size of the carved objects
	CarveSize int64 `json:"carve_size"`

	// InputSize is the size of the input buffer
	InputSize int64 `json:"input_size"`

	// LastCarveError is the last error during carving
	LastCarveError error `json:"last_carve_error"`

	// SkippedVariants is the number of candidates skipped because no
	// decompressor is registered for their magic
	SkippedVariants int64 `json:"skipped_variants"`

	// TruncatedHeaders is the number of candidates without a full header
	TruncatedHeaders int64 `json:"truncated_headers"`
}

// String returns a string representation of [TelemetryData].
func (m TelemetryData) String() string {
	b, _ := json.Marshal(m)
	return string(b)
}

// MarshalJSON implements the [encoding/json.Marshaler] interface.
func (m TelemetryData) MarshalJSON() ([]byte, error) {
	var lastError string
	if m.LastCarveError != nil {
		lastError = m.LastCarveError.Error()
	}

	type Alias TelemetryData
	return json.Marshal(&struct {
		LastCarveError string `json:"last_carve_error"`
		*Alias
	}{
		LastCarveError: lastError,
		Alias:          (*Alias)(&m),
	})
}

// TelemetryHook is a function type that performs operations on
// [TelemetryData] after a carving run has finished. It can be used to submit
// the data to a telemetry service, for example.
type TelemetryHook func(context.Context, *TelemetryData)
