// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package carve

// Object is a successfully carved, decompression-normalized object: a
// synthesized 8-byte header with the uncompressed magic followed by the
// decompressed body. Data is a fresh buffer and does not alias the input.
type Object struct {
	// Data is the complete normalized object, header included.
	Data []byte

	// Offset is the offset of the candidate in the input buffer the
	// object was carved from.
	Offset int

	// Version is the version byte of the original header.
	Version int8
}

// Failure describes why one candidate could not be carved. Err wraps one of
// the sentinel errors of this package and can be classified with
// [errors.Is].
type Failure struct {
	// Offset is the offset of the failed candidate in the input buffer.
	Offset int

	// Err is the reason the candidate was not carved.
	Err error
}

func (f Failure) Error() string {
	return f.Err.Error()
}

// Unwrap returns the wrapped reason for use with [errors.Is].
func (f Failure) Unwrap() error {
	return f.Err
}

// Result holds the outcome of one carving run over one buffer: the carved
// objects and the per-candidate failures, both in ascending offset order.
// Candidates that matched a signature but carry an unregistered variant
// magic appear in neither list.
type Result struct {
	Objects  []Object
	Failures []Failure
}
