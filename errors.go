// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package carve

import "errors"

var (
	// ErrTruncatedHeader is returned in a [Failure] if fewer than 8 bytes
	// remain at a candidate offset.
	ErrTruncatedHeader = errors.New("truncated header")

	// ErrInvalidDeclaredSize is returned in a [Failure] if the declared
	// length in a candidate header is smaller than the header itself.
	ErrInvalidDeclaredSize = errors.New("invalid declared size")

	// ErrDecompression is returned in a [Failure] if the compressed body of
	// a candidate cannot be decompressed.
	ErrDecompression = errors.New("decompression failed")

	// ErrSizeMismatch is returned in a [Failure] if the decompressed body
	// length disagrees with the declared length in the candidate header.
	ErrSizeMismatch = errors.New("invalid size of carved object")

	// ErrMaxInputSizeExceeded is returned by [Carve] if the input buffer
	// exceeds the configured maximum input size.
	ErrMaxInputSizeExceeded = errors.New("maximum input size exceeded")

	// ErrMaxObjectSizeExceeded is returned in a [Failure] if a candidate
	// decompresses to more than the configured maximum object size.
	ErrMaxObjectSizeExceeded = errors.New("maximum object size exceeded")
)
