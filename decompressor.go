// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package carve

import "io"

// DecompressorFunc returns an io.Reader that decompresses src according to
// one container variant.
type DecompressorFunc func(src io.Reader) (io.Reader, error)

// decompressors maps a 3-byte magic to the decompressor for that variant.
// Candidates whose magic has no entry are skipped silently; they are
// signature matches, not objects.
var decompressors = map[string]DecompressorFunc{
	magicUncompressed: decompressRawStream,
	magicZlib:         decompressZlibStream,
	magicLZMA:         decompressLZMAStream,
}

// RegisterDecompressor adds (or replaces) the decompressor for the given
// magic, so additional container variants can be carved without changes to
// the carving logic itself. The magic must also be present in the configured
// signature set for candidates to be found, see [WithSignatures].
//
// RegisterDecompressor must not be called concurrently with [Carve].
func RegisterDecompressor(magic []byte, dec DecompressorFunc) {
	decompressors[string(magic)] = dec
}

// lookupDecompressor returns the decompressor for the given magic.
func lookupDecompressor(magic []byte) (DecompressorFunc, bool) {
	dec, ok := decompressors[string(magic)]
	return dec, ok
}
