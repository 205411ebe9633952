// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package carve

import (
	"io"

	"github.com/klauspost/compress/zlib"
)

// magicZlib is the magic of the zlib-compressed container variant.
const magicZlib = "CWS"

// decompressZlibStream returns an io.Reader that decompresses src with the
// zlib algorithm.
func decompressZlibStream(src io.Reader) (io.Reader, error) {
	return zlib.NewReader(src)
}
