// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package carve

import (
	"io"

	"github.com/ulikunitz/xz/lzma"
)

// magicLZMA is the magic of the LZMA-compressed container variant.
const magicLZMA = "ZWS"

// decompressLZMAStream returns an io.Reader that decompresses src with the
// LZMA algorithm. The compressed body starts immediately after the 8-byte
// header of the candidate, like every other variant.
func decompressLZMAStream(src io.Reader) (io.Reader, error) {
	return lzma.NewReader(src)
}
