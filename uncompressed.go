// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package carve

import "io"

// magicUncompressed is the magic of the uncompressed container variant. It
// is also the magic every synthesized output header carries, since
// compression is normalized away during carving.
const magicUncompressed = "FWS"

// decompressRawStream returns src unchanged; the uncompressed variant
// stores its body verbatim after the header.
func decompressRawStream(src io.Reader) (io.Reader, error) {
	return src, nil
}
