// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package carve

import (
	"encoding/binary"
	"fmt"
)

// headerLength is the fixed length of the container header: 3 bytes magic,
// 1 byte version, 4 bytes declared total length (little-endian).
const headerLength = 8

// header is the decoded fixed header of a candidate object. declaredLength
// is the total length of the original object including the header itself.
type header struct {
	magic          [3]byte
	version        int8
	declaredLength int32
}

// bodySize returns the expected decompressed body size, i.e. the declared
// total length minus the header. A negative value means the header lies.
func (h header) bodySize() int64 {
	return int64(h.declaredLength) - headerLength
}

// decodeHeader decodes the fixed 8-byte header at offset. It fails with
// [ErrTruncatedHeader] if fewer than 8 bytes remain in data.
func decodeHeader(data []byte, offset int) (header, error) {
	if offset < 0 || len(data)-offset < headerLength {
		return header{}, fmt.Errorf("%w at offset %d", ErrTruncatedHeader, offset)
	}

	var h header
	copy(h.magic[:], data[offset:offset+3])
	h.version = int8(data[offset+3])
	h.declaredLength = int32(binary.LittleEndian.Uint32(data[offset+4 : offset+8]))
	return h, nil
}

// encodeHeader synthesizes the header of a normalized output object: the
// fixed uncompressed magic, followed by the original version byte and the
// original declared length field verbatim.
func encodeHeader(version int8, declaredLength int32) []byte {
	hdr := make([]byte, headerLength)
	copy(hdr, magicUncompressed)
	hdr[3] = byte(version)
	binary.LittleEndian.PutUint32(hdr[4:], uint32(declaredLength))
	return hdr
}
