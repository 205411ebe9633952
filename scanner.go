// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package carve

import "bytes"

// Match is a view into the scanned buffer describing one signature
// occurrence. End-Start equals the length of the matched signature.
type Match struct {
	// Start is the offset of the first byte of the matched signature.
	Start int

	// End is the offset of the first byte after the matched signature.
	End int
}

// Scanner performs a lazy multi-pattern search for magic signatures over an
// immutable byte buffer. Matches are produced on demand in ascending offset
// order and do not overlap; if two signatures match at the same offset, the
// one listed first wins. The buffer is never modified.
//
// A Scanner is not safe for concurrent use; [Scanner.Reset] rewinds it for
// another pass over the same buffer.
type Scanner struct {
	data       []byte
	signatures [][]byte
	pos        int
}

// NewScanner returns a Scanner that searches data for the given signatures.
// Signatures are raw bytes, matched without any text or encoding semantics;
// empty signatures are ignored.
func NewScanner(data []byte, signatures [][]byte) *Scanner {
	sigs := make([][]byte, 0, len(signatures))
	for _, sig := range signatures {
		if len(sig) > 0 {
			sigs = append(sigs, sig)
		}
	}
	return &Scanner{data: data, signatures: sigs}
}

// Next returns the next signature occurrence at or after the current scan
// position. It reports false once the buffer is exhausted.
func (s *Scanner) Next() (Match, bool) {
	if s.pos >= len(s.data) {
		return Match{}, false
	}

	// earliest occurrence over all signatures; ties resolved by
	// signature order
	best := -1
	length := 0
	for _, sig := range s.signatures {
		i := bytes.Index(s.data[s.pos:], sig)
		if i < 0 {
			continue
		}
		if best < 0 || i < best {
			best = i
			length = len(sig)
		}
	}
	if best < 0 {
		s.pos = len(s.data)
		return Match{}, false
	}

	start := s.pos + best
	s.pos = start + length
	return Match{Start: start, End: start + length}, true
}

// Reset rewinds the Scanner to the start of the buffer.
func (s *Scanner) Reset() {
	s.pos = 0
}
