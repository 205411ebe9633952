// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package carve_test

import (
	"fmt"
	"reflect"
	"testing"

	carve "github.com/hashicorp/go-carve"
)

// TestScannerNext implements test cases for the signature scanner
func TestScannerNext(t *testing.T) {
	cases := []struct {
		name       string
		data       []byte
		signatures [][]byte
		want       []carve.Match
	}{
		{
			name:       "empty buffer",
			data:       nil,
			signatures: [][]byte{[]byte("FWS")},
			want:       nil,
		},
		{
			name:       "no match",
			data:       []byte("nothing to see here"),
			signatures: [][]byte{[]byte("FWS")},
			want:       nil,
		},
		{
			name:       "single match at start",
			data:       []byte("FWS and trailing data"),
			signatures: [][]byte{[]byte("FWS")},
			want:       []carve.Match{{Start: 0, End: 3}},
		},
		{
			name:       "match at buffer end",
			data:       []byte("leading data CWS"),
			signatures: [][]byte{[]byte("CWS")},
			want:       []carve.Match{{Start: 13, End: 16}},
		},
		{
			name:       "multiple signatures ascending",
			data:       []byte("xxZWSxxxFWSxCWS"),
			signatures: [][]byte{[]byte("FWS"), []byte("CWS"), []byte("ZWS")},
			want:       []carve.Match{{Start: 2, End: 5}, {Start: 8, End: 11}, {Start: 12, End: 15}},
		},
		{
			name:       "non-overlapping matches",
			data:       []byte("FWFWSWS"),
			signatures: [][]byte{[]byte("FWS")},
			want:       []carve.Match{{Start: 2, End: 5}},
		},
		{
			name:       "back to back matches",
			data:       []byte("CWSCWSCWS"),
			signatures: [][]byte{[]byte("CWS")},
			want:       []carve.Match{{Start: 0, End: 3}, {Start: 3, End: 6}, {Start: 6, End: 9}},
		},
		{
			name:       "raw bytes with nulls",
			data:       []byte{0x00, 0x01, 0x00, 0xff, 0xfe, 0x00, 0x01, 0x00},
			signatures: [][]byte{{0x00, 0x01, 0x00}},
			want:       []carve.Match{{Start: 0, End: 3}, {Start: 5, End: 8}},
		},
		{
			name:       "signatures of different length",
			data:       []byte("aFWSSb"),
			signatures: [][]byte{[]byte("FWSS"), []byte("FWS")},
			want:       []carve.Match{{Start: 1, End: 5}},
		},
		{
			name:       "empty signature ignored",
			data:       []byte("FWS"),
			signatures: [][]byte{{}, []byte("FWS")},
			want:       []carve.Match{{Start: 0, End: 3}},
		},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("tc %d", i), func(t *testing.T) {
			got := collectMatches(carve.NewScanner(tc.data, tc.signatures))
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("test case %d failed: %s: got %v, want %v", i, tc.name, got, tc.want)
			}
		})
	}
}

// TestScannerIdempotence verifies that scanning the same buffer twice yields
// identical match sequences and that Reset rewinds a scanner.
func TestScannerIdempotence(t *testing.T) {
	data := []byte("xxFWSxxCWSxxZWSxx")
	sigs := [][]byte{[]byte("FWS"), []byte("CWS"), []byte("ZWS")}

	first := collectMatches(carve.NewScanner(data, sigs))
	second := collectMatches(carve.NewScanner(data, sigs))
	if !reflect.DeepEqual(first, second) {
		t.Errorf("fresh scans differ: %v != %v", first, second)
	}

	s := carve.NewScanner(data, sigs)
	before := collectMatches(s)
	s.Reset()
	after := collectMatches(s)
	if !reflect.DeepEqual(before, after) {
		t.Errorf("scan after reset differs: %v != %v", before, after)
	}
}

// TestScannerNoMutation verifies the scanner does not modify its input.
func TestScannerNoMutation(t *testing.T) {
	data := []byte("xxFWSxxFWSxx")
	orig := append([]byte(nil), data...)

	s := carve.NewScanner(data, [][]byte{[]byte("FWS")})
	for {
		if _, ok := s.Next(); !ok {
			break
		}
	}

	if !reflect.DeepEqual(data, orig) {
		t.Errorf("input buffer was modified: %v != %v", data, orig)
	}
}

func collectMatches(s *carve.Scanner) []carve.Match {
	var matches []carve.Match
	for {
		m, ok := s.Next()
		if !ok {
			return matches
		}
		matches = append(matches, m)
	}
}
