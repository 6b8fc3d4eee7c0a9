// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package encoding_test

import (
	"testing"

	"github.com/lassandro/gobindump/pkg/encoding"
)

func TestDecodeHexDigit(t *testing.T) {
	digits := map[byte]uint8{
		'0': 0x0, '1': 0x1, '2': 0x2, '3': 0x3, '4': 0x4,
		'5': 0x5, '6': 0x6, '7': 0x7, '8': 0x8, '9': 0x9,
		'a': 0xA, 'b': 0xB, 'c': 0xC, 'd': 0xD, 'e': 0xE, 'f': 0xF,
		'A': 0xA, 'B': 0xB, 'C': 0xC, 'D': 0xD, 'E': 0xE, 'F': 0xF,
	}

	for digit, want := range digits {
		have, ok := encoding.DecodeHexDigit(digit)

		if !ok {
			t.Fatalf("Rejected valid digit '%c'", digit)
		}

		if have != want {
			t.Fatalf(
				"Digit value mismatch for '%c'\nwant:%#x\nhave:%#x",
				digit,
				want,
				have,
			)
		}
	}

	for _, invalid := range []byte{'g', 'z', 'G', ' ', '\t', ':', '-'} {
		if _, ok := encoding.DecodeHexDigit(invalid); ok {
			t.Fatalf("Accepted invalid digit '%c'", invalid)
		}
	}
}

func TestEncodeBits(t *testing.T) {
	tests := []struct {
		Value    uint8
		Bitcount uint
		Want     string
	}{
		{0x0, 4, "0000"},
		{0x1, 4, "0001"},
		{0xA, 4, "1010"},
		{0xF, 4, "1111"},
		{0x00, 8, "00000000"},
		{0xB8, 8, "10111000"},
		{0xFF, 8, "11111111"},
	}

	for _, test := range tests {
		have := encoding.EncodeBits(test.Value, test.Bitcount)

		if have != test.Want {
			t.Fatalf(
				"Bit encoding mismatch for %#02x\nwant:%s\nhave:%s",
				test.Value,
				test.Want,
				have,
			)
		}
	}
}
