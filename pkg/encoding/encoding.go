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

package encoding

// Decodes a single hexadecimal digit character, accepting both upper and
// lower case
func DecodeHexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}

	return 0, false
}

// Encodes a value as base-2 text, most significant bit first, padded with
// leading zeroes to bitcount digits
func EncodeBits(value uint8, bitcount uint) string {
	result := make([]byte, bitcount)

	for i := uint(0); i < bitcount; i++ {
		result[bitcount-i-1] = '0' + (value & 0x1)
		value >>= 1
	}

	return string(result)
}
