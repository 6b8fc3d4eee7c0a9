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

package transcoder

const (
	// An instruction line carries up to seven two-digit hex byte tokens,
	// each followed by a single separator space
	FieldTokens = 7
	TokenWidth  = 2

	// Bits per hexadecimal digit in the expanded output
	TokenBits = 4
)

// A token position holding whitespace, or lying past the end of the field,
// expands to blanks so that absent bytes stay distinguishable from 0x00
const blankDigit = "    "
