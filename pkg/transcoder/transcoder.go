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

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/lassandro/gobindump/pkg/encoding"
)

// Locates the header of an instruction line, i.e. a tab immediately
// preceded by a colon. Returns the index just past the tab, or false when
// the line has no such header and should pass through untouched.
func FindHeader(line string) (headerEnd int, ok bool) {
	pos := strings.IndexByte(line, '\t')

	if pos < 1 || line[pos-1] != ':' {
		return 0, false
	}

	return pos + 1, true
}

// Expands the hex byte field of an instruction line into base-2 form:
// seven groups of eight binary digits, each group followed by a single
// separator space. Whitespace and missing token positions expand to
// blanks. Any other non-hexadecimal character yields an
// InvalidHexDigitError with a column relative to the field.
func HexFieldToBinary(field string) (string, error) {
	var result strings.Builder
	result.Grow(FieldTokens * (TokenWidth*TokenBits + 1))

	cursor := 0

	for token := 0; token < FieldTokens; token++ {
		for i := 0; i < TokenWidth; i++ {
			if cursor >= len(field) ||
				unicode.IsSpace(rune(field[cursor])) {
				result.WriteString(blankDigit)
			} else if value, ok := encoding.DecodeHexDigit(
				field[cursor],
			); ok {
				result.WriteString(encoding.EncodeBits(value, TokenBits))
			} else {
				return "", &InvalidHexDigitError{
					Column:   cursor + 1,
					Received: field[cursor],
				}
			}

			cursor++
		}

		result.WriteByte(' ')

		// Skip the separator space that follows each token in the source
		cursor++
	}

	return result.String(), nil
}

// Rewrites a single listing line. Lines with no header pass through
// unchanged in full output and are dropped otherwise; instruction lines
// have their hex field replaced by (full output) or reduced to (binary
// only) its base-2 expansion. emit reports whether out should be written
// at all.
func TranscodeLine(line string, fullOutput bool) (out string, emit bool, err error) {
	headerEnd, ok := FindHeader(line)

	if !ok {
		return line, fullOutput, nil
	}

	fieldEnd := strings.IndexByte(line[headerEnd:], '\t')

	if fieldEnd == -1 {
		// Continuation lines carry no mnemonic, so the hex field runs to
		// the end of the line
		fieldEnd = len(line) - 1
	} else {
		fieldEnd += headerEnd
	}

	binary, err := HexFieldToBinary(line[headerEnd : fieldEnd+1])

	if err != nil {
		if digitErr, ok := err.(*InvalidHexDigitError); ok {
			digitErr.Column += headerEnd
		}

		return "", false, err
	}

	if !fullOutput {
		return binary, true, nil
	}

	return line[:headerEnd] + binary + line[fieldEnd:], true, nil
}

// Streams a disassembler listing from input to output, rewriting the hex
// byte field of every instruction line. Positional errors are stamped
// with the 1-based line number they occurred on; any error aborts the
// stream.
func Transcode(input io.Reader, output io.Writer, fullOutput bool) error {
	scanner := bufio.NewScanner(input)
	writer := bufio.NewWriter(output)

	line := 0

	for scanner.Scan() {
		line++

		out, emit, err := TranscodeLine(scanner.Text(), fullOutput)

		if err != nil {
			if digitErr, ok := err.(*InvalidHexDigitError); ok {
				digitErr.Line = line
			}

			return err
		}

		if !emit {
			continue
		}

		if _, err := writer.WriteString(out); err != nil {
			return err
		}

		if err := writer.WriteByte('\n'); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	return writer.Flush()
}
