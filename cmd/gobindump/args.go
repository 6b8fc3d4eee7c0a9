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

package main

import (
	"fmt"
)

type UnknownOptionError struct {
	Option string
}

func (err *UnknownOptionError) Error() string {
	return fmt.Sprintf("Unknown option: %s", err.Option)
}

type MissingFilenameError struct{}

func (err *MissingFilenameError) Error() string {
	return "Missing listing_file."
}

// Splits the command line (without the program name) into the input
// filename and the output mode. The -b option, when present, must be the
// first argument; any other first argument is taken as the filename when
// it stands alone and rejected when further arguments follow it.
func parseArgs(args []string) (filename string, fullOutput bool, err error) {
	fullOutput = true

	i := 0

	if i < len(args) && args[i] == "-b" {
		fullOutput = false
		i++
	} else if len(args) > 1 {
		return "", fullOutput, &UnknownOptionError{args[0]}
	}

	if i >= len(args) {
		return "", fullOutput, &MissingFilenameError{}
	}

	return args[i], fullOutput, nil
}
