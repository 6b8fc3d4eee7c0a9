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
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/lassandro/gobindump/pkg/transcoder"
)

const usage = `Usage:
    gobindump [-b] listing_file

    Options:
        -b      Produce only the binary output (remove other
                information from the listing output)

    Note:
        Use with the -b flag to strip everything except the binary
        output.  All other data from the original listing_file is
        ignored.`

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
}

// Prints the usage text to stdout, preceded by msg and a blank line when
// msg is non-empty
func printUsage(msg string) {
	if msg != "" {
		fmt.Println(msg)
		fmt.Println()
	}

	fmt.Println(usage)
}

func gobindump() int {
	args := os.Args[1:]

	piped := !term.IsTerminal(int(os.Stdin.Fd()))

	if len(args) == 0 && !piped {
		printUsage("")
		return 0
	}

	filename, fullOutput, err := parseArgs(args)

	var input io.Reader = os.Stdin

	if err != nil {
		// With data on stdin and no filename, run as a filter the way
		// the rest of the toolchain does; an explicit filename always
		// wins over the pipe
		if _, ok := err.(*MissingFilenameError); !ok || !piped {
			printUsage(err.Error())
			return 1
		}
	} else {
		file, err := os.Open(filename)

		if err != nil {
			log.Printf("Failed to open %s for input.", filename)
			return 1
		}

		defer file.Close()

		input = file
	}

	if err := transcoder.Transcode(input, os.Stdout, fullOutput); err != nil {
		log.Println(err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(gobindump())
}
