// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag wraps the standard flag package with support for a
// single level of named sub-modes (e.g. "act56disasm listing FILE" vs.
// "act56disasm spew FILE"), and composes a combined help message for
// whatever mix of boolean flags and sub-modes a command defines.
package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// ParseResult reports what a caller should do after Parse returns.
type ParseResult int

// List of ParseResult values.
const (
	ParseContinue ParseResult = iota
	ParseHelp
	ParseError
)

// Modes parses a command's arguments, consuming any boolean flags and, if
// sub-modes have been registered, the leading argument naming which mode
// was selected.
type Modes struct {
	Output io.Writer

	flags    *flag.FlagSet
	numFlags int

	subModes []string
	mode     string
	path     []string

	remaining []string
}

// NewArgs prepares md to parse args. It must be called before AddBool,
// AddSubModes or Parse.
func (md *Modes) NewArgs(args []string) {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.flags.SetOutput(io.Discard)
	md.flags.Usage = func() {}
	md.remaining = args
}

// AddBool registers a boolean flag and returns a pointer to its value,
// updated once Parse is called.
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	md.numFlags++
	return md.flags.Bool(name, value, usage)
}

// AddSubModes registers the names of the sub-modes this command supports.
// The first name is the default, selected when no mode is named on the
// command line.
func (md *Modes) AddSubModes(modes ...string) {
	md.subModes = modes
}

// Parse processes the arguments supplied to NewArgs. It returns ParseHelp
// (having already written a help message to Output) if -help/-h was seen,
// and ParseError with the error if the flags could not be parsed; otherwise
// it returns ParseContinue.
func (md *Modes) Parse() (ParseResult, error) {
	err := md.flags.Parse(md.remaining)
	if err == flag.ErrHelp {
		md.writeHelp()
		return ParseHelp, nil
	}
	if err != nil {
		return ParseError, err
	}

	md.remaining = md.flags.Args()

	if len(md.subModes) > 0 {
		md.mode = md.subModes[0]
		if len(md.remaining) > 0 {
			for _, m := range md.subModes {
				if strings.EqualFold(m, md.remaining[0]) {
					md.mode = m
					md.path = append(md.path, m)
					md.remaining = md.remaining[1:]
					break
				}
			}
		}
	}

	return ParseContinue, nil
}

// Mode returns the sub-mode selected by Parse, or the empty string if no
// sub-modes were registered.
func (md *Modes) Mode() string {
	return md.mode
}

// Path returns the sequence of sub-modes selected so far, joined by "/", or
// the empty string if none have been selected.
func (md *Modes) Path() string {
	return strings.Join(md.path, "/")
}

// RemainingArgs returns whatever arguments were left over after flags (and
// any selected sub-mode) were consumed.
func (md *Modes) RemainingArgs() []string {
	return md.remaining
}

func (md *Modes) writeHelp() {
	if md.numFlags == 0 && len(md.subModes) == 0 {
		fmt.Fprint(md.Output, "No help available\n")
		return
	}

	fmt.Fprint(md.Output, "Usage:\n")

	if md.numFlags > 0 {
		md.flags.SetOutput(md.Output)
		md.flags.PrintDefaults()
	}

	if len(md.subModes) > 0 {
		if md.numFlags > 0 {
			fmt.Fprint(md.Output, "\n")
		}
		fmt.Fprintf(md.Output, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(md.Output, "    default: %s\n", md.subModes[0])
	}
}
