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

// Package version names this build and, where the toolchain recorded it,
// the VCS revision it was built from.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the root command's name and the first part of the
// string Version returns.
const ApplicationName = "act56"

// number is bumped by hand for tagged releases. Version always reports it;
// the VCS revision, where recorded, is returned separately.
const number = "0.1.0"

// Version returns the application's version string and, if the binary was
// built with module/VCS information available, the source revision it was
// built from.
func Version() (ver string, rev string, err error) {
	ver = fmt.Sprintf("%s (%s)", ApplicationName, number)

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ver, "", nil
	}

	var revision string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}

	if revision == "" {
		return ver, "", nil
	}

	if dirty {
		rev = fmt.Sprintf("rev %s (modified)", revision)
	} else {
		rev = fmt.Sprintf("rev %s", revision)
	}

	return ver, rev, nil
}
