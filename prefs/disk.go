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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/actfamily/act56/errors"
)

// WarningBoilerPlate is written as a comment header at the top of every
// saved preferences file.
const WarningBoilerPlate = "# this file is machine generated by act56 - edit with care"

// Disk associates named preference Values with a single file on disk. Save
// writes every registered value, sorted by key; Load reads the file back
// and applies each line to the matching registered value, leaving
// unregistered keys untouched (and unregistered lines in the file ignored).
type Disk struct {
	filename string
	entries  map[string]settable
}

// NewDisk prepares a Disk bound to filename. The file itself need not exist
// yet; it's created on the first Save.
func NewDisk(filename string) (*Disk, error) {
	if filename == "" {
		return nil, errors.Errorf(errors.PrefsNoFile, filename)
	}
	return &Disk{
		filename: filename,
		entries:  make(map[string]settable),
	}, nil
}

// Add registers value under key. value must additionally implement Set and
// String (Bool, String, Int, Float and Generic all do).
func (dsk *Disk) Add(key string, value Value) error {
	s, ok := value.(settable)
	if !ok {
		return errors.Errorf(errors.PrefsError, fmt.Sprintf("value for %q is not settable", key))
	}
	dsk.entries[key] = s
	return nil
}

// Save writes every registered value to disk, sorted by key. Keys already
// present on disk but not registered with this Disk instance are preserved
// unchanged, so that two Disk instances sharing a file (one per subsystem,
// say) don't clobber each other's preferences.
func (dsk *Disk) Save() error {
	merged := dsk.readRaw()

	for k, v := range dsk.entries {
		merged[k] = v.String()
	}

	f, err := os.Create(dsk.filename)
	if err != nil {
		return errors.Errorf(errors.PrefsError, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	if _, err := w.WriteString(WarningBoilerPlate + "\n"); err != nil {
		return errors.Errorf(errors.PrefsError, err)
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, err := w.WriteString(k + " :: " + merged[k] + "\n"); err != nil {
			return errors.Errorf(errors.PrefsError, err)
		}
	}

	return nil
}

// readRaw reads the existing file, if any, as a plain key/value map without
// applying any values to registered entries. A missing file yields an empty
// map.
func (dsk *Disk) readRaw() map[string]string {
	raw := make(map[string]string)

	f, err := os.Open(dsk.filename)
	if err != nil {
		return raw
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if key, value, ok := splitKeyValue(line, "::"); ok {
			raw[key] = value
		}
	}

	return raw
}

// Load reads the file back, applying each "key :: value" line to the
// matching registered entry. Lines for unregistered keys, and the boilerplate
// header, are ignored. A missing file is not an error - it is treated as an
// empty preferences set.
func (dsk *Disk) Load() error {
	f, err := os.Open(dsk.filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Errorf(errors.PrefsError, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := splitKeyValue(line, "::")
		if !ok {
			continue
		}

		if entry, ok := dsk.entries[key]; ok {
			if err := entry.Set(value); err != nil {
				return errors.Errorf(errors.PrefsNotValid, dsk.filename)
			}
		}
	}

	return sc.Err()
}

// splitKeyValue splits "key <sep> value", trimming surrounding whitespace
// from both halves. Used by both the disk file loader and the command-line
// override parser.
func splitKeyValue(s, sep string) (key, value string, ok bool) {
	i := strings.Index(s, sep)
	if i < 0 {
		return "", "", false
	}
	key = strings.TrimSpace(s[:i])
	value = strings.TrimSpace(s[i+len(sep):])
	if key == "" {
		return "", "", false
	}
	return key, value, true
}
