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

package instance

import "github.com/actfamily/act56/prefs"

// defaultDataFileSize is the data-register file size (spec.md §3 "Data
// memory file") assumed for a calculator model when no preference overrides
// it.
const defaultDataFileSize = 256

// Preferences holds the handful of persisted host preferences this core
// cares about, backed by a prefs.Disk.
type Preferences struct {
	dsk *prefs.Disk

	// TraceOnStartup mirrors the host's "-t/--trace" flag default.
	TraceOnStartup prefs.Bool

	// DefaultBank is the ROM bank Processor.ApplyPreferences points the
	// program counter at after the reset New performs, for models that don't
	// power on at bank 0.
	DefaultBank prefs.Int

	// DataFileSize is the number of nibble-addressed registers in the data
	// file (spec.md §3), which varies across calculator models.
	DataFileSize prefs.Int

	// RandomState, when true, asks Processor.ApplyPreferences to fill registers and the
	// data file from the random package rather than zeroing them - real
	// hardware does not guarantee a clean power-on state. Default is false,
	// matching the deterministic all-zero reset of spec.md §4.6.
	RandomState prefs.Bool
}

// NewPreferences creates a Preferences bound to filename and loads any
// values already saved there, leaving defaults in place for anything the
// file doesn't mention.
func NewPreferences(filename string) (*Preferences, error) {
	p := &Preferences{}

	dsk, err := prefs.NewDisk(filename)
	if err != nil {
		return nil, err
	}
	p.dsk = dsk

	p.DataFileSize.Set(defaultDataFileSize)

	if err := dsk.Add("trace.on_startup", &p.TraceOnStartup); err != nil {
		return nil, err
	}
	if err := dsk.Add("reset.default_bank", &p.DefaultBank); err != nil {
		return nil, err
	}
	if err := dsk.Add("datafile.size", &p.DataFileSize); err != nil {
		return nil, err
	}
	if err := dsk.Add("reset.random_state", &p.RandomState); err != nil {
		return nil, err
	}

	if err := dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// Save persists the current preference values to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// SetDefaults resets every preference to its default: false or zero, except
// DataFileSize, which returns to defaultDataFileSize. Used by
// Instance.Normalise for reproducible test setup.
func (p *Preferences) SetDefaults() {
	p.TraceOnStartup.Set(false)
	p.DefaultBank.Set(0)
	p.DataFileSize.Set(defaultDataFileSize)
	p.RandomState.Set(false)
}
