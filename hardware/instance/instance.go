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

// Package instance bundles the per-run collaborators that would otherwise be
// global state: disk-backed preferences and the processor's random number
// source. Keeping them on an Instance rather than as package-level
// variables lets more than one processor run in the same process (for
// instance, a test harness comparing two ROM images side by side) without
// interfering with each other.
package instance

import "github.com/actfamily/act56/random"

// Instance holds those parts of the emulation that might change between
// different runs of the processor, but are not the processor itself.
type Instance struct {
	Prefs  *Preferences
	Random *random.Random
}

// NewInstance creates an Instance with preferences loaded from filename and
// a random source seeded from tick.
func NewInstance(filename string, tick random.TickSource) (*Instance, error) {
	p, err := NewPreferences(filename)
	if err != nil {
		return nil, err
	}

	return &Instance{
		Prefs:  p,
		Random: random.NewRandom(tick),
	}, nil
}

// Normalise puts the Instance into a known default state, for regression
// tests that require the same starting conditions on every run.
func (ins *Instance) Normalise() {
	ins.Random.ZeroSeed = true
	ins.Prefs.SetDefaults()
}
