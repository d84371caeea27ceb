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

package random_test

import (
	"testing"

	"github.com/actfamily/act56/random"
	"github.com/actfamily/act56/test"
)

type ticker struct {
	ticks int
}

func (t *ticker) Ticks() int { return t.ticks }

func TestRandom(t *testing.T) {
	a := random.NewRandom(&ticker{ticks: 100})
	b := random.NewRandom(&ticker{ticks: 100})
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Rewindable(i), b.Rewindable(i))
	}
}

func TestRewindableIgnoresCeilingZero(t *testing.T) {
	a := random.NewRandom(&ticker{ticks: 10})
	test.ExpectEquality(t, a.Rewindable(0), 0)
	test.ExpectEquality(t, a.NoRewind(0), 0)
}
