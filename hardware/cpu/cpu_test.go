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

// White-box tests: Processor's registers have no exported setter (spec.md
// §3 — they are only ever mutated by microcode), so the end-to-end
// scenarios of spec.md §8 that need a specific starting register value
// preload the unexported fields directly rather than spending extra ticks
// on a seed program.
package cpu

import (
	"testing"

	"github.com/actfamily/act56/hardware/memory/rom"
	"github.com/actfamily/act56/test"
)

func arithOp(variant, field int) uint16 {
	return uint16(variant<<5 | field<<2 | 2)
}

func newImage(t *testing.T, words ...uint16) *rom.Image {
	t.Helper()
	padded := make([]uint16, rom.WordsPerBank)
	copy(padded, words)
	img, err := rom.New(padded)
	test.ExpectSuccess(t, err)
	return img
}

// TestDecimalAdd covers spec.md §8 scenario 1: `a + c -> c[w]`, op 0014,
// field W; A=...1, C=...2.
func TestDecimalAdd(t *testing.T) {
	img := newImage(t, arithOp(12, 6)) // ArithAPlusCToC, FieldW
	p := New(img, 16, nil)
	p.a.SetNibble(0, 1)
	p.c.SetNibble(0, 2)

	_, err := p.Tick()
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, p.c.Nibble(0), uint8(3))
	for i := 1; i < 14; i++ {
		test.ExpectEquality(t, p.c.Nibble(i), uint8(0))
	}
	test.ExpectEquality(t, p.carry, false)
	test.ExpectEquality(t, int(p.pc), 1)
}

// TestBCDCarryPropagation covers scenario 2: A=9, C=1, `a + c -> a[w]`.
func TestBCDCarryPropagation(t *testing.T) {
	img := newImage(t, arithOp(10, 6)) // ArithAPlusCToA, FieldW
	p := New(img, 16, nil)
	p.a.SetNibble(0, 9)
	p.c.SetNibble(0, 1)

	_, err := p.Tick()
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, p.a.Nibble(0), uint8(0))
	test.ExpectEquality(t, p.a.Nibble(1), uint8(1))
	test.ExpectEquality(t, p.carry, false)
}

// TestBinaryMode covers scenario 3: `binary` then `a + c -> a[w]` with
// A=0xA, C=0x6.
func TestBinaryMode(t *testing.T) {
	img := newImage(t,
		0420,           // binary
		arithOp(10, 6), // ArithAPlusCToA, FieldW
	)
	p := New(img, 16, nil)
	p.a.SetNibble(0, 0xa)
	p.c.SetNibble(0, 0x6)

	_, err := p.Tick()
	test.ExpectSuccess(t, err)
	_, err = p.Tick()
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, p.a.Nibble(0), uint8(0))
	test.ExpectEquality(t, p.a.Nibble(1), uint8(1))
	test.ExpectEquality(t, p.base, 16)
	test.ExpectEquality(t, p.carry, false)
}

// TestKeyDispatch covers scenario 4: `keys -> rom address` with keycode=5
// lands PC exactly on the dispatch slot, with no further linear advance.
func TestKeyDispatch(t *testing.T) {
	img := newImage(t, 0020) // keys -> rom address
	p := New(img, 16, nil)
	p.Press(5)

	before := p.status.Get(15)

	_, err := p.Tick()
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, int(p.pc), 0x04)
	test.ExpectEquality(t, p.status.Get(15), before)
}

// TestDelayedBank covers scenario 5: `delayed select rom 3`; `jsb 0x10`.
// The pushed return address is the instruction after jsb (offset 2), not
// jsb's own fetch address (offset 1) — see DESIGN.md.
func TestDelayedBank(t *testing.T) {
	img := newImage(t,
		3<<6|3<<4|1<<2, // delayed select rom 3
		0x10<<2|1,      // jsb 0x10
	)
	p := New(img, 16, nil)

	_, err := p.Tick()
	test.ExpectSuccess(t, err)
	_, err = p.Tick()
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, int(p.pc), 0x310)
	test.ExpectEquality(t, int(p.stack.At(0)), 2)

	_, pending := p.DelayedBankPending()
	test.ExpectEquality(t, pending, false)
}

// TestConditionalSkip covers scenario 6: status bit 2 clear, `if 1=s(2)`
// followed by an untaken inline `goto 0x50` literal and a `nop` — PC ends
// at 2, having advanced past both the test opcode and the unconsumed
// literal within the single tick that ran opcode 0.
func TestConditionalSkip(t *testing.T) {
	img := newImage(t,
		2<<6|1<<4|1<<2, // if 1 = s(2)
		0x50,           // inline literal, not consumed (not taken)
		0,              // nop
	)
	p := New(img, 16, nil)

	_, err := p.Tick()
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, int(p.pc), 2)
}

// TestUndefinedOpcode confirms an unmatched misc-group opcode fails with
// UndefinedOpcode rather than silently doing nothing (spec.md §7).
func TestUndefinedOpcode(t *testing.T) {
	img := newImage(t, 0120) // no leaf matches this misc-group-0 value
	p := New(img, 16, nil)

	_, err := p.Tick()
	test.ExpectFailure(t, err)
}

// TestReturnResumesAfterJsb exercises jsb/return together: `jsb 0x08`, and
// at offset 8 a `return`. Execution should resume at offset 1, the
// instruction after the original jsb, without re-executing jsb itself.
func TestReturnResumesAfterJsb(t *testing.T) {
	words := make([]uint16, rom.WordsPerBank)
	words[0] = 0x08<<2 | 1 // jsb 0x08
	words[8] = 01020       // return
	img, err := rom.New(words)
	test.ExpectSuccess(t, err)

	p := New(img, 16, nil)

	_, err = p.Tick() // jsb 0x08
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, int(p.pc), 8)

	_, err = p.Tick() // return
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, int(p.pc), 1)
}
