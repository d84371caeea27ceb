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

// Package memory holds the ACT's data-register file (spec.md §3 "Data
// file") and the ROM image (see the rom subpackage).
package memory

import (
	"github.com/actfamily/act56/errors"
	"github.com/actfamily/act56/hardware/cpu/registers"
)

// DataFile is a vector of data registers, each identical in shape to an
// arithmetic register, addressed by an 8-bit latch set by `c → data
// address`.
type DataFile struct {
	registers []registers.Register
	address   int
}

// NewDataFile allocates a data file of the given size. count is configured
// at construction (SPEC_FULL.md §1 supplements spec.md's "total data-register
// count" with a `datafile.size` preference, see hardware/instance).
func NewDataFile(count int) *DataFile {
	df := &DataFile{registers: make([]registers.Register, count)}
	for i := range df.registers {
		df.registers[i] = registers.NewRegister("data")
	}
	return df
}

// Len returns the number of data registers in the file.
func (df *DataFile) Len() int {
	return len(df.registers)
}

// Address returns the current value of the address latch.
func (df *DataFile) Address() int {
	return df.address
}

// SetAddressFromC implements `c → data address`: the address is formed from
// C's nibbles 1 and 0 as a two-digit value (spec.md §4.7). An address that
// would fall outside the file fails with DataAddressOutOfRange rather than
// being silently masked.
func (df *DataFile) SetAddressFromC(c registers.Register) error {
	addr := int(c.Nibble(1))<<4 + int(c.Nibble(0))
	if addr >= len(df.registers) {
		return errors.Errorf(errors.DataAddressOutOfRange, addr)
	}
	df.address = addr
	return nil
}

// Current returns the data register selected by the address latch.
func (df *DataFile) Current() registers.Register {
	return df.registers[df.address]
}

// SetCurrent replaces the data register selected by the address latch.
func (df *DataFile) SetCurrent(r registers.Register) {
	df.registers[df.address] = r
}

// ClearAll zeroes every data register (`clear data registers`, spec.md §4.7).
func (df *DataFile) ClearAll() {
	for i := range df.registers {
		df.registers[i] = registers.NewRegister("data")
	}
}

// Read implements bus.DataBus, addressing the file directly rather than
// through the latch.
func (df *DataFile) Read(addr int) (registers.Register, error) {
	if addr < 0 || addr >= len(df.registers) {
		return registers.Register{}, errors.Errorf(errors.DataAddressOutOfRange, addr)
	}
	return df.registers[addr], nil
}

// Write implements bus.DataBus.
func (df *DataFile) Write(addr int, value registers.Register) error {
	if addr < 0 || addr >= len(df.registers) {
		return errors.Errorf(errors.DataAddressOutOfRange, addr)
	}
	df.registers[addr] = value
	return nil
}

// Peek implements bus.DebugBus.
func (df *DataFile) Peek(addr int) (registers.Register, error) {
	return df.Read(addr)
}

// Poke implements bus.DebugBus.
func (df *DataFile) Poke(addr int, value registers.Register) error {
	return df.Write(addr, value)
}
