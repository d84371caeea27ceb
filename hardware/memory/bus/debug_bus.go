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

// Package bus defines the memory bus concept. For an explanation see the
// package documentation.
package bus

import "github.com/actfamily/act56/hardware/cpu/registers"

// DebugBus defines the meta-operations for diagnostic access to the data
// file: reading or writing a data register directly by address, bypassing
// the processor's own address latch and without going through `c → data
// address`. Used alongside DataBus by cmd/act56disasm's "ramtest" sub-mode,
// never by the core itself.
type DebugBus interface {
	Peek(addr int) (registers.Register, error)
	Poke(addr int, value registers.Register) error
}
