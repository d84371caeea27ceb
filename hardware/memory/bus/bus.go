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

// DataBus defines the operations for the data-register file when accessed
// by address, addr ∈ [0, count) where count is the file's configured size
// (spec.md §3 "Data file"). Implemented by *memory.DataFile; used by
// cmd/act56disasm's "ramtest" sub-mode alongside DebugBus to cross-check
// that both access paths agree on the same underlying store.
type DataBus interface {
	Read(addr int) (registers.Register, error)
	Write(addr int, value registers.Register) error
}
