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

// Package bus defines the access patterns used to reach the data-register
// file (spec.md §3, §4.8) from outside the processor. DataBus names the
// addressed Read/Write pair *memory.DataFile gives a host; DebugBus names
// its Peek/Poke pair. cmd/act56disasm's "ramtest" sub-mode writes through
// one and reads back through the other to confirm they reach the same
// store, without going through the processor's address latch at all.
package bus
