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

package execution

import (
	"fmt"

	"github.com/actfamily/act56/hardware/cpu/instructions"
	"github.com/actfamily/act56/hardware/cpu/registers"
)

// Result describes the one instruction a single tick() decoded and ran.
type Result struct {
	// PC is the address the opcode was fetched from, before linear advance.
	PC registers.ProgramCounter

	// Opcode is the raw 10-bit word fetched from ROM.
	Opcode uint16

	// Category is the opcode's top-level decode group.
	Category instructions.Category

	// Mnemonic is a human-readable rendering of the decoded instruction,
	// suitable for a trace line or a disassembly listing.
	Mnemonic string

	// Taken records whether a conditional branch (short or long) was
	// actually taken this tick. Meaningless for non-branching opcodes.
	Taken bool
}

// String renders the result the way the original microcode's trace output
// does: bank-offset, raw opcode, mnemonic.
func (r Result) String() string {
	return fmt.Sprintf("%d-%04o %04o  %s", r.PC.Bank(), r.PC.Offset(), r.Opcode, r.Mnemonic)
}
