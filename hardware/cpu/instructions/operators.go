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

package instructions

// MiscOp names every leaf of the miscellaneous-category decode tree
// (spec.md §4.7: "sub-group by bits 3..2, then by bits 5..4, then by the
// full opcode for leaf cases"). Several variants carry an operand - a
// status-bit index, a rom bank number, or a load digit - returned
// alongside the tag by DecodeMisc so cpu.go never has to re-extract it.
type MiscOp int

// The miscellaneous-category leaves, in the order the original microcode
// lists them.
const (
	MiscNop MiscOp = iota
	MiscKeysToRomAddress
	MiscBinary
	MiscPDec
	MiscPInc
	MiscReturn
	MiscSelectRom          // operand: bank
	MiscCToDataAddress
	MiscClearDataRegisters
	MiscHiImWoodstock
	MiscSetStatusBit       // operand: n  (1 -> s(n))
	MiscIfStatusBit1       // operand: n  (if 1 = s(n))
	MiscIfPointerEq        // operand: n, pre-table (if p = n)
	MiscDelayedSelectRom   // operand: bank
	MiscClearRegisters
	MiscClearStatus
	MiscDisplayToggle
	MiscDisplayOff
	MiscM1ExchC
	MiscM1ToC
	MiscM2ExchC
	MiscM2ToC
	MiscStackToA
	MiscDownRotate
	MiscYToA
	MiscCToStack
	MiscDecimal
	MiscFToA
	MiscFExchA
	MiscLoadDigit      // operand: digit value
	MiscClearStatusBit // operand: n  (0 -> s(n))
	MiscIfStatusBit0   // operand: n  (if 0 = s(n))
	MiscIfPointerNe    // operand: n, pre-table (if p <> n)
	MiscSetPointer     // operand: n, pre-table (p = n)
)

// DecodeMisc decodes a category-00 opcode into its leaf MiscOp and operand.
// ok is false when the opcode does not match any leaf - the caller is
// expected to surface UndefinedOpcode with its own pc/bank context. The bit
// tree and the octal leaf constants are reproduced from the original
// microcode's `switch (i_opcode & 03)` / `(i_opcode >> 2) & 03` /
// `(i_opcode >> 4) & 03` cascade.
func DecodeMisc(op uint16) (result MiscOp, operand int, ok bool) {
	switch (op >> 2) & 3 {
	case 0: // Group 0
		switch (op >> 4) & 3 {
		case 0:
			return MiscNop, 0, true
		case 1:
			switch op {
			case 0020:
				return MiscKeysToRomAddress, 0, true
			case 0420:
				return MiscBinary, 0, true
			case 0620:
				return MiscPDec, 0, true
			case 0720:
				return MiscPInc, 0, true
			case 01020:
				return MiscReturn, 0, true
			default:
				return 0, 0, false
			}
		case 2:
			return MiscSelectRom, int(op >> 6), true
		case 3:
			switch op {
			case 01160:
				return MiscCToDataAddress, 0, true
			case 01260:
				return MiscClearDataRegisters, 0, true
			case 01760:
				return MiscHiImWoodstock, 0, true
			default:
				return 0, 0, false
			}
		}
	case 1: // Group 1
		switch (op >> 4) & 3 {
		case 0:
			return MiscSetStatusBit, int(op >> 6), true
		case 1:
			return MiscIfStatusBit1, int(op >> 6), true
		case 2:
			return MiscIfPointerEq, int(op >> 6), true
		case 3:
			return MiscDelayedSelectRom, int(op >> 6), true
		}
	case 2: // Group 2
		switch (op >> 4) & 3 {
		case 0:
			switch op {
			case 0010:
				return MiscClearRegisters, 0, true
			case 0110:
				return MiscClearStatus, 0, true
			case 0210:
				return MiscDisplayToggle, 0, true
			case 0310:
				return MiscDisplayOff, 0, true
			case 0410:
				return MiscM1ExchC, 0, true
			case 0510:
				return MiscM1ToC, 0, true
			case 0610:
				return MiscM2ExchC, 0, true
			case 0710:
				return MiscM2ToC, 0, true
			case 01010:
				return MiscStackToA, 0, true
			case 01110:
				return MiscDownRotate, 0, true
			case 01210:
				return MiscYToA, 0, true
			case 01310:
				return MiscCToStack, 0, true
			case 01410:
				return MiscDecimal, 0, true
			case 01610:
				return MiscFToA, 0, true
			case 01710:
				return MiscFExchA, 0, true
			default:
				return 0, 0, false
			}
		case 1:
			return MiscLoadDigit, int(op >> 6), true
		default:
			return 0, 0, false
		}
	case 3: // Group 3
		switch (op >> 4) & 3 {
		case 0:
			return MiscClearStatusBit, int(op >> 6), true
		case 1:
			return MiscIfStatusBit0, int(op >> 6), true
		case 2:
			return MiscIfPointerNe, int(op >> 6), true
		case 3:
			return MiscSetPointer, int(op >> 6), true
		}
	}
	return 0, 0, false
}

// miscMnemonics gives the no-operand leaves their trace name; operand-
// carrying leaves are rendered by Mnemonic below, which appends the operand.
var miscMnemonics = map[MiscOp]string{
	MiscNop:                "nop",
	MiscKeysToRomAddress:   "keys -> rom address",
	MiscBinary:             "binary",
	MiscPDec:               "p - 1 -> p",
	MiscPInc:               "p + 1 -> p",
	MiscReturn:             "return",
	MiscCToDataAddress:     "c -> data address",
	MiscClearDataRegisters: "clear data registers",
	MiscHiImWoodstock:      "hi I'm woodstock",
	MiscClearRegisters:     "clear registers",
	MiscClearStatus:        "clear s",
	MiscDisplayToggle:      "display toggle",
	MiscDisplayOff:         "display off",
	MiscM1ExchC:            "m1 exch c",
	MiscM1ToC:              "m1 -> c",
	MiscM2ExchC:            "m2 exch c",
	MiscM2ToC:              "m2 -> c",
	MiscStackToA:           "stack -> a",
	MiscDownRotate:         "down rotate",
	MiscYToA:               "y -> a",
	MiscCToStack:           "c -> stack",
	MiscDecimal:            "decimal",
	MiscFToA:               "f -> a",
	MiscFExchA:             "f exch a",
}

// Mnemonic renders op/operand as a disassembly-ready string.
func Mnemonic(op MiscOp, operand int) string {
	switch op {
	case MiscSelectRom:
		return "select rom " + itoa(operand)
	case MiscDelayedSelectRom:
		return "delayed select rom " + itoa(operand)
	case MiscSetStatusBit:
		return "1 -> s(" + itoa(operand) + ")"
	case MiscClearStatusBit:
		return "0 -> s(" + itoa(operand) + ")"
	case MiscIfStatusBit1:
		return "if 1 = s(" + itoa(operand) + ")"
	case MiscIfStatusBit0:
		return "if 0 = s(" + itoa(operand) + ")"
	case MiscIfPointerEq:
		return "if p = " + itoa(operand)
	case MiscIfPointerNe:
		return "if p # " + itoa(operand)
	case MiscSetPointer:
		return "p = " + itoa(operand)
	case MiscLoadDigit:
		return "load " + itoa(operand)
	}
	if s, ok := miscMnemonics[op]; ok {
		return s
	}
	return "?"
}

// itoa is a tiny decimal formatter, kept local so this file does not need
// strconv solely for rendering small non-negative operands.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
