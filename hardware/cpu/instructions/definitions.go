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

// ArithOp names the 32 variants of the arithmetic/field group, selected by
// the opcode's top 5 bits (`op >> 5`, spec.md §4.7). The bit-to-operation
// assignment is not given by spec.md itself - only the set of ALU
// operations it must cover is - so the table below reproduces the original
// ACT microcode's actual assignment.
type ArithOp int

// The 32 arithmetic-group variants, in opcode order.
const (
	ArithZeroToA ArithOp = iota
	ArithZeroToB
	ArithAExchB
	ArithAToB
	ArithAExchC
	ArithCToA
	ArithBToC
	ArithBExchC
	ArithZeroToC
	ArithAPlusBToA
	ArithAPlusCToA
	ArithCPlusCToC
	ArithAPlusCToC
	ArithAPlus1ToA
	ArithShiftLeftA
	ArithCPlus1ToC
	ArithAMinusBToA
	ArithAMinusCToC
	ArithAMinus1ToA
	ArithCMinus1ToC
	ArithZeroMinusCToC
	ArithZeroMinusCMinus1ToC
	ArithIfBEqZero
	ArithIfCEqZero
	ArithIfAGeC
	ArithIfAGeB
	ArithIfANeZero
	ArithIfCNeZero
	ArithAMinusCToA
	ArithShiftRightA
	ArithShiftRightB
	ArithShiftRightC
)

// numArithOps is the width of the arithmetic-group opcode space.
const numArithOps = 32

// arithMnemonics holds each variant's trace template; "%s" is replaced by
// the selected field's name (p, wp, xs, x, s, m, w, ms).
var arithMnemonics = [numArithOps]string{
	ArithZeroToA:             "0 -> a[%s]",
	ArithZeroToB:             "0 -> b[%s]",
	ArithAExchB:              "a exch b[%s]",
	ArithAToB:                "a -> b[%s]",
	ArithAExchC:              "a exch c[%s]",
	ArithCToA:                "c -> a[%s]",
	ArithBToC:                "b -> c[%s]",
	ArithBExchC:              "b exch c[%s]",
	ArithZeroToC:             "0 -> c[%s]",
	ArithAPlusBToA:           "a + b -> a[%s]",
	ArithAPlusCToA:           "a + c -> a[%s]",
	ArithCPlusCToC:           "c + c -> c[%s]",
	ArithAPlusCToC:           "a + c -> c[%s]",
	ArithAPlus1ToA:           "a + 1 -> a[%s]",
	ArithShiftLeftA:          "shift left a[%s]",
	ArithCPlus1ToC:           "c + 1 -> c[%s]",
	ArithAMinusBToA:          "a - b -> a[%s]",
	ArithAMinusCToC:          "a - c -> c[%s]",
	ArithAMinus1ToA:          "a - 1 -> a[%s]",
	ArithCMinus1ToC:          "c - 1 -> c[%s]",
	ArithZeroMinusCToC:       "0 - c -> c[%s]",
	ArithZeroMinusCMinus1ToC: "0 - c - 1 -> c[%s]",
	ArithIfBEqZero:           "if b[%s] = 0",
	ArithIfCEqZero:           "if c[%s] = 0",
	ArithIfAGeC:              "if a >= c[%s]",
	ArithIfAGeB:              "if a >= b[%s]",
	ArithIfANeZero:           "if a[%s] <> 0",
	ArithIfCNeZero:           "if c[%s] <> 0",
	ArithAMinusCToA:          "a - c -> a[%s]",
	ArithShiftRightA:         "shift right a[%s]",
	ArithShiftRightB:         "shift right b[%s]",
	ArithShiftRightC:         "shift right c[%s]",
}

// DecodeArith extracts the arithmetic-group variant from a raw opcode.
func DecodeArith(op uint16) ArithOp {
	return ArithOp((op >> 5) & (numArithOps - 1))
}

// IsCompare reports whether variant performs a compare-and-branch rather
// than a data move (spec.md §4.7: "comparison variants perform the compare,
// then execute the short branch protocol").
func (a ArithOp) IsCompare() bool {
	switch a {
	case ArithIfBEqZero, ArithIfCEqZero, ArithIfAGeC, ArithIfAGeB, ArithIfANeZero, ArithIfCNeZero:
		return true
	default:
		return false
	}
}

// Mnemonic renders variant a's trace string with fieldName substituted in.
func (a ArithOp) Mnemonic(fieldName string) string {
	if a < 0 || int(a) >= numArithOps {
		return "?"
	}
	return sprintfField(arithMnemonics[a], fieldName)
}

// sprintfField is a single-verb fmt.Sprintf, kept local so this file does
// not need to import fmt solely for one substitution.
func sprintfField(template, fieldName string) string {
	out := make([]byte, 0, len(template)+len(fieldName))
	for i := 0; i < len(template); i++ {
		if template[i] == '%' && i+1 < len(template) && template[i+1] == 's' {
			out = append(out, fieldName...)
			i++
			continue
		}
		out = append(out, template[i])
	}
	return string(out)
}
