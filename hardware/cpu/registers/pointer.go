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

package registers

// setTable and testTable are the two fixed 16-entry lookup tables consulted
// by `p = n` and `if p = n` / `if p ≠ n` (spec.md §4.4). The permutation is
// not algorithmic - it embodies the mask ROM's bit assignment - so it is
// reproduced here as a literal, not generated.
var setTable = [16]int{14, 4, 7, 8, 11, 2, 10, 12, 1, 3, 13, 6, 0, 9, 5, 14}

var testTable = [16]int{4, 8, 12, 2, 9, 1, 6, 3, 1, 13, 5, 0, 11, 10, 7, 4}

// SetTable returns the value p should take for `p = n`, keyed by the
// opcode's top 4 bits n.
func SetTable(n int) int {
	return setTable[n&0xf]
}

// TestTable returns the value p is compared against for `if p = n` /
// `if p ≠ n`, keyed by the opcode's top 4 bits n.
func TestTable(n int) int {
	return testTable[n&0xf]
}

// IncPointer implements `p + 1 → p`, wrapping 13 → 0.
func IncPointer(p int) int {
	if p >= NumNibbles-1 {
		return 0
	}
	return p + 1
}

// DecPointer implements `p - 1 → p`, wrapping 0 → 13.
func DecPointer(p int) int {
	if p <= 0 {
		return NumNibbles - 1
	}
	return p - 1
}
