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

import "github.com/actfamily/act56/errors"

// Field is the (first, last) inclusive nibble range over which an ALU
// primitive operates (spec.md §4.1). It is reset to the full word before
// every non-field operation and recomputed from the opcode's 3-bit field
// code before every field operation.
type Field struct {
	First int
	Last  int
}

// Full is the (0, 13) field selector used by non-field operations.
var Full = Field{First: 0, Last: NumNibbles - 1}

// FieldCode names the eight field-selector codes of spec.md §4.1, in the
// order their 3-bit opcode encoding assigns them.
type FieldCode int

// List of field codes, matching the 3-bit "fff" opcode field.
const (
	FieldP FieldCode = iota
	FieldWP
	FieldXS
	FieldX
	FieldS
	FieldM
	FieldW
	FieldMS
)

// fieldNames gives each FieldCode its diagnostic name, in the order the
// original source prints them for tracing.
var fieldNames = [8]string{"p", "wp", "xs", "x", "s", "m", "w", "ms"}

// Name returns code's diagnostic name ("p", "wp", "xs", ...), or "?" if code
// is out of range.
func (code FieldCode) Name() string {
	if code < 0 || int(code) >= len(fieldNames) {
		return "?"
	}
	return fieldNames[code]
}

// DecodeField resolves one of the eight field codes against the processor's
// current pointer value p, returning the corresponding Field.
//
// p must be in [0, 13]; a wider value indicates the field-selector opcode
// bits were decoded incorrectly upstream and is reported as
// InvalidFieldPointer rather than silently indexed.
func DecodeField(code FieldCode, p int) (Field, error) {
	if p < 0 || p >= NumNibbles {
		return Field{}, errors.Errorf(errors.InvalidFieldPointer, p)
	}

	switch code {
	case FieldP:
		return Field{First: p, Last: p}, nil
	case FieldWP:
		return Field{First: 0, Last: p}, nil
	case FieldXS:
		return Field{First: 2, Last: 2}, nil
	case FieldX:
		return Field{First: 0, Last: 1}, nil
	case FieldS:
		return Field{First: 13, Last: 13}, nil
	case FieldM:
		return Field{First: 3, Last: 12}, nil
	case FieldW:
		return Field{First: 0, Last: 13}, nil
	case FieldMS:
		return Field{First: 3, Last: 13}, nil
	default:
		return Field{}, errors.Errorf(errors.InvalidFieldPointer, p)
	}
}
