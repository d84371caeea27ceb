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

package errors

// error messages. each is used as the format string argument to Errorf().
const (
	// cpu decode/execute - spec.md §7
	UndefinedOpcode       = "cpu error: undefined opcode %#04o at pc %#04x (bank %d)"
	InvalidFieldPointer   = "cpu error: field pointer out of range (p=%d)"
	DataAddressOutOfRange = "cpu error: data address out of range (%d)"
	RomOutOfRange         = "cpu error: program counter escaped rom image (%#04x)"

	// rom image loading
	RomImageSize     = "rom error: image does not match expected size (%d words, wanted %d)"
	RomImageWord     = "rom error: word out of range (%#v, must fit in 10 bits)"
	RomImageCannotOpen = "rom error: cannot open rom image (%v)"

	// host / cli
	ArgumentError = "argument error: %v"
	PrefsError    = "prefs error: %v"
	PrefsNoFile   = "prefs error: no file (%s)"
	PrefsNotValid = "prefs error: not a valid prefs file (%s)"
)
