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

// Package cpu emulates the ACT (Arithmetic, Control and Timing) processor
// core found in classic BCD pocket calculators. Unlike a general-purpose
// microprocessor, the ACT core has no separate fetch/decode/execute cycle
// exposed to the caller: Tick() performs one complete instruction - fetch
// from the current bank and offset, decode through the category tree in the
// instructions package, execute against the register file, and settle the
// program counter - and returns an execution.Result describing what ran.
//
// A Processor is constructed with New(), given a rom.Image and a data file
// size, and reset to its power-on state automatically. The host contract is
// deliberately small: Press and Release latch a key for the
// `keys -> rom address` opcode to consult, and the accessors (A, B, C, ...,
// Status, PC) return copies, exposing enough state for a debugger or display
// driver without granting write access to the registers. Stack and DataFile
// are the exceptions: they return pointers to the live return stack and
// data file.
//
// Let's assume img is a loaded rom.Image.
//
//	proc := cpu.New(img, 256, nil)
//	for {
//		result, err := proc.Tick()
//		if err != nil {
//			break
//		}
//		_ = result
//	}
//
// SetTrace(true) turns on execution.Result logging through the optional
// *logger.Logger passed to New; AllowLogging lets Processor itself serve as
// the logger.Permission gate, so a host can flip tracing on and off without
// touching the logger's own configuration.
package cpu
