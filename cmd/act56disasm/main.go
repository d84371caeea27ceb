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

// act56disasm renders a ROM image as a static instruction listing. Unlike
// cpu.Tick, it never needs a live pointer register p or return stack - field
// codes and jsb/branch targets are named straight off the opcode bits, with
// no register state to resolve them against. Its "ramtest" sub-mode is
// unrelated to disassembly: it is a small diagnostic that round-trips a
// freshly allocated data file through both of hardware/memory/bus's
// interfaces, which cmd/act56disasm otherwise has no occasion to exercise.
package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/actfamily/act56/hardware/cpu/instructions"
	"github.com/actfamily/act56/hardware/cpu/registers"
	"github.com/actfamily/act56/hardware/memory"
	"github.com/actfamily/act56/hardware/memory/bus"
	"github.com/actfamily/act56/hardware/memory/rom"
	"github.com/actfamily/act56/modalflag"
)

// ramtestSize matches hardware/instance's own default data-register file
// size, so a bare "ramtest" run exercises the same file size a freshly
// Init'd Processor would get.
const ramtestSize = 256

// line is one disassembled ROM word.
type line struct {
	PC       registers.ProgramCounter
	Opcode   uint16
	Category instructions.Category
	Mnemonic string
}

func (l line) String() string {
	return fmt.Sprintf("%d-%04o %04o  %s", l.PC.Bank(), l.PC.Offset(), l.Opcode, l.Mnemonic)
}

// decode renders a single ROM word, independent of any processor state.
func decode(pc registers.ProgramCounter, op uint16) line {
	cat := instructions.CategoryOf(op)

	var mnemonic string
	switch cat {
	case instructions.CategoryMisc:
		if leaf, operand, ok := instructions.DecodeMisc(op); ok {
			mnemonic = instructions.Mnemonic(leaf, operand)
		} else {
			mnemonic = "?"
		}

	case instructions.CategoryJsb:
		mnemonic = fmt.Sprintf("jsb %#04o", op>>2)

	case instructions.CategoryArithmetic:
		fieldCode := registers.FieldCode((op >> 2) & 7)
		variant := instructions.DecodeArith(op)
		mnemonic = variant.Mnemonic(fieldCode.Name())

	case instructions.CategoryLongConditional:
		if op&3 == 3 {
			mnemonic = fmt.Sprintf("if nc goto %#04o", op>>2)
		} else {
			mnemonic = "?"
		}
	}

	return line{PC: pc, Opcode: op, Category: cat, Mnemonic: mnemonic}
}

// ramtest exercises a data file through both of its host-facing contracts -
// data and debug, the interfaces its concrete *memory.DataFile satisfies -
// with a classic address-in-its-own-cell pattern: every even address is
// written through data.Write (the path the core's own addressed transfers
// would use) and verified through debug.Peek; every odd address goes the
// other way, debug.Poke then data.Read. A working data file agrees with
// itself regardless of which contract touched it.
func ramtest(data bus.DataBus, debug bus.DebugBus, size int) (bad []int, err error) {
	for addr := 0; addr < size; addr++ {
		var want registers.Register
		want.SetNibble(0, uint8(addr%10))
		want.SetNibble(1, uint8((addr/10)%10))

		var got registers.Register
		if addr%2 == 0 {
			if err := data.Write(addr, want); err != nil {
				return nil, err
			}
			got, err = debug.Peek(addr)
		} else {
			if err := debug.Poke(addr, want); err != nil {
				return nil, err
			}
			got, err = data.Read(addr)
		}
		if err != nil {
			return nil, err
		}
		if got.Nibble(0) != want.Nibble(0) || got.Nibble(1) != want.Nibble(1) {
			bad = append(bad, addr)
		}
	}
	return bad, nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out *os.File) error {
	var md modalflag.Modes
	md.Output = out
	md.NewArgs(args)
	bank := md.AddBool("all-banks", false, "disassemble every bank the image spans, not just bank 0")
	md.AddSubModes("listing", "spew", "ramtest")

	switch result, err := md.Parse(); result {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	remaining := md.RemainingArgs()

	// ramtest needs no ROM image - it only exercises a freshly allocated
	// data file through bus.DataBus and bus.DebugBus - so it takes no file
	// argument.
	if md.Mode() == "ramtest" {
		df := memory.NewDataFile(ramtestSize)
		bad, err := ramtest(df, df, ramtestSize)
		if err != nil {
			return err
		}
		if len(bad) == 0 {
			fmt.Fprintf(out, "ramtest: %d/%d addresses ok\n", ramtestSize, ramtestSize)
			return nil
		}
		fmt.Fprintf(out, "ramtest: %d/%d addresses ok, bad: %v\n", ramtestSize-len(bad), ramtestSize, bad)
		return nil
	}

	if len(remaining) != 1 {
		return fmt.Errorf("act56disasm: expected a single ROM file argument")
	}

	f, err := os.Open(remaining[0])
	if err != nil {
		return err
	}
	defer f.Close()

	img, err := rom.Load(f)
	if err != nil {
		return err
	}

	banks := img.Banks()
	if !*bank && banks > 1 {
		banks = 1
	}

	lines := make([]line, 0, banks*rom.WordsPerBank)
	for addr := 0; addr < banks*rom.WordsPerBank; addr++ {
		op, err := img.At(addr)
		if err != nil {
			return err
		}
		lines = append(lines, decode(registers.ProgramCounter(addr), op))
	}

	switch md.Mode() {
	case "spew":
		spew.Fdump(out, lines)
	default:
		for _, l := range lines {
			fmt.Fprintln(out, l.String())
		}
	}

	return nil
}
