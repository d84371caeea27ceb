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

// Package cpu implements the ACT's fetch/decode/execute cycle (spec.md §4.5,
// §4.7): the Processor type ties the registers, alu and instructions
// packages to a ROM image and a data file and runs one opcode per Tick.
package cpu

import (
	"fmt"

	"github.com/actfamily/act56/errors"
	"github.com/actfamily/act56/hardware/cpu/alu"
	"github.com/actfamily/act56/hardware/cpu/execution"
	"github.com/actfamily/act56/hardware/cpu/instructions"
	"github.com/actfamily/act56/hardware/cpu/registers"
	"github.com/actfamily/act56/hardware/instance"
	"github.com/actfamily/act56/hardware/memory"
	"github.com/actfamily/act56/hardware/memory/rom"
	"github.com/actfamily/act56/logger"
)

// Processor is the ACT's complete machine state: the register file, field
// pointer, base, status word, flag vector, banked program counter with its
// return stack, and the key/display latches the host drives (spec.md §3).
type Processor struct {
	rom  *rom.Image
	data *memory.DataFile

	a, b, c, y, z, t, m, n registers.Register
	f                      uint8 // scratch nibble, spec.md §3 "F"

	p    int
	base int

	status registers.Status
	pc     registers.ProgramCounter
	stack  registers.ReturnStack

	carry     bool
	prevCarry bool

	mode          bool // true: run: false: program entry
	displayEnable bool
	delayedRom    bool
	delayedBank   int

	keycode uint8
	keydown bool

	trace bool
	log   *logger.Logger

	ticks int
}

// New creates a Processor bound to rom and a freshly-allocated data file of
// dataFileSize registers, already Init'd.
func New(image *rom.Image, dataFileSize int, log *logger.Logger) *Processor {
	p := &Processor{
		rom:  image,
		data: memory.NewDataFile(dataFileSize),
		log:  log,
	}
	p.Init()
	return p
}

// AllowLogging implements logger.Permission: trace entries are only kept
// when the host has turned tracing on.
func (p *Processor) AllowLogging() bool {
	return p.trace
}

// SetTrace turns execution tracing on or off (spec.md §6 "-t/--trace").
func (p *Processor) SetTrace(on bool) {
	p.trace = on
}

// Init resets the processor to its power-on state (spec.md §4.6): every
// register and the data file are cleared, the stack and pointer are zeroed,
// status bits 3 and 5 come up set, the processor starts in run mode at
// bank 0 offset 0, and the key latches are cleared.
func (p *Processor) Init() {
	p.a = registers.NewRegister("a")
	p.b = registers.NewRegister("b")
	p.c = registers.NewRegister("c")
	p.y = registers.NewRegister("y")
	p.z = registers.NewRegister("z")
	p.t = registers.NewRegister("t")
	p.m = registers.NewRegister("m")
	p.n = registers.NewRegister("n")
	p.f = 0

	p.data.ClearAll()

	p.p = 0
	p.base = 10

	p.status = 0
	p.status.Set(3)
	p.status.Set(5)

	p.pc = 0
	p.stack = registers.ReturnStack{}

	p.carry = false
	p.prevCarry = false

	p.mode = true
	p.displayEnable = false
	p.delayedRom = false
	p.delayedBank = 0

	p.keycode = 0
	p.keydown = false

	p.ticks = 0
}

// Press latches keycode as the most recently pressed key (spec.md §3 "Key
// latches"); keydown stays true until Release.
func (p *Processor) Press(keycode uint8) {
	p.keycode = keycode
	p.keydown = true
}

// Release clears the keydown latch, leaving keycode at its last value
// (`keys -> rom address` still reads it after release).
func (p *Processor) Release() {
	p.keydown = false
}

// advance performs the linear PC advance every instruction ends with unless
// it has already set the PC itself: pc←pc+1 mod ROMSize, prev_carry←carry,
// carry←0 (spec.md §4.5 "Linear advance").
func (p *Processor) advance() {
	p.pc = p.pc.Next()
	p.prevCarry = p.carry
	p.carry = false
}

// applyDelayedBank fires a pending `delayed select rom n` onto pc, clearing
// the latch (spec.md §4.5 "Delayed bank switch"). Shared by jsb and every
// taken branch, the only two places a bank switch may take effect.
func (p *Processor) applyDelayedBank() {
	if !p.delayedRom {
		return
	}
	p.pc = p.pc.WithBank(p.delayedBank)
	p.delayedRom = false
}

// shortBranch implements the compare-and-branch protocol shared by the
// arithmetic group's compare variants and the misc group's `if 1=s(n)`,
// `if 0=s(n)`, `if p=n` and `if p<>n` (spec.md §4.5 "Short branch"): the
// caller has already computed carry as its comparison result. shortBranch
// advances onto the inline literal that follows the opcode; if the
// comparison was true (prev_carry = 0) the literal replaces the offset and
// any delayed bank switch fires; otherwise the literal is skipped by a
// second advance.
func (p *Processor) shortBranch(carry bool) (taken bool, err error) {
	p.carry = carry
	p.advance()

	if p.prevCarry {
		p.advance()
		return false, nil
	}

	literal, err := p.rom.At(int(p.pc))
	if err != nil {
		return false, err
	}
	p.pc = p.pc.WithOffset(int(literal))
	p.applyDelayedBank()
	return true, nil
}

// Tick fetches, decodes and executes the opcode at the current PC, returning
// a description of what ran.
func (p *Processor) Tick() (execution.Result, error) {
	startPC := p.pc

	op, err := p.rom.At(int(startPC))
	if err != nil {
		return execution.Result{}, err
	}

	cat := instructions.CategoryOf(op)

	var mnemonic string
	var taken bool

	switch cat {
	case instructions.CategoryMisc:
		mnemonic, err = p.execMisc(op)
	case instructions.CategoryJsb:
		mnemonic = p.execJsb(op)
	case instructions.CategoryArithmetic:
		mnemonic, taken, err = p.execArithmetic(op)
	case instructions.CategoryLongConditional:
		mnemonic, taken, err = p.execLongConditional(op)
	}

	p.ticks++

	result := execution.Result{PC: startPC, Opcode: op, Category: cat, Mnemonic: mnemonic, Taken: taken}
	if p.log != nil {
		p.log.Log(p, "cpu", result)
	}
	return result, err
}

// Ticks returns the number of instructions executed since the last Init,
// implementing random.TickSource so an instance.Instance's random source can
// be seeded from this processor's own progress.
func (p *Processor) Ticks() int {
	return p.ticks
}

// ApplyPreferences folds a host instance's persisted preferences into the
// processor: the default reset bank, and, if enabled, a randomised power-on
// state in place of the deterministic all-zero reset of spec.md §4.6 (real
// ACT hardware does not guarantee a clean power-on register file).
func (p *Processor) ApplyPreferences(ins *instance.Instance) {
	if ins == nil {
		return
	}

	p.pc = registers.ProgramCounter(ins.Prefs.DefaultBank.Get() << 8)

	if !ins.Prefs.RandomState.Get() {
		return
	}

	digit := func() uint8 { return uint8(ins.Random.NoRewind(10)) }
	for _, r := range [...]*registers.Register{&p.a, &p.b, &p.c, &p.y, &p.z, &p.t, &p.m, &p.n} {
		for i := 0; i < registers.NumNibbles; i++ {
			r.SetNibble(i, digit())
		}
	}

	for addr := 0; addr < p.data.Len(); addr++ {
		var reg registers.Register
		for i := 0; i < registers.NumNibbles; i++ {
			reg.SetNibble(i, digit())
		}
		// addr ranges over [0, p.data.Len()), so this can never return the
		// out-of-range error Poke otherwise reports.
		if err := p.data.Poke(addr, reg); err != nil {
			panic(err)
		}
	}
}

// execMisc executes a category-00 (miscellaneous) opcode.
func (p *Processor) execMisc(op uint16) (string, error) {
	leaf, operand, ok := instructions.DecodeMisc(op)
	if !ok {
		return "", errors.Errorf(errors.UndefinedOpcode, op, p.pc.Offset(), p.pc.Bank())
	}
	mnemonic := instructions.Mnemonic(leaf, operand)

	switch leaf {
	case instructions.MiscNop, instructions.MiscHiImWoodstock:
		p.advance()

	case instructions.MiscBinary:
		p.base = 16
		p.advance()

	case instructions.MiscDecimal:
		p.base = 10
		p.advance()

	case instructions.MiscPDec:
		p.p = registers.DecPointer(p.p)
		p.advance()

	case instructions.MiscPInc:
		p.p = registers.IncPointer(p.p)
		p.advance()

	case instructions.MiscReturn:
		p.pc = p.stack.Pop()

	case instructions.MiscSelectRom:
		p.pc = p.pc.WithBank(operand)
		p.advance()

	case instructions.MiscDelayedSelectRom:
		p.delayedBank = operand
		p.delayedRom = true
		p.advance()

	case instructions.MiscKeysToRomAddress:
		p.pc = p.pc.WithOffset(int(p.keycode) - 1)

	case instructions.MiscCToDataAddress:
		if err := p.data.SetAddressFromC(p.c); err != nil {
			return mnemonic, err
		}
		p.advance()

	case instructions.MiscClearDataRegisters:
		p.data.ClearAll()
		p.advance()

	case instructions.MiscClearRegisters:
		p.clearRegisters()
		p.advance()

	case instructions.MiscClearStatus:
		p.status.ClearAll()
		p.advance()

	case instructions.MiscDisplayToggle:
		p.displayEnable = !p.displayEnable
		p.advance()

	case instructions.MiscDisplayOff:
		p.displayEnable = false
		p.advance()

	case instructions.MiscM1ExchC:
		alu.Exch(&p.m, &p.c, registers.Full)
		p.advance()

	case instructions.MiscM1ToC:
		alu.Copy(&p.c, &p.m, registers.Full)
		p.advance()

	case instructions.MiscM2ExchC:
		alu.Exch(&p.n, &p.c, registers.Full)
		p.advance()

	case instructions.MiscM2ToC:
		alu.Copy(&p.c, &p.n, registers.Full)
		p.advance()

	case instructions.MiscStackToA:
		alu.Copy(&p.a, &p.y, registers.Full)
		alu.Copy(&p.y, &p.z, registers.Full)
		alu.Copy(&p.z, &p.t, registers.Full)
		p.advance()

	case instructions.MiscDownRotate:
		alu.Exch(&p.t, &p.c, registers.Full)
		alu.Exch(&p.c, &p.y, registers.Full)
		alu.Exch(&p.y, &p.z, registers.Full)
		p.advance()

	case instructions.MiscYToA:
		alu.Copy(&p.a, &p.y, registers.Full)
		p.advance()

	case instructions.MiscCToStack:
		alu.Copy(&p.t, &p.z, registers.Full)
		alu.Copy(&p.z, &p.y, registers.Full)
		alu.Copy(&p.y, &p.c, registers.Full)
		p.advance()

	case instructions.MiscFToA:
		p.a.SetNibble(0, p.f)
		p.advance()

	case instructions.MiscFExchA:
		a0 := p.a.Nibble(0)
		p.a.SetNibble(0, p.f)
		p.f = a0
		p.advance()

	case instructions.MiscLoadDigit:
		p.c.SetNibble(p.p, uint8(operand))
		p.p = registers.DecPointer(p.p)
		p.advance()

	case instructions.MiscSetStatusBit:
		p.status.Set(operand)
		p.advance()

	case instructions.MiscClearStatusBit:
		p.status.Clear(operand, p.keydown)
		p.advance()

	case instructions.MiscIfStatusBit1:
		_, err := p.shortBranch(p.status.Test1(operand))
		return mnemonic, err

	case instructions.MiscIfStatusBit0:
		_, err := p.shortBranch(p.status.Test0(operand))
		return mnemonic, err

	case instructions.MiscIfPointerEq:
		_, err := p.shortBranch(p.p != registers.TestTable(operand))
		return mnemonic, err

	case instructions.MiscIfPointerNe:
		_, err := p.shortBranch(p.p == registers.TestTable(operand))
		return mnemonic, err

	case instructions.MiscSetPointer:
		p.p = registers.SetTable(operand)
		p.advance()
	}

	return mnemonic, nil
}

// clearRegisters implements `clear registers`: A, B, C, Y, Z, T go to zero;
// M and N (the permanent-memory registers) are untouched (spec.md §4.7).
func (p *Processor) clearRegisters() {
	p.a = registers.NewRegister("a")
	p.b = registers.NewRegister("b")
	p.c = registers.NewRegister("c")
	p.y = registers.NewRegister("y")
	p.z = registers.NewRegister("z")
	p.t = registers.NewRegister("t")
}

// execJsb executes a category-01 (jsb) opcode: the return address pushed is
// the address of the instruction following jsb, not jsb's own fetch
// address - the address the matching `return` must resume at.
func (p *Processor) execJsb(op uint16) string {
	target := int(op >> 2)

	returnAddr := p.pc.Next()
	p.stack.Push(returnAddr)

	p.pc = p.pc.WithOffset(target)
	p.applyDelayedBank()

	return fmt.Sprintf("jsb %#04o", target)
}

// execArithmetic executes a category-10 (arithmetic/field group) opcode.
func (p *Processor) execArithmetic(op uint16) (string, bool, error) {
	fieldCode := registers.FieldCode((op >> 2) & 7)
	field, err := registers.DecodeField(fieldCode, p.p)
	if err != nil {
		return "", false, err
	}

	variant := instructions.DecodeArith(op)
	mnemonic := variant.Mnemonic(fieldCode.Name())

	if variant.IsCompare() {
		var carry bool
		switch variant {
		case instructions.ArithIfBEqZero:
			carry = alu.Eq(&p.b, nil, field)
		case instructions.ArithIfCEqZero:
			carry = alu.Eq(&p.c, nil, field)
		case instructions.ArithIfAGeC:
			carry = alu.Sub(nil, &p.a, &p.c, field, p.base, false)
		case instructions.ArithIfAGeB:
			carry = alu.Sub(nil, &p.a, &p.b, field, p.base, false)
		case instructions.ArithIfANeZero:
			carry = alu.Ne(&p.a, nil, field)
		case instructions.ArithIfCNeZero:
			carry = alu.Ne(&p.c, nil, field)
		}
		taken, err := p.shortBranch(carry)
		return mnemonic, taken, err
	}

	switch variant {
	case instructions.ArithZeroToA:
		alu.Copy(&p.a, nil, field)
	case instructions.ArithZeroToB:
		alu.Copy(&p.b, nil, field)
	case instructions.ArithAExchB:
		alu.Exch(&p.a, &p.b, field)
	case instructions.ArithAToB:
		alu.Copy(&p.b, &p.a, field)
	case instructions.ArithAExchC:
		alu.Exch(&p.a, &p.c, field)
	case instructions.ArithCToA:
		alu.Copy(&p.a, &p.c, field)
	case instructions.ArithBToC:
		alu.Copy(&p.c, &p.b, field)
	case instructions.ArithBExchC:
		alu.Exch(&p.b, &p.c, field)
	case instructions.ArithZeroToC:
		alu.Copy(&p.c, nil, field)
	case instructions.ArithAPlusBToA:
		p.carry = alu.Add(&p.a, &p.a, &p.b, field, p.base, p.carry)
	case instructions.ArithAPlusCToA:
		p.carry = alu.Add(&p.a, &p.a, &p.c, field, p.base, p.carry)
	case instructions.ArithCPlusCToC:
		p.carry = alu.Add(&p.c, &p.c, &p.c, field, p.base, p.carry)
	case instructions.ArithAPlusCToC:
		p.carry = alu.Add(&p.c, &p.a, &p.c, field, p.base, p.carry)
	case instructions.ArithAPlus1ToA:
		p.carry = alu.Inc(&p.a, field, p.base)
	case instructions.ArithShiftLeftA:
		p.carry, p.prevCarry = alu.Shl(&p.a, field)
	case instructions.ArithCPlus1ToC:
		p.carry = alu.Inc(&p.c, field, p.base)
	case instructions.ArithAMinusBToA:
		p.carry = alu.Sub(&p.a, &p.a, &p.b, field, p.base, p.carry)
	case instructions.ArithAMinusCToC:
		p.carry = alu.Sub(&p.c, &p.a, &p.c, field, p.base, p.carry)
	case instructions.ArithAMinus1ToA:
		p.carry = alu.Sub(&p.a, &p.a, nil, field, p.base, true)
	case instructions.ArithCMinus1ToC:
		p.carry = alu.Sub(&p.c, &p.c, nil, field, p.base, true)
	case instructions.ArithZeroMinusCToC:
		p.carry = alu.Sub(&p.c, nil, &p.c, field, p.base, false)
	case instructions.ArithZeroMinusCMinus1ToC:
		p.carry = alu.Sub(&p.c, nil, &p.c, field, p.base, true)
	case instructions.ArithAMinusCToA:
		p.carry = alu.Sub(&p.a, &p.a, &p.c, field, p.base, p.carry)
	case instructions.ArithShiftRightA:
		p.carry = alu.Shr(&p.a, field)
	case instructions.ArithShiftRightB:
		p.carry = alu.Shr(&p.b, field)
	case instructions.ArithShiftRightC:
		p.carry = alu.Shr(&p.c, field)
	}

	p.advance()
	return mnemonic, false, nil
}

// execLongConditional executes a category-11 (long conditional) opcode.
// Only `if nc goto addr` is defined; every other sub-case is undefined on
// this core (spec.md §4.7, confirmed against the original microcode).
//
// Unlike the short branches in execArithmetic/execMisc, this op carries its
// target in its own opcode bits rather than an inline literal, so it never
// needs the extra "advance onto the literal" step: it simply tests the
// prev_carry flag left over from whatever instruction ran before it.
func (p *Processor) execLongConditional(op uint16) (string, bool, error) {
	if op&3 != 3 {
		return "", false, errors.Errorf(errors.UndefinedOpcode, op, p.pc.Offset(), p.pc.Bank())
	}

	target := int(op >> 2)
	mnemonic := fmt.Sprintf("if nc goto %#04o", target)

	taken := !p.prevCarry
	if taken {
		p.pc = p.pc.WithOffset(target)
		p.applyDelayedBank()
	} else {
		p.pc = p.pc.Next()
	}
	p.prevCarry = p.carry
	p.carry = false

	return mnemonic, taken, nil
}

// A returns the accumulator register.
func (p *Processor) A() registers.Register { return p.a }

// B returns the B register.
func (p *Processor) B() registers.Register { return p.b }

// C returns the C register.
func (p *Processor) C() registers.Register { return p.c }

// Y returns the Y register.
func (p *Processor) Y() registers.Register { return p.y }

// Z returns the Z register.
func (p *Processor) Z() registers.Register { return p.z }

// T returns the T register.
func (p *Processor) T() registers.Register { return p.t }

// M returns the first permanent-memory register.
func (p *Processor) M() registers.Register { return p.m }

// N returns the second permanent-memory register.
func (p *Processor) N() registers.Register { return p.n }

// F returns the scratch nibble.
func (p *Processor) F() uint8 { return p.f }

// P returns the field pointer. It is normally in [0, registers.NumNibbles);
// `p = n` can load 14 from the set table, which the next field-selecting
// arithmetic op reports as InvalidFieldPointer.
func (p *Processor) P() int { return p.p }

// Base returns the current arithmetic base, 10 or 16.
func (p *Processor) Base() int { return p.base }

// Status returns the 16-bit status word.
func (p *Processor) Status() registers.Status { return p.status }

// PC returns the current program counter.
func (p *Processor) PC() registers.ProgramCounter { return p.pc }

// Stack returns the return stack, for diagnostics and tests.
func (p *Processor) Stack() *registers.ReturnStack { return &p.stack }

// Carry returns the carry flag.
func (p *Processor) Carry() bool { return p.carry }

// PrevCarry returns the previous-carry flag short branches test.
func (p *Processor) PrevCarry() bool { return p.prevCarry }

// DisplayEnabled reports whether the display is currently enabled.
func (p *Processor) DisplayEnabled() bool { return p.displayEnable }

// DelayedBankPending reports whether a `delayed select rom` is latched
// and, if so, which bank it targets.
func (p *Processor) DelayedBankPending() (bank int, pending bool) {
	return p.delayedBank, p.delayedRom
}

// DataFile returns the data-register file, for host/debug access via
// bus.DataBus and bus.DebugBus.
func (p *Processor) DataFile() *memory.DataFile { return p.data }
