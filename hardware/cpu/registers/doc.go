// Package registers implements the ACT core's register file and the small
// supporting state machines built on top of it: the 14-nibble Register type
// used for A, B, C, Y, Z, T, M and N; the 16-bit Status word with its sticky
// bits; the banked ProgramCounter and its LIFO ReturnStack; and the fixed
// set/test lookup tables addressed by the pointer register P.
//
// Register stores one BCD-or-binary digit per nibble and exposes only
// Nibble/SetNibble - the arithmetic itself lives in the alu package, which
// treats Register as a plain nibble vector and layers base-aware add,
// subtract, compare and shift primitives over a registers.Field.
//
// Field is the (first, last) nibble range selected by the opcode's 3-bit
// field code; DecodeField resolves one of the eight named codes (p, wp, xs,
// x, s, m, w, ms) against the processor's current pointer value.
//
// ProgramCounter packs a 4-bit bank and an 8-bit offset into one 12-bit
// value. Next implements the processor's normal linear advance (wrapping
// within the full 4096-word space); WithOffset and WithBank let cpu.go
// express a jump or a bank switch without disturbing the other half.
package registers
