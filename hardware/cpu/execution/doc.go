// Package execution defines the Result of a single tick: which opcode ran,
// what category it decoded to, its mnemonic, whether a branch was taken, and
// the PC it ran at. Processor.Tick returns a Result alongside its error so a
// trace sink can describe what happened without re-decoding the opcode
// itself.
package execution
