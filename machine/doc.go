// Package machine implements the Brainfuck execution engine.
//
// The machine consists of a program of eight single-character commands, a
// program counter, a signed data pointer and a sparse tape of unsigned
// cells whose addresses are unbounded in both directions. Loops are
// resolved at run time by scanning for the matching bracket with nesting
// depth bookkeeping; no jump table is precomputed.
//
// Input and output go through a Console supplied by the caller, so the
// engine runs equally against the process terminal or in-memory buffers.
package machine
