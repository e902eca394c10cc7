// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs Brainfuck programs on the console tape.
package emulator

import (
	"io"
	"iter"
	"log/slog"

	"github.com/ezrec/headache/config"
	tape "github.com/ezrec/headache/io"
	"github.com/ezrec/headache/machine"
)

// Emulator state. Engine + program + console tape.
type Emulator struct {
	Verbose         bool              // If set, every step is traced.
	Eof             machine.EofPolicy // End-of-input policy for new engines.
	Logger          *slog.Logger      // Trace destination. nil uses slog.Default().
	*machine.Engine                   // Engine running the current program.
	Program         *machine.Program  // Currently loaded program.

	Console tape.Tape // Console channel.
}

var _ machine.Console = (*tape.Tape)(nil)

// NewEmulator creates a new emulator with an empty program.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program: machine.NewProgram(),
	}

	emu.Reset()

	return
}

// Configure applies interpreter settings.
func (emu *Emulator) Configure(cfg config.Config) {
	emu.Eof = cfg.Eof
	emu.Verbose = cfg.Trace
	if emu.Engine != nil {
		emu.Engine.Eof = cfg.Eof
	}
}

// Defines returns an iterator over the names available to config files.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return machine.Defines()
}

// Load parses program source and resets the emulator to run it.
func (emu *Emulator) Load(r io.Reader) (err error) {
	prog, err := machine.Parse(r)
	if err != nil {
		return
	}

	emu.Program = prog

	return emu.Reset()
}

// Reset the emulator to the start of the current program.
// Pending output is flushed; buffered input is dropped.
func (emu *Emulator) Reset() (err error) {
	err = emu.Console.Flush()
	emu.Console.Rewind()

	emu.Engine = machine.NewEngine(emu.Program, &emu.Console)
	emu.Engine.Eof = emu.Eof
	emu.Engine.Logger = emu.Logger

	return
}

// Close flushes pending output.
func (emu *Emulator) Close() (err error) {
	return emu.Console.Flush()
}

// wrap attaches the source position of pc to a runtime error.
func (emu *Emulator) wrap(pc int, err error) error {
	op := emu.Program.Debug(pc)
	return &ErrRuntime{
		Pc:      pc,
		LineNo:  op.LineNo,
		Column:  op.Column,
		Command: op.Command,
		Err:     err,
	}
}

// Tick performs a single step of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.Engine.Done() {
		done = true
		err = emu.Console.Flush()
		return
	}

	// Set engine trace destination
	emu.Engine.Logger = emu.Logger

	pc := emu.Engine.Pc
	err = emu.Engine.Step()
	if err != nil {
		err = emu.wrap(pc, err)
		return
	}

	if emu.Verbose {
		err = emu.Engine.Trace()
	}

	return
}

// Run the current program to completion.
func (emu *Emulator) Run() (state machine.State, err error) {
	emu.Engine.Logger = emu.Logger

	state, err = emu.Engine.Run(emu.Verbose)
	if err != nil && !emu.Engine.Done() {
		err = emu.wrap(emu.Engine.Pc, err)
	}

	return
}
