// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"
	"unicode/utf8"
)

// Console is the engine's connection to its input source and output sink.
type Console interface {
	// ReadLine reads one line of input, terminator included.
	// It returns io.EOF only when no input remains.
	ReadLine() (line string, err error)
	// WriteRune writes one character of output.
	WriteRune(r rune) error
	// Flush makes all written output visible.
	Flush() error
}

// State is the machine state at the end of a run.
type State struct {
	Ptr  int   // Final data pointer.
	Pc   int   // Final program counter.
	Tape *Tape // Every cell written during the run.
}

// Engine executes a Program.
type Engine struct {
	Eof    EofPolicy    // End-of-input behaviour of the input command.
	Logger *slog.Logger // Destination of trace records. nil uses slog.Default().

	Ptr  int  // Data pointer.
	Pc   int  // Program counter.
	Tape Tape // Memory.

	program *Program
	console Console
	pending []rune // Input not yet consumed by an input command.
}

// NewEngine creates an engine at the start of prog.
func NewEngine(prog *Program, console Console) (e *Engine) {
	e = &Engine{
		program: prog,
		console: console,
	}

	return
}

// Program returns the program being executed.
func (e *Engine) Program() *Program {
	return e.program
}

// Done is true once the program counter has reached the end of the program.
func (e *Engine) Done() bool {
	return e.Pc >= e.program.Len()
}

// Cell returns the value under the data pointer.
func (e *Engine) Cell() Cell {
	return e.Tape.Read(e.Ptr)
}

func (e *Engine) setCell(value Cell) {
	e.Tape.Write(e.Ptr, value)
}

func (e *Engine) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}

// String returns the engine state as a string.
func (e *Engine) String() (text string) {
	cmd := "-"
	if c, ok := e.program.Command(e.Pc); ok {
		cmd = c.String()
	}

	text += fmt.Sprintf("% 7s: %d/%d %v\n", "pc", e.Pc, e.program.Len(), cmd)
	text += fmt.Sprintf("% 7s: %d\n", "ptr", e.Ptr)
	text += fmt.Sprintf("% 7s: 0x%08x\n", "cell", uint32(e.Cell()))
	text += fmt.Sprintf("% 7s: %d\n", "cells", e.Tape.Len())
	text += fmt.Sprintf("% 7s: %d\n", "pending", len(e.pending))

	return
}

// input fills the cell under the pointer from the pending queue,
// refilling the queue from the console one line at a time.
func (e *Engine) input() (err error) {
	for len(e.pending) == 0 {
		err = e.console.Flush()
		if err != nil {
			return
		}

		var line string
		line, err = e.console.ReadLine()
		if errors.Is(err, io.EOF) {
			err = nil
			switch e.Eof {
			case EOF_ZERO:
				e.setCell(0)
			case EOF_KEEP:
			default:
				err = ErrInputEnd
			}
			return
		}
		if err != nil {
			return
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		e.pending = []rune(line)
	}

	e.setCell(Cell(e.pending[0]))
	e.pending = e.pending[1:]

	return
}

func (e *Engine) output() (err error) {
	value := e.Cell()
	if value > utf8.MaxRune || !utf8.ValidRune(rune(value)) {
		err = ErrOutputValue(value)
		return
	}

	return e.console.WriteRune(rune(value))
}

// match scans from pc in direction dir for the bracket that closes the
// one at pc, counting nesting depth on the way.
func (e *Engine) match(dir int) (pc int, err error) {
	depth := 0
	for pc = e.Pc; pc >= 0 && pc < e.program.Len(); pc += dir {
		switch e.program.Opcodes[pc].Command {
		case CMD_JUMP_FORWARD:
			depth += dir
		case CMD_JUMP_BACK:
			depth -= dir
		}
		if depth == 0 {
			return
		}
	}

	pc = e.Pc
	err = ErrJumpUnmatched
	return
}

// Step executes the command at the program counter, leaving the counter on
// the next command to execute. On error the counter is not moved.
func (e *Engine) Step() (err error) {
	cmd, ok := e.program.Command(e.Pc)
	if !ok {
		err = ErrPcRange
		return
	}

	next := e.Pc
	switch cmd {
	case CMD_MOVE_LEFT:
		if e.Ptr == math.MinInt {
			err = ErrPointerRange
			return
		}
		e.Ptr--
	case CMD_MOVE_RIGHT:
		if e.Ptr == math.MaxInt {
			err = ErrPointerRange
			return
		}
		e.Ptr++
	case CMD_ADD_ONE:
		e.setCell(e.Cell() + 1)
	case CMD_SUB_ONE:
		e.setCell(e.Cell() - 1)
	case CMD_OUTPUT:
		err = e.output()
	case CMD_INPUT:
		err = e.input()
	case CMD_JUMP_FORWARD:
		if e.Cell() == 0 {
			next, err = e.match(1)
		}
	case CMD_JUMP_BACK:
		if e.Cell() != 0 {
			next, err = e.match(-1)
		}
	}
	if err != nil {
		return
	}

	e.Pc = next + 1

	return
}

// Trace logs the program counter, the cell under the pointer and the
// pointer itself. Pending output is flushed first, so the record follows
// the characters the step printed.
func (e *Engine) Trace() (err error) {
	err = e.console.Flush()
	if err != nil {
		return
	}

	e.logger().Info("step", "pc", e.Pc, "cell", uint32(e.Cell()), "ptr", e.Ptr)

	return
}

// Run steps through the program until the program counter reaches its end.
// If trace is set the program is logged once, then every step is logged.
// Output is flushed before returning.
func (e *Engine) Run(trace bool) (state State, err error) {
	defer func() {
		ferr := e.console.Flush()
		if err == nil {
			err = ferr
		}
		state = State{Ptr: e.Ptr, Pc: e.Pc, Tape: &e.Tape}
	}()

	if trace {
		e.logger().Info("program", "commands", e.program.String())
	}

	for !e.Done() {
		err = e.Step()
		if err != nil {
			return
		}
		if trace {
			err = e.Trace()
			if err != nil {
				return
			}
		}
	}

	return
}
