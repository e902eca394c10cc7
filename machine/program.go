package machine

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"strings"
)

// Opcode is a command and the source position it was parsed from.
type Opcode struct {
	Command Command
	LineNo  int // 1-based source line, 0 if not parsed from source.
	Column  int // 1-based rune column, 0 if not parsed from source.
}

// Program is an immutable, ordered list of opcodes.
type Program struct {
	Opcodes []Opcode
}

// NewProgram creates a program from a list of commands.
func NewProgram(cmds ...Command) (prog *Program) {
	prog = &Program{Opcodes: make([]Opcode, len(cmds))}
	for n, cmd := range cmds {
		prog.Opcodes[n].Command = cmd
	}

	return
}

// Parse reads program source, keeping only command characters.
// No bracket balancing is checked.
func Parse(r io.Reader) (prog *Program, err error) {
	prog = &Program{}

	in := bufio.NewReader(r)
	lineno, column := 1, 0
	for {
		var c rune
		c, _, err = in.ReadRune()
		if errors.Is(err, io.EOF) {
			err = nil
			break
		}
		if err != nil {
			return
		}

		column++
		if c == '\n' {
			lineno++
			column = 0
			continue
		}

		cmd, ok := ParseCommand(c)
		if !ok {
			continue
		}
		prog.Opcodes = append(prog.Opcodes, Opcode{
			Command: cmd,
			LineNo:  lineno,
			Column:  column,
		})
	}

	return
}

// Len returns the number of commands in the program.
func (prog *Program) Len() int {
	return len(prog.Opcodes)
}

// Command returns the command at pc.
func (prog *Program) Command(pc int) (cmd Command, ok bool) {
	if pc < 0 || pc >= len(prog.Opcodes) {
		return
	}

	return prog.Opcodes[pc].Command, true
}

// Debug returns the opcode at pc, or the zero Opcode if pc is out of range.
func (prog *Program) Debug(pc int) (op Opcode) {
	if pc >= 0 && pc < len(prog.Opcodes) {
		op = prog.Opcodes[pc]
	}

	return
}

// Commands iterates over the program counter and command of each opcode.
func (prog *Program) Commands() iter.Seq2[int, Command] {
	return func(yield func(pc int, cmd Command) bool) {
		for pc, op := range prog.Opcodes {
			if !yield(pc, op.Command) {
				return
			}
		}
	}
}

// String renders the command sequence.
func (prog *Program) String() string {
	var sb strings.Builder
	for _, cmd := range prog.Commands() {
		sb.WriteString(cmd.String())
	}

	return sb.String()
}
