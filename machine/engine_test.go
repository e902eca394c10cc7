package machine

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// console is an in-memory Console.
type console struct {
	lines   []string
	output  strings.Builder
	flushed int // Length of output at the last flush.
	reads   int
	fail    error // Returned by Flush when set.
}

func (cn *console) ReadLine() (line string, err error) {
	cn.reads++
	if len(cn.lines) == 0 {
		err = io.EOF
		return
	}
	line = cn.lines[0]
	cn.lines = cn.lines[1:]
	return
}

func (cn *console) WriteRune(r rune) (err error) {
	_, err = cn.output.WriteRune(r)
	return
}

func (cn *console) Flush() error {
	if cn.fail != nil {
		return cn.fail
	}
	cn.flushed = cn.output.Len()
	return nil
}

func mustParse(t *testing.T, source string) *Program {
	prog, err := Parse(strings.NewReader(source))
	if err != nil {
		t.Fatal(err)
	}
	return prog
}

func doRun(t *testing.T, source string, lines ...string) (e *Engine, cn *console, state State, err error) {
	cn = &console{lines: lines}
	e = NewEngine(mustParse(t, source), cn)
	state, err = e.Run(false)
	return
}

func TestEngineNew(t *testing.T) {
	assert := assert.New(t)

	e := NewEngine(NewProgram(CMD_ADD_ONE), &console{})
	assert.Equal(0, e.Ptr)
	assert.Equal(0, e.Pc)
	assert.Equal(0, e.Tape.Len())
	assert.Equal(EOF_FAULT, e.Eof)
	assert.False(e.Done())
	assert.Equal(1, e.Program().Len())
}

func TestEngineStep_PcRange(t *testing.T) {
	assert := assert.New(t)

	e := NewEngine(NewProgram(CMD_ADD_ONE), &console{})
	assert.NoError(e.Step())
	assert.True(e.Done())
	assert.ErrorIs(e.Step(), ErrPcRange)

	e = NewEngine(NewProgram(), &console{})
	assert.True(e.Done())
	assert.ErrorIs(e.Step(), ErrPcRange)
}

func TestEngineStep_Move(t *testing.T) {
	assert := assert.New(t)

	e, _, state, err := doRun(t, "<<<>")
	assert.NoError(err)
	assert.Equal(-2, state.Ptr)
	assert.Equal(4, state.Pc)
	assert.Equal(0, e.Tape.Len())

	e = NewEngine(NewProgram(CMD_MOVE_LEFT), &console{})
	e.Ptr = math.MinInt
	assert.ErrorIs(e.Step(), ErrPointerRange)
	assert.Equal(0, e.Pc)

	e = NewEngine(NewProgram(CMD_MOVE_RIGHT), &console{})
	e.Ptr = math.MaxInt
	assert.ErrorIs(e.Step(), ErrPointerRange)
	assert.Equal(0, e.Pc)
}

func TestEngineStep_Wrap(t *testing.T) {
	assert := assert.New(t)

	e := NewEngine(NewProgram(CMD_ADD_ONE, CMD_SUB_ONE), &console{})
	e.Tape.Write(0, math.MaxUint32)

	assert.NoError(e.Step())
	assert.Equal(Cell(0), e.Cell())
	assert.NoError(e.Step())
	assert.Equal(Cell(math.MaxUint32), e.Cell())

	e, _, _, err := doRun(t, "-")
	assert.NoError(err)
	assert.Equal(Cell(1<<CELL_BITS-1), e.Cell())
}

func TestEngineInversePair(t *testing.T) {
	assert := assert.New(t)

	for _, start := range []Cell{0, 1, 0x7f, 0xff, math.MaxUint32 - 1, math.MaxUint32} {
		e := NewEngine(NewProgram(CMD_ADD_ONE, CMD_SUB_ONE, CMD_SUB_ONE, CMD_ADD_ONE), &console{})
		e.Tape.Write(0, start)
		_, err := e.Run(false)
		assert.NoError(err)
		assert.Equal(start, e.Cell(), "start %v", start)
	}
}

func TestEngineLoopSkip(t *testing.T) {
	assert := assert.New(t)

	// The guard is zero, so the body never runs and '>' follows the ']'.
	e, cn, state, err := doRun(t, "[+.>+<]>+")
	assert.NoError(err)
	assert.Equal(1, state.Ptr)
	assert.Equal(Cell(0), e.Tape.Read(0))
	assert.Equal(Cell(1), e.Tape.Read(1))
	assert.Equal("", cn.output.String())

	e = NewEngine(NewProgram(CMD_JUMP_FORWARD, CMD_ADD_ONE, CMD_JUMP_BACK, CMD_MOVE_RIGHT), &console{})
	assert.NoError(e.Step())
	assert.Equal(3, e.Pc)
}

func TestEngineLoopFallThrough(t *testing.T) {
	assert := assert.New(t)

	e := NewEngine(NewProgram(CMD_JUMP_FORWARD, CMD_SUB_ONE, CMD_JUMP_BACK), &console{})
	e.Tape.Write(0, 2)

	assert.NoError(e.Step())
	assert.Equal(1, e.Pc)
	assert.NoError(e.Step())
	assert.NoError(e.Step())
	// Cell is still nonzero: back to the first command of the body.
	assert.Equal(1, e.Pc)
	assert.NoError(e.Step())
	assert.NoError(e.Step())
	assert.Equal(3, e.Pc)
	assert.True(e.Done())
}

func TestEngineMoveIdiom(t *testing.T) {
	assert := assert.New(t)

	e, _, state, err := doRun(t, "+++++[->+<]")
	assert.NoError(err)
	assert.Equal(0, state.Ptr)
	assert.Equal(Cell(0), e.Tape.Read(0))
	assert.Equal(Cell(5), e.Tape.Read(1))
}

func TestEngineNested(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		source string
		cells  map[int]Cell
	}){
		{"clear", "+++[[-]]", map[int]Cell{0: 0}},
		{"skip_nested", "[[-]+]>+", map[int]Cell{1: 1}},
		{"multiply", "+++[>++[>+<-]<-]", map[int]Cell{0: 0, 1: 0, 2: 6}},
		{"back_over_inner", "++[>+[-]<-]", map[int]Cell{0: 0, 1: 0}},
		{"siblings", "++[>+<-]>[>++<-][]", map[int]Cell{0: 0, 1: 0, 2: 4}},
	}

	for _, entry := range table {
		e, _, _, err := doRun(t, entry.source)
		assert.NoError(err, entry.name)
		for addr, value := range entry.cells {
			assert.Equal(value, e.Tape.Read(addr), "%v @%d", entry.name, addr)
		}
	}
}

func TestEngineUnmatched(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		source string
		pc     int
	}){
		{"open", "[", 0},
		{"open_nested", "[[]", 0},
		{"close", "+]", 1},
		{"close_nested", "+[-]+]", 5},
	}

	for _, entry := range table {
		e, _, state, err := doRun(t, entry.source)
		assert.ErrorIs(err, ErrJumpUnmatched, entry.name)
		assert.Equal(entry.pc, state.Pc, entry.name)
		assert.False(e.Done(), entry.name)
	}

	// A nonzero guard never scans, so the stray '[' is not noticed.
	_, _, state, err := doRun(t, "+[")
	assert.NoError(err)
	assert.Equal(2, state.Pc)
}

func TestEngineHelloWorld(t *testing.T) {
	assert := assert.New(t)

	source := "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++."
	_, cn, _, err := doRun(t, source)
	assert.NoError(err)
	assert.Equal("Hello", cn.output.String())
	assert.Equal(cn.output.Len(), cn.flushed)
}

func TestEngineOutput(t *testing.T) {
	assert := assert.New(t)

	e := NewEngine(NewProgram(CMD_OUTPUT), &console{})
	e.Tape.Write(0, 'é')
	_, err := e.Run(false)
	assert.NoError(err)
	assert.Equal("é", e.console.(*console).output.String())

	for _, value := range []Cell{0xd800, 0xdfff, 0x110000, math.MaxUint32} {
		e = NewEngine(NewProgram(CMD_OUTPUT), &console{})
		e.Tape.Write(0, value)
		_, err = e.Run(false)
		assert.ErrorIs(err, ErrOutputInvalid, "0x%x", value)
		var ev ErrOutputValue
		assert.True(errors.As(err, &ev))
		assert.Equal(ErrOutputValue(value), ev)
	}
}

func TestEngineInput(t *testing.T) {
	assert := assert.New(t)

	_, cn, _, err := doRun(t, ",.", "A\n")
	assert.NoError(err)
	assert.Equal("A", cn.output.String())

	// One line feeds several inputs; CR LF is stripped.
	e, cn, _, err := doRun(t, ",>,>,", "ab\r\n", "c\n")
	assert.NoError(err)
	assert.Equal(Cell('a'), e.Tape.Read(0))
	assert.Equal(Cell('b'), e.Tape.Read(1))
	assert.Equal(Cell('c'), e.Tape.Read(2))
	assert.Equal(2, cn.reads)
}

func TestEngineInput_Blank(t *testing.T) {
	assert := assert.New(t)

	e, cn, _, err := doRun(t, ",", "\n", "\r\n", "z")
	assert.NoError(err)
	assert.Equal(Cell('z'), e.Cell())
	assert.Equal(3, cn.reads)
}

func TestEngineInput_FlushFirst(t *testing.T) {
	assert := assert.New(t)

	cn := &console{lines: []string{"x\n"}}
	e := NewEngine(mustParse(t, strings.Repeat("+", '@')+".,"), cn)
	for !e.Done() {
		assert.NoError(e.Step())
	}
	assert.Equal("@", cn.output.String())
	assert.Equal(1, cn.flushed)
	assert.Equal(Cell('x'), e.Cell())
}

func TestEngineInput_Eof(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		policy EofPolicy
		err    error
		cell   Cell
	}){
		{EOF_FAULT, ErrInputEnd, 7},
		{EOF_ZERO, nil, 0},
		{EOF_KEEP, nil, 7},
	}

	for _, entry := range table {
		e := NewEngine(NewProgram(CMD_INPUT), &console{})
		e.Eof = entry.policy
		e.Tape.Write(0, 7)
		_, err := e.Run(false)
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.policy.String())
			assert.Equal(0, e.Pc)
		} else {
			assert.NoError(err, entry.policy.String())
			assert.True(e.Done())
		}
		assert.Equal(entry.cell, e.Cell(), entry.policy.String())
	}
}

func TestEngineRun_Trace(t *testing.T) {
	assert := assert.New(t)

	buff := &bytes.Buffer{}
	e := NewEngine(mustParse(t, "+>+"), &console{})
	e.Logger = slog.New(slog.NewTextHandler(buff, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))

	_, err := e.Run(true)
	assert.NoError(err)

	lines := strings.Split(strings.TrimSpace(buff.String()), "\n")
	assert.Equal([]string{
		"level=INFO msg=program commands=+>+",
		"level=INFO msg=step pc=1 cell=1 ptr=0",
		"level=INFO msg=step pc=2 cell=0 ptr=1",
		"level=INFO msg=step pc=3 cell=1 ptr=1",
	}, lines)
}

func TestEngineTrace_Flush(t *testing.T) {
	assert := assert.New(t)

	buff := &bytes.Buffer{}
	cn := &console{}
	e := NewEngine(mustParse(t, strings.Repeat("+", 'A')+"."), cn)
	e.Logger = slog.New(slog.NewTextHandler(buff, nil))

	for range 65 {
		assert.NoError(e.Step())
	}
	assert.NoError(e.Step())
	assert.Equal(0, cn.flushed)
	assert.NoError(e.Trace())
	assert.Equal(1, cn.flushed)
	assert.Contains(buff.String(), "pc=66")

	// A failed flush is returned and nothing is logged.
	buff.Reset()
	e = NewEngine(mustParse(t, "+"), &console{fail: io.ErrShortWrite})
	e.Logger = slog.New(slog.NewTextHandler(buff, nil))
	state, err := e.Run(true)
	assert.ErrorIs(err, io.ErrShortWrite)
	assert.Equal(1, state.Pc)
	assert.NotContains(buff.String(), "msg=step")
}

func TestEngineString(t *testing.T) {
	assert := assert.New(t)

	e := NewEngine(NewProgram(CMD_ADD_ONE, CMD_OUTPUT), &console{})
	assert.NoError(e.Step())

	text := e.String()
	assert.Contains(text, "pc: 1/2 .")
	assert.Contains(text, "cell: 0x00000001")
	assert.Contains(text, "cells: 1")
}
