// Package io provides the console channel of the interpreter.
package io

import (
	"bufio"
	"errors"
	"io"
)

// Tape is line-oriented input and buffered character output.
// It wraps an io.Reader for input and an io.Writer for output.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	reader *bufio.Reader
	writer *bufio.Writer
}

// Rewind drops any buffered input and output state, so that the next
// access starts afresh on Input and Output.
func (tc *Tape) Rewind() {
	tc.reader = nil
	tc.writer = nil
}

// ReadLine reads up to and including the next newline.
// A final line without a newline is returned with a nil error;
// io.EOF is returned only when no input remains.
func (tc *Tape) ReadLine() (line string, err error) {
	if tc.Input == nil {
		err = ErrNoInput
		return
	}

	if tc.reader == nil {
		tc.reader = bufio.NewReader(tc.Input)
	}

	line, err = tc.reader.ReadString('\n')
	if errors.Is(err, io.EOF) && len(line) > 0 {
		err = nil
	}

	return
}

// WriteRune buffers the UTF-8 encoding of r.
func (tc *Tape) WriteRune(r rune) (err error) {
	if tc.Output == nil {
		err = ErrNoOutput
		return
	}

	if tc.writer == nil {
		tc.writer = bufio.NewWriter(tc.Output)
	}

	_, err = tc.writer.WriteRune(r)
	return
}

// Flush writes out buffered output.
func (tc *Tape) Flush() (err error) {
	if tc.writer == nil {
		return
	}

	return tc.writer.Flush()
}
