package machine

import (
	"errors"

	"github.com/ezrec/headache/translate"
)

var f = translate.From

var (
	// Engine faults
	ErrPcRange       = errors.New(f("program counter out of range"))
	ErrPointerRange  = errors.New(f("data pointer out of range"))
	ErrJumpUnmatched = errors.New(f("unmatched bracket"))
	ErrOutputInvalid = errors.New(f("invalid output value"))
	ErrInputEnd      = errors.New(f("end of input"))
)

// ErrOutputValue reports the cell value an output command could not print.
type ErrOutputValue Cell

func (ev ErrOutputValue) Error() string {
	return f("cell value 0x%08x is not a character", uint32(ev))
}

func (ev ErrOutputValue) Unwrap() error {
	return ErrOutputInvalid
}

// ErrEofPolicy is an unknown end-of-input policy name.
type ErrEofPolicy string

func (ep ErrEofPolicy) Error() string {
	return f("'%v' is not an end-of-input policy", string(ep))
}
