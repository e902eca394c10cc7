package emulator

import (
	"github.com/ezrec/headache/machine"
	"github.com/ezrec/headache/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Pc      int
	LineNo  int
	Column  int
	Command machine.Command
	Err     error
}

func (err *ErrRuntime) Error() string {
	return f("line %d col %d '%v' (pc %d) %v", err.LineNo, err.Column, err.Command, err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
