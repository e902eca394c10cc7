package config

import (
	"iter"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/headache/machine"
)

// LoadStarlark executes a Starlark config and reads its globals.
func LoadStarlark(name string, src any, defines iter.Seq2[string, string]) (cfg Config, err error) {
	cfg = Default()

	defer func() {
		if err != nil {
			err = ErrConfig{Path: name, Err: err}
		}
	}()

	pred := starlark.StringDict{}
	if defines != nil {
		for key, value := range defines {
			pred[key] = starlark.String(value)
		}
	}

	opts := syntax.FileOptions{}
	thread := &starlark.Thread{Name: name}
	globals, err := starlark.ExecFileOptions(&opts, thread, name, src, pred)
	if err != nil {
		return
	}

	if value, ok := globals["eof"]; ok {
		str, ok := value.(starlark.String)
		if !ok {
			err = ErrConfigType{Key: "eof", Want: "string", Got: value.Type()}
			return
		}
		cfg.Eof, err = machine.ParseEofPolicy(string(str))
		if err != nil {
			return
		}
	}

	if value, ok := globals["trace"]; ok {
		b, ok := value.(starlark.Bool)
		if !ok {
			err = ErrConfigType{Key: "trace", Want: "bool", Got: value.Type()}
			return
		}
		cfg.Trace = bool(b)
	}

	if value, ok := globals["trace_file"]; ok {
		str, ok := value.(starlark.String)
		if !ok {
			err = ErrConfigType{Key: "trace_file", Want: "string", Got: value.Type()}
			return
		}
		cfg.TraceFile = string(str)
	}

	return
}
