// Package config loads interpreter settings from Starlark or CUE files.
//
// A Starlark file assigns the globals it wants to set:
//
//	eof = EOF_ZERO
//	trace = True
//	trace_file = "trace.json"
//
// A CUE file is unified with a closed schema of the same fields:
//
//	eof:   "zero"
//	trace: true
package config

import (
	"iter"
	"os"
	"path/filepath"

	"github.com/ezrec/headache/machine"
)

// Config holds the interpreter settings.
type Config struct {
	Eof       machine.EofPolicy // End-of-input policy.
	Trace     bool              // Log every step.
	TraceFile string            // If set, also write trace records to this file.
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{Eof: machine.EOF_FAULT}
}

// Load reads the config file at path, choosing the format by extension.
// defines are predeclared for Starlark files.
func Load(path string, defines iter.Seq2[string, string]) (cfg Config, err error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return
	}

	switch filepath.Ext(path) {
	case ".star":
		cfg, err = LoadStarlark(path, src, defines)
	case ".cue":
		cfg, err = LoadCue(path, src)
	default:
		cfg = Default()
		err = ErrConfigFormat(path)
	}

	return
}
