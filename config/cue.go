package config

import (
	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/ezrec/headache/machine"
)

const cueSchema = `
eof?:        "fault" | "zero" | "keep"
trace?:      bool
trace_file?: string
`

type cueConfig struct {
	Eof       string `json:"eof"`
	Trace     bool   `json:"trace"`
	TraceFile string `json:"trace_file"`
}

// LoadCue compiles a CUE config, validates it against the schema and
// decodes it.
func LoadCue(name string, src []byte) (cfg Config, err error) {
	cfg = Default()

	defer func() {
		if err != nil {
			err = ErrConfig{Path: name, Err: err}
		}
	}()

	ctx := cuecontext.New()

	schema := ctx.CompileString("close({" + cueSchema + "})")
	if err = schema.Err(); err != nil {
		return
	}

	value := ctx.CompileBytes(src, cue.Filename(name))
	if err = value.Err(); err != nil {
		return
	}

	value = schema.Unify(value)
	if err = value.Validate(); err != nil {
		return
	}

	var raw cueConfig
	if err = value.Decode(&raw); err != nil {
		return
	}

	if raw.Eof != "" {
		cfg.Eof, err = machine.ParseEofPolicy(raw.Eof)
		if err != nil {
			return
		}
	}
	cfg.Trace = raw.Trace
	cfg.TraceFile = raw.TraceFile

	return
}
