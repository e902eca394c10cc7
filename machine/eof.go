package machine

import (
	"iter"
	"maps"
)

// EofPolicy selects what an input command does once the console input is
// exhausted.
type EofPolicy int

//go:generate go tool stringer -linecomment -type=EofPolicy
const (
	EOF_FAULT = EofPolicy(0) // fault
	EOF_ZERO  = EofPolicy(1) // zero
	EOF_KEEP  = EofPolicy(2) // keep
)

var _machine_defines = map[string]string{
	"EOF_FAULT": EOF_FAULT.String(),
	"EOF_ZERO":  EOF_ZERO.String(),
	"EOF_KEEP":  EOF_KEEP.String(),
}

// Defines returns an iterator over the named machine constants.
func Defines() iter.Seq2[string, string] {
	return maps.All(_machine_defines)
}

// ParseEofPolicy returns the policy with the given name.
func ParseEofPolicy(name string) (policy EofPolicy, err error) {
	for _, policy = range []EofPolicy{EOF_FAULT, EOF_ZERO, EOF_KEEP} {
		if policy.String() == name {
			return
		}
	}

	policy = EOF_FAULT
	err = ErrEofPolicy(name)
	return
}
