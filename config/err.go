package config

import (
	"github.com/ezrec/headache/translate"
)

var f = translate.From

// ErrConfigFormat is a config file of unknown format.
type ErrConfigFormat string

func (err ErrConfigFormat) Error() string {
	return f("%v: unknown config format, want .star or .cue", string(err))
}

// ErrConfigType is a config value of the wrong type.
type ErrConfigType struct {
	Key  string
	Want string
	Got  string
}

func (err ErrConfigType) Error() string {
	return f("%v: want %v, got %v", err.Key, err.Want, err.Got)
}

// ErrConfig locates an error in a config file.
type ErrConfig struct {
	Path string
	Err  error
}

func (err ErrConfig) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err ErrConfig) Unwrap() error {
	return err.Err
}
