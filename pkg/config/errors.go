package config

import "errors"

var (
	// ErrNilConfig indicates Load was called with a nil pointer.
	ErrNilConfig = errors.New("config.nil_target")

	// ErrParsingConfig indicates environment parsing failed.
	ErrParsingConfig = errors.New("config.parsing_failed")
)
