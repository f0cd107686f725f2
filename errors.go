package satyparse

import "errors"

// Common errors used throughout the satyparse package
var (
	// ErrConfigValidation is returned when configuration validation fails.
	ErrConfigValidation = errors.New("configuration validation failed")
	// ErrNoInputFiles indicates that no source file matched the given roots.
	ErrNoInputFiles = errors.New("no input files")
)
