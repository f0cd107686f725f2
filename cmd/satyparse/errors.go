package main

import "errors"

// Sentinel errors for command operations
var (
	ErrFilesFailed       = errors.New("some files failed to parse")
	ErrInputFileNotExist = errors.New("input file does not exist")
)
