package inspect

import "errors"

// Sentinel errors
var (
	ErrUnknownFormat = errors.New("unknown output format")
	ErrNoLowering    = errors.New("rule has no AST lowering")
)
