package parsercommon

import "errors"

// Sentinel errors
var (
	ErrSyntax         = errors.New("syntax error")
	ErrNestingTooDeep = errors.New("nesting too deep")
)
