package ast

import (
	"errors"
	"fmt"

	cmn "github.com/shibukawa/satyparse/parser/parsercommon"
)

// Sentinel errors for lowering. They never describe user syntax errors: the
// producer rejects those before lowering starts.
var (
	ErrContractViolation = errors.New("lowering contract violation")
	ErrIntOverflow       = errors.New("integer literal out of 32-bit range")
	ErrNonFiniteFloat    = errors.New("float literal is not finite")
)

// LoweringError reports a span that could not be turned into an AST node.
type LoweringError struct {
	Rule  cmn.Rule
	Start Location
	End   Location
	Text  string
	Err   error
}

func (e *LoweringError) Error() string {
	return fmt.Sprintf("%v in %s at %d:%d-%d:%d (%q)", e.Err, e.Rule, e.Start.Row, e.Start.Col, e.End.Row, e.End.Col, e.Text)
}

func (e *LoweringError) Unwrap() error {
	return e.Err
}

// AsLoweringError extracts *LoweringError from err using errors.As.
func AsLoweringError(err error) (*LoweringError, bool) {
	var lerr *LoweringError
	if errors.As(err, &lerr) {
		return lerr, true
	}

	return nil, false
}

func newLoweringError(span *cmn.Span, err error) *LoweringError {
	start, end := spanRange(span)

	return &LoweringError{
		Rule:  span.Rule,
		Start: start,
		End:   end,
		Text:  span.Text,
		Err:   err,
	}
}

// violation reports a span whose shape does not match what lowering expects.
func violation(span *cmn.Span, format string, args ...any) error {
	return newLoweringError(span, fmt.Errorf("%w: %s", ErrContractViolation, fmt.Sprintf(format, args...)))
}

func unexpectedChild(parent, child *cmn.Span) error {
	if child == nil {
		return violation(parent, "missing child")
	}

	return violation(parent, "unexpected child %s", child)
}
