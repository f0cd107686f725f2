package parsercommon

import (
	"errors"
	"fmt"
	"strings"

	tok "github.com/shibukawa/satyparse/tokenizer"
)

// ProducerError is a syntax error: the input did not match the start rule.
// Position is the furthest point any rule attempt reached; Expected lists the
// rules that were tried and failed there.
type ProducerError struct {
	Position tok.Position
	Expected []Rule
	Err      error
}

func (e *ProducerError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%v at line %d, column %d", e.Err, e.Position.Line, e.Position.Column)
	if len(e.Expected) > 0 {
		sb.WriteString(": expected ")
		for i, r := range e.Expected {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(r.String())
		}
	}

	return sb.String()
}

func (e *ProducerError) Unwrap() error {
	return e.Err
}

// AsProducerError extracts *ProducerError from err using errors.As.
func AsProducerError(err error) (*ProducerError, bool) {
	var perr *ProducerError
	if errors.As(err, &perr) {
		return perr, true
	}

	return nil, false
}

// ParseError aggregates multiple errors, e.g. one per checked file.
type ParseError struct {
	Errors []error
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	if len(e.Errors) == 0 {
		return "no parse errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString("Multiple parse errors:")
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "\n  [%d] %s", i+1, err.Error())
	}

	return sb.String()
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (e *ParseError) Unwrap() []error {
	return e.Errors
}

// Add appends an error to the ParseError.
func (e *ParseError) Add(err error) {
	if err == nil {
		return
	}
	if perr, ok := err.(*ParseError); ok {
		e.Errors = append(e.Errors, perr.Errors...)
	} else {
		e.Errors = append(e.Errors, err)
	}
}

// ErrOrNil returns e when it holds errors, nil otherwise.
func (e *ParseError) ErrOrNil() error {
	if len(e.Errors) == 0 {
		return nil
	}

	return e
}

// AsParseError is a helper to extract *ParseError from error using errors.As.
func AsParseError(err error) (*ParseError, bool) {
	var perr *ParseError
	if errors.As(err, &perr) {
		return perr, true
	}

	return nil, false
}
