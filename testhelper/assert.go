package testhelper

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/alecthomas/repr"
	"github.com/shibukawa/satyparse/ast"
	cmn "github.com/shibukawa/satyparse/parser/parsercommon"
)

// AssertParsed parses text with g and compares the result with expected.
func AssertParsed[T any](t *testing.T, g ast.Grammar[T], text string, expected T) {
	t.Helper()

	actual, err := g.Parse(text)
	assert.NoError(t, err, "%s: parse %q", GetCaller(t), text)
	if err != nil {
		return
	}
	assert.Equal(t, expected, actual, "%s: parse %q\n%s", GetCaller(t), text, repr.String(actual, repr.Indent("  ")))
}

// AssertNotParsed checks that the producer rejects text. Lowering errors do
// not count: they mean the grammar accepted the input.
func AssertNotParsed[T any](t *testing.T, g ast.Grammar[T], text string) {
	t.Helper()

	actual, err := g.Parse(text)
	if err == nil {
		t.Errorf("%s: %q should not parse, got %s", GetCaller(t), text, repr.String(actual))
		return
	}
	_, ok := cmn.AsProducerError(err)
	assert.True(t, ok, "%s: %q failed outside the producer: %v", GetCaller(t), text, err)
}

// R builds a single line range, like the spans tests usually expect.
func R[T any](body T, startCol, endCol int) ast.Ranged[T] {
	return RR(body, 1, startCol, 1, endCol)
}

// RR builds a range that may cross lines.
func RR[T any](body T, startRow, startCol, endRow, endCol int) ast.Ranged[T] {
	return ast.Ranged[T]{
		Start: ast.Location{Row: startRow, Col: startCol},
		End:   ast.Location{Row: endRow, Col: endCol},
		Body:  body,
	}
}

// Ptr returns a pointer to r, for optional fields.
func Ptr[T any](r ast.Ranged[T]) *ast.Ranged[T] {
	return &r
}
