package ast

import (
	cmn "github.com/shibukawa/satyparse/parser/parsercommon"
)

// Location is a 1-based source position. Col counts characters, not bytes.
type Location struct {
	Row int
	Col int
}

// Compare orders locations row first. It returns -1, 0 or +1.
func (l Location) Compare(o Location) int {
	switch {
	case l.Row < o.Row:
		return -1
	case l.Row > o.Row:
		return 1
	case l.Col < o.Col:
		return -1
	case l.Col > o.Col:
		return 1
	}

	return 0
}

// Less reports whether l comes before o.
func (l Location) Less(o Location) bool {
	return l.Compare(o) < 0
}

// Ranged is an AST value with the source range it was built from. End is
// exclusive.
type Ranged[T any] struct {
	Start Location
	End   Location
	Body  T
}

// Wrap attaches the range of span to body.
func Wrap[T any](body T, span *cmn.Span) Ranged[T] {
	start, end := spanRange(span)

	return Ranged[T]{Start: start, End: end, Body: body}
}

func spanRange(span *cmn.Span) (Location, Location) {
	return Location{Row: span.Start.Line, Col: span.Start.Column},
		Location{Row: span.End.Line, Col: span.End.Column}
}
