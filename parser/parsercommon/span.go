package parsercommon

import (
	"fmt"

	tok "github.com/shibukawa/satyparse/tokenizer"
)

// Span is one node of the concrete tree: a rule match over a source range.
// End is exclusive; it points just after the last matched character.
// Only named rules become spans; punctuation and keywords are not kept.
type Span struct {
	Rule     Rule
	Start    tok.Position
	End      tok.Position
	Text     string
	Children []*Span
}

// Child returns the i-th child, or nil when out of range.
func (s *Span) Child(i int) *Span {
	if i < 0 || i >= len(s.Children) {
		return nil
	}

	return s.Children[i]
}

// Is reports whether the span was produced by one of rules.
func (s *Span) Is(rules ...Rule) bool {
	if s == nil {
		return false
	}
	for _, r := range rules {
		if s.Rule == r {
			return true
		}
	}

	return false
}

// Walk visits s and its descendants depth first. Returning false from fn
// skips the children of the visited span.
func (s *Span) Walk(fn func(depth int, span *Span) bool) {
	s.walk(0, fn)
}

func (s *Span) walk(depth int, fn func(int, *Span) bool) {
	if !fn(depth, s) {
		return
	}
	for _, c := range s.Children {
		c.walk(depth+1, fn)
	}
}

func (s *Span) String() string {
	return fmt.Sprintf("%s(%d:%d-%d:%d)", s.Rule, s.Start.Line, s.Start.Column, s.End.Line, s.End.Column)
}
