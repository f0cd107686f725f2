package ast

import (
	"github.com/shibukawa/satyparse/parser"
	cmn "github.com/shibukawa/satyparse/parser/parsercommon"
)

// Grammar ties an AST node type to the rule it is lowered from.
type Grammar[T any] struct {
	rule  cmn.Rule
	lower func(*cmn.Span) (T, error)
}

// NewGrammar creates a descriptor for nodes of type T built from spans of rule.
func NewGrammar[T any](rule cmn.Rule, lower func(*cmn.Span) (T, error)) Grammar[T] {
	return Grammar[T]{rule: rule, lower: lower}
}

// Rule returns the start rule used by Parse.
func (g Grammar[T]) Rule() cmn.Rule {
	return g.rule
}

// Lower builds a node from span, which must be tagged with g.Rule().
func (g Grammar[T]) Lower(span *cmn.Span) (T, error) {
	if span == nil || span.Rule != g.rule {
		var zero T
		if span == nil {
			return zero, &LoweringError{Rule: g.rule, Err: ErrContractViolation}
		}
		return zero, violation(span, "expected %s", g.rule)
	}

	return g.lower(span)
}

// LowerRanged is Lower with the span's range attached.
func (g Grammar[T]) LowerRanged(span *cmn.Span) (Ranged[T], error) {
	body, err := g.Lower(span)
	if err != nil {
		return Ranged[T]{}, err
	}

	return Wrap(body, span), nil
}

// Parse produces text under g.Rule() and lowers the root span. Syntax errors
// are returned as *parser.ProducerError.
func (g Grammar[T]) Parse(text string, options ...parser.Options) (T, error) {
	span, err := parser.Produce(g.rule, text, options...)
	if err != nil {
		var zero T
		return zero, err
	}

	return g.Lower(span)
}

// ParseRanged is Parse with the root range attached.
func (g Grammar[T]) ParseRanged(text string, options ...parser.Options) (Ranged[T], error) {
	span, err := parser.Produce(g.rule, text, options...)
	if err != nil {
		return Ranged[T]{}, err
	}

	return g.LowerRanged(span)
}

// children walks the child spans of one node in order. Lowering functions
// peek at the next tag before consuming it.
type children struct {
	parent *cmn.Span
	pos    int
}

func childrenOf(span *cmn.Span) *children {
	return &children{parent: span}
}

// peek returns the next child when it is tagged with one of rules, without
// consuming it. With no rules any child matches.
func (c *children) peek(rules ...cmn.Rule) *cmn.Span {
	next := c.parent.Child(c.pos)
	if len(rules) > 0 && !next.Is(rules...) {
		return nil
	}

	return next
}

// optional consumes and returns the next child when it is tagged with one of
// rules.
func (c *children) optional(rules ...cmn.Rule) *cmn.Span {
	next := c.peek(rules...)
	if next != nil {
		c.pos++
	}

	return next
}

// next consumes the next child, which must be tagged with one of rules.
func (c *children) next(rules ...cmn.Rule) (*cmn.Span, error) {
	next := c.optional(rules...)
	if next == nil {
		return nil, unexpectedChild(c.parent, c.parent.Child(c.pos))
	}

	return next, nil
}

// all consumes every following child tagged with one of rules.
func (c *children) all(rules ...cmn.Rule) []*cmn.Span {
	var spans []*cmn.Span
	for {
		next := c.optional(rules...)
		if next == nil {
			return spans
		}
		spans = append(spans, next)
	}
}

// end fails when children remain.
func (c *children) end() error {
	if rest := c.parent.Child(c.pos); rest != nil {
		return unexpectedChild(c.parent, rest)
	}

	return nil
}

func lowerRanged[T any](span *cmn.Span, lower func(*cmn.Span) (T, error)) (Ranged[T], error) {
	body, err := lower(span)
	if err != nil {
		return Ranged[T]{}, err
	}

	return Wrap(body, span), nil
}

func lowerOptional[T any](span *cmn.Span, lower func(*cmn.Span) (T, error)) (*Ranged[T], error) {
	if span == nil {
		return nil, nil
	}
	r, err := lowerRanged(span, lower)
	if err != nil {
		return nil, err
	}

	return &r, nil
}

// lowerEach lowers spans in order. The result is nil when spans is empty.
func lowerEach[T any](spans []*cmn.Span, lower func(*cmn.Span) (T, error)) ([]Ranged[T], error) {
	if len(spans) == 0 {
		return nil, nil
	}
	results := make([]Ranged[T], 0, len(spans))
	for _, span := range spans {
		r, err := lowerRanged(span, lower)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	return results, nil
}

// rangedText returns the source text of span as a ranged string.
func rangedText(span *cmn.Span) Ranged[string] {
	return Wrap(span.Text, span)
}

func optionalText(span *cmn.Span) *Ranged[string] {
	if span == nil {
		return nil
	}
	r := rangedText(span)

	return &r
}
