package ast

import (
	cmn "github.com/shibukawa/satyparse/parser/parsercommon"
)

// Pattern is the left-hand side of a binding or a match arm.
type Pattern interface {
	pattern()
}

// Wildcard is _.
type Wildcard struct{}

type LiteralPattern struct {
	Literal Literal
}

// VarPattern binds a variable.
type VarPattern string

type ListPattern struct {
	Elements []Ranged[Pattern]
}

type TuplePattern struct {
	Elements []Ranged[Pattern]
}

type VariantPattern struct {
	Variant Ranged[Variant]
	Arg     *Ranged[Pattern]
}

// ConsPattern is head :: tail.
type ConsPattern struct {
	Head Ranged[Pattern]
	Tail Ranged[Pattern]
}

// AsPattern is pattern as name.
type AsPattern struct {
	Pattern Ranged[Pattern]
	Name    Ranged[string]
}

func (Wildcard) pattern()       {}
func (LiteralPattern) pattern() {}
func (VarPattern) pattern()     {}
func (ListPattern) pattern()    {}
func (TuplePattern) pattern()   {}
func (VariantPattern) pattern() {}
func (ConsPattern) pattern()    {}
func (AsPattern) pattern()      {}

// lowerPattern accepts match_ptn, pattern and every pat_* rule. The wrapper
// rules hold a single child; a parenthesised pattern lowers to its content.
func lowerPattern(span *cmn.Span) (Pattern, error) {
	switch span.Rule {
	case cmn.MATCH_PTN, cmn.PATTERN:
		c := childrenOf(span)
		inner, err := c.next()
		if err != nil {
			return nil, err
		}
		if err := c.end(); err != nil {
			return nil, err
		}
		return lowerPattern(inner)
	case cmn.PAT_AS:
		return lowerAsPattern(span)
	case cmn.PAT_CONS:
		return lowerConsPattern(span)
	case cmn.PAT_VARIANT:
		return lowerVariantPattern(span)
	case cmn.PAT_LIST:
		elems, err := lowerEach(childrenOf(span).all(cmn.MATCH_PTN), lowerPattern)
		return ListPattern{Elements: elems}, err
	case cmn.PAT_TUPLE:
		elems, err := lowerEach(childrenOf(span).all(cmn.MATCH_PTN), lowerPattern)
		if err == nil && len(elems) < 2 {
			return nil, violation(span, "tuple pattern with %d elements", len(elems))
		}
		return TuplePattern{Elements: elems}, err
	case cmn.PAT_WILDCARD:
		return Wildcard{}, nil
	case cmn.LITERAL:
		lit, err := lowerLiteral(span)
		return LiteralPattern{Literal: lit}, err
	case cmn.VAR:
		return VarPattern(span.Text), nil
	}

	return nil, violation(span, "not a pattern")
}

func lowerAsPattern(span *cmn.Span) (AsPattern, error) {
	c := childrenOf(span)
	ptn, err := c.next(cmn.PAT_CONS, cmn.PAT_VARIANT, cmn.PATTERN)
	if err != nil {
		return AsPattern{}, err
	}
	name, err := c.next(cmn.VAR)
	if err != nil {
		return AsPattern{}, err
	}
	lowered, err := lowerRanged(ptn, lowerPattern)
	if err != nil {
		return AsPattern{}, err
	}

	return AsPattern{Pattern: lowered, Name: rangedText(name)}, c.end()
}

func lowerConsPattern(span *cmn.Span) (ConsPattern, error) {
	c := childrenOf(span)
	head, err := c.next(cmn.PAT_VARIANT, cmn.PATTERN)
	if err != nil {
		return ConsPattern{}, err
	}
	tail, err := c.next(cmn.MATCH_PTN)
	if err != nil {
		return ConsPattern{}, err
	}

	var cons ConsPattern
	if cons.Head, err = lowerRanged(head, lowerPattern); err != nil {
		return ConsPattern{}, err
	}
	if cons.Tail, err = lowerRanged(tail, lowerPattern); err != nil {
		return ConsPattern{}, err
	}

	return cons, c.end()
}

func lowerVariantPattern(span *cmn.Span) (VariantPattern, error) {
	c := childrenOf(span)
	variant, err := c.next(cmn.VARIANT)
	if err != nil {
		return VariantPattern{}, err
	}

	var vp VariantPattern
	if vp.Variant, err = lowerRanged(variant, lowerVariant); err != nil {
		return VariantPattern{}, err
	}
	if vp.Arg, err = lowerOptional(c.optional(cmn.PATTERN), lowerPattern); err != nil {
		return VariantPattern{}, err
	}

	return vp, c.end()
}
