package ast

import (
	cmn "github.com/shibukawa/satyparse/parser/parsercommon"
)

// Unary is an atom: something that needs no operator precedence.
type Unary interface {
	unary()
}

// BlockText is '< ... >.
type BlockText struct {
	Vertical Vertical
}

// HorizontalText is { ... }.
type HorizontalText struct {
	Horizontal Horizontal
}

// MathText is ${ ... }.
type MathText struct {
	Math Math
}

// Record is (| k = v; ... |). With Default set it is (| d with k = v |) and
// Fields is never empty.
type Record struct {
	Fields  []Ranged[RecordUnit]
	Default *Ranged[Unary]
}

type RecordUnit struct {
	Key   Ranged[string]
	Value Ranged[Expr]
}

type List struct {
	Elements []Ranged[Expr]
}

// Tuple always has two or more elements.
type Tuple struct {
	Elements []Ranged[Expr]
}

// BinOperator is an operator section such as (+).
type BinOperator string

// ParenExpr is a parenthesised expression.
type ParenExpr struct {
	Expr Ranged[Expr]
}

type LiteralUnary struct {
	Literal Literal
}

// ExprWithMod is Module.(expr).
type ExprWithMod struct {
	Module Ranged[string]
	Expr   Ranged[Expr]
}

type ModVar struct {
	Module Ranged[string]
	Var    Ranged[string]
}

type Variable string

func (BlockText) unary()      {}
func (HorizontalText) unary() {}
func (MathText) unary()       {}
func (Record) unary()         {}
func (List) unary()           {}
func (Tuple) unary()          {}
func (BinOperator) unary()    {}
func (ParenExpr) unary()      {}
func (LiteralUnary) unary()   {}
func (ExprWithMod) unary()    {}
func (ModVar) unary()         {}
func (Variable) unary()       {}

func lowerUnary(span *cmn.Span) (Unary, error) {
	c := childrenOf(span)
	inner, err := c.next()
	if err != nil {
		return nil, err
	}
	if err := c.end(); err != nil {
		return nil, err
	}

	return lowerUnaryAlt(inner)
}

// lowerUnaryAlt lowers the single child of a unary span.
func lowerUnaryAlt(span *cmn.Span) (Unary, error) {
	switch span.Rule {
	case cmn.BLOCK_TEXT:
		mode, err := childrenOf(span).next(cmn.VERTICAL_MODE)
		if err != nil {
			return nil, err
		}
		v, err := lowerVertical(mode)
		return BlockText{Vertical: v}, err
	case cmn.HORIZONTAL_TEXT:
		mode, err := childrenOf(span).next(cmn.HORIZONTAL_MODE)
		if err != nil {
			return nil, err
		}
		h, err := lowerHorizontal(mode)
		return HorizontalText{Horizontal: h}, err
	case cmn.MATH_TEXT:
		mode, err := childrenOf(span).next(cmn.MATH_MODE)
		if err != nil {
			return nil, err
		}
		m, err := lowerMath(mode)
		return MathText{Math: m}, err
	case cmn.RECORD:
		return lowerRecord(span)
	case cmn.LIST:
		return lowerList(span)
	case cmn.TUPLE:
		return lowerTuple(span)
	case cmn.BIN_OPERATOR:
		return BinOperator(span.Text), nil
	case cmn.EXPR:
		expr, err := lowerRanged(span, lowerExpr)
		return ParenExpr{Expr: expr}, err
	case cmn.LITERAL:
		lit, err := lowerLiteral(span)
		return LiteralUnary{Literal: lit}, err
	case cmn.EXPR_WITH_MOD:
		return lowerExprWithMod(span)
	case cmn.MOD_VAR:
		return lowerModVar(span)
	case cmn.VAR:
		return Variable(span.Text), nil
	}

	return nil, violation(span, "not a unary")
}

func lowerRecord(span *cmn.Span) (Record, error) {
	c := childrenOf(span)
	if c.peek() == nil {
		return Record{}, nil
	}

	var rec Record
	var err error
	if rec.Default, err = lowerOptional(c.optional(cmn.UNARY), lowerUnary); err != nil {
		return Record{}, err
	}

	inner, err := c.next(cmn.RECORD_INNER)
	if err != nil {
		return Record{}, err
	}
	ic := childrenOf(inner)
	if rec.Fields, err = lowerEach(ic.all(cmn.RECORD_UNIT), lowerRecordUnit); err != nil {
		return Record{}, err
	}
	if len(rec.Fields) == 0 {
		return Record{}, violation(inner, "no record fields")
	}
	if err := ic.end(); err != nil {
		return Record{}, err
	}

	return rec, c.end()
}

func lowerRecordUnit(span *cmn.Span) (RecordUnit, error) {
	c := childrenOf(span)
	key, err := c.next(cmn.VAR_PTN)
	if err != nil {
		return RecordUnit{}, err
	}
	value, err := c.next(cmn.EXPR)
	if err != nil {
		return RecordUnit{}, err
	}
	lowered, err := lowerRanged(value, lowerExpr)
	if err != nil {
		return RecordUnit{}, err
	}

	return RecordUnit{Key: rangedText(key), Value: lowered}, c.end()
}

func lowerList(span *cmn.Span) (List, error) {
	c := childrenOf(span)
	elems, err := lowerEach(c.all(cmn.EXPR), lowerExpr)
	if err != nil {
		return List{}, err
	}

	return List{Elements: elems}, c.end()
}

func lowerTuple(span *cmn.Span) (Tuple, error) {
	c := childrenOf(span)
	elems, err := lowerEach(c.all(cmn.EXPR), lowerExpr)
	if err != nil {
		return Tuple{}, err
	}
	if len(elems) < 2 {
		return Tuple{}, violation(span, "tuple with %d elements", len(elems))
	}

	return Tuple{Elements: elems}, c.end()
}

func lowerExprWithMod(span *cmn.Span) (ExprWithMod, error) {
	c := childrenOf(span)
	module, err := c.next(cmn.MODULE_NAME)
	if err != nil {
		return ExprWithMod{}, err
	}
	body, err := c.next(cmn.EXPR)
	if err != nil {
		return ExprWithMod{}, err
	}
	expr, err := lowerRanged(body, lowerExpr)
	if err != nil {
		return ExprWithMod{}, err
	}

	return ExprWithMod{Module: rangedText(module), Expr: expr}, c.end()
}

func lowerModVar(span *cmn.Span) (ModVar, error) {
	c := childrenOf(span)
	module, err := c.next(cmn.MODULE_NAME)
	if err != nil {
		return ModVar{}, err
	}
	v, err := c.next(cmn.VAR)
	if err != nil {
		return ModVar{}, err
	}

	return ModVar{Module: rangedText(module), Var: rangedText(v)}, c.end()
}
