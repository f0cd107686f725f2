package ast

import (
	cmn "github.com/shibukawa/satyparse/parser/parsercommon"
)

// Math is math mode content: a single run or a | list of runs.
type Math interface {
	math()
}

type MathSingle struct {
	Tokens []Ranged[MathToken]
}

type MathList struct {
	Runs []Ranged[MathSingle]
}

func (MathSingle) math() {}
func (MathList) math()   {}

// MathToken is a base with optional superscript and subscript.
type MathToken struct {
	Base Ranged[MathGroup]
	Sup  *Ranged[MathGroup]
	Sub  *Ranged[MathGroup]
}

type MathGroup interface {
	mathGroup()
}

// MathGroupSingle is {...}.
type MathGroupSingle struct {
	Single MathSingle
}

type MathUnaryGroup struct {
	Unary MathUnary
}

func (MathGroupSingle) mathGroup() {}
func (MathUnaryGroup) mathGroup()  {}

type MathUnary interface {
	mathUnary()
}

type (
	MathChar        string
	MathSymbol      string
	MathEscapedChar string
)

// MathCmd is a \command with adjacent arguments. Name keeps the \ prefix.
type MathCmd struct {
	Name   Ranged[string]
	Module *Ranged[string]
	Args   []Ranged[MathCmdArg]
}

func (MathChar) mathUnary()        {}
func (MathSymbol) mathUnary()      {}
func (MathEscapedChar) mathUnary() {}
func (MathCmd) mathUnary()         {}

// MathCmdArg is {math}, !{inline}, !<block> or !(expr) and friends.
type MathCmdArg interface {
	mathCmdArg()
}

// MathArg is a {...} math argument.
type MathArg struct {
	Single MathSingle
}

func (MathArg) mathCmdArg()       {}
func (ExprArg) mathCmdArg()       {}
func (VerticalArg) mathCmdArg()   {}
func (HorizontalArg) mathCmdArg() {}

func lowerMath(span *cmn.Span) (Math, error) {
	c := childrenOf(span)
	inner, err := c.next(cmn.MATH_SINGLE, cmn.MATH_LIST)
	if err != nil {
		return nil, err
	}
	if err := c.end(); err != nil {
		return nil, err
	}
	if inner.Rule == cmn.MATH_SINGLE {
		return lowerMathSingle(inner)
	}

	ic := childrenOf(inner)
	runs, err := lowerEach(ic.all(cmn.MATH_SINGLE), lowerMathSingle)
	if err != nil {
		return nil, err
	}

	return MathList{Runs: runs}, ic.end()
}

func lowerMathSingle(span *cmn.Span) (MathSingle, error) {
	c := childrenOf(span)
	tokens, err := lowerEach(c.all(cmn.MATH_TOKEN), lowerMathToken)
	if err != nil {
		return MathSingle{}, err
	}

	return MathSingle{Tokens: tokens}, c.end()
}

func lowerMathToken(span *cmn.Span) (MathToken, error) {
	c := childrenOf(span)
	base, err := c.next(cmn.MATH_GROUP)
	if err != nil {
		return MathToken{}, err
	}

	var tok MathToken
	if tok.Base, err = lowerRanged(base, lowerMathGroup); err != nil {
		return MathToken{}, err
	}
	for script := c.optional(cmn.MATH_SUP, cmn.MATH_SUB); script != nil; script = c.optional(cmn.MATH_SUP, cmn.MATH_SUB) {
		group, err := childrenOf(script).next(cmn.MATH_GROUP)
		if err != nil {
			return MathToken{}, err
		}
		lowered, err := lowerOptional(group, lowerMathGroup)
		if err != nil {
			return MathToken{}, err
		}
		if script.Rule == cmn.MATH_SUP {
			tok.Sup = lowered
		} else {
			tok.Sub = lowered
		}
	}

	return tok, c.end()
}

func lowerMathGroup(span *cmn.Span) (MathGroup, error) {
	c := childrenOf(span)
	inner, err := c.next(cmn.MATH_SINGLE, cmn.MATH_UNARY)
	if err != nil {
		return nil, err
	}
	if err := c.end(); err != nil {
		return nil, err
	}
	if inner.Rule == cmn.MATH_SINGLE {
		single, err := lowerMathSingle(inner)
		return MathGroupSingle{Single: single}, err
	}
	unary, err := lowerMathUnary(inner)

	return MathUnaryGroup{Unary: unary}, err
}

func lowerMathUnary(span *cmn.Span) (MathUnary, error) {
	c := childrenOf(span)
	inner, err := c.next()
	if err != nil {
		return nil, err
	}
	if err := c.end(); err != nil {
		return nil, err
	}

	switch inner.Rule {
	case cmn.MATH_CHAR:
		return MathChar(inner.Text), nil
	case cmn.MATH_SYMBOL:
		return MathSymbol(inner.Text), nil
	case cmn.MATH_ESCAPED_CHAR:
		char, err := childrenOf(inner).next(cmn.MATH_SPECIAL_CHAR)
		if err != nil {
			return nil, err
		}
		return MathEscapedChar(char.Text), nil
	case cmn.MATH_CMD:
		return lowerMathCmd(inner)
	}

	return nil, unexpectedChild(span, inner)
}

func lowerMathCmd(span *cmn.Span) (MathCmd, error) {
	c := childrenOf(span)
	name, err := c.next(cmn.MATH_CMD_NAME)
	if err != nil {
		return MathCmd{}, err
	}

	var cmd MathCmd
	cmd.Name, cmd.Module = lowerCmdName(name)
	if cmd.Args, err = lowerEach(c.all(cmn.MATH_CMD_EXPR_ARG), lowerMathCmdArg); err != nil {
		return MathCmd{}, err
	}

	return cmd, c.end()
}

func lowerMathCmdArg(span *cmn.Span) (MathCmdArg, error) {
	c := childrenOf(span)
	inner, err := c.next(cmn.MATH_SINGLE, cmn.HORIZONTAL_MODE, cmn.VERTICAL_MODE, cmn.CMD_EXPR_ARG)
	if err != nil {
		return nil, err
	}
	if err := c.end(); err != nil {
		return nil, err
	}

	switch inner.Rule {
	case cmn.MATH_SINGLE:
		single, err := lowerMathSingle(inner)
		return MathArg{Single: single}, err
	case cmn.HORIZONTAL_MODE:
		h, err := lowerHorizontal(inner)
		return HorizontalArg{Horizontal: h}, err
	case cmn.VERTICAL_MODE:
		v, err := lowerVertical(inner)
		return VerticalArg{Vertical: v}, err
	}
	value, err := lowerCmdExprArg(inner)

	return ExprArg{Value: value}, err
}
