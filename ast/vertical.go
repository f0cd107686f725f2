package ast

import (
	cmn "github.com/shibukawa/satyparse/parser/parsercommon"
)

// Vertical is block mode content: a sequence of block commands and
// embeddings.
type Vertical struct {
	Elements []Ranged[VerticalElement]
}

type VerticalElement interface {
	verticalElement()
}

// BlockCmd is a +command invocation. Name keeps the + prefix and any module.
type BlockCmd struct {
	Name   Ranged[string]
	Module *Ranged[string]
	Opts   []Ranged[CmdOption]
	Args   []Ranged[CmdArg]
}

// BlockTextEmbedding is #var; inside block text.
type BlockTextEmbedding struct {
	Module *Ranged[string]
	Var    Ranged[string]
}

func (BlockCmd) verticalElement()           {}
func (BlockTextEmbedding) verticalElement() {}

// CmdOption is ?:arg, or ?* when Value is nil.
type CmdOption struct {
	Value *Ranged[Expr]
}

// CmdArg is a positional command argument.
type CmdArg interface {
	cmdArg()
}

// ExprArg is an argument in parentheses, brackets or a record. Value's range
// excludes the surrounding parentheses.
type ExprArg struct {
	Value Ranged[Expr]
}

// VerticalArg is <...>.
type VerticalArg struct {
	Vertical Vertical
}

// HorizontalArg is {...}.
type HorizontalArg struct {
	Horizontal Horizontal
}

func (ExprArg) cmdArg()       {}
func (VerticalArg) cmdArg()   {}
func (HorizontalArg) cmdArg() {}

func lowerVertical(span *cmn.Span) (Vertical, error) {
	c := childrenOf(span)
	elems, err := lowerEach(c.all(cmn.BLOCK_CMD, cmn.BLOCK_TEXT_EMBEDDING), lowerVerticalElement)
	if err != nil {
		return Vertical{}, err
	}

	return Vertical{Elements: elems}, c.end()
}

func lowerVerticalElement(span *cmn.Span) (VerticalElement, error) {
	switch span.Rule {
	case cmn.BLOCK_CMD:
		name, module, opts, args, err := lowerCommand(span, cmn.BLOCK_CMD_NAME)
		return BlockCmd{Name: name, Module: module, Opts: opts, Args: args}, err
	case cmn.BLOCK_TEXT_EMBEDDING:
		module, v, err := lowerEmbedding(span)
		return BlockTextEmbedding{Module: module, Var: v}, err
	}

	return nil, violation(span, "not a vertical element")
}

// lowerCommand lowers the shape shared by block and inline commands.
func lowerCommand(span *cmn.Span, nameRule cmn.Rule) (name Ranged[string], module *Ranged[string], opts []Ranged[CmdOption], args []Ranged[CmdArg], err error) {
	c := childrenOf(span)
	nameSpan, err := c.next(nameRule)
	if err != nil {
		return name, nil, nil, nil, err
	}
	name, module = lowerCmdName(nameSpan)

	for arg := c.optional(); arg != nil; arg = c.optional() {
		switch arg.Rule {
		case cmn.CMD_EXPR_OPTION:
			opt, err := lowerRanged(arg, lowerCmdOption)
			if err != nil {
				return name, nil, nil, nil, err
			}
			opts = append(opts, opt)
		case cmn.CMD_EXPR_ARG, cmn.CMD_TEXT_ARG:
			lowered, err := lowerRanged(arg, lowerCmdArg)
			if err != nil {
				return name, nil, nil, nil, err
			}
			args = append(args, lowered)
		default:
			return name, nil, nil, nil, unexpectedChild(span, arg)
		}
	}

	return name, module, opts, args, nil
}

func lowerCmdOption(span *cmn.Span) (CmdOption, error) {
	c := childrenOf(span)
	arg := c.optional(cmn.CMD_EXPR_ARG)
	if arg == nil {
		return CmdOption{}, c.end()
	}
	value, err := lowerCmdExprArg(arg)
	if err != nil {
		return CmdOption{}, err
	}

	return CmdOption{Value: &value}, c.end()
}

func lowerCmdArg(span *cmn.Span) (CmdArg, error) {
	if span.Rule == cmn.CMD_EXPR_ARG {
		value, err := lowerCmdExprArg(span)
		return ExprArg{Value: value}, err
	}

	c := childrenOf(span)
	mode, err := c.next(cmn.VERTICAL_MODE, cmn.HORIZONTAL_MODE)
	if err != nil {
		return nil, err
	}
	if err := c.end(); err != nil {
		return nil, err
	}
	if mode.Rule == cmn.VERTICAL_MODE {
		v, err := lowerVertical(mode)
		return VerticalArg{Vertical: v}, err
	}
	h, err := lowerHorizontal(mode)

	return HorizontalArg{Horizontal: h}, err
}

// lowerCmdExprArg lowers the single child of cmd_expr_arg as an expression.
func lowerCmdExprArg(span *cmn.Span) (Ranged[Expr], error) {
	c := childrenOf(span)
	inner, err := c.next(cmn.RECORD, cmn.LIST, cmn.UNIT_CONST, cmn.TUPLE, cmn.EXPR)
	if err != nil {
		return Ranged[Expr]{}, err
	}
	if err := c.end(); err != nil {
		return Ranged[Expr]{}, err
	}
	if inner.Rule == cmn.EXPR {
		return lowerRanged(inner, lowerExpr)
	}

	var unary Unary
	if inner.Rule == cmn.UNIT_CONST {
		unary = LiteralUnary{Literal: UnitLiteral{}}
	} else if unary, err = lowerUnaryAlt(inner); err != nil {
		return Ranged[Expr]{}, err
	}
	wrapped := Wrap(unary, inner)

	return Wrap[Expr](UnaryExpr{Unary: wrapped}, inner), nil
}

// lowerEmbedding lowers #var; and #Module.var; in either text mode.
func lowerEmbedding(span *cmn.Span) (*Ranged[string], Ranged[string], error) {
	c := childrenOf(span)
	module := optionalText(c.optional(cmn.MODULE_NAME))
	v, err := c.next(cmn.VAR_PTN)
	if err != nil {
		return nil, Ranged[string]{}, err
	}

	return module, rangedText(v), c.end()
}
