package ast

import (
	cmn "github.com/shibukawa/satyparse/parser/parsercommon"
)

// Expr is an expression of the functional language.
type Expr interface {
	expr()
}

type Match struct {
	Subject Ranged[Expr]
	Arms    []Ranged[MatchArm]
}

// MatchArm is one "pattern when guard -> body" case.
type MatchArm struct {
	Pattern Ranged[Pattern]
	Guard   *Ranged[Expr]
	Body    Ranged[Expr]
}

// BindStmt is "statement in body".
type BindStmt struct {
	Stmt Ranged[Statement]
	Body Ranged[Expr]
}

type While struct {
	Cond Ranged[Expr]
	Body Ranged[Expr]
}

type If struct {
	Cond Ranged[Expr]
	Then Ranged[Expr]
	Else Ranged[Expr]
}

// Dyadic is a binary operator application. Operands are already grouped by
// precedence: "1 - 2 - 3" has "1 - 2" as its left operand.
type Dyadic struct {
	LHS Ranged[Expr]
	Op  Ranged[string]
	RHS Ranged[Expr]
}

// UnaryOperatorExpr is "-x" or "not x".
type UnaryOperatorExpr struct {
	Op      Ranged[string]
	Operand Ranged[Unary]
}

type VariantConstructor struct {
	Variant Ranged[Variant]
	Arg     *Ranged[Unary]
}

// Variant is a constructor name, optionally module qualified.
type Variant struct {
	Module *Ranged[string]
	Name   Ranged[string]
}

// CommandApplication is "command \name", an inline command used as a value.
type CommandApplication struct {
	Module *Ranged[string]
	Name   Ranged[string]
}

// FunctionApplication applies Func to optional arguments (?:x, or ?* for an
// omitted one) and positional arguments.
type FunctionApplication struct {
	Func Ranged[Unary]
	Opts []Ranged[AppOption]
	Args []Ranged[Unary]
}

// AppOption is an optional argument. Value is nil for ?*.
type AppOption struct {
	Value *Ranged[Unary]
}

type RecordMember struct {
	Record Ranged[Unary]
	Member Ranged[string]
}

// UnaryExpr is an atom used as an expression.
type UnaryExpr struct {
	Unary Ranged[Unary]
}

func (Match) expr()               {}
func (BindStmt) expr()            {}
func (While) expr()               {}
func (If) expr()                  {}
func (Dyadic) expr()              {}
func (UnaryOperatorExpr) expr()   {}
func (VariantConstructor) expr()  {}
func (CommandApplication) expr()  {}
func (FunctionApplication) expr() {}
func (RecordMember) expr()        {}
func (UnaryExpr) expr()           {}

// exprAlternatives are the rules an expr span wraps, apart from bind_stmt.
var exprAlternatives = []cmn.Rule{
	cmn.MATCH_EXPR,
	cmn.CTRL_IF,
	cmn.CTRL_WHILE,
	cmn.DYADIC_EXPR,
	cmn.UNARY_OPERATOR_EXPR,
	cmn.VARIANT_CONSTRUCTOR,
	cmn.APPLICATION,
	cmn.RECORD_MEMBER,
	cmn.UNARY,
}

// dyadicOperands also admits a whole expr, which is how a trailing match, if,
// while or bind reaches a dyadic node.
var dyadicOperands = append([]cmn.Rule{cmn.EXPR}, exprAlternatives...)

func lowerOperand(span *cmn.Span) (Expr, error) {
	if span.Rule == cmn.EXPR {
		return lowerExpr(span)
	}

	return lowerExprAlt(span)
}

func lowerExpr(span *cmn.Span) (Expr, error) {
	c := childrenOf(span)

	if bind := c.optional(cmn.BIND_STMT); bind != nil {
		return lowerBindStmt(bind, c)
	}

	inner, err := c.next(exprAlternatives...)
	if err != nil {
		return nil, err
	}
	if err := c.end(); err != nil {
		return nil, err
	}

	return lowerExprAlt(inner)
}

// lowerExprAlt lowers a span tagged with one of exprAlternatives. Dyadic
// operands other than a trailing match, if, while or bind arrive in this
// form, without an enclosing expr span.
func lowerExprAlt(span *cmn.Span) (Expr, error) {
	switch span.Rule {
	case cmn.MATCH_EXPR:
		return lowerMatch(span)
	case cmn.CTRL_IF:
		exprs, err := lowerExprChildren(span, 3)
		if err != nil {
			return nil, err
		}
		return If{Cond: exprs[0], Then: exprs[1], Else: exprs[2]}, nil
	case cmn.CTRL_WHILE:
		exprs, err := lowerExprChildren(span, 2)
		if err != nil {
			return nil, err
		}
		return While{Cond: exprs[0], Body: exprs[1]}, nil
	case cmn.DYADIC_EXPR:
		return lowerDyadic(span)
	case cmn.UNARY_OPERATOR_EXPR:
		return lowerUnaryOperatorExpr(span)
	case cmn.VARIANT_CONSTRUCTOR:
		return lowerVariantConstructor(span)
	case cmn.APPLICATION:
		return lowerApplication(span)
	case cmn.RECORD_MEMBER:
		return lowerRecordMember(span)
	case cmn.UNARY:
		unary, err := lowerRanged(span, lowerUnary)
		if err != nil {
			return nil, err
		}
		return UnaryExpr{Unary: unary}, nil
	}

	return nil, violation(span, "not an expression")
}

func lowerBindStmt(bind *cmn.Span, rest *children) (BindStmt, error) {
	stmt, err := childrenOf(bind).next(cmn.STATEMENT)
	if err != nil {
		return BindStmt{}, err
	}
	body, err := rest.next(cmn.EXPR)
	if err != nil {
		return BindStmt{}, err
	}
	if err := rest.end(); err != nil {
		return BindStmt{}, err
	}

	var b BindStmt
	if b.Stmt, err = lowerRanged(stmt, lowerStatement); err != nil {
		return BindStmt{}, err
	}
	if b.Body, err = lowerRanged(body, lowerExpr); err != nil {
		return BindStmt{}, err
	}

	return b, nil
}

// lowerExprChildren lowers exactly n expr children.
func lowerExprChildren(span *cmn.Span, n int) ([]Ranged[Expr], error) {
	c := childrenOf(span)
	exprs := c.all(cmn.EXPR)
	if len(exprs) != n {
		return nil, violation(span, "want %d expressions, got %d", n, len(exprs))
	}
	if err := c.end(); err != nil {
		return nil, err
	}

	return lowerEach(exprs, lowerExpr)
}

func lowerMatch(span *cmn.Span) (Match, error) {
	c := childrenOf(span)
	subject, err := c.next(cmn.EXPR)
	if err != nil {
		return Match{}, err
	}
	arms := c.all(cmn.MATCH_ARM)
	if len(arms) == 0 {
		return Match{}, violation(span, "no match arms")
	}
	if err := c.end(); err != nil {
		return Match{}, err
	}

	var m Match
	if m.Subject, err = lowerRanged(subject, lowerExpr); err != nil {
		return Match{}, err
	}
	if m.Arms, err = lowerEach(arms, lowerMatchArm); err != nil {
		return Match{}, err
	}

	return m, nil
}

func lowerMatchArm(span *cmn.Span) (MatchArm, error) {
	c := childrenOf(span)
	ptn, err := c.next(cmn.MATCH_PTN)
	if err != nil {
		return MatchArm{}, err
	}
	guard := c.optional(cmn.MATCH_GUARD)
	body, err := c.next(cmn.EXPR)
	if err != nil {
		return MatchArm{}, err
	}
	if err := c.end(); err != nil {
		return MatchArm{}, err
	}

	var arm MatchArm
	if arm.Pattern, err = lowerRanged(ptn, lowerPattern); err != nil {
		return MatchArm{}, err
	}
	if guard != nil {
		cond, err := childrenOf(guard).next(cmn.EXPR)
		if err != nil {
			return MatchArm{}, err
		}
		if arm.Guard, err = lowerOptional(cond, lowerExpr); err != nil {
			return MatchArm{}, err
		}
	}
	if arm.Body, err = lowerRanged(body, lowerExpr); err != nil {
		return MatchArm{}, err
	}

	return arm, nil
}

func lowerDyadic(span *cmn.Span) (Dyadic, error) {
	c := childrenOf(span)
	lhs, err := c.next(dyadicOperands...)
	if err != nil {
		return Dyadic{}, err
	}
	op, err := c.next(cmn.BIN_OPERATOR)
	if err != nil {
		return Dyadic{}, err
	}
	rhs, err := c.next(dyadicOperands...)
	if err != nil {
		return Dyadic{}, err
	}
	if err := c.end(); err != nil {
		return Dyadic{}, err
	}

	d := Dyadic{Op: rangedText(op)}
	if d.LHS, err = lowerRanged(lhs, lowerOperand); err != nil {
		return Dyadic{}, err
	}
	if d.RHS, err = lowerRanged(rhs, lowerOperand); err != nil {
		return Dyadic{}, err
	}

	return d, nil
}

func lowerUnaryOperatorExpr(span *cmn.Span) (UnaryOperatorExpr, error) {
	c := childrenOf(span)
	op, err := c.next(cmn.UNARY_OPERATOR)
	if err != nil {
		return UnaryOperatorExpr{}, err
	}
	operand, err := c.next(cmn.UNARY)
	if err != nil {
		return UnaryOperatorExpr{}, err
	}
	lowered, err := lowerRanged(operand, lowerUnary)
	if err != nil {
		return UnaryOperatorExpr{}, err
	}

	return UnaryOperatorExpr{Op: rangedText(op), Operand: lowered}, c.end()
}

func lowerVariantConstructor(span *cmn.Span) (VariantConstructor, error) {
	c := childrenOf(span)
	variant, err := c.next(cmn.VARIANT)
	if err != nil {
		return VariantConstructor{}, err
	}

	var vc VariantConstructor
	if vc.Variant, err = lowerRanged(variant, lowerVariant); err != nil {
		return VariantConstructor{}, err
	}
	if vc.Arg, err = lowerOptional(c.optional(cmn.UNARY), lowerUnary); err != nil {
		return VariantConstructor{}, err
	}

	return vc, c.end()
}

func lowerVariant(span *cmn.Span) (Variant, error) {
	c := childrenOf(span)
	module := optionalText(c.optional(cmn.MODULE_NAME))
	name, err := c.next(cmn.CONSTRUCTOR)
	if err != nil {
		return Variant{}, err
	}

	return Variant{Module: module, Name: rangedText(name)}, c.end()
}

func lowerApplication(span *cmn.Span) (Expr, error) {
	c := childrenOf(span)

	if name := c.optional(cmn.INLINE_CMD_NAME); name != nil {
		full, module := lowerCmdName(name)
		return CommandApplication{Module: module, Name: full}, c.end()
	}

	fn, err := c.next(cmn.MOD_VAR, cmn.VAR)
	if err != nil {
		return nil, err
	}
	app := FunctionApplication{}
	if app.Func, err = lowerRanged(fn, lowerUnaryAlt); err != nil {
		return nil, err
	}

	for arg := c.optional(); arg != nil; arg = c.optional() {
		switch arg.Rule {
		case cmn.APP_OPTION:
			value, err := childrenOf(arg).next(cmn.UNARY)
			if err != nil {
				return nil, err
			}
			opt, err := lowerOptional(value, lowerUnary)
			if err != nil {
				return nil, err
			}
			app.Opts = append(app.Opts, Wrap(AppOption{Value: opt}, arg))
		case cmn.APP_OMISSION:
			app.Opts = append(app.Opts, Wrap(AppOption{}, arg))
		case cmn.UNARY:
			unary, err := lowerRanged(arg, lowerUnary)
			if err != nil {
				return nil, err
			}
			app.Args = append(app.Args, unary)
		default:
			return nil, unexpectedChild(span, arg)
		}
	}
	if len(app.Opts) == 0 && len(app.Args) == 0 {
		return nil, violation(span, "application without arguments")
	}

	return app, nil
}

func lowerRecordMember(span *cmn.Span) (RecordMember, error) {
	c := childrenOf(span)
	record, err := c.next(cmn.UNARY)
	if err != nil {
		return RecordMember{}, err
	}
	member, err := c.next(cmn.VAR)
	if err != nil {
		return RecordMember{}, err
	}
	lowered, err := lowerRanged(record, lowerUnary)
	if err != nil {
		return RecordMember{}, err
	}

	return RecordMember{Record: lowered, Member: rangedText(member)}, c.end()
}

// lowerCmdName returns the full command name (with its + or \ prefix and any
// module) and the module part alone.
func lowerCmdName(span *cmn.Span) (Ranged[string], *Ranged[string]) {
	module := optionalText(childrenOf(span).optional(cmn.MODULE_NAME))
	return rangedText(span), module
}
