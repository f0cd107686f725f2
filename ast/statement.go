package ast

import (
	cmn "github.com/shibukawa/satyparse/parser/parsercommon"
)

// Statement is a top-level or let-in binding.
type Statement interface {
	statement()
}

// Let binds Pattern. With Args it defines a function.
type Let struct {
	Pattern Ranged[Pattern]
	Args    []Ranged[Pattern]
	Body    Ranged[Expr]
}

// LetRec is a group of mutually recursive bindings joined with "and".
type LetRec struct {
	Bindings []Ranged[Let]
}

type LetMutable struct {
	Name Ranged[string]
	Init Ranged[Expr]
}

// LetInline defines an inline command. Context is the optional context
// variable written before the command name.
type LetInline struct {
	Context *Ranged[string]
	Name    Ranged[string]
	Args    []Ranged[Pattern]
	Body    Ranged[Expr]
}

// LetBlock defines a block command.
type LetBlock struct {
	Context *Ranged[string]
	Name    Ranged[string]
	Args    []Ranged[Pattern]
	Body    Ranged[Expr]
}

type LetMath struct {
	Name Ranged[string]
	Args []Ranged[Pattern]
	Body Ranged[Expr]
}

type Open struct {
	Module Ranged[string]
}

// TypeDecl is "type ... and ...".
type TypeDecl struct {
	Bindings []Ranged[TypeBinding]
}

// TypeBinding defines Name either as a variant type (Variants) or as an
// alias of another type (Alias). Exactly one of the two is set.
type TypeBinding struct {
	Params      []Ranged[TypeParam]
	Name        Ranged[string]
	Variants    []Ranged[VariantDecl]
	Alias       *Ranged[TypeExpr]
	Constraints []Ranged[Constraint]
}

// VariantDecl is one "Ctor of type" alternative.
type VariantDecl struct {
	Name Ranged[string]
	Arg  *Ranged[TypeExpr]
}

// Module is "module Name : sig ... end = struct ... end". Sig is nil when the
// signature is omitted.
type Module struct {
	Name Ranged[string]
	Sig  *Ranged[Signature]
	Body []Ranged[Statement]
}

type Signature struct {
	Items []Ranged[SigItem]
}

// SigItem is one declaration inside a signature.
type SigItem interface {
	sigItem()
}

type SigType struct {
	Params      []Ranged[TypeParam]
	Name        Ranged[string]
	Constraints []Ranged[Constraint]
}

// SigVal declares a value. Name is a variable, an operator without its
// parentheses, or a command name with its prefix.
type SigVal struct {
	Name        Ranged[string]
	Type        Ranged[TypeExpr]
	Constraints []Ranged[Constraint]
}

// SigDirect declares a command that is exported without module
// qualification.
type SigDirect struct {
	Name        Ranged[string]
	Type        Ranged[TypeExpr]
	Constraints []Ranged[Constraint]
}

func (Let) statement()        {}
func (LetRec) statement()     {}
func (LetMutable) statement() {}
func (LetInline) statement()  {}
func (LetBlock) statement()   {}
func (LetMath) statement()    {}
func (Open) statement()       {}
func (TypeDecl) statement()   {}
func (Module) statement()     {}

func (SigType) sigItem()   {}
func (SigVal) sigItem()    {}
func (SigDirect) sigItem() {}

func lowerStatement(span *cmn.Span) (Statement, error) {
	c := childrenOf(span)
	inner, err := c.next()
	if err != nil {
		return nil, err
	}
	if err := c.end(); err != nil {
		return nil, err
	}

	switch inner.Rule {
	case cmn.LET_STMT:
		return lowerLet(inner)
	case cmn.LET_REC_STMT:
		return lowerLetRec(inner)
	case cmn.LET_MUTABLE_STMT:
		return lowerLetMutable(inner)
	case cmn.LET_INLINE_STMT:
		ctx, name, args, body, err := lowerCmdBinding(inner, cmn.INLINE_CMD_NAME)
		return LetInline{Context: ctx, Name: name, Args: args, Body: body}, err
	case cmn.LET_BLOCK_STMT:
		ctx, name, args, body, err := lowerCmdBinding(inner, cmn.BLOCK_CMD_NAME)
		return LetBlock{Context: ctx, Name: name, Args: args, Body: body}, err
	case cmn.LET_MATH_STMT:
		_, name, args, body, err := lowerCmdBinding(inner, cmn.MATH_CMD_NAME)
		return LetMath{Name: name, Args: args, Body: body}, err
	case cmn.OPEN_STMT:
		module, err := childrenOf(inner).next(cmn.MODULE_NAME)
		if err != nil {
			return nil, err
		}
		return Open{Module: rangedText(module)}, nil
	case cmn.TYPE_STMT:
		return lowerTypeDecl(inner)
	case cmn.MODULE_STMT:
		return lowerModule(inner)
	}

	return nil, unexpectedChild(span, inner)
}

// lowerLet lowers let_stmt and let_rec_inner, which share one shape.
func lowerLet(span *cmn.Span) (Let, error) {
	c := childrenOf(span)
	ptn, err := c.next(cmn.PATTERN)
	if err != nil {
		return Let{}, err
	}
	args := c.all(cmn.PATTERN)
	body, err := c.next(cmn.EXPR)
	if err != nil {
		return Let{}, err
	}
	if err := c.end(); err != nil {
		return Let{}, err
	}

	var let Let
	if let.Pattern, err = lowerRanged(ptn, lowerPattern); err != nil {
		return Let{}, err
	}
	if let.Args, err = lowerEach(args, lowerPattern); err != nil {
		return Let{}, err
	}
	if let.Body, err = lowerRanged(body, lowerExpr); err != nil {
		return Let{}, err
	}

	return let, nil
}

func lowerLetRec(span *cmn.Span) (LetRec, error) {
	c := childrenOf(span)
	bindings, err := lowerEach(c.all(cmn.LET_REC_INNER), lowerLet)
	if err != nil {
		return LetRec{}, err
	}
	if len(bindings) == 0 {
		return LetRec{}, violation(span, "no bindings")
	}

	return LetRec{Bindings: bindings}, c.end()
}

func lowerLetMutable(span *cmn.Span) (LetMutable, error) {
	c := childrenOf(span)
	name, err := c.next(cmn.VAR)
	if err != nil {
		return LetMutable{}, err
	}
	init, err := c.next(cmn.EXPR)
	if err != nil {
		return LetMutable{}, err
	}
	lowered, err := lowerRanged(init, lowerExpr)
	if err != nil {
		return LetMutable{}, err
	}

	return LetMutable{Name: rangedText(name), Init: lowered}, c.end()
}

// lowerCmdBinding lowers let-inline, let-block and let-math:
// an optional context variable, the command name, parameters and the body.
func lowerCmdBinding(span *cmn.Span, nameRule cmn.Rule) (ctx *Ranged[string], name Ranged[string], args []Ranged[Pattern], body Ranged[Expr], err error) {
	c := childrenOf(span)
	ctx = optionalText(c.optional(cmn.VAR))

	nameSpan, err := c.next(nameRule)
	if err != nil {
		return nil, name, nil, body, err
	}
	name = rangedText(nameSpan)

	if args, err = lowerEach(c.all(cmn.PATTERN), lowerPattern); err != nil {
		return nil, name, nil, body, err
	}
	bodySpan, err := c.next(cmn.EXPR)
	if err != nil {
		return nil, name, nil, body, err
	}
	if body, err = lowerRanged(bodySpan, lowerExpr); err != nil {
		return nil, name, nil, body, err
	}

	return ctx, name, args, body, c.end()
}

func lowerTypeDecl(span *cmn.Span) (TypeDecl, error) {
	c := childrenOf(span)
	bindings, err := lowerEach(c.all(cmn.TYPE_INNER), lowerTypeBinding)
	if err != nil {
		return TypeDecl{}, err
	}
	if len(bindings) == 0 {
		return TypeDecl{}, violation(span, "no bindings")
	}

	return TypeDecl{Bindings: bindings}, c.end()
}

func lowerTypeBinding(span *cmn.Span) (TypeBinding, error) {
	c := childrenOf(span)
	params := c.all(cmn.TYPE_PARAM)
	name, err := c.next(cmn.VAR)
	if err != nil {
		return TypeBinding{}, err
	}
	variants := c.all(cmn.TYPE_VARIANT)
	var alias *cmn.Span
	if len(variants) == 0 {
		if alias, err = c.next(cmn.TYPE_EXPR); err != nil {
			return TypeBinding{}, err
		}
	}
	constraints := c.all(cmn.CONSTRAINT)
	if err := c.end(); err != nil {
		return TypeBinding{}, err
	}

	b := TypeBinding{Name: rangedText(name)}
	if b.Params, err = lowerEach(params, lowerTypeParam); err != nil {
		return TypeBinding{}, err
	}
	if b.Variants, err = lowerEach(variants, lowerVariantDecl); err != nil {
		return TypeBinding{}, err
	}
	if b.Alias, err = lowerOptional(alias, lowerTypeExpr); err != nil {
		return TypeBinding{}, err
	}
	if b.Constraints, err = lowerEach(constraints, lowerConstraint); err != nil {
		return TypeBinding{}, err
	}

	return b, nil
}

func lowerVariantDecl(span *cmn.Span) (VariantDecl, error) {
	c := childrenOf(span)
	name, err := c.next(cmn.CONSTRUCTOR)
	if err != nil {
		return VariantDecl{}, err
	}
	arg, err := lowerOptional(c.optional(cmn.TYPE_EXPR), lowerTypeExpr)
	if err != nil {
		return VariantDecl{}, err
	}

	return VariantDecl{Name: rangedText(name), Arg: arg}, c.end()
}

func lowerModule(span *cmn.Span) (Module, error) {
	c := childrenOf(span)
	name, err := c.next(cmn.MODULE_NAME)
	if err != nil {
		return Module{}, err
	}
	sig := c.optional(cmn.SIG_STMT)
	body, err := c.next(cmn.STRUCT_STMT)
	if err != nil {
		return Module{}, err
	}
	if err := c.end(); err != nil {
		return Module{}, err
	}

	m := Module{Name: rangedText(name)}
	if m.Sig, err = lowerOptional(sig, lowerSignature); err != nil {
		return Module{}, err
	}
	bc := childrenOf(body)
	if m.Body, err = lowerEach(bc.all(cmn.STATEMENT), lowerStatement); err != nil {
		return Module{}, err
	}

	return m, bc.end()
}

func lowerSignature(span *cmn.Span) (Signature, error) {
	c := childrenOf(span)
	items, err := lowerEach(c.all(cmn.SIG_TYPE_STMT, cmn.SIG_VAL_STMT, cmn.SIG_DIRECT_STMT), lowerSigItem)
	if err != nil {
		return Signature{}, err
	}

	return Signature{Items: items}, c.end()
}

func lowerSigItem(span *cmn.Span) (SigItem, error) {
	c := childrenOf(span)

	if span.Rule == cmn.SIG_TYPE_STMT {
		params, err := lowerEach(c.all(cmn.TYPE_PARAM), lowerTypeParam)
		if err != nil {
			return nil, err
		}
		name, err := c.next(cmn.VAR)
		if err != nil {
			return nil, err
		}
		constraints, err := lowerEach(c.all(cmn.CONSTRAINT), lowerConstraint)
		if err != nil {
			return nil, err
		}
		return SigType{Params: params, Name: rangedText(name), Constraints: constraints}, c.end()
	}

	nameRules := []cmn.Rule{cmn.INLINE_CMD_NAME, cmn.BLOCK_CMD_NAME}
	if span.Rule == cmn.SIG_VAL_STMT {
		nameRules = append(nameRules, cmn.VAR, cmn.BIN_OPERATOR)
	}
	name, err := c.next(nameRules...)
	if err != nil {
		return nil, err
	}
	typ, err := c.next(cmn.TYPE_EXPR)
	if err != nil {
		return nil, err
	}
	constraints, err := lowerEach(c.all(cmn.CONSTRAINT), lowerConstraint)
	if err != nil {
		return nil, err
	}
	if err := c.end(); err != nil {
		return nil, err
	}
	lowered, err := lowerRanged(typ, lowerTypeExpr)
	if err != nil {
		return nil, err
	}

	if span.Rule == cmn.SIG_VAL_STMT {
		return SigVal{Name: rangedText(name), Type: lowered, Constraints: constraints}, nil
	}
	return SigDirect{Name: rangedText(name), Type: lowered, Constraints: constraints}, nil
}
