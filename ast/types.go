package ast

import (
	cmn "github.com/shibukawa/satyparse/parser/parsercommon"
)

// TypeExpr is a type expression as written in signatures and type
// declarations.
type TypeExpr interface {
	typeExpr()
}

// TypeName is a type constructor name such as "int" or "Mod.t".
type TypeName struct {
	Module *Ranged[string]
	Name   Ranged[string]
}

// TypeParam is a type variable without its leading quote.
type TypeParam string

// FuncType is "Param -> Result". Optional marks a "?->" parameter.
type FuncType struct {
	Param    Ranged[TypeExpr]
	Optional bool
	Result   Ranged[TypeExpr]
}

type ProductType struct {
	Elements []Ranged[TypeExpr]
}

// TypeApplication applies Name to Args. "'a t list" nests: list is applied
// to the application of t.
type TypeApplication struct {
	Args []Ranged[TypeExpr]
	Name Ranged[TypeName]
}

type RecordType struct {
	Fields []Ranged[RecordTypeField]
}

type RecordTypeField struct {
	Key  Ranged[string]
	Type Ranged[TypeExpr]
}

// CmdType is the type of a command: the argument list followed by
// inline-cmd, block-cmd or math-cmd.
type CmdType struct {
	Args []Ranged[TypeExpr]
	Kind Ranged[string]
}

// Constraint restricts Param to records having at least the given fields.
type Constraint struct {
	Param  Ranged[TypeParam]
	Record Ranged[RecordType]
}

func (TypeName) typeExpr()        {}
func (TypeParam) typeExpr()       {}
func (FuncType) typeExpr()        {}
func (ProductType) typeExpr()     {}
func (TypeApplication) typeExpr() {}
func (RecordType) typeExpr()      {}
func (CmdType) typeExpr()         {}

func lowerTypeExpr(span *cmn.Span) (TypeExpr, error) {
	c := childrenOf(span)
	prod, err := c.next(cmn.TYPE_PROD)
	if err != nil {
		return nil, err
	}
	arrow := c.optional(cmn.TYPE_ARROW)
	if arrow == nil {
		if err := c.end(); err != nil {
			return nil, err
		}
		return lowerTypeProd(prod)
	}
	result, err := c.next(cmn.TYPE_EXPR)
	if err != nil {
		return nil, err
	}
	if err := c.end(); err != nil {
		return nil, err
	}

	f := FuncType{Optional: arrow.Text == "?->"}
	if f.Param, err = lowerRanged(prod, lowerTypeProd); err != nil {
		return nil, err
	}
	if f.Result, err = lowerRanged(result, lowerTypeExpr); err != nil {
		return nil, err
	}

	return f, nil
}

// lowerTypeProd returns the only element itself when there is no "*".
func lowerTypeProd(span *cmn.Span) (TypeExpr, error) {
	c := childrenOf(span)
	units := c.all(cmn.TYPE_UNARY)
	if err := c.end(); err != nil {
		return nil, err
	}

	switch len(units) {
	case 0:
		return nil, violation(span, "empty product")
	case 1:
		return lowerTypeUnary(units[0])
	}

	elements, err := lowerEach(units, lowerTypeUnary)
	if err != nil {
		return nil, err
	}

	return ProductType{Elements: elements}, nil
}

func lowerTypeUnary(span *cmn.Span) (TypeExpr, error) {
	c := childrenOf(span)
	inner, err := c.next()
	if err != nil {
		return nil, err
	}
	if err := c.end(); err != nil {
		return nil, err
	}

	return lowerTypeAlt(inner)
}

// lowerTypeAlt lowers a span holding one type. A parenthesised type arrives
// as its inner type_expr.
func lowerTypeAlt(span *cmn.Span) (TypeExpr, error) {
	switch span.Rule {
	case cmn.TYPE_EXPR:
		return lowerTypeExpr(span)
	case cmn.TYPE_CMD:
		return lowerCmdType(span)
	case cmn.TYPE_APPLICATION:
		return lowerTypeApplication(span)
	case cmn.TYPE_RECORD:
		return lowerRecordType(span)
	case cmn.TYPE_PARAM:
		return lowerTypeParam(span)
	case cmn.TYPE_NAME:
		return lowerTypeName(span)
	}

	return nil, violation(span, "not a type")
}

func lowerTypeApplication(span *cmn.Span) (TypeExpr, error) {
	c := childrenOf(span)
	head, err := c.next(cmn.TYPE_RECORD, cmn.TYPE_EXPR, cmn.TYPE_PARAM, cmn.TYPE_NAME)
	if err != nil {
		return nil, err
	}
	argSpans := append([]*cmn.Span{head}, c.all(cmn.TYPE_EXPR, cmn.TYPE_PARAM)...)
	names := c.all(cmn.TYPE_NAME)
	if len(names) == 0 {
		return nil, violation(span, "no type name")
	}
	if err := c.end(); err != nil {
		return nil, err
	}

	args, err := lowerEach(argSpans, lowerTypeAlt)
	if err != nil {
		return nil, err
	}

	var app TypeApplication
	for i, nameSpan := range names {
		name, err := lowerRanged(nameSpan, lowerTypeName)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			args = []Ranged[TypeExpr]{{Start: args[0].Start, End: app.Name.End, Body: app}}
		}
		app = TypeApplication{Args: args, Name: name}
	}

	return app, nil
}

func lowerCmdType(span *cmn.Span) (CmdType, error) {
	c := childrenOf(span)
	list, err := c.next(cmn.TYPE_LIST)
	if err != nil {
		return CmdType{}, err
	}
	kind, err := c.next(cmn.TYPE_CMD_KIND)
	if err != nil {
		return CmdType{}, err
	}
	if err := c.end(); err != nil {
		return CmdType{}, err
	}

	lc := childrenOf(list)
	args, err := lowerEach(lc.all(cmn.TYPE_EXPR), lowerTypeExpr)
	if err != nil {
		return CmdType{}, err
	}

	return CmdType{Args: args, Kind: rangedText(kind)}, lc.end()
}

func lowerRecordType(span *cmn.Span) (RecordType, error) {
	c := childrenOf(span)
	fields, err := lowerEach(c.all(cmn.TYPE_RECORD_UNIT), lowerRecordTypeField)
	if err != nil {
		return RecordType{}, err
	}

	return RecordType{Fields: fields}, c.end()
}

func lowerRecordTypeField(span *cmn.Span) (RecordTypeField, error) {
	c := childrenOf(span)
	key, err := c.next(cmn.VAR)
	if err != nil {
		return RecordTypeField{}, err
	}
	typ, err := c.next(cmn.TYPE_EXPR)
	if err != nil {
		return RecordTypeField{}, err
	}
	if err := c.end(); err != nil {
		return RecordTypeField{}, err
	}

	field := RecordTypeField{Key: rangedText(key)}
	if field.Type, err = lowerRanged(typ, lowerTypeExpr); err != nil {
		return RecordTypeField{}, err
	}

	return field, nil
}

func lowerTypeParam(span *cmn.Span) (TypeParam, error) {
	if len(span.Text) < 2 || span.Text[0] != '\'' {
		return "", violation(span, "invalid type parameter")
	}

	return TypeParam(span.Text[1:]), nil
}

func lowerTypeName(span *cmn.Span) (TypeName, error) {
	c := childrenOf(span)
	module := c.optional(cmn.MODULE_NAME)
	name, err := c.next(cmn.VAR)
	if err != nil {
		return TypeName{}, err
	}

	return TypeName{Module: optionalText(module), Name: rangedText(name)}, c.end()
}

func lowerConstraint(span *cmn.Span) (Constraint, error) {
	c := childrenOf(span)
	param, err := c.next(cmn.TYPE_PARAM)
	if err != nil {
		return Constraint{}, err
	}
	record, err := c.next(cmn.TYPE_RECORD)
	if err != nil {
		return Constraint{}, err
	}
	if err := c.end(); err != nil {
		return Constraint{}, err
	}

	var con Constraint
	if con.Param, err = lowerRanged(param, lowerTypeParam); err != nil {
		return Constraint{}, err
	}
	if con.Record, err = lowerRanged(record, lowerRecordType); err != nil {
		return Constraint{}, err
	}

	return con, nil
}
