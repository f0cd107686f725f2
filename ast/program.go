package ast

import (
	cmn "github.com/shibukawa/satyparse/parser/parsercommon"
)

// Program is a whole source file.
type Program struct {
	Stage    *Ranged[Stage]
	Headers  []Ranged[Header]
	Preamble *Ranged[Preamble]
	Body     Ranged[Expr]
}

// Stage is the @stage: declaration.
type Stage int

const (
	Stage0 Stage = iota
	Stage1
	StagePersistent
)

func (s Stage) String() string {
	switch s {
	case Stage0:
		return "0"
	case Stage1:
		return "1"
	case StagePersistent:
		return "persistent"
	}

	return "unknown"
}

// Header is a @require: or @import: line.
type Header interface {
	header()
}

// Require names a package from the library path.
type Require struct {
	Name Ranged[string]
}

// Import names a file relative to the current one.
type Import struct {
	Path Ranged[string]
}

func (Require) header() {}
func (Import) header()  {}

// Preamble holds the top-level bindings before the body. Order matters.
type Preamble struct {
	Statements []Ranged[Statement]
}

func lowerProgram(span *cmn.Span) (Program, error) {
	var prog Program
	var err error
	c := childrenOf(span)

	if prog.Stage, err = lowerOptional(c.optional(cmn.HEADER_STAGE), lowerStage); err != nil {
		return Program{}, err
	}

	headers, err := c.next(cmn.HEADERS)
	if err != nil {
		return Program{}, err
	}
	hc := childrenOf(headers)
	if prog.Headers, err = lowerEach(hc.all(cmn.HEADER), lowerHeader); err != nil {
		return Program{}, err
	}
	if err := hc.end(); err != nil {
		return Program{}, err
	}

	if prog.Preamble, err = lowerOptional(c.optional(cmn.PREAMBLE), lowerPreamble); err != nil {
		return Program{}, err
	}

	body, err := c.next(cmn.EXPR)
	if err != nil {
		return Program{}, err
	}
	if prog.Body, err = lowerRanged(body, lowerExpr); err != nil {
		return Program{}, err
	}

	return prog, c.end()
}

func lowerStage(span *cmn.Span) (Stage, error) {
	stage, err := childrenOf(span).next(cmn.STAGE)
	if err != nil {
		return 0, err
	}

	switch stage.Text {
	case "0":
		return Stage0, nil
	case "1":
		return Stage1, nil
	case "persistent":
		return StagePersistent, nil
	}

	return 0, violation(stage, "unknown stage")
}

func lowerHeader(span *cmn.Span) (Header, error) {
	c := childrenOf(span)
	kind, err := c.next(cmn.HEADER_KIND)
	if err != nil {
		return nil, err
	}
	name, err := c.next(cmn.PKG_NAME)
	if err != nil {
		return nil, err
	}

	switch kind.Text {
	case "require":
		return Require{Name: rangedText(name)}, nil
	case "import":
		return Import{Path: rangedText(name)}, nil
	}

	return nil, violation(kind, "unknown header kind")
}

func lowerPreamble(span *cmn.Span) (Preamble, error) {
	c := childrenOf(span)
	stmts, err := lowerEach(c.all(cmn.STATEMENT), lowerStatement)
	if err != nil {
		return Preamble{}, err
	}

	return Preamble{Statements: stmts}, c.end()
}
