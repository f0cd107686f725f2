package parser

import (
	pc "github.com/shibukawa/parsercombinator"
	cmn "github.com/shibukawa/satyparse/parser/parsercommon"
)

// grammar holds one instance of every rule, bound to a single Builder.
type grammar struct {
	b     *cmn.Builder
	rules map[cmn.Rule]pc.Parser[cmn.Entity]
}

func newGrammar(b *cmn.Builder) *grammar {
	g := &grammar{
		b:     b,
		rules: make(map[cmn.Rule]pc.Parser[cmn.Entity]),
	}

	g.defineHeaders()
	g.defineStatements()
	g.defineTypes()
	g.defineLiterals()
	g.defineExprs()
	g.definePatterns()
	g.defineVertical()
	g.defineHorizontal()
	g.defineMath()

	return g
}

func (g *grammar) def(r cmn.Rule, p pc.Parser[cmn.Entity]) {
	g.rules[r] = g.b.Rule(r, p)
}

// ref refers to a rule lazily so that rules may be mutually recursive.
func (g *grammar) ref(r cmn.Rule) pc.Parser[cmn.Entity] {
	return pc.Lazy(func() pc.Parser[cmn.Entity] {
		return g.rules[r]
	})
}

func (g *grammar) lookup(r cmn.Rule) (pc.Parser[cmn.Entity], bool) {
	p, ok := g.rules[r]
	return p, ok
}

var (
	blanks = pc.ZeroOrMore("blank", cmn.Blank)
	digits = cmn.OneOrMore("digit", cmn.Digit)
	// lowercase identifier body shared by variables and command names
	lowerIdent = pc.Seq(cmn.Lower, pc.ZeroOrMore("identChar", cmn.IdentChar))
	upperIdent = pc.Seq(cmn.Upper, pc.ZeroOrMore("identChar", cmn.IdentChar))
)

// qualified parses an optional "Module." prefix followed by p.
func (g *grammar) qualified(p pc.Parser[cmn.Entity]) pc.Parser[cmn.Entity] {
	return pc.Seq(
		pc.Optional(pc.Seq(g.ref(cmn.MODULE_NAME), cmn.Lit("."))),
		p,
	)
}

// enclosed parses open p close with optional spaces inside the delimiters.
func enclosed(open string, p pc.Parser[cmn.Entity], close string) pc.Parser[cmn.Entity] {
	return pc.Seq(cmn.Lit(open), cmn.Sp(p), cmn.Sp(cmn.Lit(close)))
}
