package parser

import (
	pc "github.com/shibukawa/parsercombinator"
	cmn "github.com/shibukawa/satyparse/parser/parsercommon"
)

func (g *grammar) defineTypes() {
	g.def(cmn.TYPE_EXPR, pc.Seq(
		g.ref(cmn.TYPE_PROD),
		pc.Optional(pc.Seq(cmn.Sp(g.ref(cmn.TYPE_ARROW)), cmn.Sp(g.ref(cmn.TYPE_EXPR)))),
	))
	// "?->" marks an optional parameter
	g.def(cmn.TYPE_ARROW, cmn.Choice(cmn.Lit("?->"), cmn.Lit("->")))

	g.def(cmn.TYPE_PROD, pc.Seq(
		g.ref(cmn.TYPE_UNARY),
		pc.ZeroOrMore("product", pc.Seq(cmn.Sp(cmn.Lit("*")), cmn.Sp(g.ref(cmn.TYPE_UNARY)))),
	))

	g.def(cmn.TYPE_UNARY, cmn.Choice(
		g.ref(cmn.TYPE_CMD),
		g.ref(cmn.TYPE_APPLICATION),
		g.ref(cmn.TYPE_RECORD),
		enclosed("(", g.ref(cmn.TYPE_EXPR), ")"),
		g.ref(cmn.TYPE_PARAM),
		g.ref(cmn.TYPE_NAME),
	))

	// 'a 'b t list: leading arguments, then one or more postfix type names
	g.def(cmn.TYPE_APPLICATION, pc.Seq(
		cmn.Choice(
			g.ref(cmn.TYPE_RECORD),
			enclosed("(", g.ref(cmn.TYPE_EXPR), ")"),
			g.ref(cmn.TYPE_PARAM),
			g.ref(cmn.TYPE_NAME),
		),
		pc.ZeroOrMore("type argument", cmn.Sp(cmn.Choice(
			enclosed("(", g.ref(cmn.TYPE_EXPR), ")"),
			g.ref(cmn.TYPE_PARAM),
		))),
		cmn.OneOrMore("type name", cmn.Sp(g.ref(cmn.TYPE_NAME))),
	))

	g.def(cmn.TYPE_CMD, pc.Seq(
		g.ref(cmn.TYPE_LIST),
		cmn.Sp(g.ref(cmn.TYPE_CMD_KIND)),
	))
	g.def(cmn.TYPE_CMD_KIND, cmn.Choice(
		cmn.Keyword("inline-cmd"),
		cmn.Keyword("block-cmd"),
		cmn.Keyword("math-cmd"),
	))
	g.def(cmn.TYPE_LIST, enclosed("[", cmn.SepBy("type list element", g.ref(cmn.TYPE_EXPR), cmn.Lit(";")), "]"))

	g.def(cmn.TYPE_RECORD, pc.Seq(
		cmn.Lit("("),
		cmn.Sp(cmn.Lit("|")),
		cmn.Sp(cmn.SepBy("record field", g.ref(cmn.TYPE_RECORD_UNIT), cmn.Lit(";"))),
		cmn.Sp(cmn.Lit("|")),
		cmn.Sp(cmn.Lit(")")),
	))
	g.def(cmn.TYPE_RECORD_UNIT, pc.Seq(
		g.ref(cmn.VAR),
		cmn.Sp(cmn.Lit(":")),
		cmn.Sp(g.ref(cmn.TYPE_EXPR)),
	))

	g.def(cmn.TYPE_PARAM, pc.Seq(cmn.Lit("'"), lowerIdent))
	g.def(cmn.TYPE_NAME, g.qualified(g.ref(cmn.VAR)))

	g.def(cmn.CONSTRAINT, pc.Seq(
		cmn.Keyword("constraint"),
		cmn.Sp(g.ref(cmn.TYPE_PARAM)),
		cmn.Sp(cmn.Lit("::")),
		cmn.Sp(g.ref(cmn.TYPE_RECORD)),
	))
}
