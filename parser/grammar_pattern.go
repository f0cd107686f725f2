package parser

import (
	pc "github.com/shibukawa/parsercombinator"
	cmn "github.com/shibukawa/satyparse/parser/parsercommon"
)

func (g *grammar) definePatterns() {
	g.def(cmn.MATCH_PTN, cmn.Choice(
		g.ref(cmn.PAT_AS),
		g.ref(cmn.PAT_CONS),
		g.ref(cmn.PAT_VARIANT),
		g.ref(cmn.PATTERN),
	))

	g.def(cmn.PAT_AS, pc.Seq(
		cmn.Choice(g.ref(cmn.PAT_CONS), g.ref(cmn.PAT_VARIANT), g.ref(cmn.PATTERN)),
		cmn.Sp(cmn.Keyword("as")),
		cmn.Sp(g.ref(cmn.VAR)),
	))
	g.def(cmn.PAT_CONS, pc.Seq(
		cmn.Choice(g.ref(cmn.PAT_VARIANT), g.ref(cmn.PATTERN)),
		cmn.Sp(cmn.Lit("::")),
		cmn.Sp(g.ref(cmn.MATCH_PTN)),
	))
	g.def(cmn.PAT_VARIANT, pc.Seq(
		g.ref(cmn.VARIANT),
		pc.Optional(cmn.Sp(g.ref(cmn.PATTERN))),
	))

	g.def(cmn.PATTERN, cmn.Choice(
		g.ref(cmn.PAT_LIST),
		g.ref(cmn.PAT_TUPLE),
		g.ref(cmn.LITERAL),
		enclosed("(", g.ref(cmn.MATCH_PTN), ")"),
		g.ref(cmn.PAT_WILDCARD),
		g.ref(cmn.VAR),
	))

	g.def(cmn.PAT_LIST, enclosed("[", cmn.SepBy("list pattern", g.ref(cmn.MATCH_PTN), cmn.Lit(";")), "]"))
	g.def(cmn.PAT_TUPLE, pc.Seq(
		cmn.Lit("("),
		cmn.Sp(g.ref(cmn.MATCH_PTN)),
		cmn.OneOrMore("tuple pattern", pc.Seq(cmn.Sp(cmn.Lit(",")), cmn.Sp(g.ref(cmn.MATCH_PTN)))),
		cmn.Sp(cmn.Lit(")")),
	))
	g.def(cmn.PAT_WILDCARD, pc.Seq(cmn.Lit("_"), cmn.Not(cmn.IdentChar)))
}
