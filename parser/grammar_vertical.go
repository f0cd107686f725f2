package parser

import (
	pc "github.com/shibukawa/parsercombinator"
	cmn "github.com/shibukawa/satyparse/parser/parsercommon"
)

func (g *grammar) defineVertical() {
	g.def(cmn.VERTICAL_MODE, cmn.SpacedList("vertical element", cmn.Choice(
		g.ref(cmn.BLOCK_CMD),
		g.ref(cmn.BLOCK_TEXT_EMBEDDING),
	)))

	g.def(cmn.BLOCK_CMD, pc.Seq(
		g.ref(cmn.BLOCK_CMD_NAME),
		g.cmdArgs(),
	))
	g.def(cmn.BLOCK_CMD_NAME, pc.Seq(cmn.Lit("+"), g.qualified(lowerIdent)))
	g.def(cmn.BLOCK_TEXT_EMBEDDING, pc.Seq(
		cmn.Lit("#"),
		g.qualified(g.ref(cmn.VAR_PTN)),
		cmn.Lit(";"),
	))

	g.def(cmn.CMD_EXPR_ARG, cmn.Choice(
		g.ref(cmn.RECORD),
		g.ref(cmn.LIST),
		g.ref(cmn.UNIT_CONST),
		g.ref(cmn.TUPLE),
		enclosed("(", g.ref(cmn.EXPR), ")"),
	))
	g.def(cmn.CMD_EXPR_OPTION, cmn.Choice(
		pc.Seq(cmn.Lit("?:"), g.ref(cmn.CMD_EXPR_ARG)),
		cmn.Lit("?*"),
	))
	g.def(cmn.CMD_TEXT_ARG, cmn.Choice(
		enclosed("<", g.ref(cmn.VERTICAL_MODE), ">"),
		enclosed("{", g.ref(cmn.HORIZONTAL_MODE), "}"),
	))
}

// cmdArgs parses the argument list shared by block and inline commands:
// expression arguments and options, then either ";" or text arguments.
func (g *grammar) cmdArgs() pc.Parser[cmn.Entity] {
	return pc.Seq(
		pc.ZeroOrMore("command argument", cmn.Sp(cmn.Choice(
			g.ref(cmn.CMD_EXPR_ARG),
			g.ref(cmn.CMD_EXPR_OPTION),
		))),
		cmn.Choice(
			cmn.Sp(cmn.Lit(";")),
			cmn.OneOrMore("text argument", cmn.Sp(g.ref(cmn.CMD_TEXT_ARG))),
		),
	)
}
