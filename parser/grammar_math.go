package parser

import (
	"strings"
	"unicode"

	pc "github.com/shibukawa/parsercombinator"
	cmn "github.com/shibukawa/satyparse/parser/parsercommon"
)

// mathSpecials must be escaped with a backslash to appear as math characters.
const mathSpecials = "_^{}\\$#%|;"

func isMathSymbol(r rune) bool {
	return r <= unicode.MaxASCII && (unicode.IsPunct(r) || unicode.IsSymbol(r))
}

func (g *grammar) defineMath() {
	g.def(cmn.MATH_MODE, cmn.Choice(
		g.ref(cmn.MATH_LIST),
		g.ref(cmn.MATH_SINGLE),
	))
	g.def(cmn.MATH_LIST, pc.Seq(
		cmn.Lit("|"),
		cmn.OneOrMore("math list item", pc.Seq(
			cmn.Sp(g.ref(cmn.MATH_SINGLE)),
			cmn.Sp(cmn.Lit("|")),
		)),
	))
	g.def(cmn.MATH_SINGLE, cmn.SpacedList("math token", g.ref(cmn.MATH_TOKEN)))

	g.def(cmn.MATH_TOKEN, pc.Seq(
		g.ref(cmn.MATH_GROUP),
		pc.Optional(cmn.Choice(
			pc.Seq(g.ref(cmn.MATH_SUP), pc.Optional(g.ref(cmn.MATH_SUB))),
			pc.Seq(g.ref(cmn.MATH_SUB), pc.Optional(g.ref(cmn.MATH_SUP))),
		)),
	))
	g.def(cmn.MATH_SUP, pc.Seq(cmn.Lit("^"), g.ref(cmn.MATH_GROUP)))
	g.def(cmn.MATH_SUB, pc.Seq(cmn.Lit("_"), g.ref(cmn.MATH_GROUP)))
	g.def(cmn.MATH_GROUP, cmn.Choice(
		enclosed("{", g.ref(cmn.MATH_SINGLE), "}"),
		g.ref(cmn.MATH_UNARY),
	))

	g.def(cmn.MATH_UNARY, cmn.Choice(
		g.ref(cmn.MATH_CMD),
		g.ref(cmn.MATH_ESCAPED_CHAR),
		g.ref(cmn.MATH_SYMBOL),
		g.ref(cmn.MATH_CHAR),
	))

	g.def(cmn.MATH_CMD, pc.Seq(
		g.ref(cmn.MATH_CMD_NAME),
		pc.ZeroOrMore("math argument", g.ref(cmn.MATH_CMD_EXPR_ARG)),
	))
	g.def(cmn.MATH_CMD_NAME, pc.Seq(cmn.Lit("\\"), g.qualified(lowerIdent)))
	g.def(cmn.MATH_CMD_EXPR_ARG, cmn.Choice(
		enclosed("{", g.ref(cmn.MATH_SINGLE), "}"),
		enclosed("!{", g.ref(cmn.HORIZONTAL_MODE), "}"),
		enclosed("!<", g.ref(cmn.VERTICAL_MODE), ">"),
		pc.Seq(cmn.Lit("!"), g.ref(cmn.CMD_EXPR_ARG)),
	))

	g.def(cmn.MATH_ESCAPED_CHAR, pc.Seq(
		cmn.Lit("\\"),
		g.ref(cmn.MATH_SPECIAL_CHAR),
	))
	g.def(cmn.MATH_SPECIAL_CHAR, cmn.CharIn("math special", mathSpecials))
	g.def(cmn.MATH_SYMBOL, cmn.OneOrMore("math symbol", cmn.CharIf("math symbol", func(r rune) bool {
		return isMathSymbol(r) && !strings.ContainsRune(mathSpecials, r)
	})))
	g.def(cmn.MATH_CHAR, cmn.CharIf("math char", func(r rune) bool {
		return !unicode.IsSpace(r) && !isMathSymbol(r) && !strings.ContainsRune(mathSpecials, r)
	}))
}
