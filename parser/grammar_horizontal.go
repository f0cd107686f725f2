package parser

import (
	"strings"

	pc "github.com/shibukawa/parsercombinator"
	cmn "github.com/shibukawa/satyparse/parser/parsercommon"
)

// horizontalSpecials must be escaped with a backslash to appear as text.
const horizontalSpecials = "@`\\{}|*$#;%"

func (g *grammar) defineHorizontal() {
	g.def(cmn.HORIZONTAL_MODE, cmn.Choice(
		g.ref(cmn.HORIZONTAL_BULLET_LIST),
		g.ref(cmn.HORIZONTAL_LIST),
		g.ref(cmn.HORIZONTAL_SINGLE),
	))

	g.def(cmn.HORIZONTAL_SINGLE, cmn.SpacedList("horizontal token", cmn.Choice(
		g.ref(cmn.STRING_CONST),
		g.ref(cmn.INLINE_CMD),
		g.ref(cmn.HORIZONTAL_ESCAPED_CHAR),
		g.ref(cmn.INLINE_TEXT_EMBEDDING),
		g.ref(cmn.MATH_TEXT),
		g.ref(cmn.REGULAR_TEXT),
	)))

	g.def(cmn.HORIZONTAL_LIST, pc.Seq(
		cmn.Lit("|"),
		cmn.OneOrMore("horizontal list item", pc.Seq(
			cmn.Sp(g.ref(cmn.HORIZONTAL_SINGLE)),
			cmn.Sp(cmn.Lit("|")),
		)),
	))

	g.def(cmn.HORIZONTAL_BULLET_LIST, pc.Seq(
		g.ref(cmn.HORIZONTAL_BULLET),
		pc.ZeroOrMore("bullet", cmn.Sp(g.ref(cmn.HORIZONTAL_BULLET))),
	))
	g.def(cmn.HORIZONTAL_BULLET, pc.Seq(
		g.ref(cmn.HORIZONTAL_BULLET_STAR),
		cmn.Sp(g.ref(cmn.HORIZONTAL_SINGLE)),
	))
	g.def(cmn.HORIZONTAL_BULLET_STAR, cmn.OneOrMore("star", cmn.Lit("*")))

	g.def(cmn.HORIZONTAL_ESCAPED_CHAR, pc.Seq(
		cmn.Lit("\\"),
		g.ref(cmn.HORIZONTAL_SPECIAL_CHAR),
	))
	g.def(cmn.HORIZONTAL_SPECIAL_CHAR, cmn.CharIn("special", horizontalSpecials))
	g.def(cmn.REGULAR_TEXT, cmn.OneOrMore("text", cmn.CharIf("text", func(r rune) bool {
		return !strings.ContainsRune(horizontalSpecials, r)
	})))

	g.def(cmn.INLINE_CMD, pc.Seq(
		g.ref(cmn.INLINE_CMD_NAME),
		g.cmdArgs(),
	))
	g.def(cmn.INLINE_CMD_NAME, pc.Seq(cmn.Lit("\\"), g.qualified(lowerIdent)))
	g.def(cmn.INLINE_TEXT_EMBEDDING, pc.Seq(
		cmn.Lit("#"),
		g.qualified(g.ref(cmn.VAR_PTN)),
		cmn.Lit(";"),
	))
}
