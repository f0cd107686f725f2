package parser

import (
	pc "github.com/shibukawa/parsercombinator"
	cmn "github.com/shibukawa/satyparse/parser/parsercommon"
)

var (
	hexPrefix = pc.Seq(cmn.Lit("0"), cmn.CharIn("hexPrefix", "xX"))
	hexDigit  = cmn.CharIf("hexDigit", func(r rune) bool {
		return '0' <= r && r <= '9' || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F'
	})
	floatLexeme = cmn.Choice(
		pc.Seq(digits, cmn.Lit("."), pc.ZeroOrMore("digit", cmn.Digit)),
		pc.Seq(cmn.Lit("."), digits),
	)
)

func (g *grammar) defineLiterals() {
	g.def(cmn.LITERAL, cmn.Choice(
		g.ref(cmn.UNIT_CONST),
		g.ref(cmn.BOOL_CONST),
		g.ref(cmn.LENGTH_CONST),
		g.ref(cmn.FLOAT_CONST),
		g.ref(cmn.INT_CONST),
		g.ref(cmn.STRING_CONST),
	))

	g.def(cmn.UNIT_CONST, pc.Seq(cmn.Lit("("), cmn.SP, cmn.Lit(")")))
	g.def(cmn.BOOL_CONST, cmn.Choice(cmn.Keyword("true"), cmn.Keyword("false")))

	g.def(cmn.LENGTH_CONST, pc.Seq(
		cmn.Not(hexPrefix),
		g.ref(cmn.LENGTH_DIGIT),
		g.ref(cmn.LENGTH_UNIT),
	))
	g.def(cmn.LENGTH_DIGIT, cmn.Choice(floatLexeme, digits))
	g.def(cmn.LENGTH_UNIT, pc.Seq(
		cmn.Lower,
		pc.ZeroOrMore("unitChar", cmn.Choice(cmn.Lower, cmn.Upper, cmn.Digit)),
	))

	g.def(cmn.FLOAT_CONST, floatLexeme)

	g.def(cmn.INT_CONST, cmn.Choice(
		g.ref(cmn.INT_HEX_CONST),
		g.ref(cmn.INT_DECIMAL_CONST),
	))
	g.def(cmn.INT_HEX_CONST, pc.Seq(hexPrefix, cmn.OneOrMore("hexDigit", hexDigit)))
	g.def(cmn.INT_DECIMAL_CONST, digits)

	g.def(cmn.STRING_CONST, pc.Seq(
		pc.Optional(g.ref(cmn.STRING_OMIT_SPACE_IDENTIFIER)),
		g.stringBody(),
		pc.Optional(g.ref(cmn.STRING_OMIT_SPACE_IDENTIFIER)),
	))
	g.def(cmn.STRING_OMIT_SPACE_IDENTIFIER, cmn.Lit("#"))
}

// stringBody scans a backtick fenced body. The opening run of n backticks is
// closed by the first later run of n backticks; shorter runs are content.
// The content is emitted as a string_inner span.
func (g *grammar) stringBody() pc.Parser[cmn.Entity] {
	return func(pctx *pc.ParseContext[cmn.Entity], tokens []pc.Token[cmn.Entity]) (int, []pc.Token[cmn.Entity], error) {
		n := 0
		for n < len(tokens) && isBacktick(tokens[n]) {
			n++
		}
		if n == 0 {
			return 0, nil, pc.ErrNotMatch
		}

		for i := n; i+n <= len(tokens); i++ {
			if !closesFence(tokens[i:i+n]) {
				continue
			}
			inner := g.b.Span(cmn.STRING_INNER, g.b.Position(tokens, n), g.b.Position(tokens, i), nil)

			return i + n, []pc.Token[cmn.Entity]{cmn.Emit(inner)}, nil
		}

		return 0, nil, pc.ErrNotMatch
	}
}

func isBacktick(t pc.Token[cmn.Entity]) bool {
	return t.Val.Original.Rune == '`'
}

func closesFence(tokens []pc.Token[cmn.Entity]) bool {
	for _, t := range tokens {
		if !isBacktick(t) {
			return false
		}
	}

	return true
}
