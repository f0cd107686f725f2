package parser

import (
	pc "github.com/shibukawa/parsercombinator"
	cmn "github.com/shibukawa/satyparse/parser/parsercommon"
)

func (g *grammar) defineHeaders() {
	g.def(cmn.PROGRAM, pc.Seq(
		cmn.SP,
		pc.Optional(g.ref(cmn.HEADER_STAGE)),
		cmn.Sp(g.ref(cmn.HEADERS)),
		cmn.Sp(cmn.Choice(
			// a bare body wins over a preamble when both could apply
			pc.Seq(g.ref(cmn.EXPR), cmn.Peek(pc.Seq(cmn.SP, cmn.EOS))),
			pc.Seq(g.ref(cmn.PREAMBLE), cmn.Sp(cmn.Keyword("in")), cmn.Sp(g.ref(cmn.EXPR))),
		)),
	))

	g.def(cmn.HEADER_STAGE, pc.Seq(
		cmn.Lit("@stage:"),
		blanks,
		g.ref(cmn.STAGE),
		blanks,
		cmn.Newline,
	))
	g.def(cmn.STAGE, cmn.Choice(
		cmn.Keyword("persistent"),
		cmn.Keyword("0"),
		cmn.Keyword("1"),
	))

	g.def(cmn.HEADERS, cmn.SpacedList("header", g.ref(cmn.HEADER)))
	g.def(cmn.HEADER, pc.Seq(
		cmn.Lit("@"),
		g.ref(cmn.HEADER_KIND),
		cmn.Lit(":"),
		blanks,
		g.ref(cmn.PKG_NAME),
		blanks,
		cmn.Newline,
	))
	g.def(cmn.HEADER_KIND, cmn.Choice(
		cmn.Keyword("require"),
		cmn.Keyword("import"),
	))
	g.def(cmn.PKG_NAME, cmn.OneOrMore("pkg_name", pc.Seq(
		cmn.Not(pc.Seq(blanks, cmn.Newline)),
		cmn.AnyChar,
	)))

	g.def(cmn.PREAMBLE, pc.Seq(
		g.ref(cmn.STATEMENT),
		pc.ZeroOrMore("statement", cmn.Sp(g.ref(cmn.STATEMENT))),
	))
}

func (g *grammar) defineStatements() {
	args := pc.ZeroOrMore("argument", cmn.Sp(g.ref(cmn.PATTERN)))
	body := pc.Seq(cmn.Sp(cmn.Lit("=")), cmn.Sp(g.ref(cmn.EXPR)))

	g.def(cmn.STATEMENT, cmn.Choice(
		g.ref(cmn.LET_REC_STMT),
		g.ref(cmn.LET_MUTABLE_STMT),
		g.ref(cmn.LET_INLINE_STMT),
		g.ref(cmn.LET_BLOCK_STMT),
		g.ref(cmn.LET_MATH_STMT),
		g.ref(cmn.LET_STMT),
		g.ref(cmn.OPEN_STMT),
		g.ref(cmn.TYPE_STMT),
		g.ref(cmn.MODULE_STMT),
	))

	g.def(cmn.LET_STMT, pc.Seq(
		cmn.Keyword("let"),
		cmn.Sp(g.ref(cmn.PATTERN)),
		args,
		body,
	))
	g.def(cmn.LET_REC_STMT, pc.Seq(
		cmn.Keyword("let-rec"),
		cmn.Sp(g.ref(cmn.LET_REC_INNER)),
		pc.ZeroOrMore("and", pc.Seq(cmn.Sp(cmn.Keyword("and")), cmn.Sp(g.ref(cmn.LET_REC_INNER)))),
	))
	g.def(cmn.LET_REC_INNER, pc.Seq(
		g.ref(cmn.PATTERN),
		args,
		body,
	))
	g.def(cmn.LET_MUTABLE_STMT, pc.Seq(
		cmn.Keyword("let-mutable"),
		cmn.Sp(g.ref(cmn.VAR)),
		cmn.Sp(cmn.Lit("<-")),
		cmn.Sp(g.ref(cmn.EXPR)),
	))
	g.def(cmn.LET_INLINE_STMT, pc.Seq(
		cmn.Keyword("let-inline"),
		pc.Optional(cmn.Sp(g.ref(cmn.VAR))),
		cmn.Sp(g.ref(cmn.INLINE_CMD_NAME)),
		args,
		body,
	))
	g.def(cmn.LET_BLOCK_STMT, pc.Seq(
		cmn.Keyword("let-block"),
		pc.Optional(cmn.Sp(g.ref(cmn.VAR))),
		cmn.Sp(g.ref(cmn.BLOCK_CMD_NAME)),
		args,
		body,
	))
	g.def(cmn.LET_MATH_STMT, pc.Seq(
		cmn.Keyword("let-math"),
		cmn.Sp(g.ref(cmn.MATH_CMD_NAME)),
		args,
		body,
	))
	g.def(cmn.OPEN_STMT, pc.Seq(
		cmn.Keyword("open"),
		cmn.Sp(g.ref(cmn.MODULE_NAME)),
	))

	constraints := pc.ZeroOrMore("constraint", cmn.Sp(g.ref(cmn.CONSTRAINT)))
	params := pc.ZeroOrMore("type parameter", pc.Seq(g.ref(cmn.TYPE_PARAM), cmn.SP))

	g.def(cmn.TYPE_STMT, pc.Seq(
		cmn.Keyword("type"),
		cmn.Sp(g.ref(cmn.TYPE_INNER)),
		pc.ZeroOrMore("and", pc.Seq(cmn.Sp(cmn.Keyword("and")), cmn.Sp(g.ref(cmn.TYPE_INNER)))),
	))
	g.def(cmn.TYPE_INNER, pc.Seq(
		params,
		g.ref(cmn.VAR),
		cmn.Sp(cmn.Lit("=")),
		cmn.Sp(cmn.Choice(
			pc.Seq(
				pc.Optional(pc.Seq(cmn.Lit("|"), cmn.SP)),
				g.ref(cmn.TYPE_VARIANT),
				pc.ZeroOrMore("variant", pc.Seq(cmn.Sp(cmn.Lit("|")), cmn.Sp(g.ref(cmn.TYPE_VARIANT)))),
			),
			g.ref(cmn.TYPE_EXPR),
		)),
		constraints,
	))
	g.def(cmn.TYPE_VARIANT, pc.Seq(
		g.ref(cmn.CONSTRUCTOR),
		cmn.Not(cmn.Lit(".")),
		pc.Optional(pc.Seq(cmn.Sp(cmn.Keyword("of")), cmn.Sp(g.ref(cmn.TYPE_EXPR)))),
	))

	g.def(cmn.MODULE_STMT, pc.Seq(
		cmn.Keyword("module"),
		cmn.Sp(g.ref(cmn.MODULE_NAME)),
		pc.Optional(pc.Seq(cmn.Sp(cmn.Lit(":")), cmn.Sp(g.ref(cmn.SIG_STMT)))),
		cmn.Sp(cmn.Lit("=")),
		cmn.Sp(g.ref(cmn.STRUCT_STMT)),
	))
	g.def(cmn.SIG_STMT, pc.Seq(
		cmn.Keyword("sig"),
		pc.ZeroOrMore("signature", cmn.Sp(cmn.Choice(
			g.ref(cmn.SIG_TYPE_STMT),
			g.ref(cmn.SIG_VAL_STMT),
			g.ref(cmn.SIG_DIRECT_STMT),
		))),
		cmn.Sp(cmn.Keyword("end")),
	))
	g.def(cmn.SIG_TYPE_STMT, pc.Seq(
		cmn.Keyword("type"),
		cmn.Sp(params),
		g.ref(cmn.VAR),
		constraints,
	))
	g.def(cmn.SIG_VAL_STMT, pc.Seq(
		cmn.Keyword("val"),
		cmn.Sp(cmn.Choice(
			g.ref(cmn.VAR),
			enclosed("(", g.ref(cmn.BIN_OPERATOR), ")"),
			g.ref(cmn.INLINE_CMD_NAME),
			g.ref(cmn.BLOCK_CMD_NAME),
		)),
		cmn.Sp(cmn.Lit(":")),
		cmn.Sp(g.ref(cmn.TYPE_EXPR)),
		constraints,
	))
	g.def(cmn.SIG_DIRECT_STMT, pc.Seq(
		cmn.Keyword("direct"),
		cmn.Sp(cmn.Choice(g.ref(cmn.INLINE_CMD_NAME), g.ref(cmn.BLOCK_CMD_NAME))),
		cmn.Sp(cmn.Lit(":")),
		cmn.Sp(g.ref(cmn.TYPE_EXPR)),
		constraints,
	))
	g.def(cmn.STRUCT_STMT, pc.Seq(
		cmn.Keyword("struct"),
		pc.ZeroOrMore("statement", cmn.Sp(g.ref(cmn.STATEMENT))),
		cmn.Sp(cmn.Keyword("end")),
	))

	g.def(cmn.BIND_STMT, pc.Seq(
		g.ref(cmn.STATEMENT),
		cmn.Sp(cmn.Keyword("in")),
	))
}
