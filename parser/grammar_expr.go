package parser

import (
	"slices"
	"strings"

	pc "github.com/shibukawa/parsercombinator"
	cmn "github.com/shibukawa/satyparse/parser/parsercommon"
)

// reservedWords cannot be used as variable names.
var reservedWords = []string{
	"and", "as", "before", "command", "constraint", "direct", "do", "else", "end",
	"false", "fun", "if", "in", "let", "let-block", "let-inline", "let-math",
	"let-mutable", "let-rec", "match", "mod", "module", "not", "of", "open",
	"sig", "struct", "then", "true", "type", "val", "when", "while", "with",
}

// IsReserved reports whether word is a reserved word.
func IsReserved(word string) bool {
	return slices.Contains(reservedWords, word)
}

const (
	operatorStart = "+-*/^&|=<>:"
	operatorChars = operatorStart + "!'.~?"
)

// operators spelled with operator characters that are punctuation instead
var nonOperators = []string{"|", "->", "<-", "="}

func (g *grammar) defineExprs() {
	g.def(cmn.EXPR, cmn.Choice(
		g.ref(cmn.MATCH_EXPR),
		pc.Seq(g.ref(cmn.BIND_STMT), cmn.Sp(g.ref(cmn.EXPR))),
		g.ref(cmn.CTRL_IF),
		g.ref(cmn.CTRL_WHILE),
		g.ref(cmn.DYADIC_EXPR),
		g.ref(cmn.UNARY_OPERATOR_EXPR),
		g.ref(cmn.VARIANT_CONSTRUCTOR),
		g.ref(cmn.APPLICATION),
		g.ref(cmn.RECORD_MEMBER),
		g.ref(cmn.UNARY),
	))

	g.def(cmn.MATCH_EXPR, pc.Seq(
		cmn.Keyword("match"),
		cmn.Sp(g.ref(cmn.EXPR)),
		cmn.Sp(cmn.Keyword("with")),
		pc.Optional(cmn.Sp(cmn.Lit("|"))),
		cmn.Sp(g.ref(cmn.MATCH_ARM)),
		pc.ZeroOrMore("match arm", pc.Seq(cmn.Sp(cmn.Lit("|")), cmn.Sp(g.ref(cmn.MATCH_ARM)))),
	))
	g.def(cmn.MATCH_ARM, pc.Seq(
		g.ref(cmn.MATCH_PTN),
		pc.Optional(cmn.Sp(g.ref(cmn.MATCH_GUARD))),
		cmn.Sp(cmn.Lit("->")),
		cmn.Sp(g.ref(cmn.EXPR)),
	))
	g.def(cmn.MATCH_GUARD, pc.Seq(cmn.Keyword("when"), cmn.Sp(g.ref(cmn.EXPR))))

	g.def(cmn.CTRL_IF, pc.Seq(
		cmn.Keyword("if"),
		cmn.Sp(g.ref(cmn.EXPR)),
		cmn.Sp(cmn.Keyword("then")),
		cmn.Sp(g.ref(cmn.EXPR)),
		cmn.Sp(cmn.Keyword("else")),
		cmn.Sp(g.ref(cmn.EXPR)),
	))
	g.def(cmn.CTRL_WHILE, pc.Seq(
		cmn.Keyword("while"),
		cmn.Sp(g.ref(cmn.EXPR)),
		cmn.Sp(cmn.Keyword("do")),
		cmn.Sp(g.ref(cmn.EXPR)),
	))

	g.def(cmn.DYADIC_EXPR, g.dyadicChain())
	g.def(cmn.BIN_OPERATOR, binOperator())

	g.def(cmn.UNARY_OPERATOR_EXPR, pc.Seq(
		g.ref(cmn.UNARY_OPERATOR),
		cmn.Sp(g.ref(cmn.UNARY)),
	))
	g.def(cmn.UNARY_OPERATOR, cmn.Choice(
		pc.Seq(cmn.Lit("-"), cmn.Not(cmn.CharIn("operator", operatorChars))),
		cmn.Keyword("not"),
	))

	g.def(cmn.VARIANT_CONSTRUCTOR, pc.Seq(
		g.ref(cmn.VARIANT),
		pc.Optional(cmn.Sp(g.ref(cmn.UNARY))),
	))
	g.def(cmn.VARIANT, pc.Seq(
		g.qualified(g.ref(cmn.CONSTRUCTOR)),
		cmn.Not(cmn.Lit(".")),
	))
	g.def(cmn.CONSTRUCTOR, upperIdent)

	g.def(cmn.APPLICATION, cmn.Choice(
		pc.Seq(cmn.Keyword("command"), cmn.Sp(g.ref(cmn.INLINE_CMD_NAME))),
		pc.Seq(
			cmn.Choice(g.ref(cmn.MOD_VAR), g.ref(cmn.VAR)),
			cmn.OneOrMore("argument", cmn.Sp(cmn.Choice(
				g.ref(cmn.APP_OPTION),
				g.ref(cmn.APP_OMISSION),
				g.ref(cmn.UNARY),
			))),
		),
	))
	g.def(cmn.APP_OPTION, pc.Seq(cmn.Lit("?:"), cmn.Sp(g.ref(cmn.UNARY))))
	g.def(cmn.APP_OMISSION, cmn.Lit("?*"))

	g.def(cmn.RECORD_MEMBER, pc.Seq(
		g.ref(cmn.UNARY),
		cmn.Sp(cmn.Lit("#")),
		cmn.Sp(g.ref(cmn.VAR)),
	))

	g.def(cmn.UNARY, cmn.Choice(
		g.ref(cmn.BLOCK_TEXT),
		g.ref(cmn.HORIZONTAL_TEXT),
		g.ref(cmn.MATH_TEXT),
		g.ref(cmn.RECORD),
		g.ref(cmn.LIST),
		g.ref(cmn.TUPLE),
		enclosed("(", g.ref(cmn.BIN_OPERATOR), ")"),
		enclosed("(", g.ref(cmn.EXPR), ")"),
		g.ref(cmn.LITERAL),
		g.ref(cmn.EXPR_WITH_MOD),
		g.ref(cmn.MOD_VAR),
		g.ref(cmn.VAR),
	))

	g.def(cmn.BLOCK_TEXT, enclosed("'<", g.ref(cmn.VERTICAL_MODE), ">"))
	g.def(cmn.HORIZONTAL_TEXT, enclosed("{", g.ref(cmn.HORIZONTAL_MODE), "}"))
	g.def(cmn.MATH_TEXT, enclosed("${", g.ref(cmn.MATH_MODE), "}"))

	g.def(cmn.RECORD, pc.Seq(
		cmn.Lit("(|"),
		pc.Optional(cmn.Sp(cmn.Choice(
			pc.Seq(g.ref(cmn.UNARY), cmn.Sp(cmn.Keyword("with")), cmn.Sp(g.ref(cmn.RECORD_INNER))),
			g.ref(cmn.RECORD_INNER),
		))),
		cmn.Sp(cmn.Lit("|)")),
	))
	g.def(cmn.RECORD_INNER, pc.Seq(
		g.ref(cmn.RECORD_UNIT),
		pc.ZeroOrMore("record unit", pc.Seq(cmn.Sp(cmn.Lit(";")), cmn.Sp(g.ref(cmn.RECORD_UNIT)))),
		pc.Optional(cmn.Sp(cmn.Lit(";"))),
	))
	g.def(cmn.RECORD_UNIT, pc.Seq(
		g.ref(cmn.VAR_PTN),
		cmn.Sp(cmn.Lit("=")),
		cmn.Sp(g.ref(cmn.EXPR)),
	))

	g.def(cmn.LIST, enclosed("[", cmn.SepBy("list element", g.ref(cmn.EXPR), cmn.Lit(";")), "]"))
	g.def(cmn.TUPLE, pc.Seq(
		cmn.Lit("("),
		cmn.Sp(g.ref(cmn.EXPR)),
		cmn.OneOrMore("tuple element", pc.Seq(cmn.Sp(cmn.Lit(",")), cmn.Sp(g.ref(cmn.EXPR)))),
		cmn.Sp(cmn.Lit(")")),
	))

	g.def(cmn.EXPR_WITH_MOD, pc.Seq(
		g.ref(cmn.MODULE_NAME),
		cmn.Lit(".("),
		cmn.Sp(g.ref(cmn.EXPR)),
		cmn.Sp(cmn.Lit(")")),
	))
	g.def(cmn.MOD_VAR, pc.Seq(
		g.ref(cmn.MODULE_NAME),
		cmn.Lit("."),
		g.ref(cmn.VAR),
	))

	g.def(cmn.MODULE_NAME, upperIdent)
	g.def(cmn.VAR, variable())
	g.def(cmn.VAR_PTN, lowerIdent)
}

// openEnded are the keywords starting an expression that extends as far
// right as possible. Such an expression can only be the last operand of a
// dyadic chain.
var openEnded = []string{
	"match", "if", "while", "open",
	"let", "let-rec", "let-mutable", "let-inline", "let-block", "let-math",
}

// dyadicChain parses operand (operator operand)+ and folds the chain by
// operator precedence. The inner applications are emitted as nested
// dyadic_expr spans so that every node has exactly lhs, operator and rhs.
func (g *grammar) dyadicChain() pc.Parser[cmn.Entity] {
	operand := cmn.Choice(
		g.ref(cmn.UNARY_OPERATOR_EXPR),
		g.ref(cmn.VARIANT_CONSTRUCTOR),
		g.ref(cmn.APPLICATION),
		g.ref(cmn.RECORD_MEMBER),
		g.ref(cmn.UNARY),
	)
	keywords := make([]pc.Parser[cmn.Entity], len(openEnded))
	for i, word := range openEnded {
		keywords[i] = cmn.Keyword(word)
	}
	tail := pc.Seq(cmn.Peek(cmn.Choice(keywords...)), g.ref(cmn.EXPR))

	chain := pc.Seq(
		operand,
		cmn.OneOrMore("operator", pc.Seq(
			cmn.Sp(g.ref(cmn.BIN_OPERATOR)),
			cmn.Sp(cmn.Choice(tail, operand)),
		)),
	)

	return func(pctx *pc.ParseContext[cmn.Entity], tokens []pc.Token[cmn.Entity]) (int, []pc.Token[cmn.Entity], error) {
		consumed, out, err := chain(pctx, tokens)
		if err != nil {
			return 0, nil, err
		}

		f := &dyadicFold{b: g.b, nodes: cmn.Nodes(out)}
		top := f.climb(0)
		// the rule wrapper turns these into the outermost span
		results := make([]pc.Token[cmn.Entity], len(top.Children))
		for i, child := range top.Children {
			results[i] = cmn.Emit(child)
		}

		return consumed, results, nil
	}
}

// dyadicFold builds the operator tree of an operand/operator sequence by
// precedence climbing.
type dyadicFold struct {
	b     *cmn.Builder
	nodes []*cmn.Span
	pos   int
}

func (f *dyadicFold) climb(minLevel int) *cmn.Span {
	lhs := f.nodes[f.pos]
	f.pos++
	for f.pos+1 < len(f.nodes) {
		op := f.nodes[f.pos]
		level, right := operatorLevel(op.Text)
		if level < minLevel {
			break
		}
		f.pos++

		next := level + 1
		if right {
			next = level
		}
		rhs := f.climb(next)
		lhs = f.b.Span(cmn.DYADIC_EXPR, lhs.Start, rhs.End, []*cmn.Span{lhs, op, rhs})
	}

	return lhs
}

// operatorLevel returns the binding strength of a binary operator, keyed off
// its first character, and whether it groups to the right.
func operatorLevel(op string) (level int, right bool) {
	if op == "mod" {
		return 5, false
	}

	switch op[0] {
	case '|':
		return 0, true
	case '&':
		return 1, true
	case '=', '<', '>':
		return 2, true
	case '^', ':':
		return 3, true
	case '+', '-':
		return 4, false
	default:
		return 5, false
	}
}

// variable parses a lowercase identifier that is not a reserved word.
func variable() pc.Parser[cmn.Entity] {
	return func(pctx *pc.ParseContext[cmn.Entity], tokens []pc.Token[cmn.Entity]) (int, []pc.Token[cmn.Entity], error) {
		consumed, out, err := lowerIdent(pctx, tokens)
		if err != nil {
			return 0, nil, err
		}
		if IsReserved(cmn.ToSrc(tokens[:consumed])) {
			return 0, nil, pc.ErrNotMatch
		}

		return consumed, out, nil
	}
}

func binOperator() pc.Parser[cmn.Entity] {
	mod := cmn.Keyword("mod")

	return func(pctx *pc.ParseContext[cmn.Entity], tokens []pc.Token[cmn.Entity]) (int, []pc.Token[cmn.Entity], error) {
		if consumed, out, err := mod(pctx, tokens); err == nil {
			return consumed, out, nil
		}
		if len(tokens) == 0 || !strings.ContainsRune(operatorStart, tokens[0].Val.Original.Rune) {
			return 0, nil, pc.ErrNotMatch
		}

		i := 1
		for i < len(tokens) && strings.ContainsRune(operatorChars, tokens[i].Val.Original.Rune) {
			i++
		}
		if slices.Contains(nonOperators, cmn.ToSrc(tokens[:i])) {
			return 0, nil, pc.ErrNotMatch
		}

		return i, tokens[:i], nil
	}
}
