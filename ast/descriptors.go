package ast

import (
	"github.com/shibukawa/satyparse/parser"
	cmn "github.com/shibukawa/satyparse/parser/parsercommon"
)

// Descriptors for every node type that can be parsed directly. Lowering
// functions call each other, never these values.
var (
	ProgramGrammar   = NewGrammar(cmn.PROGRAM, lowerProgram)
	StageGrammar     = NewGrammar(cmn.HEADER_STAGE, lowerStage)
	HeaderGrammar    = NewGrammar(cmn.HEADER, lowerHeader)
	PreambleGrammar  = NewGrammar(cmn.PREAMBLE, lowerPreamble)
	StatementGrammar = NewGrammar(cmn.STATEMENT, lowerStatement)

	LiteralGrammar = NewGrammar(cmn.LITERAL, lowerLiteral)
	ExprGrammar    = NewGrammar(cmn.EXPR, lowerExpr)
	UnaryGrammar   = NewGrammar(cmn.UNARY, lowerUnary)
	RecordGrammar  = NewGrammar(cmn.RECORD, lowerRecord)
	ListGrammar    = NewGrammar(cmn.LIST, lowerList)
	TupleGrammar   = NewGrammar(cmn.TUPLE, lowerTuple)

	PatternGrammar  = NewGrammar(cmn.MATCH_PTN, lowerPattern)
	TypeExprGrammar = NewGrammar(cmn.TYPE_EXPR, lowerTypeExpr)

	VerticalGrammar   = NewGrammar(cmn.VERTICAL_MODE, lowerVertical)
	HorizontalGrammar = NewGrammar(cmn.HORIZONTAL_MODE, lowerHorizontal)
	MathGrammar       = NewGrammar(cmn.MATH_MODE, lowerMath)
)

// ParseProgram parses a whole source file.
func ParseProgram(text string, options ...parser.Options) (Program, error) {
	return ProgramGrammar.Parse(text, options...)
}
