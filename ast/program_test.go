package ast_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shibukawa/satyparse/ast"
	. "github.com/shibukawa/satyparse/testhelper"
)

func TestProgram(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected ast.Program
	}{
		{
			name: "stage header and bound body",
			text: "@stage: 0\n@require: hoge\nlet a = 1 in a",
			expected: ast.Program{
				Stage: Ptr(RR(ast.Stage0, 1, 1, 2, 1)),
				Headers: []ast.Ranged[ast.Header]{
					RR[ast.Header](ast.Require{Name: RR("hoge", 2, 11, 2, 15)}, 2, 1, 3, 1),
				},
				Body: RR[ast.Expr](ast.BindStmt{
					Stmt: RR[ast.Statement](ast.Let{
						Pattern: RR[ast.Pattern](ast.VarPattern("a"), 3, 5, 3, 6),
						Body:    unaryExprAt(ast.LiteralUnary{Literal: ast.IntLiteral(1)}, 3, 9, 10),
					}, 3, 1, 3, 10),
					Body: unaryExprAt(ast.Variable("a"), 3, 14, 15),
				}, 3, 1, 3, 15),
			},
		},
		{
			name:     "body only",
			text:     "1",
			expected: ast.Program{Body: intExpr(1, 1, 2)},
		},
		{
			name: "leading comment",
			text: "% comment\n  x",
			expected: ast.Program{
				Body: unaryExprAt(ast.Variable("x"), 2, 3, 4),
			},
		},
		{
			name: "preamble",
			text: "let a = 1\nlet b = 2\nin a + b",
			expected: ast.Program{
				Preamble: Ptr(RR(ast.Preamble{Statements: []ast.Ranged[ast.Statement]{
					RR[ast.Statement](ast.Let{
						Pattern: RR[ast.Pattern](ast.VarPattern("a"), 1, 5, 1, 6),
						Body:    unaryExprAt(ast.LiteralUnary{Literal: ast.IntLiteral(1)}, 1, 9, 10),
					}, 1, 1, 1, 10),
					RR[ast.Statement](ast.Let{
						Pattern: RR[ast.Pattern](ast.VarPattern("b"), 2, 5, 2, 6),
						Body:    unaryExprAt(ast.LiteralUnary{Literal: ast.IntLiteral(2)}, 2, 9, 10),
					}, 2, 1, 2, 10),
				}}, 1, 1, 2, 10)),
				Body: RR[ast.Expr](ast.Dyadic{
					LHS: unaryExprAt(ast.Variable("a"), 3, 4, 5),
					Op:  RR("+", 3, 6, 3, 7),
					RHS: unaryExprAt(ast.Variable("b"), 3, 8, 9),
				}, 3, 4, 3, 9),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			AssertParsed(t, ast.ProgramGrammar, tt.text, tt.expected)
		})
	}
}

func TestParseProgram(t *testing.T) {
	prog, err := ast.ParseProgram(TrimIndent(t, `
		@stage: persistent
		@require: stdjabook
		@import: ../local/lib

		let x = 1
		let y = 2
		in x
	`))
	assert.NoError(t, err)

	assert.Equal(t, ast.StagePersistent, prog.Stage.Body)
	assert.Equal(t, 2, len(prog.Headers))
	assert.Equal(t, ast.Header(ast.Import{Path: RR("../local/lib", 3, 10, 3, 22)}), prog.Headers[1].Body)
	assert.Equal(t, 2, len(prog.Preamble.Body.Statements))
	assert.Equal(t, ast.Location{Row: 7, Col: 4}, prog.Body.Start)
}

func TestHeader(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected ast.Header
	}{
		{name: "require", text: "@require: code\n", expected: ast.Require{Name: R("code", 11, 15)}},
		{name: "require without space", text: "@require:code\n", expected: ast.Require{Name: R("code", 10, 14)}},
		{name: "trailing blanks", text: "@require: hoge  \n", expected: ast.Require{Name: R("hoge", 11, 15)}},
		{name: "import path", text: "@import: ../../fuga base\n", expected: ast.Import{Path: R("../../fuga base", 10, 25)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			AssertParsed(t, ast.HeaderGrammar, tt.text, tt.expected)
		})
	}
}

func TestHeaderNotParsed(t *testing.T) {
	for _, text := range []string{
		"@require : base\n",
		"@require: base",
		"@require:\n",
		"@include: base\n",
	} {
		AssertNotParsed(t, ast.HeaderGrammar, text)
	}
}

func TestStage(t *testing.T) {
	tests := []struct {
		text     string
		expected ast.Stage
	}{
		{text: "@stage: 0\n", expected: ast.Stage0},
		{text: "@stage: 1  \n", expected: ast.Stage1},
		{text: "@stage:persistent\n", expected: ast.StagePersistent},
	}

	for _, tt := range tests {
		t.Run(tt.expected.String(), func(t *testing.T) {
			AssertParsed(t, ast.StageGrammar, tt.text, tt.expected)
		})
	}

	AssertNotParsed(t, ast.StageGrammar, "@stage: 2\n")
	AssertNotParsed(t, ast.StageGrammar, "@stage: 0")
}

func TestPreamble(t *testing.T) {
	preamble, err := ast.PreambleGrammar.Parse("open Lib\nlet-mutable n <- 0\nlet f x = x")
	assert.NoError(t, err)

	assert.Equal(t, 3, len(preamble.Statements))
	assert.Equal(t, ast.Statement(ast.Open{Module: R("Lib", 6, 9)}), preamble.Statements[0].Body)
	assert.Equal(t, ast.Location{Row: 2, Col: 1}, preamble.Statements[1].Start)
	assert.Equal(t, ast.Location{Row: 3, Col: 12}, preamble.Statements[2].End)
}
