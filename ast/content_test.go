package ast_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shibukawa/satyparse/ast"
	. "github.com/shibukawa/satyparse/testhelper"
)

func TestVertical(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected ast.Vertical
	}{
		{name: "empty", text: "", expected: ast.Vertical{}},
		{
			name: "command without arguments",
			text: "+par;",
			expected: ast.Vertical{Elements: []ast.Ranged[ast.VerticalElement]{
				R[ast.VerticalElement](ast.BlockCmd{Name: R("+par", 1, 5)}, 1, 6),
			}},
		},
		{
			name: "text argument",
			text: "+p{aaa}",
			expected: ast.Vertical{Elements: []ast.Ranged[ast.VerticalElement]{
				R[ast.VerticalElement](ast.BlockCmd{
					Name: R("+p", 1, 3),
					Args: []ast.Ranged[ast.CmdArg]{
						R[ast.CmdArg](ast.HorizontalArg{Horizontal: ast.HorizontalSingle{
							Tokens: []ast.Ranged[ast.HorizontalToken]{text("aaa", 4, 7)},
						}}, 3, 8),
					},
				}, 1, 8),
			}},
		},
		{
			name: "options and expression arguments",
			text: "+p?:(x)?*(y){z}",
			expected: ast.Vertical{Elements: []ast.Ranged[ast.VerticalElement]{
				R[ast.VerticalElement](ast.BlockCmd{
					Name: R("+p", 1, 3),
					Opts: []ast.Ranged[ast.CmdOption]{
						R(ast.CmdOption{Value: Ptr(varExpr("x", 6, 7))}, 3, 8),
						R(ast.CmdOption{}, 8, 10),
					},
					Args: []ast.Ranged[ast.CmdArg]{
						R[ast.CmdArg](ast.ExprArg{Value: varExpr("y", 11, 12)}, 10, 13),
						R[ast.CmdArg](ast.HorizontalArg{Horizontal: ast.HorizontalSingle{
							Tokens: []ast.Ranged[ast.HorizontalToken]{text("z", 14, 15)},
						}}, 13, 16),
					},
				}, 1, 16),
			}},
		},
		{
			name: "list argument",
			text: "+p[1; 2];",
			expected: ast.Vertical{Elements: []ast.Ranged[ast.VerticalElement]{
				R[ast.VerticalElement](ast.BlockCmd{
					Name: R("+p", 1, 3),
					Args: []ast.Ranged[ast.CmdArg]{
						R[ast.CmdArg](ast.ExprArg{Value: unaryExpr(ast.List{Elements: []ast.Ranged[ast.Expr]{
							intExpr(1, 4, 5),
							intExpr(2, 7, 8),
						}}, 3, 9)}, 3, 9),
					},
				}, 1, 10),
			}},
		},
		{
			name: "unit argument",
			text: "+p();",
			expected: ast.Vertical{Elements: []ast.Ranged[ast.VerticalElement]{
				R[ast.VerticalElement](ast.BlockCmd{
					Name: R("+p", 1, 3),
					Args: []ast.Ranged[ast.CmdArg]{
						R[ast.CmdArg](ast.ExprArg{Value: unaryExpr(ast.LiteralUnary{Literal: ast.UnitLiteral{}}, 3, 5)}, 3, 5),
					},
				}, 1, 6),
			}},
		},
		{
			name: "vertical argument",
			text: "+p<+q;>",
			expected: ast.Vertical{Elements: []ast.Ranged[ast.VerticalElement]{
				R[ast.VerticalElement](ast.BlockCmd{
					Name: R("+p", 1, 3),
					Args: []ast.Ranged[ast.CmdArg]{
						R[ast.CmdArg](ast.VerticalArg{Vertical: ast.Vertical{Elements: []ast.Ranged[ast.VerticalElement]{
							R[ast.VerticalElement](ast.BlockCmd{Name: R("+q", 4, 6)}, 4, 7),
						}}}, 3, 8),
					},
				}, 1, 8),
			}},
		},
		{
			name: "qualified command",
			text: "+Mod.p;",
			expected: ast.Vertical{Elements: []ast.Ranged[ast.VerticalElement]{
				R[ast.VerticalElement](ast.BlockCmd{Name: R("+Mod.p", 1, 7), Module: Ptr(R("Mod", 2, 5))}, 1, 8),
			}},
		},
		{
			name: "embeddings",
			text: "#x; #Mod.y;",
			expected: ast.Vertical{Elements: []ast.Ranged[ast.VerticalElement]{
				R[ast.VerticalElement](ast.BlockTextEmbedding{Var: R("x", 2, 3)}, 1, 4),
				R[ast.VerticalElement](ast.BlockTextEmbedding{Module: Ptr(R("Mod", 6, 9)), Var: R("y", 10, 11)}, 5, 12),
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			AssertParsed(t, ast.VerticalGrammar, tt.text, tt.expected)
		})
	}
}

func TestHorizontal(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected ast.Horizontal
	}{
		{name: "empty", text: "", expected: ast.HorizontalSingle{}},
		{
			name: "text around command",
			text: `hoge \textbf{fuga} piyo`,
			expected: ast.HorizontalSingle{Tokens: []ast.Ranged[ast.HorizontalToken]{
				text("hoge ", 1, 6),
				R[ast.HorizontalToken](ast.InlineCmd{
					Name: R(`\textbf`, 6, 13),
					Args: []ast.Ranged[ast.CmdArg]{
						R[ast.CmdArg](ast.HorizontalArg{Horizontal: ast.HorizontalSingle{
							Tokens: []ast.Ranged[ast.HorizontalToken]{text("fuga", 14, 18)},
						}}, 13, 19),
					},
				}, 6, 19),
				text("piyo", 20, 24),
			}},
		},
		{
			name: "escape and embedding",
			text: `a\{#x;`,
			expected: ast.HorizontalSingle{Tokens: []ast.Ranged[ast.HorizontalToken]{
				text("a", 1, 2),
				R[ast.HorizontalToken](ast.EscapedChar("{"), 2, 4),
				R[ast.HorizontalToken](ast.InlineTextEmbedding{Var: R("x", 5, 6)}, 4, 7),
			}},
		},
		{
			name: "string and math",
			text: "`code` ${x}",
			expected: ast.HorizontalSingle{Tokens: []ast.Ranged[ast.HorizontalToken]{
				R[ast.HorizontalToken](ast.InlineString("code"), 1, 7),
				R[ast.HorizontalToken](ast.InlineMath{Math: ast.MathSingle{Tokens: []ast.Ranged[ast.MathToken]{
					R(ast.MathToken{Base: mathChar("x", 10, 11)}, 10, 11),
				}}}, 8, 12),
			}},
		},
		{
			name: "list",
			text: "| a | b |",
			expected: ast.HorizontalList{Runs: []ast.Ranged[ast.HorizontalSingle]{
				R(ast.HorizontalSingle{Tokens: []ast.Ranged[ast.HorizontalToken]{text("a ", 3, 5)}}, 3, 5),
				R(ast.HorizontalSingle{Tokens: []ast.Ranged[ast.HorizontalToken]{text("b ", 7, 9)}}, 7, 9),
			}},
		},
		{
			name: "bullets",
			text: "* a ** b",
			expected: ast.HorizontalBullets{Items: []ast.Ranged[ast.BulletItem]{
				R(ast.BulletItem{
					Depth: 1,
					Run:   R(ast.HorizontalSingle{Tokens: []ast.Ranged[ast.HorizontalToken]{text("a ", 3, 5)}}, 3, 5),
				}, 1, 5),
				R(ast.BulletItem{
					Depth: 2,
					Run:   R(ast.HorizontalSingle{Tokens: []ast.Ranged[ast.HorizontalToken]{text("b", 8, 9)}}, 8, 9),
				}, 5, 9),
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			AssertParsed(t, ast.HorizontalGrammar, tt.text, tt.expected)
		})
	}
}

func TestHorizontalColumnsCountCharacters(t *testing.T) {
	h, err := ast.HorizontalGrammar.Parse(`あいう\x;`)
	assert.NoError(t, err)

	single := h.(ast.HorizontalSingle)
	assert.Equal(t, 2, len(single.Tokens))
	assert.Equal(t, ast.Location{Row: 1, Col: 4}, single.Tokens[1].Start)
	assert.Equal(t, ast.Location{Row: 1, Col: 7}, single.Tokens[1].End)
}

func TestMath(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected ast.Math
	}{
		{
			name: "scripts",
			text: "a^b_c",
			expected: ast.MathSingle{Tokens: []ast.Ranged[ast.MathToken]{
				R(ast.MathToken{
					Base: mathChar("a", 1, 2),
					Sup:  Ptr(mathChar("b", 3, 4)),
					Sub:  Ptr(mathChar("c", 5, 6)),
				}, 1, 6),
			}},
		},
		{
			name: "grouped script",
			text: "x_{ij}",
			expected: ast.MathSingle{Tokens: []ast.Ranged[ast.MathToken]{
				R(ast.MathToken{
					Base: mathChar("x", 1, 2),
					Sub: Ptr(R[ast.MathGroup](ast.MathGroupSingle{Single: ast.MathSingle{Tokens: []ast.Ranged[ast.MathToken]{
						R(ast.MathToken{Base: mathChar("i", 4, 5)}, 4, 5),
						R(ast.MathToken{Base: mathChar("j", 5, 6)}, 5, 6),
					}}}, 3, 7)),
				}, 1, 7),
			}},
		},
		{
			name: "symbols",
			text: "a := \\{",
			expected: ast.MathSingle{Tokens: []ast.Ranged[ast.MathToken]{
				R(ast.MathToken{Base: mathChar("a", 1, 2)}, 1, 2),
				R(ast.MathToken{Base: R[ast.MathGroup](ast.MathUnaryGroup{Unary: ast.MathSymbol(":=")}, 3, 5)}, 3, 5),
				R(ast.MathToken{Base: R[ast.MathGroup](ast.MathUnaryGroup{Unary: ast.MathEscapedChar("{")}, 6, 8)}, 6, 8),
			}},
		},
		{
			name: "command with math arguments",
			text: `\frac{a}{b}`,
			expected: ast.MathSingle{Tokens: []ast.Ranged[ast.MathToken]{
				R(ast.MathToken{Base: R[ast.MathGroup](ast.MathUnaryGroup{Unary: ast.MathCmd{
					Name: R(`\frac`, 1, 6),
					Args: []ast.Ranged[ast.MathCmdArg]{
						R[ast.MathCmdArg](ast.MathArg{Single: ast.MathSingle{Tokens: []ast.Ranged[ast.MathToken]{
							R(ast.MathToken{Base: mathChar("a", 7, 8)}, 7, 8),
						}}}, 6, 9),
						R[ast.MathCmdArg](ast.MathArg{Single: ast.MathSingle{Tokens: []ast.Ranged[ast.MathToken]{
							R(ast.MathToken{Base: mathChar("b", 10, 11)}, 10, 11),
						}}}, 9, 12),
					},
				}}, 1, 12)}, 1, 12),
			}},
		},
		{
			name: "command with expression argument",
			text: `\alpha!(t)`,
			expected: ast.MathSingle{Tokens: []ast.Ranged[ast.MathToken]{
				R(ast.MathToken{Base: R[ast.MathGroup](ast.MathUnaryGroup{Unary: ast.MathCmd{
					Name: R(`\alpha`, 1, 7),
					Args: []ast.Ranged[ast.MathCmdArg]{
						R[ast.MathCmdArg](ast.ExprArg{Value: varExpr("t", 9, 10)}, 7, 11),
					},
				}}, 1, 11)}, 1, 11),
			}},
		},
		{
			name: "command with text arguments",
			text: `\text!{a}!<+p;>`,
			expected: ast.MathSingle{Tokens: []ast.Ranged[ast.MathToken]{
				R(ast.MathToken{Base: R[ast.MathGroup](ast.MathUnaryGroup{Unary: ast.MathCmd{
					Name: R(`\text`, 1, 6),
					Args: []ast.Ranged[ast.MathCmdArg]{
						R[ast.MathCmdArg](ast.HorizontalArg{Horizontal: ast.HorizontalSingle{
							Tokens: []ast.Ranged[ast.HorizontalToken]{text("a", 8, 9)},
						}}, 6, 10),
						R[ast.MathCmdArg](ast.VerticalArg{Vertical: ast.Vertical{Elements: []ast.Ranged[ast.VerticalElement]{
							R[ast.VerticalElement](ast.BlockCmd{Name: R("+p", 12, 14)}, 12, 15),
						}}}, 10, 16),
					},
				}}, 1, 16)}, 1, 16),
			}},
		},
		{
			name: "list",
			text: "|a|b|",
			expected: ast.MathList{Runs: []ast.Ranged[ast.MathSingle]{
				R(ast.MathSingle{Tokens: []ast.Ranged[ast.MathToken]{R(ast.MathToken{Base: mathChar("a", 2, 3)}, 2, 3)}}, 2, 3),
				R(ast.MathSingle{Tokens: []ast.Ranged[ast.MathToken]{R(ast.MathToken{Base: mathChar("b", 4, 5)}, 4, 5)}}, 4, 5),
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			AssertParsed(t, ast.MathGrammar, tt.text, tt.expected)
		})
	}
}

func TestContentNotParsed(t *testing.T) {
	AssertNotParsed(t, ast.VerticalGrammar, "+p")
	AssertNotParsed(t, ast.VerticalGrammar, "#x")
	AssertNotParsed(t, ast.HorizontalGrammar, "a } b")
	AssertNotParsed(t, ast.HorizontalGrammar, `\p`)
	AssertNotParsed(t, ast.MathGrammar, "a^")
	AssertNotParsed(t, ast.MathGrammar, "{a")
}
