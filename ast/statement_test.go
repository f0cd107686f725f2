package ast_test

import (
	"testing"

	"github.com/shibukawa/satyparse/ast"
	. "github.com/shibukawa/satyparse/testhelper"
)

func TestStatement(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected ast.Statement
	}{
		{
			name: "let with parameters",
			text: "let f x y = x",
			expected: ast.Let{
				Pattern: R[ast.Pattern](ast.VarPattern("f"), 5, 6),
				Args: []ast.Ranged[ast.Pattern]{
					R[ast.Pattern](ast.VarPattern("x"), 7, 8),
					R[ast.Pattern](ast.VarPattern("y"), 9, 10),
				},
				Body: varExpr("x", 13, 14),
			},
		},
		{
			name: "let destructuring",
			text: "let (a, b) = p",
			expected: ast.Let{
				Pattern: R[ast.Pattern](ast.TuplePattern{Elements: []ast.Ranged[ast.Pattern]{
					R[ast.Pattern](ast.VarPattern("a"), 6, 7),
					R[ast.Pattern](ast.VarPattern("b"), 9, 10),
				}}, 5, 11),
				Body: varExpr("p", 14, 15),
			},
		},
		{
			name: "let-rec",
			text: "let-rec f x = g x and g y = f y",
			expected: ast.LetRec{Bindings: []ast.Ranged[ast.Let]{
				R(ast.Let{
					Pattern: R[ast.Pattern](ast.VarPattern("f"), 9, 10),
					Args:    []ast.Ranged[ast.Pattern]{R[ast.Pattern](ast.VarPattern("x"), 11, 12)},
					Body: R[ast.Expr](ast.FunctionApplication{
						Func: R[ast.Unary](ast.Variable("g"), 15, 16),
						Args: []ast.Ranged[ast.Unary]{R[ast.Unary](ast.Variable("x"), 17, 18)},
					}, 15, 18),
				}, 9, 18),
				R(ast.Let{
					Pattern: R[ast.Pattern](ast.VarPattern("g"), 23, 24),
					Args:    []ast.Ranged[ast.Pattern]{R[ast.Pattern](ast.VarPattern("y"), 25, 26)},
					Body: R[ast.Expr](ast.FunctionApplication{
						Func: R[ast.Unary](ast.Variable("f"), 29, 30),
						Args: []ast.Ranged[ast.Unary]{R[ast.Unary](ast.Variable("y"), 31, 32)},
					}, 29, 32),
				}, 23, 32),
			}},
		},
		{
			name:     "let-mutable",
			text:     "let-mutable n <- 0",
			expected: ast.LetMutable{Name: R("n", 13, 14), Init: intExpr(0, 18, 19)},
		},
		{
			name: "let-inline",
			text: `let-inline ctx \emph it = it`,
			expected: ast.LetInline{
				Context: Ptr(R("ctx", 12, 15)),
				Name:    R(`\emph`, 16, 21),
				Args:    []ast.Ranged[ast.Pattern]{R[ast.Pattern](ast.VarPattern("it"), 22, 24)},
				Body:    varExpr("it", 27, 29),
			},
		},
		{
			name: "let-inline without context",
			text: `let-inline \x = 1`,
			expected: ast.LetInline{
				Name: R(`\x`, 12, 14),
				Body: intExpr(1, 17, 18),
			},
		},
		{
			name: "let-block",
			text: "let-block ctx +p x = block-nil",
			expected: ast.LetBlock{
				Context: Ptr(R("ctx", 11, 14)),
				Name:    R("+p", 15, 17),
				Args:    []ast.Ranged[ast.Pattern]{R[ast.Pattern](ast.VarPattern("x"), 18, 19)},
				Body:    varExpr("block-nil", 22, 31),
			},
		},
		{
			name: "let-math",
			text: `let-math \abs x = x`,
			expected: ast.LetMath{
				Name: R(`\abs`, 10, 14),
				Args: []ast.Ranged[ast.Pattern]{R[ast.Pattern](ast.VarPattern("x"), 15, 16)},
				Body: varExpr("x", 19, 20),
			},
		},
		{
			name:     "open",
			text:     "open Lib",
			expected: ast.Open{Module: R("Lib", 6, 9)},
		},
		{
			name: "variant type",
			text: "type t = A | B of int",
			expected: ast.TypeDecl{Bindings: []ast.Ranged[ast.TypeBinding]{
				R(ast.TypeBinding{
					Name: R("t", 6, 7),
					Variants: []ast.Ranged[ast.VariantDecl]{
						R(ast.VariantDecl{Name: R("A", 10, 11)}, 10, 11),
						R(ast.VariantDecl{
							Name: R("B", 14, 15),
							Arg:  Ptr(R[ast.TypeExpr](ast.TypeName{Name: R("int", 19, 22)}, 19, 22)),
						}, 14, 22),
					},
				}, 6, 22),
			}},
		},
		{
			name: "type alias with parameter",
			text: "type 'a box = 'a list",
			expected: ast.TypeDecl{Bindings: []ast.Ranged[ast.TypeBinding]{
				R(ast.TypeBinding{
					Params: []ast.Ranged[ast.TypeParam]{R(ast.TypeParam("a"), 6, 8)},
					Name:   R("box", 9, 12),
					Alias: Ptr(R[ast.TypeExpr](ast.TypeApplication{
						Args: []ast.Ranged[ast.TypeExpr]{R[ast.TypeExpr](ast.TypeParam("a"), 15, 17)},
						Name: R(ast.TypeName{Name: R("list", 18, 22)}, 18, 22),
					}, 15, 22)),
				}, 6, 22),
			}},
		},
		{
			name: "module with signature",
			text: "module M : sig val x : int end = struct let x = 1 end",
			expected: ast.Module{
				Name: R("M", 8, 9),
				Sig: Ptr(R(ast.Signature{Items: []ast.Ranged[ast.SigItem]{
					R[ast.SigItem](ast.SigVal{
						Name: R("x", 20, 21),
						Type: R[ast.TypeExpr](ast.TypeName{Name: R("int", 24, 27)}, 24, 27),
					}, 16, 27),
				}}, 12, 31)),
				Body: []ast.Ranged[ast.Statement]{
					R[ast.Statement](ast.Let{
						Pattern: R[ast.Pattern](ast.VarPattern("x"), 45, 46),
						Body:    intExpr(1, 49, 50),
					}, 41, 50),
				},
			},
		},
		{
			name: "signature type and direct command",
			text: "module M : sig type 'a t constraint 'a :: (||) direct +p : [] block-cmd end = struct end",
			expected: ast.Module{
				Name: R("M", 8, 9),
				Sig: Ptr(R(ast.Signature{Items: []ast.Ranged[ast.SigItem]{
					R[ast.SigItem](ast.SigType{
						Params: []ast.Ranged[ast.TypeParam]{R(ast.TypeParam("a"), 21, 23)},
						Name:   R("t", 24, 25),
						Constraints: []ast.Ranged[ast.Constraint]{
							R(ast.Constraint{
								Param:  R(ast.TypeParam("a"), 37, 39),
								Record: R(ast.RecordType{}, 43, 47),
							}, 26, 47),
						},
					}, 16, 47),
					R[ast.SigItem](ast.SigDirect{
						Name: R("+p", 55, 57),
						Type: R[ast.TypeExpr](ast.CmdType{Kind: R("block-cmd", 63, 72)}, 60, 72),
					}, 48, 72),
				}}, 12, 76)),
			},
		},
		{
			name: "operator in signature",
			text: "module M : sig val (+++) : int end = struct end",
			expected: ast.Module{
				Name: R("M", 8, 9),
				Sig: Ptr(R(ast.Signature{Items: []ast.Ranged[ast.SigItem]{
					R[ast.SigItem](ast.SigVal{
						Name: R("+++", 21, 24),
						Type: R[ast.TypeExpr](ast.TypeName{Name: R("int", 28, 31)}, 28, 31),
					}, 16, 31),
				}}, 12, 35)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			AssertParsed(t, ast.StatementGrammar, tt.text, tt.expected)
		})
	}
}

func TestStatementNotParsed(t *testing.T) {
	for _, text := range []string{
		"let = 1",
		"let-mutable n = 0",
		"open lib",
		"let x = 1 in x",
		"let-block +p",
		"type T = int",
		"module m = struct end",
		"module M : sig val x end = struct end",
	} {
		AssertNotParsed(t, ast.StatementGrammar, text)
	}
}
