package ast_test

import (
	"testing"

	"github.com/shibukawa/satyparse/ast"
	. "github.com/shibukawa/satyparse/testhelper"
)

func typeName(name string, start, end int) ast.Ranged[ast.TypeExpr] {
	return R[ast.TypeExpr](ast.TypeName{Name: R(name, start, end)}, start, end)
}

func TestTypeExpr(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected ast.TypeExpr
	}{
		{
			name: "function",
			text: "int -> int",
			expected: ast.FuncType{
				Param:  typeName("int", 1, 4),
				Result: typeName("int", 8, 11),
			},
		},
		{
			name: "optional parameter",
			text: "t?-> int",
			expected: ast.FuncType{
				Param:    typeName("t", 1, 2),
				Optional: true,
				Result:   typeName("int", 6, 9),
			},
		},
		{
			name: "product",
			text: "float * Hoge.t",
			expected: ast.ProductType{Elements: []ast.Ranged[ast.TypeExpr]{
				typeName("float", 1, 6),
				R[ast.TypeExpr](ast.TypeName{Module: Ptr(R("Hoge", 9, 13)), Name: R("t", 14, 15)}, 9, 15),
			}},
		},
		{
			name: "postfix applications nest",
			text: "'a option list",
			expected: ast.TypeApplication{
				Args: []ast.Ranged[ast.TypeExpr]{
					R[ast.TypeExpr](ast.TypeApplication{
						Args: []ast.Ranged[ast.TypeExpr]{R[ast.TypeExpr](ast.TypeParam("a"), 1, 3)},
						Name: R(ast.TypeName{Name: R("option", 4, 10)}, 4, 10),
					}, 1, 10),
				},
				Name: R(ast.TypeName{Name: R("list", 11, 15)}, 11, 15),
			},
		},
		{
			name: "several parameters",
			text: "'a 'b t",
			expected: ast.TypeApplication{
				Args: []ast.Ranged[ast.TypeExpr]{
					R[ast.TypeExpr](ast.TypeParam("a"), 1, 3),
					R[ast.TypeExpr](ast.TypeParam("b"), 4, 6),
				},
				Name: R(ast.TypeName{Name: R("t", 7, 8)}, 7, 8),
			},
		},
		{
			name: "parenthesised argument",
			text: "('a -> 'b) list",
			expected: ast.TypeApplication{
				Args: []ast.Ranged[ast.TypeExpr]{
					R[ast.TypeExpr](ast.FuncType{
						Param:  R[ast.TypeExpr](ast.TypeParam("a"), 2, 4),
						Result: R[ast.TypeExpr](ast.TypeParam("b"), 8, 10),
					}, 2, 10),
				},
				Name: R(ast.TypeName{Name: R("list", 12, 16)}, 12, 16),
			},
		},
		{
			name: "command",
			text: "[int] inline-cmd",
			expected: ast.CmdType{
				Args: []ast.Ranged[ast.TypeExpr]{typeName("int", 2, 5)},
				Kind: R("inline-cmd", 7, 17),
			},
		},
		{
			name: "record",
			text: "(| x : length |)",
			expected: ast.RecordType{Fields: []ast.Ranged[ast.RecordTypeField]{
				R(ast.RecordTypeField{Key: R("x", 4, 5), Type: typeName("length", 8, 14)}, 4, 14),
			}},
		},
		{
			name:     "empty record",
			text:     "(||)",
			expected: ast.RecordType{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			AssertParsed(t, ast.TypeExprGrammar, tt.text, tt.expected)
		})
	}
}

func TestTypeExprNotParsed(t *testing.T) {
	for _, text := range []string{"", "if", "' a", "int ->", "[int]", "(| x |)"} {
		AssertNotParsed(t, ast.TypeExprGrammar, text)
	}
}
