package ast_test

import (
	"github.com/shibukawa/satyparse/ast"
	. "github.com/shibukawa/satyparse/testhelper"
)

func unaryExprAt(u ast.Unary, row, start, end int) ast.Ranged[ast.Expr] {
	return RR[ast.Expr](ast.UnaryExpr{Unary: RR(u, row, start, row, end)}, row, start, row, end)
}

func unaryExpr(u ast.Unary, start, end int) ast.Ranged[ast.Expr] {
	return unaryExprAt(u, 1, start, end)
}

func intExpr(v int32, start, end int) ast.Ranged[ast.Expr] {
	return unaryExpr(ast.LiteralUnary{Literal: ast.IntLiteral(v)}, start, end)
}

func varExpr(name string, start, end int) ast.Ranged[ast.Expr] {
	return unaryExpr(ast.Variable(name), start, end)
}

func text(s string, start, end int) ast.Ranged[ast.HorizontalToken] {
	return R[ast.HorizontalToken](ast.Text(s), start, end)
}

func mathChar(c string, start, end int) ast.Ranged[ast.MathGroup] {
	return R[ast.MathGroup](ast.MathUnaryGroup{Unary: ast.MathChar(c)}, start, end)
}
