package ast_test

import (
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shibukawa/satyparse/ast"
	cmn "github.com/shibukawa/satyparse/parser/parsercommon"
	. "github.com/shibukawa/satyparse/testhelper"
	tok "github.com/shibukawa/satyparse/tokenizer"
)

func documentFixture(t *testing.T) string {
	return TrimIndent(t, `
		@stage: persistent
		@require: stdjabook
		@import: local

		let-block ctx +section title inner =
		  let s = read-inline ctx title in
		  '< +p{ #s; } >
		let-inline ctx \emph it = read-inline ctx {\textbf{#it;}}
		let f x = match x with
		  | Some(y) when y > 0 -> y
		  | _ -> 0
		in
		document (| title = {Test}; author = {Me} |) '<
		  +section{Intro}<
		    +p{
		      Hello, \emph{world}. ${x^2 + y_1} `+"`raw`"+`
		    }
		  >
		>
	`)
}

// checkRanges walks every Ranged value in v and checks that ranges are
// ordered and that nested ranges stay inside their parent.
func checkRanges(t *testing.T, v reflect.Value, parent *[2]ast.Location) {
	t.Helper()

	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		if !v.IsNil() {
			checkRanges(t, v.Elem(), parent)
		}
	case reflect.Slice:
		for i := range v.Len() {
			checkRanges(t, v.Index(i), parent)
		}
	case reflect.Struct:
		if !strings.HasPrefix(v.Type().Name(), "Ranged[") {
			for i := range v.NumField() {
				checkRanges(t, v.Field(i), parent)
			}
			return
		}
		start := v.FieldByName("Start").Interface().(ast.Location)
		end := v.FieldByName("End").Interface().(ast.Location)
		assert.False(t, end.Less(start), "%v ends before it starts", v.Type())
		if parent != nil {
			assert.False(t, start.Less(parent[0]), "%v starts outside its parent", v.Type())
			assert.False(t, parent[1].Less(end), "%v ends outside its parent", v.Type())
		}
		checkRanges(t, v.FieldByName("Body"), &[2]ast.Location{start, end})
	}
}

func TestRangesNest(t *testing.T) {
	prog, err := ast.ParseProgram(documentFixture(t))
	assert.NoError(t, err)

	assert.Equal(t, ast.StagePersistent, prog.Stage.Body)
	assert.Equal(t, 2, len(prog.Headers))
	assert.Equal(t, 3, len(prog.Preamble.Body.Statements))
	_, ok := prog.Body.Body.(ast.FunctionApplication)
	assert.True(t, ok)

	checkRanges(t, reflect.ValueOf(prog), nil)

	for _, text := range []string{
		"(1pt, 2pt)",
		"match x with | Some(y) -> y | _ -> 0",
		"f x ?:y ?* {a \\b{c} ${x_1}}",
		"(|rec with a = [1; 2]; b = '<+p{*a ** b}>|)",
	} {
		expr, err := ast.ExprGrammar.ParseRanged(text)
		assert.NoError(t, err, text)
		checkRanges(t, reflect.ValueOf(expr), nil)
	}
}

func TestParseIsDeterministic(t *testing.T) {
	src := documentFixture(t)
	expected, err := ast.ParseProgram(src)
	assert.NoError(t, err)

	results := make([]ast.Program, 8)
	errs := make([]error, len(results))
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = ast.ParseProgram(src)
		}()
	}
	wg.Wait()

	for i := range results {
		assert.NoError(t, errs[i])
		assert.Equal(t, expected, results[i])
	}
}

func TestLocationCompare(t *testing.T) {
	a := ast.Location{Row: 1, Col: 10}
	b := ast.Location{Row: 2, Col: 1}
	c := ast.Location{Row: 2, Col: 3}

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, c.Compare(b))
	assert.Equal(t, 0, b.Compare(b))
	assert.True(t, b.Less(c))
	assert.False(t, c.Less(c))
}

func span(rule cmn.Rule, text string, children ...*cmn.Span) *cmn.Span {
	return &cmn.Span{
		Rule:     rule,
		Start:    tok.Position{Line: 1, Column: 1},
		End:      tok.Position{Line: 1, Column: 1 + len(text), Offset: len(text)},
		Text:     text,
		Children: children,
	}
}

func TestLowerContractViolation(t *testing.T) {
	tests := []struct {
		name  string
		lower func() error
	}{
		{
			name: "wrong root rule",
			lower: func() error {
				_, err := ast.ExprGrammar.Lower(span(cmn.UNARY, "x"))
				return err
			},
		},
		{
			name: "nil span",
			lower: func() error {
				_, err := ast.LiteralGrammar.Lower(nil)
				return err
			},
		},
		{
			name: "unexpected child",
			lower: func() error {
				_, err := ast.ExprGrammar.Lower(span(cmn.EXPR, "x", span(cmn.HEADER, "x")))
				return err
			},
		},
		{
			name: "missing child",
			lower: func() error {
				_, err := ast.UnaryGrammar.Lower(span(cmn.UNARY, "x"))
				return err
			},
		},
		{
			name: "trailing child",
			lower: func() error {
				_, err := ast.UnaryGrammar.Lower(span(cmn.UNARY, "xy", span(cmn.VAR, "x"), span(cmn.VAR, "y")))
				return err
			},
		},
		{
			name: "int with trailing child",
			lower: func() error {
				_, err := ast.LiteralGrammar.Lower(span(cmn.LITERAL, "12",
					span(cmn.INT_CONST, "12", span(cmn.INT_DECIMAL_CONST, "1"), span(cmn.INT_DECIMAL_CONST, "2"))))
				return err
			},
		},
		{
			name: "single element tuple",
			lower: func() error {
				_, err := ast.TupleGrammar.Lower(span(cmn.TUPLE, "(x)", span(cmn.EXPR, "x", span(cmn.UNARY, "x", span(cmn.VAR, "x")))))
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.lower()
			assert.IsError(t, err, ast.ErrContractViolation)
			_, ok := ast.AsLoweringError(err)
			assert.True(t, ok)
		})
	}
}

func TestLowerHandBuiltSpan(t *testing.T) {
	expr, err := ast.ExprGrammar.LowerRanged(span(cmn.EXPR, "x", span(cmn.UNARY, "x", span(cmn.VAR, "x"))))
	assert.NoError(t, err)
	assert.Equal(t, varExpr("x", 1, 2), expr)
}

func TestLoweringErrorMessage(t *testing.T) {
	_, err := ast.LiteralGrammar.Parse("2147483648")
	assert.EqualError(t, err, `integer literal out of 32-bit range: 2147483648 in int_decimal_const at 1:1-1:11 ("2147483648")`)
}

func TestSyntaxErrorsAreNotLoweringErrors(t *testing.T) {
	_, err := ast.ExprGrammar.Parse("(1")
	assert.IsError(t, err, cmn.ErrSyntax)
	_, ok := ast.AsLoweringError(err)
	assert.False(t, ok)
}
