package parsercommon

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
	tok "github.com/shibukawa/satyparse/tokenizer"
)

func TestRuleNames(t *testing.T) {
	for _, r := range Rules() {
		name := r.String()
		assert.NotEqual(t, "", name)

		got, ok := RuleByName(name)
		assert.True(t, ok, name)
		assert.Equal(t, r, got)
	}

	assert.Equal(t, "header_stage", HEADER_STAGE.String())
	assert.Equal(t, "math_cmd_expr_arg", MATH_CMD_EXPR_ARG.String())

	_, ok := RuleByName("no_such_rule")
	assert.False(t, ok)
}

func TestSpanHelpers(t *testing.T) {
	leaf := &Span{Rule: VAR, Start: tok.Position{Line: 1, Column: 5, Offset: 4}, End: tok.Position{Line: 1, Column: 6, Offset: 5}, Text: "x"}
	root := &Span{
		Rule:     LET_STMT,
		Start:    tok.Position{Line: 1, Column: 1},
		End:      tok.Position{Line: 1, Column: 10, Offset: 9},
		Text:     "let x = 1",
		Children: []*Span{{Rule: PATTERN, Children: []*Span{leaf}}, {Rule: EXPR}},
	}

	assert.Equal(t, EXPR, root.Child(1).Rule)
	assert.Zero(t, root.Child(2))
	assert.Zero(t, root.Child(-1))
	assert.True(t, root.Child(0).Is(EXPR, PATTERN))
	assert.False(t, root.Child(5).Is(PATTERN))
	assert.Equal(t, "var(1:5-1:6)", leaf.String())

	var visited []Rule
	var depths []int
	root.Walk(func(depth int, s *Span) bool {
		visited = append(visited, s.Rule)
		depths = append(depths, depth)
		return s.Rule != PATTERN
	})
	assert.Equal(t, []Rule{LET_STMT, PATTERN, EXPR}, visited)
	assert.Equal(t, []int{0, 1, 1}, depths)
}

func TestProducerError(t *testing.T) {
	err := &ProducerError{
		Position: tok.Position{Line: 2, Column: 3, Offset: 8},
		Expected: []Rule{VAR, EOI},
		Err:      ErrSyntax,
	}
	assert.Equal(t, "syntax error at line 2, column 3: expected var, EOI", err.Error())
	assert.IsError(t, err, ErrSyntax)

	wrapped := errors.Join(errors.New("file.saty"), err)
	got, ok := AsProducerError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, 8, got.Position.Offset)
}

func TestParseError(t *testing.T) {
	var agg ParseError
	assert.NoError(t, agg.ErrOrNil())

	agg.Add(nil)
	agg.Add(&ProducerError{Position: tok.Position{Line: 1, Column: 1}, Err: ErrSyntax})
	assert.Equal(t, "syntax error at line 1, column 1", agg.Error())

	agg.Add(&ParseError{Errors: []error{ErrNestingTooDeep}})
	assert.Equal(t, 2, len(agg.Errors))
	assert.Contains(t, agg.Error(), "Multiple parse errors:")
	assert.IsError(t, agg.ErrOrNil(), ErrNestingTooDeep)

	got, ok := AsParseError(agg.ErrOrNil())
	assert.True(t, ok)
	assert.Equal(t, &agg, got)
}
