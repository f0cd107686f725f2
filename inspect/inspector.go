package inspect

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/shibukawa/satyparse/ast"
	"github.com/shibukawa/satyparse/parser"
	cmn "github.com/shibukawa/satyparse/parser/parsercommon"
)

// Inspect produces the source read from r and returns a summarized view of
// its concrete tree together with the tree itself.
//
// The tree is lowered as well when the start rule has an AST node type. A
// lowering failure becomes a note unless opt.Strict is set.
func Inspect(r io.Reader, opt InspectOptions) (InspectResult, *cmn.Span, error) {
	var res InspectResult

	b, err := io.ReadAll(r)
	if err != nil {
		return res, nil, fmt.Errorf("read input: %w", err)
	}

	rule := opt.Rule
	if rule == cmn.EOI {
		rule = cmn.PROGRAM
	}

	popts := opt.Parser
	if popts == (parser.Options{}) {
		popts = parser.DefaultOptions
	}

	span, err := parser.Produce(rule, string(b), popts)
	if err != nil {
		return res, nil, err
	}

	res = Summarize(span)

	switch _, err := Lower(span); {
	case err == nil:
		res.Lowered = true
	case errors.Is(err, ErrNoLowering):
		res.Notes = append(res.Notes, fmt.Sprintf("%s has no AST lowering", rule))
	case opt.Strict:
		return res, span, err
	default:
		res.Notes = append(res.Notes, fmt.Sprintf("lowering failed: %v", err))
	}

	return res, span, nil
}

// Summarize counts the spans of the tree rooted at span.
func Summarize(span *cmn.Span) InspectResult {
	res := InspectResult{Rule: span.Rule.String()}
	counts := map[cmn.Rule]int{}

	span.Walk(func(depth int, s *cmn.Span) bool {
		res.Spans++
		res.MaxDepth = max(res.MaxDepth, depth)
		counts[s.Rule]++

		return true
	})

	for rule, count := range counts {
		res.Rules = append(res.Rules, RuleCount{Rule: rule.String(), Count: count})
	}

	slices.SortFunc(res.Rules, func(a, b RuleCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}

		return cmp.Compare(a.Rule, b.Rule)
	})

	return res
}

// Lower lowers span with the grammar registered for its rule and returns the
// AST node.
func Lower(span *cmn.Span) (any, error) {
	switch span.Rule {
	case cmn.PROGRAM:
		return ast.ProgramGrammar.Lower(span)
	case cmn.HEADER_STAGE:
		return ast.StageGrammar.Lower(span)
	case cmn.HEADER:
		return ast.HeaderGrammar.Lower(span)
	case cmn.PREAMBLE:
		return ast.PreambleGrammar.Lower(span)
	case cmn.STATEMENT:
		return ast.StatementGrammar.Lower(span)
	case cmn.LITERAL:
		return ast.LiteralGrammar.Lower(span)
	case cmn.EXPR:
		return ast.ExprGrammar.Lower(span)
	case cmn.UNARY:
		return ast.UnaryGrammar.Lower(span)
	case cmn.RECORD:
		return ast.RecordGrammar.Lower(span)
	case cmn.LIST:
		return ast.ListGrammar.Lower(span)
	case cmn.TUPLE:
		return ast.TupleGrammar.Lower(span)
	case cmn.MATCH_PTN:
		return ast.PatternGrammar.Lower(span)
	case cmn.TYPE_EXPR:
		return ast.TypeExprGrammar.Lower(span)
	case cmn.VERTICAL_MODE:
		return ast.VerticalGrammar.Lower(span)
	case cmn.HORIZONTAL_MODE:
		return ast.HorizontalGrammar.Lower(span)
	case cmn.MATH_MODE:
		return ast.MathGrammar.Lower(span)
	}

	return nil, fmt.Errorf("%w: %s", ErrNoLowering, span.Rule)
}
