package parser

import (
	"errors"
	"fmt"

	pc "github.com/shibukawa/parsercombinator"
	cmn "github.com/shibukawa/satyparse/parser/parsercommon"
	"github.com/shibukawa/satyparse/tokenizer"
)

// Sentinel errors for parser operations
var (
	ErrUnknownRule = errors.New("rule cannot be used as a start rule")
)

// Re-export common types for user convenience
type (
	Rule          = cmn.Rule
	Span          = cmn.Span
	ProducerError = cmn.ProducerError
)

// Produce matches text against rule and returns the concrete tree rooted at
// a span tagged rule. The whole input must be consumed; trailing spaces and
// comments are allowed. Syntax errors are returned as *ProducerError.
func Produce(rule Rule, text string, options ...Options) (*Span, error) {
	opts := DefaultOptions
	if len(options) > 0 {
		opts = options[0]
	}

	tz := tokenizer.NewTokenizer(text, tokenizer.TokenizerOptions{Normalize: opts.Normalize})
	tokens, err := tz.AllTokens()
	if err != nil {
		return nil, &ProducerError{Err: fmt.Errorf("%w: %w", cmn.ErrSyntax, err)}
	}

	b := cmn.NewBuilder(tz.Input(), tokens[len(tokens)-1].Position, opts.MaxDepth)
	g := newGrammar(b)

	start, ok := g.lookup(rule)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRule, rule)
	}

	pctx := pc.NewParseContext[cmn.Entity]()
	pctx.TraceEnable = opts.Trace

	entities := cmn.ToEntities(tokens)
	consumed, parsed, err := pc.Seq(start, cmn.SP)(pctx, entities)

	if pos, deep := b.TooDeep(); deep {
		return nil, &ProducerError{Position: pos, Err: cmn.ErrNestingTooDeep}
	}
	if err != nil {
		if errors.Is(err, pc.ErrCritical) {
			return nil, err
		}
		return nil, syntaxError(b, nil)
	}
	if consumed < len(entities) {
		stop := b.Position(entities, consumed)
		return nil, syntaxError(b, &stop)
	}
	if len(parsed) == 0 || parsed[0].Val.Node == nil {
		return nil, syntaxError(b, nil)
	}

	return parsed[0].Val.Node, nil
}

// syntaxError reports the furthest failure. stop is where a successful
// start rule left off; input remaining there means end of input was expected.
func syntaxError(b *cmn.Builder, stop *tokenizer.Position) *ProducerError {
	pos, expected, failed := b.Failure()

	if stop != nil && (!failed || stop.Offset > pos.Offset) {
		return &ProducerError{Position: *stop, Expected: []Rule{cmn.EOI}, Err: cmn.ErrSyntax}
	}
	if stop != nil && stop.Offset == pos.Offset {
		expected = append(expected, cmn.EOI)
	}

	return &ProducerError{Position: pos, Expected: expected, Err: cmn.ErrSyntax}
}
