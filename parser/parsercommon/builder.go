package parsercommon

import (
	"errors"
	"slices"

	pc "github.com/shibukawa/parsercombinator"
	tok "github.com/shibukawa/satyparse/tokenizer"
)

type memoKey struct {
	rule   Rule
	offset int
}

type memoEntry struct {
	consumed int
	node     *Span // nil records a failed attempt
}

// Builder holds the state of one produce call: the packrat memo, the nesting
// guard and the furthest failure seen so far. It must not be shared between
// inputs.
type Builder struct {
	src      string
	eof      tok.Position
	maxDepth int

	depth   int
	tooDeep bool
	deepAt  tok.Position

	memo map[memoKey]memoEntry

	farthest tok.Position
	expected []Rule
	failSeq  int
}

// NewBuilder creates a Builder for src. eof is the position just past the
// last character. A maxDepth of zero disables the nesting guard.
func NewBuilder(src string, eof tok.Position, maxDepth int) *Builder {
	return &Builder{
		src:      src,
		eof:      eof,
		maxDepth: maxDepth,
		memo:     make(map[memoKey]memoEntry),
		farthest: tok.Position{Offset: -1},
	}
}

// Position returns the position of tokens[i], or the end of input when i is
// past the slice.
func (b *Builder) Position(tokens []pc.Token[Entity], i int) tok.Position {
	if i < len(tokens) {
		return tokens[i].Val.Original.Position
	}

	return b.eof
}

// Rule wraps p so that a successful match is emitted as one Span tagged r,
// holding the spans emitted inside p as its children. Results are memoized
// per start offset.
func (b *Builder) Rule(r Rule, p pc.Parser[Entity]) pc.Parser[Entity] {
	return pc.Trace(r.String(), func(pctx *pc.ParseContext[Entity], tokens []pc.Token[Entity]) (int, []pc.Token[Entity], error) {
		if b.tooDeep {
			return 0, nil, pc.ErrNotMatch
		}

		start := b.Position(tokens, 0)
		key := memoKey{rule: r, offset: start.Offset}
		if m, ok := b.memo[key]; ok {
			if m.node == nil {
				return 0, nil, pc.ErrNotMatch
			}
			return m.consumed, []pc.Token[Entity]{nodeToken(m.node)}, nil
		}

		if b.maxDepth > 0 && b.depth >= b.maxDepth {
			b.tooDeep = true
			b.deepAt = start
			return 0, nil, pc.ErrNotMatch
		}

		mark := b.failSeq
		b.depth++
		consumed, out, err := p(pctx, tokens)
		b.depth--

		if err != nil {
			if errors.Is(err, pc.ErrCritical) {
				return 0, nil, err
			}
			if b.tooDeep {
				return 0, nil, pc.ErrNotMatch
			}
			b.memo[key] = memoEntry{}
			// report the innermost rules only
			if b.failSeq == mark {
				b.fail(start, r)
			}
			return 0, nil, pc.ErrNotMatch
		}

		node := b.Span(r, start, b.Position(tokens, consumed), childNodes(out))
		b.memo[key] = memoEntry{consumed: consumed, node: node}

		return consumed, []pc.Token[Entity]{nodeToken(node)}, nil
	})
}

// Span creates a node directly. It is used by scanners whose extent is not
// expressible with combinators.
func (b *Builder) Span(r Rule, start, end tok.Position, children []*Span) *Span {
	return &Span{
		Rule:     r,
		Start:    start,
		End:      end,
		Text:     b.src[start.Offset:end.Offset],
		Children: children,
	}
}

// Emit wraps a node created with Span as a parser output token.
func Emit(node *Span) pc.Token[Entity] {
	return nodeToken(node)
}

func (b *Builder) fail(pos tok.Position, r Rule) {
	switch {
	case pos.Offset > b.farthest.Offset:
		b.farthest = pos
		b.expected = append(b.expected[:0], r)
	case pos.Offset == b.farthest.Offset && !slices.Contains(b.expected, r):
		b.expected = append(b.expected, r)
	default:
		return
	}
	b.failSeq++
}

// Failure returns the furthest failure position and the rules expected there.
// ok is false when no rule has failed.
func (b *Builder) Failure() (pos tok.Position, expected []Rule, ok bool) {
	if b.farthest.Offset < 0 {
		return tok.Position{}, nil, false
	}

	return b.farthest, slices.Clone(b.expected), true
}

// TooDeep reports whether the nesting guard aborted the parse, and where.
func (b *Builder) TooDeep() (tok.Position, bool) {
	return b.deepAt, b.tooDeep
}
