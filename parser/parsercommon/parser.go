package parsercommon

import (
	"errors"
	"slices"

	pc "github.com/shibukawa/parsercombinator"
	tok "github.com/shibukawa/satyparse/tokenizer"
)

var (
	// Space parses one blank or newline character.
	Space = CharType("space", tok.WHITESPACE, tok.NEWLINE)
	// Blank parses one blank character, newlines excluded.
	Blank = CharType("blank", tok.WHITESPACE)
	// Newline parses a line feed.
	Newline = CharType("newline", tok.NEWLINE)
	// Comment parses a % comment up to and including the line feed.
	Comment = comment()
	// AnyChar parses any single character.
	AnyChar = CharIf("any", func(rune) bool { return true })
	// Digit parses one of 0-9.
	Digit = CharType("digit", tok.DIGIT)
	// Lower parses one of a-z.
	Lower = CharType("lower", tok.LOWER)
	// Upper parses one of A-Z.
	Upper = CharType("upper", tok.UPPER)
	// IdentChar parses a character allowed after the first one of an identifier.
	IdentChar = CharIf("identChar", IsIdentChar)

	// SP consumes zero or more space/comment tokens.
	SP = pc.Drop(pc.ZeroOrMore("comment or space", pc.Or(Space, Comment)))
	// EOS matches end of input without consuming anything.
	EOS = eos()
)

// IsIdentChar reports whether r may continue an identifier.
func IsIdentChar(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9' || r == '-'
}

// Sp runs p after skipping spaces and comments.
func Sp(p pc.Parser[Entity]) pc.Parser[Entity] {
	return pc.Seq(SP, p)
}

// CharType parses one character of the given classes.
func CharType(typeName string, types ...tok.TokenType) pc.Parser[Entity] {
	return func(pctx *pc.ParseContext[Entity], tokens []pc.Token[Entity]) (int, []pc.Token[Entity], error) {
		if len(tokens) > 0 && slices.Contains(types, tokens[0].Val.Original.Type) {
			return 1, tokens[:1], nil
		}

		return 0, nil, pc.ErrNotMatch
	}
}

// CharIf parses one character accepted by f.
func CharIf(typeName string, f func(rune) bool) pc.Parser[Entity] {
	return func(pctx *pc.ParseContext[Entity], tokens []pc.Token[Entity]) (int, []pc.Token[Entity], error) {
		if len(tokens) > 0 && f(tokens[0].Val.Original.Rune) {
			return 1, tokens[:1], nil
		}

		return 0, nil, pc.ErrNotMatch
	}
}

// CharIn parses one character contained in chars.
func CharIn(typeName string, chars string) pc.Parser[Entity] {
	set := []rune(chars)
	return CharIf(typeName, func(r rune) bool { return slices.Contains(set, r) })
}

// Lit parses the exact string s.
func Lit(s string) pc.Parser[Entity] {
	runes := []rune(s)
	return func(pctx *pc.ParseContext[Entity], tokens []pc.Token[Entity]) (int, []pc.Token[Entity], error) {
		if len(tokens) < len(runes) {
			return 0, nil, pc.ErrNotMatch
		}
		for i, r := range runes {
			if tokens[i].Val.Original.Rune != r {
				return 0, nil, pc.ErrNotMatch
			}
		}

		return len(runes), tokens[:len(runes)], nil
	}
}

// Keyword parses word when it is not followed by an identifier character.
func Keyword(word string) pc.Parser[Entity] {
	lit := Lit(word)
	return func(pctx *pc.ParseContext[Entity], tokens []pc.Token[Entity]) (int, []pc.Token[Entity], error) {
		consumed, out, err := lit(pctx, tokens)
		if err != nil {
			return 0, nil, err
		}
		if consumed < len(tokens) && IsIdentChar(tokens[consumed].Val.Original.Rune) {
			return 0, nil, pc.ErrNotMatch
		}

		return consumed, out, nil
	}
}

// Choice tries the alternatives in order and commits to the first match.
func Choice(parsers ...pc.Parser[Entity]) pc.Parser[Entity] {
	return func(pctx *pc.ParseContext[Entity], tokens []pc.Token[Entity]) (int, []pc.Token[Entity], error) {
		for _, p := range parsers {
			consumed, out, err := p(pctx, tokens)
			if err == nil {
				return consumed, out, nil
			}
			if errors.Is(err, pc.ErrCritical) {
				return 0, nil, err
			}
		}

		return 0, nil, pc.ErrNotMatch
	}
}

// Not succeeds without consuming when p does not match.
func Not(p pc.Parser[Entity]) pc.Parser[Entity] {
	return func(pctx *pc.ParseContext[Entity], tokens []pc.Token[Entity]) (int, []pc.Token[Entity], error) {
		_, _, err := p(pctx, tokens)
		if err == nil {
			return 0, nil, pc.ErrNotMatch
		}
		if errors.Is(err, pc.ErrCritical) {
			return 0, nil, err
		}

		return 0, nil, nil
	}
}

// Peek succeeds without consuming when p matches.
func Peek(p pc.Parser[Entity]) pc.Parser[Entity] {
	return func(pctx *pc.ParseContext[Entity], tokens []pc.Token[Entity]) (int, []pc.Token[Entity], error) {
		if _, _, err := p(pctx, tokens); err != nil {
			return 0, nil, err
		}

		return 0, nil, nil
	}
}

// OneOrMore parses p at least once.
func OneOrMore(label string, p pc.Parser[Entity]) pc.Parser[Entity] {
	return pc.Seq(p, pc.ZeroOrMore(label, p))
}

// SpacedList parses zero or more p separated by spaces and comments. No
// space is consumed before the first or after the last element.
func SpacedList(label string, p pc.Parser[Entity]) pc.Parser[Entity] {
	return pc.Optional(pc.Seq(p, pc.ZeroOrMore(label, Sp(p))))
}

// SepBy parses p (sep p)* with an optional trailing sep, spaces allowed
// around separators. It matches the empty input as well.
func SepBy(label string, p, sep pc.Parser[Entity]) pc.Parser[Entity] {
	return pc.Optional(pc.Seq(
		p,
		pc.ZeroOrMore(label, pc.Seq(Sp(sep), Sp(p))),
		pc.Optional(Sp(sep)),
	))
}

func comment() pc.Parser[Entity] {
	return func(pctx *pc.ParseContext[Entity], tokens []pc.Token[Entity]) (int, []pc.Token[Entity], error) {
		if len(tokens) == 0 || tokens[0].Val.Original.Rune != '%' {
			return 0, nil, pc.ErrNotMatch
		}
		i := 1
		for i < len(tokens) {
			i++
			if tokens[i-1].Val.Original.Type == tok.NEWLINE {
				break
			}
		}

		return i, tokens[:i], nil
	}
}

func eos() pc.Parser[Entity] {
	return func(pctx *pc.ParseContext[Entity], tokens []pc.Token[Entity]) (int, []pc.Token[Entity], error) {
		if len(tokens) == 0 {
			return 0, nil, nil
		}

		return 0, nil, pc.ErrNotMatch
	}
}

// ToSrc concatenates the raw text of tokens.
func ToSrc(tokens []pc.Token[Entity]) string {
	src := make([]byte, 0, len(tokens))
	for _, t := range tokens {
		src = append(src, t.Raw...)
	}

	return string(src)
}
