package tokenizer

import (
	"fmt"
	"iter"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// TokenIterator uses Go 1.24 iterator pattern
type TokenIterator iter.Seq2[Token, error]

// Tokenizer splits source text into character tokens
type Tokenizer struct {
	input   string
	options TokenizerOptions
}

// TokenizerOptions are options for the tokenizer
type TokenizerOptions struct {
	// Normalize applies Unicode NFC normalization before scanning.
	Normalize bool
}

// NewTokenizer creates a new Tokenizer
func NewTokenizer(input string, options ...TokenizerOptions) *Tokenizer {
	var opts TokenizerOptions
	if len(options) > 0 {
		opts = options[0]
	}

	if opts.Normalize {
		input = norm.NFC.String(input)
	}

	return &Tokenizer{
		input:   input,
		options: opts,
	}
}

// Input returns the text being scanned, after normalization.
func (t *Tokenizer) Input() string {
	return t.input
}

// Tokens returns an iterator of tokens. The last token is always EOF.
func (t *Tokenizer) Tokens() TokenIterator {
	return func(yield func(Token, error) bool) {
		offset := 0
		line := 1
		column := 1

		for offset < len(t.input) {
			r, size := utf8.DecodeRuneInString(t.input[offset:])
			if r == utf8.RuneError && size <= 1 {
				yield(Token{}, fmt.Errorf("%w at line %d, column %d", ErrInvalidUTF8, line, column))
				return
			}

			token := Token{
				Type:  classify(r),
				Value: t.input[offset : offset+size],
				Rune:  r,
				Position: Position{
					Line:   line,
					Column: column,
					Offset: offset,
				},
			}
			if !yield(token, nil) {
				return
			}

			offset += size
			if r == '\n' {
				line++
				column = 1
			} else {
				column++
			}
		}

		yield(Token{
			Type:     EOF,
			Position: Position{Line: line, Column: column, Offset: offset},
		}, nil)
	}
}

// AllTokens gets all tokens as a slice, EOF included
func (t *Tokenizer) AllTokens() ([]Token, error) {
	tokens := make([]Token, 0, len(t.input)+1)

	for token, err := range t.Tokens() {
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}

	return tokens, nil
}

// Tokenize is a shorthand for NewTokenizer(input, options...).AllTokens().
func Tokenize(input string, options ...TokenizerOptions) ([]Token, error) {
	return NewTokenizer(input, options...).AllTokens()
}

func classify(r rune) TokenType {
	switch {
	case r == '\n':
		return NEWLINE
	case r == ' ' || r == '\t' || r == '\r':
		return WHITESPACE
	case 'a' <= r && r <= 'z':
		return LOWER
	case 'A' <= r && r <= 'Z':
		return UPPER
	case '0' <= r && r <= '9':
		return DIGIT
	case r < utf8.RuneSelf:
		return SYMBOL
	default:
		return OTHER
	}
}
