package tokenizer

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestTokenIterator(t *testing.T) {
	tokenizer := NewTokenizer("+p{a1}\n")

	expectedTypes := []TokenType{
		SYMBOL, LOWER, SYMBOL, LOWER, DIGIT, SYMBOL, NEWLINE, EOF,
	}

	var actualTypes []TokenType
	for token, err := range tokenizer.Tokens() {
		assert.NoError(t, err)
		actualTypes = append(actualTypes, token.Type)
	}

	assert.Equal(t, expectedTypes, actualTypes)
}

func TestIteratorEarlyTermination(t *testing.T) {
	tokenizer := NewTokenizer("let x = 1 in x")

	count := 0
	for _, err := range tokenizer.Tokens() {
		assert.NoError(t, err)

		count++
		if count >= 5 {
			break
		}
	}

	assert.Equal(t, 5, count)
}

func TestPositions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		index int
		want  Position
	}{
		{
			name:  "first character",
			input: "abc",
			index: 0,
			want:  Position{Line: 1, Column: 1, Offset: 0},
		},
		{
			name:  "after newline",
			input: "a\nbc",
			index: 3,
			want:  Position{Line: 2, Column: 2, Offset: 3},
		},
		{
			name:  "columns count runes",
			input: "あいう",
			index: 2,
			want:  Position{Line: 1, Column: 3, Offset: 6},
		},
		{
			name:  "eof",
			input: "ab\n",
			index: 3,
			want:  Position{Line: 2, Column: 1, Offset: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, tokens[tt.index].Position)
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want TokenType
	}{
		{name: "space", r: ' ', want: WHITESPACE},
		{name: "tab", r: '\t', want: WHITESPACE},
		{name: "newline", r: '\n', want: NEWLINE},
		{name: "lower", r: 'q', want: LOWER},
		{name: "upper", r: 'Q', want: UPPER},
		{name: "digit", r: '7', want: DIGIT},
		{name: "backtick", r: '`', want: SYMBOL},
		{name: "kana", r: 'あ', want: OTHER},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.r))
		})
	}
}

func TestNormalize(t *testing.T) {
	// "が" written as か + combining voiced sound mark
	decomposed := "が"

	tokens, err := Tokenize(decomposed)
	assert.NoError(t, err)
	assert.Equal(t, 3, len(tokens))

	tokens, err = Tokenize(decomposed, TokenizerOptions{Normalize: true})
	assert.NoError(t, err)
	assert.Equal(t, 2, len(tokens))
	assert.Equal(t, "が", tokens[0].Value)
}

func TestInvalidUTF8(t *testing.T) {
	_, err := Tokenize("ab\xffcd")
	assert.IsError(t, err, ErrInvalidUTF8)
}
