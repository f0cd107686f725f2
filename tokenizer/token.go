package tokenizer

import "errors"

// Sentinel errors
var (
	ErrInvalidUTF8 = errors.New("invalid UTF-8 sequence")
)

// TokenType represents the class of a single source character
type TokenType int

const (
	EOF        TokenType = iota
	WHITESPACE           // space, tab, carriage return
	NEWLINE              // \n
	LOWER                // a-z
	UPPER                // A-Z
	DIGIT                // 0-9
	SYMBOL               // ASCII punctuation
	OTHER                // non-ASCII characters
)

// String returns the string representation of TokenType
func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case WHITESPACE:
		return "WHITESPACE"
	case NEWLINE:
		return "NEWLINE"
	case LOWER:
		return "LOWER"
	case UPPER:
		return "UPPER"
	case DIGIT:
		return "DIGIT"
	case SYMBOL:
		return "SYMBOL"
	case OTHER:
		return "OTHER"
	default:
		return "UNKNOWN"
	}
}

// Position represents a position in the source code.
// Line and Column are 1-based; Column counts runes. Offset is a byte offset.
type Position struct {
	Line   int `yaml:"line" msgpack:"line"`
	Column int `yaml:"column" msgpack:"column"`
	Offset int `yaml:"offset" msgpack:"offset"`
}

// Token is one source character
type Token struct {
	Type     TokenType
	Value    string
	Rune     rune
	Position Position
}

// String returns the string representation of Token
func (t Token) String() string {
	return t.Type.String() + ": " + t.Value
}
