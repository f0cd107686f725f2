package parser

// Options controls producer behaviors.
type Options struct {
	// MaxDepth bounds rule nesting. Zero disables the guard.
	MaxDepth int
	// Trace enables parsercombinator tracing of every rule attempt.
	Trace bool
	// Normalize applies Unicode NFC normalization to the input first.
	Normalize bool
}

// DefaultOptions provides the default producer options.
var DefaultOptions = Options{
	MaxDepth: 2000,
}
