package inspect

import (
	"io"

	"github.com/alecthomas/repr"
)

// DumpAST pretty-prints a lowered node. Empty fields are omitted.
func DumpAST(w io.Writer, v any) {
	repr.New(w, repr.Indent("  "), repr.OmitEmpty(true)).Println(v)
}

// ASTString is DumpAST to a string.
func ASTString(v any) string {
	return repr.String(v, repr.Indent("  "), repr.OmitEmpty(true))
}
