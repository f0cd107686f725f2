package inspect

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/shibukawa/satyparse/ast"
	cmn "github.com/shibukawa/satyparse/parser/parsercommon"
)

// RenderError formats err with the offending source line and a caret marker:
//
//	syntax error at line 2, column 5: expected expr
//	 2 | let x = in x
//	   |         ^
//
// Errors without a source position are returned as their message only.
func RenderError(src string, err error) string {
	if err == nil {
		return ""
	}

	if perr, ok := cmn.AsProducerError(err); ok {
		return withExcerpt(err, excerpt(src, perr.Position.Line, perr.Position.Column, perr.Position.Column+1))
	}

	if lerr, ok := ast.AsLoweringError(err); ok {
		end := lerr.End.Col
		if lerr.End.Row != lerr.Start.Row {
			end = -1
		}
		return withExcerpt(err, excerpt(src, lerr.Start.Row, lerr.Start.Col, end))
	}

	return err.Error()
}

func withExcerpt(err error, ex string) string {
	if ex == "" {
		return err.Error()
	}

	return err.Error() + "\n" + ex
}

// excerpt renders line row of src and marks columns [start, end). A negative
// end marks up to the end of the line.
func excerpt(src string, row, start, end int) string {
	lines := strings.Split(src, "\n")
	if row < 1 || row > len(lines) {
		return ""
	}
	line := []rune(strings.TrimRight(lines[row-1], "\r"))

	if end < 0 || end > len(line)+1 {
		end = len(line) + 1
	}
	start = min(max(start, 1), len(line)+1)
	end = max(end, start+1)

	num := strconv.Itoa(row)
	gutter := strings.Repeat(" ", len(num))

	var marker strings.Builder
	for i := 0; i < start-1; i++ {
		if line[i] == '\t' {
			marker.WriteByte('\t')
			continue
		}
		marker.WriteString(strings.Repeat(" ", runewidth.RuneWidth(line[i])))
	}
	for i := start - 1; i < end-1; i++ {
		w := 1
		if i < len(line) {
			w = max(runewidth.RuneWidth(line[i]), 1)
		}
		marker.WriteString(strings.Repeat("^", w))
	}

	return fmt.Sprintf(" %s | %s\n %s | %s", num, string(line), gutter, marker.String())
}
