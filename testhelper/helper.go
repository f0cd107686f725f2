package testhelper

import (
	"regexp"
	"strings"
	"testing"
)

var (
	indentPattern = regexp.MustCompile(`^[ \t]*`)
	leadingTabs   = regexp.MustCompile(`^(\t+)`)
)

func replaceTab(match string) string {
	return strings.Repeat("    ", strings.Count(match, "\t"))
}

// TrimIndent strips the indentation of the first content line from every
// line of a raw string fixture. The first line, which follows the opening
// backquote, is dropped.
func TrimIndent(t *testing.T, src string) string {
	t.Helper()

	lines := strings.Split(src, "\n")
	if len(lines) < 2 {
		return src
	}
	indent := indentPattern.FindString(lines[1])

	for i, line := range lines {
		line = strings.TrimPrefix(line, indent)
		lines[i] = leadingTabs.ReplaceAllStringFunc(line, replaceTab)
	}

	return strings.Join(lines[1:], "\n")
}
