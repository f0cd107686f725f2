package inspect

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	cmn "github.com/shibukawa/satyparse/parser/parsercommon"
	tok "github.com/shibukawa/satyparse/tokenizer"
	"github.com/vmihailenco/msgpack/v5"
)

// Format selects how trees and summaries are written.
type Format string

const (
	FormatText    Format = "text"
	FormatYAML    Format = "yaml"
	FormatMsgpack Format = "msgpack"
	FormatCSV     Format = "csv"
)

// ParseFormat validates a format name given on the command line or in the
// config file.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatYAML, FormatMsgpack, FormatCSV:
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// TreeNode is the serializable form of a concrete tree. Text is kept on
// leaves only.
type TreeNode struct {
	Rule     string       `yaml:"rule" msgpack:"rule"`
	Start    tok.Position `yaml:"start" msgpack:"start"`
	End      tok.Position `yaml:"end" msgpack:"end"`
	Text     string       `yaml:"text,omitempty" msgpack:"text,omitempty"`
	Children []TreeNode   `yaml:"children,omitempty" msgpack:"children,omitempty"`
}

// NewTreeNode converts the tree rooted at span.
func NewTreeNode(span *cmn.Span) TreeNode {
	node := TreeNode{
		Rule:  span.Rule.String(),
		Start: span.Start,
		End:   span.End,
	}
	if len(span.Children) == 0 {
		node.Text = span.Text
	}
	for _, c := range span.Children {
		node.Children = append(node.Children, NewTreeNode(c))
	}

	return node
}

// WriteTree writes the tree rooted at span in the given format.
func WriteTree(w io.Writer, span *cmn.Span, format Format) error {
	switch format {
	case FormatText:
		return writeTreeText(w, span)
	case FormatYAML:
		b, err := yaml.Marshal(NewTreeNode(span))
		if err != nil {
			return fmt.Errorf("marshal tree: %w", err)
		}
		_, err = w.Write(b)
		return err
	case FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(NewTreeNode(span))
	}

	return fmt.Errorf("%w for trees: %q", ErrUnknownFormat, format)
}

// ReadTree decodes a tree written by WriteTree in msgpack format.
func ReadTree(r io.Reader) (TreeNode, error) {
	var node TreeNode
	if err := msgpack.NewDecoder(r).Decode(&node); err != nil {
		return TreeNode{}, fmt.Errorf("decode tree: %w", err)
	}

	return node, nil
}

// writeTreeText writes one line per span, indented by depth:
//
//	expr 1:1-1:6
//	  unary 1:1-1:2
//	    var 1:1-1:2 "a"
func writeTreeText(w io.Writer, span *cmn.Span) error {
	var err error
	span.Walk(func(depth int, s *cmn.Span) bool {
		if err != nil {
			return false
		}
		line := fmt.Sprintf("%s%s %d:%d-%d:%d", strings.Repeat("  ", depth), s.Rule, s.Start.Line, s.Start.Column, s.End.Line, s.End.Column)
		if len(s.Children) == 0 {
			line += fmt.Sprintf(" %q", s.Text)
		}
		_, err = fmt.Fprintln(w, line)

		return true
	})

	return err
}

// WriteSummary writes an inspect result in the given format.
func WriteSummary(w io.Writer, res InspectResult, format Format) error {
	switch format {
	case FormatText:
		return writeSummaryText(w, res)
	case FormatYAML:
		b, err := yaml.Marshal(res)
		if err != nil {
			return fmt.Errorf("marshal summary: %w", err)
		}
		_, err = w.Write(b)
		return err
	case FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(res)
	case FormatCSV:
		b, err := RulesCSV(res, true)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func writeSummaryText(w io.Writer, res InspectResult) error {
	width := 0
	for _, r := range res.Rules {
		width = max(width, len(r.Rule))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "rule: %s\nspans: %d\nmax depth: %d\nlowered: %t\n", res.Rule, res.Spans, res.MaxDepth, res.Lowered)
	for _, r := range res.Rules {
		fmt.Fprintf(&sb, "  %-*s %d\n", width, r.Rule, r.Count)
	}
	for _, n := range res.Notes {
		fmt.Fprintf(&sb, "note: %s\n", n)
	}
	_, err := io.WriteString(w, sb.String())

	return err
}
