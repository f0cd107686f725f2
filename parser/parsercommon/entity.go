package parsercommon

import (
	pc "github.com/shibukawa/parsercombinator"
	tok "github.com/shibukawa/satyparse/tokenizer"
)

// Entity is the value carried by parser tokens. Raw character tokens only have
// Original; tokens emitted by a rule carry the finished Node.
type Entity struct {
	Original tok.Token
	Node     *Span
}

// ToEntities converts tokenizer output into parser tokens. EOF is dropped.
func ToEntities(tokens []tok.Token) []pc.Token[Entity] {
	results := make([]pc.Token[Entity], 0, len(tokens))
	for _, token := range tokens {
		if token.Type == tok.EOF {
			continue
		}

		results = append(results, pc.Token[Entity]{
			Type: "raw",
			Pos: &pc.Pos{
				Line:  token.Position.Line,
				Col:   token.Position.Column,
				Index: token.Position.Offset,
			},
			Val: Entity{Original: token},
			Raw: token.Value,
		})
	}

	return results
}

func nodeToken(node *Span) pc.Token[Entity] {
	return pc.Token[Entity]{
		Type: "node",
		Pos: &pc.Pos{
			Line:  node.Start.Line,
			Col:   node.Start.Column,
			Index: node.Start.Offset,
		},
		Val: Entity{Node: node},
		Raw: node.Text,
	}
}

// Nodes collects the spans emitted by nested rules, in order.
func Nodes(tokens []pc.Token[Entity]) []*Span {
	return childNodes(tokens)
}

func childNodes(tokens []pc.Token[Entity]) []*Span {
	var nodes []*Span
	for _, t := range tokens {
		if t.Val.Node != nil {
			nodes = append(nodes, t.Val.Node)
		}
	}

	return nodes
}
