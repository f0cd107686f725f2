package inspect

import (
	"github.com/shibukawa/satyparse/parser"
	cmn "github.com/shibukawa/satyparse/parser/parsercommon"
)

// InspectOptions controls inspect behavior.
type InspectOptions struct {
	Rule   cmn.Rule       // start rule; the zero value means PROGRAM
	Parser parser.Options // producer options; the zero value means parser.DefaultOptions
	Strict bool           // if true, a lowering failure is returned as an error
}

// RuleCount is one row of the rule histogram.
type RuleCount struct {
	Rule  string `yaml:"rule" msgpack:"rule"`
	Count int    `yaml:"count" msgpack:"count"`
}

// InspectResult is the serializable summary of one concrete tree.
type InspectResult struct {
	Rule     string      `yaml:"rule" msgpack:"rule"`
	Spans    int         `yaml:"spans" msgpack:"spans"`
	MaxDepth int         `yaml:"max_depth" msgpack:"max_depth"`
	Lowered  bool        `yaml:"lowered" msgpack:"lowered"`
	Rules    []RuleCount `yaml:"rules" msgpack:"rules"`
	Notes    []string    `yaml:"notes,omitempty" msgpack:"notes,omitempty"`
}
