package main

import (
	"strings"

	"github.com/shibukawa/satyparse/inspect"
)

// InspectCmd represents the inspect command
type InspectCmd struct {
	Input  string `arg:"" help:"Source file, or - for standard input" default:"-"`
	Rule   string `help:"Start rule" default:"program"`
	Format string `short:"f" help:"Output format: text, yaml, msgpack or csv"`
	Strict bool   `help:"Fail when the tree cannot be lowered"`
}

func (cmd *InspectCmd) Run(ctx *Context) error {
	config, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	format, err := outputFormat(cmd.Format, config)
	if err != nil {
		return err
	}

	rule, err := startRule(cmd.Rule)
	if err != nil {
		return err
	}

	src, err := readInput(ctx, cmd.Input)
	if err != nil {
		return err
	}

	res, _, err := inspect.Inspect(strings.NewReader(src), inspect.InspectOptions{
		Rule:   rule,
		Parser: config.ParserOptions(),
		Strict: cmd.Strict,
	})
	if err != nil {
		return &renderedError{msg: inspect.RenderError(src, err), err: err}
	}

	return inspect.WriteSummary(ctx.Stdout, res, format)
}
