package main

import (
	"github.com/fatih/color"
	"github.com/shibukawa/satyparse/inspect"
)

// TreeCmd represents the tree command
type TreeCmd struct {
	Input  string `arg:"" help:"Source file, or - for standard input" default:"-"`
	Rule   string `help:"Start rule" default:"program"`
	Format string `short:"f" help:"Output format: text, yaml or msgpack"`
}

func (cmd *TreeCmd) Run(ctx *Context) error {
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

	if ctx.Verbose {
		color.Blue("Parsing %s as %s", cmd.Input, rule)
	}

	span, err := produce(rule, src, config)
	if err != nil {
		return err
	}

	return inspect.WriteTree(ctx.Stdout, span, format)
}
