package main

import (
	"github.com/fatih/color"
	"github.com/shibukawa/satyparse/inspect"
)

// ASTCmd represents the ast command
type ASTCmd struct {
	Input string `arg:"" help:"Source file, or - for standard input" default:"-"`
	Rule  string `help:"Start rule; it must have an AST lowering" default:"program"`
}

func (cmd *ASTCmd) Run(ctx *Context) error {
	config, err := loadConfig(ctx)
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

	span, err := produce(rule, src, config)
	if err != nil {
		return err
	}

	if ctx.Verbose {
		color.Blue("Lowering %s", span)
	}

	node, err := inspect.Lower(span)
	if err != nil {
		return &renderedError{msg: inspect.RenderError(src, err), err: err}
	}

	inspect.DumpAST(ctx.Stdout, node)

	return nil
}
