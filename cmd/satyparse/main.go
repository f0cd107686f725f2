package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
)

// Context represents the global context for commands
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool
	Stdin   io.Reader
	Stdout  io.Writer
}

// CLI represents the command-line interface
var CLI struct {
	Config  string     `help:"Configuration file path" default:"satyparse.yaml"`
	Verbose bool       `help:"Enable verbose output" short:"v"`
	Quiet   bool       `help:"Suppress output" short:"q"`
	Check   CheckCmd   `cmd:"" help:"Parse source files and report syntax errors"`
	Tree    TreeCmd    `cmd:"" help:"Print the concrete syntax tree of a source"`
	AST     ASTCmd     `cmd:"" name:"ast" help:"Print the lowered AST of a source"`
	Inspect InspectCmd `cmd:"" help:"Summarize the concrete syntax tree of a source"`
	Init    InitCmd    `cmd:"" help:"Create a sample satyparse.yaml"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(ctx *Context) error {
	fmt.Fprintln(ctx.Stdout, "satyparse v0.1.0")
	return nil
}

func main() {
	ctx := kong.Parse(&CLI)

	appCtx := &Context{
		Config:  CLI.Config,
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
