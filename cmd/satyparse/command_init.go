package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// InitCmd represents the init command
type InitCmd struct {
	Force bool `help:"Overwrite an existing configuration file"`
}

func (i *InitCmd) Run(ctx *Context) error {
	if ctx.Verbose {
		color.Blue("Writing %s", ctx.Config)
	}

	if !i.Force && fileExists(ctx.Config) {
		if !ctx.Quiet {
			color.Yellow("%s already exists, skipping (use --force to overwrite)", ctx.Config)
		}

		return nil
	}

	err := os.WriteFile(ctx.Config, []byte(sampleConfig), 0644)
	if err != nil {
		return fmt.Errorf("failed to create sample configuration: %w", err)
	}

	if !ctx.Quiet {
		color.Green("Created %s", ctx.Config)
		fmt.Fprintln(ctx.Stdout, "\nNext steps:")
		fmt.Fprintln(ctx.Stdout, "1. Edit check.roots to point at your documents")
		fmt.Fprintln(ctx.Stdout, "2. Run 'satyparse check' to parse every source file")
	}

	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

const sampleConfig = `# Parser settings
parser:
  max_depth: 2000   # nesting guard; 0 disables it
  trace: false      # print every grammar rule attempt
  normalize: false  # apply Unicode NFC before parsing

# check command settings
check:
  roots:
    - "."
  extensions: [".saty", ".satyh", ".satyg"]
  jobs: 0           # 0 means one job per CPU

# Output of the tree and inspect commands
output:
  format: text      # text, yaml, msgpack
  color: true
`
