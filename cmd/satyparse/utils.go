package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/shibukawa/satyparse"
	"github.com/shibukawa/satyparse/inspect"
	"github.com/shibukawa/satyparse/parser"
	cmn "github.com/shibukawa/satyparse/parser/parsercommon"
)

// loadConfig loads the configuration and applies its color setting.
func loadConfig(ctx *Context) (*satyparse.Config, error) {
	config, err := satyparse.LoadConfig(ctx.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if !config.Output.ColorEnabled() {
		color.NoColor = true
	}

	return config, nil
}

// readInput reads a source file; "-" reads standard input.
func readInput(ctx *Context, path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(ctx.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read standard input: %w", err)
		}

		return string(b), nil
	}

	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("%w: %s", ErrInputFileNotExist, path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	return string(b), nil
}

// startRule resolves a grammar rule name given on the command line.
func startRule(name string) (cmn.Rule, error) {
	rule, ok := cmn.RuleByName(name)
	if !ok || rule == cmn.EOI {
		return cmn.EOI, fmt.Errorf("%w: %s", parser.ErrUnknownRule, name)
	}

	return rule, nil
}

// outputFormat picks the flag value over the configured one.
func outputFormat(flag string, config *satyparse.Config) (inspect.Format, error) {
	if flag == "" {
		flag = config.Output.Format
	}

	return inspect.ParseFormat(flag)
}

// produce parses src and renders syntax errors with the offending line.
func produce(rule cmn.Rule, src string, config *satyparse.Config) (*cmn.Span, error) {
	span, err := parser.Produce(rule, src, config.ParserOptions())
	if err != nil {
		return nil, &renderedError{msg: inspect.RenderError(src, err), err: err}
	}

	return span, nil
}

// renderedError prints the source excerpt of err while keeping err
// reachable through errors.Is and errors.As.
type renderedError struct {
	msg string
	err error
}

func (e *renderedError) Error() string { return e.msg }

func (e *renderedError) Unwrap() error { return e.err }
