package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/shibukawa/satyparse"
	"github.com/shibukawa/satyparse/inspect"
)

// CheckCmd represents the check command
type CheckCmd struct {
	Paths []string `arg:"" optional:"" help:"Files or directories to check (default: check.roots from config)" type:"path"`
	Jobs  int      `short:"j" help:"Number of files checked in parallel (default: check.jobs from config)"`
}

func (cmd *CheckCmd) Run(ctx *Context) error {
	config, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	if cmd.Jobs > 0 {
		config.Check.Jobs = cmd.Jobs
	}

	roots := cmd.Paths
	if len(roots) == 0 {
		roots = config.Check.Roots
	}

	files, err := satyparse.CollectFiles(roots, config.Check.Extensions)
	if err != nil {
		return err
	}

	if ctx.Verbose {
		color.Blue("Checking %d files with %d jobs", len(files), config.Jobs())
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := satyparse.CheckFiles(sigCtx, files, config)
	if err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
		return err
	}

	failed := 0

	for _, r := range results {
		if r.Err == nil {
			if ctx.Verbose {
				color.Green("ok   %s", r.Path)
			}

			continue
		}

		failed++

		if ctx.Quiet {
			continue
		}

		color.Red("FAIL %s", r.Path)

		var ferr *satyparse.FileError
		if errors.As(r.Err, &ferr) {
			fmt.Fprintln(ctx.Stdout, inspect.RenderError(ferr.Source, ferr.Err))
		} else {
			fmt.Fprintln(ctx.Stdout, r.Err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrFilesFailed, failed, len(results))
	}

	if !ctx.Quiet {
		color.Green("%d files parsed successfully", len(results))
	}

	return nil
}
