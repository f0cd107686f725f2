package satyparse

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/shibukawa/satyparse/ast"
	cmn "github.com/shibukawa/satyparse/parser/parsercommon"
	"golang.org/x/sync/errgroup"
)

// FileError is a parse failure of one source file. Source is kept so that
// callers can render the offending line.
type FileError struct {
	Path   string
	Source string
	Err    error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Result is the outcome of checking one file.
type Result struct {
	Path    string
	Program *ast.Program
	Err     error
}

// Check reads path and parses it as a whole program. Syntax and lowering
// errors are returned as *FileError.
func Check(path string, cfg *Config) (*ast.Program, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	program, err := ast.ParseProgram(string(data), cfg.ParserOptions())
	if err != nil {
		return nil, &FileError{Path: path, Source: string(data), Err: err}
	}

	return &program, nil
}

// CheckFiles checks paths with at most cfg.Jobs() files in flight. Results
// are in the order of paths. Per-file failures are collected into a
// *parsercommon.ParseError; a cancelled context stops scheduling new files
// and is returned as is.
func CheckFiles(ctx context.Context, paths []string, cfg *Config) ([]Result, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	results := make([]Result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Jobs())

	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			program, err := Check(path, cfg)
			results[i] = Result{Path: path, Program: program, Err: err}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}

	if err := ctx.Err(); err != nil {
		return results, err
	}

	perr := &cmn.ParseError{}
	for _, r := range results {
		perr.Add(r.Err)
	}

	return results, perr.ErrOrNil()
}

// CollectFiles expands roots into source files. A root that is a file is
// taken as is; directories are walked for files with one of extensions.
// Hidden directories below a root are skipped.
func CollectFiles(roots []string, extensions []string) ([]string, error) {
	var files []string

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", root, err)
		}

		if !info.IsDir() {
			files = append(files, root)
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}

				return nil
			}

			if slices.Contains(extensions, filepath.Ext(path)) {
				files = append(files, path)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", root, err)
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoInputFiles, strings.Join(roots, ", "))
	}

	return files, nil
}
