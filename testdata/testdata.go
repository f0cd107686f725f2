package testdata

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"strings"
)

//go:embed acceptancetests/*/*.saty acceptancetests/*/*.yaml
var AcceptanceTests embed.FS

// GetFS returns the embedded filesystem
func GetFS() embed.FS {
	return AcceptanceTests
}

// Pattern for case directories: 3 digits followed by a name
var caseDir = regexp.MustCompile(`^[0-9]{3}.*$`)

// AcceptanceDirs returns the acceptance case directories in name order.
func AcceptanceDirs() ([]string, error) {
	entries, err := fs.ReadDir(AcceptanceTests, "acceptancetests")
	if err != nil {
		return nil, fmt.Errorf("failed to read acceptancetests directory: %w", err)
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() && caseDir.MatchString(entry.Name()) {
			dirs = append(dirs, path.Join("acceptancetests", entry.Name()))
		}
	}

	return dirs, nil
}

// ReadFile reads a file of an acceptance case.
func ReadFile(dir, name string) ([]byte, error) {
	return fs.ReadFile(AcceptanceTests, path.Join(dir, name))
}

// IsErrorCase reports whether the case is expected to fail in strict mode.
func IsErrorCase(dir string) bool {
	return strings.HasSuffix(path.Base(dir), "_err")
}
