package testhelper

import (
	"fmt"
	"path/filepath"
	"runtime"
	"testing"
)

// GetCaller returns "(file:line)" of the test calling the helper that calls
// GetCaller.
func GetCaller(t *testing.T) string {
	t.Helper()

	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}

	return fmt.Sprintf("(%s:%d)", filepath.Base(file), line)
}
