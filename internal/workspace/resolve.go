package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Getwd reports the process working directory. It matches os.Getwd.
type Getwd func() (string, error)

// ResolveBase reads the working directory through getwd and normalizes it.
// A nil getwd uses os.Getwd.
func ResolveBase(getwd Getwd) (string, error) {
	if getwd == nil {
		getwd = os.Getwd
	}
	wd, err := getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	return Normalize(wd)
}

// Normalize makes dir absolute, rewrites backslashes to "/" and ensures a
// single trailing "/".
func Normalize(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path of %q: %w", dir, err)
	}
	p := strings.ReplaceAll(abs, `\`, "/")
	p = strings.TrimRight(p, "/")
	return p + "/", nil
}
