package publish

import (
	"runtime"
	"strings"

	"catalyzer-release/internal/domain"
)

const (
	// DefaultTool is the publish command run inside each target directory.
	DefaultTool = "cargo publish"

	AllowDirtyFlag = "--allow-dirty"
	DryRunFlag     = "--dry-run"
)

// Command builds the shell command that publishes t with tool.
func Command(tool string, t domain.Target, dryRun bool) string {
	if strings.TrimSpace(tool) == "" {
		tool = DefaultTool
	}
	var b strings.Builder
	b.WriteString(changeDir(t.Path))
	b.WriteString(" && ")
	b.WriteString(tool)
	b.WriteString(" ")
	b.WriteString(AllowDirtyFlag)
	if dryRun {
		b.WriteString(" ")
		b.WriteString(DryRunFlag)
	}
	return b.String()
}

// changeDir returns the shell fragment entering p. On Windows "cd /d" also
// switches drives.
func changeDir(p string) string {
	return changeDirFor(runtime.GOOS, p)
}

func changeDirFor(goos, p string) string {
	if goos == "windows" {
		return `cd /d "` + p + `"`
	}
	return "cd '" + strings.ReplaceAll(p, "'", `'\''`) + "'"
}
