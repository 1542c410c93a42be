package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"catalyzer-release/internal/domain"
)

// Document is the on-disk form of a domain.Report.
type Document struct {
	DryRun    bool      `json:"dry_run"`
	Plan      string    `json:"plan,omitempty"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
	Targets   []Entry   `json:"targets"`
}

// Entry is one published target.
type Entry struct {
	Name       string `json:"name"`
	Path       string `json:"path"`
	Command    string `json:"command"`
	ExitCode   int    `json:"exit_code"`
	OK         bool   `json:"ok"`
	Error      string `json:"error,omitempty"`
	DurationMS int64  `json:"duration_ms"`
}

// FromReport converts r, tagging it with the plan fingerprint.
func FromReport(r domain.Report, fingerprint string) Document {
	doc := Document{
		DryRun:    r.DryRun,
		Plan:      fingerprint,
		StartedAt: r.StartedAt,
		EndedAt:   r.EndedAt,
		Targets:   make([]Entry, 0, len(r.Results)),
	}
	for _, res := range r.Results {
		e := Entry{
			Name:       res.Target.Name,
			Path:       res.Target.Path,
			Command:    res.Command,
			ExitCode:   res.ExitCode,
			OK:         res.OK(),
			DurationMS: res.Duration.Milliseconds(),
		}
		if res.Err != nil {
			e.Error = res.Err.Error()
		}
		doc.Targets = append(doc.Targets, e)
	}
	return doc
}

// Write stores doc as indented JSON at path.
func Write(path string, doc Document) error {
	if err := writeJSON(path, doc, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}

// Read loads a report written by Write.
func Read(path string) (Document, error) {
	var doc Document
	b, err := os.ReadFile(path)
	if err != nil {
		return doc, err
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		return doc, fmt.Errorf("decoding report %s: %w", path, err)
	}
	return doc, nil
}

// writeJSON encodes v next to path and renames it into place, so readers
// never observe a partial report.
func writeJSON(path string, v any, mode os.FileMode) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp) // no-op once renamed

	_, err = f.Write(b)
	if err == nil {
		err = f.Chmod(mode)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
