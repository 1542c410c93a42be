package plan_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"catalyzer-release/internal/domain"
	"catalyzer-release/internal/plan"
)

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	got, err := plan.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if plan.Fingerprint(got) != plan.Fingerprint(plan.DefaultPackages()) {
		t.Fatalf("expected default packages, got %+v", got)
	}
}

func TestLoad_ReadsFileInOrder(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plan.yaml")
	doc := `packages:
  - name: utils
    dir: crates\utils
  - name: core
    dir: ./crates/core/
  - name: root
    dir: .
`
	if err := os.WriteFile(file, []byte(doc), 0o600); err != nil {
		t.Fatalf("write plan: %v", err)
	}

	got, err := plan.Load(file)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []plan.Package{
		{Name: "utils", Dir: "crates/utils/"},
		{Name: "core", Dir: "crates/core/"},
		{Name: "root", Dir: ""},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d packages, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("package %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := plan.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"empty":         "packages: []\n",
		"no name":       "packages:\n  - dir: a\n",
		"duplicate":     "packages:\n  - name: a\n  - name: a\n",
		"absolute":      "packages:\n  - name: a\n    dir: /etc\n",
		"drive":         "packages:\n  - name: a\n    dir: C:\\x\n",
		"parent":        "packages:\n  - name: a\n    dir: ../elsewhere\n",
		"unknown field": "packages:\n  - name: a\n    path: x\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := plan.Parse([]byte(doc))
			if !errors.Is(err, domain.ErrInvalidPlan) {
				t.Fatalf("expected ErrInvalidPlan, got %v", err)
			}
		})
	}
}

func TestFingerprint_SensitiveToOrder(t *testing.T) {
	a := plan.DefaultPackages()
	b := plan.DefaultPackages()
	b[0], b[1] = b[1], b[0]

	fa, fb := plan.Fingerprint(a), plan.Fingerprint(b)
	if fa == fb {
		t.Fatalf("expected different fingerprints for reordered plans")
	}
	if len(fa) != 20 {
		t.Fatalf("expected 20 hex chars, got %d", len(fa))
	}
	if plan.Fingerprint(a) != fa {
		t.Fatalf("fingerprint must be deterministic")
	}
}
