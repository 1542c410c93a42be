package plan

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"catalyzer-release/internal/domain"
)

type fileDTO struct {
	Packages []Package `yaml:"packages"`
}

// Load reads a YAML plan file. An empty path returns DefaultPackages.
func Load(file string) ([]Package, error) {
	if file == "" {
		return DefaultPackages(), nil
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading plan %s: %w", file, err)
	}
	pkgs, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("plan %s: %w", file, err)
	}
	return pkgs, nil
}

// Parse decodes and validates a YAML plan document.
func Parse(b []byte) ([]Package, error) {
	var dto fileDTO
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPlan, err)
	}
	return Validate(dto.Packages)
}

// Validate checks names and directories and returns the packages with
// normalized directories, keeping their order.
func Validate(pkgs []Package) ([]Package, error) {
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("%w: no packages listed", domain.ErrInvalidPlan)
	}
	seen := make(map[string]struct{}, len(pkgs))
	out := make([]Package, 0, len(pkgs))
	for i, p := range pkgs {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: package %d has no name", domain.ErrInvalidPlan, i+1)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: duplicate package %q", domain.ErrInvalidPlan, name)
		}
		seen[name] = struct{}{}

		dir, err := normalizeDir(p.Dir)
		if err != nil {
			return nil, fmt.Errorf("%w: package %q: %v", domain.ErrInvalidPlan, name, err)
		}
		out = append(out, Package{Name: name, Dir: dir})
	}
	return out, nil
}

// normalizeDir turns a relative directory into "a/b/" form; "" and "."
// mean the base directory.
func normalizeDir(dir string) (string, error) {
	d := strings.ReplaceAll(strings.TrimSpace(dir), `\`, "/")
	if d == "" {
		return "", nil
	}
	if strings.HasPrefix(d, "/") || (len(d) >= 2 && d[1] == ':') {
		return "", errors.New("directory must be relative")
	}
	for _, part := range strings.Split(d, "/") {
		if part == ".." {
			return "", errors.New("directory must not leave the base directory")
		}
	}
	d = path.Clean(d)
	if d == "." {
		return "", nil
	}
	return d + "/", nil
}
