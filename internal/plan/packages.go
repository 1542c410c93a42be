package plan

import "catalyzer-release/internal/domain"

// Package is one entry of a publish plan.
type Package struct {
	Name string `yaml:"name"`
	Dir  string `yaml:"dir"`
}

// DefaultPackages returns the catalyzer crates in dependency order:
// utilities, then macros, then core, then the top-level crate.
func DefaultPackages() []Package {
	return []Package{
		{Name: "utils", Dir: "catalyzer-utils/"},
		{Name: "macros", Dir: "catalyzer-macros/"},
		{Name: "core", Dir: "catalyzer-core/"},
		{Name: "root", Dir: ""},
	}
}

// Build derives one target per package by appending its directory to base.
// It never touches the filesystem.
func Build(base string, pkgs []Package) []domain.Target {
	targets := make([]domain.Target, 0, len(pkgs))
	for _, p := range pkgs {
		targets = append(targets, domain.Target{Name: p.Name, Path: base + p.Dir})
	}
	return targets
}
