package app

import (
	"context"

	"catalyzer-release/internal/domain"
	"catalyzer-release/internal/plan"
	"catalyzer-release/internal/report"
	"catalyzer-release/internal/workspace"
)

// App runs one release with a fixed configuration.
type App struct {
	cfg    Config
	dryRun bool
	wire   *Wire
}

// Plan is the resolved input of a run.
type Plan struct {
	Base        string
	Packages    []plan.Package
	Targets     []domain.Target
	Fingerprint string
	DryRun      bool
}

// New builds an App from cfg. The dry-run mode is fixed here, from cfg.Args.
func New(cfg Config) (*App, error) {
	w, err := NewWire(cfg)
	if err != nil {
		return nil, err
	}
	return &App{cfg: cfg, dryRun: DryRunFromArgs(cfg.Args), wire: w}, nil
}

// DryRun reports whether this app only simulates publishing.
func (a *App) DryRun() bool { return a.dryRun }

// Resolve computes the base directory and the ordered targets without
// running anything.
func (a *App) Resolve() (Plan, error) {
	var (
		base string
		err  error
	)
	if a.cfg.Dir != "" {
		base, err = workspace.Normalize(a.cfg.Dir)
	} else {
		base, err = workspace.ResolveBase(a.cfg.Getwd)
	}
	if err != nil {
		return Plan{}, err
	}

	pkgs, err := plan.Load(a.cfg.PlanFile)
	if err != nil {
		return Plan{}, err
	}

	return Plan{
		Base:        base,
		Packages:    pkgs,
		Targets:     plan.Build(base, pkgs),
		Fingerprint: plan.Fingerprint(pkgs),
		DryRun:      a.dryRun,
	}, nil
}

// Run resolves the plan and publishes every target in order.
func (a *App) Run(ctx context.Context) (domain.Report, error) {
	p, err := a.Resolve()
	if err != nil {
		return domain.Report{DryRun: a.dryRun}, err
	}
	a.wire.Log.WithField("base", p.Base).
		WithField("plan", p.Fingerprint).
		WithField("dry_run", p.DryRun).
		Info("release.start")

	rep, err := a.wire.Sequencer.Run(ctx, p.Targets, p.DryRun)
	if a.cfg.Report == "" {
		return rep, err
	}
	// The report is written for interrupted and aborted runs too.
	if werr := report.Write(a.cfg.Report, report.FromReport(rep, p.Fingerprint)); werr != nil {
		if err != nil {
			a.wire.Log.WithError(werr).Error("report.write")
			return rep, err
		}
		return rep, werr
	}
	return rep, err
}

// Run builds an App from cfg and runs it.
func Run(ctx context.Context, cfg Config) (domain.Report, error) {
	a, err := New(cfg)
	if err != nil {
		return domain.Report{}, err
	}
	return a.Run(ctx)
}
