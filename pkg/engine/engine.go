// Copyright 2026 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package engine registers the semlint rules and runs them over program dumps.
package engine

import (
	"context"
	"fmt"
	"runtime"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"

	"go-darwin.dev/semlint/pkg/config"
	"go-darwin.dev/semlint/pkg/hir"
	"go-darwin.dev/semlint/pkg/lint"
	"go-darwin.dev/semlint/pkg/lint/passes/atomicordering"
	"go-darwin.dev/semlint/pkg/lint/passes/largedatapass"
)

// Rule describes one registered rule.
type Rule struct {
	Name     string
	Doc      string
	Category lint.Category
	Enabled  bool
}

// Result holds the diagnostics of one unit in traversal order.
type Result struct {
	Unit        string
	Diagnostics []lint.Diagnostic
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log logr.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// Engine runs the registered rules. The configuration is read once at
// construction; an Engine may analyze many units, also concurrently.
type Engine struct {
	config *config.Config
	log    logr.Logger
}

// New returns an Engine for config. Disabling an unknown rule is an error.
func New(cfg *config.Config, opts ...Option) (*Engine, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	analyzers := registry(hir.Target{}, cfg)
	if err := lint.Validate(analyzers); err != nil {
		return nil, fmt.Errorf("invalid rule registry: %w", err)
	}

	known := make(map[string]bool)
	for _, a := range analyzers {
		known[a.Name] = true
	}
	for _, name := range cfg.Disable {
		if !known[name] {
			return nil, fmt.Errorf("unknown rule %q", name)
		}
	}

	e := &Engine{config: cfg, log: logr.Discard()}
	for _, o := range opts {
		o(e)
	}

	return e, nil
}

// registry builds the rule table for one target.
var registry = defaultRegistry

func defaultRegistry(target hir.Target, cfg *config.Config) []*lint.Analyzer {
	limit := largedatapass.Limit(cfg.LargeDataSizeMinLimit, target)
	return []*lint.Analyzer{
		atomicordering.Analyzer,
		largedatapass.New(limit).Analyzer(),
	}
}

// Rules lists the registered rules in registration order.
func (e *Engine) Rules() []Rule {
	analyzers := registry(hir.Target{}, e.config)
	rules := make([]Rule, 0, len(analyzers))
	for _, a := range analyzers {
		rules = append(rules, Rule{
			Name:     a.Name,
			Doc:      a.Doc,
			Category: a.Category,
			Enabled:  !e.config.Disabled(a.Name),
		})
	}
	return rules
}

// Analyzers returns the enabled rules for target.
func (e *Engine) Analyzers(target hir.Target) []*lint.Analyzer {
	var enabled []*lint.Analyzer
	for _, a := range registry(target, e.config) {
		if !e.config.Disabled(a.Name) {
			enabled = append(enabled, a)
		}
	}
	return enabled
}

// Check runs the enabled rules over c, sending diagnostics to r in
// traversal order.
func (e *Engine) Check(c *hir.Crate, r lint.Reporter) {
	analyzers := e.Analyzers(c.Target)
	e.log.V(1).Info("check unit", "unit", c.Name, "target", c.Target.Triple, "rules", len(analyzers))
	lint.Run(c, c, analyzers, r)
}

// Run checks one unit and returns its diagnostics.
func (e *Engine) Run(c *hir.Crate) []lint.Diagnostic {
	var col lint.Collector
	e.Check(c, &col)
	diags := col.Items()
	e.log.V(1).Info("unit done", "unit", c.Name, "diagnostics", len(diags))
	return diags
}

// RunAll checks independent units in parallel. Results are in input order.
func (e *Engine) RunAll(ctx context.Context, units []*hir.Crate) ([]Result, error) {
	results := make([]Result, len(units))
	if len(units) == 0 {
		return results, nil
	}

	jobs := e.config.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(units)))
	for i, c := range units {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = Result{Unit: c.Name, Diagnostics: e.Run(c)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
