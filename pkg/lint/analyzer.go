// Copyright 2026 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package lint defines the interface between semantic lint rules and the
// driver that runs them over a resolved program.
//
// An Analyzer describes one rule: its name, documentation, and the node
// callbacks it wants. The driver walks a program once and dispatches each
// node to every Analyzer that registered a callback for its kind. Rules hold
// no traversal state; everything they need is on the Pass.
package lint

import (
	"errors"
	"fmt"

	"go-darwin.dev/semlint/pkg/hir"
)

// Category groups rules by the kind of defect they find.
type Category string

const (
	Correctness Category = "correctness"
	Perf        Category = "perf"
)

// Analyzer is a named lint rule with its entry points.
type Analyzer struct {
	// Name is the rule identifier used in diagnostics and configuration.
	Name     string
	Doc      string
	Category Category

	// CheckExpr is called for every expression.
	CheckExpr func(pass *Pass, e hir.Expr)
	// CheckFn is called for every function with a body. owner is the
	// enclosing impl block, or nil for free functions.
	CheckFn func(pass *Pass, fn *hir.Fn, owner *hir.Impl)
	// CheckTraitFn is called for every method declared in a trait.
	CheckTraitFn func(pass *Pass, fn *hir.TraitFn, owner *hir.Trait)
}

func (a *Analyzer) String() string { return a.Name }

// Pass is the state handed to an Analyzer's entry points.
type Pass struct {
	Analyzer *Analyzer
	Oracle   Oracle
	Reporter Reporter
}

// Report emits d, stamping the analyzer name when the rule left it empty.
func (p *Pass) Report(d Diagnostic) {
	if d.Rule == "" {
		d.Rule = p.Analyzer.Name
	}
	p.Reporter.Report(d)
}

// Validate reports an error if the analyzers are malformed: unnamed,
// duplicated, or without any entry point.
func Validate(analyzers []*Analyzer) error {
	seen := make(map[string]bool, len(analyzers))
	var errs []error
	for _, a := range analyzers {
		switch {
		case a == nil:
			errs = append(errs, errors.New("nil analyzer"))
			continue
		case a.Name == "":
			errs = append(errs, errors.New("analyzer without a name"))
		case seen[a.Name]:
			errs = append(errs, fmt.Errorf("duplicate analyzer %q", a.Name))
		}
		seen[a.Name] = true
		if a.CheckExpr == nil && a.CheckFn == nil && a.CheckTraitFn == nil {
			errs = append(errs, fmt.Errorf("analyzer %q has no entry point", a.Name))
		}
	}

	return errors.Join(errs...)
}

// Run walks c and dispatches each node to the analyzers in order.
// Diagnostics reach r in traversal order.
func Run(c *hir.Crate, oracle Oracle, analyzers []*Analyzer, r Reporter) {
	hir.Walk(c, newDispatcher(oracle, analyzers, r))
}

type dispatcher struct {
	exprs  []*Pass
	fns    []*Pass
	traits []*Pass
}

func newDispatcher(oracle Oracle, analyzers []*Analyzer, r Reporter) *dispatcher {
	d := new(dispatcher)
	for _, a := range analyzers {
		pass := &Pass{Analyzer: a, Oracle: oracle, Reporter: r}
		if a.CheckExpr != nil {
			d.exprs = append(d.exprs, pass)
		}
		if a.CheckFn != nil {
			d.fns = append(d.fns, pass)
		}
		if a.CheckTraitFn != nil {
			d.traits = append(d.traits, pass)
		}
	}

	return d
}

func (d *dispatcher) VisitFn(fn *hir.Fn, owner *hir.Impl) {
	for _, p := range d.fns {
		p.Analyzer.CheckFn(p, fn, owner)
	}
}

func (d *dispatcher) VisitTraitFn(fn *hir.TraitFn, owner *hir.Trait) {
	for _, p := range d.traits {
		p.Analyzer.CheckTraitFn(p, fn, owner)
	}
}

func (d *dispatcher) VisitExpr(e hir.Expr) {
	for _, p := range d.exprs {
		p.Analyzer.CheckExpr(p, e)
	}
}
