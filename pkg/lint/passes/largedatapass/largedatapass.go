// Copyright 2026 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package largedatapass defines a lint rule that reports function parameters
// taken by value whose type is copyable and larger than a byte limit.
//
// Passing such values by reference avoids copying them at every call:
//
//	fn foo(v: BigStruct) {}  // reported
//	fn foo(v: &BigStruct) {} // better
//
// The default limit is twice the target's pointer width, so it depends on the
// target being analyzed. The option large-data-size-min-limit overrides it.
package largedatapass

import (
	"go-darwin.dev/semlint/pkg/hir"
	"go-darwin.dev/semlint/pkg/lint"
)

const (
	Name = "large_data_pass_by_val"

	// OptionName is the configuration key overriding the size limit.
	OptionName = "large-data-size-min-limit"

	// deriveAttr marks functions that implement derive macros.
	deriveAttr = "proc_macro_derive"
)

// DefaultLimit returns the limit used when no override is configured: twice
// the native word size in bytes.
func DefaultLimit(t hir.Target) uint64 {
	return t.PointerBytes() * 2
}

// Limit resolves the active limit from an optional override.
func Limit(override *uint64, t hir.Target) uint64 {
	if override != nil {
		return *override
	}
	return DefaultLimit(t)
}

// Spelling renders the by-reference form of a parameter for suggestions.
type Spelling func(p *hir.Param) string

// RefSpelling is the default Spelling: `&T`, or `&self` for receivers.
func RefSpelling(p *hir.Param) string {
	if p.IsSelf {
		return "&self"
	}
	return "&" + p.Snippet
}

// Option configures a Checker.
type Option func(*Checker)

// WithSpelling replaces the suggestion spelling.
func WithSpelling(s Spelling) Option {
	return func(c *Checker) {
		c.spell = s
	}
}

// Checker holds the size limit fixed for one analysis run.
type Checker struct {
	limit uint64
	spell Spelling
}

// New returns a Checker with the given limit in bytes.
func New(limit uint64, opts ...Option) *Checker {
	c := &Checker{limit: limit, spell: RefSpelling}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Checker) Limit() uint64 { return c.limit }

// Analyzer returns the rule bound to c.
func (c *Checker) Analyzer() *lint.Analyzer {
	return &lint.Analyzer{
		Name:         Name,
		Doc:          "functions taking large copyable arguments by value",
		Category:     lint.Perf,
		CheckFn:      c.CheckFn,
		CheckTraitFn: c.CheckTraitFn,
	}
}

// CheckFn checks free functions and inherent methods. Methods of trait impls
// are skipped; the trait declaration is checked instead.
func (c *Checker) CheckFn(pass *lint.Pass, fn *hir.Fn, owner *hir.Impl) {
	if fn.Span.FromExpansion {
		return
	}

	if owner == nil {
		if fn.EffectiveABI() != hir.DefaultABI {
			return
		}
		for _, a := range fn.Attrs {
			if a.HasList && a.Name == deriveAttr {
				return
			}
		}
	} else if !owner.IsInherent() {
		return
	}

	span := fn.Span
	c.checkParams(pass, fn.Params, &span)
}

// CheckTraitFn checks a method declared in a trait.
func (c *Checker) CheckTraitFn(pass *lint.Pass, fn *hir.TraitFn, _ *hir.Trait) {
	if fn.Span.FromExpansion {
		return
	}
	c.checkParams(pass, fn.Params, nil)
}

func (c *Checker) checkParams(pass *lint.Pass, params []*hir.Param, declSpan *hir.Span) {
	for _, p := range params {
		// Spans generated by a proc-macro invocation all equal the invocation
		// span. The whole declaration is abandoned at the first such parameter.
		if declSpan != nil && *declSpan == p.Span {
			return
		}
		if !pass.Oracle.IsAdt(p.Ty) || !pass.Oracle.IsCopy(p.Ty) {
			continue
		}
		size, ok := pass.Oracle.SizeOf(p.Ty)
		if !ok || size <= c.limit {
			continue
		}

		pass.Report(lint.Warn(Name, p.Span,
			"this argument (%d byte) is passed by value, but would be more efficient if passed by ref (limit: %d byte)",
			size, c.limit).
			WithSuggestion("consider passing by ref instead", c.spell(p), lint.Unspecified).
			Diagnostic())
	}
}
