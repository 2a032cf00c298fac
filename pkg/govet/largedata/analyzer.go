// Copyright 2026 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package largedata reports Go function parameters of copyable struct type
// that are passed by value and are larger than a byte limit.
//
// It runs the large_data_pass_by_val rule over a package lowered from the
// Go syntax tree. A method is treated as implementing an interface only when
// the package asserts it with a blank variable declaration; such methods are
// checked through the interface declaration instead.
package largedata

import (
	"fmt"
	"go/types"

	"fortio.org/safecast"
	"golang.org/x/tools/go/analysis"

	"go-darwin.dev/semlint/pkg/hir"
	"go-darwin.dev/semlint/pkg/lint"
	"go-darwin.dev/semlint/pkg/lint/passes/largedatapass"
)

const Doc = `check for large structs passed by value

The largedata analyzer reports parameters whose type is a copyable struct
larger than -size-limit bytes. When the flag is unset the limit is twice the
size of a pointer on the target.`

var Analyzer = &analysis.Analyzer{
	Name: "largedata",
	Doc:  Doc,
	Run:  run,
}

// sizeLimit is negative when unset.
var sizeLimit int64 = -1

func init() {
	Analyzer.Flags.Int64Var(&sizeLimit, "size-limit", -1, "report parameters larger than this many bytes (-1: twice the pointer size)")
}

func target(sizes types.Sizes) hir.Target {
	word := sizes.Sizeof(types.Typ[types.Uintptr])
	bits, err := safecast.Conv[uint32](word * 8)
	if err != nil {
		return hir.Target{}
	}
	return hir.Target{PointerWidth: bits}
}

func run(pass *analysis.Pass) (any, error) {
	oracle := newTypeOracle(pass.TypesSizes)
	l := newLowerer(pass, oracle)

	crate := &hir.Crate{
		Name:   pass.Pkg.Path(),
		Target: target(pass.TypesSizes),
	}
	for _, f := range pass.Files {
		crate.Items = append(crate.Items, l.file(f)...)
	}

	var override *uint64
	if sizeLimit >= 0 {
		limit, err := safecast.Conv[uint64](sizeLimit)
		if err != nil {
			return nil, fmt.Errorf("size-limit: %w", err)
		}
		override = &limit
	}
	checker := largedatapass.New(largedatapass.Limit(override, crate.Target), largedatapass.WithSpelling(pointerSpelling))

	var diags lint.Collector
	lint.Run(crate, oracle, []*lint.Analyzer{checker.Analyzer()}, &diags)

	for _, d := range diags.Items() {
		msg := d.Message
		if s := d.Suggestion; s != nil {
			msg = fmt.Sprintf("%s; %s: %s", msg, s.Message, s.Replacement)
		}
		pass.Report(analysis.Diagnostic{
			Pos:      l.pos(d.Span),
			Category: d.Rule,
			Message:  msg,
		})
	}

	return nil, nil
}

// pointerSpelling suggests a pointer to the parameter type.
func pointerSpelling(p *hir.Param) string {
	return "*" + p.Snippet
}
