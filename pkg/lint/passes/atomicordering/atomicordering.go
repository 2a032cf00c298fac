// Copyright 2026 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package atomicordering defines a lint rule that reports memory orderings
// which are invalid for the atomic operation they are passed to.
//
// A store may not use Acquire or AcqRel and a load may not use Release or
// AcqRel; such calls panic at run time. Only load and store calls on the
// standard atomic types are checked, and only when the ordering argument is
// written as a direct path to an Ordering variant:
//
//	let flag = AtomicBool::new(false);
//	flag.store(true, Ordering::Acquire); // reported
//
//	let ord = Ordering::Acquire;
//	flag.store(true, ord); // not reported
package atomicordering

import (
	"fmt"
	"strings"

	"go-darwin.dev/semlint/pkg/hir"
	"go-darwin.dev/semlint/pkg/lint"
)

const Name = "atomic_ordering"

var Analyzer = &lint.Analyzer{
	Name:      Name,
	Doc:       "Use of an incorrect atomic ordering will cause a panic",
	Category:  lint.Correctness,
	CheckExpr: run,
}

func run(pass *lint.Pass, e hir.Expr) {
	call, ok := e.(*hir.MethodCall)
	if !ok || len(call.Args) == 0 {
		return
	}
	if !IsAtomic(pass.Oracle.DefPath(pass.Oracle.TypeOf(call.Args[0]))) {
		return
	}

	op, ok := opOf(call.Method)
	if !ok {
		return
	}
	idx := op.orderingArg()
	if idx >= len(call.Args) {
		return
	}
	arg, ok := call.Args[idx].(*hir.Path)
	if !ok {
		return
	}
	ord, ok := orderingOf(arg.Segments)
	if !ok || Valid(op, ord) {
		return
	}

	pass.Report(lint.Warn(Name, arg.Span, "`%s` is not a valid `atomic::Ordering` for `%s`", ord, op).
		WithHelp("valid orderings are %s", formatOrderings(rules[op].valid)).
		Diagnostic())
}

func formatOrderings(list []Ordering) string {
	names := make([]string, len(list))
	for i, o := range list {
		names[i] = fmt.Sprintf("%q", o.String())
	}
	return "[" + strings.Join(names, ", ") + "]"
}
