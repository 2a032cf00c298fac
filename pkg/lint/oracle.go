// Copyright 2026 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

package lint

//go:generate mockgen -source=oracle.go -destination=mocks/oracle.go -package=mocks Oracle

import "go-darwin.dev/semlint/pkg/hir"

// Oracle answers type and layout queries about a resolved program.
// *hir.Crate implements it for program dumps.
type Oracle interface {
	// TypeOf returns the resolved type of e.
	TypeOf(e hir.Expr) hir.TypeID
	// DefPath returns the fully-qualified identity of a nominal type, or "".
	DefPath(t hir.TypeID) string
	// IsAdt reports whether t is a nominal aggregate type.
	IsAdt(t hir.TypeID) bool
	IsCopy(t hir.TypeID) bool
	// SizeOf returns the size of t in bytes, or false when t has no layout.
	SizeOf(t hir.TypeID) (uint64, bool)
}

var _ Oracle = (*hir.Crate)(nil)
