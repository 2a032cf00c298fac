// Copyright 2026 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

package hir

// Visitor receives callbacks from Walk.
//
// VisitFn is called for free functions (owner == nil) and for functions in
// impl blocks. VisitTraitFn is called for every method declared in a trait.
// VisitExpr is called for every expression, parents before children.
type Visitor interface {
	VisitFn(fn *Fn, owner *Impl)
	VisitTraitFn(fn *TraitFn, owner *Trait)
	VisitExpr(e Expr)
}

// Funcs adapts optional callbacks to the Visitor interface.
type Funcs struct {
	Fn      func(fn *Fn, owner *Impl)
	TraitFn func(fn *TraitFn, owner *Trait)
	Expr    func(e Expr)
}

var _ Visitor = Funcs{}

func (f Funcs) VisitFn(fn *Fn, owner *Impl) {
	if f.Fn != nil {
		f.Fn(fn, owner)
	}
}

func (f Funcs) VisitTraitFn(fn *TraitFn, owner *Trait) {
	if f.TraitFn != nil {
		f.TraitFn(fn, owner)
	}
}

func (f Funcs) VisitExpr(e Expr) {
	if f.Expr != nil {
		f.Expr(e)
	}
}

// Walk traverses c in source order.
func Walk(c *Crate, v Visitor) {
	if c == nil {
		return
	}
	walkItems(c.Items, v)
}

func walkItems(items []Item, v Visitor) {
	for _, it := range items {
		switch it := it.(type) {
		case *Fn:
			v.VisitFn(it, nil)
			WalkExpr(it.Body, v)

		case *Trait:
			for _, fn := range it.Items {
				v.VisitTraitFn(fn, it)
				WalkExpr(fn.Body, v)
			}

		case *Impl:
			for _, fn := range it.Fns {
				v.VisitFn(fn, it)
				WalkExpr(fn.Body, v)
			}

		case *Mod:
			walkItems(it.Items, v)
		}
	}
}

// WalkExpr visits e and its subexpressions, parents first.
func WalkExpr(e Expr, v Visitor) {
	if e == nil {
		return
	}
	v.VisitExpr(e)

	switch e := e.(type) {
	case *MethodCall:
		walkExprs(e.Args, v)
	case *Call:
		WalkExpr(e.Func, v)
		walkExprs(e.Args, v)
	case *Block:
		walkExprs(e.Stmts, v)
	case *Let:
		WalkExpr(e.Init, v)
	case *Closure:
		WalkExpr(e.Body, v)
	case *Other:
		walkExprs(e.Children, v)
	case *Path, *Lit:
		// leaves
	}
}

func walkExprs(list []Expr, v Visitor) {
	for _, e := range list {
		WalkExpr(e, v)
	}
}
