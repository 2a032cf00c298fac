// Copyright 2026 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

package hir

// Node is any element of the program tree.
type Node interface {
	NodeSpan() Span
}

// Item is a top-level or module-level declaration.
type Item interface {
	Node
	item()
}

// Expr is an expression with a resolved type.
type Expr interface {
	Node
	Type() TypeID
	expr()
}

// Attr is an attribute attached to a declaration. HasList reports whether the
// attribute was written with a meta list, as in `#[name(...)]`.
type Attr struct {
	Name    string
	HasList bool
}

// Param is one declared input of a function signature.
type Param struct {
	Span Span
	// Snippet is the source text of the parameter type as written.
	Snippet string
	Ty      TypeID
	// IsSelf marks the implicit receiver.
	IsSelf bool
}

// DefaultABI is the calling convention assumed when Fn.ABI is empty.
const DefaultABI = "Rust"

type (
	// Fn is a function with a body: a free function or a method in an impl block.
	Fn struct {
		Name   string
		Span   Span
		ABI    string
		Attrs  []Attr
		Params []*Param
		Body   Expr
	}

	// TraitFn is a method declared in a trait, with an optional default body.
	TraitFn struct {
		Name   string
		Span   Span
		Params []*Param
		Body   Expr
	}

	Trait struct {
		Name  string
		Span  Span
		Items []*TraitFn
	}

	// Impl is an implementation block. Trait is empty for inherent impls.
	Impl struct {
		Span   Span
		Trait  string
		SelfTy TypeID
		Fns    []*Fn
	}

	Mod struct {
		Name  string
		Span  Span
		Items []Item
	}
)

func (f *Fn) NodeSpan() Span      { return f.Span }
func (f *TraitFn) NodeSpan() Span { return f.Span }
func (t *Trait) NodeSpan() Span   { return t.Span }
func (i *Impl) NodeSpan() Span    { return i.Span }
func (m *Mod) NodeSpan() Span     { return m.Span }

func (*Fn) item()    {}
func (*Trait) item() {}
func (*Impl) item()  {}
func (*Mod) item()   {}

// EffectiveABI returns the calling convention, defaulting to DefaultABI.
func (f *Fn) EffectiveABI() string {
	if f.ABI == "" {
		return DefaultABI
	}
	return f.ABI
}

// IsInherent reports whether the impl block implements no trait.
func (i *Impl) IsInherent() bool { return i.Trait == "" }

type (
	// MethodCall is `recv.method(args...)`. Args[0] is the receiver.
	MethodCall struct {
		Span   Span
		Ty     TypeID
		Method string
		Args   []Expr
	}

	Call struct {
		Span Span
		Ty   TypeID
		Func Expr
		Args []Expr
	}

	// Path is a possibly qualified name as written, e.g. `Ordering::SeqCst`.
	Path struct {
		Span     Span
		Ty       TypeID
		Segments []string
	}

	Lit struct {
		Span  Span
		Ty    TypeID
		Value string
	}

	Block struct {
		Span  Span
		Ty    TypeID
		Stmts []Expr
	}

	// Let binds Name to Init. It is modeled as an expression of unit type.
	Let struct {
		Span Span
		Ty   TypeID
		Name string
		Init Expr
	}

	Closure struct {
		Span   Span
		Ty     TypeID
		Params []*Param
		Body   Expr
	}

	// Other is any expression form the checks do not inspect.
	Other struct {
		Span     Span
		Ty       TypeID
		Children []Expr
	}
)

func (e *MethodCall) NodeSpan() Span { return e.Span }
func (e *Call) NodeSpan() Span       { return e.Span }
func (e *Path) NodeSpan() Span       { return e.Span }
func (e *Lit) NodeSpan() Span        { return e.Span }
func (e *Block) NodeSpan() Span      { return e.Span }
func (e *Let) NodeSpan() Span        { return e.Span }
func (e *Closure) NodeSpan() Span    { return e.Span }
func (e *Other) NodeSpan() Span      { return e.Span }

func (e *MethodCall) Type() TypeID { return e.Ty }
func (e *Call) Type() TypeID       { return e.Ty }
func (e *Path) Type() TypeID       { return e.Ty }
func (e *Lit) Type() TypeID        { return e.Ty }
func (e *Block) Type() TypeID      { return e.Ty }
func (e *Let) Type() TypeID        { return e.Ty }
func (e *Closure) Type() TypeID    { return e.Ty }
func (e *Other) Type() TypeID      { return e.Ty }

func (*MethodCall) expr() {}
func (*Call) expr()       {}
func (*Path) expr()       {}
func (*Lit) expr()        {}
func (*Block) expr()      {}
func (*Let) expr()        {}
func (*Closure) expr()    {}
func (*Other) expr()      {}

// Crate is one analyzed translation unit.
type Crate struct {
	Name   string
	Target Target
	// Types is indexed by TypeID; Types[0] is the NoType placeholder.
	Types []Type
	Items []Item
}
