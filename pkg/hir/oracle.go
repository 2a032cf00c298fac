// Copyright 2026 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

package hir

// The methods below answer type and layout queries from the type table the host
// recorded in the dump. Unknown IDs behave like an opaque, non-copyable type with
// no layout.

// Lookup returns the type recorded for id.
func (c *Crate) Lookup(id TypeID) (Type, bool) {
	if id == NoType || int(id) >= len(c.Types) {
		return Type{}, false
	}
	return c.Types[id], true
}

// TypeOf returns the resolved type of e.
func (c *Crate) TypeOf(e Expr) TypeID {
	if e == nil {
		return NoType
	}
	return e.Type()
}

// DefPath returns the canonical identity of a nominal type, or "".
func (c *Crate) DefPath(id TypeID) string {
	t, _ := c.Lookup(id)
	return t.Path
}

func (c *Crate) IsAdt(id TypeID) bool {
	t, ok := c.Lookup(id)
	return ok && t.Kind == KindAdt
}

func (c *Crate) IsCopy(id TypeID) bool {
	t, _ := c.Lookup(id)
	return t.Copy
}

// SizeOf returns the size of id in bytes. It reports false for unsized or
// still-generic types.
func (c *Crate) SizeOf(id TypeID) (uint64, bool) {
	t, ok := c.Lookup(id)
	if !ok || t.Size == nil || t.Kind == KindParam {
		return 0, false
	}
	return *t.Size, true
}
