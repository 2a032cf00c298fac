// Copyright 2026 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

package hir

import "fmt"

// TypeID indexes Crate.Types. The zero value means "no type".
type TypeID uint32

const NoType TypeID = 0

// TypeKind is the coarse shape of a resolved type.
type TypeKind uint8

const (
	KindOther TypeKind = iota
	// KindAdt is a nominal aggregate: struct, enum or union.
	KindAdt
	KindRef
	KindPtr
	KindPrim
	KindArray
	KindSlice
	KindTuple
	// KindParam is a generic parameter that is still unresolved.
	KindParam
	KindFnPtr
)

var kindNames = [...]string{
	KindOther: "other",
	KindAdt:   "adt",
	KindRef:   "ref",
	KindPtr:   "ptr",
	KindPrim:  "prim",
	KindArray: "array",
	KindSlice: "slice",
	KindTuple: "tuple",
	KindParam: "param",
	KindFnPtr: "fnptr",
}

func (k TypeKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("TypeKind(%d)", k)
}

// ParseTypeKind maps the dump spelling of a kind back to TypeKind.
// Unknown spellings decode as KindOther.
func ParseTypeKind(s string) TypeKind {
	for k, name := range kindNames {
		if name == s {
			return TypeKind(k)
		}
	}
	return KindOther
}

// Type is one resolved type as computed by the host.
type Type struct {
	ID   TypeID
	Kind TypeKind
	// Path is the canonical definition path of a nominal type,
	// e.g. "core::sync::atomic::AtomicBool". Empty for structural types.
	Path string
	Copy bool
	// Size is nil when the host could not compute a layout.
	Size *uint64
}

// Target describes the properties of the compilation target.
type Target struct {
	Triple       string `json:"triple" msgpack:"triple"`
	PointerWidth uint32 `json:"pointer_width" msgpack:"pointer_width"` // bits
}

// Validate reports an error unless the pointer width is a positive multiple
// of 8 bits.
func (t Target) Validate() error {
	if t.PointerWidth == 0 || t.PointerWidth%8 != 0 {
		return fmt.Errorf("target %q: invalid pointer width %d", t.Triple, t.PointerWidth)
	}
	return nil
}

// PointerBytes returns the native word size in bytes. A zero Target, used only
// to list rule names, reports 8.
func (t Target) PointerBytes() uint64 {
	if t.PointerWidth == 0 {
		return 8
	}
	return uint64(t.PointerWidth) / 8
}
