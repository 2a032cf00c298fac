// Copyright 2026 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

package largedata

import (
	"go/token"
	"go/types"

	"fortio.org/safecast"
	"golang.org/x/tools/go/types/typeutil"

	"go-darwin.dev/semlint/pkg/hir"
	"go-darwin.dev/semlint/pkg/lint"
)

// typeOracle answers lint.Oracle queries with go/types. Types are interned so
// identical types share one hir.TypeID.
type typeOracle struct {
	sizes types.Sizes
	ids   typeutil.Map
	types []types.Type // indexed by hir.TypeID
}

var _ lint.Oracle = (*typeOracle)(nil)

func newTypeOracle(sizes types.Sizes) *typeOracle {
	return &typeOracle{sizes: sizes, types: []types.Type{nil}}
}

func (o *typeOracle) intern(t types.Type) hir.TypeID {
	if t == nil {
		return hir.NoType
	}
	if id, ok := o.ids.At(t).(hir.TypeID); ok {
		return id
	}
	id := hir.TypeID(len(o.types))
	o.types = append(o.types, t)
	o.ids.Set(t, id)
	return id
}

func (o *typeOracle) lookup(id hir.TypeID) types.Type {
	if id == hir.NoType || int(id) >= len(o.types) {
		return nil
	}
	return o.types[id]
}

func (o *typeOracle) TypeOf(e hir.Expr) hir.TypeID {
	if e == nil {
		return hir.NoType
	}
	return e.Type()
}

func (o *typeOracle) DefPath(id hir.TypeID) string {
	named, ok := o.lookup(id).(*types.Named)
	if !ok {
		return ""
	}
	obj := named.Obj()
	if obj.Pkg() == nil {
		return obj.Name()
	}
	return obj.Pkg().Path() + "." + obj.Name()
}

// IsAdt reports whether id is a defined struct type.
func (o *typeOracle) IsAdt(id hir.TypeID) bool {
	named, ok := o.lookup(id).(*types.Named)
	if !ok {
		return false
	}
	_, ok = named.Underlying().(*types.Struct)
	return ok
}

// IsCopy reports whether values of id may be copied: they must contain no
// lock and no sync/atomic value.
func (o *typeOracle) IsCopy(id hir.TypeID) bool {
	t := o.lookup(id)
	return t != nil && !containsLock(t, make(map[types.Type]bool))
}

func (o *typeOracle) SizeOf(id hir.TypeID) (uint64, bool) {
	t := o.lookup(id)
	if t == nil || dependsOnTypeParams(t, make(map[types.Type]bool)) {
		return 0, false
	}
	size, err := safecast.Conv[uint64](o.sizes.Sizeof(t))
	if err != nil {
		return 0, false
	}
	return size, true
}

var lockerType = func() *types.Interface {
	nullary := types.NewSignatureType(nil, nil, nil, nil, nil, false)
	methods := []*types.Func{
		types.NewFunc(token.NoPos, nil, "Lock", nullary),
		types.NewFunc(token.NoPos, nil, "Unlock", nullary),
	}
	return types.NewInterfaceType(methods, nil).Complete()
}()

// containsLock follows the copylocks rule: a type is a lock when a pointer to
// it is a sync.Locker but the value is not.
func containsLock(t types.Type, seen map[types.Type]bool) bool {
	if seen[t] {
		return false
	}
	seen[t] = true

	if named, ok := t.(*types.Named); ok {
		if pkg := named.Obj().Pkg(); pkg != nil && pkg.Path() == "sync/atomic" {
			return true
		}
	}

	switch u := t.Underlying().(type) {
	case *types.Array:
		return containsLock(u.Elem(), seen)
	case *types.Struct:
		for i := 0; i < u.NumFields(); i++ {
			if containsLock(u.Field(i).Type(), seen) {
				return true
			}
		}
	case *types.Interface, *types.Pointer:
		return false
	}

	return types.Implements(types.NewPointer(t), lockerType) && !types.Implements(t, lockerType)
}

// dependsOnTypeParams reports whether the layout of t needs an instantiation.
func dependsOnTypeParams(t types.Type, seen map[types.Type]bool) bool {
	if seen[t] {
		return false
	}
	seen[t] = true

	switch t := t.(type) {
	case *types.TypeParam:
		return true
	case *types.Named:
		if args := t.TypeArgs(); args != nil {
			for i := 0; i < args.Len(); i++ {
				if dependsOnTypeParams(args.At(i), seen) {
					return true
				}
			}
		}
		if t.TypeParams().Len() > 0 && t.TypeArgs().Len() == 0 {
			return true
		}
		return dependsOnTypeParams(t.Underlying(), seen)
	case *types.Struct:
		for i := 0; i < t.NumFields(); i++ {
			if dependsOnTypeParams(t.Field(i).Type(), seen) {
				return true
			}
		}
	case *types.Array:
		return dependsOnTypeParams(t.Elem(), seen)
	}

	return false
}
