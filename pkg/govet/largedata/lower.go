// Copyright 2026 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

package largedata

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/tools/go/analysis"

	"go-darwin.dev/semlint/pkg/hir"
)

// abiAsm and abiC mark Go functions that do not use the Go calling
// convention from the caller's point of view.
const (
	abiAsm = "asm"
	abiC   = "C"
)

// lowerer turns the declarations of one package into hir items.
type lowerer struct {
	pass   *analysis.Pass
	oracle *typeOracle
	files  map[string]*token.File
	// impls maps a defined type to the interfaces asserted for it with
	// `var _ I = T{}` or `var _ I = (*T)(nil)`.
	impls map[*types.TypeName][]*types.Interface
	names map[*types.Interface]string
}

func newLowerer(pass *analysis.Pass, oracle *typeOracle) *lowerer {
	l := &lowerer{
		pass:   pass,
		oracle: oracle,
		files:  make(map[string]*token.File),
		impls:  make(map[*types.TypeName][]*types.Interface),
		names:  make(map[*types.Interface]string),
	}
	for _, f := range pass.Files {
		if tf := pass.Fset.File(f.Pos()); tf != nil {
			l.files[tf.Name()] = tf
		}
		l.collectAssertions(f)
	}
	return l
}

func (l *lowerer) collectAssertions(f *ast.File) {
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.VAR {
			continue
		}
		for _, spec := range gd.Specs {
			vs := spec.(*ast.ValueSpec)
			if vs.Type == nil {
				continue
			}
			t := l.pass.TypesInfo.TypeOf(vs.Type)
			if t == nil {
				continue
			}
			iface, ok := t.Underlying().(*types.Interface)
			if !ok {
				continue
			}
			for i, name := range vs.Names {
				if name.Name != "_" || i >= len(vs.Values) {
					continue
				}
				if tn := definedType(l.pass.TypesInfo.TypeOf(vs.Values[i])); tn != nil {
					l.impls[tn] = append(l.impls[tn], iface)
					l.names[iface] = types.ExprString(vs.Type)
				}
			}
		}
	}
}

func definedType(t types.Type) *types.TypeName {
	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}
	if named, ok := t.(*types.Named); ok {
		return named.Obj()
	}
	return nil
}

// span converts a source range to a hir.Span. Offsets that do not fit are
// clamped to the start of the file.
func (l *lowerer) span(node ast.Node, generated bool) hir.Span {
	start := l.pass.Fset.Position(node.Pos())
	end := l.pass.Fset.Position(node.End())
	lo, _ := safecast.Conv[uint32](start.Offset)
	hi, _ := safecast.Conv[uint32](end.Offset)
	line, _ := safecast.Conv[uint32](start.Line)
	col, _ := safecast.Conv[uint32](start.Column)
	return hir.Span{
		File:          start.Filename,
		Lo:            lo,
		Hi:            hi,
		Line:          line,
		Col:           col,
		FromExpansion: generated,
	}
}

// pos maps a hir.Span back to the position of its first byte.
func (l *lowerer) pos(s hir.Span) token.Pos {
	tf, ok := l.files[s.File]
	if !ok || int(s.Lo) > tf.Size() {
		return token.NoPos
	}
	return tf.Pos(int(s.Lo))
}

func (l *lowerer) params(fields *ast.FieldList, self bool, generated bool) []*hir.Param {
	if fields == nil {
		return nil
	}
	var params []*hir.Param
	for _, field := range fields.List {
		p := hir.Param{
			Span:    l.span(field.Type, generated),
			Snippet: types.ExprString(field.Type),
			Ty:      l.oracle.intern(l.pass.TypesInfo.TypeOf(field.Type)),
			IsSelf:  self,
		}
		n := len(field.Names)
		if n == 0 {
			n = 1
		}
		for i := 0; i < n; i++ {
			p := p
			params = append(params, &p)
		}
	}
	return params
}

// file lowers the declarations of f in source order.
func (l *lowerer) file(f *ast.File) []hir.Item {
	generated := ast.IsGenerated(f)

	var items []hir.Item
	for _, decl := range f.Decls {
		switch decl := decl.(type) {
		case *ast.FuncDecl:
			fn := &hir.Fn{
				Name:   decl.Name.Name,
				Span:   l.span(decl, generated),
				ABI:    abiOf(decl),
				Params: append(l.params(decl.Recv, true, generated), l.params(decl.Type.Params, false, generated)...),
			}
			if decl.Recv == nil {
				items = append(items, fn)
				continue
			}
			items = append(items, &hir.Impl{
				Span:   fn.Span,
				Trait:  l.implementedInterface(decl),
				SelfTy: fn.Params[0].Ty,
				Fns:    []*hir.Fn{fn},
			})

		case *ast.GenDecl:
			if decl.Tok != token.TYPE {
				continue
			}
			for _, spec := range decl.Specs {
				ts := spec.(*ast.TypeSpec)
				it, ok := ts.Type.(*ast.InterfaceType)
				if !ok {
					continue
				}
				items = append(items, l.iface(ts, it, generated))
			}
		}
	}
	return items
}

func (l *lowerer) iface(ts *ast.TypeSpec, it *ast.InterfaceType, generated bool) *hir.Trait {
	trait := &hir.Trait{Name: ts.Name.Name, Span: l.span(ts, generated)}
	for _, m := range it.Methods.List {
		ft, ok := m.Type.(*ast.FuncType)
		if !ok || len(m.Names) == 0 {
			continue
		}
		trait.Items = append(trait.Items, &hir.TraitFn{
			Name:   m.Names[0].Name,
			Span:   l.span(m, generated),
			Params: l.params(ft.Params, false, generated),
		})
	}
	return trait
}

// implementedInterface returns the asserted interface that declares the
// method, or "" for methods that implement none.
func (l *lowerer) implementedInterface(decl *ast.FuncDecl) string {
	obj, ok := l.pass.TypesInfo.Defs[decl.Name].(*types.Func)
	if !ok {
		return ""
	}
	recv := obj.Type().(*types.Signature).Recv()
	if recv == nil {
		return ""
	}
	tn := definedType(recv.Type())
	for _, iface := range l.impls[tn] {
		for i := 0; i < iface.NumMethods(); i++ {
			if iface.Method(i).Name() == decl.Name.Name {
				return l.names[iface]
			}
		}
	}
	return ""
}

// abiOf reports a non-default ABI for functions implemented outside Go and
// for functions exported to C.
func abiOf(decl *ast.FuncDecl) string {
	if decl.Body == nil {
		return abiAsm
	}
	if decl.Doc != nil {
		for _, c := range decl.Doc.List {
			if strings.HasPrefix(c.Text, "//export ") {
				return abiC
			}
		}
	}
	return ""
}
