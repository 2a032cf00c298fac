// Copyright 2026 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

package atomicordering

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"go-darwin.dev/semlint/pkg/hir"
	"go-darwin.dev/semlint/pkg/lint"
	"go-darwin.dev/semlint/pkg/lint/mocks"
)

type AtomicOrderingSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	oracle *mocks.MockOracle
}

func TestAtomicOrderingSuite(t *testing.T) {
	suite.Run(t, new(AtomicOrderingSuite))
}

func (s *AtomicOrderingSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.oracle = mocks.NewMockOracle(s.ctrl)
}

func (s *AtomicOrderingSuite) TearDownTest() {
	s.ctrl.Finish()
}

var (
	recvSpan = hir.Span{File: "main.rs", Lo: 10, Hi: 11}
	valSpan  = hir.Span{File: "main.rs", Lo: 18, Hi: 20}
	ordSpan  = hir.Span{File: "main.rs", Lo: 22, Hi: 39, Line: 4, Col: 22}
)

// atomicCrate builds a type table with every catalog type plus a local type
// that shares the AtomicBool name.
func atomicCrate() (*hir.Crate, []hir.TypeID, hir.TypeID) {
	paths := make([]string, 0, len(atomicTypes))
	for p := range atomicTypes {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	c := &hir.Crate{Types: []hir.Type{{}}}
	ids := make([]hir.TypeID, 0, len(paths))
	for _, p := range paths {
		id := hir.TypeID(len(c.Types))
		c.Types = append(c.Types, hir.Type{ID: id, Kind: hir.KindAdt, Path: p})
		ids = append(ids, id)
	}
	local := hir.TypeID(len(c.Types))
	c.Types = append(c.Types, hir.Type{ID: local, Kind: hir.KindAdt, Path: "app::sync::AtomicBool"})

	return c, ids, local
}

func call(method string, recv hir.TypeID, ordering hir.Expr) *hir.MethodCall {
	args := []hir.Expr{&hir.Path{Span: recvSpan, Ty: recv, Segments: []string{"g"}}}
	if method == "store" || method == "swap" {
		args = append(args, &hir.Lit{Span: valSpan, Value: "10"})
	}
	args = append(args, ordering)
	return &hir.MethodCall{Method: method, Args: args}
}

func orderingPath(ord Ordering) *hir.Path {
	return &hir.Path{Span: ordSpan, Segments: []string{"Ordering", ord.String()}}
}

func check(o lint.Oracle, e hir.Expr) []lint.Diagnostic {
	var c lint.Collector
	Analyzer.CheckExpr(&lint.Pass{Analyzer: Analyzer, Oracle: o, Reporter: &c}, e)
	return c.Items()
}

func (s *AtomicOrderingSuite) TestCatalogGrid() {
	crate, ids, _ := atomicCrate()
	s.Require().Len(ids, 12)

	invalid := map[string]bool{
		"store/Acquire": true,
		"store/AcqRel":  true,
		"load/Release":  true,
		"load/AcqRel":   true,
	}
	for _, id := range ids {
		for _, method := range []string{"store", "load"} {
			for _, ord := range Orderings {
				key := method + "/" + ord.String()
				name := fmt.Sprintf("%s %s", crate.DefPath(id), key)
				diags := check(crate, call(method, id, orderingPath(ord)))
				if !invalid[key] {
					s.Empty(diags, name)
					continue
				}
				if s.Len(diags, 1, name) {
					s.Equal(ordSpan, diags[0].Span, name)
					s.Equal(lint.SevWarning, diags[0].Severity)
					s.Equal(Name, diags[0].Rule)
					s.Equal(fmt.Sprintf("`%s` is not a valid `atomic::Ordering` for `%s`", ord, method), diags[0].Message)
					s.Nil(diags[0].Suggestion)
				}
			}
		}
	}
}

func (s *AtomicOrderingSuite) TestHelpListsValidOrderings() {
	crate, ids, _ := atomicCrate()

	store := check(crate, call("store", ids[0], orderingPath(Acquire)))
	s.Require().Len(store, 1)
	s.Equal(`valid orderings are ["SeqCst", "Release", "Relaxed"]`, store[0].Help)

	load := check(crate, call("load", ids[0], orderingPath(AcqRel)))
	s.Require().Len(load, 1)
	s.Equal(`valid orderings are ["SeqCst", "Acquire", "Relaxed"]`, load[0].Help)
}

func (s *AtomicOrderingSuite) TestHelpMatchesValidityTable() {
	for _, op := range []Op{Load, Store} {
		var allowed []Ordering
		for _, ord := range Orderings {
			if Valid(op, ord) {
				allowed = append(allowed, ord)
			}
		}
		s.Equal(allowed, ValidOrderings(op), op.String())
		s.True(Valid(op, SeqCst))
		s.True(Valid(op, Relaxed))
	}
}

func (s *AtomicOrderingSuite) TestLocalTypeWithSameName() {
	crate, _, local := atomicCrate()
	s.Empty(check(crate, call("store", local, orderingPath(Acquire))))
	s.Empty(check(crate, call("load", local, orderingPath(Release))))
}

func (s *AtomicOrderingSuite) TestOrderingSpellings() {
	crate, ids, _ := atomicCrate()
	tests := map[string]struct {
		segments []string
		want     bool
	}{
		"core path":     {[]string{"core", "sync", "atomic", "Ordering", "AcqRel"}, true},
		"std path":      {[]string{"std", "sync", "atomic", "Ordering", "AcqRel"}, true},
		"module path":   {[]string{"atomic", "Ordering", "AcqRel"}, true},
		"glob imported": {[]string{"AcqRel"}, true},
		"other enum":    {[]string{"MyOrdering", "AcqRel"}, false},
		"other root":    {[]string{"alloc", "sync", "atomic", "Ordering", "AcqRel"}, false},
		"too long":      {[]string{"x", "core", "sync", "atomic", "Ordering", "AcqRel"}, false},
		"variable":      {[]string{"ord"}, false},
	}
	for name, tt := range tests {
		s.Run(name, func() {
			ord := &hir.Path{Span: ordSpan, Segments: tt.segments}
			diags := check(crate, call("store", ids[0], ord))
			s.Equal(tt.want, len(diags) == 1)
		})
	}
}

func (s *AtomicOrderingSuite) TestIndirectOrderingIgnored() {
	crate, ids, _ := atomicCrate()
	indirect := &hir.Call{
		Span: ordSpan,
		Func: &hir.Path{Segments: []string{"pick_ordering"}},
	}
	s.Empty(check(crate, call("store", ids[0], indirect)))
}

func (s *AtomicOrderingSuite) TestOtherMethodsIgnored() {
	crate, ids, _ := atomicCrate()
	s.Empty(check(crate, call("swap", ids[0], orderingPath(Acquire))))
	s.Empty(check(crate, call("fetch_add", ids[0], orderingPath(AcqRel))))
}

func (s *AtomicOrderingSuite) TestLoadSeqCst() {
	crate, ids, _ := atomicCrate()
	for _, id := range ids {
		s.Empty(check(crate, call("load", id, orderingPath(SeqCst))))
	}
}

func (s *AtomicOrderingSuite) TestNonAtomicReceiverStopsEarly() {
	recv := &hir.Path{Span: recvSpan, Ty: 7, Segments: []string{"v"}}
	e := &hir.MethodCall{Method: "store", Args: []hir.Expr{recv, &hir.Lit{}, orderingPath(Acquire)}}

	s.oracle.EXPECT().TypeOf(recv).Return(hir.TypeID(7))
	s.oracle.EXPECT().DefPath(hir.TypeID(7)).Return("alloc::vec::Vec")

	s.Empty(check(s.oracle, e))
}

func (s *AtomicOrderingSuite) TestMissingArguments() {
	recv := &hir.Path{Span: recvSpan, Ty: 1, Segments: []string{"g"}}
	e := &hir.MethodCall{Method: "store", Args: []hir.Expr{recv, &hir.Lit{}}}

	s.oracle.EXPECT().TypeOf(recv).Return(hir.TypeID(1))
	s.oracle.EXPECT().DefPath(hir.TypeID(1)).Return("core::sync::atomic::AtomicU8")

	s.Empty(check(s.oracle, e))
	s.Empty(check(s.oracle, &hir.MethodCall{Method: "load"}))
}

func (s *AtomicOrderingSuite) TestNonCallExpressions() {
	s.Empty(check(s.oracle, orderingPath(Acquire)))
	s.Empty(check(s.oracle, &hir.Block{}))
}
