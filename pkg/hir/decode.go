// Copyright 2026 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

package hir

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
)

// Format is the serialization of a program dump.
type Format string

const (
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

// FormatOf guesses the dump format from a file name.
func FormatOf(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".msgpack", ".mp", ".mpk":
		return FormatMsgpack
	default:
		return FormatJSON
	}
}

// ReadFile reads and decodes the program dump stored at path.
func ReadFile(path string) (*Crate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s dump: %w", path, err)
	}
	defer f.Close()

	c, err := Decode(f, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if c.Name == "" {
		c.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return c, nil
}

// Decode reads a whole dump from r.
func Decode(r io.Reader, format Format) (*Crate, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatMsgpack:
		return UnmarshalMsgpack(data)
	case FormatJSON, "":
		return Unmarshal(data)
	default:
		return nil, fmt.Errorf("unknown dump format %q", format)
	}
}

// Unmarshal parses a JSON-encoded program dump.
func Unmarshal(data []byte) (*Crate, error) {
	var raw rawCrate
	if err := json.UnmarshalNoEscape(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal data: %w", err)
	}

	return raw.crate()
}

// UnmarshalMsgpack parses a msgpack-encoded program dump.
func UnmarshalMsgpack(data []byte) (*Crate, error) {
	var raw rawCrate
	if err := msgpack.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal msgpack data: %w", err)
	}

	return raw.crate()
}

// The raw* types mirror the dump layout. Node kinds are tagged with a "kind"
// string and flattened into one struct per category.

type rawCrate struct {
	Name   string     `json:"name" msgpack:"name"`
	Target Target     `json:"target" msgpack:"target"`
	Types  []rawType  `json:"types" msgpack:"types"`
	Items  []*rawItem `json:"items" msgpack:"items"`
}

type rawType struct {
	ID   TypeID  `json:"id" msgpack:"id"`
	Kind string  `json:"kind" msgpack:"kind"`
	Path string  `json:"path,omitempty" msgpack:"path,omitempty"`
	Copy bool    `json:"copy,omitempty" msgpack:"copy,omitempty"`
	Size *uint64 `json:"size,omitempty" msgpack:"size,omitempty"`
}

type rawAttr struct {
	Name    string `json:"name" msgpack:"name"`
	HasList bool   `json:"has_list,omitempty" msgpack:"has_list,omitempty"`
}

type rawParam struct {
	Span    Span   `json:"span" msgpack:"span"`
	Snippet string `json:"snippet" msgpack:"snippet"`
	Ty      TypeID `json:"ty" msgpack:"ty"`
	IsSelf  bool   `json:"is_self,omitempty" msgpack:"is_self,omitempty"`
}

type rawItem struct {
	Kind   string      `json:"kind" msgpack:"kind"`
	Name   string      `json:"name,omitempty" msgpack:"name,omitempty"`
	Span   Span        `json:"span" msgpack:"span"`
	ABI    string      `json:"abi,omitempty" msgpack:"abi,omitempty"`
	Attrs  []rawAttr   `json:"attrs,omitempty" msgpack:"attrs,omitempty"`
	Params []*rawParam `json:"params,omitempty" msgpack:"params,omitempty"`
	Body   *rawExpr    `json:"body,omitempty" msgpack:"body,omitempty"`
	Trait  string      `json:"trait,omitempty" msgpack:"trait,omitempty"`
	SelfTy TypeID      `json:"self_ty,omitempty" msgpack:"self_ty,omitempty"`
	Fns    []*rawItem  `json:"fns,omitempty" msgpack:"fns,omitempty"`
	Items  []*rawItem  `json:"items,omitempty" msgpack:"items,omitempty"`
}

type rawExpr struct {
	Kind     string      `json:"kind" msgpack:"kind"`
	Span     Span        `json:"span" msgpack:"span"`
	Ty       TypeID      `json:"ty,omitempty" msgpack:"ty,omitempty"`
	Method   string      `json:"method,omitempty" msgpack:"method,omitempty"`
	Func     *rawExpr    `json:"func,omitempty" msgpack:"func,omitempty"`
	Args     []*rawExpr  `json:"args,omitempty" msgpack:"args,omitempty"`
	Segments []string    `json:"segments,omitempty" msgpack:"segments,omitempty"`
	Value    string      `json:"value,omitempty" msgpack:"value,omitempty"`
	Stmts    []*rawExpr  `json:"stmts,omitempty" msgpack:"stmts,omitempty"`
	Name     string      `json:"name,omitempty" msgpack:"name,omitempty"`
	Init     *rawExpr    `json:"init,omitempty" msgpack:"init,omitempty"`
	Params   []*rawParam `json:"params,omitempty" msgpack:"params,omitempty"`
	Body     *rawExpr    `json:"body,omitempty" msgpack:"body,omitempty"`
	Children []*rawExpr  `json:"children,omitempty" msgpack:"children,omitempty"`
}

func (r *rawCrate) crate() (*Crate, error) {
	if err := r.Target.Validate(); err != nil {
		return nil, err
	}

	types, err := buildTypes(r.Types)
	if err != nil {
		return nil, err
	}

	items, err := buildItems(r.Items)
	if err != nil {
		return nil, err
	}

	return &Crate{
		Name:   r.Name,
		Target: r.Target,
		Types:  types,
		Items:  items,
	}, nil
}

func buildTypes(raw []rawType) ([]Type, error) {
	// Ids are dense: with n types every id lies in [1, n].
	n := len(raw)
	types := make([]Type, n+1)
	seen := make([]bool, n+1)
	for _, t := range raw {
		switch {
		case t.ID == NoType:
			return nil, fmt.Errorf("type %q: id 0 is reserved", t.Path)
		case int64(t.ID) > int64(n):
			return nil, fmt.Errorf("type %q: id %d out of range for %d types", t.Path, t.ID, n)
		case seen[t.ID]:
			return nil, fmt.Errorf("duplicate type id %d", t.ID)
		}
		seen[t.ID] = true
		types[t.ID] = Type{
			ID:   t.ID,
			Kind: ParseTypeKind(t.Kind),
			Path: t.Path,
			Copy: t.Copy,
			Size: t.Size,
		}
	}

	return types, nil
}

func buildItems(raw []*rawItem) ([]Item, error) {
	items := make([]Item, 0, len(raw))
	for _, r := range raw {
		if r == nil {
			continue
		}
		it, err := r.item()
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return items, nil
}

func (r *rawItem) item() (Item, error) {
	switch r.Kind {
	case "fn":
		return r.fn(), nil

	case "trait":
		t := &Trait{Name: r.Name, Span: r.Span}
		for _, ri := range r.Items {
			if ri == nil {
				continue
			}
			t.Items = append(t.Items, &TraitFn{
				Name:   ri.Name,
				Span:   ri.Span,
				Params: buildParams(ri.Params),
				Body:   ri.Body.expr(),
			})
		}
		return t, nil

	case "impl":
		impl := &Impl{Span: r.Span, Trait: r.Trait, SelfTy: r.SelfTy}
		for _, rf := range r.Fns {
			if rf == nil {
				continue
			}
			impl.Fns = append(impl.Fns, rf.fn())
		}
		return impl, nil

	case "mod":
		items, err := buildItems(r.Items)
		if err != nil {
			return nil, fmt.Errorf("mod %s: %w", r.Name, err)
		}
		return &Mod{Name: r.Name, Span: r.Span, Items: items}, nil

	default:
		return nil, fmt.Errorf("%s: unknown item kind %q", r.Span, r.Kind)
	}
}

func (r *rawItem) fn() *Fn {
	fn := &Fn{
		Name:   r.Name,
		Span:   r.Span,
		ABI:    r.ABI,
		Params: buildParams(r.Params),
		Body:   r.Body.expr(),
	}
	for _, a := range r.Attrs {
		fn.Attrs = append(fn.Attrs, Attr(a))
	}

	return fn
}

func buildParams(raw []*rawParam) []*Param {
	params := make([]*Param, 0, len(raw))
	for _, p := range raw {
		if p == nil {
			continue
		}
		params = append(params, &Param{
			Span:    p.Span,
			Snippet: p.Snippet,
			Ty:      p.Ty,
			IsSelf:  p.IsSelf,
		})
	}

	return params
}

func (r *rawExpr) expr() Expr {
	if r == nil {
		return nil
	}

	switch r.Kind {
	case "method_call":
		return &MethodCall{Span: r.Span, Ty: r.Ty, Method: r.Method, Args: buildExprs(r.Args)}
	case "call":
		return &Call{Span: r.Span, Ty: r.Ty, Func: r.Func.expr(), Args: buildExprs(r.Args)}
	case "path":
		return &Path{Span: r.Span, Ty: r.Ty, Segments: r.Segments}
	case "lit":
		return &Lit{Span: r.Span, Ty: r.Ty, Value: r.Value}
	case "block":
		return &Block{Span: r.Span, Ty: r.Ty, Stmts: buildExprs(r.Stmts)}
	case "let":
		return &Let{Span: r.Span, Ty: r.Ty, Name: r.Name, Init: r.Init.expr()}
	case "closure":
		return &Closure{Span: r.Span, Ty: r.Ty, Params: buildParams(r.Params), Body: r.Body.expr()}
	default:
		return &Other{Span: r.Span, Ty: r.Ty, Children: buildExprs(r.Children)}
	}
}

func buildExprs(raw []*rawExpr) []Expr {
	list := make([]Expr, 0, len(raw))
	for _, r := range raw {
		if e := r.expr(); e != nil {
			list = append(list, e)
		}
	}

	return list
}
