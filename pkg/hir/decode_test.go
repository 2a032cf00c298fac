// Copyright 2026 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

package hir

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

const sampleDump = `{
  "name": "sample",
  "target": {"triple": "x86_64-unknown-linux-gnu", "pointer_width": 64},
  "types": [
    {"id": 1, "kind": "adt", "path": "core::sync::atomic::AtomicBool", "size": 1},
    {"id": 2, "kind": "adt", "path": "core::sync::atomic::Ordering", "copy": true, "size": 1},
    {"id": 3, "kind": "adt", "path": "sample::A", "copy": true, "size": 4096},
    {"id": 4, "kind": "prim", "path": "", "copy": true, "size": 0}
  ],
  "items": [
    {"kind": "fn", "name": "main", "span": {"file": "main.rs", "lo": 0, "hi": 90},
     "body": {"kind": "block", "span": {"file": "main.rs", "lo": 10, "hi": 90}, "ty": 4, "stmts": [
       {"kind": "let", "span": {"file": "main.rs", "lo": 12, "hi": 40}, "name": "g", "init":
         {"kind": "call", "span": {"file": "main.rs", "lo": 20, "hi": 39}, "ty": 1,
          "func": {"kind": "path", "span": {"file": "main.rs", "lo": 20, "hi": 35}, "segments": ["AtomicBool", "new"]},
          "args": [{"kind": "lit", "span": {"file": "main.rs", "lo": 36, "hi": 38}, "value": "true"}]}},
       {"kind": "method_call", "span": {"file": "main.rs", "lo": 45, "hi": 80}, "ty": 4, "method": "store", "args": [
         {"kind": "path", "span": {"file": "main.rs", "lo": 45, "hi": 46}, "ty": 1, "segments": ["g"]},
         {"kind": "lit", "span": {"file": "main.rs", "lo": 53, "hi": 57}, "value": "true"},
         {"kind": "path", "span": {"file": "main.rs", "lo": 59, "hi": 76, "line": 3, "col": 19}, "ty": 2, "segments": ["Ordering", "Acquire"]}
       ]},
       {"kind": "index", "span": {"file": "main.rs", "lo": 81, "hi": 85}, "children": [
         {"kind": "lit", "span": {"file": "main.rs", "lo": 82, "hi": 83}, "value": "0"}
       ]}
     ]}},
    {"kind": "trait", "name": "C", "span": {"file": "main.rs", "lo": 100, "hi": 140}, "items": [
      {"name": "bad", "span": {"file": "main.rs", "lo": 110, "hi": 138}, "params": [
        {"span": {"file": "main.rs", "lo": 117, "hi": 122}, "snippet": "self", "ty": 3, "is_self": true},
        {"span": {"file": "main.rs", "lo": 129, "hi": 130}, "snippet": "A", "ty": 3}
      ]}
    ]},
    {"kind": "mod", "name": "inner", "span": {"file": "main.rs", "lo": 150, "hi": 200}, "items": [
      {"kind": "impl", "trait": "C", "self_ty": 3, "span": {"file": "main.rs", "lo": 160, "hi": 199}, "fns": [
        {"kind": "fn", "name": "bad", "abi": "", "attrs": [{"name": "inline"}], "span": {"file": "main.rs", "lo": 170, "hi": 198}}
      ]}
    ]}
  ]
}`

func TestUnmarshal(t *testing.T) {
	c, err := Unmarshal([]byte(sampleDump))
	require.NoError(t, err)

	assert.Equal(t, "sample", c.Name)
	assert.Equal(t, uint32(64), c.Target.PointerWidth)
	require.Len(t, c.Types, 5)
	assert.Equal(t, KindAdt, c.Types[3].Kind)
	require.NotNil(t, c.Types[3].Size)
	assert.Equal(t, uint64(4096), *c.Types[3].Size)

	require.Len(t, c.Items, 3)
	main, ok := c.Items[0].(*Fn)
	require.True(t, ok)
	assert.Equal(t, DefaultABI, main.EffectiveABI())

	body, ok := main.Body.(*Block)
	require.True(t, ok)
	require.Len(t, body.Stmts, 3)

	call, ok := body.Stmts[1].(*MethodCall)
	require.True(t, ok)
	assert.Equal(t, "store", call.Method)
	require.Len(t, call.Args, 3)
	ord, ok := call.Args[2].(*Path)
	require.True(t, ok)
	assert.Equal(t, []string{"Ordering", "Acquire"}, ord.Segments)
	assert.Equal(t, "main.rs:3:19", ord.Span.String())

	other, ok := body.Stmts[2].(*Other)
	require.True(t, ok, "unknown expression kinds decode as Other")
	assert.Len(t, other.Children, 1)

	trait, ok := c.Items[1].(*Trait)
	require.True(t, ok)
	require.Len(t, trait.Items, 1)
	assert.True(t, trait.Items[0].Params[0].IsSelf)

	mod, ok := c.Items[2].(*Mod)
	require.True(t, ok)
	impl, ok := mod.Items[0].(*Impl)
	require.True(t, ok)
	assert.False(t, impl.IsInherent())
	assert.Equal(t, []Attr{{Name: "inline"}}, impl.Fns[0].Attrs)
}

func TestUnmarshalErrors(t *testing.T) {
	const target = `"target": {"triple": "x86_64-unknown-linux-gnu", "pointer_width": 64}`
	tests := map[string]string{
		"malformed":      `{"items": [`,
		"reserved id":    `{` + target + `, "types": [{"id": 0, "kind": "adt"}]}`,
		"duplicate id":   `{` + target + `, "types": [{"id": 1, "kind": "adt"}, {"id": 1, "kind": "prim"}]}`,
		"sparse id":      `{` + target + `, "types": [{"id": 1, "kind": "adt"}, {"id": 3, "kind": "prim"}]}`,
		"huge id":        `{` + target + `, "types": [{"id": 4294967295, "kind": "adt"}], "items": []}`,
		"unknown item":   `{` + target + `, "items": [{"kind": "static", "span": {"file": "a.rs"}}]}`,
		"unknown in mod": `{` + target + `, "items": [{"kind": "mod", "items": [{"kind": "use"}]}]}`,
		"no target":      `{"items": []}`,
		"odd width":      `{"target": {"triple": "weird", "pointer_width": 12}, "items": []}`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Unmarshal([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestUnmarshalTypeIDRange(t *testing.T) {
	_, err := Unmarshal([]byte(`{"target": {"pointer_width": 64}, "types": [{"id": 20000000, "kind": "adt", "path": "big::T"}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id 20000000 out of range for 1 types")

	c, err := Unmarshal([]byte(`{"target": {"pointer_width": 32}, "types": [{"id": 2, "kind": "prim"}, {"id": 1, "kind": "adt"}]}`))
	require.NoError(t, err)
	assert.Len(t, c.Types, 3)
	assert.True(t, c.IsAdt(1))
}

func TestTargetValidate(t *testing.T) {
	assert.NoError(t, Target{PointerWidth: 16}.Validate())
	assert.NoError(t, Target{PointerWidth: 64}.Validate())
	assert.Error(t, Target{}.Validate())
	assert.Error(t, Target{PointerWidth: 63}.Validate())
}

func TestUnmarshalMsgpack(t *testing.T) {
	size := uint64(24)
	raw := rawCrate{
		Name:   "packed",
		Target: Target{Triple: "i686-unknown-linux-gnu", PointerWidth: 32},
		Types:  []rawType{{ID: 1, Kind: "adt", Path: "packed::S", Copy: true, Size: &size}},
		Items: []*rawItem{{
			Kind: "fn",
			Name: "f",
			Span: Span{File: "lib.rs", Lo: 0, Hi: 20},
			Params: []*rawParam{
				{Span: Span{File: "lib.rs", Lo: 5, Hi: 6}, Snippet: "S", Ty: 1},
			},
		}},
	}
	data, err := msgpack.Marshal(&raw)
	require.NoError(t, err)

	c, err := Decode(bytes.NewReader(data), FormatMsgpack)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), c.Target.PointerBytes())
	fn := c.Items[0].(*Fn)
	require.Len(t, fn.Params, 1)
	assert.Equal(t, TypeID(1), fn.Params[0].Ty)
	got, ok := c.SizeOf(fn.Params[0].Ty)
	assert.True(t, ok)
	assert.Equal(t, size, got)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unnamed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"target": {"pointer_width": 64}, "items": []}`), 0o644))

	c, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "unnamed", c.Name)

	_, err = ReadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, FormatMsgpack, FormatOf("crate.MSGPACK"))
	assert.Equal(t, FormatMsgpack, FormatOf("crate.mp"))
	assert.Equal(t, FormatJSON, FormatOf("crate.json"))
	assert.Equal(t, FormatJSON, FormatOf("crate"))
}

func TestOracle(t *testing.T) {
	c, err := Unmarshal([]byte(sampleDump))
	require.NoError(t, err)

	assert.Equal(t, "core::sync::atomic::AtomicBool", c.DefPath(1))
	assert.True(t, c.IsAdt(3))
	assert.False(t, c.IsAdt(4))
	assert.False(t, c.IsCopy(1))
	assert.True(t, c.IsCopy(3))

	_, ok := c.SizeOf(NoType)
	assert.False(t, ok)
	_, ok = c.SizeOf(99)
	assert.False(t, ok)
	assert.Equal(t, "", c.DefPath(99))
	assert.Equal(t, NoType, c.TypeOf(nil))
}
