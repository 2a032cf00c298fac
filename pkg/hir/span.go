// Copyright 2026 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

package hir

import "fmt"

// Span is a byte range in a source file as recorded by the host.
//
// Line and Col locate Lo and are only used for rendering. FromExpansion reports
// whether the host produced the span while expanding a macro.
type Span struct {
	File          string `json:"file" msgpack:"file"`
	Lo            uint32 `json:"lo" msgpack:"lo"`
	Hi            uint32 `json:"hi" msgpack:"hi"`
	Line          uint32 `json:"line,omitempty" msgpack:"line,omitempty"`
	Col           uint32 `json:"col,omitempty" msgpack:"col,omitempty"`
	FromExpansion bool   `json:"from_expansion,omitempty" msgpack:"from_expansion,omitempty"`
}

// Before reports whether s sorts before other in source order.
func (s Span) Before(other Span) bool {
	if s.File != other.File {
		return s.File < other.File
	}
	if s.Lo != other.Lo {
		return s.Lo < other.Lo
	}
	return s.Hi < other.Hi
}

func (s Span) String() string {
	if s.Line > 0 {
		return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Col)
	}
	return fmt.Sprintf("%s:%d-%d", s.File, s.Lo, s.Hi)
}
