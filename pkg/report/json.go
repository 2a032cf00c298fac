// Copyright 2026 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

package report

import (
	"io"

	json "github.com/goccy/go-json"

	"go-darwin.dev/semlint/pkg/hir"
	"go-darwin.dev/semlint/pkg/lint"
)

// LocationJSON is the primary span of a diagnostic.
type LocationJSON struct {
	File string `json:"file"`
	Lo   uint32 `json:"lo"`
	Hi   uint32 `json:"hi"`
	Line uint32 `json:"line,omitempty"`
	Col  uint32 `json:"col,omitempty"`
}

type SuggestionJSON struct {
	Message       string `json:"message"`
	Replacement   string `json:"replacement"`
	Applicability string `json:"applicability"`
}

type DiagnosticJSON struct {
	Unit       string          `json:"unit,omitempty"`
	Rule       string          `json:"rule"`
	Severity   string          `json:"severity"`
	Message    string          `json:"message"`
	Help       string          `json:"help,omitempty"`
	Location   LocationJSON    `json:"location"`
	Suggestion *SuggestionJSON `json:"suggestion,omitempty"`
}

// Output is the root of the JSON report.
type Output struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// Unit is the diagnostics of one analyzed unit.
type Unit struct {
	Name        string
	Diagnostics []lint.Diagnostic
}

func location(s hir.Span) LocationJSON {
	return LocationJSON{File: s.File, Lo: s.Lo, Hi: s.Hi, Line: s.Line, Col: s.Col}
}

// NewOutput flattens units into the JSON report layout.
func NewOutput(units []Unit) Output {
	out := Output{Diagnostics: []DiagnosticJSON{}}
	for _, u := range units {
		for _, d := range u.Diagnostics {
			dj := DiagnosticJSON{
				Unit:     u.Name,
				Rule:     d.Rule,
				Severity: d.Severity.String(),
				Message:  d.Message,
				Help:     d.Help,
				Location: location(d.Span),
			}
			if s := d.Suggestion; s != nil {
				dj.Suggestion = &SuggestionJSON{
					Message:       s.Message,
					Replacement:   s.Replacement,
					Applicability: s.Applicability.String(),
				}
			}
			out.Diagnostics = append(out.Diagnostics, dj)
		}
	}
	out.Count = len(out.Diagnostics)

	return out
}

// JSON writes units as an indented JSON document.
func JSON(w io.Writer, units []Unit) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewOutput(units))
}
