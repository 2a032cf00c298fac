// Copyright 2026 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package report renders diagnostics for people and tools.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"go-darwin.dev/semlint/pkg/lint"
)

// TextOptions controls Text output.
type TextOptions struct {
	// Color forces colored output on or off; nil follows the terminal.
	Color *bool
	// Summary appends a line with the warning count.
	Summary bool
}

type palette struct {
	warning, error, info, bold, arrow, help *color.Color
}

func newPalette(opts TextOptions) palette {
	p := palette{
		warning: color.New(color.FgYellow, color.Bold),
		error:   color.New(color.FgRed, color.Bold),
		info:    color.New(color.FgCyan, color.Bold),
		bold:    color.New(color.Bold),
		arrow:   color.New(color.FgBlue, color.Bold),
		help:    color.New(color.FgGreen),
	}
	if opts.Color != nil {
		for _, c := range []*color.Color{p.warning, p.error, p.info, p.bold, p.arrow, p.help} {
			if *opts.Color {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
		}
	}
	return p
}

func (p palette) severity(s lint.Severity) *color.Color {
	switch s {
	case lint.SevError:
		return p.error
	case lint.SevInfo:
		return p.info
	}
	return p.warning
}

// Text writes diags in a compiler-like layout:
//
//	warning[rule]: message
//	  --> file:line:col
//	   = help: help text
func Text(w io.Writer, diags []lint.Diagnostic, opts TextOptions) error {
	p := newPalette(opts)
	var warnings int

	for _, d := range diags {
		if d.Severity == lint.SevWarning {
			warnings++
		}
		if _, err := fmt.Fprintf(w, "%s%s\n",
			p.severity(d.Severity).Sprintf("%s[%s]", d.Severity, d.Rule),
			p.bold.Sprintf(": %s", d.Message),
		); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  %s %s\n", p.arrow.Sprint("-->"), d.Span); err != nil {
			return err
		}
		if d.Help != "" {
			if _, err := fmt.Fprintf(w, "   %s %s\n", p.arrow.Sprint("="), p.help.Sprintf("help: %s", d.Help)); err != nil {
				return err
			}
		}
		if s := d.Suggestion; s != nil {
			if _, err := fmt.Fprintf(w, "   %s %s `%s`\n", p.arrow.Sprint("="),
				p.help.Sprintf("help: %s:", s.Message), s.Replacement); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	if opts.Summary && warnings > 0 {
		plural := "s"
		if warnings == 1 {
			plural = ""
		}
		if _, err := fmt.Fprintf(w, "%s\n", p.warning.Sprintf("warning: %d warning%s emitted", warnings, plural)); err != nil {
			return err
		}
	}

	return nil
}
