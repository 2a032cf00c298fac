// Copyright 2026 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

package lint

import (
	"fmt"

	"go-darwin.dev/semlint/pkg/hir"
)

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	}
	return "unknown"
}

// Applicability tells how confident a suggestion is.
type Applicability uint8

const (
	// MachineApplicable suggestions are definitely what the user intended.
	MachineApplicable Applicability = iota
	// MaybeIncorrect suggestions may be what the user intended, but it is uncertain.
	MaybeIncorrect
	// HasPlaceholders suggestions contain text the user has to fill in.
	HasPlaceholders
	// Unspecified suggestions have unknown applicability.
	Unspecified
)

func (a Applicability) String() string {
	switch a {
	case MachineApplicable:
		return "MachineApplicable"
	case MaybeIncorrect:
		return "MaybeIncorrect"
	case HasPlaceholders:
		return "HasPlaceholders"
	case Unspecified:
		return "Unspecified"
	}
	return fmt.Sprintf("Applicability(%d)", a)
}

// Suggestion is replacement text for the diagnostic's primary span.
type Suggestion struct {
	Message       string
	Replacement   string
	Applicability Applicability
}

// Diagnostic is one finding of a rule.
type Diagnostic struct {
	Rule       string
	Severity   Severity
	Span       hir.Span
	Message    string
	Help       string
	Suggestion *Suggestion
}

// Builder accumulates the optional parts of a diagnostic.
type Builder struct {
	d Diagnostic
}

// Warn starts a warning-level diagnostic for rule at span.
func Warn(rule string, span hir.Span, format string, args ...any) *Builder {
	return &Builder{d: Diagnostic{
		Rule:     rule,
		Severity: SevWarning,
		Span:     span,
		Message:  fmt.Sprintf(format, args...),
	}}
}

func (b *Builder) WithHelp(format string, args ...any) *Builder {
	b.d.Help = fmt.Sprintf(format, args...)
	return b
}

// WithSuggestion attaches replacement text for the primary span.
func (b *Builder) WithSuggestion(msg, replacement string, app Applicability) *Builder {
	b.d.Suggestion = &Suggestion{
		Message:       msg,
		Replacement:   replacement,
		Applicability: app,
	}
	return b
}

func (b *Builder) Diagnostic() Diagnostic {
	return b.d
}
