// Copyright 2026 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

package lint

//go:generate mockgen -source=reporter.go -destination=mocks/reporter.go -package=mocks Reporter

import (
	"sort"
	"sync"
)

// Reporter receives diagnostics from the checks.
type Reporter interface {
	Report(d Diagnostic)
}

// Collector is a Reporter that keeps diagnostics in arrival order.
// It is safe for concurrent use.
type Collector struct {
	mu    sync.Mutex
	items []Diagnostic
}

var _ Reporter = (*Collector)(nil)

func (c *Collector) Report(d Diagnostic) {
	c.mu.Lock()
	c.items = append(c.items, d)
	c.mu.Unlock()
}

func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Items returns a copy of the collected diagnostics.
func (c *Collector) Items() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Diagnostic(nil), c.items...)
}

// Sort orders diags by file, span, then rule name. The sort is stable so
// diagnostics at the same span keep their arrival order.
func Sort(diags []Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		di, dj := diags[i], diags[j]
		if di.Span.Before(dj.Span) {
			return true
		}
		if dj.Span.Before(di.Span) {
			return false
		}
		return di.Rule < dj.Rule
	})
}
