// Copyright 2026 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

package atomicordering

// atomicTypes is the catalog of atomic wrapper types whose load and store
// calls are checked, keyed by canonical definition path.
var atomicTypes = map[string]struct{}{
	"core::sync::atomic::AtomicBool":  {},
	"core::sync::atomic::AtomicI8":    {},
	"core::sync::atomic::AtomicI16":   {},
	"core::sync::atomic::AtomicI32":   {},
	"core::sync::atomic::AtomicI64":   {},
	"core::sync::atomic::AtomicIsize": {},
	"core::sync::atomic::AtomicPtr":   {},
	"core::sync::atomic::AtomicU8":    {},
	"core::sync::atomic::AtomicU16":   {},
	"core::sync::atomic::AtomicU32":   {},
	"core::sync::atomic::AtomicU64":   {},
	"core::sync::atomic::AtomicUsize": {},
}

// IsAtomic reports whether path names one of the catalog atomic types.
func IsAtomic(path string) bool {
	_, ok := atomicTypes[path]
	return ok
}

// Op is an atomic operation whose ordering argument is checked.
type Op uint8

const (
	Load Op = iota
	Store
)

func (op Op) String() string {
	if op == Store {
		return "store"
	}
	return "load"
}

// opOf maps a method name to the checked operation.
func opOf(method string) (Op, bool) {
	switch method {
	case "load":
		return Load, true
	case "store":
		return Store, true
	}
	return 0, false
}

// orderingArg is the position of the ordering argument; Args[0] is the receiver.
func (op Op) orderingArg() int {
	if op == Store {
		return 2
	}
	return 1
}

// Ordering is a memory ordering variant.
type Ordering uint8

const (
	SeqCst Ordering = iota
	Acquire
	Release
	AcqRel
	Relaxed
)

var orderingNames = [...]string{
	SeqCst:  "SeqCst",
	Acquire: "Acquire",
	Release: "Release",
	AcqRel:  "AcqRel",
	Relaxed: "Relaxed",
}

func (o Ordering) String() string { return orderingNames[o] }

// Orderings lists every variant.
var Orderings = []Ordering{SeqCst, Acquire, Release, AcqRel, Relaxed}

type rule struct {
	disallowed map[Ordering]bool
	// valid is rendered in the help message, in this order.
	valid []Ordering
}

var rules = map[Op]rule{
	Store: {
		disallowed: map[Ordering]bool{Acquire: true, AcqRel: true},
		valid:      []Ordering{SeqCst, Release, Relaxed},
	},
	Load: {
		disallowed: map[Ordering]bool{Release: true, AcqRel: true},
		valid:      []Ordering{SeqCst, Acquire, Relaxed},
	},
}

// Valid reports whether ord may be used with op.
func Valid(op Op, ord Ordering) bool {
	return !rules[op].disallowed[ord]
}

// ValidOrderings returns the orderings accepted by op.
func ValidOrderings(op Op) []Ordering {
	return append([]Ordering(nil), rules[op].valid...)
}

// orderingPath is the canonical path of the Ordering enum; the root may be
// spelled "core" or "std".
var orderingPath = []string{"sync", "atomic", "Ordering"}

// orderingOf recognizes a direct reference to an Ordering variant. Written
// paths match by suffix, so `Ordering::Acquire` and a glob-imported `Acquire`
// both resolve. Anything else is not an ordering.
func orderingOf(segments []string) (Ordering, bool) {
	n := len(segments)
	if n == 0 || n > len(orderingPath)+2 {
		return 0, false
	}

	var ord Ordering
	found := false
	for _, o := range Orderings {
		if segments[n-1] == o.String() {
			ord, found = o, true
			break
		}
	}
	if !found {
		return 0, false
	}

	prefix := segments[:n-1]
	// prefix must be a suffix of root::sync::atomic::Ordering.
	for i := range prefix {
		seg := prefix[len(prefix)-1-i]
		if i < len(orderingPath) {
			if seg != orderingPath[len(orderingPath)-1-i] {
				return 0, false
			}
			continue
		}
		if seg != "core" && seg != "std" {
			return 0, false
		}
	}

	return ord, true
}
