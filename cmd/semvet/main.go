// Copyright 2026 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command semvet reports large structs passed by value in Go packages.
//
// It is a vet tool: run it with `go vet -vettool=$(which semvet) ./...`.
package main

import (
	"golang.org/x/tools/go/analysis/unitchecker"

	"go-darwin.dev/semlint/pkg/govet/largedata"
)

func main() {
	unitchecker.Main(
		largedata.Analyzer,
	)
}
