// Copyright 2026 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

package largedata_test

import (
	"go/types"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/analysis/analysistest"

	"go-darwin.dev/semlint/pkg/govet/largedata"
)

func TestAnalyzer(t *testing.T) {
	if types.SizesFor("gc", runtime.GOARCH).Sizeof(types.Typ[types.Uintptr]) != 8 {
		t.Skip("fixture expects a 64-bit word")
	}
	analysistest.Run(t, analysistest.TestData(), largedata.Analyzer, "a")
}

func TestAnalyzerSizeLimit(t *testing.T) {
	require.NoError(t, largedata.Analyzer.Flags.Set("size-limit", "64"))
	t.Cleanup(func() {
		require.NoError(t, largedata.Analyzer.Flags.Set("size-limit", "-1"))
	})

	analysistest.Run(t, analysistest.TestData(), largedata.Analyzer, "b")
}

func TestAnalyzerZeroSizeLimit(t *testing.T) {
	require.NoError(t, largedata.Analyzer.Flags.Set("size-limit", "0"))
	t.Cleanup(func() {
		require.NoError(t, largedata.Analyzer.Flags.Set("size-limit", "-1"))
	})

	analysistest.Run(t, analysistest.TestData(), largedata.Analyzer, "c")
}
