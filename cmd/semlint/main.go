// Copyright 2026 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command semlint runs semantic lint rules over program dumps.
//
//	semlint check [flags] <dump.json|dump.msgpack>...
//	semlint rules
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	exitSuccess = iota
	exitFailure
	exitFindings
)

const (
	fnameDebug        = "debug"
	fnameColor        = "color"
	fnameDenyWarnings = "deny-warnings"
)

var (
	flagDebug bool
	flagColor string
)

var log = logr.Discard()

var rootCmd = &cobra.Command{
	Use:           "semlint",
	Short:         "Semantic lint rules for resolved programs",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(*cobra.Command, []string) error {
		return setupLogger()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, fnameDebug, false, "debug log output")
	rootCmd.PersistentFlags().StringVar(&flagColor, fnameColor, "auto", "colorize output (auto|on|off)")

	rootCmd.AddCommand(checkCmd, rulesCmd)
}

func setupLogger() error {
	lvl := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	zl, err := zap.NewDevelopment(zap.IncreaseLevel(lvl), zap.AddCaller(), zap.AddStacktrace(zapcore.DPanicLevel))
	if err != nil {
		return fmt.Errorf("new zap development logger: %w", err)
	}
	if flagDebug {
		lvl.SetLevel(zapcore.DebugLevel)
	}
	log = zapr.NewLogger(zl)

	return nil
}

func main() {
	os.Exit(execute())
}

func execute() int {
	err := rootCmd.Execute()
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, errFindings):
		return exitFindings
	default:
		fmt.Fprintf(os.Stderr, "semlint: %v\n", err)
		return exitFailure
	}
}
