// Copyright 2026 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	"go-darwin.dev/semlint/pkg/config"
	"go-darwin.dev/semlint/pkg/engine"
	"go-darwin.dev/semlint/pkg/hir"
	"go-darwin.dev/semlint/pkg/lint"
	"go-darwin.dev/semlint/pkg/report"
)

func init() {
	spew.Config = spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		ContinueOnMethod:        true,
		SortKeys:                true,
		SpewKeys:                true,
	}

	config.RegisterFlags(checkCmd.Flags())
	checkCmd.Flags().Bool(fnameDenyWarnings, false, "exit with status 2 when any diagnostic is emitted")
}

// errFindings is returned when diagnostics were emitted under --deny-warnings.
var errFindings = errors.New("diagnostics emitted")

var checkCmd = &cobra.Command{
	Use:   "check [flags] <dump>...",
	Short: "Run the enabled rules over program dumps",
	Long: `Run the enabled rules over one or more program dumps. Files ending in
.msgpack, .mp or .mpk are read as MessagePack, anything else as JSON.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	opts, err := checkOptionsFromFlags(cmd.Flags())
	if err != nil {
		return err
	}

	return check(cmd.Context(), cmd.OutOrStdout(), opts, args)
}

type checkOptions struct {
	config       *config.Config
	color        *bool
	denyWarnings bool
}

func checkOptionsFromFlags(flags *flag.FlagSet) (*checkOptions, error) {
	cfg, err := config.ConfigFromFlags(flags)
	if err != nil {
		return nil, fmt.Errorf("parse configs: %w", err)
	}
	deny, err := flags.GetBool(fnameDenyWarnings)
	if err != nil {
		return nil, err
	}
	color, err := colorMode(flagColor)
	if err != nil {
		return nil, err
	}

	return &checkOptions{config: cfg, color: color, denyWarnings: deny}, nil
}

func colorMode(mode string) (*bool, error) {
	on, off := true, false
	switch mode {
	case "", "auto":
		return nil, nil
	case "on", "always":
		return &on, nil
	case "off", "never":
		return &off, nil
	default:
		return nil, fmt.Errorf("unknown color mode %q", mode)
	}
}

func check(ctx context.Context, w io.Writer, opts *checkOptions, paths []string) error {
	units := make([]*hir.Crate, 0, len(paths))
	for _, path := range paths {
		c, err := hir.ReadFile(path)
		if err != nil {
			return err
		}
		log.V(1).Info("read dump", "path", path, "unit", c.Name, "target", c.Target.Triple, "items", len(c.Items))
		if flagDebug {
			log.V(1).Info(spew.Sdump(c))
		}
		units = append(units, c)
	}

	eng, err := engine.New(opts.config, engine.WithLogger(log.WithName("engine")))
	if err != nil {
		return err
	}
	results, err := eng.RunAll(ctx, units)
	if err != nil {
		return err
	}

	var total int
	for _, r := range results {
		total += len(r.Diagnostics)
	}

	if err := render(w, opts, results); err != nil {
		return err
	}
	if opts.denyWarnings && total > 0 {
		return errFindings
	}

	return nil
}

func render(w io.Writer, opts *checkOptions, results []engine.Result) error {
	switch opts.config.Format {
	case config.FormatJSON:
		units := make([]report.Unit, 0, len(results))
		for _, r := range results {
			units = append(units, report.Unit{Name: r.Unit, Diagnostics: r.Diagnostics})
		}
		return report.JSON(w, units)
	default:
		var diags []lint.Diagnostic
		for _, r := range results {
			diags = append(diags, r.Diagnostics...)
		}
		lint.Sort(diags)
		return report.Text(w, diags, report.TextOptions{Color: opts.color, Summary: true})
	}
}
