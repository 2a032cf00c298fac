// Copyright 2026 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"go-darwin.dev/semlint/pkg/config"
	"go-darwin.dev/semlint/pkg/engine"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the registered rules",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.ConfigFromFlags(cmd.Flags())
		if err != nil {
			return fmt.Errorf("parse configs: %w", err)
		}
		return listRules(cmd.OutOrStdout(), cfg)
	},
}

func init() {
	config.RegisterFlags(rulesCmd.Flags())
}

type ruleJSON struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Enabled  bool   `json:"enabled"`
	Doc      string `json:"doc"`
}

func listRules(w io.Writer, cfg *config.Config) error {
	eng, err := engine.New(cfg)
	if err != nil {
		return err
	}
	rules := eng.Rules()

	if cfg.Format == config.FormatJSON {
		out := make([]ruleJSON, 0, len(rules))
		for _, r := range rules {
			out = append(out, ruleJSON{Name: r.Name, Category: string(r.Category), Enabled: r.Enabled, Doc: r.Doc})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, r := range rules {
		state := "enabled"
		if !r.Enabled {
			state = "disabled"
		}
		if _, err := fmt.Fprintf(w, "%-24s %-12s %-9s %s\n", r.Name, r.Category, state, r.Doc); err != nil {
			return err
		}
	}

	return nil
}
