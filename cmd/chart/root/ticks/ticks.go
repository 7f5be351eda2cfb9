// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"fmt"
	"strconv"

	"cogentcore.org/chart/internal/cliutil"
	"cogentcore.org/chart/plot"
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewTicksCmd returns the command that prints the axis ticks for a range.
func NewTicksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ticks <min> <max>",
		Short: "Print the axis ticks for a range",
		Example: heredoc.Doc(`
			$ chart ticks 0 4000
			$ chart ticks --locale de --format json -- -1.5 2
		`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lo, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("min: %w", err)
			}
			hi, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("max: %w", err)
			}
			loc := viper.GetString("locale")
			if loc == "" {
				loc = cliutil.SystemLocale()
			}
			ticks, err := plot.Ticks(lo, hi, loc)
			if err != nil {
				return err
			}
			text := make([]string, len(ticks))
			for i, t := range ticks {
				text[i] = fmt.Sprintf("%g\t%s", t.Value, t.Label)
			}
			return cliutil.WriteOutput(cmd.OutOrStdout(), viper.GetString("format"), ticks, text)
		},
	}

	cmd.Flags().String("locale", "", "Locale for tick labels (default is the system locale)")
	cmd.Flags().String("format", "text", "Output format: text, json or yaml")
	return cmd
}
