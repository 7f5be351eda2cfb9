// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cliutil has the flag, config and output helpers
// shared by the chart commands.
package cliutil

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/chart/math32/minmax"
	"github.com/spf13/cobra"
)

// AddPlotFlags adds the flags that set plot options and
// the dataset kind.
func AddPlotFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("title", "", "Plot title")
	f.String("xlabel", "", "X axis label")
	f.String("ylabel", "", "Y axis label")
	f.String("undertitle", "", "Text shown below the plot")
	f.Bool("grid", true, "Draw grid lines at the ticks")
	f.Bool("xnumbers", true, "Show the X tick labels")
	f.Bool("ynumbers", true, "Show the Y tick labels")
	f.String("xlim", "", "X axis limits as min,max where either end can be empty (e.g. 0, or ,10)")
	f.String("ylim", "", "Y axis limits as min,max where either end can be empty")
	f.String("kind", "", "Draw every dataset as line, bar or stem")
	f.Int("width", 640, "Image width in pixels")
	f.Int("height", 480, "Image height in pixels")
	f.String("options", "", "Plot options file (.toml or .yaml)")
	f.String("locale", "", "Locale for tick labels (default is the system locale)")
}

// ParseLimit parses an axis limit of the form "min,max", where
// either end can be empty to leave it automatic. An empty string
// is no limit.
func ParseLimit(s string) (minmax.Range64, error) {
	var r minmax.Range64
	s = strings.TrimSpace(s)
	if s == "" {
		return r, nil
	}
	lo, hi, ok := strings.Cut(s, ",")
	if !ok {
		return r, fmt.Errorf("limit %q must be of the form min,max", s)
	}
	if lo = strings.TrimSpace(lo); lo != "" {
		v, err := strconv.ParseFloat(lo, 64)
		if err != nil {
			return r, fmt.Errorf("limit %q: min: %w", s, err)
		}
		r.SetMin(v)
	}
	if hi = strings.TrimSpace(hi); hi != "" {
		v, err := strconv.ParseFloat(hi, 64)
		if err != nil {
			return r, fmt.Errorf("limit %q: max: %w", s, err)
		}
		r.SetMax(v)
	}
	if r.FixMin && r.FixMax && !(r.Min < r.Max) {
		return r, fmt.Errorf("limit %q: min must be less than max", s)
	}
	return r, nil
}
