// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"log/slog"

	"cogentcore.org/chart/internal/cliutil"
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

// NewRenderCmd returns the command that renders a data file once.
func NewRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <data-file>",
		Short: "Render a data file to an image, SVG or PDF",
		Long:  `Render a CSV, TSV or JSON data file, with the output format chosen by the output file extension.`,
		Example: heredoc.Doc(`
			# Render a CSV file to sales.png
			$ chart render sales.csv

			# Render bars to SVG with a title and fixed Y axis
			$ chart render -o sales.svg --kind bar --title "Sales" --ylim 0,100 sales.csv
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pt, err := cliutil.LoadPlot(args[0])
			if err != nil {
				return err
			}
			out, err := cliutil.OutputName(args[0])
			if err != nil {
				return err
			}
			if err := pt.Export(out); err != nil {
				return err
			}
			slog.Info("chart: wrote", "file", out)
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "Output file: .png, .jpg, .gif, .tif, .bmp, .svg or .pdf (default is the data file name with .png)")
	cliutil.AddPlotFlags(cmd)
	return cmd
}
