// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package watch

import (
	"log/slog"

	"cogentcore.org/chart/base/errors"
	"cogentcore.org/chart/internal/cliutil"
	"cogentcore.org/chart/plot"
	"cogentcore.org/chart/plot/datafile"
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

// NewWatchCmd returns the command that re-renders a data file
// each time it changes.
func NewWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <data-file>",
		Short: "Render a data file again each time it changes",
		Example: heredoc.Doc(`
			$ chart watch -o live.svg --title "Live" sensor.csv
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := cliutil.PlotOptions()
			if err != nil {
				return err
			}
			out, err := cliutil.OutputName(args[0])
			if err != nil {
				return err
			}
			return datafile.Watch(cmd.Context(), args[0], cliutil.ShowData(o, func(pt *plot.Plot) {
				if errors.Log(pt.Export(out)) == nil {
					slog.Info("chart: wrote", "file", out)
				}
			}))
		},
	}

	cmd.Flags().StringP("output", "o", "", "Output file: .png, .jpg, .gif, .tif, .bmp, .svg or .pdf (default is the data file name with .png)")
	cliutil.AddPlotFlags(cmd)
	return cmd
}
