// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package root has the root chart command.
package root

import (
	"cogentcore.org/chart/base/logx"
	"cogentcore.org/chart/cmd/chart/root/render"
	"cogentcore.org/chart/cmd/chart/root/serve"
	"cogentcore.org/chart/cmd/chart/root/ticks"
	"cogentcore.org/chart/cmd/chart/root/watch"
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCmd returns the root command with all subcommands added.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart <command> [flags]",
		Short: "Render data files as plots",
		Long: heredoc.Doc(`
			Render CSV, TSV and JSON data files as line, bar and stem plots,
			to raster images, SVG or PDF, once, on every change, or live
			in a browser.

			Flags can also be set in the config file or as CHART_<FLAG>
			environment variables.
		`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := viper.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			logx.UserLevel = logx.LevelFromFlags(viper.GetBool("vv"), viper.GetBool("verbose"), viper.GetBool("quiet"))
			logx.SetDefaultLogger()
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Show info messages")
	pf.Bool("vv", false, "Show debug messages")
	pf.BoolP("quiet", "q", false, "Show only errors")

	cmd.AddCommand(render.NewRenderCmd())
	cmd.AddCommand(ticks.NewTicksCmd())
	cmd.AddCommand(watch.NewWatchCmd())
	cmd.AddCommand(serve.NewServeCmd())
	return cmd
}
