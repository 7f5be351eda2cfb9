// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package serve

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"cogentcore.org/chart/base/errors"
	"cogentcore.org/chart/internal/cliutil"
	"cogentcore.org/chart/plot/datafile"
	"cogentcore.org/chart/plot/plotweb"
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewServeCmd returns the command that serves a live plot of a data file.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve <data-file>",
		Short: "Serve a live plot of a data file in the browser",
		Long:  `Serve a web page showing the plot, which updates each time the data file changes.`,
		Example: heredoc.Doc(`
			$ chart serve --addr localhost:8080 sensor.csv
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := cliutil.PlotOptions()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			web := plotweb.NewServer()
			srv := &http.Server{Addr: viper.GetString("addr"), Handler: web.Handler()}
			go func() {
				fmt.Fprintf(cmd.OutOrStdout(), "Serving on http://%s\n", srv.Addr)
				if err := srv.ListenAndServe(); err != http.ErrServerClosed {
					errors.Log(err)
				}
			}()
			defer func() {
				sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				errors.Log(srv.Shutdown(sctx))
			}()

			return datafile.Watch(ctx, args[0], cliutil.ShowData(o, web.Update))
		},
	}

	cmd.Flags().String("addr", "localhost:8080", "Address to serve on")
	cliutil.AddPlotFlags(cmd)
	return cmd
}
