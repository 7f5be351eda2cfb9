// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cliutil

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"cogentcore.org/chart/base/errors"
	"cogentcore.org/chart/math32/minmax"
	"cogentcore.org/chart/plot"
	"cogentcore.org/chart/plot/datafile"
	"github.com/jeandeaual/go-locale"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// SystemLocale returns the locale of the user's system,
// or "en" if it cannot be determined.
func SystemLocale() string {
	loc, err := locale.GetLocale()
	if err != nil || loc == "" {
		return "en"
	}
	return loc
}

// PlotOptions returns the plot options from, in increasing priority,
// the defaults, the options file, the config file or environment,
// and the command line flags.
func PlotOptions() (*plot.Options, error) {
	o := &plot.Options{}
	o.Defaults()
	fromFile := false
	if fn := viper.GetString("options"); fn != "" {
		path, err := homedir.Expand(fn)
		if err != nil {
			return nil, err
		}
		o, err = plot.OpenOptions(path)
		if err != nil {
			return nil, err
		}
		fromFile = true
	}
	for key, dst := range map[string]*string{
		"title":      &o.Title,
		"xlabel":     &o.XLabel,
		"ylabel":     &o.YLabel,
		"undertitle": &o.Undertitle,
		"locale":     &o.Locale,
	} {
		if viper.IsSet(key) {
			*dst = viper.GetString(key)
		}
	}
	for key, dst := range map[string]*bool{
		"grid":     &o.Grid,
		"xnumbers": &o.XNumbers,
		"ynumbers": &o.YNumbers,
	} {
		if viper.IsSet(key) {
			*dst = viper.GetBool(key)
		}
	}
	if viper.IsSet("width") {
		o.Width = viper.GetInt("width")
	}
	if viper.IsSet("height") {
		o.Height = viper.GetInt("height")
	}
	if o.Width <= 0 || o.Height <= 0 {
		return nil, fmt.Errorf("image size %dx%d must be positive", o.Width, o.Height)
	}
	if err := setLimit("xlim", &o.XLimit); err != nil {
		return nil, err
	}
	if err := setLimit("ylim", &o.YLimit); err != nil {
		return nil, err
	}
	if !viper.IsSet("locale") && !fromFile {
		o.Locale = SystemLocale()
	}
	return o, nil
}

// setLimit sets the limit from the given key, if it is set.
func setLimit(key string, lim *minmax.Range64) error {
	if !viper.IsSet(key) {
		return nil
	}
	r, err := ParseLimit(viper.GetString(key))
	if err != nil {
		return fmt.Errorf("--%s: %w", key, err)
	}
	*lim = r
	return nil
}

// ApplyKind sets the kind of every dataset, if kind is not empty.
func ApplyKind(sets []*plot.Dataset, kind string) error {
	if kind == "" {
		return nil
	}
	var k plot.Kinds
	if err := k.SetString(kind); err != nil {
		return err
	}
	for _, ds := range sets {
		ds.Kind = k
	}
	return nil
}

// NewPlot returns a plot with the given options, sized to the
// options' width and height, showing the given datasets with
// the kind from the "kind" setting applied.
func NewPlot(o *plot.Options, sets []*plot.Dataset) (*plot.Plot, error) {
	if err := ApplyKind(sets, viper.GetString("kind")); err != nil {
		return nil, err
	}
	pt := plot.New()
	pt.SetOptions(o)
	pt.Resize(image.Pt(o.Width, o.Height))
	pt.SetData(sets...)
	return pt, nil
}

// LoadPlot loads the data file and returns a plot of it
// with the options from [PlotOptions].
func LoadPlot(filename string) (*plot.Plot, error) {
	o, err := PlotOptions()
	if err != nil {
		return nil, err
	}
	sets, err := datafile.Open(filename)
	if err != nil {
		return nil, err
	}
	return NewPlot(o, sets)
}

// OutputName returns the "output" setting, or the data file
// name with a .png extension if it is not set.
func OutputName(dataFile string) (string, error) {
	if out := viper.GetString("output"); out != "" {
		return homedir.Expand(out)
	}
	return strings.TrimSuffix(dataFile, filepath.Ext(dataFile)) + ".png", nil
}

// ShowData returns a function for [datafile.Watch] that shows each
// new set of datasets on a plot, created on first use, and then
// calls show with the plot. Errors are logged.
func ShowData(o *plot.Options, show func(pt *plot.Plot)) func(sets []*plot.Dataset) {
	var pt *plot.Plot
	return func(sets []*plot.Dataset) {
		if pt == nil {
			p, err := NewPlot(o, sets)
			if errors.Log(err) != nil {
				return
			}
			pt = p
		} else {
			if errors.Log(ApplyKind(sets, viper.GetString("kind"))) != nil {
				return
			}
			pt.SetData(sets...)
		}
		show(pt)
	}
}
