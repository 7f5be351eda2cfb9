// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"cogentcore.org/chart/base/errors"
	"cogentcore.org/chart/base/reflectx"
	"cogentcore.org/chart/base/iox/tomlx"
	"cogentcore.org/chart/base/iox/yamlx"
	"cogentcore.org/chart/math32/minmax"
	"github.com/jinzhu/copier"
	"github.com/lucasb-eyer/go-colorful"
)

// Options are the overall plot parameters: chrome, axis limits
// and view behavior.
type Options struct {

	// Title is shown centered above the plot area.
	Title string

	// XLabel is the label of the X axis.
	XLabel string

	// YLabel is the label of the Y axis, shown above the plot area.
	YLabel string

	// Undertitle is shown centered below the plot.
	Undertitle string

	// Grid draws grid lines at the tick positions.
	Grid bool `default:"true"`

	// XNumbers shows the X tick labels.
	XNumbers bool `default:"true"`

	// YNumbers shows the Y tick labels.
	YNumbers bool `default:"true"`

	// Border is the blank space around the plot area, outside
	// the space measured for titles, labels and tick labels.
	Border Borders

	// XLimit fixes either end of the X axis bounds.
	XLimit minmax.Range64

	// YLimit fixes either end of the Y axis bounds.
	YLimit minmax.Range64

	// ZoomLimit keeps the visible area inside the bounds when
	// zooming and panning, on each axis that has a limit.
	ZoomLimit bool

	// Locale is the BCP 47 language tag used for tick labels.
	Locale string `default:"en"`

	// Width is the default export width in pixels.
	Width int `default:"640"`

	// Height is the default export height in pixels.
	Height int `default:"480"`

	// Background is the background color, in hex.
	Background string `default:"#ffffff"`

	// Foreground is the color of text, axes and ticks, in hex.
	Foreground string `default:"#202020"`

	// GridColor is the color of grid lines, in hex.
	GridColor string `default:"#dcdcdc"`
}

// Borders are the margins around the plot area, in pixels.
type Borders struct {
	Left   int `default:"8"`
	Top    int `default:"8"`
	Right  int `default:"24"`
	Bottom int `default:"8"`
}

// Defaults sets all options to the values of their default tags.
func (o *Options) Defaults() {
	*o = Options{}
	errors.Log(reflectx.SetFromDefaultTags(o))
}

// Defaults sets the default margins.
func (b *Borders) Defaults() {
	*b = Borders{}
	errors.Log(reflectx.SetFromDefaultTags(b))
}

// Clone returns a deep copy of the options.
func (o *Options) Clone() *Options {
	cp := &Options{}
	errors.Log(copier.CopyWithOption(cp, o, copier.Option{DeepCopy: true}))
	return cp
}

// OpenOptions loads options from a TOML or YAML file, chosen by
// extension, on top of the default values.
func OpenOptions(filename string) (*Options, error) {
	o := &Options{}
	o.Defaults()
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = tomlx.Open(o, filename)
	case ".yaml", ".yml":
		err = yamlx.Open(o, filename)
	default:
		return nil, fmt.Errorf("plot: options file %q must be .toml or .yaml", filename)
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

// SaveOptions writes options to a TOML or YAML file, chosen by extension.
func SaveOptions(o *Options, filename string) error {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		return tomlx.Save(o, filename)
	case ".yaml", ".yml":
		return yamlx.Save(o, filename)
	}
	return fmt.Errorf("plot: options file %q must be .toml or .yaml", filename)
}

// parseColor parses a hex color, returning fallback if it is invalid.
func parseColor(hex string, fallback color.RGBA) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}
}

func (o *Options) background() color.RGBA {
	return parseColor(o.Background, color.RGBA{255, 255, 255, 255})
}

func (o *Options) foreground() color.RGBA {
	return parseColor(o.Foreground, color.RGBA{32, 32, 32, 255})
}

func (o *Options) gridColor() color.RGBA {
	return parseColor(o.GridColor, color.RGBA{220, 220, 220, 255})
}

// paletteColor returns the default color for the i-th dataset,
// stepping hue by the golden angle at constant chroma and lightness.
func paletteColor(i int) color.RGBA {
	h := float64(i) * 137.508
	for h >= 360 {
		h -= 360
	}
	c := colorful.Hcl(h+20, 0.6, 0.55).Clamped()
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}
}
