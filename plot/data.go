// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"image/color"
	"math"
	"slices"
	"strings"

	"cogentcore.org/chart/base/errors"
	"cogentcore.org/chart/base/reflectx"
	"cogentcore.org/chart/math32/minmax"
)

var (
	ErrInfinity = errors.New("plot: infinite data point")
	ErrNoData   = errors.New("plot: no data points")
)

// XY is a single data point.
type XY struct {
	X, Y float64
}

// XYs is an ordered sequence of data points.
// Nearest-point lookup assumes X is sorted ascending.
type XYs []XY

// Range returns the min / max range of X and Y values.
// Both ranges are invalid (Min > Max) if there are no points.
func (xys XYs) Range() (xr, yr minmax.F64) {
	xr.SetInfinity()
	yr.SetInfinity()
	for _, p := range xys {
		xr.FitValInRange(p.X)
		yr.FitValInRange(p.Y)
	}
	return
}

// CheckFloats returns an error if any of the arguments are Infinity,
// or if there are no non-NaN data points available for plotting.
func CheckFloats(fs ...float64) error {
	n := 0
	for _, f := range fs {
		switch {
		case math.IsNaN(f):
		case math.IsInf(f, 0):
			return ErrInfinity
		default:
			n++
		}
	}
	if n == 0 {
		return ErrNoData
	}
	return nil
}

// CopyXYs returns a copy of the given points, skipping any point
// with a NaN coordinate. It returns [ErrInfinity] if any point
// has an infinite coordinate.
func CopyXYs(xys XYs) (XYs, error) {
	cpy := make(XYs, 0, len(xys))
	for _, p := range xys {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			continue
		}
		if err := CheckFloats(p.X, p.Y); err != nil {
			return nil, err
		}
		cpy = append(cpy, p)
	}
	return cpy, nil
}

// Kinds are the render styles for a [Dataset].
type Kinds int32

const (
	// Line connects consecutive points with straight lines.
	Line Kinds = iota

	// Bar draws a vertical bar from zero to each point.
	Bar

	// Stem draws a vertical line from zero to each point,
	// with a marker at the point.
	Stem
)

var kindNames = [...]string{"line", "bar", "stem"}

func (k Kinds) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kinds(%d)", int32(k))
	}
	return kindNames[k]
}

// SetString sets the kind from its name, case insensitively.
func (k *Kinds) SetString(s string) error {
	for i, nm := range kindNames {
		if strings.EqualFold(s, nm) {
			*k = Kinds(i)
			return nil
		}
	}
	return fmt.Errorf("plot: %q is not a valid Kinds value", s)
}

func (k Kinds) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kinds) UnmarshalText(text []byte) error { return k.SetString(string(text)) }

// Dataset is one plotted series of points, with its render style.
type Dataset struct {

	// Name is shown in tooltips and the legend.
	Name string

	// XYs are the data points, sorted by X.
	XYs XYs

	// Kind is the render style.
	Kind Kinds

	// BarWidth is the width of bars as a fraction of the
	// smallest X spacing between points (1 = no gaps).
	BarWidth float64 `default:"0.8"`

	// Color of the lines, bars and markers.
	// If zero, a color is picked from the default palette.
	Color color.RGBA

	// LineWidth is the width of lines and stems, in pixels.
	LineWidth float64 `default:"1.5"`

	// MarkerSize is the radius of stem markers, in pixels.
	MarkerSize float64 `default:"3"`
}

// NewDataset returns a new line Dataset with a copy of the given points.
// NaN points are skipped; an infinite point is an error.
func NewDataset(name string, xys XYs) (*Dataset, error) {
	data, err := CopyXYs(xys)
	if err != nil {
		return nil, err
	}
	ds := &Dataset{Name: name, XYs: data}
	ds.Defaults()
	return ds, nil
}

// NewDatasetXY returns a new line Dataset from separate
// X and Y value slices, which must have the same length.
func NewDatasetXY(name string, x, y []float64) (*Dataset, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("plot: dataset %q has %d X values but %d Y values", name, len(x), len(y))
	}
	xys := make(XYs, len(x))
	for i := range x {
		xys[i] = XY{x[i], y[i]}
	}
	return NewDataset(name, xys)
}

// datasetDefaults holds the style values from the default tags.
var datasetDefaults = func() Dataset {
	var ds Dataset
	errors.Log(reflectx.SetFromDefaultTags(&ds))
	return ds
}()

// Defaults sets the style fields that are unset or out of range
// to their default values. BarWidth must be in (0, 1].
func (ds *Dataset) Defaults() {
	if ds.BarWidth <= 0 || ds.BarWidth > 1 {
		ds.BarWidth = datasetDefaults.BarWidth
	}
	if ds.LineWidth <= 0 {
		ds.LineWidth = datasetDefaults.LineWidth
	}
	if ds.MarkerSize <= 0 {
		ds.MarkerSize = datasetDefaults.MarkerSize
	}
}

// dropNonFinite removes NaN points, and logs and removes infinite
// ones, as [Dataset.Append] does for new points.
func (ds *Dataset) dropNonFinite() {
	if !slices.ContainsFunc(ds.XYs, func(p XY) bool { return !isFinite(p.X) || !isFinite(p.Y) }) {
		return
	}
	pts := ds.XYs
	ds.XYs = make(XYs, 0, len(pts))
	ds.Append(pts...)
}

// Append adds the given points, skipping NaN points and
// logging and skipping infinite ones. It returns the number added.
func (ds *Dataset) Append(pts ...XY) int {
	n := 0
	for _, p := range pts {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			continue
		}
		if errors.Log(CheckFloats(p.X, p.Y)) != nil {
			continue
		}
		ds.XYs = append(ds.XYs, p)
		n++
	}
	return n
}

// BarDataWidth returns the width of each bar in data units:
// BarWidth times the smallest X gap between consecutive points,
// or BarWidth itself if there are fewer than two distinct X values.
func (ds *Dataset) BarDataWidth() float64 {
	gap := math.Inf(1)
	for i := 1; i < len(ds.XYs); i++ {
		d := math.Abs(ds.XYs[i].X - ds.XYs[i-1].X)
		if d > 0 && d < gap {
			gap = d
		}
	}
	if math.IsInf(gap, 1) {
		gap = 1
	}
	return ds.BarWidth * gap
}
