// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot provides a 2D line, bar and stem plot: data to pixel
// coordinate mapping, nice axis ticks, bounding boxes with axis limits,
// zoom and pan of the visible area, nearest point lookup, and raster
// and vector rendering.
//
// A Plot is not safe for concurrent use; all calls are expected
// to come from a single goroutine, typically a GUI event loop.
package plot

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"cogentcore.org/chart/base/errors"
)

// Plot owns a set of datasets and the state that maps them
// onto a pixel area: bounds, visible source area, plot area and ticks.
type Plot struct {

	// Options has the chrome, limits and view behavior.
	Options Options

	// Datasets are drawn in order.
	Datasets []*Dataset

	// Size is the full size of the plot image in pixels.
	Size image.Point

	// Bounds is the data bounding box, after axis limits.
	Bounds Rect

	// Source is the data area currently visible.
	Source Rect

	// Dest is the pixel area the data is drawn into:
	// Size minus the [Plot.Margins].
	Dest image.Rectangle

	// XTicks and YTicks are the ticks for the current Source.
	XTicks, YTicks []Tick

	// Tracked is the highlighted point, if any.
	Tracked *Hit

	// zoomed is set once the user changes the view, so that
	// data updates no longer refit the view to the bounds.
	zoomed bool

	// manualRefresh defers recomputing after data and limit
	// changes until Refresh is called.
	manualRefresh bool
}

// New returns a new empty Plot with default options,
// sized to the default width and height.
func New() *Plot {
	pt := &Plot{}
	pt.Options.Defaults()
	pt.Size = image.Pt(pt.Options.Width, pt.Options.Height)
	pt.Refresh()
	return pt
}

// SetOptions replaces the options with a copy of the given ones
// and refreshes the plot.
func (pt *Plot) SetOptions(o *Options) {
	pt.Options = *o.Clone()
	pt.Refresh()
}

// SetData replaces all datasets. NaN points are dropped, and
// infinite points are logged and dropped.
func (pt *Plot) SetData(sets ...*Dataset) {
	pt.Datasets = make([]*Dataset, 0, len(sets))
	for _, ds := range sets {
		if ds == nil {
			continue
		}
		ds.Defaults()
		ds.dropNonFinite()
		pt.Datasets = append(pt.Datasets, ds)
	}
	pt.Tracked = nil
	pt.autoRefresh()
}

// AddDataset adds a dataset after the existing ones,
// dropping its non-finite points as [Plot.SetData] does.
func (pt *Plot) AddDataset(ds *Dataset) {
	if ds == nil {
		return
	}
	ds.Defaults()
	ds.dropNonFinite()
	pt.Datasets = append(pt.Datasets, ds)
	pt.autoRefresh()
}

// AppendData appends points to the dataset at index i.
// An index equal to the number of datasets adds a new dataset.
// NaN points are skipped and infinite points are logged and skipped.
func (pt *Plot) AppendData(i int, pts ...XY) error {
	switch {
	case i == len(pt.Datasets):
		ds := &Dataset{Name: fmt.Sprintf("data %d", i)}
		ds.Defaults()
		pt.Datasets = append(pt.Datasets, ds)
	case i < 0 || i > len(pt.Datasets):
		return fmt.Errorf("plot: AppendData: dataset index %d out of range [0, %d]", i, len(pt.Datasets))
	}
	pt.Datasets[i].Append(pts...)
	pt.autoRefresh()
	return nil
}

// Clear removes all datasets.
func (pt *Plot) Clear() {
	pt.SetData()
}

// Refresh recomputes the bounds, the visible area, the ticks and
// the plot area. Unless the user has zoomed or panned, the visible
// area follows the bounds.
func (pt *Plot) Refresh() {
	pt.updateBounds()
	if !pt.zoomed || pt.Source.IsEmpty() {
		pt.Source = pt.Bounds
	} else if pt.Options.ZoomLimit {
		pt.Source = pt.clampView(pt.Source)
	}
	pt.updateView()
}

// SetAutoRefresh sets whether data and limit changes are applied
// at once (the default). Turn it off to add data in batches,
// then call [Plot.Refresh] once at the end.
func (pt *Plot) SetAutoRefresh(on bool) {
	pt.manualRefresh = !on
}

// AutoRefresh returns whether data and limit changes are applied at once.
func (pt *Plot) AutoRefresh() bool { return !pt.manualRefresh }

func (pt *Plot) autoRefresh() {
	if !pt.manualRefresh {
		pt.Refresh()
	}
}

// Resize sets the full pixel size of the plot.
// Negative sizes are treated as zero.
func (pt *Plot) Resize(sz image.Point) {
	sz.X = max(sz.X, 0)
	sz.Y = max(sz.Y, 0)
	if sz == pt.Size {
		return
	}
	pt.Size = sz
	pt.updateDest()
}

// updateView regenerates the ticks for the current visible area,
// and the plot area, whose left margin depends on them.
func (pt *Plot) updateView() {
	s := pt.Source
	pt.XTicks = errors.Log1(Ticks(s.X, s.MaxX(), pt.Options.Locale))
	pt.YTicks = errors.Log1(Ticks(s.Y, s.MaxY(), pt.Options.Locale))
	pt.updateDest()
}

// Transform returns the current data to pixel transform.
func (pt *Plot) Transform() Transform {
	return Transform{Src: pt.Source, Dst: pt.Dest}
}

// canMap returns true if both the source and plot areas
// are non-empty, so that the transform is defined.
func (pt *Plot) canMap() bool {
	return !pt.Source.IsEmpty() && !pt.Dest.Empty()
}

// IsZoomed returns true if the user has changed the view since
// the last reset.
func (pt *Plot) IsZoomed() bool { return pt.zoomed }

//////// Limits

// SetXLimit fixes the X axis bounds to [lo, hi].
func (pt *Plot) SetXLimit(lo, hi float64) {
	pt.Options.XLimit.Set(lo, hi)
	pt.autoRefresh()
}

// SetYLimit fixes the Y axis bounds to [lo, hi].
func (pt *Plot) SetYLimit(lo, hi float64) {
	pt.Options.YLimit.Set(lo, hi)
	pt.autoRefresh()
}

// ClearXLimit returns the X axis to automatic bounds.
func (pt *Plot) ClearXLimit() {
	pt.Options.XLimit.Clear()
	pt.autoRefresh()
}

// ClearYLimit returns the Y axis to automatic bounds.
func (pt *Plot) ClearYLimit() {
	pt.Options.YLimit.Clear()
	pt.autoRefresh()
}

// SetZoomLimit sets whether the visible area is kept within the
// bounds on the axes that have a limit. Turning it on immediately
// moves the current view inside.
func (pt *Plot) SetZoomLimit(on bool) {
	pt.Options.ZoomLimit = on
	if on {
		pt.Source = pt.clampView(pt.Source)
		pt.updateView()
	}
}

//////// Chrome

// Title returns the plot title.
func (pt *Plot) Title() string { return pt.Options.Title }

// XLabel returns the X axis label.
func (pt *Plot) XLabel() string { return pt.Options.XLabel }

// YLabel returns the Y axis label.
func (pt *Plot) YLabel() string { return pt.Options.YLabel }

// Undertitle returns the text shown below the plot.
func (pt *Plot) Undertitle() string { return pt.Options.Undertitle }

// SetTitle sets the plot title.
func (pt *Plot) SetTitle(title string) {
	pt.Options.Title = title
	pt.updateDest()
}

// SetUndertitle sets the text shown centered below the plot,
// such as a caption or data source.
func (pt *Plot) SetUndertitle(text string) {
	pt.Options.Undertitle = text
	pt.updateDest()
}

// SetXLabel sets the X axis label.
func (pt *Plot) SetXLabel(label string) {
	pt.Options.XLabel = label
	pt.updateDest()
}

// SetYLabel sets the Y axis label.
func (pt *Plot) SetYLabel(label string) {
	pt.Options.YLabel = label
	pt.updateDest()
}

// SetXNumbers sets whether the X tick labels are shown.
func (pt *Plot) SetXNumbers(on bool) {
	pt.Options.XNumbers = on
	pt.updateDest()
}

// SetYNumbers sets whether the Y tick labels are shown.
func (pt *Plot) SetYNumbers(on bool) {
	pt.Options.YNumbers = on
	pt.updateDest()
}

// SetGrid sets whether grid lines are drawn.
func (pt *Plot) SetGrid(on bool) { pt.Options.Grid = on }

// SetBorder sets the margins around the plot area.
func (pt *Plot) SetBorder(b Borders) {
	pt.Options.Border = b
	pt.updateDest()
}

// datasetColor returns the color used for the dataset at index i.
func (pt *Plot) datasetColor(i int) color.RGBA {
	if c := pt.Datasets[i].Color; c != (color.RGBA{}) {
		return c
	}
	return paletteColor(i)
}

func (pt *Plot) logView(op string) {
	s := pt.Source
	slog.Debug("plot: view", "op", op, "x", s.X, "y", s.Y, "w", s.W, "h", s.H)
}
