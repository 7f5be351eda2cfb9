// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"cogentcore.org/chart/math32/minmax"
)

// DataBounds returns the bounding ranges of the given datasets,
// subject to the given axis limits. A fixed end of a limit replaces
// the data value for that end. When the Y limit is not fully fixed
// but the X limit is in use, Y is computed only over points whose X
// lies inside the X limit, so the Y axis auto-fits the visible X
// window. Empty datasets contribute nothing; the returned ranges are
// invalid (Min > Max) when there is nothing to bound.
func DataBounds(sets []*Dataset, xlim, ylim minmax.Range64) (xr, yr minmax.F64) {
	xr.SetInfinity()
	yr.SetInfinity()
	xfull := xlim.FixMin && xlim.FixMax
	yfull := ylim.FixMin && ylim.FixMax
	filterY := xlim.IsFixed()
	for _, ds := range sets {
		if ds == nil {
			continue
		}
		if !filterY {
			dx, dy := ds.XYs.Range()
			xr.FitInRange(dx)
			if !yfull {
				yr.FitInRange(dy)
			}
			continue
		}
		for _, p := range ds.XYs {
			if !xfull {
				xr.FitValInRange(p.X)
			}
			if yfull {
				continue
			}
			if !xlim.Contains(p.X) {
				continue
			}
			yr.FitValInRange(p.Y)
		}
	}
	xr.Min, xr.Max = xlim.Clamp(xr.Min, xr.Max)
	yr.Min, yr.Max = ylim.Clamp(yr.Min, yr.Max)
	return
}

// updateBounds recomputes Bounds from the datasets and limits.
func (pt *Plot) updateBounds() {
	xr, yr := DataBounds(pt.Datasets, pt.Options.XLimit, pt.Options.YLimit)
	xr.Sanitize()
	yr.Sanitize()
	pt.Bounds = Rect{X: xr.Min, Y: yr.Min, W: xr.Range(), H: yr.Range()}
}
