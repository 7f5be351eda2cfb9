// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image"

	"cogentcore.org/chart/math32/minmax"
)

// Pan moves the visible area so that the data follows a drag of
// (dx, dy) pixels.
func (pt *Plot) Pan(dx, dy int) bool {
	if !pt.canMap() || (dx == 0 && dy == 0) {
		return false
	}
	ddx, ddy := pt.Transform().UnmapDelta(dx, dy)
	r := pt.Source
	r.X -= ddx
	r.Y -= ddy
	return pt.setView(r, "pan")
}

// ZoomAt zooms by factor about the data point under pixel p,
// which stays under p. A factor above 1 zooms in.
func (pt *Plot) ZoomAt(p image.Point, factor float64) bool {
	return pt.ZoomAtXY(p, factor, factor)
}

// ZoomAtXY zooms by separate X and Y factors about the data point
// under pixel p. A factor of 1 leaves that axis unchanged.
func (pt *Plot) ZoomAtXY(p image.Point, fx, fy float64) bool {
	if !pt.canMap() || fx <= 0 || fy <= 0 {
		return false
	}
	cx, cy := pt.Transform().Unmap(p)
	r := pt.Source
	r.X = cx - (cx-r.X)/fx
	r.W /= fx
	r.Y = cy - (cy-r.Y)/fy
	r.H /= fy
	return pt.setView(r, "zoom")
}

// ZoomTo zooms to the data area under the given pixel rectangle,
// as selected by a rubber band. A rectangle with zero width or
// height is ignored and false is returned.
func (pt *Plot) ZoomTo(pr image.Rectangle) bool {
	pr = pr.Canon()
	if !pt.canMap() || pr.Dx() == 0 || pr.Dy() == 0 {
		return false
	}
	tr := pt.Transform()
	x0, y1 := tr.Unmap(pr.Min)
	x1, y0 := tr.Unmap(pr.Max)
	return pt.setView(Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}, "zoom-rect")
}

// SetView sets the visible data area directly.
// An empty rectangle is ignored and false is returned.
func (pt *Plot) SetView(r Rect) bool {
	return pt.setView(r, "set")
}

// Reset returns the visible area to the bounds.
func (pt *Plot) Reset() {
	pt.zoomed = false
	pt.Source = pt.Bounds
	pt.updateView()
	pt.logView("reset")
}

// setView installs r as the visible area, clamped on the limited
// axes if ZoomLimit is on. Empty results are rejected.
func (pt *Plot) setView(r Rect, op string) bool {
	if r.IsEmpty() || r.W < 0 || r.H < 0 {
		return false
	}
	if pt.Options.ZoomLimit {
		r = pt.clampView(r)
		if r.IsEmpty() {
			return false
		}
	}
	pt.Source = r
	pt.zoomed = true
	pt.updateView()
	pt.logView(op)
	return true
}

// clampView slides r back inside the bounds on each axis that has
// a limit, keeping its width and height. Only an extent larger than
// the bounds is reduced, to the bounds. Axes without a limit are free.
func (pt *Plot) clampView(r Rect) Rect {
	b := pt.Bounds
	if pt.Options.XLimit.IsFixed() {
		r.X, r.W = clampSpan(r.X, r.W, b.X, b.MaxX())
	}
	if pt.Options.YLimit.IsFixed() {
		r.Y, r.H = clampSpan(r.Y, r.H, b.Y, b.MaxY())
	}
	return r
}

func clampSpan(lo, w, bmin, bmax float64) (float64, float64) {
	if w >= bmax-bmin {
		return bmin, bmax - bmin
	}
	starts := minmax.F64{Min: bmin, Max: bmax - w}
	return starts.ClipValue(lo), w
}
