// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image"
	"math"
)

// Rect is an axis-aligned rectangle in data coordinates,
// with X, Y at its minimum corner.
type Rect struct {
	X, Y, W, H float64
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the top edge.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Diag returns the length of the diagonal.
func (r Rect) Diag() float64 { return math.Hypot(r.W, r.H) }

// IsEmpty returns true if the rectangle has zero or
// non-finite width or height, so it cannot be mapped.
func (r Rect) IsEmpty() bool {
	return r.W == 0 || r.H == 0 || !isFinite(r.X) || !isFinite(r.Y) || !isFinite(r.W) || !isFinite(r.H)
}

// Contains returns true if the point lies within the rectangle, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.MaxX() && y >= r.Y && y <= r.MaxY()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Transform maps between a source rectangle in data coordinates
// and a destination rectangle in pixels. Y is inverted: data Y grows
// upward while pixel Y grows downward. Src must not be empty and Dst
// must have a non-zero size when mapping.
type Transform struct {
	Src Rect
	Dst image.Rectangle
}

// MapF maps a data point to unrounded pixel coordinates.
func (t Transform) MapF(x, y float64) (px, py float64) {
	px = (x-t.Src.X)/t.Src.W*float64(t.Dst.Dx()) + float64(t.Dst.Min.X)
	py = (t.Src.MaxY()-y)/t.Src.H*float64(t.Dst.Dy()) + float64(t.Dst.Min.Y)
	return
}

// Map maps a data point to the nearest pixel.
func (t Transform) Map(x, y float64) image.Point {
	px, py := t.MapF(x, y)
	return image.Pt(int(math.Round(px)), int(math.Round(py)))
}

// Unmap maps a pixel to data coordinates, the inverse of [Transform.Map].
func (t Transform) Unmap(p image.Point) (x, y float64) {
	x = float64(p.X-t.Dst.Min.X)/float64(t.Dst.Dx())*t.Src.W + t.Src.X
	y = t.Src.MaxY() - float64(p.Y-t.Dst.Min.Y)/float64(t.Dst.Dy())*t.Src.H
	return
}

// UnmapDelta returns the data-space displacement for the
// given pixel displacement.
func (t Transform) UnmapDelta(dx, dy int) (ddx, ddy float64) {
	ddx = float64(dx) / float64(t.Dst.Dx()) * t.Src.W
	ddy = -float64(dy) / float64(t.Dst.Dy()) * t.Src.H
	return
}
