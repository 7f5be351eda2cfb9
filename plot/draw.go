// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image"
	"image/color"
)

// tickLength is the length of axis tick marks, in pixels.
const tickLength = 5

// pointF is a point in pixel coordinates.
type pointF struct {
	X, Y float64
}

// segment is a line segment in pixel coordinates.
type segment struct {
	X0, Y0, X1, Y1 float64
}

// rectF is a rectangle in pixel coordinates.
type rectF struct {
	MinX, MinY, MaxX, MaxY float64
}

func rectFrom(r image.Rectangle) rectF {
	return rectF{float64(r.Min.X), float64(r.Min.Y), float64(r.Max.X), float64(r.Max.Y)}
}

func (r rectF) contains(x, y float64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

func (r rectF) intersect(o rectF) (rectF, bool) {
	r.MinX = max(r.MinX, o.MinX)
	r.MinY = max(r.MinY, o.MinY)
	r.MaxX = min(r.MaxX, o.MaxX)
	r.MaxY = min(r.MaxY, o.MaxY)
	return r, r.MinX < r.MaxX && r.MinY < r.MaxY
}

// painter is implemented by each output target: raster, SVG and PDF.
// All coordinates are in pixels, with text positioned at its
// left baseline. Geometry is already clipped by the caller.
type painter interface {
	fillRect(r rectF, c color.RGBA)
	segments(segs []segment, width float64, c color.RGBA)
	circle(cx, cy, r float64, c color.RGBA)
	text(x, y float64, s string, c color.RGBA)
	textWidth(s string) float64
	fontHeight() float64
}

// paint draws the whole plot with the given painter.
func (pt *Plot) paint(pc painter) {
	o := &pt.Options
	fg := o.foreground()
	pc.fillRect(rectF{0, 0, float64(pt.Size.X), float64(pt.Size.Y)}, o.background())
	fh := pc.fontHeight()
	if o.Title != "" {
		w := pc.textWidth(o.Title)
		pc.text((float64(pt.Size.X)-w)/2, float64(o.Border.Top)+fh, o.Title, fg)
	}
	if o.Undertitle != "" {
		w := pc.textWidth(o.Undertitle)
		pc.text((float64(pt.Size.X)-w)/2, float64(pt.Size.Y-o.Border.Bottom-labelPad), o.Undertitle, fg)
	}
	if !pt.canMap() {
		return
	}
	tr := pt.Transform()
	d := rectFrom(pt.Dest)

	if o.Grid {
		var grid []segment
		for _, t := range pt.XTicks {
			x, _ := tr.MapF(t.Value, 0)
			grid = append(grid, segment{x, d.MinY, x, d.MaxY})
		}
		for _, t := range pt.YTicks {
			_, y := tr.MapF(0, t.Value)
			grid = append(grid, segment{d.MinX, y, d.MaxX, y})
		}
		pc.segments(grid, 1, o.gridColor())
	}

	for i, ds := range pt.Datasets {
		pt.paintDataset(pc, tr, d, ds, pt.datasetColor(i))
	}
	if h := pt.Tracked; h != nil && h.Dataset < len(pt.Datasets) {
		x, y := tr.MapF(h.X, h.Y)
		if d.contains(x, y) {
			r := pt.Datasets[h.Dataset].MarkerSize + 2
			pc.circle(x, y, r+1.5, fg)
			pc.circle(x, y, r, pt.datasetColor(h.Dataset))
		}
	}

	pc.segments([]segment{
		{d.MinX, d.MinY, d.MaxX, d.MinY}, {d.MaxX, d.MinY, d.MaxX, d.MaxY},
		{d.MaxX, d.MaxY, d.MinX, d.MaxY}, {d.MinX, d.MaxY, d.MinX, d.MinY},
	}, 1, fg)

	var marks []segment
	for _, t := range pt.XTicks {
		x, _ := tr.MapF(t.Value, 0)
		marks = append(marks, segment{x, d.MaxY, x, d.MaxY + tickLength})
		if o.XNumbers {
			w := pc.textWidth(t.Label)
			pc.text(x-w/2, d.MaxY+tickLength+2+fh, t.Label, fg)
		}
	}
	for _, t := range pt.YTicks {
		_, y := tr.MapF(0, t.Value)
		marks = append(marks, segment{d.MinX - tickLength, y, d.MinX, y})
		if o.YNumbers {
			w := pc.textWidth(t.Label)
			pc.text(d.MinX-tickLength-2-w, y+fh/2-2, t.Label, fg)
		}
	}
	pc.segments(marks, 1, fg)

	if o.XLabel != "" {
		w := pc.textWidth(o.XLabel)
		pc.text((d.MinX+d.MaxX-w)/2, d.MaxY+float64(xNumbersHeight(o))+2+fh, o.XLabel, fg)
	}
	if o.YLabel != "" {
		pc.text(float64(o.Border.Left), d.MinY-labelPad, o.YLabel, fg)
	}
}

// paintDataset draws one dataset clipped to the plot area d.
func (pt *Plot) paintDataset(pc painter, tr Transform, d rectF, ds *Dataset, c color.RGBA) {
	if len(ds.XYs) == 0 {
		return
	}
	switch ds.Kind {
	case Line:
		var segs []segment
		px, py := tr.MapF(ds.XYs[0].X, ds.XYs[0].Y)
		for _, p := range ds.XYs[1:] {
			x, y := tr.MapF(p.X, p.Y)
			if s, ok := clipSegment(segment{px, py, x, y}, d); ok {
				segs = append(segs, s)
			}
			px, py = x, y
		}
		if len(ds.XYs) == 1 {
			if d.contains(px, py) {
				pc.circle(px, py, ds.LineWidth, c)
			}
			return
		}
		pc.segments(segs, ds.LineWidth, c)
	case Bar:
		half := ds.BarDataWidth() / 2
		for _, p := range ds.XYs {
			x0, y0 := tr.MapF(p.X-half, 0)
			x1, y1 := tr.MapF(p.X+half, p.Y)
			r := rectF{min(x0, x1), min(y0, y1), max(x0, x1), max(y0, y1)}
			if r, ok := r.intersect(d); ok {
				pc.fillRect(r, c)
			}
		}
	case Stem:
		var segs []segment
		for _, p := range ds.XYs {
			x0, y0 := tr.MapF(p.X, 0)
			x1, y1 := tr.MapF(p.X, p.Y)
			if s, ok := clipSegment(segment{x0, y0, x1, y1}, d); ok {
				segs = append(segs, s)
			}
		}
		pc.segments(segs, ds.LineWidth, c)
		for _, p := range ds.XYs {
			x, y := tr.MapF(p.X, p.Y)
			if d.contains(x, y) {
				pc.circle(x, y, ds.MarkerSize, c)
			}
		}
	}
}

// clipSegment clips s to r using the Liang-Barsky algorithm,
// returning false if no part of it lies inside.
func clipSegment(s segment, r rectF) (segment, bool) {
	dx, dy := s.X1-s.X0, s.Y1-s.Y0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, s.X0 - r.MinX},
		{dx, r.MaxX - s.X0},
		{-dy, s.Y0 - r.MinY},
		{dy, r.MaxY - s.Y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return s, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return s, false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return s, false
			}
			t1 = min(t1, t)
		}
	}
	return segment{s.X0 + t0*dx, s.Y0 + t0*dy, s.X0 + t1*dx, s.Y0 + t1*dy}, true
}
