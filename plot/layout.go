// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// labelPad is the space between a text band and its neighbor, in pixels.
const labelPad = 4

// layoutFace is the face used to measure text when laying out the
// plot area. It is the raster face; the vector outputs use fonts of
// about the same size.
var layoutFace font.Face = basicfont.Face7x13

// measureText returns the width of s in layoutFace, in pixels.
func measureText(s string) int {
	return font.MeasureString(layoutFace, s).Ceil()
}

// lineHeight is the height of one line of layoutFace, in pixels.
func lineHeight() int {
	return layoutFace.Metrics().Height.Ceil()
}

// Margins are the space around the plot area, in pixels:
// the Borders plus the bands measured for the text shown.
type Margins struct {
	Left, Top, Right, Bottom int
}

// Margins returns the current space around the plot area. The left
// margin fits the widest Y tick label, the top the title and Y label,
// and the bottom the X tick labels, the X label and the undertitle.
func (pt *Plot) Margins() Margins {
	o := &pt.Options
	b := o.Border
	lh := lineHeight()
	m := Margins{Left: b.Left, Top: b.Top, Right: b.Right, Bottom: b.Bottom}
	if o.YNumbers && len(pt.YTicks) > 0 {
		w := 0
		for _, t := range pt.YTicks {
			w = max(w, measureText(t.Label))
		}
		m.Left += w + tickLength + labelPad
	}
	if o.Title != "" {
		m.Top += lh + labelPad
	}
	if o.YLabel != "" {
		m.Top += lh + labelPad
	}
	m.Bottom += xNumbersHeight(o)
	if o.XLabel != "" {
		m.Bottom += lh + labelPad
	}
	if o.Undertitle != "" {
		m.Bottom += lh + labelPad
	}
	return m
}

// xNumbersHeight is the height of the X tick label band, if shown.
func xNumbersHeight(o *Options) int {
	if !o.XNumbers {
		return 0
	}
	return tickLength + lineHeight() + labelPad
}

// updateDest computes the plot area from the size and margins.
// It depends on the Y tick labels, so it runs after they are made.
func (pt *Plot) updateDest() {
	m := pt.Margins()
	r := image.Rectangle{
		Min: image.Pt(m.Left, m.Top),
		Max: image.Pt(pt.Size.X-m.Right, pt.Size.Y-m.Bottom),
	}
	if r.Empty() {
		r = image.Rectangle{}
	}
	pt.Dest = r
}
