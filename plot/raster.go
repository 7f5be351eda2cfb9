// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// circleSteps is the number of polygon edges used for markers.
const circleSteps = 24

// rasterPainter draws into an RGBA image with anti-aliased
// vector paths and a fixed bitmap font.
type rasterPainter struct {
	img  *image.RGBA
	rz   *vector.Rasterizer
	face font.Face
}

func newRasterPainter(sz image.Point) *rasterPainter {
	return &rasterPainter{
		img:  image.NewRGBA(image.Rectangle{Max: sz}),
		rz:   vector.NewRasterizer(sz.X, sz.Y),
		face: basicfont.Face7x13,
	}
}

func (rp *rasterPainter) fillRect(r rectF, c color.RGBA) {
	ir := image.Rect(int(math.Round(r.MinX)), int(math.Round(r.MinY)), int(math.Round(r.MaxX)), int(math.Round(r.MaxY)))
	if ir.Empty() {
		// keep thin bars visible
		ir.Max.X = max(ir.Max.X, ir.Min.X+1)
		ir.Max.Y = max(ir.Max.Y, ir.Min.Y+1)
	}
	draw.Draw(rp.img, ir, image.NewUniform(c), image.Point{}, draw.Over)
}

// segments fills one quad per segment in a single path,
// so overlapping joints do not darken.
func (rp *rasterPainter) segments(segs []segment, width float64, c color.RGBA) {
	if len(segs) == 0 {
		return
	}
	b := rp.img.Bounds()
	rp.rz.Reset(b.Dx(), b.Dy())
	hw := float32(width) / 2
	n := 0
	for _, s := range segs {
		x0, y0, x1, y1 := float32(s.X0), float32(s.Y0), float32(s.X1), float32(s.Y1)
		dx, dy := x1-x0, y1-y0
		l := math32.Sqrt(dx*dx + dy*dy)
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*hw, dx/l*hw
		rp.rz.MoveTo(x0+nx, y0+ny)
		rp.rz.LineTo(x1+nx, y1+ny)
		rp.rz.LineTo(x1-nx, y1-ny)
		rp.rz.LineTo(x0-nx, y0-ny)
		rp.rz.ClosePath()
		n++
	}
	if n == 0 {
		return
	}
	rp.rz.Draw(rp.img, b, image.NewUniform(c), image.Point{})
}

func (rp *rasterPainter) circle(cx, cy, r float64, c color.RGBA) {
	b := rp.img.Bounds()
	rp.rz.Reset(b.Dx(), b.Dy())
	x, y, rad := float32(cx), float32(cy), float32(r)
	rp.rz.MoveTo(x+rad, y)
	for i := 1; i < circleSteps; i++ {
		a := 2 * math32.Pi * float32(i) / circleSteps
		rp.rz.LineTo(x+rad*math32.Cos(a), y+rad*math32.Sin(a))
	}
	rp.rz.ClosePath()
	rp.rz.Draw(rp.img, b, image.NewUniform(c), image.Point{})
}

func (rp *rasterPainter) text(x, y float64, s string, c color.RGBA) {
	d := &font.Drawer{
		Dst:  rp.img,
		Src:  image.NewUniform(c),
		Face: rp.face,
		Dot:  fixed.P(int(math.Round(x)), int(math.Round(y))),
	}
	d.DrawString(s)
}

func (rp *rasterPainter) textWidth(s string) float64 {
	return float64(font.MeasureString(rp.face, s).Ceil())
}

func (rp *rasterPainter) fontHeight() float64 {
	return float64(rp.face.Metrics().Ascent.Ceil())
}
