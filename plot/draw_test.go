// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/chart/base/iox/imagex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a painter that records everything drawn.
type recorder struct {
	rects []rectF
	segs  []segment
	dots  []pointF
	texts []string
	at    []pointF
}

func (r *recorder) fillRect(rf rectF, c color.RGBA) { r.rects = append(r.rects, rf) }

func (r *recorder) segments(segs []segment, width float64, c color.RGBA) {
	r.segs = append(r.segs, segs...)
}

func (r *recorder) circle(cx, cy, rad float64, c color.RGBA) {
	r.dots = append(r.dots, pointF{cx, cy})
}

func (r *recorder) text(x, y float64, s string, c color.RGBA) {
	r.texts = append(r.texts, s)
	r.at = append(r.at, pointF{x, y})
}

func (r *recorder) textWidth(s string) float64 { return float64(7 * len(s)) }
func (r *recorder) fontHeight() float64        { return 11 }

func kindsPlot(t *testing.T) *Plot {
	pt := New()
	pt.Resize(image.Pt(320, 240))
	pt.SetTitle("Kinds")
	pt.SetXLabel("x")
	pt.SetYLabel("y")
	line := mustDataset(t, "line", []float64{0, 1, 2, 3, 4, 5}, []float64{1, 3, 2, 5, 4, 6})
	bar := mustDataset(t, "bar", []float64{0.5, 1.5, 2.5, 3.5, 4.5}, []float64{2, 1, 3, 2, 1})
	bar.Kind = Bar
	stem := mustDataset(t, "stem", []float64{0, 1, 2, 3, 4, 5}, []float64{-1, -2, 0.5, -0.5, 1, -1.5})
	stem.Kind = Stem
	pt.SetData(bar, line, stem)
	return pt
}

func TestPaintClipped(t *testing.T) {
	pt := kindsPlot(t)
	pt.SetView(Rect{1, 0, 2, 3})
	rc := &recorder{}
	pt.paint(rc)
	assert.Contains(t, rc.texts, "Kinds")
	assert.Contains(t, rc.texts, "x")
	assert.Contains(t, rc.texts, "y")

	d := rectFrom(pt.Dest)
	within := func(x, y float64) bool {
		return x >= d.MinX-tickLength-1e-9 && x <= d.MaxX+1e-9 && y >= d.MinY-1e-9 && y <= d.MaxY+tickLength+1e-9
	}
	for _, s := range rc.segs {
		assert.True(t, within(s.X0, s.Y0) && within(s.X1, s.Y1), "segment %v outside plot area", s)
	}
	for _, p := range rc.dots {
		assert.True(t, d.contains(p.X, p.Y), "marker %v outside plot area", p)
	}
	for _, r := range rc.rects[1:] {
		_, ok := r.intersect(d)
		assert.True(t, ok)
		assert.True(t, r.MinX >= d.MinX && r.MaxX <= d.MaxX && r.MinY >= d.MinY && r.MaxY <= d.MaxY, "bar %v outside plot area", r)
	}
}

func TestClipSegment(t *testing.T) {
	r := rectF{0, 0, 10, 10}
	s, ok := clipSegment(segment{-5, 5, 15, 5}, r)
	require.True(t, ok)
	assert.Equal(t, segment{0, 5, 10, 5}, s)

	s, ok = clipSegment(segment{2, 2, 8, 8}, r)
	require.True(t, ok)
	assert.Equal(t, segment{2, 2, 8, 8}, s)

	_, ok = clipSegment(segment{-5, -5, -1, 20}, r)
	assert.False(t, ok)

	_, ok = clipSegment(segment{11, 0, 20, 10}, r)
	assert.False(t, ok)
}

func TestDraw(t *testing.T) {
	pt := kindsPlot(t)
	img := pt.Draw()
	assert.Equal(t, image.Rect(0, 0, 320, 240), img.Bounds())
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(1, 1))
	imagex.Assert(t, img, "kinds")

	require.True(t, pt.Track(pt.Transform().Map(3, 5)))
	tracked := pt.Draw()
	assert.NotEqual(t, img.Pix, tracked.Pix)
}

func TestPaletteColor(t *testing.T) {
	seen := map[color.RGBA]bool{}
	for i := range 8 {
		c := paletteColor(i)
		assert.Equal(t, uint8(255), c.A)
		assert.False(t, seen[c], "palette color %d repeats", i)
		seen[c] = true
	}
	pt := kindsPlot(t)
	pt.Datasets[1].Color = color.RGBA{1, 2, 3, 255}
	assert.Equal(t, color.RGBA{1, 2, 3, 255}, pt.datasetColor(1))
	assert.Equal(t, paletteColor(0), pt.datasetColor(0))
}
