// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"html"
	"image/color"
	"strings"
	"unicode/utf8"
)

// svgPainter writes SVG elements. Text metrics match the raster
// font so both outputs share one layout.
type svgPainter struct {
	b strings.Builder
}

func svgColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (sp *svgPainter) start(w, h int) {
	fmt.Fprintf(&sp.b, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n", w, h, w, h)
}

func (sp *svgPainter) end() {
	sp.b.WriteString("</svg>\n")
}

func (sp *svgPainter) fillRect(r rectF, c color.RGBA) {
	fmt.Fprintf(&sp.b, "<rect x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\" fill=\"%s\"/>\n",
		r.MinX, r.MinY, r.MaxX-r.MinX, r.MaxY-r.MinY, svgColor(c))
}

func (sp *svgPainter) segments(segs []segment, width float64, c color.RGBA) {
	if len(segs) == 0 {
		return
	}
	sp.b.WriteString("<path d=\"")
	for _, s := range segs {
		fmt.Fprintf(&sp.b, "M%.2f %.2fL%.2f %.2f", s.X0, s.Y0, s.X1, s.Y1)
	}
	fmt.Fprintf(&sp.b, "\" fill=\"none\" stroke=\"%s\" stroke-width=\"%g\" stroke-linecap=\"round\"/>\n", svgColor(c), width)
}

func (sp *svgPainter) circle(cx, cy, r float64, c color.RGBA) {
	fmt.Fprintf(&sp.b, "<circle cx=\"%.2f\" cy=\"%.2f\" r=\"%g\" fill=\"%s\"/>\n", cx, cy, r, svgColor(c))
}

func (sp *svgPainter) text(x, y float64, s string, c color.RGBA) {
	fmt.Fprintf(&sp.b, "<text x=\"%.2f\" y=\"%.2f\" font-family=\"monospace\" font-size=\"12\" fill=\"%s\">%s</text>\n",
		x, y, svgColor(c), html.EscapeString(s))
}

func (sp *svgPainter) textWidth(s string) float64 {
	return 7 * float64(utf8.RuneCountInString(s))
}

func (sp *svgPainter) fontHeight() float64 { return 11 }
