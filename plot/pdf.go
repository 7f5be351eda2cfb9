// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image/color"

	"codeberg.org/go-pdf/fpdf"
)

// pdfFontSize is the size of all text in PDF output, in points.
const pdfFontSize = 9

// pdfPainter draws vector output on a single PDF page whose size
// in points equals the plot size in pixels.
type pdfPainter struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func newPDFPainter(w, h float64) *pdfPainter {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPageFormat("P", fpdf.SizeType{Wd: w, Ht: h})
	pdf.SetFont("Helvetica", "", pdfFontSize)
	pdf.SetLineCapStyle("round")
	return &pdfPainter{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

func (pp *pdfPainter) fillRect(r rectF, c color.RGBA) {
	pp.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	pp.pdf.Rect(r.MinX, r.MinY, r.MaxX-r.MinX, r.MaxY-r.MinY, "F")
}

func (pp *pdfPainter) segments(segs []segment, width float64, c color.RGBA) {
	pp.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	pp.pdf.SetLineWidth(width)
	for _, s := range segs {
		pp.pdf.Line(s.X0, s.Y0, s.X1, s.Y1)
	}
}

func (pp *pdfPainter) circle(cx, cy, r float64, c color.RGBA) {
	pp.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	pp.pdf.Circle(cx, cy, r, "F")
}

func (pp *pdfPainter) text(x, y float64, s string, c color.RGBA) {
	pp.pdf.SetTextColor(int(c.R), int(c.G), int(c.B))
	pp.pdf.Text(x, y, pp.tr(s))
}

func (pp *pdfPainter) textWidth(s string) float64 {
	return pp.pdf.GetStringWidth(pp.tr(s))
}

func (pp *pdfPainter) fontHeight() float64 { return pdfFontSize }
