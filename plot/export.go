// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"cogentcore.org/chart/base/iox"
	"cogentcore.org/chart/base/iox/imagex"
)

// Draw renders the plot into a new image of the plot's Size.
// A plot with no area gives an empty image.
func (pt *Plot) Draw() *image.RGBA {
	if pt.Size.X <= 0 || pt.Size.Y <= 0 {
		return image.NewRGBA(image.Rectangle{})
	}
	rp := newRasterPainter(pt.Size)
	pt.paint(rp)
	return rp.img
}

// SVGString returns an SVG representation of the plot as a string.
func (pt *Plot) SVGString() string {
	sp := &svgPainter{}
	sp.start(pt.Size.X, pt.Size.Y)
	pt.paint(sp)
	sp.end()
	return sp.b.String()
}

// WriteSVG writes the plot as SVG to w.
func (pt *Plot) WriteSVG(w io.Writer) error {
	_, err := io.WriteString(w, pt.SVGString())
	return err
}

// WritePDF writes the plot as a single page PDF to w.
func (pt *Plot) WritePDF(w io.Writer) error {
	pp := newPDFPainter(float64(pt.Size.X), float64(pt.Size.Y))
	pt.paint(pp)
	return pp.pdf.Output(w)
}

// WriteImage writes the rendered plot to w in the given raster format.
func (pt *Plot) WriteImage(w io.Writer, f imagex.Formats) error {
	return imagex.Write(pt.Draw(), w, f)
}

// SaveImage saves the rendered plot to a raster image file,
// with the format inferred from the extension.
func (pt *Plot) SaveImage(filename string) error {
	if err := pt.checkSize(); err != nil {
		return err
	}
	return imagex.Save(pt.Draw(), filename)
}

// SaveSVG saves the plot to an SVG file.
func (pt *Plot) SaveSVG(filename string) error {
	return pt.saveFile(filename, pt.WriteSVG)
}

// SavePDF saves the plot to a PDF file.
func (pt *Plot) SavePDF(filename string) error {
	return pt.saveFile(filename, pt.WritePDF)
}

// Export saves the plot to the given file, as a vector drawing for
// .svg and .pdf and as a raster image for the image extensions
// supported by [imagex.ExtToFormat]. An empty filename, as from a
// cancelled save dialog, does nothing.
func (pt *Plot) Export(filename string) error {
	if filename == "" {
		return nil
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".svg":
		return pt.SaveSVG(filename)
	case ".pdf":
		return pt.SavePDF(filename)
	}
	return pt.SaveImage(filename)
}

func (pt *Plot) checkSize() error {
	if pt.Size.X <= 0 || pt.Size.Y <= 0 {
		return fmt.Errorf("plot: cannot export with empty size %v", pt.Size)
	}
	return nil
}

func (pt *Plot) saveFile(filename string, write func(w io.Writer) error) error {
	if err := pt.checkSize(); err != nil {
		return err
	}
	return iox.SaveFile(filename, write)
}
