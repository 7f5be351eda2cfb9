// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotcore adapts pointer and keyboard gestures to
// [plot.Plot] view operations, standing in for the widget event
// handling of a GUI toolkit.
package plotcore

import (
	"fmt"
	"image"

	"cogentcore.org/chart/base/errors"
	"cogentcore.org/chart/base/reflectx"
	"cogentcore.org/chart/plot"
)

// Modifiers are the keyboard modifiers held during a gesture.
type Modifiers int32

const (
	Shift Modifiers = 1 << iota
	Control
	Alt
)

// Has returns true if any of the given modifiers are set.
func (m Modifiers) Has(mods Modifiers) bool { return m&mods != 0 }

// Keys are the keys the controller responds to.
type Keys int32

const (
	KeyNone Keys = iota
	KeyHome
	KeyPlus
	KeyMinus
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

// Controller drives a [plot.Plot] from user gestures.
// If it is ReadOnly, the user can hover to track points
// but cannot pan or zoom.
type Controller struct {

	// Plot is the plot being controlled.
	Plot *plot.Plot

	// Image is the last rendering of the plot, updated
	// whenever a gesture changes what is shown.
	Image *image.RGBA

	// ReadOnly disables panning and zooming.
	ReadOnly bool

	// OnChange, if set, is called after Image is redrawn.
	OnChange func()

	// ScrollRate is the zoom change per unit of wheel delta.
	ScrollRate float64 `default:"0.002"`

	// KeyZoom is the zoom factor for the plus and minus keys.
	KeyZoom float64 `default:"1.25"`

	// KeyPan is the pan distance for the arrow keys, in pixels.
	KeyPan int `default:"20"`
}

// Defaults sets the default gesture rates.
func (c *Controller) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(c))
}

// NewController returns a new Controller for the given plot,
// with its initial rendering.
func NewController(pl *plot.Plot) *Controller {
	c := &Controller{}
	c.Defaults()
	c.SetPlot(pl)
	return c
}

// SetPlot sets the plot to control and redraws it.
func (c *Controller) SetPlot(pl *plot.Plot) {
	c.Plot = pl
	c.updatePlot()
}

// Resize sets the pixel size of the plot and redraws it.
// Sizes with no area are ignored.
func (c *Controller) Resize(sz image.Point) {
	if c.Plot == nil || sz.X <= 0 || sz.Y <= 0 {
		return
	}
	c.Plot.Resize(sz)
	c.updatePlot()
}

// Update redraws the plot, as needed after changing its data.
func (c *Controller) Update() {
	c.updatePlot()
}

// Refresh applies pending data changes to the plot and redraws it,
// for plots with auto refresh turned off.
func (c *Controller) Refresh() {
	if c.Plot != nil {
		c.Plot.Refresh()
	}
	c.updatePlot()
}

// updatePlot draws the plot at its current size and
// notifies OnChange.
func (c *Controller) updatePlot() {
	if c.Plot == nil {
		c.Image = nil
	} else {
		c.Image = c.Plot.Draw()
	}
	if c.OnChange != nil {
		c.OnChange()
	}
}

func (c *Controller) canEdit() bool {
	return c.Plot != nil && !c.ReadOnly
}

// SlideMove pans the plot to follow a drag by delta pixels.
// Shift restricts the pan to X and Alt restricts it to Y.
func (c *Controller) SlideMove(delta image.Point, mods Modifiers) bool {
	if !c.canEdit() {
		return false
	}
	if mods.Has(Shift) {
		delta.Y = 0
	} else if mods.Has(Alt) {
		delta.X = 0
	}
	return c.changed(c.Plot.Pan(delta.X, delta.Y))
}

// Scroll zooms about pos for a wheel movement of deltaY, where
// negative deltas (wheel up) zoom in. Shift restricts the zoom to X
// and Alt restricts it to Y.
func (c *Controller) Scroll(pos image.Point, deltaY float64, mods Modifiers) bool {
	if !c.canEdit() {
		return false
	}
	sc := 1 - deltaY*c.ScrollRate
	if sc <= 0 {
		return false
	}
	xsc, ysc := sc, sc
	if mods.Has(Shift) {
		ysc = 1
	} else if mods.Has(Alt) {
		xsc = 1
	}
	return c.changed(c.Plot.ZoomAtXY(pos, xsc, ysc))
}

// RubberBand zooms to the rectangle dragged out from start to end.
// A band with no width or height does nothing.
func (c *Controller) RubberBand(start, end image.Point) bool {
	if !c.canEdit() {
		return false
	}
	return c.changed(c.Plot.ZoomTo(image.Rectangle{Min: start, Max: end}))
}

// Hover tracks the point nearest to pos and returns a tooltip
// describing it, if one is close enough.
func (c *Controller) Hover(pos image.Point) (string, bool) {
	if c.Plot == nil {
		return "", false
	}
	c.changed(c.Plot.Track(pos))
	h := c.Plot.Tracked
	if h == nil {
		return "", false
	}
	name := c.Plot.Datasets[h.Dataset].Name
	return fmt.Sprintf("%s[%d]: (%g, %g)", name, h.Index, h.X, h.Y), true
}

// Leave clears tracking when the pointer leaves the plot.
func (c *Controller) Leave() {
	if c.Plot == nil || c.Plot.Tracked == nil {
		return
	}
	c.Plot.ClearTracking()
	c.updatePlot()
}

// Key handles a key press: Home resets the view and plus and minus
// zoom about the center. Left and right step the tracked point
// through its dataset, or pan if no point is tracked; up and down pan.
// Stepping the tracked point works on a ReadOnly controller too.
func (c *Controller) Key(k Keys) bool {
	if c.Plot == nil {
		return false
	}
	if c.Plot.Tracked != nil {
		switch k {
		case KeyLeft:
			return c.changed(c.Plot.StepTracked(-1))
		case KeyRight:
			return c.changed(c.Plot.StepTracked(1))
		}
	}
	if !c.canEdit() {
		return false
	}
	ctr := c.center()
	switch k {
	case KeyHome:
		if !c.Plot.IsZoomed() {
			return false
		}
		c.Plot.Reset()
		return c.changed(true)
	case KeyPlus:
		return c.changed(c.Plot.ZoomAt(ctr, c.KeyZoom))
	case KeyMinus:
		return c.changed(c.Plot.ZoomAt(ctr, 1/c.KeyZoom))
	case KeyLeft:
		return c.changed(c.Plot.Pan(c.KeyPan, 0))
	case KeyRight:
		return c.changed(c.Plot.Pan(-c.KeyPan, 0))
	case KeyUp:
		return c.changed(c.Plot.Pan(0, c.KeyPan))
	case KeyDown:
		return c.changed(c.Plot.Pan(0, -c.KeyPan))
	}
	return false
}

func (c *Controller) center() image.Point {
	d := c.Plot.Dest
	return d.Min.Add(d.Max).Div(2)
}

// changed redraws if ch is true, and returns ch.
func (c *Controller) changed(ch bool) bool {
	if ch {
		c.updatePlot()
	}
	return ch
}
