// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// diagonalPlot has bounds [0,10]x[0,10] mapped onto 100x100 pixels.
func diagonalPlot(t *testing.T) *Plot {
	return newTestPlot(100, 100, mustDataset(t, "diag", []float64{0, 10}, []float64{0, 10}))
}

func TestPan(t *testing.T) {
	pt := diagonalPlot(t)
	require.True(t, pt.Pan(10, 0))
	assert.Equal(t, Rect{-1, 0, 10, 10}, pt.Source)
	assert.True(t, pt.IsZoomed())
	require.True(t, pt.Pan(-10, 0))
	assert.Equal(t, Rect{0, 0, 10, 10}, pt.Source)

	require.True(t, pt.Pan(0, 10))
	assert.Equal(t, Rect{0, 1, 10, 10}, pt.Source)
	assert.False(t, pt.Pan(0, 0))
}

func TestZoomAt(t *testing.T) {
	pt := diagonalPlot(t)
	require.True(t, pt.ZoomAt(image.Pt(50, 50), 2))
	assert.Equal(t, Rect{2.5, 2.5, 5, 5}, pt.Source)
	assert.GreaterOrEqual(t, pt.XTicks[0].Value, pt.Source.X)

	// the point under the cursor stays under the cursor
	x, y := pt.Transform().Unmap(image.Pt(20, 70))
	require.True(t, pt.ZoomAt(image.Pt(20, 70), 0.5))
	x2, y2 := pt.Transform().Unmap(image.Pt(20, 70))
	assert.InDelta(t, x, x2, 1e-9)
	assert.InDelta(t, y, y2, 1e-9)

	assert.False(t, pt.ZoomAt(image.Pt(50, 50), 0))

	pt.Reset()
	require.True(t, pt.ZoomAtXY(image.Pt(50, 50), 2, 1))
	assert.Equal(t, Rect{2.5, 0, 5, 10}, pt.Source)
}

func TestZoomTo(t *testing.T) {
	pt := diagonalPlot(t)
	assert.False(t, pt.ZoomTo(image.Rect(0, 20, 50, 20)))
	assert.False(t, pt.IsZoomed())
	assert.Equal(t, Rect{0, 0, 10, 10}, pt.Source)

	require.True(t, pt.ZoomTo(image.Rect(0, 0, 50, 50)))
	assert.Equal(t, Rect{0, 5, 5, 5}, pt.Source)

	pt.Reset()
	require.True(t, pt.ZoomTo(image.Rectangle{Min: image.Pt(50, 50), Max: image.Pt(0, 0)}))
	assert.Equal(t, Rect{0, 5, 5, 5}, pt.Source)
}

func TestSetView(t *testing.T) {
	pt := diagonalPlot(t)
	assert.False(t, pt.SetView(Rect{0, 0, 0, 1}))
	assert.False(t, pt.SetView(Rect{0, 0, -1, 1}))
	assert.True(t, pt.SetView(Rect{20, 20, 5, 5}))
	assert.Equal(t, Rect{20, 20, 5, 5}, pt.Source)
}

func TestZoomLimit(t *testing.T) {
	pt := diagonalPlot(t)
	pt.SetXLimit(0, 10)
	pt.SetYLimit(0, 10)
	pt.SetZoomLimit(true)

	require.True(t, pt.SetView(Rect{8, 0, 4, 10}))
	assert.Equal(t, Rect{6, 0, 4, 10}, pt.Source)

	require.True(t, pt.SetView(Rect{-5, -5, 20, 20}))
	assert.Equal(t, Rect{0, 0, 10, 10}, pt.Source)

	require.True(t, pt.ZoomAt(image.Pt(50, 50), 2))
	require.True(t, pt.Pan(-100, 0))
	assert.Equal(t, Rect{5, 2.5, 5, 5}, pt.Source)

	pt.SetZoomLimit(false)
	require.True(t, pt.SetView(Rect{-20, 0, 5, 5}))
	pt.SetZoomLimit(true)
	assert.Equal(t, Rect{0, 0, 5, 5}, pt.Source)
}

func TestZoomLimitPerAxis(t *testing.T) {
	pt := diagonalPlot(t)
	pt.SetZoomLimit(true)
	require.True(t, pt.SetView(Rect{8, 0, 4, 10}))
	assert.Equal(t, Rect{8, 0, 4, 10}, pt.Source, "no limits: the view is free")

	pt.SetXLimit(0, 10)
	assert.Equal(t, Rect{6, 0, 4, 10}, pt.Source, "refresh clamps the limited axis")
	require.True(t, pt.SetView(Rect{-3, -5, 4, 4}))
	assert.Equal(t, Rect{0, -5, 4, 4}, pt.Source, "Y has no limit")

	pt.ClearXLimit()
	pt.SetYLimit(0, 10)
	require.True(t, pt.SetView(Rect{-3, -5, 4, 4}))
	assert.Equal(t, Rect{-3, 0, 4, 4}, pt.Source)

	pt.ClearYLimit()
	pt.SetXLimit(5, 20)
	require.True(t, pt.SetView(Rect{0, 0, 4, 4}))
	assert.Equal(t, Rect{5, 0, 4, 4}, pt.Source)
}

func TestViewFollowsData(t *testing.T) {
	pt := diagonalPlot(t)
	require.NoError(t, pt.AppendData(0, XY{20, 20}))
	assert.Equal(t, Rect{0, 0, 20, 20}, pt.Source)

	require.True(t, pt.ZoomAt(image.Pt(50, 50), 2))
	zoomed := pt.Source
	require.NoError(t, pt.AppendData(0, XY{30, 30}))
	assert.Equal(t, Rect{0, 0, 30, 30}, pt.Bounds)
	assert.Equal(t, zoomed, pt.Source)

	pt.Reset()
	assert.False(t, pt.IsZoomed())
	assert.Equal(t, pt.Bounds, pt.Source)
}
