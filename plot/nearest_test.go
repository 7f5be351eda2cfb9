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

// squares is x = 0, 1, 2 with y = x^2. On a 200x400 plot the
// bounds [0,2]x[0,4] map to exact pixels: data (1, 1) is at (100, 300).
func squares(t *testing.T) *Dataset {
	return mustDataset(t, "squares", []float64{0, 1, 2}, []float64{0, 1, 4})
}

func TestNearestData(t *testing.T) {
	pt := newTestPlot(200, 400, squares(t))
	h, ok := pt.NearestData(1, 1)
	require.True(t, ok)
	assert.Equal(t, 0, h.Dataset)
	assert.Equal(t, 1, h.Index)
	assert.Equal(t, 0.0, h.Dist)

	h, ok = pt.NearestData(-5, 0)
	require.True(t, ok)
	assert.Equal(t, 0, h.Index)

	h, ok = pt.NearestData(9, 4)
	require.True(t, ok)
	assert.Equal(t, 2, h.Index)

	_, ok = newTestPlot(200, 400).NearestData(1, 1)
	assert.False(t, ok)
}

func TestNearestDataTie(t *testing.T) {
	pt := newTestPlot(200, 400, squares(t), squares(t))
	h, ok := pt.NearestData(1, 1)
	require.True(t, ok)
	assert.Equal(t, 0, h.Dataset)

	pt.SetData(mustDataset(t, "a", []float64{0, 2}, []float64{0, 0}))
	h, ok = pt.NearestData(1, 0)
	require.True(t, ok)
	assert.Equal(t, 0, h.Index, "first candidate wins an exact tie")
}

func TestFindGraphAt(t *testing.T) {
	pt := newTestPlot(200, 400, squares(t))
	h, ok := pt.FindGraphAt(image.Pt(100, 300))
	require.True(t, ok)
	assert.Equal(t, 1, h.Index)
	assert.Equal(t, 0.0, h.Dist)

	h, ok = pt.FindGraphAt(image.Pt(102, 300))
	require.True(t, ok)
	assert.Equal(t, 1, h.Index)
	assert.InDelta(t, 0.02, h.Dist, 1e-9)

	// data (1.5, 3) is more than diag/20 from every point
	_, ok = pt.FindGraphAt(image.Pt(150, 100))
	assert.False(t, ok)
}

func TestTrack(t *testing.T) {
	pt := newTestPlot(200, 400, squares(t))
	assert.True(t, pt.Track(image.Pt(100, 300)))
	require.NotNil(t, pt.Tracked)
	assert.Equal(t, 1, pt.Tracked.Index)
	assert.False(t, pt.Track(image.Pt(101, 300)))
	assert.True(t, pt.Track(image.Pt(150, 100)))
	assert.Nil(t, pt.Tracked)
	assert.False(t, pt.Track(image.Pt(150, 100)))

	pt.Track(image.Pt(200, 0))
	require.NotNil(t, pt.Tracked)
	assert.Equal(t, 2, pt.Tracked.Index)
	pt.ClearTracking()
	assert.Nil(t, pt.Tracked)
}
