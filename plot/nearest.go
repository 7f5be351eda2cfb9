// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image"
	"math"
	"sort"
)

// trackFraction is the fraction of the visible diagonal within
// which a point is close enough to the cursor to be tracked.
const trackFraction = 1.0 / 20

// Hit is a data point found by a nearest point lookup.
type Hit struct {

	// Dataset is the index of the dataset.
	Dataset int

	// Index is the index of the point within the dataset.
	Index int

	// X, Y are the data coordinates of the point.
	X, Y float64

	// Dist is the data-space distance from the query position.
	Dist float64
}

// NearestData returns the point nearest to the given data position
// over all datasets, by Euclidean distance in data space. Within each
// dataset, whose X values must be sorted ascending, only the points on
// either side of x are considered. On exact ties the earlier dataset
// wins. It returns false if there are no points.
func (pt *Plot) NearestData(x, y float64) (Hit, bool) {
	best := Hit{Dist: math.Inf(1)}
	found := false
	for di, ds := range pt.Datasets {
		n := len(ds.XYs)
		if n == 0 {
			continue
		}
		i := sort.Search(n, func(i int) bool { return ds.XYs[i].X >= x })
		for _, j := range [2]int{i - 1, i} {
			if j < 0 || j >= n {
				continue
			}
			p := ds.XYs[j]
			d := math.Hypot(p.X-x, p.Y-y)
			if d < best.Dist {
				best = Hit{Dataset: di, Index: j, X: p.X, Y: p.Y, Dist: d}
				found = true
			}
		}
	}
	return best, found
}

// FindGraphAt returns the point nearest to the given pixel position,
// if it is within a twentieth of the visible diagonal in data space.
func (pt *Plot) FindGraphAt(p image.Point) (Hit, bool) {
	if !pt.canMap() {
		return Hit{}, false
	}
	x, y := pt.Transform().Unmap(p)
	h, ok := pt.NearestData(x, y)
	if !ok || h.Dist > pt.Source.Diag()*trackFraction {
		return Hit{}, false
	}
	return h, true
}

// Track updates the tracked point for the given cursor position,
// clearing it if no point is close enough. It returns true if
// the tracked point changed, so the plot needs redrawing.
func (pt *Plot) Track(p image.Point) bool {
	h, ok := pt.FindGraphAt(p)
	if !ok {
		if pt.Tracked == nil {
			return false
		}
		pt.Tracked = nil
		return true
	}
	if pt.Tracked != nil && pt.Tracked.Dataset == h.Dataset && pt.Tracked.Index == h.Index {
		pt.Tracked.Dist = h.Dist
		return false
	}
	pt.Tracked = &h
	return true
}

// ClearTracking removes the tracked point.
func (pt *Plot) ClearTracking() {
	pt.Tracked = nil
}

// StepTracked moves the tracked point by step points within its
// dataset, as the left and right keys do. It returns false if no
// point is tracked or the step would leave the dataset.
func (pt *Plot) StepTracked(step int) bool {
	h := pt.Tracked
	if h == nil || h.Dataset >= len(pt.Datasets) {
		return false
	}
	xys := pt.Datasets[h.Dataset].XYs
	i := h.Index + step
	if step == 0 || i < 0 || i >= len(xys) {
		return false
	}
	p := xys[i]
	pt.Tracked = &Hit{Dataset: h.Dataset, Index: i, X: p.X, Y: p.Y}
	return true
}
