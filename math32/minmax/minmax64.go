// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides structs that hold Min and Max values.
package minmax

import "math"

// MaxFloat64 is the largest finite float64.
const MaxFloat64 float64 = 1.7976931348623158e+308

// F64 represents a min / max range for float64 values.
// Supports merging and clipping.
type F64 struct {
	Min float64
	Max float64
}

// SetInfinity sets the Min to +MaxFloat, Max to -MaxFloat -- suitable for
// iteratively calling Fit*InRange
func (mr *F64) SetInfinity() {
	mr.Min = MaxFloat64
	mr.Max = -MaxFloat64
}

// IsValid returns true if Min <= Max
func (mr *F64) IsValid() bool {
	return mr.Min <= mr.Max
}

// Range returns Max - Min
func (mr *F64) Range() float64 {
	return mr.Max - mr.Min
}

// FitValInRange adjusts our Min, Max to fit given value within Min, Max range
// returns true if we had to adjust to fit.
func (mr *F64) FitValInRange(val float64) bool {
	adj := false
	if val < mr.Min {
		mr.Min = val
		adj = true
	}
	if val > mr.Max {
		mr.Max = val
		adj = true
	}
	return adj
}

// FitInRange extends our Min, Max to also cover the given range.
// An invalid (empty) range leaves ours unchanged.
func (mr *F64) FitInRange(o F64) {
	if !o.IsValid() {
		return
	}
	mr.FitValInRange(o.Min)
	mr.FitValInRange(o.Max)
}

// ClipValue clips given value within Min / Max range
// Note: a NaN will remain as a NaN
func (mr *F64) ClipValue(val float64) float64 {
	if val < mr.Min {
		return mr.Min
	}
	if val > mr.Max {
		return mr.Max
	}
	return val
}

// Sanitize makes the range usable as a plotting extent:
// non-finite or inverted (empty) ranges become [0, 1],
// and a zero-width range is widened by 1 on each side.
func (mr *F64) Sanitize() {
	if math.IsInf(mr.Min, 0) || math.IsNaN(mr.Min) || math.IsInf(mr.Max, 0) || math.IsNaN(mr.Max) || !mr.IsValid() {
		mr.Min, mr.Max = 0, 1
		return
	}
	if mr.Min == mr.Max {
		mr.Min--
		mr.Max++
	}
}

// Range64 represents a range of values where either end
// can optionally be fixed, as used for axis limits.
type Range64 struct {
	Min float64

	Max float64

	// FixMin fixes the minimum end of the range to Min.
	FixMin bool

	// FixMax fixes the maximum end of the range to Max.
	FixMax bool
}

// Set fixes both ends of the range to the given values.
func (rr *Range64) Set(mn, mx float64) *Range64 {
	rr.Min, rr.Max = mn, mx
	rr.FixMin, rr.FixMax = true, true
	return rr
}

// SetMin fixes the min end of the range.
func (rr *Range64) SetMin(mn float64) *Range64 {
	rr.Min = mn
	rr.FixMin = true
	return rr
}

// SetMax fixes the max end of the range.
func (rr *Range64) SetMax(mx float64) *Range64 {
	rr.Max = mx
	rr.FixMax = true
	return rr
}

// Clear unfixes both ends of the range.
func (rr *Range64) Clear() {
	*rr = Range64{}
}

// IsFixed returns true if either end of the range is fixed.
func (rr *Range64) IsFixed() bool {
	return rr.FixMin || rr.FixMax
}

// Clamp returns the given min, max values with each fixed end
// of the range substituted for the corresponding value.
func (rr *Range64) Clamp(mnIn, mxIn float64) (mn, mx float64) {
	mn, mx = mnIn, mxIn
	if rr.FixMin {
		mn = rr.Min
	}
	if rr.FixMax {
		mx = rr.Max
	}
	return
}

// Contains returns true if val lies within the fixed ends of the range.
// Unfixed ends do not constrain the value.
func (rr *Range64) Contains(val float64) bool {
	if rr.FixMin && val < rr.Min {
		return false
	}
	if rr.FixMax && val > rr.Max {
		return false
	}
	return true
}
