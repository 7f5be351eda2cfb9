// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minmax

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF64(t *testing.T) {
	var r F64
	r.SetInfinity()
	assert.False(t, r.IsValid())
	for _, v := range []float64{3, -2, 7} {
		r.FitValInRange(v)
	}
	assert.Equal(t, F64{-2, 7}, r)
	assert.Equal(t, 9.0, r.Range())
	assert.Equal(t, 7.0, r.ClipValue(10))
	assert.Equal(t, -2.0, r.ClipValue(-3))

	var empty F64
	empty.SetInfinity()
	r.FitInRange(empty)
	assert.Equal(t, F64{-2, 7}, r)
	r.FitInRange(F64{5, 12})
	assert.Equal(t, F64{-2, 12}, r)
}

func TestSanitize(t *testing.T) {
	r := F64{2, 2}
	r.Sanitize()
	assert.Equal(t, F64{1, 3}, r)

	r.SetInfinity()
	r.Sanitize()
	assert.Equal(t, F64{0, 1}, r)

	r = F64{math.Inf(-1), 3}
	r.Sanitize()
	assert.Equal(t, F64{0, 1}, r)
}

func TestRange64(t *testing.T) {
	var rr Range64
	assert.False(t, rr.IsFixed())
	mn, mx := rr.Clamp(-1, 1)
	assert.Equal(t, -1.0, mn)
	assert.Equal(t, 1.0, mx)

	rr.SetMin(-0.5)
	assert.True(t, rr.IsFixed())
	mn, mx = rr.Clamp(-1, 1)
	assert.Equal(t, -0.5, mn)
	assert.Equal(t, 1.0, mx)
	assert.False(t, rr.Contains(-0.6))
	assert.True(t, rr.Contains(100))

	rr.Set(0, 10)
	assert.Equal(t, Range64{Min: 0, Max: 10, FixMin: true, FixMax: true}, rr)
	assert.False(t, rr.Contains(11))
	rr.Clear()
	assert.False(t, rr.IsFixed())
}
