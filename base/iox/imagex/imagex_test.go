// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtToFormat(t *testing.T) {
	tests := map[string]Formats{
		"png": PNG, ".PNG": PNG, "jpg": JPEG, ".jpeg": JPEG,
		"gif": GIF, "tif": TIFF, ".tiff": TIFF, "bmp": BMP,
	}
	for ext, want := range tests {
		f, err := ExtToFormat(ext)
		assert.NoError(t, err, ext)
		assert.Equal(t, want, f, ext)
	}
	_, err := ExtToFormat(".svgz")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	_, err = ExtToFormat("")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWriteRead(t *testing.T) {
	im := image.NewRGBA(image.Rect(0, 0, 4, 3))
	im.Set(1, 1, color.RGBA{200, 10, 10, 255})
	for _, f := range []Formats{PNG, BMP, TIFF} {
		var b bytes.Buffer
		require.NoError(t, Write(im, &b, f), f.String())
		got, gf, err := Read(&b)
		require.NoError(t, err, f.String())
		assert.Equal(t, f, gf)
		assert.Equal(t, im.Bounds(), got.Bounds())
		r, _, _, _ := got.At(1, 1).RGBA()
		assert.Equal(t, uint32(200), r>>8)
	}
}

func TestSaveUnknown(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "plot.xyz")
	err := Save(image.NewRGBA(image.Rect(0, 0, 1, 1)), fn)
	assert.ErrorIs(t, err, ErrUnknownFormat)
	_, err = os.Stat(fn)
	assert.True(t, os.IsNotExist(err))
}

func TestCompareColors(t *testing.T) {
	a := color.RGBA{100, 100, 100, 255}
	assert.True(t, CompareColors(a, color.RGBA{105, 95, 100, 255}, 10))
	assert.False(t, CompareColors(a, color.RGBA{120, 100, 100, 255}, 10))
}
