// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datafile

import (
	"context"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cogentcore.org/chart/plot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	in := `# sensor log
x, a, b
2, 4, 
0, 0, NaN
1, 1, 10
, 5, 5
3, 9, 30
`
	sets, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, "a", sets[0].Name)
	assert.Equal(t, "b", sets[1].Name)
	assert.Equal(t, plot.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 4}, {X: 3, Y: 9}}, sets[0].XYs)
	assert.Equal(t, plot.XYs{{X: 1, Y: 10}, {X: 3, Y: 30}}, sets[1].XYs)
	assert.Equal(t, plot.Line, sets[0].Kind)
	assert.Equal(t, 0.8, sets[0].BarWidth)
}

func TestReadCSVNoHeader(t *testing.T) {
	sets, err := ReadCSV(strings.NewReader("0,1\n1,2,3\n"))
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, "column 1", sets[0].Name)
	assert.Equal(t, "column 2", sets[1].Name)
	assert.Equal(t, plot.XYs{{X: 0, Y: 1}, {X: 1, Y: 2}}, sets[0].XYs)
	assert.Equal(t, plot.XYs{{X: 1, Y: 3}}, sets[1].XYs)
}

func TestReadCSVErrors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("x,y\n1,2\n2,abc\n"))
	assert.ErrorContains(t, err, "line 3")

	_, err = ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, plot.ErrNoData)

	_, err = ReadCSV(strings.NewReader("1\n2\n"))
	assert.ErrorIs(t, err, plot.ErrNoData)
}

func TestReadTSV(t *testing.T) {
	sets, err := ReadDelim(strings.NewReader("t\tv\n1\t2\n0\t1\n"), '\t')
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, "v", sets[0].Name)
	assert.Equal(t, plot.XYs{{X: 0, Y: 1}, {X: 1, Y: 2}}, sets[0].XYs)
}

func TestReadJSON(t *testing.T) {
	in := `[
	// monthly totals
	{"name": "sales", "kind": "bar", "x": [2, 1, 3], "y": [20, 10, 30], "barWidth": 0.5, "color": "#ff0000"},
	{"kind": "stem", "x": [0], "y": [1]},
]`
	sets, err := ReadJSON(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, "sales", sets[0].Name)
	assert.Equal(t, plot.Bar, sets[0].Kind)
	assert.Equal(t, 0.5, sets[0].BarWidth)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, sets[0].Color)
	assert.Equal(t, plot.XYs{{X: 1, Y: 10}, {X: 2, Y: 20}, {X: 3, Y: 30}}, sets[0].XYs)
	assert.Equal(t, "data 1", sets[1].Name)
	assert.Equal(t, plot.Stem, sets[1].Kind)

	_, err = ReadJSON(strings.NewReader(`[{"kind": "pie", "x": [], "y": []}]`))
	assert.Error(t, err)
	_, err = ReadJSON(strings.NewReader(`[{"x": [1, 2], "y": [1]}]`))
	assert.Error(t, err)
	_, err = ReadJSON(strings.NewReader(`[{"x": [1], "y": [1], "color": "red"}]`))
	assert.Error(t, err)
	_, err = ReadJSON(strings.NewReader(`{`))
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	csvFile := filepath.Join(dir, "data.CSV")
	require.NoError(t, os.WriteFile(csvFile, []byte("x,y\n0,1\n"), 0666))
	sets, err := Open(csvFile)
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, "y", sets[0].Name)

	tsvFile := filepath.Join(dir, "data.tsv")
	require.NoError(t, os.WriteFile(tsvFile, []byte("x\ty\n0\t1\n"), 0666))
	sets, err = Open(tsvFile)
	require.NoError(t, err)
	assert.Equal(t, plot.XYs{{X: 0, Y: 1}}, sets[0].XYs)

	jsonFile := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(jsonFile, []byte(`[{"name": "j", "x": [1], "y": [2]}]`), 0666))
	sets, err = Open(jsonFile)
	require.NoError(t, err)
	assert.Equal(t, "j", sets[0].Name)

	png := filepath.Join(dir, "image.csv")
	require.NoError(t, os.WriteFile(png, []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), 0666))
	_, err = Open(png)
	assert.ErrorIs(t, err, ErrBinary)

	_, err = Open(filepath.Join(dir, "data.xlsx"))
	assert.ErrorIs(t, err, ErrFormat)

	_, err = Open(filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWatch(t *testing.T) {
	Debounce = 10 * time.Millisecond
	fn := filepath.Join(t.TempDir(), "live.csv")
	require.NoError(t, os.WriteFile(fn, []byte("x,y\n0,1\n"), 0666))

	ctx, cancel := context.WithCancel(context.Background())
	loads := make(chan []*plot.Dataset, 10)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, fn, func(sets []*plot.Dataset) { loads <- sets })
	}()

	select {
	case sets := <-loads:
		assert.Equal(t, plot.XYs{{X: 0, Y: 1}}, sets[0].XYs)
	case <-time.After(5 * time.Second):
		t.Fatal("no initial load")
	}

	require.NoError(t, os.WriteFile(fn, []byte("x,y\n0,1\n1,5\n"), 0666))
	select {
	case sets := <-loads:
		assert.Equal(t, plot.XYs{{X: 0, Y: 1}, {X: 1, Y: 5}}, sets[0].XYs)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}

	assert.Error(t, Watch(context.Background(), filepath.Join(t.TempDir(), "none.csv"), func([]*plot.Dataset) {}))
}
