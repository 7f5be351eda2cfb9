// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package datafile loads plot datasets from CSV, TSV and JSON files,
// and watches a file to reload it when it changes.
package datafile

import (
	"bytes"
	"cmp"
	"encoding/csv"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/chart/base/errors"
	"cogentcore.org/chart/plot"
	"github.com/h2non/filetype"
	jsoniter "github.com/json-iterator/go"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/tailscale/hujson"
)

var (
	// ErrBinary is returned when a data file is not text.
	ErrBinary = errors.New("datafile: binary file")

	// ErrFormat is returned for unsupported file extensions.
	ErrFormat = errors.New("datafile: unsupported file extension")
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Extensions are the supported data file extensions.
var Extensions = []string{".csv", ".tsv", ".json"}

// Open loads datasets from the given file, with the format
// chosen by its extension.
func Open(filename string) ([]*plot.Dataset, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !slices.Contains(Extensions, ext) {
		return nil, fmt.Errorf("%w %q, must be one of %v", ErrFormat, ext, Extensions)
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	if err := checkText(b); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	switch ext {
	case ".tsv":
		return ReadDelim(bytes.NewReader(b), '\t')
	case ".json":
		return ReadJSON(bytes.NewReader(b))
	}
	return ReadCSV(bytes.NewReader(b))
}

// checkText returns [ErrBinary] if the content starts with
// the signature of a known binary file type.
func checkText(b []byte) error {
	kind, _ := filetype.Match(b)
	if kind == filetype.Unknown {
		return nil
	}
	return fmt.Errorf("%w of type %s (%s)", ErrBinary, kind.Extension, kind.MIME.Value)
}

// ReadCSV reads comma separated values. See [ReadDelim].
func ReadCSV(r io.Reader) ([]*plot.Dataset, error) {
	return ReadDelim(r, ',')
}

// ReadDelim reads delimited values, where column 0 is X and each
// further column is a line dataset. If the first row has any cell that
// is not a number, it is a header giving the dataset names. Blank and
// NaN cells are skipped, as are rows with no X value. Lines starting
// with # are comments. Points are sorted by X.
func ReadDelim(r io.Reader, delim rune) ([]*plot.Dataset, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var sets []*plot.Dataset
	addSet := func(name string) {
		ds := &plot.Dataset{Name: name}
		ds.Defaults()
		sets = append(sets, ds)
	}
	first := true
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		if first {
			first = false
			if isHeader(rec) {
				for _, h := range rec[1:] {
					addSet(strings.TrimSpace(h))
				}
				continue
			}
		}
		for len(sets) < len(rec)-1 {
			addSet(fmt.Sprintf("column %d", len(sets)+1))
		}
		x, ok, err := parseCell(rec[0])
		if err != nil {
			return nil, fmt.Errorf("datafile: line %d: x: %w", line, err)
		}
		if !ok {
			continue
		}
		for i, cell := range rec[1:] {
			y, ok, err := parseCell(cell)
			if err != nil {
				return nil, fmt.Errorf("datafile: line %d: column %d: %w", line, i+1, err)
			}
			if ok {
				sets[i].Append(plot.XY{X: x, Y: y})
			}
		}
	}
	if len(sets) == 0 {
		return nil, fmt.Errorf("datafile: need an X column and at least one Y column: %w", plot.ErrNoData)
	}
	for _, ds := range sets {
		sortXYs(ds.XYs)
	}
	return sets, nil
}

// isHeader returns true if any cell of the record is not a number.
func isHeader(rec []string) bool {
	for _, c := range rec {
		if _, _, err := parseCell(c); err != nil {
			return true
		}
	}
	return false
}

// parseCell parses a numeric cell. Blank and NaN cells
// return ok = false with no error.
func parseCell(s string) (v float64, ok bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, nil
	}
	v, err = strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, err
	}
	if math.IsNaN(v) {
		return 0, false, nil
	}
	return v, true, nil
}

func sortXYs(xys plot.XYs) {
	slices.SortStableFunc(xys, func(a, b plot.XY) int { return cmp.Compare(a.X, b.X) })
}

// jsonDataset is the JSON form of a dataset.
type jsonDataset struct {
	Name     string     `json:"name"`
	Kind     plot.Kinds `json:"kind"`
	X        []float64  `json:"x"`
	Y        []float64  `json:"y"`
	BarWidth float64    `json:"barWidth,omitempty"`
	Color    string     `json:"color,omitempty"`
}

// ReadJSON reads a JSON array of datasets, each an object with
// "name", "kind" (line, bar or stem), "x" and "y" arrays, and
// optional "barWidth" and hex "color". Comments and trailing commas
// are allowed. Points are sorted by X.
func ReadJSON(r io.Reader) ([]*plot.Dataset, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	v, err := hujson.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("datafile: %w", err)
	}
	v.Standardize()
	var jds []jsonDataset
	if err := json.Unmarshal(v.Pack(), &jds); err != nil {
		return nil, fmt.Errorf("datafile: %w", err)
	}
	sets := make([]*plot.Dataset, 0, len(jds))
	for i, jd := range jds {
		name := jd.Name
		if name == "" {
			name = fmt.Sprintf("data %d", i)
		}
		ds, err := plot.NewDatasetXY(name, jd.X, jd.Y)
		if err != nil {
			return nil, err
		}
		ds.Kind = jd.Kind
		if jd.BarWidth > 0 {
			ds.BarWidth = jd.BarWidth
		}
		if jd.Color != "" {
			c, err := colorful.Hex(jd.Color)
			if err != nil {
				return nil, fmt.Errorf("datafile: dataset %q: %w", name, err)
			}
			cr, cg, cb := c.RGB255()
			ds.Color = color.RGBA{cr, cg, cb, 255}
		}
		ds.Defaults()
		sortXYs(ds.XYs)
		sets = append(sets, ds)
	}
	return sets, nil
}
