// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotweb

import (
	"bufio"
	"context"
	"image"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cogentcore.org/chart/plot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlot(t *testing.T, title string) *plot.Plot {
	pt := plot.New()
	pt.Resize(image.Pt(200, 150))
	pt.SetTitle(title)
	ds, err := plot.NewDatasetXY("a", []float64{0, 1, 2}, []float64{1, 0, 2})
	require.NoError(t, err)
	pt.SetData(ds)
	return pt
}

func get(t *testing.T, url string) (*http.Response, string) {
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(b)
}

func TestHandlers(t *testing.T) {
	s := NewServer()
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, _ := get(t, ts.URL+"/plot.png")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	s.Update(testPlot(t, "First"))

	resp, body := get(t, ts.URL+"/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "<title>First</title>")
	assert.Contains(t, body, `<div id="chart"><svg `)

	resp, body = get(t, ts.URL+"/plot.svg")
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(body, "<svg "))

	resp, body = get(t, ts.URL+"/plot.png")
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(body, "\x89PNG"))

	resp, _ = get(t, ts.URL+"/other")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// readUntil reads lines from the stream until one contains s.
func readUntil(t *testing.T, br *bufio.Reader, s string) {
	for {
		line, err := br.ReadString('\n')
		require.NoError(t, err, "waiting for %q", s)
		if strings.Contains(line, s) {
			return
		}
	}
}

func TestUpdates(t *testing.T) {
	s := NewServer()
	s.Update(testPlot(t, "First"))
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/updates", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	br := bufio.NewReader(resp.Body)
	readUntil(t, br, ">First<")

	s.Update(testPlot(t, "Second"))
	readUntil(t, br, ">Second<")
}
