// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotweb serves a live view of a plot over HTTP, pushing
// a new SVG rendering to connected browsers whenever it changes.
package plotweb

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"
	"sync"

	"cogentcore.org/chart/base/errors"
	"cogentcore.org/chart/base/iox/imagex"
	"cogentcore.org/chart/plot"
	ds "github.com/starfederation/datastar-go/datastar"
)

// DatastarScript is the URL of the datastar client script.
var DatastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script type="module" src="{{.Script}}"></script>
</head>
<body data-init="@get('/updates')">
<div id="chart">{{.SVG}}</div>
</body>
</html>
`))

// Server holds the latest renderings of a plot and serves them.
// Update is called from the goroutine that owns the plot, while
// the handlers run on the HTTP server goroutines.
type Server struct {
	mu      sync.Mutex
	title   string
	svg     string
	png     []byte
	changed chan struct{}
}

// NewServer returns a new Server with no plot rendered yet.
func NewServer() *Server {
	return &Server{changed: make(chan struct{})}
}

// Update renders the plot and notifies connected clients.
func (s *Server) Update(pt *plot.Plot) {
	svg := pt.SVGString()
	var b bytes.Buffer
	errors.Log(pt.WriteImage(&b, imagex.PNG))

	s.mu.Lock()
	s.title = pt.Title()
	s.svg = svg
	s.png = b.Bytes()
	close(s.changed)
	s.changed = make(chan struct{})
	s.mu.Unlock()
}

// current returns the latest SVG and a channel that is closed
// on the next update.
func (s *Server) current() (string, <-chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.svg, s.changed
}

// Handler returns the HTTP handler for the page, its live
// updates and the raw SVG and PNG renderings.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.IndexHandler)
	mux.HandleFunc("/updates", s.UpdatesHandler)
	mux.HandleFunc("/plot.svg", s.SVGHandler)
	mux.HandleFunc("/plot.png", s.PNGHandler)
	return mux
}

// IndexHandler serves the page showing the plot.
func (s *Server) IndexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.mu.Lock()
	data := map[string]any{
		"Title":  s.title,
		"Script": DatastarScript,
		"SVG":    template.HTML(s.svg),
	}
	s.mu.Unlock()
	if err := indexTemplate.Execute(w, data); err != nil {
		slog.Error("plotweb: index", "err", err)
	}
}

// UpdatesHandler streams the plot to the client as server sent
// events, replacing the chart element on each update.
func (s *Server) UpdatesHandler(w http.ResponseWriter, r *http.Request) {
	sse := ds.NewSSE(w, r)
	ctx := r.Context()
	for {
		svg, changed := s.current()
		if err := sse.PatchElements(`<div id="chart">` + svg + `</div>`); err != nil {
			slog.Debug("plotweb: client gone", "err", err)
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-changed:
		}
	}
}

// SVGHandler serves the latest SVG rendering.
func (s *Server) SVGHandler(w http.ResponseWriter, r *http.Request) {
	svg, _ := s.current()
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write([]byte(svg))
}

// PNGHandler serves the latest raster rendering.
func (s *Server) PNGHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	png := s.png
	s.mu.Unlock()
	if len(png) == 0 {
		http.Error(w, "no plot yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
