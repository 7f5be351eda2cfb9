// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up the default slog logger for chart tools:
// a text handler on stderr with colored level names, filtered
// at the verbosity chosen on the command line.
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the lowest level that gets logged.
// Commands set it from their -v/--vv/-q flags.
var UserLevel = slog.LevelWarn

// LevelFromFlags maps the verbosity flags to a level.
// More verbose flags win: vv gives debug even with q set.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	}
	return slog.LevelWarn
}

// UseColor is whether to use color in log messages.
// It is on by default.
var UseColor = true

// colorProfile is the termenv color profile,
// stored globally for convenience.
var colorProfile termenv.Profile

// SetDefaultLogger sets the default logger to be a text handler
// writing to [os.Stderr], with the level set to [UserLevel] and
// level names colored when [UseColor] is on.
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// NewHandler returns a new [slog.TextHandler] writing to w
// at [UserLevel], coloring level names when [UseColor] is on.
func NewHandler(w io.Writer) slog.Handler {
	colorProfile = termenv.NewOutput(w).ColorProfile()
	opts := &slog.HandlerOptions{Level: UserLevel}
	if UseColor {
		opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey || len(groups) > 0 {
				return a
			}
			lv, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			return slog.String(a.Key, LevelString(lv))
		}
	}
	return slog.NewTextHandler(w, opts)
}

// LevelString returns the name of the given level,
// colored according to its severity.
func LevelString(lv slog.Level) string {
	s := lv.String()
	if !UseColor {
		return s
	}
	var c termenv.Color
	switch {
	case lv >= slog.LevelError:
		c = colorProfile.Color("#ff5f5f")
	case lv >= slog.LevelWarn:
		c = colorProfile.Color("#ffaf00")
	case lv >= slog.LevelInfo:
		c = colorProfile.Color("#5fafff")
	default:
		c = colorProfile.Color("#8a8a8a")
	}
	return termenv.String(s).Foreground(c).String()
}
