// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datafile

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"cogentcore.org/chart/base/errors"
	"cogentcore.org/chart/plot"
	"github.com/avast/retry-go"
	"github.com/fsnotify/fsnotify"
)

// Debounce is how long Watch waits after the last change event
// before reloading, so that a burst of writes loads once.
var Debounce = 100 * time.Millisecond

// ReloadAttempts is the number of times Watch tries to load a changed
// file, which can fail transiently while it is partially written.
var ReloadAttempts uint = 3

// Watch loads the given file and calls fn with its datasets, then
// does so again each time the file is written or created, until ctx
// is done. It returns an error if the initial load fails. Failed
// reloads are logged and the previous data is kept. It blocks, and
// fn runs on the calling goroutine.
func Watch(ctx context.Context, filename string, fn func(sets []*plot.Dataset)) error {
	filename = filepath.Clean(filename)
	sets, err := Open(filename)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	// watch the directory, as editors often replace the file
	if err := w.Add(filepath.Dir(filename)); err != nil {
		return err
	}
	fn(sets)

	var reload <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filename || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			reload = time.After(Debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		case <-reload:
			reload = nil
			sets, err := openRetry(ctx, filename)
			if errors.Log(err) != nil {
				continue
			}
			slog.Info("datafile: reloaded", "file", filename, "datasets", len(sets))
			fn(sets)
		}
	}
}

// openRetry opens the file, retrying briefly on failure.
func openRetry(ctx context.Context, filename string) ([]*plot.Dataset, error) {
	var sets []*plot.Dataset
	err := retry.Do(
		func() error {
			var err error
			sets, err = Open(filename)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(ReloadAttempts),
		retry.Delay(Debounce),
		retry.MaxDelay(time.Second),
		retry.LastErrorOnly(true),
	)
	return sets, err
}
