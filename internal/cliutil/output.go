// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cliutil

import (
	"fmt"
	"io"

	"cogentcore.org/chart/base/iox/yamlx"
	jsoniter "github.com/json-iterator/go"
)

// Formats are the output formats accepted by the --format flag.
var Formats = []string{"text", "json", "yaml"}

// WriteOutput writes v to w in the given format. For the text
// format, text is written instead, one line per element.
func WriteOutput(w io.Writer, format string, v any, text []string) error {
	switch format {
	case "", "text":
		for _, s := range text {
			if _, err := fmt.Fprintln(w, s); err != nil {
				return err
			}
		}
		return nil
	case "json":
		b, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	case "yaml":
		return yamlx.Write(v, w)
	}
	return fmt.Errorf("invalid output format %q, must be one of %v", format, Formats)
}
