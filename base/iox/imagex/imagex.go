// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex provides raster image encoding for plot export,
// and golden-image assertions for tests.
package imagex

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/chart/base/iox"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Formats are the supported raster export formats.
type Formats int32

// The supported image encoding formats
const (
	None Formats = iota
	PNG
	JPEG
	GIF
	TIFF
	BMP
)

var formatNames = [...]string{"None", "PNG", "JPEG", "GIF", "TIFF", "BMP"}

func (f Formats) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Formats(%d)", int32(f))
	}
	return formatNames[f]
}

// ErrUnknownFormat is returned for file extensions that
// do not name a supported raster format.
var ErrUnknownFormat = errors.New("imagex: unknown image format")

// ExtToFormat returns a Format based on a filename extension,
// which can start with a . or not
func ExtToFormat(ext string) (Formats, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	switch ext {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "gif":
		return GIF, nil
	case "tif", "tiff":
		return TIFF, nil
	case "bmp":
		return BMP, nil
	case "":
		return None, fmt.Errorf("%w: extension is empty", ErrUnknownFormat)
	}
	return None, fmt.Errorf("%w: extension %q not recognized", ErrUnknownFormat, ext)
}

// Open opens an image from the given filename.
// The format is inferred automatically.
func Open(filename string) (image.Image, Formats, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, None, err
	}
	defer file.Close()
	return Read(file)
}

// Read reads an image from the given reader.
// The format is inferred automatically.
func Read(r io.Reader) (image.Image, Formats, error) {
	im, ext, err := image.Decode(r)
	if err != nil {
		return im, None, err
	}
	f, err := ExtToFormat(ext)
	return im, f, err
}

// Save saves the image to the given filename,
// with the format inferred from the filename.
// The file is not created when the extension is not supported.
func Save(im image.Image, filename string) error {
	f, err := ExtToFormat(filepath.Ext(filename))
	if err != nil {
		return err
	}
	return iox.SaveFile(filename, func(w io.Writer) error {
		return Write(im, w, f)
	})
}

// JPEGQuality is the quality used when encoding JPEG images.
var JPEGQuality = 90

// Write writes the image to the given writer using the given format.
func Write(im image.Image, w io.Writer, f Formats) error {
	switch f {
	case PNG:
		return png.Encode(w, im)
	case JPEG:
		return jpeg.Encode(w, im, &jpeg.Options{Quality: JPEGQuality})
	case GIF:
		return gif.Encode(w, im, nil)
	case TIFF:
		return tiff.Encode(w, im, &tiff.Options{Compression: tiff.Deflate})
	case BMP:
		return bmp.Encode(w, im)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}
