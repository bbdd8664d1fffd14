package imageutil

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// LoadImage loads an image from the specified path and normalizes it to
// an RGBA raster. Supports PNG, JPEG, GIF, BMP, and TIFF formats.
func LoadImage(path string) (*RGBAImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return FromImage(img), nil
}

// SaveImage saves an image to the specified path. The format is
// determined by the file extension; unknown extensions fall back to PNG.
func SaveImage(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	var encErr error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		encErr = jpeg.Encode(f, img, &jpeg.Options{Quality: 95})
	case ".gif":
		encErr = gif.Encode(f, img, nil)
	case ".bmp":
		encErr = bmp.Encode(f, img)
	case ".tif", ".tiff":
		encErr = tiff.Encode(f, img, nil)
	default:
		encErr = png.Encode(f, img)
	}
	if encErr != nil {
		return fmt.Errorf("failed to encode image: %w", encErr)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
