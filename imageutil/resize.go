package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationSmooth uses Catmull-Rom, suitable for both up and
	// down scaling of photographic content.
	InterpolationSmooth Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation. This is
	// the right choice when scaling glyph cells or other pixel-exact
	// artwork where blending would smear edges.
	InterpolationNearest
)

func scalerFor(interp Interpolation) draw.Scaler {
	switch interp {
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationNearest:
		return draw.NearestNeighbor
	default:
		return draw.CatmullRom
	}
}

// Resize resizes an RGBA image to the specified dimensions using the
// given interpolation method.
func Resize(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	dst := NewRGBAImage(width, height)
	scalerFor(interp).Scale(dst.RGBA, image.Rect(0, 0, width, height), img.RGBA, img.Bounds(), draw.Over, nil)
	return dst
}

// ResizeGray resizes a grayscale image to the specified dimensions.
func ResizeGray(img *GrayImage, width, height int, interp Interpolation) *GrayImage {
	dst := NewGrayImage(width, height)
	scalerFor(interp).Scale(dst.Gray, image.Rect(0, 0, width, height), img.Gray, img.Bounds(), draw.Over, nil)
	return dst
}
