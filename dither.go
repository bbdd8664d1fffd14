package dotscreen

import (
	"image/color"

	"github.com/makeworld-the-better-one/dither/v2"

	"github.com/hweber/dotscreen/imageutil"
)

// monoPalette is the two-level palette used by both dithering methods.
var monoPalette = []color.Color{color.Black, color.White}

// whiteRGBA is the blank-canvas color shared by the renderers.
var whiteRGBA = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Grayscale desaturates img and promotes it back to a full-color
// raster.
func Grayscale(img *imageutil.RGBAImage) *imageutil.RGBAImage {
	return imageutil.PromoteToRGBA(imageutil.ToGrayscale(img))
}

// FloydSteinberg applies Floyd-Steinberg error-diffusion dithering to a
// black/white palette and promotes the result back to full color.
func FloydSteinberg(img *imageutil.RGBAImage) *imageutil.RGBAImage {
	d := dither.NewDitherer(monoPalette)
	d.Matrix = dither.FloydSteinberg
	// Dither may write through the source raster, so give it a copy.
	return imageutil.FromImage(d.Dither(img.Clone().RGBA))
}

// OrderedDither applies Bayer-matrix ordered dithering to a black/white
// palette and promotes the result back to full color.
func OrderedDither(img *imageutil.RGBAImage) *imageutil.RGBAImage {
	d := dither.NewDitherer(monoPalette)
	d.Mapper = dither.Bayer(4, 4, 1.0)
	return imageutil.FromImage(d.Dither(img.Clone().RGBA))
}
