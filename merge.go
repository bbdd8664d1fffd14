package dotscreen

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"

	"github.com/hweber/dotscreen/imageutil"
)

// mergeBlurSigma softens the alpha mask enough to hide stair-stepping
// left by scaling without visibly spreading the marks.
const mergeBlurSigma = 0.5

// Merge composites a processed halftone over the original image, so the
// halftone marks read as dark ink on the photo instead of a separate
// black/white raster. The processed raster's inverted luminance becomes
// the overlay's alpha mask: white halftone pixels turn transparent,
// black ones opaque. A mask sized differently from the original is
// Lanczos-resampled to match before the blur and contrast stretch.
func Merge(original, processed *imageutil.RGBAImage) *imageutil.RGBAImage {
	gray := imageutil.ToGrayscale(processed)

	var alphaSrc image.Image = imaging.Invert(gray.Gray)
	if processed.Width() != original.Width() || processed.Height() != original.Height() {
		alphaSrc = imaging.Resize(alphaSrc, original.Width(), original.Height(), imaging.Lanczos)
	}
	alphaSrc = imaging.Blur(alphaSrc, mergeBlurSigma)

	mask := stretchedAlphaMask(alphaSrc)

	merged := original.Clone()
	draw.DrawMask(merged.RGBA, merged.Bounds(), image.Black, image.Point{}, mask, image.Point{}, draw.Over)
	return merged
}

// stretchedAlphaMask converts a grayscale-content image into an alpha
// mask stretched to cover the full 0-255 range. A constant mask is
// returned unchanged since there is no range to stretch.
func stretchedAlphaMask(src image.Image) *image.Alpha {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	mask := image.NewAlpha(image.Rect(0, 0, width, height))

	lo, hi := uint8(255), uint8(0)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.GrayModel.Convert(src.At(bounds.Min.X+x, bounds.Min.Y+y))
			v := c.(color.Gray).Y
			mask.Pix[y*mask.Stride+x] = v
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}

	if hi > lo {
		span := int(hi) - int(lo)
		for i, v := range mask.Pix {
			mask.Pix[i] = uint8((int(v) - int(lo)) * 255 / span)
		}
	}
	return mask
}
