package dotscreen

import (
	"image/color"

	"github.com/fogleman/gg"

	"github.com/hweber/dotscreen/imageutil"
)

// CircularHalftone renders img as a grid of filled black disks on a
// white canvas of the same size. Each disk's radius is proportional to
// its tile's darkness: radius 0 for a pure white tile, dotSize/2 for a
// pure black one. Tile brightness is sampled over the clipped tile
// extent, but disks are always centered on the unclipped tile origin so
// the dot grid stays regular at the trailing edges.
func CircularHalftone(img *imageutil.RGBAImage, dotSize int) *imageutil.RGBAImage {
	dotSize = clampDotSize(dotSize)
	gray := imageutil.ToGrayscale(img)
	width, height := gray.Width(), gray.Height()

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetColor(color.Black)

	halfDot := float64(dotSize) / 2
	for top := 0; top < height; top += dotSize {
		bottom := top + dotSize
		if bottom > height {
			bottom = height
		}
		for left := 0; left < width; left += dotSize {
			right := left + dotSize
			if right > width {
				right = width
			}

			brightness := tileBrightness(gray, left, top, right, bottom)
			darkness := 1 - brightness/255
			radius := halfDot * darkness
			if radius <= 0 {
				continue
			}

			dc.DrawCircle(float64(left)+halfDot, float64(top)+halfDot, radius)
			dc.Fill()
		}
	}

	return imageutil.FromImage(dc.Image())
}
