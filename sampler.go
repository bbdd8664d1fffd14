// Package dotscreen renders images through a catalogue of halftone and
// dithering transforms: grayscale, error-diffusion and ordered dithering,
// circular-dot halftone, and ASCII-glyph halftone. Every transform is a
// pure function over its input raster; callers can recompute previews
// freely and concurrently.
package dotscreen

import "github.com/hweber/dotscreen/imageutil"

// minDotSize is the smallest usable sampling tile edge. Smaller values
// are clamped up rather than rejected.
const minDotSize = 2

func clampDotSize(dotSize int) int {
	if dotSize < minDotSize {
		return minDotSize
	}
	return dotSize
}

// tileBrightness returns the mean luminance of the tile
// [left,right) x [top,bottom) of gray on a 0-255 scale. The bounds must
// already be clipped to the image. Aggregation goes through a 256-bin
// luminance histogram, so the reduction after the scan is O(256)
// regardless of tile area. A degenerate tile with no pixels reads as
// white.
func tileBrightness(gray *imageutil.GrayImage, left, top, right, bottom int) float64 {
	var histogram [256]int
	for y := top; y < bottom; y++ {
		row := gray.Pix[y*gray.Stride:]
		for x := left; x < right; x++ {
			histogram[row[x]]++
		}
	}

	total := 0
	weighted := 0
	for v, count := range histogram {
		total += count
		weighted += v * count
	}
	if total == 0 {
		return 255
	}
	return float64(weighted) / float64(total)
}

// BrightnessGrid partitions gray into tiles of tileWidth x tileHeight
// starting at (0,0), the last row and column clipped at the image edges,
// and returns the mean luminance of each tile. The result has
// ceil(H/tileHeight) rows of ceil(W/tileWidth) values.
func BrightnessGrid(gray *imageutil.GrayImage, tileWidth, tileHeight int) [][]float64 {
	width, height := gray.Width(), gray.Height()

	var grid [][]float64
	for top := 0; top < height; top += tileHeight {
		bottom := top + tileHeight
		if bottom > height {
			bottom = height
		}
		var row []float64
		for left := 0; left < width; left += tileWidth {
			right := left + tileWidth
			if right > width {
				right = width
			}
			row = append(row, tileBrightness(gray, left, top, right, bottom))
		}
		grid = append(grid, row)
	}
	return grid
}
