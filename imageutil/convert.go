package imageutil

// ToGrayscale converts an RGBA image to grayscale using the standard
// luminance formula: Y = 0.299*R + 0.587*G + 0.114*B (BT.601).
func ToGrayscale(img *RGBAImage) *GrayImage {
	width, height := img.Width(), img.Height()
	gray := NewGrayImage(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.RGBAAt(x, y)
			// Integer math for speed, scaled by 1000 with rounding.
			lum := (299*int(c.R) + 587*int(c.G) + 114*int(c.B) + 500) / 1000
			if lum > 255 {
				lum = 255
			}
			gray.Pix[y*gray.Stride+x] = uint8(lum)
		}
	}

	return gray
}

// PromoteToRGBA converts a grayscale image back to a full-color raster.
// Each output pixel has R = G = B = Y and full opacity.
func PromoteToRGBA(gray *GrayImage) *RGBAImage {
	width, height := gray.Width(), gray.Height()
	rgba := NewRGBAImage(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := gray.Pix[y*gray.Stride+x]
			i := y*rgba.Stride + x*4
			rgba.Pix[i] = v
			rgba.Pix[i+1] = v
			rgba.Pix[i+2] = v
			rgba.Pix[i+3] = 255
		}
	}

	return rgba
}
