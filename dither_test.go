package dotscreen

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func isMonochrome(t *testing.T, pix []uint8) {
	t.Helper()
	for i := 0; i < len(pix); i += 4 {
		r, g, b := pix[i], pix[i+1], pix[i+2]
		if r != g || g != b {
			t.Fatalf("Pixel %d is not gray: %d %d %d", i/4, r, g, b)
		}
		if r != 0 && r != 255 {
			t.Fatalf("Pixel %d is not black or white: %d", i/4, r)
		}
	}
}

func TestGrayscaleDesaturates(t *testing.T) {
	img := uniformRGBA(4, 4, color.RGBA{200, 50, 120, 255})
	out := Grayscale(img)

	if out.Width() != 4 || out.Height() != 4 {
		t.Fatalf("Expected 4x4, got %dx%d", out.Width(), out.Height())
	}
	for i := 0; i < len(out.Pix); i += 4 {
		r, g, b, a := out.Pix[i], out.Pix[i+1], out.Pix[i+2], out.Pix[i+3]
		if r != g || g != b {
			t.Fatalf("Pixel %d should be gray, got %d %d %d", i/4, r, g, b)
		}
		if a != 255 {
			t.Fatalf("Pixel %d should be opaque, got %d", i/4, a)
		}
	}
}

func TestFloydSteinbergMonochrome(t *testing.T) {
	img := uniformRGBA(16, 16, color.RGBA{128, 128, 128, 255})
	out := FloydSteinberg(img)

	if out.Width() != 16 || out.Height() != 16 {
		t.Fatalf("Expected 16x16, got %dx%d", out.Width(), out.Height())
	}
	isMonochrome(t, out.Pix)
}

func TestOrderedDitherMonochrome(t *testing.T) {
	img := uniformRGBA(16, 16, color.RGBA{128, 128, 128, 255})
	out := OrderedDither(img)
	isMonochrome(t, out.Pix)
}

func TestDitherExtremes(t *testing.T) {
	white := uniformRGBA(8, 8, color.RGBA{255, 255, 255, 255})
	black := uniformRGBA(8, 8, color.RGBA{0, 0, 0, 255})

	if out := FloydSteinberg(white); out.Pix[0] != 255 {
		t.Errorf("White input should dither to white, got %d", out.Pix[0])
	}
	if out := FloydSteinberg(black); out.Pix[0] != 0 {
		t.Errorf("Black input should dither to black, got %d", out.Pix[0])
	}
	if out := OrderedDither(black); out.Pix[0] != 0 {
		t.Errorf("Black input should order-dither to black, got %d", out.Pix[0])
	}
}

func TestDitherDoesNotMutateInput(t *testing.T) {
	img := uniformRGBA(8, 8, color.RGBA{128, 128, 128, 255})
	before := img.Clone()

	FloydSteinberg(img)
	OrderedDither(img)

	if diff := cmp.Diff(before.Pix, img.Pix); diff != "" {
		t.Errorf("Input raster was mutated (-before +after):\n%s", diff)
	}
}
