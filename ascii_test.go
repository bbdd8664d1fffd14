package dotscreen

import (
	"errors"
	"strings"
	"testing"

	"github.com/hweber/dotscreen/imageutil"
)

var testFont = DefaultFontSource()

func newTestRenderer() *ASCIIRenderer {
	return NewASCIIRenderer(testFont)
}

func asciiAspect(v float64) *float64 { return &v }

func TestResolveRampDeduplicates(t *testing.T) {
	ramp, err := resolveRamp("  ##.#")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(ramp) != " #." {
		t.Errorf("Expected ramp %q, got %q", " #.", string(ramp))
	}
}

func TestResolveRampEmpty(t *testing.T) {
	if _, err := resolveRamp(""); !errors.Is(err, ErrInvalidCharset) {
		t.Errorf("Expected ErrInvalidCharset, got %v", err)
	}
}

func TestLinesEmptyCharset(t *testing.T) {
	img := uniformGrayRGBA(8, 8, 128)
	_, err := newTestRenderer().Lines(img, ASCIIOptions{DotSize: 4, Charset: ""})
	if !errors.Is(err, ErrInvalidCharset) {
		t.Errorf("Expected ErrInvalidCharset, got %v", err)
	}
}

func TestLinesInvalidAspect(t *testing.T) {
	img := uniformGrayRGBA(8, 8, 128)
	r := newTestRenderer()

	for _, aspect := range []float64{0, -1.5} {
		_, err := r.Lines(img, ASCIIOptions{
			DotSize:    4,
			Charset:    DefaultCharset,
			CharAspect: asciiAspect(aspect),
		})
		if !errors.Is(err, ErrInvalidAspect) {
			t.Errorf("Aspect %f: expected ErrInvalidAspect, got %v", aspect, err)
		}
	}
}

func TestLinesGridShape(t *testing.T) {
	img := uniformGrayRGBA(20, 20, 128)
	lines, err := newTestRenderer().Lines(img, ASCIIOptions{
		DotSize:    5,
		Charset:    DefaultCharset,
		CharAspect: asciiAspect(1),
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if n := len([]rune(line)); n != 4 {
			t.Errorf("Line %d: expected 4 characters, got %d", i, n)
		}
	}
}

func TestSingleCharacterCharset(t *testing.T) {
	// With steps == 0 every tile maps to the lone character, whatever
	// its brightness.
	for _, v := range []uint8{0, 100, 255} {
		img := uniformGrayRGBA(16, 8, v)
		lines, err := newTestRenderer().Lines(img, ASCIIOptions{
			DotSize:    8,
			Charset:    "@",
			CharAspect: asciiAspect(1),
		})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		for _, line := range lines {
			if strings.Trim(line, "@") != "" {
				t.Errorf("Brightness %d: expected only '@', got %q", v, line)
			}
		}
	}
}

func TestHalfWhiteHalfBlack(t *testing.T) {
	img := imageutil.NewRGBAImage(16, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 16; x++ {
			v := uint8(255)
			if x >= 8 {
				v = 0
			}
			i := y*img.Stride + x*4
			img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = v, v, v, 255
		}
	}

	lines, err := newTestRenderer().Lines(img, ASCIIOptions{
		DotSize:    8,
		Charset:    " #",
		CharAspect: asciiAspect(1),
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(lines) != 1 || lines[0] != " #" {
		t.Errorf("Expected [\" #\"], got %q", lines)
	}
}

func TestIndexMappingMonotonic(t *testing.T) {
	// A darker tile must never map to an earlier ramp entry than a
	// brighter one.
	const charset = " .:#"
	r := newTestRenderer()

	prevIndex := len(charset)
	for _, v := range []uint8{0, 60, 120, 180, 255} {
		img := uniformGrayRGBA(8, 8, v)
		lines, err := r.Lines(img, ASCIIOptions{
			DotSize:    8,
			Charset:    charset,
			CharAspect: asciiAspect(1),
		})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		index := strings.IndexRune(charset, []rune(lines[0])[0])
		if index < 0 {
			t.Fatalf("Brightness %d produced a character outside the ramp: %q", v, lines[0])
		}
		if index > prevIndex {
			t.Errorf("Brightness %d maps to index %d, brighter than previous %d", v, index, prevIndex)
		}
		prevIndex = index
	}
}

func TestIndexMappingExtremes(t *testing.T) {
	r := newTestRenderer()

	white := uniformGrayRGBA(8, 8, 255)
	lines, err := r.Lines(white, ASCIIOptions{DotSize: 8, Charset: " #", CharAspect: asciiAspect(1)})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if lines[0] != " " {
		t.Errorf("White tile should map to the first ramp entry, got %q", lines[0])
	}

	black := uniformGrayRGBA(8, 8, 0)
	lines, err = r.Lines(black, ASCIIOptions{DotSize: 8, Charset: " #", CharAspect: asciiAspect(1)})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if lines[0] != "#" {
		t.Errorf("Black tile should map to the last ramp entry, got %q", lines[0])
	}
}

func TestTextJoinsLines(t *testing.T) {
	img := uniformGrayRGBA(8, 16, 0)
	text, err := newTestRenderer().Text(img, ASCIIOptions{
		DotSize:    8,
		Charset:    "#",
		CharAspect: asciiAspect(1),
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if text != "#\n#" {
		t.Errorf("Expected %q, got %q", "#\n#", text)
	}
}

func TestRenderMatchesInputSize(t *testing.T) {
	img := uniformGrayRGBA(33, 21, 90)
	out := newTestRenderer().Render(img, 8)
	if out.Width() != 33 || out.Height() != 21 {
		t.Errorf("Expected 33x21, got %dx%d", out.Width(), out.Height())
	}
}

func TestRenderWhiteStaysWhite(t *testing.T) {
	// The default ramp starts with space, so an all-white image
	// rasterizes to blank glyph cells.
	img := uniformGrayRGBA(32, 32, 255)
	out := newTestRenderer().Render(img, 8)
	for i := 0; i < len(out.Pix); i += 4 {
		if out.Pix[i] != 255 {
			t.Fatalf("Pixel %d should be white, got %d", i/4, out.Pix[i])
		}
	}
}

func TestRenderDarkensForBlackInput(t *testing.T) {
	img := uniformGrayRGBA(32, 32, 0)
	out := newTestRenderer().Render(img, 8)

	dark := 0
	for i := 0; i < len(out.Pix); i += 4 {
		if out.Pix[i] < 128 {
			dark++
		}
	}
	if dark == 0 {
		t.Error("Black input should produce dark glyph pixels")
	}
}

func uniformGrayRGBA(width, height int, v uint8) *imageutil.RGBAImage {
	img := imageutil.NewRGBAImage(width, height)
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = v, v, v, 255
	}
	return img
}
