package dotscreen

import (
	"image"
	"image/draw"
	"math"
	"strings"

	"github.com/hweber/dotscreen/imageutil"
)

// DefaultCharset is the light-to-dark ramp used when no charset is
// supplied.
const DefaultCharset = " .:-=+*#%@"

// atlasCacheSize bounds how many distinct ramps keep a rendered atlas
// in memory.
const atlasCacheSize = 64

// ASCIIOptions control ASCII halftone sampling.
type ASCIIOptions struct {
	// DotSize is the horizontal sampling tile width in pixels. Values
	// below 2 are clamped up to 2.
	DotSize int

	// Charset is the character ramp ordered from lightest to darkest.
	// It is deduplicated preserving first-seen order and must contain
	// at least one character.
	Charset string

	// CharAspect is the height/width ratio converting the tile width
	// into the vertical sampling step. Nil derives the aspect from the
	// glyph atlas; an explicit value must be positive.
	CharAspect *float64
}

// ASCIIRenderer converts rasters into character-ramp halftones. It owns
// the glyph atlas cache for the font it was constructed with; one
// renderer can be shared by a single-threaded preview host and its
// transforms stay pure.
type ASCIIRenderer struct {
	font  *FontSource
	cache *atlasCache
}

// NewASCIIRenderer returns a renderer drawing glyphs from font.
func NewASCIIRenderer(font *FontSource) *ASCIIRenderer {
	return &ASCIIRenderer{
		font:  font,
		cache: newAtlasCache(atlasCacheSize),
	}
}

// resolveRamp deduplicates charset preserving first-seen order.
func resolveRamp(charset string) ([]rune, error) {
	seen := make(map[rune]bool)
	var ramp []rune
	for _, r := range charset {
		if seen[r] {
			continue
		}
		seen[r] = true
		ramp = append(ramp, r)
	}
	if len(ramp) == 0 {
		return nil, ErrInvalidCharset
	}
	return ramp, nil
}

// sampling is the shared result both the text and raster outputs are
// built from.
type sampling struct {
	lines        []string
	sampleHeight int
	atlas        *glyphAtlas
}

// sample desaturates img and walks it in tiles of dotSize columns by
// sampleHeight rows, mapping each tile's mean brightness to a ramp
// index. Unlike the circular renderer, brightness here is measured over
// the actually clipped tile extent.
func (r *ASCIIRenderer) sample(img *imageutil.RGBAImage, dotSize int, ramp []rune, charAspect *float64) sampling {
	dotSize = clampDotSize(dotSize)
	atlas := r.cache.atlas(r.font, ramp)

	var aspect float64
	switch {
	case charAspect != nil:
		aspect = *charAspect
	case atlas.cellWidth == 0:
		aspect = r.font.DefaultAspect()
	default:
		aspect = float64(atlas.cellHeight) / float64(atlas.cellWidth)
	}
	sampleHeight := int(math.Round(float64(dotSize) * aspect))
	if sampleHeight < 1 {
		sampleHeight = 1
	}

	gray := imageutil.ToGrayscale(img)
	steps := len(ramp) - 1

	var lines []string
	for top := 0; top < gray.Height(); top += sampleHeight {
		bottom := top + sampleHeight
		if bottom > gray.Height() {
			bottom = gray.Height()
		}
		var row strings.Builder
		for left := 0; left < gray.Width(); left += dotSize {
			right := left + dotSize
			if right > gray.Width() {
				right = gray.Width()
			}

			index := 0
			if steps > 0 {
				brightness := tileBrightness(gray, left, top, right, bottom)
				scale := 1 - brightness/255
				// Round half up; darker tiles map to later ramp
				// entries.
				index = int(scale*float64(steps) + 0.5)
				if index < 0 {
					index = 0
				} else if index > steps {
					index = steps
				}
			}
			row.WriteRune(ramp[index])
		}
		lines = append(lines, row.String())
	}

	return sampling{lines: lines, sampleHeight: sampleHeight, atlas: atlas}
}

// Lines returns one string per sampled row, one ramp character per
// sampled column. Options are validated before any sampling work.
func (r *ASCIIRenderer) Lines(img *imageutil.RGBAImage, opts ASCIIOptions) ([]string, error) {
	ramp, err := resolveRamp(opts.Charset)
	if err != nil {
		return nil, err
	}
	if opts.CharAspect != nil && *opts.CharAspect <= 0 {
		return nil, ErrInvalidAspect
	}
	return r.sample(img, opts.DotSize, ramp, opts.CharAspect).lines, nil
}

// Text returns the ASCII halftone as a single newline-joined string.
func (r *ASCIIRenderer) Text(img *imageutil.RGBAImage, opts ASCIIOptions) (string, error) {
	lines, err := r.Lines(img, opts)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// Render is the catalogue transform: it samples with the default
// charset and atlas-derived aspect, rasterizes the glyph grid, and
// scales the result back to the input's dimensions.
func (r *ASCIIRenderer) Render(img *imageutil.RGBAImage, dotSize int) *imageutil.RGBAImage {
	ramp, _ := resolveRamp(DefaultCharset)
	s := r.sample(img, dotSize, ramp, nil)

	out := linesToImage(s.lines, s.atlas, clampDotSize(dotSize), s.sampleHeight)
	if out.Width() != img.Width() || out.Height() != img.Height() {
		out = imageutil.Resize(out, img.Width(), img.Height(), imageutil.InterpolationNearest)
	}
	return out
}

// linesToImage pastes each line's glyph cells onto a white canvas at
// the atlas's native cell size, then nearest-neighbor-resizes the whole
// canvas when the target cell size differs. Characters without an atlas
// entry leave their cell blank.
func linesToImage(lines []string, atlas *glyphAtlas, targetCellWidth, targetCellHeight int) *imageutil.RGBAImage {
	maxColumns := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > maxColumns {
			maxColumns = n
		}
	}

	cellW, cellH := atlas.cellWidth, atlas.cellHeight
	if len(lines) == 0 || maxColumns == 0 || cellW == 0 || cellH == 0 {
		blank := imageutil.NewRGBAImage(1, 1)
		blank.Fill(whiteRGBA)
		return blank
	}

	canvas := imageutil.NewWhiteGrayImage(maxColumns*cellW, len(lines)*cellH)
	for row, line := range lines {
		y := row * cellH
		x := 0
		for _, r := range line {
			if glyph := atlas.glyph(r); glyph != nil {
				rect := image.Rect(x, y, x+cellW, y+cellH)
				draw.Draw(canvas.Gray, rect, glyph.Gray, image.Point{}, draw.Src)
			}
			x += cellW
		}
	}

	if cellW != targetCellWidth || cellH != targetCellHeight {
		canvas = imageutil.ResizeGray(canvas,
			maxColumns*targetCellWidth, len(lines)*targetCellHeight,
			imageutil.InterpolationNearest)
	}

	return imageutil.PromoteToRGBA(canvas)
}
