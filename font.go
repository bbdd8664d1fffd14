package dotscreen

import (
	"fmt"
	"image"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/hweber/dotscreen/imageutil"
)

// DefaultFontSize is the point size used for the bundled monospace
// font when no other size is requested.
const DefaultFontSize = 16

// fontDPI is the resolution glyphs are rasterized at. 72 DPI makes
// point size equal pixel size.
const fontDPI = 72

// FontSource rasterizes glyph cells from a parsed TrueType font at a
// fixed size. It replaces ambient font globals: construct one
// explicitly and hand it to the ASCII renderer.
//
// The face is not safe for concurrent use; the glyph atlas cache
// serializes all rasterization through its own mutex.
type FontSource struct {
	font *truetype.Font
	face font.Face
	size float64

	// Reference cell metric measured from 'M'. Used as the fallback
	// whenever a ramp yields a zero-size bounding box.
	refWidth  int
	refHeight int
}

// NewFontSource parses ttf and prepares a face at the given point
// size.
func NewFontSource(ttf []byte, size float64) (*FontSource, error) {
	parsed, err := freetype.ParseFont(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	face := truetype.NewFace(parsed, &truetype.Options{
		Size:    size,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})

	fs := &FontSource{
		font: parsed,
		face: face,
		size: size,
	}
	fs.refWidth, fs.refHeight = fs.glyphSize('M')
	if fs.refWidth < 1 {
		fs.refWidth = 1
	}
	if fs.refHeight < 1 {
		fs.refHeight = 1
	}
	return fs, nil
}

// DefaultFontSource returns a FontSource for the bundled Go Mono font
// at DefaultFontSize. The bundled font data is known good, so parsing
// cannot fail.
func DefaultFontSource() *FontSource {
	fs, err := NewFontSource(gomono.TTF, DefaultFontSize)
	if err != nil {
		panic("dotscreen: bundled font failed to parse: " + err.Error())
	}
	return fs
}

// DefaultAspect returns the height/width ratio of the font's reference
// glyph cell.
func (fs *FontSource) DefaultAspect() float64 {
	return float64(fs.refHeight) / float64(fs.refWidth)
}

// glyphBounds returns the bounding box of r relative to a baseline
// origin, in whole pixels.
func (fs *FontSource) glyphBounds(r rune) (minX, minY, width, height int) {
	bounds, _ := font.BoundString(fs.face, string(r))
	minX = bounds.Min.X.Floor()
	minY = bounds.Min.Y.Floor()
	width = bounds.Max.X.Ceil() - minX
	height = bounds.Max.Y.Ceil() - minY
	return minX, minY, width, height
}

// glyphSize returns the pixel width and height of r's bounding box.
func (fs *FontSource) glyphSize(r rune) (width, height int) {
	_, _, w, h := fs.glyphBounds(r)
	return w, h
}

// renderGlyph draws r black-on-white, centered in a cellWidth x
// cellHeight cell. Glyphs with an empty bounding box (such as space)
// produce a blank cell.
func (fs *FontSource) renderGlyph(r rune, cellWidth, cellHeight int) *imageutil.GrayImage {
	cell := imageutil.NewWhiteGrayImage(cellWidth, cellHeight)

	minX, minY, width, height := fs.glyphBounds(r)
	if width == 0 || height == 0 {
		return cell
	}

	ctx := freetype.NewContext()
	ctx.SetDPI(fontDPI)
	ctx.SetFont(fs.font)
	ctx.SetFontSize(fs.size)
	ctx.SetClip(cell.Bounds())
	ctx.SetDst(cell.Gray)
	ctx.SetSrc(image.Black)
	ctx.SetHinting(font.HintingFull)

	// Position the baseline so the glyph's bounding box lands centered
	// in the cell.
	originX := (cellWidth-width)/2 - minX
	originY := (cellHeight-height)/2 - minY
	if _, err := ctx.DrawString(string(r), freetype.Pt(originX, originY)); err != nil {
		// Rasterization failures leave the cell blank, matching the
		// unknown-glyph fallback.
		return imageutil.NewWhiteGrayImage(cellWidth, cellHeight)
	}

	return cell
}
