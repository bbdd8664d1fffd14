package dotscreen

import (
	"fmt"

	"github.com/hweber/dotscreen/imageutil"
)

// Method is one catalogue entry: a named, pure transform from a raster
// and a dot size to a new raster.
type Method struct {
	Name        string
	Apply       func(*imageutil.RGBAImage, int) *imageutil.RGBAImage
	Description string
}

// Registry is the fixed, insertion-ordered catalogue of halftone
// methods. It is populated once at construction and read-only
// afterwards, so it may be shared freely across goroutines.
type Registry struct {
	methods map[string]Method
	order   []string
}

// NewRegistry builds the catalogue. The ASCII renderer is passed in so
// its glyph atlas cache has a single owner.
func NewRegistry(ascii *ASCIIRenderer) *Registry {
	reg := &Registry{methods: make(map[string]Method)}
	for _, m := range []Method{
		{
			Name: "Original",
			Apply: func(img *imageutil.RGBAImage, _ int) *imageutil.RGBAImage {
				return img.Clone()
			},
			Description: "No processing; shows the original image.",
		},
		{
			Name: "Grayscale",
			Apply: func(img *imageutil.RGBAImage, _ int) *imageutil.RGBAImage {
				return Grayscale(img)
			},
			Description: "Convert the image to grayscale.",
		},
		{
			Name: "Floyd-Steinberg",
			Apply: func(img *imageutil.RGBAImage, _ int) *imageutil.RGBAImage {
				return FloydSteinberg(img)
			},
			Description: "High quality error-diffusion dithering to monochrome.",
		},
		{
			Name: "Ordered Dither",
			Apply: func(img *imageutil.RGBAImage, _ int) *imageutil.RGBAImage {
				return OrderedDither(img)
			},
			Description: "Bayer ordered dithering for a structured halftone look.",
		},
		{
			Name:        "Circular Halftone",
			Apply:       CircularHalftone,
			Description: "Generates circular dots sized by brightness for a traditional halftone pattern.",
		},
		{
			Name:        "ASCII Halftone",
			Apply:       ascii.Render,
			Description: "Draws a square halftone using ASCII characters for a terminal-art style look.",
		},
	} {
		reg.methods[m.Name] = m
		reg.order = append(reg.order, m.Name)
	}
	return reg
}

// NewDefaultRegistry builds the catalogue with an ASCII renderer using
// the bundled font.
func NewDefaultRegistry() *Registry {
	return NewRegistry(NewASCIIRenderer(DefaultFontSource()))
}

// AvailableMethods returns the method names in catalogue order.
func (reg *Registry) AvailableMethods() []string {
	names := make([]string, len(reg.order))
	copy(names, reg.order)
	return names
}

// Describe returns the human-readable description for name.
func (reg *Registry) Describe(name string) (string, error) {
	m, ok := reg.methods[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
	return m.Description, nil
}

// Process applies the named method to img with the given dot size.
func (reg *Registry) Process(img *imageutil.RGBAImage, name string, dotSize int) (*imageutil.RGBAImage, error) {
	m, ok := reg.methods[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
	return m.Apply(img, dotSize), nil
}
