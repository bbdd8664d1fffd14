package dotscreen

import (
	"sync"

	"github.com/hweber/dotscreen/imageutil"
)

// glyphAtlas holds one rendered cell per ramp character, all sharing
// the same cell size. The space character is always present as the
// blank fallback.
type glyphAtlas struct {
	cellWidth  int
	cellHeight int
	glyphs     map[rune]*imageutil.GrayImage
}

// buildAtlas renders every character in ramp into a cell sized to the
// ramp's largest glyph bounding box. If the ramp yields a zero-size
// box, the font's reference metric is used instead.
func buildAtlas(src *FontSource, ramp []rune) *glyphAtlas {
	maxWidth, maxHeight := 0, 0
	for _, r := range ramp {
		w, h := src.glyphSize(r)
		if w > maxWidth {
			maxWidth = w
		}
		if h > maxHeight {
			maxHeight = h
		}
	}
	if maxWidth == 0 {
		maxWidth = src.refWidth
	}
	if maxHeight == 0 {
		maxHeight = src.refHeight
	}

	atlas := &glyphAtlas{
		cellWidth:  maxWidth,
		cellHeight: maxHeight,
		glyphs:     make(map[rune]*imageutil.GrayImage, len(ramp)+1),
	}
	for _, r := range ramp {
		atlas.glyphs[r] = src.renderGlyph(r, maxWidth, maxHeight)
	}
	if _, ok := atlas.glyphs[' ']; !ok {
		atlas.glyphs[' '] = imageutil.NewWhiteGrayImage(maxWidth, maxHeight)
	}
	return atlas
}

// glyph returns the cell for r, or nil if the atlas has no entry.
func (a *glyphAtlas) glyph(r rune) *imageutil.GrayImage {
	return a.glyphs[r]
}

// atlasCache memoizes glyph atlases by resolved ramp. Atlas builds are
// pure, so eviction only ever costs recomputation. The mutex guards
// both lookup and the lazy-population path so a multi-threaded host
// cannot race concurrent builds.
type atlasCache struct {
	mu       sync.Mutex
	capacity int
	atlases  map[string]*glyphAtlas
	order    []string // least recently used first
}

func newAtlasCache(capacity int) *atlasCache {
	if capacity < 1 {
		capacity = 1
	}
	return &atlasCache{
		capacity: capacity,
		atlases:  make(map[string]*glyphAtlas, capacity),
	}
}

// atlas returns the cached atlas for ramp, building and inserting it on
// a miss. At capacity, the least recently used entry is evicted.
func (c *atlasCache) atlas(src *FontSource, ramp []rune) *glyphAtlas {
	key := string(ramp)

	c.mu.Lock()
	defer c.mu.Unlock()

	if atlas, ok := c.atlases[key]; ok {
		c.touch(key)
		return atlas
	}

	atlas := buildAtlas(src, ramp)
	if len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.atlases, oldest)
	}
	c.atlases[key] = atlas
	c.order = append(c.order, key)
	return atlas
}

// touch moves key to the most recently used position.
func (c *atlasCache) touch(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

// len reports the number of cached atlases.
func (c *atlasCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.atlases)
}
