// Package render composites the player's local view, overlays live
// entities, and draws the inventory HUD into the observation frame
// returned by Env.Step/Reset. It consumes only decoded textures
// (name -> image.Image) — PNG decoding itself is an external concern.
package render

import (
	"fmt"
	"image"
	"image/color"
)

// TextureCache resamples source textures to the tile size the current
// view/size configuration needs, and caches by (name, size). Never
// evicted within an episode, per the resource model.
type TextureCache struct {
	sources map[string]image.Image
	cache   map[cacheKey]*image.RGBA
}

type cacheKey struct {
	name string
	size int
}

// NewTextureCache wraps a decoded texture set. Missing textures are a
// runtime asset error (fatal), raised lazily at first lookup.
func NewTextureCache(sources map[string]image.Image) *TextureCache {
	return &TextureCache{sources: sources, cache: make(map[cacheKey]*image.RGBA)}
}

// Get returns the texture named name resampled to size x size pixels,
// resampling and caching on first request.
func (t *TextureCache) Get(name string, size int) *image.RGBA {
	key := cacheKey{name, size}
	if img, ok := t.cache[key]; ok {
		return img
	}
	src, ok := t.sources[name]
	if !ok {
		panic(fmt.Sprintf("render: missing texture %q", name))
	}
	resized := nearestNeighborResize(src, size, size)
	t.cache[key] = resized
	return resized
}

// nearestNeighborResize produces a size-square RGBA copy of src with no
// antialiasing or subpixel positioning, so repeated renders of the same
// grid state are bitwise identical.
func nearestNeighborResize(src image.Image, w, h int) *image.RGBA {
	bounds := src.Bounds()
	sw, sh := bounds.Dx(), bounds.Dy()
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		sy := bounds.Min.Y + y*sh/h
		for x := 0; x < w; x++ {
			sx := bounds.Min.X + x*sw/w
			out.Set(x, y, src.At(sx, sy))
		}
	}
	return out
}

// NeutralGray is the fixed fill for out-of-bounds terrain cells.
var NeutralGray = color.RGBA{R: 127, G: 127, B: 127, A: 255}
