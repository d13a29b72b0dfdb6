package main

import (
	"fmt"
	"hash/fnv"
	"image"
	"image/color"

	"github.com/talgya/crafter/internal/data"
)

// placeholderTextures builds a deterministic, hash-colored 1x1 texture
// for every material, item, and entity sprite name the renderer can
// request. Real asset packs decode PNGs from disk; this CLI has none
// bundled, so it falls back to flat-color stand-ins derived from the
// name alone, which keeps frames reproducible across runs.
func placeholderTextures(consts *data.Constants) map[string]image.Image {
	names := []string{
		"player-left", "player-right", "player-up", "player-down", "player-sleep",
		"cow", "zombie", "skeleton", "fence",
		"arrow-left", "arrow-right", "arrow-up", "arrow-down",
	}
	names = append(names, consts.Materials...)
	for item := range consts.Items {
		names = append(names, item)
	}
	for digit := 0; digit <= 9; digit++ {
		names = append(names, fmt.Sprintf("digit-%d", digit))
	}

	textures := make(map[string]image.Image, len(names))
	for _, name := range names {
		textures[name] = solidColor(nameColor(name))
	}
	return textures
}

func nameColor(name string) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte(name))
	v := h.Sum32()
	return color.RGBA{R: uint8(v), G: uint8(v >> 8), B: uint8(v >> 16), A: 255}
}

func solidColor(c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, c)
	return img
}
