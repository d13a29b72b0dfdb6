package render

import (
	"image"
	"image/color"
	"testing"
)

func solidSource(c color.RGBA, size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestTextureCacheResizesAndCaches(t *testing.T) {
	src := solidSource(color.RGBA{R: 200, G: 10, B: 10, A: 255}, 16)
	cache := NewTextureCache(map[string]image.Image{"grass": src})

	tex := cache.Get("grass", 8)
	if tex.Bounds().Dx() != 8 || tex.Bounds().Dy() != 8 {
		t.Fatalf("resized texture bounds = %v, want 8x8", tex.Bounds())
	}

	again := cache.Get("grass", 8)
	if tex != again {
		t.Fatal("Get should return the cached instance on a repeat request")
	}
}

func TestTextureCachePanicsOnMissingTexture(t *testing.T) {
	cache := NewTextureCache(map[string]image.Image{})
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a missing texture")
		}
	}()
	cache.Get("nonexistent", 8)
}

func TestNearestNeighborResizePreservesFlatColor(t *testing.T) {
	c := color.RGBA{R: 50, G: 60, B: 70, A: 255}
	src := solidSource(c, 4)
	out := nearestNeighborResize(src, 10, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			got := out.RGBAAt(x, y)
			if got != c {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, c)
			}
		}
	}
}
