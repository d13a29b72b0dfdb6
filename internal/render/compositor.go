package render

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/talgya/crafter/internal/world"
)

// Compositor renders the player's local view, overlays live entities,
// and draws the inventory HUD — the full local_view + item_view
// composition from the data-flow diagram.
type Compositor struct {
	textures *TextureCache
}

// NewCompositor wraps a texture cache.
func NewCompositor(textures *TextureCache) *Compositor {
	return &Compositor{textures: textures}
}

// Render draws the (size[0] x size[1]) observation for the current
// world state, viewed through a (view[0] x view[1])-tile window
// centered on the player.
func (c *Compositor) Render(w *world.World, view, size [2]int) *Frame {
	vx, vy := view[0], view[1]
	unit := size[0] / vx

	player := w.Reg.At(w.PlayerID)
	positive := positiveItems(player.Inventory)
	itemRows := ceilDiv(len(positive), vx)
	terrainRows := vy - itemRows
	if terrainRows < 1 {
		terrainRows = 1
	}

	canvas := NewFrame(size[0], size[1])

	originX := player.Pos.X - vx/2
	originY := player.Pos.Y - terrainRows/2

	for j := 0; j < terrainRows; j++ {
		for i := 0; i < vx; i++ {
			cell := world.Pos{X: originX + i, Y: originY + j}
			drawTerrainTile(c, canvas, cell, i*unit, j*unit, unit, w)
		}
	}

	for _, id := range w.Reg.Snapshot() {
		obj := w.Reg.At(id)
		relX := obj.Pos.X - originX
		relY := obj.Pos.Y - originY
		if relX < 0 || relX >= vx || relY < 0 || relY >= terrainRows {
			continue
		}
		blitTexture(canvas, relX*unit, relY*unit, unit, c.textures.Get(spriteName(obj), unit), true)
	}

	drawHUD(c, canvas, player.Inventory, positive, vx, terrainRows, unit)

	return canvas
}

func drawTerrainTile(c *Compositor, canvas *Frame, cell world.Pos, ox, oy, unit int, w *world.World) {
	if !w.Grid.InBounds(cell) {
		fillRect(canvas, ox, oy, unit, NeutralGray)
		return
	}
	name, _ := w.Grid.Get(cell)
	blitTexture(canvas, ox, oy, unit, c.textures.Get(name, unit), false)
}

func fillRect(canvas *Frame, ox, oy, unit int, col color.RGBA) {
	for y := 0; y < unit; y++ {
		for x := 0; x < unit; x++ {
			canvas.Set(ox+x, oy+y, col)
		}
	}
}

// blitTexture draws tex at (ox,oy). When alphaBlend is set, pixels
// composite via Frame.BlendAlpha (for entity sprites over terrain);
// terrain tiles themselves are drawn opaque.
func blitTexture(canvas *Frame, ox, oy, unit int, tex *image.RGBA, alphaBlend bool) {
	for y := 0; y < unit; y++ {
		for x := 0; x < unit; x++ {
			px := toRGBA(tex.At(tex.Bounds().Min.X+x, tex.Bounds().Min.Y+y))
			if alphaBlend {
				canvas.BlendAlpha(ox+x, oy+y, px)
			} else {
				canvas.Set(ox+x, oy+y, px)
			}
		}
	}
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// spriteName maps a live object to the texture name the asset set
// provides for it — by kind, and for the player, by facing/sleeping
// state.
func spriteName(o *world.Object) string {
	switch o.Kind {
	case world.KindPlayer:
		if o.Sleeping > 0 {
			return "player-sleep"
		}
		return "player-" + facingName(o.Facing)
	case world.KindCow:
		return "cow"
	case world.KindZombie:
		return "zombie"
	case world.KindSkeleton:
		return "skeleton"
	case world.KindArrow:
		return "arrow-" + facingName(o.Facing)
	case world.KindFence:
		return "fence"
	default:
		return "unknown"
	}
}

func facingName(f world.Pos) string {
	switch {
	case f.X < 0:
		return "left"
	case f.X > 0:
		return "right"
	case f.Y < 0:
		return "up"
	default:
		return "down"
	}
}

func positiveItems(inv map[string]int) []string {
	names := make([]string, 0, len(inv))
	for name, amount := range inv {
		if amount > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names) // deterministic HUD layout independent of map order
	return names
}

func ceilDiv(a, b int) int {
	if a == 0 {
		return 0
	}
	return (a + b - 1) / b
}

// drawHUD draws one icon per positive inventory entry, in a vx-wide
// grid of unit-sized cells below the terrain view, with the count
// composited on top as a digit glyph resolved through the same
// TextureCache every sprite and material tile uses.
func drawHUD(c *Compositor, canvas *Frame, inv map[string]int, items []string, vx, terrainRows, unit int) {
	for idx, name := range items {
		row := terrainRows + idx/vx
		col := idx % vx
		ox, oy := col*unit, row*unit
		blitTexture(canvas, ox, oy, unit, c.textures.Get(name, unit), false)
		drawCount(c, canvas, ox, oy, unit, inv[name])
	}
}

func drawCount(c *Compositor, canvas *Frame, ox, oy, unit, count int) {
	if count <= 0 {
		return
	}
	if count > 9 {
		count = 9
	}
	digit := c.textures.Get(fmt.Sprintf("digit-%d", count), unit)
	blitTexture(canvas, ox, oy, unit, digit, true)
}
