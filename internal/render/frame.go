package render

import "image/color"

// Frame is the HxWx3 uint8 observation buffer, stored in (y, x, c) axis
// order — the orientation Env.Step/Reset return. Pixels are addressed by
// (x, y) and laid out row by row, so the compositor's canvas is already
// in that order and is returned without a transpose.
type Frame struct {
	Width, Height int
	Pix           []byte // len == Width*Height*3, row-major over y then x
}

// NewFrame allocates a zeroed frame of the given pixel dimensions.
func NewFrame(w, h int) *Frame {
	return &Frame{Width: w, Height: h, Pix: make([]byte, w*h*3)}
}

func (f *Frame) offset(x, y int) int {
	return (y*f.Width + x) * 3
}

// Set writes an opaque pixel at column x, row y.
func (f *Frame) Set(x, y int, c color.RGBA) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return
	}
	o := f.offset(x, y)
	f.Pix[o], f.Pix[o+1], f.Pix[o+2] = c.R, c.G, c.B
}

// At reads the pixel at (x, y).
func (f *Frame) At(x, y int) color.RGBA {
	o := f.offset(x, y)
	return color.RGBA{R: f.Pix[o], G: f.Pix[o+1], B: f.Pix[o+2], A: 255}
}

// BlendAlpha composites src over the existing pixel at (x, y) using the
// formula blended = alpha*src + (1-alpha)*current, matching the
// reference compositor's alpha-blit exactly.
func (f *Frame) BlendAlpha(x, y int, src color.RGBA) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return
	}
	if src.A == 0 {
		return
	}
	if src.A == 255 {
		f.Set(x, y, src)
		return
	}
	alpha := float64(src.A) / 255
	cur := f.At(x, y)
	blend := func(s, d uint8) uint8 {
		return uint8(alpha*float64(s) + (1-alpha)*float64(d))
	}
	f.Set(x, y, color.RGBA{
		R: blend(src.R, cur.R),
		G: blend(src.G, cur.G),
		B: blend(src.B, cur.B),
		A: 255,
	})
}

// Transpose returns a new frame with the x and y axes swapped: the pixel
// at (x, y) moves to (y, x), and width and height trade places.
func (f *Frame) Transpose() *Frame {
	out := NewFrame(f.Height, f.Width)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			out.Set(y, x, f.At(x, y))
		}
	}
	return out
}
