package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB is an 8-bit color triple
type RGB struct {
	R, G, B uint8
}

// Cell is one framebuffer element: an optional glyph over a background color.
// Particles paint backgrounds; HUD text paints glyphs.
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// Buffer is a width x height cell framebuffer composited each frame and
// flushed to a tcell screen in one pass
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a cleared buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts dimensions, reallocating only when capacity is insufficient
func (b *Buffer) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to black using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Width returns the buffer width in cells
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in cells
func (b *Buffer) Height() int { return b.height }

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y), zero Cell out of bounds
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// AddBg additively blends a color into the background at (x, y).
// Channels saturate at 255; draw order does not matter.
func (b *Buffer) AddBg(x, y int, c RGB) {
	if !b.inBounds(x, y) {
		return
	}
	cell := &b.cells[y*b.width+x]
	cell.Bg.R = addSat(cell.Bg.R, c.R)
	cell.Bg.G = addSat(cell.Bg.G, c.G)
	cell.Bg.B = addSat(cell.Bg.B, c.B)
}

// BlendBg alpha-blends a color over the background at (x, y)
func (b *Buffer) BlendBg(x, y int, c RGB, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	cell := &b.cells[y*b.width+x]
	cell.Bg = Lerp(cell.Bg, c, alpha)
}

// SetText places a glyph with a foreground color, keeping the background
func (b *Buffer) SetText(x, y int, r rune, fg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	cell := &b.cells[y*b.width+x]
	cell.Rune = r
	cell.Fg = fg
}

// Flush pushes every cell to the screen and shows the frame
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			cell := b.cells[y*b.width+x]
			st := tcell.StyleDefault.
				Background(tcell.NewRGBColor(int32(cell.Bg.R), int32(cell.Bg.G), int32(cell.Bg.B))).
				Foreground(tcell.NewRGBColor(int32(cell.Fg.R), int32(cell.Fg.G), int32(cell.Fg.B)))
			r := cell.Rune
			if r == 0 {
				r = ' '
			}
			screen.SetContent(x, y, r, nil, st)
		}
	}
	screen.Show()
}

// Lerp interpolates between two colors, t in [0, 1]
func Lerp(a, b RGB, t float64) RGB {
	return RGB{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
	}
}

// Scale multiplies each channel by t in [0, 1]
func Scale(c RGB, t float64) RGB {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return RGB{
		R: uint8(float64(c.R) * t),
		G: uint8(float64(c.G) * t),
		B: uint8(float64(c.B) * t),
	}
}

func addSat(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}
