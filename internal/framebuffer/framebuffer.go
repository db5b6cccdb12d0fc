// Package framebuffer provides a row-major buffer of packed RGBA pixels.
package framebuffer

import "fmt"

// Framebuffer owns a width*height pixel array indexed as x + y*width.
type Framebuffer struct {
	width  int
	height int
	pixels []uint32
}

// New creates a framebuffer of the given size. The buffer is not allocated until Clear is called.
func New(width, height int) *Framebuffer {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("framebuffer: invalid size %dx%d", width, height))
	}
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]uint32, 0, width*height),
	}
}

// Width returns the buffer width in pixels.
func (f *Framebuffer) Width() int {
	return f.width
}

// Height returns the buffer height in pixels.
func (f *Framebuffer) Height() int {
	return f.height
}

// Len returns the number of allocated pixels.
func (f *Framebuffer) Len() int {
	return len(f.pixels)
}

// Pixels exposes the underlying pixel slice. Callers must not retain it across Clear.
func (f *Framebuffer) Pixels() []uint32 {
	return f.pixels
}

// Clear (re)allocates the buffer to width*height and fills it with color.
func (f *Framebuffer) Clear(color uint32) {
	size := f.width * f.height
	if cap(f.pixels) < size {
		f.pixels = make([]uint32, size)
	} else {
		f.pixels = f.pixels[:size]
	}

	// Exponential copy
	f.pixels[0] = color
	for filled := 1; filled < size; filled *= 2 {
		copy(f.pixels[filled:], f.pixels[:filled])
	}
}

// InBounds returns true if (x, y) addresses a cell of the buffer.
func (f *Framebuffer) InBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// SetPixel writes one cell. It panics if the buffer has not been cleared or (x, y) is out of bounds.
func (f *Framebuffer) SetPixel(x, y int, color uint32) {
	if len(f.pixels) != f.width*f.height {
		panic("framebuffer: SetPixel before Clear")
	}
	if !f.InBounds(x, y) {
		panic(fmt.Sprintf("framebuffer: pixel (%d,%d) outside %dx%d", x, y, f.width, f.height))
	}
	f.pixels[x+y*f.width] = color
}

// DrawRectangle fills a w*h block whose top-left corner is (x, y).
// Cells that fall outside the buffer are skipped.
func (f *Framebuffer) DrawRectangle(x, y, w, h int, color uint32) {
	if len(f.pixels) != f.width*f.height {
		panic("framebuffer: DrawRectangle before Clear")
	}

	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, f.width), min(y+h, f.height)
	for cy := y0; cy < y1; cy++ {
		row := f.pixels[cy*f.width : (cy+1)*f.width]
		for cx := x0; cx < x1; cx++ {
			row[cx] = color
		}
	}
}

// Pixel returns the raw color at linear index i.
func (f *Framebuffer) Pixel(i int) uint32 {
	return f.pixels[i]
}

// At returns the color at (x, y).
func (f *Framebuffer) At(x, y int) uint32 {
	if !f.InBounds(x, y) {
		panic(fmt.Sprintf("framebuffer: pixel (%d,%d) outside %dx%d", x, y, f.width, f.height))
	}
	return f.pixels[x+y*f.width]
}
