// Package texture provides the texture atlas: N equal square textures packed
// horizontally into one image, sampled per pixel or per resampled column.
package texture

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions is returned when an image is not N square textures packed horizontally.
var ErrInvalidDimensions = errors.New("texture must be N square textures packed horizontally")

// Atlas holds packed RGBA pixels for Count textures of Size x Size each.
type Atlas struct {
	width  int
	size   int
	count  int
	pixels []uint32
}

// NewAtlas wraps a row-major packed pixel array of width x height.
// The width must be a non-zero multiple of the height.
func NewAtlas(pixels []uint32, width, height int) (*Atlas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width%height != 0 {
		return nil, fmt.Errorf("%w: width %d is not a multiple of height %d", ErrInvalidDimensions, width, height)
	}
	if len(pixels) != width*height {
		return nil, fmt.Errorf("%w: %d pixels for a %dx%d image", ErrInvalidDimensions, len(pixels), width, height)
	}

	return &Atlas{
		width:  width,
		size:   height,
		count:  width / height,
		pixels: pixels,
	}, nil
}

// MustNewAtlas wraps pixels, panicking on error.
func MustNewAtlas(pixels []uint32, width, height int) *Atlas {
	a, err := NewAtlas(pixels, width, height)
	if err != nil {
		panic(err)
	}
	return a
}

// Size returns the side length of one texture.
func (a *Atlas) Size() int {
	return a.size
}

// Count returns the number of textures in the atlas.
func (a *Atlas) Count() int {
	return a.count
}

// Sample returns the pixel at (x, y) of texture id.
func (a *Atlas) Sample(x, y, id int) uint32 {
	if x < 0 || x >= a.size || y < 0 || y >= a.size || id < 0 || id >= a.count {
		panic(fmt.Sprintf("texture: sample (%d,%d) of texture %d outside %d textures of %dpx", x, y, id, a.count, a.size))
	}
	return a.pixels[x+id*a.size+y*a.width]
}

// ScaledColumn returns column u of texture id stretched to height pixels with
// nearest-neighbor resampling: output row j reads source row j*Size/height.
func (a *Atlas) ScaledColumn(id, u, height int) []uint32 {
	if u < 0 || u >= a.size || id < 0 || id >= a.count {
		panic(fmt.Sprintf("texture: column %d of texture %d outside %d textures of %dpx", u, id, a.count, a.size))
	}
	if height < 0 {
		panic(fmt.Sprintf("texture: negative column height %d", height))
	}

	column := make([]uint32, height)
	for j := range column {
		column[j] = a.Sample(u, (j*a.size)/height, id)
	}
	return column
}
