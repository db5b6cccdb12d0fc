package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // register PNG decoder
	"io"
	"io/fs"
	"os"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/samdwyer/raycaster/internal/pixel"
)

// ErrAssetLoad is returned when a texture file is missing or cannot be decoded.
var ErrAssetLoad = errors.New("failed to load texture asset")

// FromImage converts a decoded image into an atlas.
func FromImage(img image.Image) (*Atlas, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	pixels := make([]uint32, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			pixels[x+y*width] = pixel.Pack(c.R, c.G, c.B, c.A)
		}
	}

	return NewAtlas(pixels, width, height)
}

// Decode reads a PNG, BMP or WebP image and converts it into an atlas.
func Decode(r io.Reader) (*Atlas, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAssetLoad, err)
	}

	atlas, err := FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("%s image: %w", format, err)
	}
	return atlas, nil
}

// Load decodes the named texture from a filesystem.
func Load(fsys fs.FS, name string) (*Atlas, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrAssetLoad, name, err)
	}
	defer f.Close()

	atlas, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return atlas, nil
}

// LoadFile decodes a texture from a path on disk.
func LoadFile(path string) (*Atlas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAssetLoad, err)
	}
	defer f.Close()

	atlas, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return atlas, nil
}
