// Package pixel provides the packed RGBA color format shared by the framebuffer,
// the texture atlas and the image writer.
package pixel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Common colors.
var (
	White = Pack(255, 255, 255, 255)
	Black = Pack(0, 0, 0, 255)
	Gray  = Pack(160, 160, 160, 255)
)

// Pack combines 8-bit channels into a single value laid out as a<<24 | b<<16 | g<<8 | r.
func Pack(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// Unpack splits a packed color back into its channels.
func Unpack(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// Alpha returns the alpha channel of a packed color.
func Alpha(c uint32) uint8 {
	return uint8(c >> 24)
}

// FromTCell converts a tcell color to an opaque packed color.
// Colors without an RGB value (tcell.ColorDefault) map to black.
func FromTCell(c tcell.Color) uint32 {
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return Black
	}
	return Pack(uint8(r), uint8(g), uint8(b), 255)
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	// Remove leading # if present
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	var rgb [3]int32
	for i, name := range []string{"red", "green", "blue"} {
		v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("invalid %s component in %s: %w", name, hex, err)
		}
		rgb[i] = int32(v)
	}

	return tcell.NewRGBColor(rgb[0], rgb[1], rgb[2]), nil
}

// ParseColor parses a hex string or a named color ("white", "silver") into a packed color.
func ParseColor(s string) (uint32, error) {
	if strings.HasPrefix(s, "#") {
		c, err := ParseHexColor(s)
		if err != nil {
			return 0, err
		}
		return FromTCell(c), nil
	}

	c := tcell.GetColor(strings.ToLower(s))
	if c == tcell.ColorDefault {
		return 0, fmt.Errorf("unknown color name: %q", s)
	}
	return FromTCell(c), nil
}
