// Package scene describes the immutable input of one render: window size, map,
// camera pose, sprites, colors and texture atlases.
package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/samdwyer/raycaster/internal/texture"
	"github.com/samdwyer/raycaster/internal/world"
)

// ErrInvalidScene is returned when scene parameters are inconsistent with each other.
var ErrInvalidScene = errors.New("invalid scene")

// Scene holds everything the renderer reads. It must not be modified once built.
type Scene struct {
	Width  int // Framebuffer width; the left half holds the minimap, the right half the 3D view
	Height int // Framebuffer height

	Map     *world.Map
	Player  world.Player
	Sprites []world.Sprite

	Walls       *texture.Atlas // Indexed by map tile digit
	SpriteAtlas *texture.Atlas // Indexed by Sprite.Texture; may be nil when there are no sprites

	Background uint32 // Packed color behind everything
	Trace      uint32 // Minimap ray trace color
	Marker     uint32 // Minimap sprite marker color
}

// Validate checks that every index the renderer derives from the scene stays in range.
func (s *Scene) Validate() error {
	if s.Width < 2 || s.Height < 1 {
		return fmt.Errorf("%w: window %dx%d too small", ErrInvalidScene, s.Width, s.Height)
	}
	if s.Map == nil {
		return fmt.Errorf("%w: missing map", ErrInvalidScene)
	}
	if s.Walls == nil {
		return fmt.Errorf("%w: missing wall texture", ErrInvalidScene)
	}

	// Each map cell needs at least one minimap pixel
	if s.Width/(2*s.Map.Width()) < 1 || s.Height/s.Map.Height() < 1 {
		return fmt.Errorf("%w: %dx%d map does not fit a %dx%d window", ErrInvalidScene,
			s.Map.Width(), s.Map.Height(), s.Width, s.Height)
	}

	if tex := s.Map.MaxTexture(); tex >= s.Walls.Count() {
		return fmt.Errorf("%w: map uses wall texture %d but atlas has %d", ErrInvalidScene, tex, s.Walls.Count())
	}

	p := s.Player
	if !(p.FOV > 0 && p.FOV < math.Pi) {
		return fmt.Errorf("%w: field of view %v rad must be in (0, pi)", ErrInvalidScene, p.FOV)
	}
	if math.IsNaN(p.Angle) || math.IsInf(p.Angle, 0) {
		return fmt.Errorf("%w: player angle %v", ErrInvalidScene, p.Angle)
	}
	if !inside(s.Map, p.X, p.Y) {
		return fmt.Errorf("%w: player (%v,%v) outside map", ErrInvalidScene, p.X, p.Y)
	}

	for i, sp := range s.Sprites {
		if s.SpriteAtlas == nil {
			return fmt.Errorf("%w: sprites given without a sprite texture", ErrInvalidScene)
		}
		if sp.Texture < 0 || sp.Texture >= s.SpriteAtlas.Count() {
			return fmt.Errorf("%w: sprite %d uses texture %d but atlas has %d", ErrInvalidScene, i, sp.Texture, s.SpriteAtlas.Count())
		}
		if !inside(s.Map, sp.X, sp.Y) {
			return fmt.Errorf("%w: sprite %d at (%v,%v) outside map", ErrInvalidScene, i, sp.X, sp.Y)
		}
	}

	return nil
}

func inside(m *world.Map, x, y float64) bool {
	return x >= 0 && y >= 0 && x < float64(m.Width()) && y < float64(m.Height())
}
