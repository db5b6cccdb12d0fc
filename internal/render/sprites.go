package render

import (
	"math"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/samdwyer/raycaster/internal/framebuffer"
	"github.com/samdwyer/raycaster/internal/pixel"
	"github.com/samdwyer/raycaster/internal/world"
)

// alphaThreshold is the minimum alpha for a sprite texel to be painted.
const alphaThreshold = 128

// Projection is where a sprite lands in the 3D view.
type Projection struct {
	Distance float64 // Euclidean distance from the player
	Size     int     // Side of the projected square in pixels
	HOffset  int     // Left edge, relative to the start of the 3D view
	VOffset  int     // Top edge
}

// Project computes the screen placement of s for a width x height framebuffer.
// textureSize is the side of one sprite texture.
func Project(p world.Player, s world.Sprite, width, height, textureSize int) Projection {
	half := width / 2
	dist := s.DistanceTo(p)
	bearing := s.BearingFrom(p)
	size := SpriteSize(height, dist)

	return Projection{
		Distance: dist,
		Size:     size,
		HOffset:  int((bearing-p.Angle)/p.FOV*float64(half) + float64(half)/2 - float64(textureSize)/2),
		VOffset:  height/2 - size/2,
	}
}

// sortedSprites returns the scene's sprites ordered farthest first.
// Sprites at equal distance keep their input order.
func (r *Renderer) sortedSprites() []world.Sprite {
	p := r.scene.Player
	sprites := slices.Clone(r.scene.Sprites)
	slices.SortStableFunc(sprites, func(a, b world.Sprite) int {
		da, db := a.DistanceTo(p), b.DistanceTo(p)
		switch {
		case da > db:
			return -1
		case da < db:
			return 1
		default:
			return 0
		}
	})
	return sprites
}

// drawSprites marks every sprite on the minimap and paints its billboard in the 3D
// view, skipping pixels behind a nearer wall. Returns sprites drawn and pixels painted.
func (r *Renderer) drawSprites(fb *framebuffer.Framebuffer) (int, int) {
	drawn, painted := 0, 0
	for _, s := range r.sortedSprites() {
		r.drawMarker(fb, s)

		if n := r.drawSprite(fb, s); n > 0 {
			drawn++
			painted += n
		}
	}
	return drawn, painted
}

// drawMarker paints the sprite's minimap marker, clipped horizontally to the minimap
// so it never bleeds into the 3D view.
func (r *Renderer) drawMarker(fb *framebuffer.Framebuffer, s world.Sprite) {
	px, py := r.minimapPoint(s.X, s.Y)
	minimapW := r.scene.Map.Width() * r.rectW

	x0 := clamp(px-markerSize/2, 0, minimapW)
	x1 := clamp(px-markerSize/2+markerSize, 0, minimapW)
	fb.DrawRectangle(x0, py-markerSize/2, x1-x0, markerSize, r.scene.Marker)
}

func (r *Renderer) drawSprite(fb *framebuffer.Framebuffer, s world.Sprite) int {
	atlas := r.scene.SpriteAtlas
	half := fb.Width() / 2
	height := fb.Height()

	proj := Project(r.scene.Player, s, fb.Width(), height, atlas.Size())
	if proj.Distance == 0 || math.IsNaN(proj.Distance) {
		return 0
	}

	painted := 0
	for i := 0; i < proj.Size; i++ {
		col := proj.HOffset + i
		if col < 0 || col >= half {
			continue
		}
		if r.depth[col] < proj.Distance {
			continue
		}

		u := i * atlas.Size() / proj.Size
		for j := 0; j < proj.Size; j++ {
			row := proj.VOffset + j
			if row < 0 || row >= height {
				continue
			}

			color := atlas.Sample(u, j*atlas.Size()/proj.Size, s.Texture)
			if pixel.Alpha(color) < alphaThreshold {
				continue
			}
			fb.SetPixel(half+col, row, color)
			painted++
		}
	}
	return painted
}

func clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
