package render

import (
	"math"

	"github.com/samdwyer/raycaster/internal/framebuffer"
)

// Hit describes where a ray first met a wall.
type Hit struct {
	X, Y     float64 // Sample point inside the wall cell
	Distance float64 // Marched distance along the ray
	Texture  int     // Wall texture id
}

// CastRay marches from the player along angle in fixed steps and returns the first
// sample that lands in a wall cell. Each in-map sample is passed to visit.
// The march stops without a hit once the ray leaves the map or MaxDistance is reached.
func (r *Renderer) CastRay(angle float64, visit func(x, y float64)) (Hit, bool) {
	m := r.scene.Map
	p := r.scene.Player
	cos, sin := math.Cos(angle), math.Sin(angle)

	for step := 1; step <= MaxSteps; step++ {
		t := float64(step) * StepSize
		x := p.X + t*cos
		y := p.Y + t*sin

		cellX, cellY := int(math.Floor(x)), int(math.Floor(y))
		if !m.Contains(cellX, cellY) {
			return Hit{}, false
		}
		if visit != nil {
			visit(x, y)
		}
		if m.IsEmpty(cellX, cellY) {
			continue
		}

		return Hit{X: x, Y: y, Distance: t, Texture: m.Get(cellX, cellY)}, true
	}
	return Hit{}, false
}

// ColumnAngle returns the ray angle for 3D view column c of columns.
func ColumnAngle(playerAngle, fov float64, c, columns int) float64 {
	return playerAngle - fov/2 + fov*float64(c)/float64(columns)
}

// drawWalls casts one ray per column of the right half, traces it on the minimap and
// composites the textured wall slice. Returns columns cast and columns that hit.
func (r *Renderer) drawWalls(fb *framebuffer.Framebuffer) (int, int) {
	p := r.scene.Player
	walls := r.scene.Walls
	half := fb.Width() / 2
	height := fb.Height()

	trace := func(x, y float64) {
		px, py := r.minimapPoint(x, y)
		fb.SetPixel(px, py, r.scene.Trace)
	}

	hits := 0
	for c := 0; c < half; c++ {
		angle := ColumnAngle(p.Angle, p.FOV, c, half)
		r.depth[c] = math.Inf(1)

		hit, ok := r.CastRay(angle, trace)
		if !ok {
			continue
		}
		hits++

		// Fisheye correction
		dist := hit.Distance * math.Cos(angle-p.Angle)
		r.depth[c] = dist

		columnHeight := int(float64(height) / dist)
		u := WallTextureX(hit.X, hit.Y, walls.Size())
		column := walls.ScaledColumn(hit.Texture, u, columnHeight)

		top := height/2 - columnHeight/2
		for j, color := range column {
			y := top + j
			if y < 0 || y >= height {
				continue
			}
			fb.SetPixel(half+c, y, color)
		}
	}
	return half, hits
}

// WallTextureX returns the texture column for a hit at (x, y). The hit lies on a
// grid line along one axis; the signed offset along the other axis, whichever has
// the larger magnitude, selects the column, wrapped into [0, size).
func WallTextureX(x, y float64, size int) int {
	hitX := x - math.Floor(x+0.5)
	hitY := y - math.Floor(y+0.5)

	offset := hitX
	if math.Abs(hitY) > math.Abs(hitX) {
		offset = hitY
	}

	u := int(offset * float64(size))
	if u < 0 {
		u += size
	}
	return u
}
