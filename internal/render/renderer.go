// Package render implements the ray-casting renderer. One call to Render paints a
// complete frame: background, minimap, textured walls and depth-tested sprites.
package render

import (
	"context"
	"math"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/raycaster/internal/framebuffer"
	"github.com/samdwyer/raycaster/internal/scene"
	"github.com/samdwyer/raycaster/internal/telemetry"
)

const (
	// StepSize is the ray marching increment in map units.
	StepSize = 0.01
	// MaxDistance is the farthest a ray is marched.
	MaxDistance = 20.0
	// MaxSteps is the number of samples taken along one ray.
	MaxSteps = 2000

	// MaxSpriteSize caps the projected sprite square to avoid near-field overflow.
	MaxSpriteSize = 1000

	markerSize = 6
)

// Stats summarizes what one Render call painted.
type Stats struct {
	Columns      int // 3D view columns cast
	ColumnsHit   int // Columns where a wall was found
	SpritesDrawn int // Sprites with at least one visible pixel
	SpritePixels int // Sprite pixels painted after depth and alpha tests
}

// Renderer draws a scene into a framebuffer.
type Renderer struct {
	scene  *scene.Scene
	tracer trace.Tracer

	depth []float64 // Perpendicular wall distance per 3D view column

	rectW int // Minimap cell width
	rectH int // Minimap cell height
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTracer overrides the tracer used for render spans.
func WithTracer(t trace.Tracer) Option {
	return func(r *Renderer) {
		r.tracer = t
	}
}

// New creates a renderer for a validated scene.
func New(s *scene.Scene, opts ...Option) *Renderer {
	r := &Renderer{
		scene:  s,
		tracer: telemetry.Tracer("render"),
		depth:  make([]float64, s.Width/2),
		rectW:  s.Width / (2 * s.Map.Width()),
		rectH:  s.Height / s.Map.Height(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Depth returns the per-column wall distances recorded by the last Render.
// Columns where no wall was hit hold +Inf.
func (r *Renderer) Depth() []float64 {
	return r.depth
}

// Render paints the full frame into fb, which must match the scene's window size.
func (r *Renderer) Render(ctx context.Context, fb *framebuffer.Framebuffer) Stats {
	if fb.Width() != r.scene.Width || fb.Height() != r.scene.Height {
		panic("render: framebuffer size does not match scene")
	}

	ctx, span := r.tracer.Start(ctx, "render.frame")
	defer span.End()

	var stats Stats

	fb.Clear(r.scene.Background)

	_, mapSpan := r.tracer.Start(ctx, "render.minimap")
	cells := r.drawMinimap(fb)
	mapSpan.SetAttributes(attribute.Int("minimap.cells", cells))
	mapSpan.End()

	_, wallSpan := r.tracer.Start(ctx, "render.walls")
	stats.Columns, stats.ColumnsHit = r.drawWalls(fb)
	wallSpan.SetAttributes(
		attribute.Int("walls.columns", stats.Columns),
		attribute.Int("walls.hit", stats.ColumnsHit),
	)
	wallSpan.End()

	_, spriteSpan := r.tracer.Start(ctx, "render.sprites")
	stats.SpritesDrawn, stats.SpritePixels = r.drawSprites(fb)
	spriteSpan.SetAttributes(
		attribute.Int("sprites.total", len(r.scene.Sprites)),
		attribute.Int("sprites.drawn", stats.SpritesDrawn),
		attribute.Int("sprites.pixels", stats.SpritePixels),
	)
	spriteSpan.End()

	span.SetAttributes(
		attribute.Int("frame.width", fb.Width()),
		attribute.Int("frame.height", fb.Height()),
	)
	return stats
}

// drawMinimap fills one rectangle per wall cell in the left half, colored with the
// first pixel of the cell's texture. Returns the number of cells drawn.
func (r *Renderer) drawMinimap(fb *framebuffer.Framebuffer) int {
	m := r.scene.Map
	cells := 0
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.IsEmpty(x, y) {
				continue
			}
			color := r.scene.Walls.Sample(0, 0, m.Get(x, y))
			fb.DrawRectangle(x*r.rectW, y*r.rectH, r.rectW, r.rectH, color)
			cells++
		}
	}
	return cells
}

// minimapPoint converts map coordinates to minimap pixel coordinates.
func (r *Renderer) minimapPoint(x, y float64) (int, int) {
	return int(x * float64(r.rectW)), int(y * float64(r.rectH))
}

// SpriteSize returns the side of the projected sprite square for a sprite at dist.
func SpriteSize(screenHeight int, dist float64) int {
	size := float64(screenHeight) / dist
	if math.IsNaN(size) || size >= MaxSpriteSize {
		return MaxSpriteSize
	}
	return int(size)
}
