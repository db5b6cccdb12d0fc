// Package app wires scene loading, rendering and image output into one run.
package app

import (
	"context"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/raycaster/internal/framebuffer"
	"github.com/samdwyer/raycaster/internal/ppm"
	"github.com/samdwyer/raycaster/internal/render"
	"github.com/samdwyer/raycaster/internal/scene"
	"github.com/samdwyer/raycaster/internal/telemetry"
)

// App renders one scene to one image file.
type App struct {
	cfg Config
}

// New creates an app for the given configuration.
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// Run loads the scene, renders a frame and writes it to the configured output.
func (a *App) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("app")
	ctx, span := tracer.Start(ctx, "app.run")
	defer span.End()

	s, err := a.loadScene(ctx)
	if err != nil {
		span.RecordError(err)
		return err
	}
	log.Printf("Scene: %dx%d window, %dx%d map, %d sprites",
		s.Width, s.Height, s.Map.Width(), s.Map.Height(), len(s.Sprites))

	fb := framebuffer.New(s.Width, s.Height)
	stats := render.New(s).Render(ctx, fb)
	log.Printf("Rendered %d/%d columns with walls, %d sprites visible",
		stats.ColumnsHit, stats.Columns, stats.SpritesDrawn)

	if err := ppm.WriteFile(ctx, a.cfg.Output, fb); err != nil {
		span.RecordError(err)
		return err
	}

	span.SetAttributes(
		attribute.String("app.output", a.cfg.Output),
		attribute.Int("render.columns_hit", stats.ColumnsHit),
		attribute.Int("render.sprite_pixels", stats.SpritePixels),
	)
	log.Printf("Wrote %s", a.cfg.Output)
	return nil
}

// loadScene picks the scene and asset sources described by the configuration.
func (a *App) loadScene(ctx context.Context) (*scene.Scene, error) {
	var assets fs.FS
	if a.cfg.AssetDir != "" {
		assets = os.DirFS(a.cfg.AssetDir)
	}

	if a.cfg.SceneFile == "" {
		return scene.LoadDefault(ctx, assets)
	}

	if assets == nil {
		assets = os.DirFS(filepath.Dir(a.cfg.SceneFile))
	}
	return scene.Load(ctx, a.cfg.SceneFile, assets)
}
