package scene

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/raycaster/data"
	"github.com/samdwyer/raycaster/internal/pixel"
	"github.com/samdwyer/raycaster/internal/telemetry"
	"github.com/samdwyer/raycaster/internal/texture"
	"github.com/samdwyer/raycaster/internal/world"
)

// File is the JSON form of a scene.
type File struct {
	Width         int         `json:"width"`         // Window width in pixels
	Height        int         `json:"height"`        // Window height in pixels
	MapWidth      int         `json:"mapWidth"`      // Map columns
	MapHeight     int         `json:"mapHeight"`     // Map rows
	Map           []string    `json:"map"`           // Map rows, concatenated row-major
	Player        PlayerDef   `json:"player"`        // Camera pose
	Background    string      `json:"background"`    // Hex or named color
	Trace         string      `json:"trace"`         // Hex or named color
	Marker        string      `json:"marker"`        // Hex or named color
	WallTexture   string      `json:"wallTexture"`   // Asset name of the wall atlas
	SpriteTexture string      `json:"spriteTexture"` // Asset name of the sprite atlas
	Sprites       []SpriteDef `json:"sprites"`
}

// PlayerDef is the JSON form of the camera pose.
type PlayerDef struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Angle      float64 `json:"angle"`      // Radians
	FOVDegrees float64 `json:"fovDegrees"` // Horizontal field of view
}

// SpriteDef is the JSON form of a sprite.
type SpriteDef struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Texture int     `json:"texture"`
}

// Parse decodes a scene description. Unknown fields are rejected.
func Parse(content []byte) (File, error) {
	var f File
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return f, fmt.Errorf("failed to parse scene JSON: %w", err)
	}
	return f, nil
}

// Build resolves colors and textures and returns a validated scene.
// Texture names are looked up in assets.
func (f File) Build(assets fs.FS) (*Scene, error) {
	m, err := world.NewMap(f.MapWidth, f.MapHeight, strings.Join(f.Map, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to build map: %w", err)
	}

	s := &Scene{
		Width:  f.Width,
		Height: f.Height,
		Map:    m,
		Player: world.NewPlayer(f.Player.X, f.Player.Y, f.Player.Angle, f.Player.FOVDegrees),
	}

	colors := []struct {
		name  string
		value string
		def   uint32
		dst   *uint32
	}{
		{"background", f.Background, pixel.White, &s.Background},
		{"trace", f.Trace, pixel.Gray, &s.Trace},
		{"marker", f.Marker, pixel.Pack(255, 0, 0, 255), &s.Marker},
	}
	for _, c := range colors {
		if c.value == "" {
			*c.dst = c.def
			continue
		}
		*c.dst, err = pixel.ParseColor(c.value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s color: %w", ErrInvalidScene, c.name, err)
		}
	}

	if f.WallTexture == "" {
		return nil, fmt.Errorf("%w: missing wallTexture", ErrInvalidScene)
	}
	if s.Walls, err = texture.Load(assets, f.WallTexture); err != nil {
		return nil, err
	}

	if f.SpriteTexture != "" {
		if s.SpriteAtlas, err = texture.Load(assets, f.SpriteTexture); err != nil {
			return nil, err
		}
	}

	s.Sprites = make([]world.Sprite, len(f.Sprites))
	for i, sp := range f.Sprites {
		s.Sprites[i] = world.Sprite{X: sp.X, Y: sp.Y, Texture: sp.Texture}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads a scene description from disk and builds it against assets.
func Load(ctx context.Context, path string, assets fs.FS) (*Scene, error) {
	_, span := telemetry.Tracer("scene").Start(ctx, "scene.load")
	defer span.End()
	span.SetAttributes(attribute.String("scene.path", path))

	content, err := os.ReadFile(path)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to read scene %s: %w", path, err)
	}

	s, err := build(content, assets)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	annotate(span, s)
	return s, nil
}

// LoadDefault builds the embedded default scene. Assets default to the embedded textures when nil.
func LoadDefault(ctx context.Context, assets fs.FS) (*Scene, error) {
	_, span := telemetry.Tracer("scene").Start(ctx, "scene.load")
	defer span.End()
	span.SetAttributes(attribute.String("scene.path", "embedded:"+data.SceneFile))

	if assets == nil {
		assets = data.FS()
	}

	content, err := data.FS().ReadFile(data.SceneFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded file %s: %w", data.SceneFile, err)
	}

	s, err := build(content, assets)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	annotate(span, s)
	return s, nil
}

// MustLoadDefault builds the embedded default scene, panicking on error.
func MustLoadDefault() *Scene {
	s, err := LoadDefault(context.Background(), nil)
	if err != nil {
		panic(err)
	}
	return s
}

func build(content []byte, assets fs.FS) (*Scene, error) {
	f, err := Parse(content)
	if err != nil {
		return nil, err
	}
	return f.Build(assets)
}

func annotate(span trace.Span, s *Scene) {
	span.SetAttributes(
		attribute.Int("scene.width", s.Width),
		attribute.Int("scene.height", s.Height),
		attribute.Int("scene.map_width", s.Map.Width()),
		attribute.Int("scene.map_height", s.Map.Height()),
		attribute.Int("scene.sprites", len(s.Sprites)),
		attribute.Int("scene.wall_textures", s.Walls.Count()),
	)
}
