package scene

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/samdwyer/raycaster/internal/pixel"
	"github.com/samdwyer/raycaster/internal/texture"
)

func atlasPNG(t *testing.T, size, count int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, size*count, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size*count; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(40 * (x / size)), G: 10, B: 10, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error: %v", err)
	}
	return buf.Bytes()
}

func testAssets(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		"walls.png":   &fstest.MapFile{Data: atlasPNG(t, 8, 3)},
		"sprites.png": &fstest.MapFile{Data: atlasPNG(t, 8, 2)},
	}
}

func validFile() File {
	return File{
		Width:     64,
		Height:    32,
		MapWidth:  4,
		MapHeight: 4,
		Map: []string{
			"0000",
			"1  1",
			"1  2",
			"0000",
		},
		Player:        PlayerDef{X: 1.5, Y: 1.5, Angle: 0, FOVDegrees: 60},
		Background:    "#102030",
		WallTexture:   "walls.png",
		SpriteTexture: "sprites.png",
		Sprites:       []SpriteDef{{X: 2.5, Y: 2.5, Texture: 1}},
	}
}

func TestBuildValidScene(t *testing.T) {
	s, err := validFile().Build(testAssets(t))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if s.Map.Width() != 4 || s.Map.Get(3, 2) != 2 {
		t.Errorf("map not built from rows")
	}
	if math.Abs(s.Player.FOV-math.Pi/3) > 1e-12 {
		t.Errorf("Player.FOV = %v, want pi/3", s.Player.FOV)
	}
	if s.Background != pixel.Pack(0x10, 0x20, 0x30, 255) {
		t.Errorf("Background = %#x", s.Background)
	}
	if s.Trace != pixel.Gray {
		t.Errorf("Trace = %#x, want default gray", s.Trace)
	}
	if s.Walls.Count() != 3 || s.SpriteAtlas.Count() != 2 {
		t.Errorf("atlas counts = %d, %d, want 3, 2", s.Walls.Count(), s.SpriteAtlas.Count())
	}
	if len(s.Sprites) != 1 || s.Sprites[0].Texture != 1 {
		t.Errorf("Sprites = %+v", s.Sprites)
	}
}

func TestBuildRejectsInvalidScenes(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*File)
		wantErr error
	}{
		{"map texture beyond atlas", func(f *File) { f.Map[2] = "1  5" }, ErrInvalidScene},
		{"sprite texture beyond atlas", func(f *File) { f.Sprites[0].Texture = 2 }, ErrInvalidScene},
		{"sprite outside map", func(f *File) { f.Sprites[0].X = -1 }, ErrInvalidScene},
		{"zero fov", func(f *File) { f.Player.FOVDegrees = 0 }, ErrInvalidScene},
		{"wide fov", func(f *File) { f.Player.FOVDegrees = 180 }, ErrInvalidScene},
		{"player outside map", func(f *File) { f.Player.Y = 4 }, ErrInvalidScene},
		{"map wider than minimap", func(f *File) { f.Width = 6 }, ErrInvalidScene},
		{"bad color", func(f *File) { f.Marker = "#12" }, ErrInvalidScene},
		{"no wall texture", func(f *File) { f.WallTexture = "" }, ErrInvalidScene},
		{"sprites without atlas", func(f *File) { f.SpriteTexture = "" }, ErrInvalidScene},
		{"missing asset", func(f *File) { f.WallTexture = "nope.png" }, texture.ErrAssetLoad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFile()
			tt.mutate(&f)
			_, err := f.Build(testAssets(t))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Build() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	if _, err := Parse([]byte(`{"width": 10, "colour": "red"}`)); err == nil {
		t.Error("Parse() should reject unknown fields")
	}
	if _, err := Parse([]byte(`{"width": "wide"}`)); err == nil {
		t.Error("Parse() should reject mistyped fields")
	}
}

func TestLoadFromDisk(t *testing.T) {
	content, err := json.Marshal(validFile())
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	s, err := Load(context.Background(), path, testAssets(t))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.Width != 64 || s.Height != 32 {
		t.Errorf("size = %dx%d, want 64x32", s.Width, s.Height)
	}

	if _, err := Load(context.Background(), path+".missing", testAssets(t)); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}

func TestLoadDefault(t *testing.T) {
	s, err := LoadDefault(context.Background(), nil)
	if err != nil {
		t.Fatalf("LoadDefault() error: %v", err)
	}

	if s.Width != 1024 || s.Height != 512 {
		t.Errorf("size = %dx%d, want 1024x512", s.Width, s.Height)
	}
	if s.Map.Width() != 16 || s.Map.Height() != 16 {
		t.Errorf("map = %dx%d, want 16x16", s.Map.Width(), s.Map.Height())
	}
	if s.Walls.Size() != 64 || s.Walls.Count() != 6 {
		t.Errorf("walls = %d textures of %d, want 6 of 64", s.Walls.Count(), s.Walls.Size())
	}
	if s.SpriteAtlas.Count() != 4 {
		t.Errorf("sprite textures = %d, want 4", s.SpriteAtlas.Count())
	}
	if len(s.Sprites) != 4 {
		t.Errorf("sprites = %d, want 4", len(s.Sprites))
	}
}
