package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/samdwyer/raycaster/data"
	"github.com/samdwyer/raycaster/internal/texture"
	"github.com/samdwyer/raycaster/internal/world"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(EnvScene, "")
	t.Setenv(EnvAssets, "")
	t.Setenv(EnvOutput, "")

	cfg := ConfigFromEnv()
	if cfg.SceneFile != "" || cfg.AssetDir != "" {
		t.Errorf("ConfigFromEnv() = %+v, want empty scene and assets", cfg)
	}
	if cfg.Output != DefaultOutput {
		t.Errorf("Output = %q, want %q", cfg.Output, DefaultOutput)
	}

	t.Setenv(EnvScene, "scenes/level.json")
	t.Setenv(EnvOutput, "/tmp/frame.ppm")
	cfg = ConfigFromEnv()
	if cfg.SceneFile != "scenes/level.json" || cfg.Output != "/tmp/frame.ppm" {
		t.Errorf("ConfigFromEnv() = %+v", cfg)
	}
}

func TestRunDefaultScene(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.ppm")

	if err := New(Config{Output: out}).Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	content, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	header := []byte("P6\n1024 512 \n255\n")
	if !bytes.HasPrefix(content, header) {
		t.Fatalf("output does not start with %q", header)
	}
	if got, want := len(content), len(header)+1024*512*3; got != want {
		t.Errorf("output size = %d, want %d", got, want)
	}
}

// copyDefaultScene writes the embedded scene and textures into dir.
func copyDefaultScene(t *testing.T, dir string) string {
	t.Helper()
	for _, name := range []string{data.SceneFile, "walltext.png", "monsters.png"} {
		content, err := data.FS().ReadFile(name)
		if err != nil {
			t.Fatalf("ReadFile(%s) error: %v", name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), content, 0o644); err != nil {
			t.Fatalf("WriteFile(%s) error: %v", name, err)
		}
	}
	return filepath.Join(dir, data.SceneFile)
}

func TestRunSceneFileResolvesAssetsBesideIt(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		SceneFile: copyDefaultScene(t, dir),
		Output:    filepath.Join(dir, "frame.ppm"),
	}

	if err := New(cfg).Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if _, err := os.Stat(cfg.Output); err != nil {
		t.Errorf("output not written: %v", err)
	}
}

func TestRunMissingAsset(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		SceneFile: copyDefaultScene(t, dir),
		AssetDir:  t.TempDir(),
		Output:    filepath.Join(dir, "frame.ppm"),
	}

	err := New(cfg).Run(context.Background())
	if !errors.Is(err, texture.ErrAssetLoad) {
		t.Fatalf("Run() error = %v, want ErrAssetLoad", err)
	}
	if _, statErr := os.Stat(cfg.Output); statErr == nil {
		t.Error("output written despite the failed load")
	}
}

func TestRunInvalidScene(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.json")
	content := []byte(`{"width": 8, "height": 8, "mapWidth": 2, "mapHeight": 2, "map": ["0"], "wallTexture": "w.png"}`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	err := New(Config{SceneFile: path, Output: filepath.Join(dir, "out.ppm")}).Run(context.Background())
	if err == nil {
		t.Fatal("Run() should fail for a map with the wrong tile count")
	}
	if !errors.Is(err, world.ErrInvalidDimensions) {
		t.Errorf("Run() error = %v, want ErrInvalidDimensions", err)
	}
}
