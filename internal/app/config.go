package app

import "os"

// Environment variables read by ConfigFromEnv.
const (
	EnvScene  = "RAYCASTER_SCENE"
	EnvAssets = "RAYCASTER_ASSETS"
	EnvOutput = "RAYCASTER_OUTPUT"
)

// DefaultOutput is the image path used when RAYCASTER_OUTPUT is unset.
const DefaultOutput = "./output.ppm"

// Config holds the run's inputs and output location.
type Config struct {
	// SceneFile is a scene JSON path. Empty selects the embedded default scene.
	SceneFile string
	// AssetDir is where texture names are resolved. Empty selects the scene file's
	// directory, or the embedded textures for the default scene.
	AssetDir string
	// Output is the PPM file to write.
	Output string
}

// ConfigFromEnv reads the configuration from RAYCASTER_* environment variables.
func ConfigFromEnv() Config {
	cfg := Config{
		SceneFile: os.Getenv(EnvScene),
		AssetDir:  os.Getenv(EnvAssets),
		Output:    os.Getenv(EnvOutput),
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	return cfg
}
