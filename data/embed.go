// Package data provides the embedded default scene and its textures.
package data

import "embed"

// dataFS embeds the scene description and texture atlases at build time.
//
//go:embed *.json *.png
var dataFS embed.FS

// FS returns the embedded filesystem containing the default scene.
func FS() embed.FS {
	return dataFS
}

// SceneFile is the name of the default scene description within FS.
const SceneFile = "scene.json"
