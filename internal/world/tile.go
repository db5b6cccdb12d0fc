// Package world provides the tile map, the camera pose and sprite placement.
package world

// Tile represents a single map cell as it appears in the map string.
type Tile byte

// TileEmpty marks walkable open space.
const TileEmpty Tile = ' '

// IsEmpty returns true if the tile holds no wall.
func (t Tile) IsEmpty() bool {
	return t == TileEmpty
}

// IsWall returns true if the tile is a wall digit.
func (t Tile) IsWall() bool {
	return t >= '0' && t <= '9'
}

// TextureID returns the wall texture index encoded by the digit.
func (t Tile) TextureID() int {
	return int(t) - '0'
}
