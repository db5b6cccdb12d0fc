package world

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when the tile string does not match the map size.
	ErrInvalidDimensions = errors.New("invalid map dimensions")
	// ErrInvalidTile is returned for characters that are neither a digit nor a blank.
	ErrInvalidTile = errors.New("invalid map tile")
)

// Map is an immutable grid of tiles stored row-major.
type Map struct {
	width  int
	height int
	tiles  []Tile
}

// NewMap builds a map from a flattened row-major tile string.
func NewMap(width, height int, tiles string) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(tiles) != width*height {
		return nil, fmt.Errorf("%w: got %d tiles for a %dx%d map", ErrInvalidDimensions, len(tiles), width, height)
	}

	grid := make([]Tile, len(tiles))
	for i := 0; i < len(tiles); i++ {
		t := Tile(tiles[i])
		if !t.IsEmpty() && !t.IsWall() {
			return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidTile, tiles[i], i%width, i/width)
		}
		grid[i] = t
	}

	return &Map{width: width, height: height, tiles: grid}, nil
}

// MustNewMap builds a map, panicking on error.
func MustNewMap(width, height int, tiles string) *Map {
	m, err := NewMap(width, height, tiles)
	if err != nil {
		panic(err)
	}
	return m
}

// Width returns the number of columns.
func (m *Map) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *Map) Height() int {
	return m.height
}

// Contains returns true if (x, y) is a cell of the map.
func (m *Map) Contains(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Get returns the texture id of the tile at (x, y).
func (m *Map) Get(x, y int) int {
	return m.tile(x, y).TextureID()
}

// IsEmpty returns true if the cell at (x, y) holds no wall.
func (m *Map) IsEmpty(x, y int) bool {
	return m.tile(x, y).IsEmpty()
}

// MaxTexture returns the highest wall texture id in the map, or -1 if the map has no walls.
func (m *Map) MaxTexture() int {
	highest := -1
	for _, t := range m.tiles {
		if t.IsWall() && t.TextureID() > highest {
			highest = t.TextureID()
		}
	}
	return highest
}

func (m *Map) tile(x, y int) Tile {
	if !m.Contains(x, y) {
		panic(fmt.Sprintf("world: cell (%d,%d) outside %dx%d map", x, y, m.width, m.height))
	}
	return m.tiles[x+y*m.width]
}
