package world

import "math"

// Sprite is a billboard placed in the map.
type Sprite struct {
	X       float64
	Y       float64
	Texture int // Index into the sprite atlas
}

// DistanceTo returns the Euclidean distance from the player to the sprite.
func (s Sprite) DistanceTo(p Player) float64 {
	return math.Hypot(s.X-p.X, s.Y-p.Y)
}

// BearingFrom returns the direction from the player to the sprite, normalized so that
// it lies within half a turn of the player's view angle.
func (s Sprite) BearingFrom(p Player) float64 {
	bearing := math.Atan2(s.Y-p.Y, s.X-p.X)
	for bearing-p.Angle > math.Pi {
		bearing -= 2 * math.Pi
	}
	for bearing-p.Angle < -math.Pi {
		bearing += 2 * math.Pi
	}
	return bearing
}
