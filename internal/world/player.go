package world

import "math"

// Player is the camera pose: position in map units, view angle and horizontal field of view in radians.
type Player struct {
	X     float64
	Y     float64
	Angle float64
	FOV   float64
}

// NewPlayer creates a player with the field of view given in degrees.
func NewPlayer(x, y, angle, fovDegrees float64) Player {
	return Player{
		X:     x,
		Y:     y,
		Angle: angle,
		FOV:   fovDegrees * math.Pi / 180,
	}
}
