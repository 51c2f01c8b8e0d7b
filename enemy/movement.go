package enemy

import (
	"fmt"

	"github.com/meghashyamc/fingerblaster/geometry"
)

// UpdatePositions advances every enemy by one frame and returns the moved copies.
// The input slice is not modified.
//
// Horizontal position is clamped to [0, screenWidth]. Vertical position is
// left unclamped so enemies can fly off the bottom of the screen; screenHeight
// is accepted for symmetry with the caller's frame data and is not used.
func UpdatePositions(enemies []Enemy, speedsY []float64, screenWidth, screenHeight float64) ([]Enemy, error) {
	if len(speedsY) != len(enemies) {
		return nil, fmt.Errorf("%w: %d enemies but %d vertical speeds", geometry.ErrInvalidArgument, len(enemies), len(speedsY))
	}

	moved := make([]Enemy, len(enemies))
	for i, e := range enemies {
		e.X += e.SpeedX
		e.Y += speedsY[i]
		e.X = geometry.Clamp(e.X, 0, screenWidth)
		moved[i] = e
	}

	return moved, nil
}

// AimDirection returns the unit vector pointing from source to target,
// or the zero vector when the two coincide.
func AimDirection(source, target geometry.Vector) geometry.Vector {
	return target.Sub(source).Normalize()
}
