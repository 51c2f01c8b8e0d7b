package gesture

import "github.com/meghashyamc/fingerblaster/geometry"

// DefaultPinchThreshold is the thumb-to-index distance, in normalized landmark
// units, below which the fingers count as pinched.
const DefaultPinchThreshold = 0.040

// IsPinch reports whether the thumb and index fingertips are closer than threshold.
// A distance equal to threshold is not a pinch.
func IsPinch(thumb, index geometry.Vector3, threshold float64) bool {
	return geometry.LandmarkDistance(thumb, index) < threshold
}
