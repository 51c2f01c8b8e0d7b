package gesture

import (
	"fmt"

	"github.com/meghashyamc/fingerblaster/geometry"
	"golang.org/x/image/math/f64"
)

// Calibration holds the part of the camera frame the hand is expected to move in
// and the part of the screen that region drives.
type Calibration struct {
	InputX  geometry.Bounds
	InputY  geometry.Bounds
	OutputX geometry.Bounds
	OutputY geometry.Bounds
}

// FingerMapper converts normalized fingertip positions into screen coordinates.
type FingerMapper struct {
	calibration Calibration
	transform   f64.Aff3
}

func NewFingerMapper(calibration Calibration) (*FingerMapper, error) {
	transform, err := geometry.AffineMap(calibration.InputX, calibration.InputY, calibration.OutputX, calibration.OutputY)
	if err != nil {
		return nil, fmt.Errorf("invalid finger calibration: %w", err)
	}

	return &FingerMapper{
		calibration: calibration,
		transform:   transform,
	}, nil
}

// Map converts a normalized fingertip position. Positions outside the
// calibrated input region land outside the output region; callers clamp if they need to.
func (m *FingerMapper) Map(finger geometry.Vector) geometry.Vector {
	return geometry.Apply(m.transform, finger)
}

func (m *FingerMapper) Calibration() Calibration {
	return m.calibration
}

// MapFingerPosition is the one-shot form of FingerMapper.Map.
func MapFingerPosition(finger geometry.Vector, calibration Calibration) (geometry.Vector, error) {
	return geometry.Remap(finger, calibration.InputX, calibration.InputY, calibration.OutputX, calibration.OutputY)
}
