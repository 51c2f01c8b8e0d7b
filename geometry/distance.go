package geometry

import "fmt"

// PointDistance calculates the distance between two points on screen
func PointDistance(a, b Vector) float64 {
	return a.DistanceTo(b)
}

// LandmarkDistance calculates the distance between two hand landmarks
func LandmarkDistance(a, b Vector3) float64 {
	return a.DistanceTo(b)
}

// BulkPointDistance pairs up a and b by index and returns the distance of every pair.
func BulkPointDistance(a, b []Vector) ([]float64, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: point slices differ in length (%d != %d)", ErrInvalidArgument, len(a), len(b))
	}

	distances := make([]float64, len(a))
	for i := range a {
		distances[i] = a[i].DistanceTo(b[i])
	}

	return distances, nil
}
