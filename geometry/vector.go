package geometry

import (
	"math"
)

// Vector is a point or direction in screen space.
type Vector struct {
	X float64
	Y float64
}

// Magnitude calculates the magnitude (length) of a vector.
// It overflows only when the true length is beyond the float64 range.
func (v Vector) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector pointing the same way as v.
// The zero vector normalizes to itself.
func (v Vector) Normalize() Vector {
	magnitude := v.Magnitude()
	if magnitude == 0 {
		return Vector{0, 0}
	}
	return Vector{v.X / magnitude, v.Y / magnitude}
}

func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y}
}

func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y}
}

func (v Vector) Scale(factor float64) Vector {
	return Vector{v.X * factor, v.Y * factor}
}

// DistanceTo is the Euclidean distance between v and other.
func (v Vector) DistanceTo(other Vector) float64 {
	return v.Sub(other).Magnitude()
}

// Vector3 is a point in normalized landmark space, as reported by a hand tracker.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

func (v Vector3) Magnitude() float64 {
	return math.Hypot(math.Hypot(v.X, v.Y), v.Z)
}

func (v Vector3) DistanceTo(other Vector3) float64 {
	return v.Sub(other).Magnitude()
}
