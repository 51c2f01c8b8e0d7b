package geometry

import (
	"fmt"

	"golang.org/x/image/math/f64"
)

// Bounds is a closed range along one axis.
type Bounds struct {
	Min float64
	Max float64
}

func (b Bounds) Span() float64 {
	return b.Max - b.Min
}

func (b Bounds) Midpoint() float64 {
	return b.Min + b.Span()/2
}

// AffineMap builds the transform taking the rectangle inX × inY onto outX × outY.
// Output ranges may be reversed (Min > Max) to flip an axis.
func AffineMap(inX, inY, outX, outY Bounds) (f64.Aff3, error) {
	if inX.Span() == 0 {
		return f64.Aff3{}, fmt.Errorf("%w: horizontal input range [%g, %g]", ErrDegenerateRange, inX.Min, inX.Max)
	}
	if inY.Span() == 0 {
		return f64.Aff3{}, fmt.Errorf("%w: vertical input range [%g, %g]", ErrDegenerateRange, inY.Min, inY.Max)
	}

	scaleX := outX.Span() / inX.Span()
	scaleY := outY.Span() / inY.Span()

	return f64.Aff3{
		scaleX, 0, outX.Min - inX.Min*scaleX,
		0, scaleY, outY.Min - inY.Min*scaleY,
	}, nil
}

// Apply transforms v by the affine matrix m.
func Apply(m f64.Aff3, v Vector) Vector {
	return Vector{
		X: m[0]*v.X + m[1]*v.Y + m[2],
		Y: m[3]*v.X + m[4]*v.Y + m[5],
	}
}

// Remap linearly maps v from inX × inY onto outX × outY.
// Values outside the input ranges extrapolate; nothing is clamped.
func Remap(v Vector, inX, inY, outX, outY Bounds) (Vector, error) {
	m, err := AffineMap(inX, inY, outX, outY)
	if err != nil {
		return Vector{}, err
	}

	return Apply(m, v), nil
}
