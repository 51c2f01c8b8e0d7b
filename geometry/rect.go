package geometry

// Rect is an axis-aligned rectangle anchored at its top-left corner (X, Y).
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func NewRect(x, y, width, height float64) Rect {
	return Rect{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

// RectAt builds a rectangle of the given size anchored at position.
func RectAt(position Vector, width, height float64) Rect {
	return NewRect(position.X, position.Y, width, height)
}

func (r Rect) Right() float64 {
	return r.X + r.Width
}

func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

func (r Rect) Center() Vector {
	return Vector{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Intersects reports whether r and other overlap on both axes.
// The intervals are closed: rectangles that only touch along an edge or
// at a corner intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.Right() >= other.X &&
		other.Right() >= r.X &&
		r.Bottom() >= other.Y &&
		other.Bottom() >= r.Y
}
