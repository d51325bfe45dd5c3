package geometry

// Point is a touch coordinate in layout space.
type Point struct {
	X int
	Y int
}

// Equal returns true if two points are identical.
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// Rect is an axis-aligned key rectangle in layout space.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains returns true if the point lies inside the rectangle.
// The left and top edges are inclusive, the right and bottom edges
// exclusive, so adjacent keys never claim the same point.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() int {
	return r.X + r.Width/2
}

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() int {
	return r.Y + r.Height/2
}
