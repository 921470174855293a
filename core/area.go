package core

// Point represents a 2D cell coordinate
type Point struct {
	X, Y int
}

// Area represents a rectangular cell region
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int
}

// Empty reports whether the area covers no cells
func (a Area) Empty() bool {
	return a.Width <= 0 || a.Height <= 0
}

// Contains reports whether the cell (x, y) lies inside the area
func (a Area) Contains(x, y int) bool {
	return x >= a.X && x < a.X+a.Width && y >= a.Y && y < a.Y+a.Height
}

// Intersect returns the overlap of two areas; empty areas have zero size
func (a Area) Intersect(b Area) Area {
	x0 := max(a.X, b.X)
	y0 := max(a.Y, b.Y)
	x1 := min(a.X+a.Width, b.X+b.Width)
	y1 := min(a.Y+a.Height, b.Y+b.Height)
	if x1 <= x0 || y1 <= y0 {
		return Area{X: x0, Y: y0}
	}
	return Area{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
