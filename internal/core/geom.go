// Package core provides the platform-neutral building blocks shared by the
// simulation and the terminal layer: input actions, the screen buffer and
// small geometry helpers. It has no external dependencies.
package core

// Rect is an integer axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Scaler maps playfield coordinates (pixels, float) onto screen cells.
type Scaler struct {
	sx, sy float64
}

// NewScaler returns a Scaler mapping a fieldW x fieldH playfield onto a
// cellsW x cellsH area. Degenerate sizes map everything to zero.
func NewScaler(fieldW, fieldH float64, cellsW, cellsH int) Scaler {
	var s Scaler
	if fieldW > 0 {
		s.sx = float64(cellsW) / fieldW
	}
	if fieldH > 0 {
		s.sy = float64(cellsH) / fieldH
	}
	return s
}

// X converts a playfield x coordinate to a screen column.
func (s Scaler) X(x float64) int {
	return floor(x * s.sx)
}

// Y converts a playfield y coordinate to a screen row.
func (s Scaler) Y(y float64) int {
	return floor(y * s.sy)
}

// W converts a playfield width to columns, never less than one.
func (s Scaler) W(w float64) int {
	return Max(floor(w*s.sx+0.5), 1)
}

// H converts a playfield height to rows, never less than one.
func (s Scaler) H(h float64) int {
	return Max(floor(h*s.sy+0.5), 1)
}

func floor(v float64) int {
	i := int(v)
	if v < 0 && float64(i) != v {
		i--
	}
	return i
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
