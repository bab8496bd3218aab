package output

import (
	"github.com/yourusername/i4/internal/models"
)

// Scaler maps pixel rectangles inside a bounding rect onto a character grid
type Scaler struct {
	Bounds models.Rect
	Cols   int
	Rows   int
	scaleX float64
	scaleY float64
}

// NewScaler fits bounds into a cols x rows grid
func NewScaler(bounds models.Rect, cols, rows int) *Scaler {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	w, h := bounds.Width, bounds.Height
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Scaler{
		Bounds: bounds,
		Cols:   cols,
		Rows:   rows,
		scaleX: float64(cols) / float64(w),
		scaleY: float64(rows) / float64(h),
	}
}

// ToGrid converts r to grid coordinates. The box is clamped to the grid and is
// never smaller than 2x2 so it can still be outlined.
func (s *Scaler) ToGrid(r models.Rect) (x, y, w, h int) {
	x0 := int(float64(r.X-s.Bounds.X) * s.scaleX)
	y0 := int(float64(r.Y-s.Bounds.Y) * s.scaleY)
	x1 := int(float64(r.X+r.Width-s.Bounds.X) * s.scaleX)
	y1 := int(float64(r.Y+r.Height-s.Bounds.Y) * s.scaleY)

	x0, x1 = clamp(x0, 0, s.Cols-1), clamp(x1, 0, s.Cols)
	y0, y1 = clamp(y0, 0, s.Rows-1), clamp(y1, 0, s.Rows)

	w, h = x1-x0, y1-y0
	if w < 2 {
		w = 2
	}
	if h < 2 {
		h = 2
	}
	if x0+w > s.Cols {
		x0 = max(0, s.Cols-w)
	}
	if y0+h > s.Rows {
		y0 = max(0, s.Rows-h)
	}
	return x0, y0, w, h
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
