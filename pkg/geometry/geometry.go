// Package geometry provides the pixel-space primitives shared by all tiling
// algorithms: integer rectangles and exact integer distribution helpers.
//
// Everything in this package is pure computation. Rectangles use screen
// coordinates (origin top-left, y grows downward) and integer pixels, because
// compositors place windows on whole pixels and rounding drift between
// adjacent zones shows up as visible seams.
package geometry

import "fmt"

// Rect is an axis-aligned rectangle in screen coordinates.
type Rect struct {
	X      int `json:"x" toml:"x"`
	Y      int `json:"y" toml:"y"`
	Width  int `json:"width" toml:"width"`
	Height int `json:"height" toml:"height"`
}

// NewRect constructs a Rect from position and size.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// IsValid reports whether the rectangle has positive area.
func (r Rect) IsValid() bool { return r.Width > 0 && r.Height > 0 }

// Right returns the exclusive right edge (X + Width).
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the exclusive bottom edge (Y + Height).
func (r Rect) Bottom() int { return r.Y + r.Height }

// CenterX returns the horizontal center.
func (r Rect) CenterX() int { return r.X + r.Width/2 }

// CenterY returns the vertical center.
func (r Rect) CenterY() int { return r.Y + r.Height/2 }

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Shrunk returns a copy inset by the given amount on all four edges.
// The result may be invalid if the inset exceeds half the size.
func (r Rect) Shrunk(inset int) Rect {
	return Rect{
		X:      r.X + inset,
		Y:      r.Y + inset,
		Width:  r.Width - 2*inset,
		Height: r.Height - 2*inset,
	}
}

// String formats the rectangle as "WxH+X+Y", the X11 geometry convention.
func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

// RectF is a rectangle normalized to the unit square. Used for
// resolution-independent previews of pixel layouts.
type RectF struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Normalize maps r from frame-space pixels into the unit square.
// An invalid frame yields the zero RectF.
func Normalize(r Rect, frame Rect) RectF {
	if !frame.IsValid() {
		return RectF{}
	}
	return RectF{
		X:      float64(r.X-frame.X) / float64(frame.Width),
		Y:      float64(r.Y-frame.Y) / float64(frame.Height),
		Width:  float64(r.Width) / float64(frame.Width),
		Height: float64(r.Height) / float64(frame.Height),
	}
}
