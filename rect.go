package axes

import "fmt"

// Rect is a rectangle on the chart surface. The origin is the top-left
// corner of the surface and y grows downward.
type Rect struct {
	X, Y float64
	W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

func (r Rect) String() string {
	return fmt.Sprintf("{X: %.1f, Y: %.1f, W: %.1f, H: %.1f}", r.X, r.Y, r.W, r.H)
}

// Direction distinguishes the horizontal X-axis from vertical Y-axes.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	if d == Horizontal {
		return "x"
	}
	return "y"
}

// DataType is the kind of data bound to an axis.
type DataType int

const (
	Unset DataType = iota
	Number
	Date
	Category
)

var dataTypeNames = []string{"unset", "number", "date", "category"}

func (dt DataType) String() string {
	if dt < 0 || int(dt) >= len(dataTypeNames) {
		return fmt.Sprintf("DataType(%d)", int(dt))
	}
	return dataTypeNames[dt]
}
