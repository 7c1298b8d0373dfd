package axes

import (
	"fmt"
	"time"

	"gonum.org/v1/plot/plotter"
)

// Series is one data series bound to the X-axis and to the Y-axis group
// YIndex. Only its ranges and categories matter for axis layout.
type Series struct {
	Name   string
	YIndex int

	// XY holds the data. For Date series X is seconds since the Unix epoch,
	// for Category series X is the index into Categories.
	XY plotter.XYs

	// XType is the data type of the x values. The zero value means Number.
	XType DataType

	// Categories are the x labels of a Category series.
	Categories []string
}

// NewNumberSeries returns a Number series.
func NewNumberSeries(name string, x, y []float64) (*Series, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %q has %d x and %d y values", ErrInvalidSeries, name, len(x), len(y))
	}
	s := &Series{Name: name, XType: Number, XY: make(plotter.XYs, len(x))}
	for i := range x {
		s.XY[i].X, s.XY[i].Y = x[i], y[i]
	}
	return s, nil
}

// NewDateSeries returns a Date series.
func NewDateSeries(name string, t []time.Time, y []float64) (*Series, error) {
	if len(t) != len(y) {
		return nil, fmt.Errorf("%w: %q has %d x and %d y values", ErrInvalidSeries, name, len(t), len(y))
	}
	s := &Series{Name: name, XType: Date, XY: make(plotter.XYs, len(t))}
	for i := range t {
		s.XY[i].X = float64(t[i].Unix()) + float64(t[i].Nanosecond())/1e9
		s.XY[i].Y = y[i]
	}
	return s, nil
}

// NewCategorySeries returns a Category series. Category series can only be
// added to a CategoryChart.
func NewCategorySeries(name string, categories []string, y []float64) (*Series, error) {
	if len(categories) != len(y) {
		return nil, fmt.Errorf("%w: %q has %d categories and %d y values", ErrInvalidSeries, name, len(categories), len(y))
	}
	s := &Series{
		Name:       name,
		XType:      Category,
		XY:         make(plotter.XYs, len(y)),
		Categories: categories,
	}
	for i := range y {
		s.XY[i].X, s.XY[i].Y = float64(i), y[i]
	}
	return s, nil
}

func (s *Series) xType() DataType {
	if s.XType == Unset {
		return Number
	}
	return s.XType
}

func (s *Series) validate() error {
	if s.YIndex < 0 {
		return fmt.Errorf("%w: %q has negative y index %d", ErrInvalidSeries, s.Name, s.YIndex)
	}
	if s.xType() == Category && len(s.Categories) != len(s.XY) {
		return fmt.Errorf("%w: %q has %d categories and %d values", ErrInvalidSeries, s.Name, len(s.Categories), len(s.XY))
	}
	return nil
}

// DataRange returns the minimum and maximum x and y values of s. Missing
// values (NaN) are skipped. An empty series returns +Inf minima and -Inf
// maxima.
func (s *Series) DataRange() (xmin, xmax, ymin, ymax float64) {
	x, y := UnsetInterval(), UnsetInterval()
	for _, xy := range s.XY {
		x.Update(xy.X)
		y.Update(xy.Y)
	}
	return x.Min, x.Max, y.Min, y.Max
}
