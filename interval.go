package axes

import (
	"fmt"
	"math"
)

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// The zero value is the degenerate interval [0,0]; use UnsetInterval for
// an interval which covers nothing yet.
type Interval struct {
	Min, Max float64
}

// UnsetInterval returns the interval [+Inf,-Inf]: any finite value is
// less than its Min and greater than its Max.
func UnsetInterval() Interval {
	return Interval{math.Inf(+1), math.Inf(-1)}
}

// Update expands i to include x. NaN values are ignored.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if v < i.Min {
			i.Min = v
		}
		if v > i.Max {
			i.Max = v
		}
	}
}

// Valid reports whether i covers at least one finite value.
func (i Interval) Valid() bool {
	return i.Min <= i.Max && !math.IsInf(i.Min, 0) && !math.IsInf(i.Max, 0)
}

// Degenerate reports whether i is valid and has zero span.
func (i Interval) Degenerate() bool {
	return i.Valid() && i.Min == i.Max
}

// Span is Max-Min.
func (i Interval) Span() float64 {
	return i.Max - i.Min
}

func (i Interval) String() string {
	return fmt.Sprintf("[%g:%g]", i.Min, i.Max)
}
