// Scale Transformations
//
// A transformation maps an interval of data values onto the working space
// of an axis, i.e. onto [0, length of the axis].
package axes

import (
	"math"

	"gonum.org/v1/plot"
)

// A Transformation bundles two functions Trans and Inverse together with
// an appropiate Ticker. The two functions map two intervals.
type Transformation struct {
	Name    string
	Trans   func(from, to Interval, x float64) float64
	Inverse func(from, to Interval, y float64) float64
	Ticker  plot.Ticker
}

// LinearTrans implements a linear mapping of from to to.
var LinearTrans = Transformation{
	Name: "Linear",
	Trans: func(from, to Interval, x float64) float64 {
		return to.Min + (to.Max-to.Min)*(x-from.Min)/(from.Max-from.Min)
	},
	Inverse: func(from, to Interval, y float64) float64 {
		return from.Min + (from.Max-from.Min)*(y-to.Min)/(to.Max-to.Min)
	},
	Ticker: plot.DefaultTicks{},
}

// Log10Trans maps from logarithmically onto to. Both edges of from must
// be positive.
var Log10Trans = Transformation{
	Name: "Log10",
	Trans: func(from, to Interval, x float64) float64 {
		t := math.Log10(x/from.Min) / math.Log10(from.Max/from.Min)
		return to.Min + t*(to.Max-to.Min)
	},
	Inverse: func(from, to Interval, y float64) float64 {
		t := (y - to.Min) / (to.Max - to.Min)
		return from.Min * math.Pow(from.Max/from.Min, t)
	},
	Ticker: plot.LogTicks{},
}
