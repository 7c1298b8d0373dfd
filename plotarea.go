package axes

// ----------------------------------------------------------------------------
// PlotArea

// PlotBounds returns the rectangle enclosed by the axes of a laid out
// chart.
func (ch *Chart) PlotBounds() Rect {
	var top, height float64
	first := true
	for _, a := range ch.yAxes {
		if first || a.bounds.Y < top {
			top = a.bounds.Y
		}
		if a.bounds.H > height {
			height = a.bounds.H
		}
		first = false
	}
	return Rect{X: ch.xAxis.bounds.X, Y: top, W: ch.xAxis.bounds.W, H: height}
}

// A PlotArea maps data coordinates of one Y-axis group into the plot
// rectangle of a laid out chart.
type PlotArea struct {
	Bounds Rect
	X, Y   *Axis
}

// PlotArea returns the plot area of the Y-axis group yIndex.
func (ch *Chart) PlotArea(yIndex int) (PlotArea, bool) {
	y, ok := ch.yAxes[yIndex]
	if !ok {
		return PlotArea{}, false
	}
	return PlotArea{Bounds: ch.PlotBounds(), X: ch.xAxis, Y: y}, true
}

// MapXY maps the data coordinate (x,y) to chart coordinates. The result is
// false if an axis has no usable range or the value cannot be shown, e.g.
// a non-positive value on a logarithmic axis.
func (pa PlotArea) MapXY(x, y float64) (px, py float64, ok bool) {
	ox, ok := pa.X.offset(x, pa.Bounds.W)
	if !ok {
		return 0, 0, false
	}
	oy, ok := pa.Y.offset(y, pa.Bounds.H)
	if !ok {
		return 0, 0, false
	}
	return pa.Bounds.X + ox, pa.Bounds.Bottom() - oy, true
}

// offset maps the data value v onto [0,space] the same way the tick
// calculator of a places its ticks.
func (a *Axis) offset(v, space float64) (float64, bool) {
	to := Interval{0, space}
	switch a.CalculatorKind() {
	case CategoryCalculator:
		n := len(a.chart.categories())
		if n == 0 {
			return 0, false
		}
		return (v + 0.5) * space / float64(n), true
	case LogCalculator:
		r, ok := logRange(a.Range)
		if !ok || v <= 0 {
			return 0, false
		}
		return Log10Trans.Trans(r, to, v), true
	}
	r, ok := linearRange(a.Range)
	if !ok {
		return 0, false
	}
	return LinearTrans.Trans(r, to, v), true
}

// DataXY maps the chart coordinate (px,py) back to data coordinates. It is
// the inverse of MapXY for continuous axes; category axes report the
// fractional category index.
func (pa PlotArea) DataXY(px, py float64) (x, y float64, ok bool) {
	x, ok = pa.X.value(px-pa.Bounds.X, pa.Bounds.W)
	if !ok {
		return 0, 0, false
	}
	y, ok = pa.Y.value(pa.Bounds.Bottom()-py, pa.Bounds.H)
	if !ok {
		return 0, 0, false
	}
	return x, y, true
}

// value is the inverse of offset.
func (a *Axis) value(off, space float64) (float64, bool) {
	if !(space > 0) {
		return 0, false
	}
	to := Interval{0, space}
	switch a.CalculatorKind() {
	case CategoryCalculator:
		n := len(a.chart.categories())
		if n == 0 {
			return 0, false
		}
		return off*float64(n)/space - 0.5, true
	case LogCalculator:
		r, ok := logRange(a.Range)
		if !ok {
			return 0, false
		}
		return Log10Trans.Inverse(r, to, off), true
	}
	r, ok := linearRange(a.Range)
	if !ok {
		return 0, false
	}
	return LinearTrans.Inverse(r, to, off), true
}
