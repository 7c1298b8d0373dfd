package axes

import (
	"math"

	"github.com/rivo/uniseg"
	"gonum.org/v1/plot/vg/draw"
)

// AxisTick draws the tick marks and tick labels of an axis.
type AxisTick struct {
	axis   *Axis
	bounds Rect
}

// Visible reports whether ticks are enabled for the axis.
func (t *AxisTick) Visible() bool {
	sty := t.axis.chart.Style
	if t.axis.direction == Horizontal {
		return sty.XAxis.TicksVisible
	}
	return sty.YAxis.TicksVisible
}

// Bounds returns the bounds of the tick region from the last paint.
func (t *AxisTick) Bounds() Rect { return t.bounds }

// rotation is the rotation of tick labels in radians. Only X labels are
// rotated.
func (t *AxisTick) rotation() float64 {
	if t.axis.direction == Horizontal {
		return t.axis.chart.Style.xLabelRotation()
	}
	return 0
}

// labelExtent measures txt across the axis: the height of an X label or
// the width of a Y label.
func (t *AxisTick) labelExtent(txt string) float64 {
	w, h := t.axis.chart.Measurer.Measure(txt, t.axis.chart.Style.TickLabel, t.rotation())
	if t.axis.direction == Horizontal {
		return h
	}
	return w
}

// sizeHint estimates the extent of the tick region across the axis from
// the longest of the labels of calc.
func (t *AxisTick) sizeHint(calc TickCalculator) float64 {
	if !t.Visible() {
		return 0
	}
	sample := longestLabel(calc.Labels())
	if sample == "" {
		sample = " "
	}
	sty := t.axis.chart.Style
	return t.labelExtent(sample) + sty.AxisTickPadding + sty.AxisTickMarkLength
}

// longestLabel returns the label with the most characters. Ties go to the
// first one.
func longestLabel(labels []string) string {
	sample, n := "", 0
	for _, l := range labels {
		if c := uniseg.GraphemeClusterCount(l); c > n {
			sample, n = l, c
		}
	}
	return sample
}

// paint draws the ticks of calc into at and returns the region used.
// For a Y-axis at starts at the left edge of the tick region and spans the
// axis height; for the X-axis at is the axis bounds and the ticks are drawn
// along its top edge.
func (t *AxisTick) paint(p Painter, calc TickCalculator, at Rect, onRight bool) Rect {
	if !t.Visible() {
		if t.axis.direction == Horizontal {
			t.bounds = Rect{X: at.X, Y: at.Y, W: at.W}
		} else {
			t.bounds = Rect{X: at.X, Y: at.Y, H: at.H}
		}
		return t.bounds
	}

	style := t.axis.chart.Style
	mark, pad := style.AxisTickMarkLength, style.AxisTickPadding
	ticks := calc.Ticks()

	extent := t.labelExtent(" ")
	for _, tk := range ticks {
		if tk.Label != "" {
			extent = math.Max(extent, t.labelExtent(tk.Label))
		}
	}
	size := extent + pad + mark

	sty := style.TickLabel
	if t.axis.direction == Horizontal {
		t.bounds = Rect{X: at.X, Y: at.Y, W: at.W, H: size}
		sty.Rotation = t.rotation()
		if sty.Rotation == 0 {
			sty.XAlign, sty.YAlign = draw.XCenter, draw.YTop
		} else {
			sty.XAlign, sty.YAlign = draw.XRight, draw.YCenter
		}
		for _, tk := range ticks {
			x := at.X + tk.Offset
			l := mark
			if tk.Minor {
				l /= 2
			}
			p.line(style.TickLine, x, at.Y, x, at.Y+l)
			if tk.Label != "" {
				p.text(sty, x, at.Y+mark+pad, tk.Label)
			}
		}
		return t.bounds
	}

	t.bounds = Rect{X: at.X, Y: at.Y, W: size, H: at.H}
	sty.YAlign = draw.YCenter
	for _, tk := range ticks {
		y := at.Bottom() - tk.Offset
		l := mark
		if tk.Minor {
			l /= 2
		}
		if onRight {
			x := at.X
			p.line(style.TickLine, x, y, x+l, y)
			if tk.Label != "" {
				sty.XAlign = draw.XLeft
				p.text(sty, x+mark+pad, y, tk.Label)
			}
			continue
		}
		x := at.X + size
		p.line(style.TickLine, x-l, y, x, y)
		if tk.Label != "" {
			sty.XAlign = draw.XRight
			p.text(sty, x-mark-pad, y, tk.Label)
		}
	}
	return t.bounds
}
