package axes

import (
	"math"
	"strings"

	"gonum.org/v1/plot/vg/draw"
)

// AxisTitle is the title of an axis. Y titles are drawn rotated by 90
// degrees on the outer edge of their axis, the X title is drawn below the
// X tick labels.
type AxisTitle struct {
	axis   *Axis
	bounds Rect
}

// Text returns the configured title text.
func (t *AxisTitle) Text() string {
	if t.axis.direction == Horizontal {
		return t.axis.chart.XAxisTitle
	}
	return t.axis.chart.YAxisGroupTitle(t.axis.yIndex)
}

// Visible reports whether the title takes up space: it must be non-blank
// and enabled in the style.
func (t *AxisTitle) Visible() bool {
	if strings.TrimSpace(t.Text()) == "" {
		return false
	}
	sty := t.axis.chart.Style
	if t.axis.direction == Horizontal {
		return sty.XAxis.TitleVisible
	}
	return sty.YAxis.TitleVisible
}

// Bounds returns the bounds of the title from the last paint.
func (t *AxisTitle) Bounds() Rect { return t.bounds }

// textHeight is the height of the unrotated title text.
func (t *AxisTitle) textHeight() float64 {
	_, h := t.axis.chart.Measurer.Measure(t.Text(), t.axis.chart.Style.AxisTitle, 0)
	return h
}

// thickness is the extent of the title across its axis, i.e. the width of
// a Y title or the height of the X title, including the title padding.
func (t *AxisTitle) thickness() float64 {
	if !t.Visible() {
		return 0
	}
	return t.textHeight() + t.axis.chart.Style.AxisTitlePadding
}

// paint draws the title into at. For a Y-axis at is the slot starting at
// the title's left edge; for the X-axis at is the axis bounds.
func (t *AxisTitle) paint(p Painter, at Rect, onRight bool) Rect {
	if !t.Visible() {
		if t.axis.direction == Horizontal {
			t.bounds = Rect{X: at.X, Y: at.Bottom(), W: at.W}
		} else {
			t.bounds = Rect{X: at.X, Y: at.Y, H: at.H}
		}
		return t.bounds
	}

	style := t.axis.chart.Style
	pad := style.AxisTitlePadding
	h := t.textHeight()
	sty := style.AxisTitle
	sty.XAlign, sty.YAlign = draw.XCenter, draw.YCenter

	if t.axis.direction == Horizontal {
		t.bounds = Rect{X: at.X, Y: at.Bottom() - h - pad, W: at.W, H: h + pad}
		p.text(sty, t.bounds.X+t.bounds.W/2, t.bounds.Y+pad+h/2, t.Text())
		return t.bounds
	}

	t.bounds = Rect{X: at.X, Y: at.Y, W: h + pad, H: at.H}
	cx := at.X + h/2
	if onRight {
		cx += pad
	}
	sty.Rotation = math.Pi / 2
	p.text(sty, cx, at.Y+at.H/2, t.Text())
	return t.bounds
}
