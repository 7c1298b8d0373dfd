package axes

import (
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Surface is the drawing surface of a chart. *draw.Canvas implements it.
type Surface interface {
	FillText(sty draw.TextStyle, pt vg.Point, txt string)
	StrokeLine2(sty draw.LineStyle, x1, y1, x2, y2 vg.Length)
}

// A Painter draws on a Surface in chart coordinates: the origin is the top
// left corner of the chart and y grows downward. Origin is the surface
// point of that corner.
type Painter struct {
	Surface Surface
	Origin  vg.Point
}

// NewPainter returns a Painter drawing onto the whole canvas c.
func NewPainter(c *draw.Canvas) Painter {
	return Painter{
		Surface: c,
		Origin:  vg.Point{X: c.Min.X, Y: c.Max.Y},
	}
}

// Point converts the chart coordinate (x,y) into a surface point.
func (p Painter) Point(x, y float64) vg.Point {
	return vg.Point{
		X: p.Origin.X + vg.Length(x),
		Y: p.Origin.Y - vg.Length(y),
	}
}

func (p Painter) text(sty draw.TextStyle, x, y float64, txt string) {
	p.Surface.FillText(sty, p.Point(x, y), txt)
}

func (p Painter) line(sty draw.LineStyle, x1, y1, x2, y2 float64) {
	a, b := p.Point(x1, y1), p.Point(x2, y2)
	p.Surface.StrokeLine2(sty, a.X, a.Y, b.X, b.Y)
}

func (p Painter) rect(sty draw.LineStyle, r Rect) {
	p.line(sty, r.X, r.Y, r.Right(), r.Y)
	p.line(sty, r.Right(), r.Y, r.Right(), r.Bottom())
	p.line(sty, r.Right(), r.Bottom(), r.X, r.Bottom())
	p.line(sty, r.X, r.Bottom(), r.X, r.Y)
}
