package axes

import (
	"context"
	"testing"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/axes/internal/log"
	"github.com/vdobler/axes/measure"
)

// fixed measures every character as a 6×10 cell.
var fixed = measure.Fixed{CharWidth: 6, LineHeight: 10}

// testStyle returns a style without fonts; tests measure with fixed.
func testStyle() *Style {
	s := &Style{}
	s.ChartPadding = 10
	s.PlotMargin = 3
	s.AxisTitlePadding = 10
	s.AxisTickPadding = 4
	s.AxisTickMarkLength = 3
	s.XAxis.TitleVisible = true
	s.XAxis.TicksVisible = true
	s.XAxis.TickSpacingHint = 74
	s.YAxis.TitleVisible = true
	s.YAxis.TicksVisible = true
	s.YAxis.TickSpacingHint = 44
	s.Legend.Position = OutsideE
	s.YAxisGroups = map[int]YAxisPosition{}
	return s
}

func testChart(kind ChartKind, sty *Style) *Chart {
	ch := NewChart(kind, sty)
	ch.Measurer = fixed
	return ch
}

func testContext(t *testing.T) context.Context {
	return log.WithTB(context.Background(), t, nil)
}

// recorder is a Surface remembering all draw calls.
type recorder struct {
	calls []call
}

type call struct {
	text   string // text of a FillText call, empty for lines
	pt     vg.Point
	line   [4]vg.Length
	isText bool
}

func (r *recorder) FillText(sty draw.TextStyle, pt vg.Point, txt string) {
	r.calls = append(r.calls, call{text: txt, pt: pt, isText: true})
}

func (r *recorder) StrokeLine2(sty draw.LineStyle, x1, y1, x2, y2 vg.Length) {
	r.calls = append(r.calls, call{line: [4]vg.Length{x1, y1, x2, y2}})
}

// texts returns the index of every FillText call by text.
func (r *recorder) texts() map[string][]int {
	m := make(map[string][]int)
	for i, c := range r.calls {
		if c.isText {
			m[c.text] = append(m[c.text], i)
		}
	}
	return m
}

// recordingPainter paints in chart coordinates onto a recorder whose y
// axis points up, like a vg canvas of the given height.
func recordingPainter(height float64) (Painter, *recorder) {
	rec := &recorder{}
	return Painter{Surface: rec, Origin: vg.Point{X: 0, Y: vg.Length(height)}}, rec
}
