package axes

import (
	"context"
	"fmt"
	"math"
	"sort"

	"cdr.dev/slog"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/axes/internal/log"
	"github.com/vdobler/axes/measure"
)

// ChartKind distinguishes charts with a continuous X-axis from charts with
// one X slot per category.
type ChartKind int

const (
	XYChart ChartKind = iota
	CategoryChart
)

// ----------------------------------------------------------------------------
// Chart

// Chart composes one X-axis and one Y-axis per Y-axis group around a plot
// area. Drawing the chart lays out and draws the axes; legend and series
// are drawn by the caller into the PlotBounds.
type Chart struct {
	Kind ChartKind

	Title       string
	XAxisTitle  string
	YAxisTitles map[int]string // YAxisTitles maps a Y index to its title.

	Style    *Style
	Measurer measure.Measurer

	// Legend is the size of the legend as computed by whoever renders the
	// legend. It takes space away from the axes only if the legend is
	// visible and placed outside.
	Legend Rect

	width, height float64
	series        []*Series
	xAxis         *Axis
	yAxes         map[int]*Axis
}

// NewChart returns an empty chart of the given kind with the primary
// Y-axis group 0. A nil style means DefaultStyle(12).
func NewChart(kind ChartKind, sty *Style) *Chart {
	if sty == nil {
		sty = DefaultStyle(12)
	}
	ch := &Chart{
		Kind:        kind,
		YAxisTitles: make(map[int]string),
		Style:       sty,
		Measurer:    measure.VG{},
		yAxes:       make(map[int]*Axis),
	}
	ch.xAxis = newAxis(ch, Horizontal, 0)
	ch.yAxes[0] = newAxis(ch, Vertical, 0)
	return ch
}

// XAxis returns the X-axis.
func (ch *Chart) XAxis() *Axis { return ch.xAxis }

// YAxis returns the Y-axis of group yIndex or nil if there is none.
func (ch *Chart) YAxis(yIndex int) *Axis { return ch.yAxes[yIndex] }

// YIndices returns the indices of all Y-axis groups in increasing order.
func (ch *Chart) YIndices() []int {
	idx := make([]int, 0, len(ch.yAxes))
	for i := range ch.yAxes {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	return idx
}

// YAxisGroupTitle returns the title of the Y-axis group yIndex.
func (ch *Chart) YAxisGroupTitle(yIndex int) string {
	return ch.YAxisTitles[yIndex]
}

// Series returns the series added to ch.
func (ch *Chart) Series() []*Series { return ch.series }

// AddSeries binds s to the X-axis and to the Y-axis group s.YIndex.
// Binding data of a different type than the series already bound to the
// X-axis fails with an error wrapping ErrMixedDataTypes.
func (ch *Chart) AddSeries(s *Series) error {
	if err := s.validate(); err != nil {
		return err
	}
	if s.xType() == Category && ch.Kind != CategoryChart {
		return fmt.Errorf("%w: category series %q needs a category chart", ErrInvalidSeries, s.Name)
	}
	if err := ch.xAxis.SetDataType(s.xType()); err != nil {
		return fmt.Errorf("series %q: %w", s.Name, err)
	}

	y, ok := ch.yAxes[s.YIndex]
	if !ok {
		y = newAxis(ch, Vertical, s.YIndex)
		ch.yAxes[s.YIndex] = y
	}
	if err := y.SetDataType(Number); err != nil {
		return fmt.Errorf("series %q: %w", s.Name, err)
	}

	ch.series = append(ch.series, s)
	ch.updateRanges()
	return nil
}

// updateRanges recomputes the ranges of all axes from the series.
// Category X data has no meaningful range and is skipped.
func (ch *Chart) updateRanges() {
	ch.xAxis.ResetRange()
	for _, y := range ch.yAxes {
		y.ResetRange()
	}
	for _, s := range ch.series {
		xmin, xmax, ymin, ymax := s.DataRange()
		if ch.xAxis.DataType() != Category {
			ch.xAxis.AddRange(xmin, xmax)
		}
		ch.yAxes[s.YIndex].AddRange(ymin, ymax)
	}
}

// categories returns the shared category labels, taken from the first
// series.
func (ch *Chart) categories() []string {
	if len(ch.series) == 0 {
		return nil
	}
	return categoryLabels(ch.series[0], ch.Style.DatePattern)
}

func (ch *Chart) logarithmic(dir Direction) bool {
	if dir == Horizontal {
		return ch.Style.XAxis.Logarithmic
	}
	return ch.Style.YAxis.Logarithmic
}

// legendBounds is the legend size, or zero if the legend is hidden.
func (ch *Chart) legendBounds() Rect {
	if !ch.Style.Legend.Visible {
		return Rect{}
	}
	return ch.Legend
}

// TitleBounds returns the bounds of the chart title, which are empty if
// there is no title.
func (ch *Chart) TitleBounds() Rect {
	if ch.Title == "" {
		return Rect{}
	}
	_, h := ch.Measurer.Measure(ch.Title, ch.Style.Title, 0)
	return Rect{X: 0, Y: ch.Style.ChartPadding, W: ch.width, H: h + ch.Style.TitlePadding}
}

// LeftYAxisBounds returns the combined bounds of the Y-axis groups placed
// left of the plot.
func (ch *Chart) LeftYAxisBounds() Rect { return ch.yGroupBounds(Left) }

// RightYAxisBounds returns the combined bounds of the Y-axis groups placed
// right of the plot.
func (ch *Chart) RightYAxisBounds() Rect { return ch.yGroupBounds(Right) }

func (ch *Chart) yGroupBounds(pos YAxisPosition) Rect {
	var r Rect
	first := true
	for _, i := range ch.YIndices() {
		a := ch.yAxes[i]
		if a.position() != pos {
			continue
		}
		b := a.bounds
		if first {
			r = b
			first = false
			continue
		}
		r.X = math.Min(r.X, b.X)
		r.Y = math.Min(r.Y, b.Y)
		r.W += b.W
		r.H = math.Max(r.H, b.H)
	}
	return r
}

// placeYAxes sets the x offsets of the prepared Y-axes. Left groups are
// stacked from the left chart edge inwards, right groups from the plot
// outwards, both in order of their index.
func (ch *Chart) placeYAxes() {
	sty := ch.Style
	var rightWidth float64
	for _, a := range ch.yAxes {
		if a.position() == Right {
			rightWidth += a.bounds.W
		}
	}

	left := sty.ChartPadding
	right := ch.width - sty.ChartPadding - rightWidth
	if sty.Legend.Position == OutsideE && sty.Legend.Visible {
		right -= ch.Legend.W + sty.ChartPadding
	}
	for _, i := range ch.YIndices() {
		a := ch.yAxes[i]
		if a.position() == Right {
			a.bounds.X = right
			right += a.bounds.W
		} else {
			a.bounds.X = left
			left += a.bounds.W
		}
	}
}

// Layout resolves the bounds of all axes for a surface of the given size:
// all Y-axes first, then the X-axis.
func (ch *Chart) Layout(ctx context.Context, width, height float64) error {
	if !(width > 0 && height > 0) {
		return fmt.Errorf("invalid surface size %gx%g", width, height)
	}
	ch.width, ch.height = width, height
	ch.updateRanges()

	for _, i := range ch.YIndices() {
		ch.yAxes[i].Prepare(ctx)
	}
	ch.placeYAxes()
	ch.xAxis.Prepare(ctx)

	plot := ch.PlotBounds()
	if plot.Empty() {
		log.Warn(ctx, "no room left for the plot area",
			slog.F("width", width),
			slog.F("height", height),
			slog.F("plot", plot.String()),
		)
	}
	log.Debug(ctx, "laid out chart",
		slog.F("width", width),
		slog.F("height", height),
		slog.F("plot", plot.String()),
	)
	return nil
}

// Paint draws title and axes of a laid out chart: Y-axes first, then the
// X-axis, then the plot border.
func (ch *Chart) Paint(ctx context.Context, p Painter) {
	if tb := ch.TitleBounds(); !tb.Empty() {
		p.text(ch.Style.Title, tb.X+tb.W/2, tb.Y, ch.Title)
	}
	for _, i := range ch.YIndices() {
		a := ch.yAxes[i]
		a.Paint(ctx, p, a.bounds)
	}
	ch.xAxis.Paint(ctx, p, ch.xAxis.bounds)

	if ch.Style.PlotBorder.Width > 0 {
		p.rect(ch.Style.PlotBorder, ch.PlotBounds())
	}
}

// Draw lays out the chart for the canvas c and draws it.
func (ch *Chart) Draw(ctx context.Context, c draw.Canvas) error {
	size := c.Size()
	if err := ch.Layout(ctx, float64(size.X), float64(size.Y)); err != nil {
		return err
	}
	ch.Paint(ctx, NewPainter(&c))
	return nil
}
