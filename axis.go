package axes

import (
	"context"
	"math"

	"cdr.dev/slog"

	"github.com/vdobler/axes/internal/log"
)

// seedYAxisWidth is the Y-axis width assumed before any label has been
// measured.
const seedYAxisWidth = 60

// layoutRounds is the number of X/Y refinement rounds of a Y-axis layout.
const layoutRounds = 2

// Axis is one axis of a Chart: the X-axis or the Y-axis of one Y-axis
// group. It owns its title and ticks and resolves its bounds in two
// phases: Prepare computes the bounds without drawing, Paint draws and
// corrects the width of Y-axes to what was actually drawn.
type Axis struct {
	chart     *Chart
	direction Direction
	yIndex    int
	dataType  DataType

	// Range is the data range covered by the series bound to the axis.
	Range Interval

	bounds Rect
	title  *AxisTitle
	tick   *AxisTick

	calc TickCalculator
}

func newAxis(ch *Chart, dir Direction, yIndex int) *Axis {
	a := &Axis{
		chart:     ch,
		direction: dir,
		yIndex:    yIndex,
		Range:     UnsetInterval(),
	}
	a.title = &AxisTitle{axis: a}
	a.tick = &AxisTick{axis: a}
	return a
}

func (a *Axis) Direction() Direction { return a.direction }
func (a *Axis) YIndex() int { return a.yIndex }
func (a *Axis) DataType() DataType { return a.dataType }
func (a *Axis) Bounds() Rect { return a.bounds }
func (a *Axis) Title() *AxisTitle { return a.title }
func (a *Axis) Tick() *AxisTick { return a.tick }
func (a *Axis) name() string { return a.direction.String() }
func (a *Axis) logarithmic() bool { return a.chart.logarithmic(a.direction) }
func (a *Axis) position() YAxisPosition { return a.chart.Style.YAxisGroupPosition(a.yIndex) }

// TickCalculator returns the calculator of the last layout step. For the
// X-axis after Paint this is the calculator for the final width.
func (a *Axis) TickCalculator() TickCalculator { return a.calc }

// ResetRange resets the range to [+Inf,-Inf] before the ranges of the
// series are added.
func (a *Axis) ResetRange() {
	a.Range = UnsetInterval()
}

// AddRange widens the range to include [min,max]. NaN values never widen
// the range.
func (a *Axis) AddRange(min, max float64) {
	if min < a.Range.Min {
		a.Range.Min = min
	}
	if max > a.Range.Max {
		a.Range.Max = max
	}
}

// SetDataType binds data of type dt to the axis. All series of an axis
// must share one data type.
func (a *Axis) SetDataType(dt DataType) error {
	if dt != Unset && a.dataType != Unset && a.dataType != dt {
		return &DataTypeError{Axis: a.name(), Have: a.dataType, Want: dt}
	}
	if dt != Unset {
		a.dataType = dt
	}
	return nil
}

// CalculatorKind returns the tick calculator strategy of the axis.
func (a *Axis) CalculatorKind() CalculatorKind {
	return selectCalculator(a.direction, a.chart.Kind == CategoryChart, a.dataType, a.logarithmic())
}

// newTickCalculator builds the tick calculator for a working space.
func (a *Axis) newTickCalculator(space float64) TickCalculator {
	sty := a.chart.Style
	switch a.CalculatorKind() {
	case CategoryCalculator:
		return NewCategoryTicks(a.direction, space, a.chart.categories(), sty)
	case DateCalculator:
		return NewDateTicks(a.direction, space, a.Range, sty)
	case LogCalculator:
		return NewLogTicks(a.direction, space, a.Range, sty)
	}
	return NewNumberTicks(a.direction, space, a.Range, sty)
}

// hint estimates the extent of the axis across its direction when laid
// out along space: title plus tick labels.
func (a *Axis) hint(space float64) float64 {
	a.calc = a.newTickCalculator(space)
	return a.title.thickness() + a.tick.sizeHint(a.calc)
}

// xAxisHeightHint estimates the height of the X-axis for a given width.
// Tick labels may be rotated, so the labels have to be generated and
// measured to know how tall the X-axis will be.
func (a *Axis) xAxisHeightHint(width float64) float64 {
	return a.hint(width)
}

// yAxisWidthHint estimates the width of a Y-axis for a given height.
func (a *Axis) yAxisWidthHint(height float64) float64 {
	return a.hint(height)
}

// Prepare computes the bounds of the axis without drawing anything.
// Y-axes must be prepared first; their x offset is left at 0 for the chart
// to place them. The X-axis is then fitted below the placed Y-axes.
func (a *Axis) Prepare(ctx context.Context) Rect {
	if a.direction == Vertical {
		a.bounds = a.prepareY(ctx)
	} else {
		a.bounds = a.prepareX()
	}
	log.Debug(ctx, "prepared axis",
		slog.F("axis", a.name()),
		slog.F("y_index", a.yIndex),
		slog.F("bounds", a.bounds.String()),
	)
	return a.bounds
}

func (a *Axis) prepareY(ctx context.Context) Rect {
	ch, sty := a.chart, a.chart.Style
	legend := ch.legendBounds()

	y := ch.TitleBounds().H + sty.ChartPadding

	// The X-axis height depends on the width left over by the Y-axis and
	// the Y-axis width depends on the height left over by the X-axis.
	// Label geometry hardly depends on the width within the range
	// explored, so the second estimate is used as is. This is a fixed
	// number of rounds, not a convergence test.
	width := float64(seedYAxisWidth)
	var height float64
	for round := layoutRounds - 1; round >= 0; round-- {
		approxXWidth := ch.width - width - 2*sty.ChartPadding
		if sty.Legend.Position == OutsideE {
			approxXWidth -= legend.W
			if sty.Legend.Visible {
				approxXWidth -= sty.ChartPadding
			}
		}
		if sty.YAxis.TicksVisible {
			approxXWidth -= sty.PlotMargin
		}

		height = ch.height - y - ch.xAxis.xAxisHeightHint(approxXWidth) - sty.PlotMargin - sty.ChartPadding
		if sty.Legend.Position == OutsideS {
			height -= legend.H
		}

		width = a.yAxisWidthHint(height)
		log.Debug(ctx, "y-axis layout round",
			slog.F("y_index", a.yIndex),
			slog.F("round", round),
			slog.F("approx_x_width", approxXWidth),
			slog.F("width", width),
			slog.F("height", height),
		)
	}
	return Rect{X: 0, Y: y, W: width, H: height}
}

func (a *Axis) prepareX() Rect {
	ch, sty := a.chart, a.chart.Style
	legend := ch.legendBounds()
	left, right := ch.LeftYAxisBounds(), ch.RightYAxisBounds()

	maxYBottom := math.Max(left.Bottom(), right.Bottom())
	x := left.W + sty.ChartPadding
	y := maxYBottom + sty.PlotMargin
	if sty.Legend.Position == OutsideS {
		y -= legend.H
	}

	var legendWidth float64
	if sty.Legend.Position == OutsideE && sty.Legend.Visible {
		legendWidth = legend.W + sty.ChartPadding
	}
	width := ch.width - left.W - right.W - 2*sty.ChartPadding - legendWidth

	// The Y-axes are already sized, so the remaining height is known.
	height := ch.height - maxYBottom - sty.ChartPadding - sty.PlotMargin

	return Rect{X: x, Y: y, W: width, H: height}
}

// Paint draws the axis into final, the bounds from Prepare after the chart
// placed the axis, and returns the bounds actually covered.
// A Y-axis group on the right draws its ticks first and its title outside
// of them, a group on the left draws the title first, so that in both
// cases the title sits on the outer edge.
func (a *Axis) Paint(ctx context.Context, p Painter, final Rect) Rect {
	a.bounds = final
	if a.direction == Horizontal {
		a.calc = a.newTickCalculator(final.W)
		a.title.paint(p, final, false)
		a.tick.paint(p, a.calc, final, false)
		return a.bounds
	}

	calc := a.newTickCalculator(final.H)
	var title, tick Rect
	if a.position() == Right {
		tick = a.tick.paint(p, calc, final, true)
		slot := final
		slot.X = tick.Right()
		title = a.title.paint(p, slot, true)
	} else {
		title = a.title.paint(p, final, false)
		slot := final
		slot.X = title.Right()
		tick = a.tick.paint(p, calc, slot, false)
	}

	// Now the real width is known.
	width := tick.W
	if a.chart.Style.YAxis.TitleVisible {
		width += title.W
	}
	a.bounds.W = width
	log.Debug(ctx, "painted y-axis",
		slog.F("y_index", a.yIndex),
		slog.F("estimated_width", final.W),
		slog.F("width", width),
	)
	return a.bounds
}
