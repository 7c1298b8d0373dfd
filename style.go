package axes

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls how the axes of a Chart are laid out and drawn.
// Lengths are in vg points.
type Style struct {
	Background color.Color

	Title        draw.TextStyle
	TitlePadding float64

	ChartPadding float64 // ChartPadding separates the chart from the surface edges.
	PlotMargin   float64 // PlotMargin separates the plot area from the axes.
	PlotBorder   draw.LineStyle

	AxisTitle        draw.TextStyle
	AxisTitlePadding float64

	TickLabel          draw.TextStyle
	TickLine           draw.LineStyle
	AxisTickPadding    float64 // between tick mark and tick label
	AxisTickMarkLength float64

	XAxis struct {
		TitleVisible    bool
		TicksVisible    bool
		Logarithmic     bool
		LabelRotation   float64 // in degrees, counter-clockwise
		TickSpacingHint float64 // minimal distance of two labeled ticks
	}

	YAxis struct {
		TitleVisible    bool
		TicksVisible    bool
		Logarithmic     bool
		TickSpacingHint float64
	}

	Legend struct {
		Position LegendPosition
		Visible  bool
	}

	// YAxisGroups places Y-axis groups left or right of the plot.
	// Groups not listed are placed left.
	YAxisGroups map[int]YAxisPosition

	// DatePattern is the time layout of date tick labels. If empty a
	// layout is chosen from the span of the axis.
	DatePattern string
}

// YAxisGroupPosition returns the placement of the Y-axis group yIndex.
func (s *Style) YAxisGroupPosition(yIndex int) YAxisPosition {
	if p, ok := s.YAxisGroups[yIndex]; ok {
		return p
	}
	return Left
}

// xLabelRotation is the rotation of X tick labels in radians.
func (s *Style) xLabelRotation() float64 {
	return s.XAxis.LabelRotation * math.Pi / 180
}

// DefaultStyle returns the default Style. The baseFontSize is the font size
// for axis titles, the chart title is a bit bigger, tick labels a bit
// smaller.
func DefaultStyle(baseFontSize vg.Length) *Style {
	cfg := DefaultConfig()
	cfg.Font.Size = float64(baseFontSize)
	sty, err := cfg.Style()
	if err != nil {
		panic(err)
	}
	return sty
}

func newStyle(titleFont, baseFont, tickFont vg.Font) *Style {
	s := &Style{}
	s.Background = color.White

	s.Title.Color = color.Black
	s.Title.Font = titleFont
	s.Title.XAlign = draw.XCenter
	s.Title.YAlign = draw.YTop

	s.PlotBorder.Color = color.Gray16{0x1111}
	s.PlotBorder.Width = vg.Length(1)

	s.AxisTitle.Color = color.Black
	s.AxisTitle.Font = baseFont
	s.AxisTitle.XAlign = draw.XCenter
	s.AxisTitle.YAlign = draw.YCenter

	s.TickLabel.Color = color.Black
	s.TickLabel.Font = tickFont

	s.TickLine.Color = color.Gray16{0x1111}
	s.TickLine.Width = vg.Length(1)

	return s
}

// ----------------------------------------------------------------------------
// Placement enums

// LegendPosition is the placement of the legend relative to the plot.
// Only the Outside positions take space away from the axes.
type LegendPosition int

const (
	OutsideE LegendPosition = iota
	InsideNW
	InsideNE
	InsideSE
	InsideSW
	InsideN
	InsideS
	OutsideS
)

var legendPositionNames = []string{
	"OutsideE", "InsideNW", "InsideNE", "InsideSE",
	"InsideSW", "InsideN", "InsideS", "OutsideS",
}

func (p LegendPosition) String() string {
	if p < 0 || int(p) >= len(legendPositionNames) {
		return fmt.Sprintf("LegendPosition(%d)", int(p))
	}
	return legendPositionNames[p]
}

// ParseLegendPosition parses the name of a legend position, ignoring case.
func ParseLegendPosition(s string) (LegendPosition, error) {
	for i, name := range legendPositionNames {
		if strings.EqualFold(name, s) {
			return LegendPosition(i), nil
		}
	}
	return 0, fmt.Errorf("unknown legend position %q", s)
}

// YAxisPosition places a Y-axis group left or right of the plot.
type YAxisPosition int

const (
	Left YAxisPosition = iota
	Right
)

func (p YAxisPosition) String() string {
	if p == Right {
		return "right"
	}
	return "left"
}

// ParseYAxisPosition parses "left" or "right", ignoring case.
func ParseYAxisPosition(s string) (YAxisPosition, error) {
	switch strings.ToLower(s) {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return 0, fmt.Errorf("unknown y-axis position %q", s)
}
