// Package axes lays out and draws the axes of 2-D charts.
//
// It builds on gonum.org/v1/plot: tick values come from the plot tickers,
// text and lines are drawn with draw.TextStyle and draw.LineStyle onto a
// draw.Canvas.
//
// Layout
//
// The size of the Y-axis depends on the height left over by the X-axis and
// the size of the X-axis depends on the width left over by the Y-axes: tick
// labels of the X-axis may be rotated, so the X-axis gets taller as labels
// get longer. A Chart resolves this cycle in two phases. Prepare sizes every
// Y-axis group first, asking the not yet positioned X-axis for a height
// hint in a fixed number of rounds, then fits the X-axis below the Y-axes.
// Paint draws the Y-axes, correcting their width to what was drawn, and
// finally the X-axis.
//
// Tick Calculators
//
// The ticks of an axis are produced by one of four tick calculators:
//   - NumberTicks    linear ticks from plot.DefaultTicks
//   - LogTicks       powers of ten from plot.LogTicks
//   - DateTicks      time ticks from plot.TimeTicks
//   - CategoryTicks  one tick per category of a CategoryChart
// The calculator is chosen per layout pass from the direction of the axis,
// the kind of chart, the data type of the axis and the logarithmic flags of
// the style. Y-axes only use number or log ticks.
//
// Text is measured by a measure.Measurer; measure.Fixed gives layouts which
// do not depend on fonts.
package axes
