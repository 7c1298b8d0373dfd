// Command axesdemo renders a chart with one or two Y-axis groups to PNG.
//
//	axesdemo -o chart.png -width 800 -height 600 -config style.yaml \
//		-rotation 45 -ylog -legend OutsideE -right
package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"cdr.dev/slog"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/pflag"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/vdobler/axes"
	"github.com/vdobler/axes/internal/log"
	"github.com/vdobler/axes/measure"
)

type options struct {
	out        string
	width      float64
	height     float64
	config     string
	rotation   float64
	ylog       bool
	legend     string
	right      bool
	date       bool
	category   bool
	truetype   bool
	noLegend   bool
	swatchSize float64
}

func main() {
	ctx := log.Stderr(context.Background())
	if err := run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		log.Error(ctx, "axesdemo failed", slog.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	opts, fs := options{}, pflag.NewFlagSet("axesdemo", pflag.ContinueOnError)
	fs.StringVarP(&opts.out, "out", "o", "chart.png", "output PNG file")
	fs.Float64Var(&opts.width, "width", 800, "width of the chart in points")
	fs.Float64Var(&opts.height, "height", 600, "height of the chart in points")
	fs.StringVarP(&opts.config, "config", "c", "", "YAML style configuration")
	fs.Float64Var(&opts.rotation, "rotation", 0, "rotation of the x tick labels in degrees")
	fs.BoolVar(&opts.ylog, "ylog", false, "logarithmic y-axes")
	fs.StringVar(&opts.legend, "legend", "", "legend position, e.g. OutsideE or InsideNW")
	fs.BoolVar(&opts.noLegend, "no-legend", false, "hide the legend")
	fs.BoolVar(&opts.right, "right", false, "place the secondary y-axis group on the right")
	fs.BoolVar(&opts.date, "date", false, "use a date x-axis")
	fs.BoolVar(&opts.category, "category", false, "use a category x-axis")
	fs.BoolVar(&opts.truetype, "truetype", false, "measure text with the Go fonts")
	fs.Float64Var(&opts.swatchSize, "swatch", 16, "width of the legend line samples")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sty, err := loadStyle(opts, fs)
	if err != nil {
		return err
	}

	kind := axes.XYChart
	if opts.category {
		kind = axes.CategoryChart
	}
	ch := axes.NewChart(kind, sty)
	ch.Title = "Axes Demo"
	ch.XAxisTitle = "Time"
	ch.YAxisTitles[0] = "Temperature"
	ch.YAxisTitles[1] = "Pressure"
	if opts.truetype {
		tt, err := measure.NewTrueType()
		if err != nil {
			return err
		}
		ch.Measurer = tt
	}

	series, err := demoSeries(opts)
	if err != nil {
		return err
	}
	for _, s := range series {
		if err := ch.AddSeries(s); err != nil {
			return err
		}
	}
	ch.Legend = legendSize(ch, opts.swatchSize)

	img := vgimg.New(vg.Length(opts.width), vg.Length(opts.height))
	dc := draw.New(img)
	if sty.Background != nil {
		dc.SetColor(sty.Background)
		dc.Fill(dc.Rectangle.Path())
	}
	if err := ch.Draw(ctx, dc); err != nil {
		return err
	}
	p := axes.NewPainter(&dc)
	drawSeries(ch, p, &dc)
	if sty.Legend.Visible {
		drawLegend(ch, p, &dc, opts.swatchSize)
	}

	f, err := os.Create(opts.out)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		return fmt.Errorf("writing %s: %w", opts.out, err)
	}
	log.Info(ctx, "wrote chart",
		slog.F("file", opts.out),
		slog.F("plot", ch.PlotBounds().String()),
	)
	return nil
}

// loadStyle reads the configuration file, if any, and applies the flags
// given on the command line on top of it.
func loadStyle(opts options, fs *pflag.FlagSet) (*axes.Style, error) {
	cfg := axes.DefaultConfig()
	if opts.config != "" {
		f, err := os.Open(opts.config)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if cfg, err = axes.LoadConfig(f); err != nil {
			return nil, fmt.Errorf("%s: %w", opts.config, err)
		}
	}
	if fs.Changed("rotation") {
		cfg.XAxis.LabelRotation = opts.rotation
	}
	if fs.Changed("ylog") {
		cfg.YAxis.Logarithmic = opts.ylog
	}
	if fs.Changed("legend") {
		cfg.Legend.Position = opts.legend
	}
	if opts.noLegend {
		cfg.Legend.Visible = false
	}
	if opts.right {
		if cfg.YAxisGroups == nil {
			cfg.YAxisGroups = make(map[int]string)
		}
		cfg.YAxisGroups[1] = axes.Right.String()
	}
	return cfg.Style()
}

func demoSeries(opts options) ([]*axes.Series, error) {
	const n = 25
	x := make([]float64, n)
	temp := make([]float64, n)
	pres := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
		temp[i] = 20 + 8*math.Sin(float64(i)/4)
		pres[i] = 950 + 60*math.Exp(float64(i)/12)
	}

	var a, b *axes.Series
	var errA, errB error
	switch {
	case opts.category:
		cats := make([]string, n)
		for i := range cats {
			cats[i] = fmt.Sprintf("W%02d", i+1)
		}
		a, errA = axes.NewCategorySeries("temperature", cats, temp)
		b, errB = axes.NewCategorySeries("pressure", cats, pres)
	case opts.date:
		start := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)
		t := make([]time.Time, n)
		for i := range t {
			t[i] = start.AddDate(0, 0, 7*i)
		}
		a, errA = axes.NewDateSeries("temperature", t, temp)
		b, errB = axes.NewDateSeries("pressure", t, pres)
	default:
		a, errA = axes.NewNumberSeries("temperature", x, temp)
		b, errB = axes.NewNumberSeries("pressure", x, pres)
	}
	if errA != nil {
		return nil, errA
	}
	if errB != nil {
		return nil, errB
	}
	b.YIndex = 1
	return []*axes.Series{a, b}, nil
}

func drawSeries(ch *axes.Chart, p axes.Painter, dc *draw.Canvas) {
	for i, s := range ch.Series() {
		pa, ok := ch.PlotArea(s.YIndex)
		if !ok {
			continue
		}
		var pts []vg.Point
		for _, xy := range s.XY {
			px, py, ok := pa.MapXY(xy.X, xy.Y)
			if !ok {
				continue
			}
			pts = append(pts, p.Point(px, py))
		}
		if len(pts) > 1 {
			dc.StrokeLines(seriesLine(i), pts)
		}
	}
}

// seriesLine spreads the series hues by the golden angle.
func seriesLine(i int) draw.LineStyle {
	c := colorful.Hcl(math.Mod(30+137.5*float64(i), 360), 0.6, 0.55).Clamped()
	return draw.LineStyle{Color: c, Width: vg.Points(1.5)}
}

// legendSize measures a legend with one line per series.
func legendSize(ch *axes.Chart, swatch float64) axes.Rect {
	var w, h float64
	for _, s := range ch.Series() {
		sw, sh := ch.Measurer.Measure(s.Name, ch.Style.TickLabel, 0)
		w = math.Max(w, sw)
		h += sh
	}
	if h == 0 {
		return axes.Rect{}
	}
	return axes.Rect{W: swatch + ch.Style.AxisTickPadding + w, H: h}
}

func drawLegend(ch *axes.Chart, p axes.Painter, dc *draw.Canvas, swatch float64) {
	sty, plot, lg := ch.Style, ch.PlotBounds(), ch.Legend
	var x, y float64
	switch sty.Legend.Position {
	case axes.OutsideE:
		x, y = float64(dc.Size().X)-sty.ChartPadding-lg.W, plot.Y
	case axes.OutsideS:
		x, y = plot.X+(plot.W-lg.W)/2, ch.XAxis().Bounds().Bottom()
	case axes.InsideNW:
		x, y = plot.X+sty.PlotMargin, plot.Y+sty.PlotMargin
	case axes.InsideNE:
		x, y = plot.Right()-lg.W-sty.PlotMargin, plot.Y+sty.PlotMargin
	case axes.InsideSW:
		x, y = plot.X+sty.PlotMargin, plot.Bottom()-lg.H-sty.PlotMargin
	case axes.InsideSE:
		x, y = plot.Right()-lg.W-sty.PlotMargin, plot.Bottom()-lg.H-sty.PlotMargin
	case axes.InsideN:
		x, y = plot.X+(plot.W-lg.W)/2, plot.Y+sty.PlotMargin
	case axes.InsideS:
		x, y = plot.X+(plot.W-lg.W)/2, plot.Bottom()-lg.H-sty.PlotMargin
	}

	text := sty.TickLabel
	text.XAlign, text.YAlign = draw.XLeft, draw.YCenter
	for i, s := range ch.Series() {
		_, h := ch.Measurer.Measure(s.Name, text, 0)
		mid := y + h/2
		a, b := p.Point(x, mid), p.Point(x+swatch, mid)
		dc.StrokeLine2(seriesLine(i), a.X, a.Y, b.X, b.Y)
		dc.FillText(text, p.Point(x+swatch+sty.AxisTickPadding, mid), s.Name)
		y += h
	}
}
