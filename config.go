package axes

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"sort"

	"github.com/mazznoer/csscolorparser"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"
)

// Config is the serializable form of a Style. Fonts are given by name and
// base size; the remaining fields map one to one onto Style.
type Config struct {
	Font struct {
		Name string  `yaml:"name"`
		Size float64 `yaml:"size"`
	} `yaml:"font"`

	// Colors are CSS color strings like "white", "#111" or "rgb(0,0,0)".
	Colors struct {
		Background string `yaml:"background"`
		Text       string `yaml:"text"`
		Line       string `yaml:"line"`
	} `yaml:"colors"`

	ChartPadding       float64 `yaml:"chart-padding"`
	PlotMargin         float64 `yaml:"plot-margin"`
	TitlePadding       float64 `yaml:"title-padding"`
	AxisTitlePadding   float64 `yaml:"axis-title-padding"`
	AxisTickPadding    float64 `yaml:"axis-tick-padding"`
	AxisTickMarkLength float64 `yaml:"axis-tick-mark-length"`

	XAxis AxisConfig `yaml:"x-axis"`
	YAxis AxisConfig `yaml:"y-axis"`

	Legend struct {
		Position string `yaml:"position"`
		Visible  bool   `yaml:"visible"`
	} `yaml:"legend"`

	// YAxisGroups maps a Y index to "left" or "right".
	YAxisGroups map[int]string `yaml:"y-axis-groups"`

	DatePattern string `yaml:"date-pattern"`
}

// AxisConfig holds the per axis settings.
type AxisConfig struct {
	TitleVisible    bool    `yaml:"title-visible"`
	TicksVisible    bool    `yaml:"ticks-visible"`
	Logarithmic     bool    `yaml:"logarithmic"`
	LabelRotation   float64 `yaml:"label-rotation"` // degrees, X-axis only
	TickSpacingHint float64 `yaml:"tick-spacing-hint"`
}

// DefaultConfig returns the configuration of the default style.
func DefaultConfig() *Config {
	c := &Config{
		ChartPadding:       10,
		PlotMargin:         3,
		TitlePadding:       5,
		AxisTitlePadding:   10,
		AxisTickPadding:    4,
		AxisTickMarkLength: 3,
		XAxis: AxisConfig{
			TitleVisible:    true,
			TicksVisible:    true,
			TickSpacingHint: 74,
		},
		YAxis: AxisConfig{
			TitleVisible:    true,
			TicksVisible:    true,
			TickSpacingHint: 44,
		},
	}
	c.Font.Name = "Helvetica"
	c.Font.Size = 12
	c.Colors.Background = "white"
	c.Colors.Text = "black"
	c.Colors.Line = "#111111"
	c.Legend.Position = OutsideE.String()
	c.Legend.Visible = true
	return c
}

// LoadConfig reads a YAML configuration from r. Fields missing in r keep
// their default values.
func LoadConfig(r io.Reader) (*Config, error) {
	c := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, &ConfigError{Message: "malformed yaml", Err: fmt.Errorf("%w: %v", ErrConfig, err)}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Font.Name == "" {
		return &ConfigError{Field: "font.name", Message: "required field is missing"}
	}
	if c.Font.Size <= 0 {
		return &ConfigError{Field: "font.size", Message: "must be positive"}
	}
	for _, f := range []struct {
		name, value string
	}{
		{"colors.background", c.Colors.Background},
		{"colors.text", c.Colors.Text},
		{"colors.line", c.Colors.Line},
	} {
		if _, err := parseColor(f.value); err != nil {
			return &ConfigError{Field: f.name, Message: err.Error()}
		}
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"chart-padding", c.ChartPadding},
		{"plot-margin", c.PlotMargin},
		{"title-padding", c.TitlePadding},
		{"axis-title-padding", c.AxisTitlePadding},
		{"axis-tick-padding", c.AxisTickPadding},
		{"axis-tick-mark-length", c.AxisTickMarkLength},
	} {
		if f.value < 0 || math.IsNaN(f.value) {
			return &ConfigError{Field: f.name, Message: "must not be negative"}
		}
	}
	if c.XAxis.TickSpacingHint <= 0 {
		return &ConfigError{Field: "x-axis.tick-spacing-hint", Message: "must be positive"}
	}
	if c.YAxis.TickSpacingHint <= 0 {
		return &ConfigError{Field: "y-axis.tick-spacing-hint", Message: "must be positive"}
	}
	if c.YAxis.LabelRotation != 0 {
		return &ConfigError{Field: "y-axis.label-rotation", Message: "only the x-axis supports label rotation"}
	}
	if _, err := ParseLegendPosition(c.Legend.Position); err != nil {
		return &ConfigError{Field: "legend.position", Message: err.Error()}
	}
	groups := make([]int, 0, len(c.YAxisGroups))
	for i := range c.YAxisGroups {
		groups = append(groups, i)
	}
	sort.Ints(groups)
	for _, i := range groups {
		if i < 0 {
			return &ConfigError{Field: "y-axis-groups", Message: fmt.Sprintf("negative y index %d", i)}
		}
		if _, err := ParseYAxisPosition(c.YAxisGroups[i]); err != nil {
			return &ConfigError{Field: "y-axis-groups", Message: err.Error()}
		}
	}
	return nil
}

// Style builds the Style described by c.
func (c *Config) Style() (*Style, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	base := vg.Length(c.Font.Size)
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(math.Round(f * float64(x)))
	}
	titleFont, err := vg.MakeFont(c.Font.Name, scale(base, 1.2))
	if err != nil {
		return nil, &ConfigError{Field: "font.name", Message: err.Error(), Err: fmt.Errorf("%w: %v", ErrConfig, err)}
	}
	baseFont, err := vg.MakeFont(c.Font.Name, base)
	if err != nil {
		return nil, &ConfigError{Field: "font.name", Message: err.Error(), Err: fmt.Errorf("%w: %v", ErrConfig, err)}
	}
	tickFont, err := vg.MakeFont(c.Font.Name, scale(base, 1/1.2))
	if err != nil {
		return nil, &ConfigError{Field: "font.name", Message: err.Error(), Err: fmt.Errorf("%w: %v", ErrConfig, err)}
	}

	s := newStyle(titleFont, baseFont, tickFont)
	s.Background, _ = parseColor(c.Colors.Background)
	text, _ := parseColor(c.Colors.Text)
	s.Title.Color, s.AxisTitle.Color, s.TickLabel.Color = text, text, text
	line, _ := parseColor(c.Colors.Line)
	s.TickLine.Color, s.PlotBorder.Color = line, line
	s.ChartPadding = c.ChartPadding
	s.PlotMargin = c.PlotMargin
	s.TitlePadding = c.TitlePadding
	s.AxisTitlePadding = c.AxisTitlePadding
	s.AxisTickPadding = c.AxisTickPadding
	s.AxisTickMarkLength = c.AxisTickMarkLength

	s.XAxis.TitleVisible = c.XAxis.TitleVisible
	s.XAxis.TicksVisible = c.XAxis.TicksVisible
	s.XAxis.Logarithmic = c.XAxis.Logarithmic
	s.XAxis.LabelRotation = c.XAxis.LabelRotation
	s.XAxis.TickSpacingHint = c.XAxis.TickSpacingHint

	s.YAxis.TitleVisible = c.YAxis.TitleVisible
	s.YAxis.TicksVisible = c.YAxis.TicksVisible
	s.YAxis.Logarithmic = c.YAxis.Logarithmic
	s.YAxis.TickSpacingHint = c.YAxis.TickSpacingHint

	s.Legend.Position, _ = ParseLegendPosition(c.Legend.Position)
	s.Legend.Visible = c.Legend.Visible

	s.YAxisGroups = make(map[int]YAxisPosition, len(c.YAxisGroups))
	for i, p := range c.YAxisGroups {
		s.YAxisGroups[i], _ = ParseYAxisPosition(p)
	}
	s.DatePattern = c.DatePattern
	return s, nil
}

// parseColor parses a CSS color. The empty string is transparent.
func parseColor(s string) (color.Color, error) {
	if s == "" {
		return color.Transparent, nil
	}
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return nil, err
	}
	r, g, b, a := c.RGBA255()
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
