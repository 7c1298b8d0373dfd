package axes

import (
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

const testConfigYAML = `
chart-padding: 4
x-axis:
  label-rotation: 45
  logarithmic: true
y-axis:
  title-visible: false
legend:
  position: outsides
y-axis-groups:
  1: right
  2: Left
date-pattern: "Jan 06"
colors:
  text: "#336699"
`

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(testConfigYAML))
	require.NoError(t, err)

	assert.Equal(t, 4.0, cfg.ChartPadding)
	assert.Equal(t, 3.0, cfg.PlotMargin, "default kept")
	assert.Equal(t, 45.0, cfg.XAxis.LabelRotation)
	assert.True(t, cfg.XAxis.TicksVisible, "default kept")
	assert.False(t, cfg.YAxis.TitleVisible)
	assert.Equal(t, "Helvetica", cfg.Font.Name)

	sty, err := cfg.Style()
	require.NoError(t, err)
	assert.Equal(t, OutsideS, sty.Legend.Position)
	assert.True(t, sty.Legend.Visible)
	assert.True(t, sty.XAxis.Logarithmic)
	assert.Equal(t, Right, sty.YAxisGroupPosition(1))
	assert.Equal(t, Left, sty.YAxisGroupPosition(2))
	assert.Equal(t, Left, sty.YAxisGroupPosition(7))
	assert.Equal(t, "Jan 06", sty.DatePattern)
	assert.Equal(t, color.NRGBA{R: 0x33, G: 0x66, B: 0x99, A: 0xff}, sty.TickLabel.Color)
	assert.Equal(t, sty.TickLabel.Color, sty.AxisTitle.Color)
	assert.InDelta(t, 0.7853981, sty.xLabelRotation(), 1e-6)
}

func TestLoadConfigEmpty(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

var invalidConfigs = []struct {
	yaml  string
	field string
}{
	{"legend:\n  position: nowhere\n", "legend.position"},
	{"chart-padding: -1\n", "chart-padding"},
	{"font:\n  size: 0\n", "font.size"},
	{"font:\n  name: \"\"\n", "font.name"},
	{"x-axis:\n  tick-spacing-hint: 0\n", "x-axis.tick-spacing-hint"},
	{"y-axis:\n  label-rotation: 30\n", "y-axis.label-rotation"},
	{"y-axis-groups:\n  1: top\n", "y-axis-groups"},
	{"y-axis-groups:\n  -1: left\n", "y-axis-groups"},
	{"colors:\n  text: notacolor\n", "colors.text"},
	{"chart-padding: [1, 2]\n", ""},
}

func TestLoadConfigInvalid(t *testing.T) {
	for _, tc := range invalidConfigs {
		t.Run(tc.field, func(t *testing.T) {
			_, err := LoadConfig(strings.NewReader(tc.yaml))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfig), "%v does not wrap ErrConfig", err)

			var cerr *ConfigError
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, tc.field, cerr.Field)
		})
	}
}

func TestValidateReportsFirstField(t *testing.T) {
	for i := 0; i < 20; i++ {
		cfg := DefaultConfig()
		cfg.PlotMargin = -1
		cfg.AxisTickMarkLength = -1
		cfg.Colors.Text = "nope"
		cfg.Colors.Line = "nope"
		cfg.YAxisGroups = map[int]string{3: "up", 1: "down", 2: "left"}

		var cerr *ConfigError
		require.True(t, errors.As(cfg.Validate(), &cerr))
		assert.Equal(t, "colors.text", cerr.Field)

		cfg.Colors.Text, cfg.Colors.Line = "black", "black"
		require.True(t, errors.As(cfg.Validate(), &cerr))
		assert.Equal(t, "plot-margin", cerr.Field)

		cfg.PlotMargin, cfg.AxisTickMarkLength = 0, 0
		require.True(t, errors.As(cfg.Validate(), &cerr))
		assert.Equal(t, "y-axis-groups", cerr.Field)
		assert.Contains(t, cerr.Message, "down")
	}
}

func TestConfigStyle(t *testing.T) {
	sty, err := DefaultConfig().Style()
	require.NoError(t, err)

	assert.Equal(t, vg.Length(14), sty.Title.Font.Size)
	assert.Equal(t, vg.Length(12), sty.AxisTitle.Font.Size)
	assert.Equal(t, vg.Length(10), sty.TickLabel.Font.Size)
	assert.Equal(t, 10.0, sty.ChartPadding)
	assert.Equal(t, 74.0, sty.XAxis.TickSpacingHint)
	assert.Equal(t, 44.0, sty.YAxis.TickSpacingHint)
	assert.Equal(t, OutsideE, sty.Legend.Position)
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, sty.Background)
	assert.Equal(t, color.NRGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}, sty.TickLine.Color)

	cfg := DefaultConfig()
	cfg.Font.Name = "NoSuchFont"
	_, err = cfg.Style()
	assert.True(t, errors.Is(err, ErrConfig))
}

func TestDefaultStyle(t *testing.T) {
	sty := DefaultStyle(20)
	assert.Equal(t, vg.Length(20), sty.AxisTitle.Font.Size)
	assert.Equal(t, vg.Length(24), sty.Title.Font.Size)
	assert.Equal(t, vg.Length(17), sty.TickLabel.Font.Size)
}

func TestParsePositions(t *testing.T) {
	for i, name := range legendPositionNames {
		p, err := ParseLegendPosition(strings.ToLower(name))
		require.NoError(t, err)
		assert.Equal(t, LegendPosition(i), p)
		assert.Equal(t, name, p.String())
	}
	_, err := ParseLegendPosition("")
	assert.Error(t, err)

	p, err := ParseYAxisPosition("RIGHT")
	require.NoError(t, err)
	assert.Equal(t, Right, p)
	_, err = ParseYAxisPosition("middle")
	assert.Error(t, err)
}
