package axes

import (
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labeled(ticks []Tick) []Tick {
	var l []Tick
	for _, t := range ticks {
		if t.Label != "" {
			l = append(l, t)
		}
	}
	return l
}

func TestNumberTicks(t *testing.T) {
	sty := testStyle()
	calc := NewNumberTicks(Horizontal, 500, Interval{0, 100}, sty)
	ticks := calc.Ticks()
	require.NotEmpty(t, ticks)

	last := -1.0
	for _, tk := range ticks {
		assert.InDelta(t, 5*tk.Value, tk.Offset, 1e-9)
		assert.Greater(t, tk.Offset, last)
		last = tk.Offset
		if tk.Minor {
			assert.Empty(t, tk.Label)
		}
	}

	l := labeled(ticks)
	assert.GreaterOrEqual(t, len(l), 2)
	assert.LessOrEqual(t, len(l), int(500/sty.XAxis.TickSpacingHint))
	assert.Len(t, calc.Labels(), len(ticks))
}

func TestNumberTicksDegenerate(t *testing.T) {
	calc := NewNumberTicks(Vertical, 200, Interval{5, 5}, testStyle())
	ticks := calc.Ticks()
	require.NotEmpty(t, ticks)
	for _, tk := range ticks {
		assert.GreaterOrEqual(t, tk.Value, 4.0)
		assert.LessOrEqual(t, tk.Value, 6.0)
	}
}

func TestUnsetRangeHasNoTicks(t *testing.T) {
	sty := testStyle()
	for _, calc := range []TickCalculator{
		NewNumberTicks(Horizontal, 300, UnsetInterval(), sty),
		NewLogTicks(Horizontal, 300, UnsetInterval(), sty),
		NewDateTicks(Horizontal, 300, UnsetInterval(), sty),
		NewCategoryTicks(Horizontal, 300, nil, sty),
	} {
		assert.Empty(t, calc.Ticks())
		assert.Empty(t, calc.Labels())
		assert.Equal(t, "", longestLabel(calc.Labels()))
	}
}

func TestLogTicks(t *testing.T) {
	calc := NewLogTicks(Vertical, 300, Interval{1, 1000}, testStyle())
	ticks := calc.Ticks()
	require.NotEmpty(t, ticks)
	for _, tk := range ticks {
		assert.InDelta(t, 100*math.Log10(tk.Value), tk.Offset, 1e-6, "tick %g", tk.Value)
	}

	var majors []float64
	for _, tk := range labeled(ticks) {
		majors = append(majors, tk.Value)
	}
	assert.Equal(t, []float64{1, 10, 100, 1000}, majors)
}

var logRangeTests = []struct {
	in   Interval
	want Interval
	ok   bool
}{
	{Interval{1, 100}, Interval{1, 100}, true},
	{Interval{0, 100}, Interval{0.1, 100}, true},
	{Interval{-5, 100}, Interval{0.1, 100}, true},
	{Interval{10, 10}, Interval{1, 100}, true},
	{Interval{-5, -1}, Interval{-5, -1}, false},
	{Interval{-5, 0}, Interval{-5, 0}, false},
	{UnsetInterval(), UnsetInterval(), false},
}

func TestLogRange(t *testing.T) {
	for i, tc := range logRangeTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got, ok := logRange(tc.in)
			if ok != tc.ok {
				t.Fatalf("logRange(%v) ok = %t, want %t", tc.in, ok, tc.ok)
			}
			if ok && (!equal64(got.Min, tc.want.Min) || !equal64(got.Max, tc.want.Max)) {
				t.Errorf("logRange(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestLogTicksNonPositive(t *testing.T) {
	sty := testStyle()
	assert.Empty(t, NewLogTicks(Vertical, 300, Interval{-5, -1}, sty).Ticks())

	ticks := NewLogTicks(Vertical, 300, Interval{0, 100}, sty).Ticks()
	require.NotEmpty(t, ticks)
	for _, tk := range ticks {
		assert.Greater(t, tk.Value, 0.0)
	}
}

func TestCategoryTicks(t *testing.T) {
	calc := NewCategoryTicks(Horizontal, 400, []string{"a", "b", "c", "d"}, testStyle())
	assert.Equal(t, []string{"a", "b", "c", "d"}, calc.Labels())
	var offsets []float64
	for _, tk := range calc.Ticks() {
		offsets = append(offsets, tk.Offset)
	}
	assert.Equal(t, []float64{50, 150, 250, 350}, offsets)
}

func TestCategoryTicksThinned(t *testing.T) {
	sty := testStyle()
	sty.XAxis.TickSpacingHint = 30
	cats := make([]string, 10)
	for i := range cats {
		cats[i] = strconv.Itoa(i)
	}
	calc := NewCategoryTicks(Horizontal, 100, cats, sty)
	require.Len(t, calc.Ticks(), 10)

	var kept []string
	for _, tk := range labeled(calc.Ticks()) {
		kept = append(kept, tk.Label)
	}
	assert.Equal(t, []string{"0", "4", "8"}, kept)
}

var thinTests = []struct {
	majors      int
	space, hint float64
	want        int // labels left
}{
	{5, 500, 50, 5},
	{5, 100, 50, 2},
	{5, 10, 50, 1},
	{6, 100, 50, 2},
	{7, 100, 50, 2},
	{3, 100, 0, 3},
	{0, 100, 50, 0},
}

func TestThin(t *testing.T) {
	for i, tc := range thinTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			var ticks []Tick
			for k := 0; k < tc.majors; k++ {
				ticks = append(ticks,
					Tick{Value: float64(k), Label: strconv.Itoa(k)},
					Tick{Value: float64(k) + 0.5, Minor: true})
			}
			got := thin(ticks, tc.space, tc.hint)
			assert.Len(t, got, 2*tc.majors)
			assert.Len(t, labeled(got), tc.want)
			if tc.majors > 0 {
				assert.Equal(t, "0", got[0].Label, "first label is kept")
			}
		})
	}
}

func TestDateTicks(t *testing.T) {
	sty := testStyle()
	from := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2020, 6, 30, 0, 0, 0, 0, time.UTC)
	rng := Interval{float64(from.Unix()), float64(to.Unix())}

	calc := NewDateTicks(Horizontal, 600, rng, sty)
	assert.Equal(t, "2006-01-02", calc.Pattern)
	l := labeled(calc.Ticks())
	require.NotEmpty(t, l)
	for _, tk := range l {
		ts, err := time.Parse(calc.Pattern, tk.Label)
		require.NoError(t, err)
		assert.False(t, ts.Before(from.AddDate(0, 0, -1)))
		assert.False(t, ts.After(to))
	}

	sty.DatePattern = "Jan 2006"
	calc = NewDateTicks(Horizontal, 600, rng, sty)
	assert.Equal(t, "Jan 2006", calc.Pattern)
}

var datePatternTests = []struct {
	span float64
	want string
}{
	{3600, "15:04"},
	{2 * 86400, "15:04"},
	{30 * 86400, "2006-01-02"},
	{700 * 86400, "2006-01-02"},
	{5 * 365 * 86400, "2006"},
}

func TestDatePattern(t *testing.T) {
	for _, tc := range datePatternTests {
		if got := datePattern(tc.span); got != tc.want {
			t.Errorf("datePattern(%g) = %q, want %q", tc.span, got, tc.want)
		}
	}
}

func TestCategoryLabels(t *testing.T) {
	num, err := NewNumberSeries("n", []float64{1, 2.5}, []float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2.5"}, categoryLabels(num, ""))

	date, err := NewDateSeries("d", []time.Time{
		time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2021, 7, 1, 0, 0, 0, 0, time.UTC),
	}, []float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, []string{"2019-03-01", "2021-07-01"}, categoryLabels(date, ""))
	assert.Equal(t, []string{"2019", "2021"}, categoryLabels(date, "2006"))

	cat, err := NewCategorySeries("c", []string{"x", "y"}, []float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, categoryLabels(cat, "2006"))
}

func TestCalculatorKindString(t *testing.T) {
	assert.Equal(t, "number", NumberCalculator.String())
	assert.Equal(t, "date", DateCalculator.String())
	assert.Equal(t, "log", LogCalculator.String())
	assert.Equal(t, "category", CategoryCalculator.String())
	assert.Equal(t, "CalculatorKind(9)", CalculatorKind(9).String())
	assert.Equal(t, "CalculatorKind(-1)", CalculatorKind(-1).String())

	assert.Equal(t, "date", Date.String())
	assert.Equal(t, "DataType(7)", DataType(7).String())
	assert.Equal(t, "DataType(-2)", DataType(-2).String())
}
