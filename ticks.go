package axes

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"gonum.org/v1/plot"
)

// Tick is a marked position along an axis.
type Tick struct {
	Value  float64 // Value in data coordinates.
	Offset float64 // Offset from the start of the axis (left or bottom).
	Label  string  // Label is empty for minor ticks.
	Minor  bool
}

// A TickCalculator provides the ticks of an axis for one layout pass.
// It is built for a fixed working space and discarded once the space
// changes.
type TickCalculator interface {
	// Ticks returns the ticks ordered by offset.
	Ticks() []Tick

	// Labels returns the labels of all ticks; minor ticks have an empty
	// label.
	Labels() []string
}

// CalculatorKind enumerates the tick calculator strategies.
type CalculatorKind int

const (
	NumberCalculator CalculatorKind = iota
	DateCalculator
	LogCalculator
	CategoryCalculator
)

var calculatorKindNames = []string{"number", "date", "log", "category"}

func (k CalculatorKind) String() string {
	if k < 0 || int(k) >= len(calculatorKindNames) {
		return fmt.Sprintf("CalculatorKind(%d)", int(k))
	}
	return calculatorKindNames[k]
}

// selectCalculator decides which tick calculator serves an axis.
// Y-axes never use date or category ticks.
func selectCalculator(dir Direction, categorical bool, dt DataType, logarithmic bool) CalculatorKind {
	if dir == Horizontal {
		switch {
		case categorical:
			return CategoryCalculator
		case dt == Date:
			return DateCalculator
		case logarithmic:
			return LogCalculator
		}
		return NumberCalculator
	}
	if logarithmic && dt != Date {
		return LogCalculator
	}
	return NumberCalculator
}

// tickSet implements TickCalculator for a fixed list of ticks.
type tickSet struct {
	ticks []Tick
}

func (ts tickSet) Ticks() []Tick { return ts.ticks }

func (ts tickSet) Labels() []string {
	labels := make([]string, len(ts.ticks))
	for i, t := range ts.ticks {
		labels[i] = t.Label
	}
	return labels
}

// NumberTicks places ticks linearly.
type NumberTicks struct{ tickSet }

// NewNumberTicks returns the linear ticks of rng along space.
func NewNumberTicks(dir Direction, space float64, rng Interval, sty *Style) *NumberTicks {
	r, ok := linearRange(rng)
	if !ok {
		return &NumberTicks{}
	}
	ticks := continuousTicks(space, r, LinearTrans, LinearTrans.Ticker)
	return &NumberTicks{tickSet{thin(ticks, space, spacingHint(dir, sty))}}
}

// LogTicks places ticks at powers of ten.
type LogTicks struct{ tickSet }

// NewLogTicks returns the logarithmic ticks of rng along space.
func NewLogTicks(dir Direction, space float64, rng Interval, sty *Style) *LogTicks {
	r, ok := logRange(rng)
	if !ok {
		return &LogTicks{}
	}
	ticks := continuousTicks(space, r, Log10Trans, Log10Trans.Ticker)
	return &LogTicks{tickSet{thin(ticks, space, spacingHint(dir, sty))}}
}

// DateTicks places ticks linearly on a time axis whose values are seconds
// since the Unix epoch.
type DateTicks struct {
	tickSet
	Pattern string // Pattern is the time layout of the labels.
}

// NewDateTicks returns the date ticks of rng along space.
func NewDateTicks(dir Direction, space float64, rng Interval, sty *Style) *DateTicks {
	r, ok := linearRange(rng)
	if !ok {
		return &DateTicks{}
	}
	pattern := sty.DatePattern
	if pattern == "" {
		pattern = datePattern(r.Span())
	}
	ticker := plot.TimeTicks{
		Ticker: plot.DefaultTicks{},
		Format: pattern,
		Time:   plot.UTCUnixTime,
	}
	ticks := continuousTicks(space, r, LinearTrans, ticker)
	return &DateTicks{
		tickSet: tickSet{thin(ticks, space, spacingHint(dir, sty))},
		Pattern: pattern,
	}
}

// CategoryTicks places one tick in the middle of each category slot.
type CategoryTicks struct{ tickSet }

// NewCategoryTicks returns one tick per category.
func NewCategoryTicks(dir Direction, space float64, categories []string, sty *Style) *CategoryTicks {
	if len(categories) == 0 {
		return &CategoryTicks{}
	}
	space = math.Max(space, 0)
	slot := space / float64(len(categories))
	ticks := make([]Tick, len(categories))
	for i, c := range categories {
		ticks[i] = Tick{
			Value:  float64(i),
			Offset: (float64(i) + 0.5) * slot,
			Label:  c,
		}
	}
	return &CategoryTicks{tickSet{thin(ticks, space, spacingHint(dir, sty))}}
}

// linearRange turns an accumulated data range into a range usable by a
// linear scale.
func linearRange(rng Interval) (Interval, bool) {
	if !rng.Valid() {
		return rng, false
	}
	if rng.Degenerate() {
		rng.Min, rng.Max = rng.Min-1, rng.Max+1
	}
	return rng, true
}

// logRange turns an accumulated data range into a range usable by a
// logarithmic scale.
func logRange(rng Interval) (Interval, bool) {
	if !rng.Valid() || rng.Max <= 0 {
		return rng, false
	}
	if rng.Min <= 0 {
		rng.Min = rng.Max / 1000
	}
	if rng.Min == rng.Max {
		rng.Min, rng.Max = rng.Min/10, rng.Max*10
	}
	return rng, true
}

func continuousTicks(space float64, rng Interval, trans Transformation, ticker plot.Ticker) []Tick {
	space = math.Max(space, 0)
	to := Interval{0, space}
	eps := 1e-9 * rng.Span()

	var ticks []Tick
	for _, t := range ticker.Ticks(rng.Min, rng.Max) {
		if t.Value < rng.Min-eps || t.Value > rng.Max+eps {
			continue
		}
		tk := Tick{
			Value:  t.Value,
			Offset: trans.Trans(rng, to, t.Value),
			Label:  t.Label,
			Minor:  t.IsMinor(),
		}
		if tk.Minor {
			tk.Label = ""
		}
		ticks = append(ticks, tk)
	}
	// Tickers list majors before minors.
	sort.SliceStable(ticks, func(i, j int) bool { return ticks[i].Value < ticks[j].Value })
	return ticks
}

// thin demotes major ticks to minor ones until at most space/hint labels
// remain. Every step-th label starting with the first one is kept.
func thin(ticks []Tick, space, hint float64) []Tick {
	majors := 0
	for _, t := range ticks {
		if !t.Minor {
			majors++
		}
	}
	if majors == 0 || hint <= 0 {
		return ticks
	}
	limit := int(math.Floor(space / hint))
	if limit < 1 {
		limit = 1
	}
	if majors <= limit {
		return ticks
	}
	step := (majors + limit - 1) / limit
	k := 0
	for i := range ticks {
		if ticks[i].Minor {
			continue
		}
		if k%step != 0 {
			ticks[i].Label = ""
			ticks[i].Minor = true
		}
		k++
	}
	return ticks
}

func spacingHint(dir Direction, sty *Style) float64 {
	if dir == Horizontal {
		return sty.XAxis.TickSpacingHint
	}
	return sty.YAxis.TickSpacingHint
}

// datePattern picks a time layout for a date axis spanning span seconds.
func datePattern(span float64) string {
	const day = 24 * 60 * 60
	switch {
	case span <= 2*day:
		return "15:04"
	case span <= 2*365*day:
		return "2006-01-02"
	}
	return "2006"
}

// categoryLabels returns the category labels of s. Number and Date series
// used on a category chart are labeled by their formatted x values.
func categoryLabels(s *Series, pattern string) []string {
	switch s.xType() {
	case Category:
		return s.Categories
	case Date:
		if pattern == "" {
			pattern = "2006-01-02"
		}
		labels := make([]string, len(s.XY))
		for i, xy := range s.XY {
			sec, frac := math.Modf(xy.X)
			labels[i] = time.Unix(int64(sec), int64(frac*1e9)).UTC().Format(pattern)
		}
		return labels
	}
	labels := make([]string, len(s.XY))
	for i, xy := range s.XY {
		labels[i] = strconv.FormatFloat(xy.X, 'g', -1, 64)
	}
	return labels
}
