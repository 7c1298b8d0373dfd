// Package measure provides text measurement for axis layout.
//
// A Measurer reports the size of the bounding box of a piece of text drawn
// with a given text style and rotated by a given angle. Axis layout only
// needs sizes, never glyph outlines, so all implementations here work on
// font metrics.
package measure

import (
	"math"

	"gonum.org/v1/plot/vg/draw"
)

// Measurer measures text.
type Measurer interface {
	// Measure returns the width and height of the axis aligned bounding
	// box of txt drawn with sty and rotated by rotation radians
	// (counter-clockwise). The rotation field of sty is ignored.
	// An empty txt is measured as a single space.
	Measure(txt string, sty draw.TextStyle, rotation float64) (width, height float64)
}

// Rotated returns the size of the axis aligned bounding box of a w×h box
// rotated by theta radians.
func Rotated(w, h, theta float64) (float64, float64) {
	if theta == 0 {
		return w, h
	}
	sin, cos := math.Abs(math.Sin(theta)), math.Abs(math.Cos(theta))
	return w*cos + h*sin, w*sin + h*cos
}

// nonEmpty substitutes a single space for the empty string so that
// measurements never collapse to zero height.
func nonEmpty(txt string) string {
	if txt == "" {
		return " "
	}
	return txt
}

// VG measures text with the metrics of the gonum vg font in the text style.
type VG struct{}

func (VG) Measure(txt string, sty draw.TextStyle, rotation float64) (float64, float64) {
	txt = nonEmpty(txt)
	w, h := float64(sty.Width(txt)), float64(sty.Height(txt))
	return Rotated(w, h, rotation)
}

// Fixed measures text as if every character occupied a cell of
// CharWidth × LineHeight. Sizes do not depend on the font which makes
// layouts reproducible across platforms and fonts.
type Fixed struct {
	CharWidth  float64
	LineHeight float64
}

func (f Fixed) Measure(txt string, _ draw.TextStyle, rotation float64) (float64, float64) {
	txt = nonEmpty(txt)
	lines, longest, n := 1, 0, 0
	for _, r := range txt {
		if r == '\n' {
			lines++
			n = 0
			continue
		}
		n++
		if n > longest {
			longest = n
		}
	}
	return Rotated(float64(longest)*f.CharWidth, float64(lines)*f.LineHeight, rotation)
}
