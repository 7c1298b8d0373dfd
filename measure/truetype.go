package measure

import (
	"math"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
	"gonum.org/v1/plot/vg/draw"
)

// TrueType measures text with a TrueType font rasterized at 72 DPI so that
// one pixel equals one vg point. Only the font size of the text style is
// honoured; the face is always the parsed TrueType font.
type TrueType struct {
	ttf   *truetype.Font
	faces map[float64]font.Face
}

// NewTrueType returns a TrueType measurer for the Go Regular font.
func NewTrueType() (*TrueType, error) {
	return NewTrueTypeFont(goregular.TTF)
}

// NewTrueTypeFont returns a TrueType measurer for the given font data.
func NewTrueTypeFont(ttfData []byte) (*TrueType, error) {
	ttf, err := truetype.Parse(ttfData)
	if err != nil {
		return nil, err
	}
	return &TrueType{
		ttf:   ttf,
		faces: make(map[float64]font.Face),
	}, nil
}

func (t *TrueType) face(size float64) font.Face {
	if f, ok := t.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(t.ttf, &truetype.Options{
		Size: size,
		DPI:  72,
	})
	t.faces[size] = f
	return f
}

func (t *TrueType) Measure(txt string, sty draw.TextStyle, rotation float64) (float64, float64) {
	txt = nonEmpty(txt)
	face := t.face(float64(sty.Font.Size))
	metrics := face.Metrics()
	lineHeight := i26_6(metrics.Height)

	lines := strings.Split(txt, "\n")
	var w float64
	for _, line := range lines {
		_, advance := font.BoundString(face, line)
		w = math.Max(w, i26_6(advance))
	}
	h := lineHeight*float64(len(lines)-1) + i26_6(metrics.Ascent)
	return Rotated(w, h, rotation)
}

func i26_6(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
