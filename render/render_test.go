package render

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"honnef.co/go/curvedit"
)

type rgb struct{ r, g, b bool }

// sample classifies each channel of the pixel at (x, y) as on or off.
func sample(img image.Image, x, y int) rgb {
	r, g, b, _ := img.At(x, y).RGBA()
	return rgb{r > 0xf000, g > 0xf000, b > 0xf000}
}

var (
	black = rgb{}
	white = rgb{true, true, true}
	green = rgb{false, true, false}
	red   = rgb{true, false, false}
)

func newEditor(kind curvedit.Kind) (*curvedit.Editor, curvedit.Config) {
	cfg := curvedit.DefaultConfig()
	cfg.Kind = kind
	return curvedit.NewEditor(curvedit.NewCurve(cfg), cfg), cfg
}

func drawFrame(t *testing.T, ed *curvedit.Editor, cfg curvedit.Config) image.Image {
	t.Helper()
	r, err := New(cfg)
	require.NoError(t, err)
	dc := gg.NewContext(100, 100)
	t.Cleanup(func() { _ = dc.Close() })
	require.NoError(t, r.Draw(dc, ed, IdentityView()))
	return dc.Image()
}

func TestDrawEmpty(t *testing.T) {
	ed, cfg := newEditor(curvedit.KindBezier)
	img := drawFrame(t, ed, cfg)
	assert.Equal(t, black, sample(img, 0, 0))
	assert.Equal(t, black, sample(img, 50, 50))
}

func TestDrawPoints(t *testing.T) {
	ed, cfg := newEditor(curvedit.KindBezier)
	for _, p := range []curvedit.Point{curvedit.Pt(20, 20), curvedit.Pt(80, 20)} {
		ed.ButtonPressed(curvedit.ButtonLeft, p)
		ed.ButtonReleased(curvedit.ButtonLeft, p)
	}
	img := drawFrame(t, ed, cfg)
	assert.Equal(t, white, sample(img, 20, 20), "unfocused point")
	assert.Equal(t, green, sample(img, 80, 20), "focused point")
	assert.Equal(t, black, sample(img, 50, 80))
}

func TestDrawCurve(t *testing.T) {
	ed, cfg := newEditor(curvedit.KindBezier)
	cfg.Style.LineWidth = 4
	cfg.Style.PointRadius = 2
	cfg.Degree = 1
	ed = curvedit.NewEditor(curvedit.NewCurve(cfg), cfg)
	for _, p := range []curvedit.Point{curvedit.Pt(10, 50), curvedit.Pt(90, 50)} {
		ed.ButtonPressed(curvedit.ButtonLeft, p)
		ed.ButtonReleased(curvedit.ButtonLeft, p)
	}
	img := drawFrame(t, ed, cfg)
	assert.Equal(t, white, sample(img, 50, 50), "on the line")
	assert.Equal(t, black, sample(img, 50, 40), "off the line")

	cfg.Style.LineWidth = 0
	img = drawFrame(t, ed, cfg)
	assert.Equal(t, black, sample(img, 50, 50), "zero line width draws no curve")
}

func TestDrawTangentIndicator(t *testing.T) {
	for _, kind := range []curvedit.Kind{curvedit.KindHermite, curvedit.KindTangentBezier} {
		t.Run(kind.String(), func(t *testing.T) {
			ed, cfg := newEditor(kind)
			ed.ButtonPressed(curvedit.ButtonLeft, curvedit.Pt(30, 50))
			ed.MouseMoved(curvedit.Pt(70, 50))
			ed.ButtonReleased(curvedit.ButtonLeft, curvedit.Pt(70, 50))
			require.InDelta(t, 70, ed.TangentIndicator(0).X, 1e-9)

			img := drawFrame(t, ed, cfg)
			assert.Equal(t, green, sample(img, 30, 50))
			assert.Equal(t, red, sample(img, 70, 50))
		})
	}
}

func TestDrawBezierHasNoIndicator(t *testing.T) {
	ed, cfg := newEditor(curvedit.KindBezier)
	ed.ButtonPressed(curvedit.ButtonLeft, curvedit.Pt(50, 50))
	img := drawFrame(t, ed, cfg)
	assert.Equal(t, green, sample(img, 50, 50))
	assert.Equal(t, black, sample(img, 50+int(cfg.Style.IndicatorRadius)+5, 50))
}

func TestNewBadColor(t *testing.T) {
	for _, bad := range []string{"", "#12", "#12345", "#gggggg", "red"} {
		cfg := curvedit.DefaultConfig()
		cfg.Style.FocusColor = bad
		_, err := New(cfg)
		assert.ErrorContains(t, err, "focus color", "color %q", bad)
	}
	for _, good := range []string{"#fff", "#ffff", "00ff00", "#00ff00ff", "#ABCDEF"} {
		cfg := curvedit.DefaultConfig()
		cfg.Style.Background = good
		_, err := New(cfg)
		assert.NoError(t, err, "color %q", good)
	}
}

func TestEncodePNG(t *testing.T) {
	ed, cfg := newEditor(curvedit.KindBezier)
	ed.ButtonPressed(curvedit.ButtonLeft, curvedit.Pt(10, 10))
	r, err := New(cfg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.EncodePNG(&buf, ed, IdentityView(), 64, 32))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 32), img.Bounds())
	assert.Equal(t, green, sample(img, 10, 10))
}

func TestBounds(t *testing.T) {
	ed, _ := newEditor(curvedit.KindBezier)
	_, ok := Bounds(ed)
	assert.False(t, ok)

	for _, p := range []curvedit.Point{curvedit.Pt(0, 0), curvedit.Pt(50, 100), curvedit.Pt(100, 0)} {
		ed.ButtonPressed(curvedit.ButtonLeft, p)
		ed.ButtonReleased(curvedit.ButtonLeft, p)
	}
	b, ok := Bounds(ed)
	require.True(t, ok)
	assert.Equal(t, curvedit.NewRectFromPoints(curvedit.Pt(0, 0), curvedit.Pt(100, 100)), b)
}
