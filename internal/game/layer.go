package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Layer is a transparent offscreen image sized to the viewport. It is
// composited over the page background every frame.
type Layer struct {
	img *ebiten.Image
}

func NewLayer() *Layer { return &Layer{} }

// Resize reallocates the backing image. A non-positive size leaves the
// layer without an image; drawing on it is then a no-op.
func (l *Layer) Resize(w, h int) {
	l.Dispose()
	if w <= 0 || h <= 0 {
		return
	}
	l.img = ebiten.NewImage(w, h)
}

func (l *Layer) Image() *ebiten.Image { return l.img }

func (l *Layer) Clear() {
	if l.img == nil {
		return
	}
	l.img.Clear()
}

func (l *Layer) FillCircle(x, y, r float64, c color.Color) {
	if l.img == nil {
		return
	}
	vector.DrawFilledCircle(l.img, float32(x), float32(y), float32(r), c, true)
}

func (l *Layer) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	if l.img == nil {
		return
	}
	vector.StrokeLine(l.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}

// DrawTo composites the layer onto dst at the origin.
func (l *Layer) DrawTo(dst *ebiten.Image) {
	if l.img == nil {
		return
	}
	dst.DrawImage(l.img, nil)
}

func (l *Layer) Dispose() {
	if l.img != nil {
		l.img.Deallocate()
		l.img = nil
	}
}
