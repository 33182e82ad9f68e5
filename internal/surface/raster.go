// Package surface provides the gg raster the particle field paints on for
// headless snapshots.
package surface

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
)

// Raster draws with the gg software renderer. Clear paints the background
// colour instead of leaving transparent pixels, so saved frames look like
// the window.
type Raster struct {
	dc  *gg.Context
	bg  gg.RGBA
	err error
}

func NewRaster(w, h int, bg color.Color) *Raster {
	return &Raster{
		dc: gg.NewContext(w, h),
		bg: gg.FromColor(bg),
	}
}

func (r *Raster) Clear() {
	r.dc.ClearWithColor(r.bg)
}

func (r *Raster) FillCircle(x, y, radius float64, c color.Color) {
	r.dc.SetColor(c)
	r.dc.DrawCircle(x, y, radius)
	r.keep(r.dc.Fill())
}

func (r *Raster) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	r.dc.SetColor(c)
	r.dc.SetLineWidth(width)
	r.dc.DrawLine(x0, y0, x1, y1)
	r.keep(r.dc.Stroke())
}

// Err returns the first rendering error, if any.
func (r *Raster) Err() error { return r.err }

func (r *Raster) Image() image.Image { return r.dc.Image() }

func (r *Raster) SavePNG(path string) error {
	if r.err != nil {
		return r.err
	}
	return r.dc.SavePNG(path)
}

func (r *Raster) Close() error { return r.dc.Close() }

func (r *Raster) keep(err error) {
	if err != nil && r.err == nil {
		r.err = err
	}
}
