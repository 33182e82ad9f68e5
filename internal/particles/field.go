// Package particles animates the decorative particle field drawn behind
// the page: drifting points that bounce off the viewport edges and are
// linked by faint lines when they come close to each other.
//
// Linking is an all-pairs test, so a frame costs O(n²) in the particle
// count. The field is sized for tens of particles, not thousands.
package particles

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/portfolio/internal/config"
	"github.com/iburimskiy/portfolio/internal/theme"
)

// Surface is the drawing target of a field.
type Surface interface {
	Clear()
	FillCircle(x, y, r float64, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)
}

type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Color  color.NRGBA
}

type Field struct {
	rng       *rand.Rand
	palette   theme.Palette
	count     int
	w, h      float64
	particles []Particle
}

// NewField returns an empty field; it gets particles on the first Resize.
func NewField(rng *rand.Rand, palette theme.Palette) *Field {
	return &Field{
		rng:     rng,
		palette: palette,
		count:   config.ParticleCount,
	}
}

func (f *Field) Bounds() (w, h float64) { return f.w, f.h }

// Particles exposes the live particle slice. Callers must not keep it
// across a Resize.
func (f *Field) Particles() []Particle { return f.particles }

func (f *Field) Palette() theme.Palette { return f.palette }

// Resize adopts the new bounds and regenerates the whole particle set.
func (f *Field) Resize(w, h int) {
	f.w, f.h = float64(w), float64(h)
	f.particles = make([]Particle, f.count)
	for i := range f.particles {
		f.particles[i] = Particle{
			X:      f.rng.Float64() * f.w,
			Y:      f.rng.Float64() * f.h,
			VX:     (f.rng.Float64() - 0.5) * 2 * config.ParticleMaxSpeed,
			VY:     (f.rng.Float64() - 0.5) * 2 * config.ParticleMaxSpeed,
			Radius: config.ParticleMinRadius + f.rng.Float64()*config.ParticleRadiusSpan,
			Color:  f.palette.Particle,
		}
	}
}

// Recolor switches the field to palette p without touching positions,
// velocities or radii.
func (f *Field) Recolor(p theme.Palette) {
	f.palette = p
	for i := range f.particles {
		f.particles[i].Color = p.Particle
	}
}

// Step advances every particle by one tick. A particle that left the
// bounds has the offending velocity component inverted, so it is back
// inside within one more tick.
func (f *Field) Step() {
	for i := range f.particles {
		p := &f.particles[i]
		p.X += p.VX
		p.Y += p.VY

		if p.X < 0 || p.X > f.w {
			p.VX = -p.VX
		}
		if p.Y < 0 || p.Y > f.h {
			p.VY = -p.VY
		}
	}
}

// Draw clears s and paints particles and links. It returns the number of
// links drawn. A nil surface draws nothing.
func (f *Field) Draw(s Surface) int {
	if s == nil {
		return 0
	}
	s.Clear()
	for i := range f.particles {
		p := &f.particles[i]
		s.FillCircle(p.X, p.Y, p.Radius, p.Color)
	}

	links := 0
	f.EachLink(func(a, b *Particle, d float64) {
		s.StrokeLine(a.X, a.Y, b.X, b.Y, config.LinkWidth, f.LinkColor(d))
		links++
	})
	return links
}

// LinkColor is the stroke colour for a link of length d.
func (f *Field) LinkColor(d float64) color.NRGBA {
	return f.palette.LinkColor(d, config.LinkAlphaBase, config.LinkAlphaFalloff)
}

// EachLink calls fn once for every unordered pair of particles closer
// than the link distance.
func (f *Field) EachLink(fn func(a, b *Particle, d float64)) {
	for i := 0; i < len(f.particles); i++ {
		a := &f.particles[i]
		for j := i + 1; j < len(f.particles); j++ {
			b := &f.particles[j]
			d := math.Hypot(a.X-b.X, a.Y-b.Y)
			if d < config.LinkDistance {
				fn(a, b, d)
			}
		}
	}
}
