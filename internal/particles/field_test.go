package particles

import (
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/iburimskiy/portfolio/internal/config"
	"github.com/iburimskiy/portfolio/internal/theme"
	"github.com/iburimskiy/portfolio/internal/viewport"
)

type line struct {
	x0, y0, x1, y1, width float64
	c                     color.NRGBA
}

// recorder is a Surface that remembers what was drawn since the last Clear.
type recorder struct {
	clears  int
	circles int
	lines   []line
}

func (r *recorder) Clear() {
	r.clears++
	r.circles = 0
	r.lines = r.lines[:0]
}

func (r *recorder) FillCircle(x, y, radius float64, c color.Color) { r.circles++ }

func (r *recorder) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	r.lines = append(r.lines, line{x0, y0, x1, y1, width, c.(color.NRGBA)})
}

func newTestField(seed uint64, dark bool) *Field {
	return NewField(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), theme.For(dark))
}

func TestField_ResizeRegeneratesWithinBounds(t *testing.T) {
	sizes := [][2]int{{800, 600}, {320, 480}, {1920, 1080}}
	f := newTestField(1, true)

	for _, sz := range sizes {
		f.Resize(sz[0], sz[1])
		ps := f.Particles()
		if len(ps) != config.ParticleCount {
			t.Fatalf("Expected %d particles, got %d", config.ParticleCount, len(ps))
		}
		for i, p := range ps {
			if p.X < 0 || p.X >= float64(sz[0]) || p.Y < 0 || p.Y >= float64(sz[1]) {
				t.Errorf("Particle %d at (%.2f, %.2f) outside %dx%d", i, p.X, p.Y, sz[0], sz[1])
			}
			if p.Radius < 1 || p.Radius >= 3 {
				t.Errorf("Particle %d radius %.3f outside [1,3)", i, p.Radius)
			}
			if p.VX < -0.25 || p.VX >= 0.25 || p.VY < -0.25 || p.VY >= 0.25 {
				t.Errorf("Particle %d velocity (%.3f, %.3f) outside [-0.25,0.25)", i, p.VX, p.VY)
			}
		}
	}
}

func TestField_BoundaryReflection(t *testing.T) {
	f := newTestField(7, true)
	f.Resize(200, 150)
	w, h := f.Bounds()
	slack := config.ParticleMaxSpeed

	for step := 0; step < 20000; step++ {
		f.Step()
		for i, p := range f.Particles() {
			if p.X < -slack || p.X > w+slack || p.Y < -slack || p.Y > h+slack {
				t.Fatalf("Step %d: particle %d escaped to (%.3f, %.3f)", step, i, p.X, p.Y)
			}
		}
	}
}

func TestField_StepReflectsOnlyOutOfBoundsAxis(t *testing.T) {
	f := newTestField(3, true)
	f.Resize(100, 100)
	ps := f.Particles()
	ps[0] = Particle{X: 99.9, Y: 50, VX: 0.2, VY: 0.1, Radius: 1}

	f.Step()

	p := f.Particles()[0]
	if p.VX != -0.2 {
		t.Errorf("Expected VX to flip to -0.2, got %v", p.VX)
	}
	if p.VY != 0.1 {
		t.Errorf("Expected VY unchanged, got %v", p.VY)
	}
	if p.X <= 100 {
		t.Errorf("Expected the particle to be drawn one step outside first, got X=%v", p.X)
	}
	f.Step()
	if got := f.Particles()[0].X; got > 100 {
		t.Errorf("Expected particle back inside after the next step, got X=%v", got)
	}
}

func TestField_LinkThresholdIsStrict(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		links    int
	}{
		{name: "Same point", distance: 0, links: 1},
		{name: "Just inside", distance: 99.99, links: 1},
		{name: "Exactly threshold", distance: 100, links: 0},
		{name: "Beyond", distance: 150, links: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestField(11, true)
			f.count = 2
			f.Resize(1000, 1000)
			ps := f.Particles()
			ps[0].X, ps[0].Y = 300, 300
			ps[1].X, ps[1].Y = 300+tt.distance, 300

			rec := &recorder{}
			if got := f.Draw(rec); got != tt.links {
				t.Errorf("Expected %d links, got %d", tt.links, got)
			}
		})
	}
}

func TestField_LinkOpacity(t *testing.T) {
	f := newTestField(5, true)
	f.count = 2
	f.Resize(500, 500)
	ps := f.Particles()
	ps[0].X, ps[0].Y = 10, 10
	ps[1].X, ps[1].Y = 10, 10

	rec := &recorder{}
	f.Draw(rec)
	if len(rec.lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(rec.lines))
	}
	l := rec.lines[0]
	if l.c.A != 51 {
		t.Errorf("Expected alpha 0.2 (51), got %d", l.c.A)
	}
	if l.width != config.LinkWidth {
		t.Errorf("Expected width %v, got %v", config.LinkWidth, l.width)
	}
}

func TestField_AllPairsTestedOnce(t *testing.T) {
	f := newTestField(9, false)
	f.Resize(640, 480)
	for i := range f.Particles() {
		f.Particles()[i].X, f.Particles()[i].Y = 50, 50
	}

	rec := &recorder{}
	n := config.ParticleCount
	if got, want := f.Draw(rec), n*(n-1)/2; got != want {
		t.Errorf("Expected %d links for coincident particles, got %d", want, got)
	}
	if rec.circles != n {
		t.Errorf("Expected %d circles, got %d", n, rec.circles)
	}
	if rec.clears != 1 {
		t.Errorf("Expected one clear per frame, got %d", rec.clears)
	}
}

func TestField_DrawNilSurface(t *testing.T) {
	f := newTestField(2, true)
	f.Resize(100, 100)
	if got := f.Draw(nil); got != 0 {
		t.Errorf("Expected no links on a nil surface, got %d", got)
	}
}

func TestField_RecolorKeepsGeometry(t *testing.T) {
	f := newTestField(4, true)
	f.Resize(400, 300)
	before := append([]Particle(nil), f.Particles()...)

	f.Recolor(theme.For(false))
	for i, p := range f.Particles() {
		if p.Color != theme.For(false).Particle {
			t.Fatalf("Particle %d not recoloured: %+v", i, p.Color)
		}
		if p.X != before[i].X || p.VX != before[i].VX || p.Radius != before[i].Radius {
			t.Fatalf("Particle %d geometry changed by Recolor", i)
		}
	}

	snapshot := append([]Particle(nil), f.Particles()...)
	f.Recolor(theme.For(false))
	for i, p := range f.Particles() {
		if p != snapshot[i] {
			t.Fatalf("Second Recolor with the same palette changed particle %d", i)
		}
	}

	f.Recolor(theme.For(true))
	for i, p := range f.Particles() {
		if p != before[i] {
			t.Fatalf("Toggling twice did not restore particle %d", i)
		}
	}
}

func TestField_RecolorAffectsLinks(t *testing.T) {
	f := newTestField(6, true)
	f.count = 2
	f.Resize(100, 100)
	ps := f.Particles()
	ps[0].X, ps[0].Y, ps[1].X, ps[1].Y = 5, 5, 6, 5
	f.Recolor(theme.For(false))

	rec := &recorder{}
	f.Draw(rec)
	if len(rec.lines) != 1 || rec.lines[0].c.R != 0 {
		t.Errorf("Expected a black link after switching to light, got %+v", rec.lines)
	}
}

func TestAnimator_ResizeAndStop(t *testing.T) {
	vp := viewport.New()
	vp.Set(300, 200)
	f := newTestField(8, true)
	a := Start(f, vp)

	if len(f.Particles()) != config.ParticleCount {
		t.Fatalf("Expected field generated from the current viewport")
	}
	first := append([]Particle(nil), f.Particles()...)

	vp.Set(600, 400)
	if w, h := f.Bounds(); w != 600 || h != 400 {
		t.Errorf("Expected bounds 600x400, got %vx%v", w, h)
	}
	if f.Particles()[0] == first[0] {
		t.Error("Expected particles to be regenerated on resize")
	}

	rec := &recorder{}
	a.Frame(rec)
	if rec.clears != 1 {
		t.Errorf("Expected running animator to draw, clears=%d", rec.clears)
	}

	a.Stop()
	a.Stop()
	if a.Running() {
		t.Error("Expected animator stopped")
	}
	if vp.Listeners() != 0 {
		t.Errorf("Expected resize listener detached, %d left", vp.Listeners())
	}

	frozen := append([]Particle(nil), f.Particles()...)
	a.Frame(rec)
	if rec.clears != 1 {
		t.Error("Expected no drawing after Stop")
	}
	for i, p := range f.Particles() {
		if p != frozen[i] {
			t.Fatal("Expected no stepping after Stop")
		}
	}

	vp.Set(50, 50)
	if w, _ := f.Bounds(); w != 600 {
		t.Error("Expected no resize handling after Stop")
	}
}

func TestAnimator_EmptyViewportDefersGeneration(t *testing.T) {
	vp := viewport.New()
	f := newTestField(10, true)
	a := Start(f, vp)
	defer a.Stop()

	if len(f.Particles()) != 0 {
		t.Errorf("Expected no particles before the first layout, got %d", len(f.Particles()))
	}
	vp.Set(10, 10)
	if len(f.Particles()) != config.ParticleCount {
		t.Errorf("Expected %d particles after layout", config.ParticleCount)
	}
}
