package particles

import "github.com/iburimskiy/portfolio/internal/viewport"

// Animator owns the per-frame registration of a field. The host loop calls
// Update and Draw every frame; both do nothing once Stop has been called.
type Animator struct {
	field        *Field
	running      bool
	cancelResize func()
}

// Start attaches f to vp: every size change regenerates the field. If vp
// already has a size the field is generated immediately.
func Start(f *Field, vp *viewport.Viewport) *Animator {
	a := &Animator{field: f, running: true}
	a.cancelResize = vp.Subscribe(func(w, h int) {
		f.Resize(w, h)
	})
	if w, h := vp.Size(); w > 0 && h > 0 {
		f.Resize(w, h)
	}
	return a
}

func (a *Animator) Field() *Field { return a.field }

func (a *Animator) Running() bool { return a.running }

func (a *Animator) Update() {
	if !a.running {
		return
	}
	a.field.Step()
}

func (a *Animator) Draw(s Surface) int {
	if !a.running {
		return 0
	}
	return a.field.Draw(s)
}

// Frame is Update followed by Draw, for hosts with a single callback.
func (a *Animator) Frame(s Surface) int {
	a.Update()
	return a.Draw(s)
}

// Stop ends the animation and detaches the resize listener.
func (a *Animator) Stop() {
	if !a.running {
		return
	}
	a.running = false
	if a.cancelResize != nil {
		a.cancelResize()
		a.cancelResize = nil
	}
}
