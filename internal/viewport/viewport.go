// Package viewport tracks the window size and notifies listeners when it
// changes.
package viewport

// Listener receives the new width and height.
type Listener func(w, h int)

type Viewport struct {
	w, h      int
	nextID    int
	listeners map[int]Listener
	order     []int
}

func New() *Viewport {
	return &Viewport{listeners: map[int]Listener{}}
}

func (v *Viewport) Size() (int, int) { return v.w, v.h }

// Set records the size and notifies listeners in subscription order if it
// changed.
func (v *Viewport) Set(w, h int) bool {
	if w == v.w && h == v.h {
		return false
	}
	v.w, v.h = w, h
	for _, id := range append([]int(nil), v.order...) {
		if fn, ok := v.listeners[id]; ok {
			fn(w, h)
		}
	}
	return true
}

// Subscribe registers fn and returns the function that detaches it.
// Calling the cancel function more than once is harmless.
func (v *Viewport) Subscribe(fn Listener) (cancel func()) {
	id := v.nextID
	v.nextID++
	v.listeners[id] = fn
	v.order = append(v.order, id)
	return func() {
		if _, ok := v.listeners[id]; !ok {
			return
		}
		delete(v.listeners, id)
		for i, o := range v.order {
			if o == id {
				v.order = append(v.order[:i], v.order[i+1:]...)
				break
			}
		}
	}
}

// Listeners reports how many listeners are attached.
func (v *Viewport) Listeners() int { return len(v.listeners) }
