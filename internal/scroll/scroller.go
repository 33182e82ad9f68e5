package scroll

import "math"

// Scroller owns the document offset and eases it towards a target.
type Scroller struct {
	offset float64
	target float64
	max    float64
	ease   float64
}

func NewScroller(ease float64) *Scroller {
	return &Scroller{ease: ease}
}

func (s *Scroller) Offset() float64 { return s.offset }

func (s *Scroller) Target() float64 { return s.target }

func (s *Scroller) Max() float64 { return s.max }

func (s *Scroller) Animating() bool { return s.offset != s.target }

// SetMax sets the largest reachable offset and clamps the current state
// into it. It reports whether the offset moved.
func (s *Scroller) SetMax(limit float64) bool {
	s.max = math.Max(0, limit)
	s.target = s.clamp(s.target)
	return s.set(s.clamp(s.offset))
}

// ScrollBy moves immediately, as a wheel notch or key press does, and
// cancels any smooth scroll in flight.
func (s *Scroller) ScrollBy(delta float64) bool {
	next := s.clamp(s.offset + delta)
	s.target = next
	return s.set(next)
}

// ScrollTo starts a smooth scroll towards offset.
func (s *Scroller) ScrollTo(offset float64) {
	s.target = s.clamp(offset)
}

// Tick advances a smooth scroll by one frame and reports whether the
// offset changed.
func (s *Scroller) Tick() bool {
	if s.offset == s.target {
		return false
	}
	next := s.offset + (s.target-s.offset)*s.ease
	if math.Abs(s.target-next) < 0.5 {
		next = s.target
	}
	return s.set(next)
}

func (s *Scroller) set(v float64) bool {
	if v == s.offset {
		return false
	}
	s.offset = v
	return true
}

func (s *Scroller) clamp(v float64) float64 {
	return math.Min(math.Max(v, 0), s.max)
}
