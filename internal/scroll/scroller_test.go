package scroll

import "testing"

func TestScroller_ClampsToRange(t *testing.T) {
	s := NewScroller(0.2)
	s.SetMax(1000)

	s.ScrollBy(-50)
	if s.Offset() != 0 {
		t.Errorf("Expected offset clamped to 0, got %v", s.Offset())
	}
	s.ScrollBy(5000)
	if s.Offset() != 1000 {
		t.Errorf("Expected offset clamped to 1000, got %v", s.Offset())
	}
	if !s.SetMax(400) || s.Offset() != 400 {
		t.Errorf("Expected shrinking max to pull offset to 400, got %v", s.Offset())
	}
}

func TestScroller_SmoothScrollConverges(t *testing.T) {
	s := NewScroller(0.2)
	s.SetMax(2000)
	s.ScrollTo(1500)

	if s.Offset() != 0 {
		t.Error("Expected ScrollTo not to move the offset before a tick")
	}

	prev := s.Offset()
	ticks := 0
	for s.Animating() {
		if !s.Tick() {
			t.Fatal("Expected every tick of an animation to move the offset")
		}
		if s.Offset() <= prev {
			t.Fatalf("Expected monotonic progress, %v after %v", s.Offset(), prev)
		}
		prev = s.Offset()
		ticks++
		if ticks > 1000 {
			t.Fatal("Smooth scroll did not converge")
		}
	}
	if s.Offset() != 1500 {
		t.Errorf("Expected to land on 1500, got %v", s.Offset())
	}
	if s.Tick() {
		t.Error("Expected idle tick to report no change")
	}
}

func TestScroller_WheelCancelsSmoothScroll(t *testing.T) {
	s := NewScroller(0.2)
	s.SetMax(2000)
	s.ScrollTo(1500)
	s.Tick()

	s.ScrollBy(-10)
	if s.Animating() {
		t.Error("Expected wheel input to cancel the smooth scroll")
	}
}
