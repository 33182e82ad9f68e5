// Package frames keeps a short history of frame render times for the debug
// overlay.
package frames

import (
	"fmt"
	"time"
)

// Tap records the last N durations into a ring buffer.
type Tap struct {
	buffer    []time.Duration
	nextIndex int
	filled    int
}

func NewTap(ringSize int) *Tap {
	return &Tap{buffer: make([]time.Duration, ringSize)}
}

func (t *Tap) Record(d time.Duration) {
	t.buffer[t.nextIndex] = d
	t.nextIndex++
	if t.nextIndex >= len(t.buffer) {
		t.nextIndex = 0
	}
	if t.filled < len(t.buffer) {
		t.filled++
	}
}

// Snapshot returns up to the last n durations, oldest first.
func (t *Tap) Snapshot(n int) []time.Duration {
	if n > t.filled {
		n = t.filled
	}
	out := make([]time.Duration, 0, n)
	// Walk backwards from nextIndex - 1
	idx := t.nextIndex - 1
	if idx < 0 {
		idx = len(t.buffer) - 1
	}
	for i := 0; i < n; i++ {
		out = append(out, t.buffer[idx])
		idx--
		if idx < 0 {
			idx = len(t.buffer) - 1
		}
	}
	// reverse to chronological order
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Stats returns the mean and the worst of the recorded durations.
func (t *Tap) Stats() (avg, worst time.Duration) {
	if t.filled == 0 {
		return 0, 0
	}
	var sum time.Duration
	for _, d := range t.Snapshot(t.filled) {
		sum += d
		worst = max(worst, d)
	}
	return sum / time.Duration(t.filled), worst
}

// FormatDuration formats a frame time as milliseconds with two decimals.
func FormatDuration(d time.Duration) string {
	return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
