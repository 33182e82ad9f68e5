package frames

import (
	"testing"
	"time"
)

func TestTap_SnapshotChronological(t *testing.T) {
	tap := NewTap(4)
	for i := 1; i <= 6; i++ {
		tap.Record(time.Duration(i) * time.Millisecond)
	}

	got := tap.Snapshot(10)
	want := []time.Duration{3, 4, 5, 6}
	if len(got) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i]*time.Millisecond {
			t.Errorf("Entry %d: expected %v, got %v", i, want[i]*time.Millisecond, got[i])
		}
	}

	if last := tap.Snapshot(1); len(last) != 1 || last[0] != 6*time.Millisecond {
		t.Errorf("Expected most recent entry, got %v", last)
	}
}

func TestTap_PartiallyFilled(t *testing.T) {
	tap := NewTap(8)
	tap.Record(2 * time.Millisecond)
	tap.Record(4 * time.Millisecond)

	if got := tap.Snapshot(8); len(got) != 2 {
		t.Errorf("Expected only recorded entries, got %v", got)
	}
	avg, worst := tap.Stats()
	if avg != 3*time.Millisecond || worst != 4*time.Millisecond {
		t.Errorf("Expected avg 3ms worst 4ms, got %v %v", avg, worst)
	}
}

func TestTap_Empty(t *testing.T) {
	avg, worst := NewTap(4).Stats()
	if avg != 0 || worst != 0 {
		t.Errorf("Expected zero stats, got %v %v", avg, worst)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0.00ms"},
		{1500 * time.Microsecond, "1.50ms"},
		{16*time.Millisecond + 670*time.Microsecond, "16.67ms"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestClamp01(t *testing.T) {
	for in, want := range map[float64]float64{-1: 0, 0.25: 0.25, 3: 1} {
		if got := Clamp01(in); got != want {
			t.Errorf("Clamp01(%v) = %v, want %v", in, got, want)
		}
	}
}
