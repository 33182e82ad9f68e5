package page

import (
	"strings"
	"testing"

	"github.com/iburimskiy/portfolio/internal/content"
	"github.com/iburimskiy/portfolio/internal/scroll"
)

func mustContent(t *testing.T) *content.Portfolio {
	t.Helper()
	p, err := content.Default()
	if err != nil {
		t.Fatalf("content: %v", err)
	}
	return p
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{name: "Fits", in: "hello world", width: 20, want: []string{"hello world"}},
		{name: "Breaks on space", in: "hello big world", width: 9, want: []string{"hello big", "world"}},
		{name: "Splits long word", in: "abcdefghij", width: 4, want: []string{"abcd", "efgh", "ij"}},
		{name: "Collapses spaces", in: "  a   b  ", width: 10, want: []string{"a b"}},
		{name: "Empty", in: "", width: 10, want: nil},
		{name: "Zero width", in: "ab", width: 0, want: []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrap(tt.in, tt.width)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
				t.Errorf("wrap(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestLayout_SectionsStackInOrder(t *testing.T) {
	p := mustContent(t)
	for _, w := range []float64{360, 800, 1600} {
		doc := Layout(p, w, 700, 64, 2025)

		if len(doc.Sections) != len(scroll.Sections) {
			t.Fatalf("Width %.0f: expected %d sections, got %d", w, len(scroll.Sections), len(doc.Sections))
		}
		y := 0.0
		for i, s := range doc.Sections {
			if s.ID != scroll.Sections[i] {
				t.Errorf("Width %.0f: section %d is %q, want %q", w, i, s.ID, scroll.Sections[i])
			}
			if s.Top != y {
				t.Errorf("Width %.0f: section %q starts at %.1f, want %.1f", w, s.ID, s.Top, y)
			}
			if s.Height <= 0 {
				t.Errorf("Width %.0f: section %q has no height", w, s.ID)
			}
			y += s.Height
		}
		if doc.Height <= y {
			t.Errorf("Width %.0f: expected footer below the last section", w)
		}
		if doc.Sections[0].Height < 700 {
			t.Errorf("Width %.0f: expected hero to fill the first screen, got %.1f", w, doc.Sections[0].Height)
		}
	}
}

func TestLayout_TextStaysInsideWindow(t *testing.T) {
	p := mustContent(t)
	for _, w := range []float64{360, 1024} {
		doc := Layout(p, w, 700, 64, 2025)
		for _, s := range doc.Sections {
			for _, tx := range s.Texts {
				if tx.X < 0 || tx.X+tx.Style.TextWidth(tx.Str) > w+0.001 {
					t.Errorf("Width %.0f: %q overflows at x=%.1f", w, tx.Str, tx.X)
				}
				if tx.Y < s.Top || tx.Y > s.Top+s.Height {
					t.Errorf("Width %.0f: %q lies outside section %q", w, tx.Str, s.ID)
				}
			}
		}
	}
}

func TestLayout_ProjectHotspots(t *testing.T) {
	p := mustContent(t)
	doc := Layout(p, 1024, 700, 64, 2025)
	sec, ok := doc.Section(scroll.Projects)
	if !ok {
		t.Fatal("Expected projects section")
	}
	var links []string
	for _, hs := range sec.Hotspots {
		links = append(links, hs.Action.URL)
	}
	for _, pr := range p.Projects {
		found := false
		for _, l := range links {
			found = found || l == pr.Link
		}
		if !found {
			t.Errorf("Expected a hotspot for %q", pr.Title)
		}
	}
}

func TestLayout_FooterYear(t *testing.T) {
	doc := Layout(mustContent(t), 1024, 700, 64, 2031)
	if len(doc.Footer) != 1 || !strings.Contains(doc.Footer[0].Str, "2031 Wendellmeset") {
		t.Errorf("Unexpected footer %+v", doc.Footer)
	}
}

func TestLayout_EmptyViewport(t *testing.T) {
	doc := Layout(mustContent(t), 0, 0, 64, 2025)
	if len(doc.Sections) != 0 {
		t.Error("Expected nothing laid out for an empty viewport")
	}
	if _, ok := doc.At(0).Anchor(scroll.Home); ok {
		t.Error("Expected no anchors before layout")
	}
}

func TestDocument_AnchorsFollowOffset(t *testing.T) {
	doc := Layout(mustContent(t), 1024, 700, 64, 2025)
	about, _ := doc.Section(scroll.About)

	r, ok := doc.At(100).Anchor(scroll.About)
	if !ok {
		t.Fatal("Expected about anchor")
	}
	if r.Top != about.Top-100 || r.Bottom != about.Top+about.Height-100 {
		t.Errorf("Unexpected anchor %+v for section at %.1f", r, about.Top)
	}
}

func TestLayoutHeader(t *testing.T) {
	h := LayoutHeader(1024, false, "WM")
	if h.Height != 64 {
		t.Errorf("Expected full header height, got %.0f", h.Height)
	}
	if c := LayoutHeader(1024, true, "WM"); c.Height != 48 {
		t.Errorf("Expected compact header height, got %.0f", c.Height)
	}
	if len(h.Nav) != 5 {
		t.Fatalf("Expected 5 nav items, got %d", len(h.Nav))
	}
	for i, n := range h.Nav {
		if n.ID != scroll.Sections[i] {
			t.Errorf("Nav %d is %q, want %q", i, n.ID, scroll.Sections[i])
		}
		if i > 0 && n.X <= h.Nav[i-1].X {
			t.Errorf("Expected nav items left to right")
		}
		if n.X+n.W > h.Toggle.X {
			t.Errorf("Nav %q overlaps the theme toggle", n.Label)
		}
	}
}
