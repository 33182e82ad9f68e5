package page

import (
	"github.com/iburimskiy/portfolio/internal/config"
	"github.com/iburimskiy/portfolio/internal/scroll"
)

var navLabels = map[scroll.SectionID]string{
	scroll.Home:     "Home",
	scroll.About:    "About",
	scroll.Skills:   "Skills",
	scroll.Projects: "Projects",
	scroll.Contact:  "Contact",
}

type NavItem struct {
	Rect
	ID    scroll.SectionID
	Label string
}

// Header is the fixed bar at the top of the window.
type Header struct {
	Height float64
	Logo   Text
	Nav    []NavItem
	Toggle Rect
}

const (
	navPadX    = 12
	toggleSize = 32
)

// LayoutHeader places the logo on the left and the navigation and theme
// toggle on the right of a w wide window.
func LayoutHeader(w float64, compact bool, initials string) Header {
	h := Header{Height: config.HeaderHeight}
	if compact {
		h.Height = config.HeaderCompactHeight
	}

	logoY := (h.Height - StyleSubheading.LineHeight()) / 2
	h.Logo = Text{X: pageMargin, Y: logoY + lineGap*StyleSubheading.Scale()/2, Str: initials, Style: StyleSubheading}

	h.Toggle = Rect{X: w - pageMargin - toggleSize, Y: (h.Height - toggleSize) / 2, W: toggleSize, H: toggleSize}

	x := h.Toggle.X - 16
	itemH := GlyphHeight + 2*chipPadY + 4.0
	for i := len(scroll.Sections) - 1; i >= 0; i-- {
		id := scroll.Sections[i]
		label := navLabels[id]
		iw := StyleBody.TextWidth(label) + 2*navPadX
		x -= iw
		h.Nav = append(h.Nav, NavItem{
			Rect:  Rect{X: x, Y: (h.Height - itemH) / 2, W: iw, H: itemH},
			ID:    id,
			Label: label,
		})
		x -= 4
	}
	// Document order, left to right.
	for i, j := 0, len(h.Nav)-1; i < j; i, j = i+1, j-1 {
		h.Nav[i], h.Nav[j] = h.Nav[j], h.Nav[i]
	}
	return h
}

// ScrollTopButton is the round button in the bottom-right corner.
func ScrollTopButton(w, h float64) Rect {
	s := float64(config.ScrollTopSize)
	m := float64(config.ScrollTopMargin)
	return Rect{X: w - m - s, Y: h - m - s, W: s, H: s}
}
