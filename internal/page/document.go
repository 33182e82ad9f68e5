// Package page lays out the portfolio as a scrollable document and owns
// the state that drives it: theme, scroll position, active section and the
// particle field behind it.
package page

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/iburimskiy/portfolio/internal/content"
	"github.com/iburimskiy/portfolio/internal/scroll"
)

// Glyph metrics of the fixed-width face the shell renders with.
const (
	GlyphWidth  = 7
	GlyphHeight = 13
	lineGap     = 6
)

const (
	pageMargin    = 24
	maxColumn     = 880
	cardPad       = 28
	sectionBottom = 32
	chipPadX      = 8
	chipPadY      = 4
	chipGap       = 8
	gridGap       = 20
	avatarSize    = 96
	minCardWidth  = 260
)

type Style int

const (
	StyleBody Style = iota
	StyleMuted
	StyleAccent
	StyleSubheading
	StyleHeading
	StyleHero
)

func (s Style) Scale() float64 {
	switch s {
	case StyleHero:
		return 3
	case StyleHeading:
		return 2
	case StyleSubheading:
		return 1.5
	}
	return 1
}

func (s Style) GlyphWidth() float64 { return GlyphWidth * s.Scale() }

func (s Style) LineHeight() float64 { return (GlyphHeight + lineGap) * s.Scale() }

// TextWidth is the rendered width of str in style s.
func (s Style) TextWidth(str string) float64 {
	return float64(utf8.RuneCountInString(str)) * s.GlyphWidth()
}

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) Bottom() float64 { return r.Y + r.H }

type BoxKind int

const (
	BoxCard BoxKind = iota
	BoxPanel
	BoxChip
	BoxButton
	BoxAvatar
)

// DrawOrder is the back-to-front order of box kinds.
var DrawOrder = []BoxKind{BoxCard, BoxPanel, BoxAvatar, BoxChip, BoxButton}

type Box struct {
	Rect
	Kind BoxKind
	// Label is drawn centred in avatar boxes.
	Label string
}

// Text is one laid-out line; Y is the top of the line box.
type Text struct {
	X, Y  float64
	Str   string
	Style Style
}

type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionOpenLink
	ActionScrollTo
	ActionScrollTop
	ActionToggleTheme
)

type Action struct {
	Kind    ActionKind
	Label   string
	URL     string
	Section scroll.SectionID
}

// Hotspot is a clickable document region.
type Hotspot struct {
	Rect
	Action Action
}

type Section struct {
	ID       scroll.SectionID
	Top      float64
	Height   float64
	Boxes    []Box
	Texts    []Text
	Hotspots []Hotspot
}

// Document is the laid-out page in document coordinates: y grows down from
// the top of the first section.
type Document struct {
	Width, Height float64
	Sections      []Section
	Footer        []Text
}

func (d *Document) Section(id scroll.SectionID) (*Section, bool) {
	for i := range d.Sections {
		if d.Sections[i].ID == id {
			return &d.Sections[i], true
		}
	}
	return nil, false
}

// At returns the anchors as seen from scroll offset.
func (d *Document) At(offset float64) scroll.AnchorSource {
	return docView{doc: d, offset: offset}
}

// HotspotAt finds the hotspot under a document point.
func (d *Document) HotspotAt(x, y float64) (Hotspot, bool) {
	for _, s := range d.Sections {
		if y < s.Top || y >= s.Top+s.Height {
			continue
		}
		for i := len(s.Hotspots) - 1; i >= 0; i-- {
			if s.Hotspots[i].Contains(x, y) {
				return s.Hotspots[i], true
			}
		}
	}
	return Hotspot{}, false
}

type docView struct {
	doc    *Document
	offset float64
}

func (v docView) Anchor(id scroll.SectionID) (scroll.Rect, bool) {
	s, ok := v.doc.Section(id)
	if !ok {
		return scroll.Rect{}, false
	}
	top := s.Top - v.offset
	return scroll.Rect{Top: top, Bottom: top + s.Height}, true
}

// Layout lays p out for a viewport of w×h. headerHeight is kept clear at
// the top of every section so headings are not hidden behind the header.
func Layout(p *content.Portfolio, w, h, headerHeight float64, year int) *Document {
	doc := &Document{Width: w}
	if w <= 0 || h <= 0 {
		return doc
	}

	col := math.Min(w-2*pageMargin, maxColumn)
	if col < 4*GlyphWidth {
		col = 4 * GlyphWidth
	}
	x := (w - col) / 2
	padTop := headerHeight + 24

	y := 0.0
	add := func(id scroll.SectionID, build func(b *builder), minHeight float64) {
		sec := Section{ID: id, Top: y}
		b := &builder{sec: &sec, x: x + cardPad, w: col - 2*cardPad, y: y + padTop + cardPad}
		build(b)
		cardTop := y + padTop
		cardH := b.y + cardPad - cardTop
		sec.Height = padTop + cardH + sectionBottom
		if sec.Height < minHeight {
			// Centre the card vertically in the taller section.
			shift := (minHeight - sec.Height) / 2
			sec.shift(shift)
			cardTop += shift
			sec.Height = minHeight
		}
		card := Box{Rect: Rect{X: x, Y: cardTop, W: col, H: cardH}, Kind: BoxCard}
		sec.Boxes = append([]Box{card}, sec.Boxes...)
		doc.Sections = append(doc.Sections, sec)
		y += sec.Height
	}

	add(scroll.Home, func(b *builder) { buildHero(b, p) }, h)
	add(scroll.About, func(b *builder) { buildAbout(b, p) }, 0)
	add(scroll.Skills, func(b *builder) { buildSkills(b, p) }, 0)
	add(scroll.Projects, func(b *builder) { buildProjects(b, p) }, 0)
	add(scroll.Contact, func(b *builder) { buildContact(b, p) }, 0)

	footer := fmt.Sprintf("(c) %d %s. All rights reserved.", year, p.Profile.Name)
	y += 8
	doc.Footer = append(doc.Footer, Text{X: (w - StyleMuted.TextWidth(footer)) / 2, Y: y, Str: footer, Style: StyleMuted})
	y += StyleMuted.LineHeight() + 24

	doc.Height = y
	return doc
}

func (s *Section) shift(dy float64) {
	for i := range s.Boxes {
		s.Boxes[i].Y += dy
	}
	for i := range s.Texts {
		s.Texts[i].Y += dy
	}
	for i := range s.Hotspots {
		s.Hotspots[i].Y += dy
	}
}

type builder struct {
	sec  *Section
	x, w float64
	y    float64
}

func (b *builder) gap(d float64) { b.y += d }

func (b *builder) text(s string, st Style) {
	for _, ln := range wrap(s, int(b.w/st.GlyphWidth())) {
		b.sec.Texts = append(b.sec.Texts, Text{X: b.x, Y: b.y, Str: ln, Style: st})
		b.y += st.LineHeight()
	}
}

func (b *builder) centred(s string, st Style) {
	for _, ln := range wrap(s, int(b.w/st.GlyphWidth())) {
		x := b.x + (b.w-st.TextWidth(ln))/2
		b.sec.Texts = append(b.sec.Texts, Text{X: x, Y: b.y, Str: ln, Style: st})
		b.y += st.LineHeight()
	}
}

// chip is one flowed label, optionally clickable.
type chip struct {
	label  string
	action Action
}

// chips flows labels left to right, wrapping to new rows. With centre set
// each row is centred in the column.
func (b *builder) chips(items []chip, kind BoxKind, st Style, centre bool) {
	if len(items) == 0 {
		return
	}
	h := GlyphHeight*st.Scale() + 2*chipPadY

	var row []chip
	var rowW float64
	flush := func() {
		x := b.x
		if centre {
			x += (b.w - rowW) / 2
		}
		for _, c := range row {
			cw := st.TextWidth(c.label) + 2*chipPadX
			r := Rect{X: x, Y: b.y, W: cw, H: h}
			b.sec.Boxes = append(b.sec.Boxes, Box{Rect: r, Kind: kind})
			b.sec.Texts = append(b.sec.Texts, Text{X: x + chipPadX, Y: b.y + chipPadY, Str: c.label, Style: st})
			if c.action.Kind != ActionNone {
				b.sec.Hotspots = append(b.sec.Hotspots, Hotspot{Rect: r, Action: c.action})
			}
			x += cw + chipGap
		}
		b.y += h + chipGap
		row, rowW = row[:0], 0
	}
	for _, c := range items {
		cw := st.TextWidth(c.label) + 2*chipPadX
		next := rowW + cw
		if len(row) > 0 {
			next += chipGap
		}
		if len(row) > 0 && next > b.w {
			flush()
			next = cw
		}
		row = append(row, c)
		rowW = next
	}
	flush()
	b.y -= chipGap
}

func buildHero(b *builder, p *content.Portfolio) {
	b.sec.Boxes = append(b.sec.Boxes, Box{
		Rect:  Rect{X: b.x + (b.w-avatarSize)/2, Y: b.y, W: avatarSize, H: avatarSize},
		Kind:  BoxAvatar,
		Label: p.Profile.Initials,
	})
	b.gap(avatarSize + 20)
	b.centred("Hi, I'm "+p.Profile.Name, StyleHero)
	b.gap(4)
	b.centred(p.Profile.Role, StyleSubheading)
	b.gap(16)

	var social []chip
	if p.Profile.GitHub != "" {
		social = append(social, chip{label: "GitHub", action: Action{Kind: ActionOpenLink, Label: "GitHub", URL: p.Profile.GitHub}})
	}
	if p.Profile.Email != "" {
		social = append(social, chip{label: "Email", action: Action{Kind: ActionOpenLink, Label: "Email", URL: "mailto:" + p.Profile.Email}})
	}
	b.chips(social, BoxButton, StyleBody, true)
	b.gap(28)
	b.centred("Scroll down", StyleMuted)
}

func buildAbout(b *builder, p *content.Portfolio) {
	b.text("About Me", StyleHeading)
	b.gap(12)
	for _, para := range p.About.Paragraphs {
		b.text(para, StyleBody)
		b.gap(10)
	}
	for _, item := range p.About.Bullets {
		b.text("* "+item, StyleBody)
	}
	if len(p.Organizations) == 0 {
		return
	}
	b.gap(20)
	b.text("Organizations", StyleSubheading)
	b.gap(8)
	orgs := make([]chip, 0, len(p.Organizations))
	for _, o := range p.Organizations {
		orgs = append(orgs, chip{label: o.Name, action: Action{Kind: ActionOpenLink, Label: o.Name, URL: o.URL()}})
	}
	b.chips(orgs, BoxChip, StyleBody, false)
}

// statsLinks are the GitHub statistics cards; {theme} is replaced with
// dark or light when opened.
var statsLinks = []chip{
	{label: "Top Languages", action: Action{Kind: ActionOpenLink, Label: "Top Languages",
		URL: "https://github-readme-stats.vercel.app/api/top-langs/?username={user}&layout=compact&theme={theme}"}},
	{label: "GitHub Stats", action: Action{Kind: ActionOpenLink, Label: "GitHub Stats",
		URL: "https://github-readme-stats.vercel.app/api?username={user}&show_icons=true&theme={theme}"}},
}

func buildSkills(b *builder, p *content.Portfolio) {
	b.text("Skills", StyleHeading)
	b.gap(12)
	for i, cat := range p.Skills {
		if i > 0 {
			b.gap(16)
		}
		b.text(cat.Category, StyleSubheading)
		b.gap(8)
		items := make([]chip, 0, len(cat.Items))
		for _, it := range cat.Items {
			items = append(items, chip{label: it})
		}
		b.chips(items, BoxChip, StyleBody, false)
	}

	user := githubUser(p.Profile.GitHub)
	if user == "" {
		return
	}
	b.gap(20)
	b.text("GitHub Stats", StyleSubheading)
	b.gap(8)
	stats := make([]chip, len(statsLinks))
	for i, c := range statsLinks {
		c.action.URL = strings.ReplaceAll(c.action.URL, "{user}", user)
		stats[i] = c
	}
	b.chips(stats, BoxButton, StyleBody, false)
}

func buildProjects(b *builder, p *content.Portfolio) {
	b.text("Projects", StyleHeading)
	b.gap(16)

	cols := int((b.w + gridGap) / (minCardWidth + gridGap))
	cols = max(1, min(cols, 3))
	cardW := (b.w - gridGap*float64(cols-1)) / float64(cols)

	for start := 0; start < len(p.Projects); start += cols {
		end := min(start+cols, len(p.Projects))
		rowTop := b.y
		rowBottom := rowTop
		var cards []Rect
		for i := start; i < end; i++ {
			pr := p.Projects[i]
			cx := b.x + float64(i-start)*(cardW+gridGap)
			cb := &builder{sec: b.sec, x: cx + 16, w: cardW - 32, y: rowTop + 16}
			cb.text(pr.Title, StyleSubheading)
			cb.gap(6)
			cb.text(pr.Description, StyleMuted)
			cb.gap(10)
			tech := make([]chip, 0, len(pr.Tech))
			for _, t := range pr.Tech {
				tech = append(tech, chip{label: t})
			}
			cb.chips(tech, BoxChip, StyleBody, false)
			cb.gap(12)
			if pr.Org != "" {
				cb.text(pr.Org, StyleMuted)
			}
			cb.text("View Project >", StyleAccent)
			rowBottom = math.Max(rowBottom, cb.y+16)
			cards = append(cards, Rect{X: cx, Y: rowTop, W: cardW})
		}
		for i, r := range cards {
			r.H = rowBottom - rowTop
			pr := p.Projects[start+i]
			b.sec.Boxes = append(b.sec.Boxes, Box{Rect: r, Kind: BoxPanel})
			b.sec.Hotspots = append(b.sec.Hotspots, Hotspot{Rect: r, Action: Action{Kind: ActionOpenLink, Label: pr.Title, URL: pr.Link}})
		}
		b.y = rowBottom + gridGap
	}
	b.y -= gridGap
}

func buildContact(b *builder, p *content.Portfolio) {
	b.text("Contact Me", StyleHeading)
	b.gap(12)
	if p.Contact.Intro != "" {
		b.text(p.Contact.Intro, StyleBody)
		b.gap(16)
	}
	links := make([]chip, 0, len(p.Contact.Links))
	for _, l := range p.Contact.Links {
		links = append(links, chip{label: l.Label, action: Action{Kind: ActionOpenLink, Label: l.Label, URL: l.URL}})
	}
	b.chips(links, BoxButton, StyleBody, false)
}

func githubUser(profile string) string {
	s := strings.TrimSuffix(profile, "/")
	i := strings.LastIndex(s, "/")
	if i < 0 || !strings.Contains(s, "github.com") {
		return ""
	}
	return s[i+1:]
}

// wrap breaks s into lines of at most width runes, splitting words that
// do not fit on a line of their own.
func wrap(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	var lines []string
	var cur []rune
	for _, word := range strings.Fields(s) {
		w := []rune(word)
		if len(cur) > 0 && len(cur)+1+len(w) > width {
			lines = append(lines, string(cur))
			cur = cur[:0]
		}
		for len(w) > width {
			if len(cur) > 0 {
				lines = append(lines, string(cur))
				cur = cur[:0]
			}
			lines = append(lines, string(w[:width]))
			w = w[width:]
		}
		if len(cur) > 0 {
			cur = append(cur, ' ')
		}
		cur = append(cur, w...)
	}
	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	return lines
}
