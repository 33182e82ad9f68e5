// Package scroll derives navigation state from the document scroll offset.
package scroll

import "github.com/iburimskiy/portfolio/internal/config"

type SectionID string

const (
	Home     SectionID = "home"
	About    SectionID = "about"
	Skills   SectionID = "skills"
	Projects SectionID = "projects"
	Contact  SectionID = "contact"
)

// Sections lists the section anchors in document order.
var Sections = []SectionID{Home, About, Skills, Projects, Contact}

// Rect is the vertical span of an anchor relative to the viewport top.
type Rect struct {
	Top, Bottom float64
}

// AnchorSource reports where a section currently sits on screen. ok is
// false while the section is not laid out.
type AnchorSource interface {
	Anchor(id SectionID) (r Rect, ok bool)
}

type State struct {
	Active        SectionID
	IsScrolled    bool
	ShowScrollTop bool
}

type Tracker struct {
	state  State
	offset float64
}

func NewTracker() *Tracker {
	return &Tracker{state: State{Active: Home}}
}

func (t *Tracker) State() State { return t.state }

func (t *Tracker) Offset() float64 { return t.offset }

// OnScroll recomputes the state for the given offset. The first section in
// document order that spans the probe line becomes active; when none does
// the previous active section is kept.
func (t *Tracker) OnScroll(offset float64, anchors AnchorSource) State {
	t.offset = offset
	t.state.IsScrolled = offset > config.ScrolledOffset
	t.state.ShowScrollTop = offset > config.ScrollTopOffset

	for _, id := range Sections {
		r, ok := anchors.Anchor(id)
		if !ok {
			continue
		}
		if r.Top <= config.SectionProbeLine && r.Bottom >= config.SectionProbeLine {
			t.state.Active = id
			break
		}
	}
	return t.state
}

// ScrollToSection marks id active right away and returns the offset that
// brings its top to the viewport top. ok is false for an unknown or
// unmounted section, in which case nothing changes.
func (t *Tracker) ScrollToSection(id SectionID, anchors AnchorSource) (target float64, ok bool) {
	r, ok := anchors.Anchor(id)
	if !ok {
		return t.offset, false
	}
	t.state.Active = id
	return t.offset + r.Top, true
}
