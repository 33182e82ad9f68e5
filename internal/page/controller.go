package page

import (
	"math/rand/v2"
	"strings"

	"github.com/iburimskiy/portfolio/internal/config"
	"github.com/iburimskiy/portfolio/internal/content"
	"github.com/iburimskiy/portfolio/internal/particles"
	"github.com/iburimskiy/portfolio/internal/scroll"
	"github.com/iburimskiy/portfolio/internal/theme"
	"github.com/iburimskiy/portfolio/internal/viewport"
)

// Clicker gives audible feedback for navigation and theme changes.
type Clicker interface {
	Click()
}

type nopClicker struct{}

func (nopClicker) Click() {}

type Options struct {
	Content *content.Portfolio
	Store   theme.Store
	Rand    *rand.Rand
	Clicker Clicker
	// Year is printed in the footer.
	Year int
}

// Controller is the single owner of the page state. The window shell feeds
// it sizes, ticks and input and reads back what to draw.
type Controller struct {
	content *content.Portfolio
	year    int
	clicker Clicker

	pref     *theme.Preference
	tracker  *scroll.Tracker
	scroller *scroll.Scroller
	vp       *viewport.Viewport
	field    *particles.Field
	anim     *particles.Animator

	doc    *Document
	header Header
	w, h   float64

	mounted      bool
	cancelLayout func()
}

func New(opts Options) *Controller {
	clicker := opts.Clicker
	if clicker == nil {
		clicker = nopClicker{}
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	store := opts.Store
	if store == nil {
		store = theme.NewMemStore()
	}

	pref := theme.LoadPreference(store, config.ThemeKey)
	c := &Controller{
		content:  opts.Content,
		year:     opts.Year,
		clicker:  clicker,
		pref:     pref,
		tracker:  scroll.NewTracker(),
		scroller: scroll.NewScroller(config.ScrollEase),
		vp:       viewport.New(),
		doc:      &Document{},
	}
	c.field = particles.NewField(rng, pref.Palette())
	c.anim = particles.Start(c.field, c.vp)
	c.cancelLayout = c.vp.Subscribe(c.relayout)
	c.header = LayoutHeader(0, false, c.content.Profile.Initials)
	return c
}

// Resize adapts the page to a new window size. The first call mounts the
// page and derives the initial scroll state.
func (c *Controller) Resize(w, h int) {
	c.vp.Set(w, h)
	if !c.mounted {
		c.mounted = true
		c.onScroll()
	}
}

func (c *Controller) relayout(w, h int) {
	c.w, c.h = float64(w), float64(h)
	c.doc = Layout(c.content, c.w, c.h, config.HeaderHeight, c.year)
	moved := c.scroller.SetMax(c.doc.Height - c.h)
	if moved && c.mounted {
		c.onScroll()
		return
	}
	c.header = LayoutHeader(c.w, c.tracker.State().IsScrolled, c.content.Profile.Initials)
}

func (c *Controller) onScroll() {
	off := c.scroller.Offset()
	st := c.tracker.OnScroll(off, c.doc.At(off))
	c.header = LayoutHeader(c.w, st.IsScrolled, c.content.Profile.Initials)
}

// Update advances one frame: particles move and any smooth scroll eases on.
func (c *Controller) Update() {
	c.anim.Update()
	if c.scroller.Tick() {
		c.onScroll()
	}
}

// Scroll moves the document by delta immediately.
func (c *Controller) Scroll(delta float64) {
	if c.scroller.ScrollBy(delta) {
		c.onScroll()
	}
}

// ScrollPage scrolls by one screen, less the header, in direction dir.
func (c *Controller) ScrollPage(dir float64) {
	c.Scroll(dir * (c.h - c.header.Height))
}

// ScrollToSection starts a smooth scroll to id and marks it active at once.
func (c *Controller) ScrollToSection(id scroll.SectionID) bool {
	off := c.scroller.Offset()
	target, ok := c.tracker.ScrollToSection(id, c.doc.At(off))
	if !ok {
		return false
	}
	c.scroller.ScrollTo(target)
	c.header = LayoutHeader(c.w, c.tracker.State().IsScrolled, c.content.Profile.Initials)
	c.clicker.Click()
	return true
}

func (c *Controller) ScrollToTop() {
	c.scroller.ScrollTo(0)
	c.clicker.Click()
}

func (c *Controller) ScrollToEnd() {
	c.scroller.ScrollTo(c.scroller.Max())
}

// ToggleTheme flips and persists the theme and recolours the particles.
func (c *Controller) ToggleTheme() bool {
	c.pref.Toggle()
	c.Recolor()
	c.clicker.Click()
	return c.pref.Dark()
}

// Recolor applies the current theme to the particle field. Repeated calls
// have no further effect.
func (c *Controller) Recolor() {
	c.field.Recolor(c.pref.Palette())
}

// Click handles a primary click at window coordinates and returns what it
// triggered. Links are returned unopened, with placeholders resolved.
func (c *Controller) Click(x, y float64) Action {
	a, ok := c.HitTest(x, y)
	if !ok {
		return Action{}
	}
	switch a.Kind {
	case ActionScrollTo:
		c.ScrollToSection(a.Section)
	case ActionToggleTheme:
		c.ToggleTheme()
	case ActionScrollTop:
		c.ScrollToTop()
	case ActionOpenLink:
		c.clicker.Click()
	}
	return a
}

// HitTest reports what a click at window coordinates would do, without
// doing it.
func (c *Controller) HitTest(x, y float64) (Action, bool) {
	if y < c.header.Height {
		for _, n := range c.header.Nav {
			if n.Contains(x, y) {
				return Action{Kind: ActionScrollTo, Label: n.Label, Section: n.ID}, true
			}
		}
		if c.header.Toggle.Contains(x, y) {
			return Action{Kind: ActionToggleTheme, Label: "Toggle theme"}, true
		}
		return Action{}, false
	}
	if c.tracker.State().ShowScrollTop && ScrollTopButton(c.w, c.h).Contains(x, y) {
		return Action{Kind: ActionScrollTop, Label: "Scroll to top"}, true
	}
	hs, ok := c.doc.HotspotAt(x, y+c.scroller.Offset())
	if !ok {
		return Action{}, false
	}
	a := hs.Action
	a.URL = c.resolve(a.URL)
	return a, true
}

func (c *Controller) resolve(url string) string {
	name := "light"
	if c.pref.Dark() {
		name = "dark"
	}
	return strings.ReplaceAll(url, "{theme}", name)
}

func (c *Controller) State() scroll.State { return c.tracker.State() }

func (c *Controller) Offset() float64 { return c.scroller.Offset() }

func (c *Controller) Dark() bool { return c.pref.Dark() }

func (c *Controller) Palette() theme.Palette { return c.pref.Palette() }

func (c *Controller) Document() *Document { return c.doc }

func (c *Controller) Header() Header { return c.header }

func (c *Controller) Content() *content.Portfolio { return c.content }

func (c *Controller) Field() *particles.Field { return c.field }

func (c *Controller) Animator() *particles.Animator { return c.anim }

func (c *Controller) Viewport() *viewport.Viewport { return c.vp }

func (c *Controller) Size() (w, h float64) { return c.w, c.h }

// Close stops the animation and detaches every resize listener.
func (c *Controller) Close() {
	c.anim.Stop()
	if c.cancelLayout != nil {
		c.cancelLayout()
		c.cancelLayout = nil
	}
}
