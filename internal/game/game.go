// Package game is the ebiten window around the page controller: it turns
// input into controller calls and draws the laid-out document.
package game

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/portfolio/internal/config"
	"github.com/iburimskiy/portfolio/internal/game/frames"
	"github.com/iburimskiy/portfolio/internal/page"
	"github.com/iburimskiy/portfolio/internal/scroll"
)

// LinkOpener opens a link chosen on the page.
type LinkOpener interface {
	Open(a page.Action) error
}

var sectionKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

type Game struct {
	ctrl   *page.Controller
	layer  *Layer
	face   text.Face
	opener LinkOpener
	tap    *frames.Tap

	cancelLayer func()

	// header compaction progress, eased towards 0 or 1
	compact float64

	hover    page.Action
	hovering bool
	links    int
	debug    bool
	lastErr  error
}

func New(ctrl *page.Controller, opener LinkOpener) *Game {
	g := &Game{
		ctrl:   ctrl,
		layer:  NewLayer(),
		face:   text.NewGoXFace(basicfont.Face7x13),
		opener: opener,
		tap:    frames.NewTap(config.FrameRingSize),
	}
	g.cancelLayer = ctrl.Viewport().Subscribe(g.layer.Resize)
	return g
}

func (g *Game) Update() error {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	g.hover, g.hovering = g.ctrl.HitTest(x, y)
	if g.hovering {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if a := g.ctrl.Click(x, y); a.Kind == page.ActionOpenLink {
			g.openLink(a)
		}
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.ctrl.Scroll(-dy * config.WheelStep)
	}

	if err := g.handleKeys(); err != nil {
		return err
	}

	g.ctrl.Update()

	target := 0.0
	if g.ctrl.State().IsScrolled {
		target = 1
	}
	g.compact = frames.Clamp01(g.compact + (target-g.compact)*0.25)
	return nil
}

func (g *Game) handleKeys() error {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		g.ctrl.Scroll(config.KeyStep / 4)
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		g.ctrl.Scroll(-config.KeyStep / 4)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctrl.ScrollPage(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		g.ctrl.ScrollPage(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		g.ctrl.ScrollToTop()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		g.ctrl.ScrollToEnd()
	}
	for i, k := range sectionKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.ctrl.ScrollToSection(scroll.Sections[i])
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.ctrl.ToggleTheme()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) openLink(a page.Action) {
	if g.opener == nil {
		return
	}
	if err := g.opener.Open(a); err != nil {
		log.Printf("open %s: %v", a.URL, err)
		g.lastErr = err
		return
	}
	g.lastErr = nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	pal := g.ctrl.Palette()
	screen.Fill(pal.Background)

	start := time.Now()
	g.links = g.ctrl.Animator().Draw(g.layer)
	g.tap.Record(time.Since(start))
	g.layer.DrawTo(screen)

	g.drawDocument(screen, pal)
	g.drawHeader(screen, pal)
	g.drawScrollTop(screen, pal)

	if g.debug {
		g.drawDebug(screen)
	}
	if g.lastErr != nil {
		g.drawError(screen, pal)
	}
}

// Layout follows the window size so the page reflows on resize.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ctrl.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Close stops the animation, detaches listeners and frees the layer.
func (g *Game) Close() {
	if g.cancelLayer != nil {
		g.cancelLayer()
		g.cancelLayer = nil
	}
	g.ctrl.Close()
	g.layer.Dispose()
}
