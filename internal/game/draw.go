package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/portfolio/internal/game/frames"
	"github.com/iburimskiy/portfolio/internal/page"
	"github.com/iburimskiy/portfolio/internal/theme"
)

func (g *Game) drawDocument(screen *ebiten.Image, pal theme.Palette) {
	doc := g.ctrl.Document()
	off := g.ctrl.Offset()
	_, h := g.ctrl.Size()

	for i := range doc.Sections {
		s := &doc.Sections[i]
		if s.Top-off > h || s.Top+s.Height-off < 0 {
			continue
		}
		for _, kind := range page.DrawOrder {
			for _, b := range s.Boxes {
				if b.Kind == kind {
					g.drawBox(screen, b, off, pal)
				}
			}
		}
		for _, t := range s.Texts {
			if t.Y-off > h || t.Y-off+t.Style.LineHeight() < 0 {
				continue
			}
			g.drawText(screen, t.Str, t.X, t.Y-off, t.Style.Scale(), styleColor(t.Style, pal))
		}
	}
	for _, t := range doc.Footer {
		g.drawText(screen, t.Str, t.X, t.Y-off, t.Style.Scale(), styleColor(t.Style, pal))
	}
}

func (g *Game) drawBox(screen *ebiten.Image, b page.Box, off float64, pal theme.Palette) {
	x, y := float32(b.X), float32(b.Y-off)
	w, h := float32(b.W), float32(b.H)
	hovered := g.hovering && g.hover.Kind == page.ActionOpenLink && g.isHovered(b.Rect, off)

	switch b.Kind {
	case page.BoxCard:
		vector.DrawFilledRect(screen, x, y, w, h, pal.Card, false)
		vector.StrokeRect(screen, x, y, w, h, 1, pal.Border, false)
	case page.BoxPanel:
		border := pal.Border
		if hovered {
			border = pal.Accent
		}
		vector.DrawFilledRect(screen, x, y, w, h, theme.WithAlpha(pal.Background, 0.45), false)
		vector.StrokeRect(screen, x, y, w, h, 1, border, false)
	case page.BoxChip:
		fill := theme.WithAlpha(pal.Accent, 0.18)
		if hovered {
			fill = theme.WithAlpha(pal.Accent, 0.35)
		}
		vector.DrawFilledRect(screen, x, y, w, h, fill, false)
	case page.BoxButton:
		fill := theme.WithAlpha(pal.Accent, 0.3)
		if hovered {
			fill = theme.WithAlpha(pal.Accent, 0.5)
		}
		vector.DrawFilledRect(screen, x, y, w, h, fill, false)
		vector.StrokeRect(screen, x, y, w, h, 1, pal.Accent, false)
	case page.BoxAvatar:
		r := w / 2
		vector.DrawFilledCircle(screen, x+r, y+r, r, pal.Accent, true)
		vector.StrokeCircle(screen, x+r, y+r, r+3, 2, pal.Border, true)
		st := page.StyleHeading
		tx := b.X + (b.W-st.TextWidth(b.Label))/2
		ty := b.Y - off + (b.H-page.GlyphHeight*st.Scale())/2
		g.drawText(screen, b.Label, tx, ty, st.Scale(), pal.Background)
	}
}

// isHovered matches the hovered action to a box by position: hotspots
// cover exactly the boxes they belong to.
func (g *Game) isHovered(r page.Rect, off float64) bool {
	mx, my := ebiten.CursorPosition()
	return r.Contains(float64(mx), float64(my)+off)
}

func (g *Game) drawHeader(screen *ebiten.Image, pal theme.Palette) {
	hd := g.ctrl.Header()
	w, _ := g.ctrl.Size()
	active := g.ctrl.State().Active

	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(hd.Height), pal.HeaderTint(g.compact), false)
	if g.compact > 0.01 {
		vector.StrokeLine(screen, 0, float32(hd.Height), float32(w), float32(hd.Height), 1, theme.WithAlpha(pal.Border, g.compact), false)
	}

	g.drawText(screen, hd.Logo.Str, hd.Logo.X, hd.Logo.Y, hd.Logo.Style.Scale(), pal.Accent)

	for _, n := range hd.Nav {
		clr := pal.Muted
		if n.ID == active {
			vector.DrawFilledRect(screen, float32(n.X), float32(n.Y), float32(n.W), float32(n.H), theme.WithAlpha(pal.Accent, 0.22), false)
			clr = pal.Text
		}
		if g.hovering && g.hover.Kind == page.ActionScrollTo && g.hover.Section == n.ID {
			clr = pal.Accent
			vector.StrokeLine(screen, float32(n.X+6), float32(n.Bottom()-2), float32(n.X+n.W-6), float32(n.Bottom()-2), 1, pal.Accent, false)
		}
		tx := n.X + (n.W-page.StyleBody.TextWidth(n.Label))/2
		ty := n.Y + (n.H-page.GlyphHeight)/2
		g.drawText(screen, n.Label, tx, ty, 1, clr)
	}

	g.drawThemeToggle(screen, hd.Toggle, pal)
}

// drawThemeToggle shows a sun in dark mode and a moon in light mode: the
// icon names the theme a click switches to.
func (g *Game) drawThemeToggle(screen *ebiten.Image, r page.Rect, pal theme.Palette) {
	cx, cy := float32(r.X+r.W/2), float32(r.Y+r.H/2)
	ring := pal.Border
	if g.hovering && g.hover.Kind == page.ActionToggleTheme {
		ring = pal.Accent
	}
	vector.StrokeCircle(screen, cx, cy, float32(r.W/2), 1, ring, true)

	if pal.Dark {
		vector.DrawFilledCircle(screen, cx, cy, 5, pal.Text, true)
		for i := 0; i < 8; i++ {
			a := float64(i) * math.Pi / 4
			c, s := float32(math.Cos(a)), float32(math.Sin(a))
			vector.StrokeLine(screen, cx+c*8, cy+s*8, cx+c*11, cy+s*11, 1.5, pal.Text, true)
		}
		return
	}
	vector.DrawFilledCircle(screen, cx, cy, 8, pal.Text, true)
	vector.DrawFilledCircle(screen, cx+4, cy-3, 7, pal.HeaderTint(g.compact), true)
}

func (g *Game) drawScrollTop(screen *ebiten.Image, pal theme.Palette) {
	if !g.ctrl.State().ShowScrollTop {
		return
	}
	w, h := g.ctrl.Size()
	r := page.ScrollTopButton(w, h)
	cx, cy := float32(r.X+r.W/2), float32(r.Y+r.H/2)
	rad := float32(r.W / 2)

	fill := pal.Accent
	if g.hovering && g.hover.Kind == page.ActionScrollTop {
		fill = theme.WithAlpha(pal.Accent, 0.8)
	}
	vector.DrawFilledCircle(screen, cx, cy, rad, fill, true)
	vector.StrokeLine(screen, cx, cy+8, cx, cy-8, 2, pal.Background, true)
	vector.StrokeLine(screen, cx-6, cy-2, cx, cy-8, 2, pal.Background, true)
	vector.StrokeLine(screen, cx+6, cy-2, cx, cy-8, 2, pal.Background, true)
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	avg, worst := g.tap.Stats()
	st := g.ctrl.State()
	msg := fmt.Sprintf("particles %d  links %d  draw avg %s max %s\nfps %.0f  tps %.0f  offset %.0f  active %s",
		len(g.ctrl.Field().Particles()), g.links,
		frames.FormatDuration(avg), frames.FormatDuration(worst),
		ebiten.ActualFPS(), ebiten.ActualTPS(), g.ctrl.Offset(), st.Active)
	_, h := g.ctrl.Size()
	ebitenutil.DebugPrintAt(screen, msg, 8, int(h)-40)
}

func (g *Game) drawError(screen *ebiten.Image, pal theme.Palette) {
	_, h := g.ctrl.Size()
	g.drawText(screen, "Error: "+g.lastErr.Error(), 12, h-24, 1, pal.Accent)
}

func (g *Game) drawText(dst *ebiten.Image, str string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, str, g.face, op)
}

func styleColor(s page.Style, pal theme.Palette) color.Color {
	switch s {
	case page.StyleMuted:
		return pal.Muted
	case page.StyleAccent:
		return pal.Accent
	}
	return pal.Text
}
