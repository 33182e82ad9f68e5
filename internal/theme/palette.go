// Package theme holds the dark/light colour schemes and the persisted
// theme preference.
package theme

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the full colour scheme for one theme.
type Palette struct {
	Dark bool

	// Particle is the fill of every particle, alpha included.
	Particle color.NRGBA
	// Line is the link stroke colour; alpha is replaced per link.
	Line color.NRGBA

	Background color.NRGBA
	Card       color.NRGBA
	Border     color.NRGBA
	Text       color.NRGBA
	Muted      color.NRGBA
	Accent     color.NRGBA
	Header     color.NRGBA
}

var (
	darkPalette = Palette{
		Dark:       true,
		Particle:   hexColor("#ffffff", 0.5),
		Line:       hexColor("#ffffff", 1),
		Background: hexColor("#0f1020", 1),
		Card:       hexColor("#1b1d33", 0.82),
		Border:     hexColor("#ffffff", 0.12),
		Text:       hexColor("#f1f1f6", 1),
		Muted:      hexColor("#a3a6c2", 1),
		Accent:     hexColor("#7c8cff", 1),
		Header:     hexColor("#14152a", 0.55),
	}
	lightPalette = Palette{
		Dark:       false,
		Particle:   hexColor("#000000", 0.5),
		Line:       hexColor("#000000", 1),
		Background: hexColor("#eef0f8", 1),
		Card:       hexColor("#ffffff", 0.78),
		Border:     hexColor("#000000", 0.1),
		Text:       hexColor("#1c1d2b", 1),
		Muted:      hexColor("#5d6078", 1),
		Accent:     hexColor("#4856e0", 1),
		Header:     hexColor("#ffffff", 0.55),
	}
)

// For returns the palette for the given theme flag.
func For(dark bool) Palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}

// LinkColor returns the line colour for two particles d units apart.
// Callers only ask for d below the link distance, so the alpha stays in
// (0, alphaBase].
func (p Palette) LinkColor(d, alphaBase, falloff float64) color.NRGBA {
	c := p.Line
	c.A = alpha8(alphaBase - d/falloff)
	return c
}

// HeaderTint blends the header colour towards the accent as the header
// compacts. t is the compaction progress in [0, 1].
func (p Palette) HeaderTint(t float64) color.NRGBA {
	if t <= 0 {
		return p.Header
	}
	if t > 1 {
		t = 1
	}
	from, _ := colorful.MakeColor(opaque(p.Header))
	to, _ := colorful.MakeColor(opaque(p.Card))
	r, g, b := from.BlendLab(to, t).Clamped().RGB255()
	a := float64(p.Header.A) + (float64(p.Card.A)-float64(p.Header.A))*t
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a + 0.5)}
}

// WithAlpha returns c with its alpha scaled by f.
func WithAlpha(c color.NRGBA, f float64) color.NRGBA {
	c.A = alpha8(float64(c.A) / 255 * f)
	return c
}

func hexColor(hex string, alpha float64) color.NRGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic("theme: bad colour " + hex)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha8(alpha)}
}

func opaque(c color.NRGBA) color.NRGBA {
	c.A = 0xff
	return c
}

func alpha8(a float64) uint8 {
	switch {
	case a <= 0:
		return 0
	case a >= 1:
		return 0xff
	}
	return uint8(a*255 + 0.5)
}
