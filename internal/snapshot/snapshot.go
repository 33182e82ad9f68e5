// Package snapshot renders the particle field to a PNG without a window.
package snapshot

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/iburimskiy/portfolio/internal/particles"
	"github.com/iburimskiy/portfolio/internal/surface"
	"github.com/iburimskiy/portfolio/internal/theme"
	"github.com/iburimskiy/portfolio/internal/viewport"
)

type Options struct {
	Width, Height int
	Frames        int
	Dark          bool
	Seed          uint64
}

// Result describes the last rendered frame.
type Result struct {
	Particles int
	Links     int
}

// Render advances a fresh field by opts.Frames steps and draws the last one
// into a raster.
func Render(opts Options) (*surface.Raster, Result, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, Result{}, fmt.Errorf("snapshot size %dx%d must be positive", opts.Width, opts.Height)
	}
	if opts.Frames < 1 {
		return nil, Result{}, errors.New("snapshot needs at least one frame")
	}

	pal := theme.For(opts.Dark)
	vp := viewport.New()
	vp.Set(opts.Width, opts.Height)
	field := particles.NewField(rand.New(rand.NewPCG(opts.Seed, opts.Seed+1)), pal)
	anim := particles.Start(field, vp)
	defer anim.Stop()

	for i := 0; i < opts.Frames-1; i++ {
		anim.Update()
	}
	r := surface.NewRaster(opts.Width, opts.Height, pal.Background)
	links := anim.Frame(r)
	if err := r.Err(); err != nil {
		r.Close()
		return nil, Result{}, fmt.Errorf("render: %w", err)
	}
	return r, Result{Particles: len(field.Particles()), Links: links}, nil
}

// Save renders and writes the frame to path.
func Save(path string, opts Options) (Result, error) {
	r, res, err := Render(opts)
	if err != nil {
		return res, err
	}
	defer r.Close()
	if err := r.SavePNG(path); err != nil {
		return res, fmt.Errorf("save %s: %w", path, err)
	}
	return res, nil
}
