// Package player drives the speaker for UI feedback sounds.
package player

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/portfolio/internal/audio"
	"github.com/iburimskiy/portfolio/internal/config"
)

type Player struct {
	click   *beep.Buffer
	volume  float64
	mute    bool
	enabled bool
}

// New initialises the speaker and prepares the click sound. On error the
// returned player is silent but usable.
func New(s config.Settings) (*Player, error) {
	p := &Player{volume: s.Volume, mute: s.Mute}
	if s.Mute {
		return p, nil
	}

	click, err := audio.ClickBuffer(s.ClickSample)
	if err != nil {
		return p, err
	}
	if err := speaker.Init(audio.SampleRate, audio.SampleRate.N(time.Second/20)); err != nil {
		return p, fmt.Errorf("init speaker: %w", err)
	}
	p.click = click
	p.enabled = true
	return p, nil
}

// Silent returns a player that never makes a sound.
func Silent() *Player { return &Player{} }

func (p *Player) Enabled() bool { return p.enabled }

func (p *Player) Click() {
	if !p.enabled || p.click == nil {
		return
	}
	speaker.Play(&effects.Volume{
		Streamer: p.click.Streamer(0, p.click.Len()),
		Base:     2,
		Volume:   p.volume,
		Silent:   p.mute,
	})
}

func (p *Player) Close() {
	if !p.enabled {
		return
	}
	speaker.Clear()
	p.enabled = false
}
