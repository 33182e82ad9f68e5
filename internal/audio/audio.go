// Package audio builds the short feedback sound used by navigation and the
// theme toggle.
package audio

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
)

const (
	// SampleRate is the rate the speaker runs at and every sound is
	// resampled to.
	SampleRate = beep.SampleRate(44100)
	toneFreq   = 1320
	toneLength = 35 * time.Millisecond
	toneGain   = 0.35
)

var ErrUnsupported = errors.New("unsupported sample type")

// ClickBuffer loads samplePath, or synthesises the default tone when the
// path is empty or cannot be decoded.
func ClickBuffer(samplePath string) (*beep.Buffer, error) {
	if samplePath != "" {
		buf, err := loadSample(samplePath, SampleRate)
		if err == nil {
			return buf, nil
		}
		log.Printf("audio: click sample %s: %v, using tone", samplePath, err)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2})
	buf.Append(tone(SampleRate, toneFreq, toneLength))
	return buf, nil
}

// tone is a sine blip with a quadratic fade-out.
func tone(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	n := rate.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= n {
			return 0, false
		}
		i := 0
		for ; i < len(samples) && pos < n; i++ {
			t := float64(pos) / float64(rate)
			env := 1 - float64(pos)/float64(n)
			v := math.Sin(2*math.Pi*freq*t) * env * env * toneGain
			samples[i] = [2]float64{v, v}
			pos++
		}
		return i, true
	})
}

// loadSample decodes a wav, mp3 or flac file fully into memory at rate.
func loadSample(path string, rate beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	// Closing the decoder closes f as well.
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != rate {
		s = beep.Resample(4, format.SampleRate, rate, streamer)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: format.NumChannels, Precision: format.Precision})
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, err
	}
	return buf, nil
}
