package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// Settings are the user-tunable values read from portfolio.toml.
type Settings struct {
	Width       int     `toml:"width"`
	Height      int     `toml:"height"`
	Title       string  `toml:"title"`
	Volume      float64 `toml:"volume"`
	Mute        bool    `toml:"mute"`
	ClickSample string  `toml:"click_sample"`
	Content     string  `toml:"content"`
	StateDir    string  `toml:"state_dir"`
	Debug       bool    `toml:"debug"`
}

func Defaults() Settings {
	return Settings{
		Width:  WindowWidth,
		Height: WindowHeight,
		Title:  WindowTitle,
		Volume: ClickVolume,
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Settings, error) {
	s := Defaults()
	if path == "" {
		return s, nil
	}
	if _, err := toml.DecodeFile(path, &s); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Defaults(), nil
		}
		return Defaults(), fmt.Errorf("config %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Defaults(), fmt.Errorf("config %s: %w", path, err)
	}
	return s, nil
}

func (s Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", s.Width, s.Height)
	}
	if s.Title == "" {
		return errors.New("title must not be empty")
	}
	return nil
}
