package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/portfolio/internal/audio/player"
	"github.com/iburimskiy/portfolio/internal/config"
	"github.com/iburimskiy/portfolio/internal/content"
	"github.com/iburimskiy/portfolio/internal/game"
	"github.com/iburimskiy/portfolio/internal/logging"
	"github.com/iburimskiy/portfolio/internal/page"
	"github.com/iburimskiy/portfolio/internal/snapshot"
	"github.com/iburimskiy/portfolio/internal/theme"
)

var (
	configPath   = flag.String("config", "portfolio.toml", "Settings file")
	contentPath  = flag.String("content", "", "Portfolio YAML replacing the built-in content")
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/portfolio.log")
	muteFlag     = flag.Bool("mute", false, "Disable click sounds")
	snapshotPath = flag.String("snapshot", "", "Render the particle field to this PNG and exit")
	framesFlag   = flag.Int("frames", 120, "Frames to simulate before a snapshot")
	widthFlag    = flag.Int("width", 0, "Window or snapshot width")
	heightFlag   = flag.Int("height", 0, "Window or snapshot height")
	lightFlag    = flag.Bool("light", false, "Snapshot in the light theme")
	seedFlag     = flag.Uint64("seed", 1, "Snapshot random seed")
)

func main() {
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v (using defaults)\n", err)
	}
	applyFlags(&settings)

	logFile, err := logging.Setup(settings.Debug, "logs")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging disabled: %v\n", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if *snapshotPath != "" {
		res, err := snapshot.Save(*snapshotPath, snapshot.Options{
			Width:  settings.Width,
			Height: settings.Height,
			Frames: *framesFlag,
			Dark:   !*lightFlag,
			Seed:   *seedFlag,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Snapshot failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s (%d particles, %d links)\n", *snapshotPath, res.Particles, res.Links)
		return
	}

	if err := run(settings); err != nil {
		log.Printf("fatal: %v", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		_ = zenity.Error(err.Error(), zenity.Title(settings.Title), zenity.ErrorIcon)
		os.Exit(1)
	}
}

func applyFlags(s *config.Settings) {
	if *contentPath != "" {
		s.Content = *contentPath
	}
	if *debugFlag {
		s.Debug = true
	}
	if *muteFlag {
		s.Mute = true
	}
	if *widthFlag > 0 {
		s.Width = *widthFlag
	}
	if *heightFlag > 0 {
		s.Height = *heightFlag
	}
}

func run(s config.Settings) error {
	portfolio, err := content.Load(s.Content)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	statePath, err := theme.DefaultStatePath(s.StateDir)
	if err != nil {
		return err
	}
	log.Printf("theme state in %s", statePath)

	clicker, err := player.New(s)
	if err != nil {
		// Non-fatal, the page works without sound
		log.Printf("audio disabled: %v", err)
		clicker = player.Silent()
	}
	defer clicker.Close()

	ctrl := page.New(page.Options{
		Content: portfolio,
		Store:   theme.NewFileStore(statePath),
		Clicker: clicker,
		Year:    time.Now().Year(),
	})
	g := game.New(ctrl, game.DialogOpener{})
	defer g.Close()

	ebiten.SetWindowSize(s.Width, s.Height)
	ebiten.SetWindowTitle(s.Title + " - " + portfolio.Profile.Name)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
