package game

import (
	"errors"
	"fmt"
	"log"
	"os/exec"
	"runtime"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/portfolio/internal/page"
)

// DialogOpener asks before handing a link to the system browser.
type DialogOpener struct{}

func (DialogOpener) Open(a page.Action) error {
	err := zenity.Question(
		fmt.Sprintf("Open %s?\n\n%s", a.Label, a.URL),
		zenity.Title("Open link"),
		zenity.OKLabel("Open"),
		zenity.CancelLabel("Cancel"),
		zenity.QuestionIcon,
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return fmt.Errorf("confirm link: %w", err)
	}

	log.Printf("opening %s", a.URL)
	return openURL(a.URL)
}

func openURL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	go cmd.Wait()
	return nil
}
