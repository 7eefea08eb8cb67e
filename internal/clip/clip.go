// Package clip copies text to the system clipboard by shelling out to a
// platform clipboard tool, the same external-tool-polymorphism pattern
// internal/pgp and internal/vcs use for their own collaborators. Per
// spec.md's Non-goal (c) the core never implements a clipboard mechanism
// itself.
package clip

import (
	"bytes"
	"os/exec"
	"runtime"

	"github.com/kennycyb/pars/internal/store"
)

// Copier copies text to the clipboard using one of a small set of known
// executables, tried in order until one runs and exits successfully.
type Copier struct {
	candidates [][]string
}

// New builds a Copier with the platform's conventional clipboard tools:
// pbcopy on macOS, wl-copy then xclip on Linux/Wayland/X11, clip on
// Windows.
func New() *Copier {
	switch runtime.GOOS {
	case "darwin":
		return &Copier{candidates: [][]string{{"pbcopy"}}}
	case "windows":
		return &Copier{candidates: [][]string{{"clip"}}}
	default:
		return &Copier{candidates: [][]string{
			{"wl-copy"},
			{"xclip", "-selection", "clipboard"},
		}}
	}
}

// Copy writes text to the clipboard via the first candidate tool that
// runs and exits successfully, returning KindIOError if none succeed.
func (c *Copier) Copy(text string) error {
	var lastErr error
	for _, args := range c.candidates {
		cmd := exec.Command(args[0], args[1:]...)
		cmd.Stdin = bytes.NewBufferString(text)
		var stderr bytes.Buffer
		cmd.Stderr = &stderr
		if err := cmd.Run(); err != nil {
			lastErr = &store.Error{Kind: store.KindIOError, Msg: args[0], Stderr: stderr.String(), Err: err}
			continue
		}
		return nil
	}
	if lastErr == nil {
		lastErr = store.New(store.KindIOError, "no clipboard tool available")
	}
	return lastErr
}
