// Package qrcode renders text as a QR code by shelling out to qrencode,
// the same external-tool-polymorphism pattern internal/clip uses for the
// system clipboard.
package qrcode

import (
	"bytes"
	"os/exec"

	"github.com/kennycyb/pars/internal/store"
)

// Render spawns `qrencode -t ANSIUTF8` with text on stdin and returns its
// stdout, a terminal-renderable QR code.
func Render(text string) (string, error) {
	cmd := exec.Command("qrencode", "-t", "ANSIUTF8")
	cmd.Stdin = bytes.NewBufferString(text)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", &store.Error{Kind: store.KindIOError, Msg: "qrencode", Stderr: stderr.String(), Err: err}
	}
	return stdout.String(), nil
}
