package ops

import (
	"bytes"
	"crypto/rand"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/kennycyb/pars/internal/store"
)

const randomSuffixAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Edit implements spec.md §4.6.3: decrypt the current content (if any)
// into a scoped temporary file, run the configured editor on it, and
// re-encrypt through the Backup/Restore Guard if the content changed. It
// returns false (with no error) when the editor left the content
// unchanged, matching the "Edit unchanged" property: no re-encryption, no
// VCS commit.
func (c *Context) Edit(name, editorExecutable string) (bool, error) {
	path, err := store.Resolve(c.Root, name+"."+c.Extension)
	if err != nil {
		return false, err
	}

	var original []byte
	existed := store.IsFile(path)
	var client interface {
		Encrypt([]byte, string) error
	}
	if existed {
		pgpClient, decErr := c.clientFor(path)
		if decErr != nil {
			return false, decErr
		}
		secret, decErr := pgpClient.DecryptFile(c.Root, path)
		if decErr != nil {
			return false, decErr
		}
		defer secret.Zero()
		original = append([]byte(nil), secret.Expose()...)
		client = pgpClient
	}

	tempPath, err := newScopedTempFile(name)
	if err != nil {
		return false, err
	}
	defer os.Remove(tempPath)

	if err := os.WriteFile(tempPath, original, 0o600); err != nil {
		return false, store.Wrap(store.KindIOError, tempPath, err)
	}

	if editorExecutable == "" {
		editorExecutable = "vim"
	}
	cmd := exec.Command(editorExecutable, tempPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return false, store.Wrap(store.KindIOError, editorExecutable, err)
	}

	edited, err := os.ReadFile(tempPath)
	if err != nil {
		return false, store.Wrap(store.KindIOError, tempPath, err)
	}

	if bytes.Equal(edited, original) {
		return false, nil
	}

	if client == nil {
		newClient, clientErr := c.clientFor(path)
		if clientErr != nil {
			return false, clientErr
		}
		client = newClient
	}

	if err := store.WithGuard(path, func() error {
		return client.Encrypt(edited, path)
	}); err != nil {
		return false, err
	}

	msg := UpdateMessage(name)
	if !existed {
		msg = InsertMessage(name)
	}
	return true, c.commit(msg)
}

// newScopedTempFile picks a temp directory (/dev/shm on Unix when it
// exists, the platform temp dir elsewhere) and a filename of the shape
// ".<10 random alphanumerics>-<stem>.txt", matching the original
// implementation's edit-operation temp naming.
func newScopedTempFile(name string) (string, error) {
	dir := os.TempDir()
	if runtime.GOOS != "windows" {
		if info, err := os.Stat("/dev/shm"); err == nil && info.IsDir() {
			dir = "/dev/shm"
		}
	}

	stem := filepath.Base(name)
	suffix, err := randomAlphanumeric(10)
	if err != nil {
		return "", store.Wrap(store.KindIOError, dir, err)
	}
	return filepath.Join(dir, "."+suffix+"-"+stem+".txt"), nil
}

func randomAlphanumeric(n int) (string, error) {
	raw := make([]byte, n)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	var b strings.Builder
	for _, v := range raw {
		b.WriteByte(randomSuffixAlphabet[int(v)%len(randomSuffixAlphabet)])
	}
	return b.String(), nil
}
