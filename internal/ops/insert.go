package ops

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kennycyb/pars/internal/store"
)

// InsertOptions controls Insert per spec.md §4.6.2.
type InsertOptions struct {
	Echo      bool
	Multiline bool
	Force     bool
}

// Insert reads a new secret's plaintext from c.Stdin and encrypts it to
// name. If the target already exists and !Force, it fails. Multiline
// reads until EOF; single-line mode reads one line with its trailing
// newline trimmed. Echo additionally writes the plaintext to c.Stdout.
func (c *Context) Insert(name string, opts InsertOptions) error {
	path, err := store.Resolve(c.Root, name+"."+c.Extension)
	if err != nil {
		return err
	}

	existed := store.IsFile(path)
	if existed && !opts.Force {
		return store.Newf(store.KindInvalidFlags, "%s already exists, use --force to overwrite", name)
	}

	var plaintext string
	if opts.Multiline {
		data, readErr := io.ReadAll(c.Stdin)
		if readErr != nil {
			return store.Wrap(store.KindIOError, "", readErr)
		}
		plaintext = string(data)
	} else {
		line, readErr := bufio.NewReader(c.Stdin).ReadString('\n')
		if readErr != nil && line == "" && readErr != io.EOF {
			return store.Wrap(store.KindIOError, "", readErr)
		}
		plaintext = strings.TrimSuffix(line, "\n")
		plaintext = strings.TrimSuffix(plaintext, "\r")
	}

	if opts.Echo {
		fmt.Fprint(c.Stdout, plaintext)
	}

	if err := c.encryptTo(path, existed, []byte(plaintext)); err != nil {
		return err
	}

	msg := InsertMessage(name)
	if existed {
		msg = UpdateMessage(name)
	}
	return c.commit(msg)
}

// encryptTo resolves recipients for path and encrypts plaintext to it
// through the Backup/Restore Guard, creating any missing parent
// directories first (mirrors fs::create_dir_all ahead of the write in
// the original's insert/generate operations).
func (c *Context) encryptTo(path string, existed bool, plaintext []byte) error {
	client, err := c.clientFor(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return store.Wrap(store.KindIOError, path, err)
	}
	return store.WithGuard(path, func() error {
		return client.Encrypt(plaintext, path)
	})
}
