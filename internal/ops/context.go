package ops

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/kennycyb/pars/internal/logging"
	"github.com/kennycyb/pars/internal/pgp"
	"github.com/kennycyb/pars/internal/store"
	"github.com/kennycyb/pars/internal/vcs"
)

// Context bundles the collaborators every operation needs: the store
// root, the secret file extension, the external PGP/VCS executables, a
// logger, and the I/O streams used for interactive prompts. It is built
// once per CLI invocation by app/cmd and passed into each operation.
type Context struct {
	Root          string
	Extension     string
	PGPExecutable string
	Git           *vcs.Git
	Log           *logging.Logger
	Colors        store.ColorConfig
	GrepColors    GrepColors
	Stdin         io.Reader
	Stdout        io.Writer
	Stderr        io.Writer
}

// clientFor resolves the effective recipient set for path (walking
// upward from its directory per spec.md §4.2) and constructs a PGP
// Client bound to those recipients.
func (c *Context) clientFor(path string) (*pgp.Client, error) {
	recipients, err := store.RecipientsFor(c.Root, path)
	if err != nil {
		return nil, err
	}
	return pgp.New(c.PGPExecutable, recipients, c.Log)
}

// clientWith constructs a PGP Client bound to an explicit recipient list,
// used by init and by cross-recipient copy/move where the target
// recipients are not necessarily the ones RecipientsFor(path) would find
// (the destination file does not exist yet).
func (c *Context) clientWith(recipients []string) (*pgp.Client, error) {
	return pgp.New(c.PGPExecutable, recipients, c.Log)
}

// commit runs the VCS collaborator's add-all-and-commit, a no-op when Git
// is nil or Root is not a repository.
func (c *Context) commit(message CommitMessage) error {
	if c.Git == nil {
		return nil
	}
	return c.Git.AddAllAndCommit(c.Root, message.String())
}

// confirm prints prompt to Stdout and reads one line from Stdin, per
// spec.md's "[y/N]" confirmation convention: only a response beginning
// with 'y' or 'Y' is an affirmative.
func (c *Context) confirm(prompt string) (bool, error) {
	fmt.Fprint(c.Stdout, prompt)
	reader := bufio.NewReader(c.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		if err == io.EOF {
			return false, nil
		}
		return false, store.Wrap(store.KindIOError, "", err)
	}
	line = strings.TrimSpace(line)
	return strings.HasPrefix(line, "y") || strings.HasPrefix(line, "Y"), nil
}

func (c *Context) secretPath(name string) (string, error) {
	return store.ResolveSecret(c.Root, name, c.Extension)
}
