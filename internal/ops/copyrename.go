package ops

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/kennycyb/pars/internal/store"
)

// CopyRenameOptions controls CopyOrRename per spec.md §4.6.6.
type CopyRenameOptions struct {
	Copy  bool
	Force bool
}

// CopyOrRename implements spec.md §4.6.6. When the effective recipient
// sets of the source and destination directories differ and the source
// is a secret file, the entry is decrypted and re-encrypted to the new
// recipients instead of being byte-copied; otherwise a plain filesystem
// copy/rename is performed, descending into directories and prompting
// before clobbering an existing destination.
func (c *Context) CopyOrRename(from, to string, opts CopyRenameOptions) error {
	fromPath, err := c.secretPath(from)
	if err != nil {
		return err
	}
	toHasTrailingSep := store.HasTrailingSeparator(to)
	toPath, err := store.ResolveNoExtension(c.Root, to)
	if err != nil {
		return err
	}
	if toHasTrailingSep && !store.IsDir(toPath) {
		return store.Newf(store.KindIsDirectory, "%s must be an existing directory", to)
	}

	if isSecretFile(fromPath, c.Extension) {
		reencrypted, err := c.maybeReencryptAcrossRecipients(fromPath, toPath)
		if err != nil {
			return err
		}
		if reencrypted {
			if !opts.Copy {
				if err := os.Remove(fromPath); err != nil {
					return store.Wrap(store.KindIOError, fromPath, err)
				}
			}
			return c.commitCopyRename(from, to, opts)
		}
	}

	if err := c.plainCopyOrRename(fromPath, toPath, opts); err != nil {
		return err
	}
	return c.commitCopyRename(from, to, opts)
}

func (c *Context) commitCopyRename(from, to string, opts CopyRenameOptions) error {
	if opts.Copy {
		return c.commit(CopyMessage(from, to))
	}
	return c.commit(RenameMessage(from, to))
}

func isSecretFile(path, ext string) bool {
	return store.IsFile(path) && filepath.Ext(path) == "."+ext
}

// maybeReencryptAcrossRecipients computes the effective recipients for
// fromPath's directory and for the destination directory (toPath if it
// is a directory, else toPath's parent, else root) and, if they differ,
// decrypts with the source recipients and encrypts to toPath with the
// destination recipients. It returns whether re-encryption happened.
func (c *Context) maybeReencryptAcrossRecipients(fromPath, toPath string) (bool, error) {
	destDir := toPath
	if !store.IsDir(destDir) {
		destDir = filepath.Dir(destDir)
	}

	fromRecipients, err := store.RecipientsFor(c.Root, filepath.Dir(fromPath))
	if err != nil {
		return false, err
	}
	destRecipients, err := store.RecipientsFor(c.Root, destDir)
	if err != nil {
		return false, err
	}
	if store.SameRecipientSet(fromRecipients, destRecipients) {
		return false, nil
	}

	dest := toPath
	if store.IsDir(toPath) {
		dest = filepath.Join(toPath, filepath.Base(fromPath))
	}

	srcClient, err := c.clientWith(fromRecipients)
	if err != nil {
		return false, err
	}
	dstClient, err := c.clientWith(destRecipients)
	if err != nil {
		return false, err
	}

	secret, err := srcClient.DecryptFile(c.Root, fromPath)
	if err != nil {
		return false, err
	}
	defer secret.Zero()

	if err := store.WithGuard(dest, func() error {
		return dstClient.Encrypt(secret.Expose(), dest)
	}); err != nil {
		return false, err
	}
	return true, nil
}

// plainCopyOrRename performs a filesystem-level copy or move with no
// re-encryption: it clobbers an existing destination (after a prompt,
// unless Force), nests a file/directory under an existing destination
// directory, and falls back from rename to copy+delete across devices.
func (c *Context) plainCopyOrRename(fromPath, toPath string, opts CopyRenameOptions) error {
	dest := toPath
	if store.IsDir(toPath) {
		dest = filepath.Join(toPath, filepath.Base(fromPath))
	}

	if exists(dest) {
		if !opts.Force {
			ok, err := c.confirm(fmt.Sprintf("%s already exists, overwrite? [y/N] ", dest))
			if err != nil {
				return err
			}
			if !ok {
				return store.New(store.KindUserCancelled, "operation cancelled")
			}
		}
		if err := os.RemoveAll(dest); err != nil {
			return store.Wrap(store.KindIOError, dest, err)
		}
	}

	if opts.Copy {
		return copyPath(fromPath, dest)
	}
	return renamePath(fromPath, dest)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// renamePath tries an in-place rename first; on a cross-device error it
// falls back to recursive copy followed by source deletion. Any other
// rename error is returned as is.
func renamePath(from, to string) error {
	err := os.Rename(from, to)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return store.Wrap(store.KindIOError, from, err)
	}
	if err := copyPath(from, to); err != nil {
		return err
	}
	if err := os.RemoveAll(from); err != nil {
		return store.Wrap(store.KindIOError, from, err)
	}
	return nil
}

func copyPath(from, to string) error {
	info, err := os.Stat(from)
	if err != nil {
		return store.Wrap(store.KindIOError, from, err)
	}
	if info.IsDir() {
		return copyDir(from, to)
	}
	return copyFile(from, to)
}

func copyDir(from, to string) error {
	if err := os.MkdirAll(to, 0o755); err != nil {
		return store.Wrap(store.KindIOError, to, err)
	}
	entries, err := os.ReadDir(from)
	if err != nil {
		return store.Wrap(store.KindIOError, from, err)
	}
	for _, entry := range entries {
		src := filepath.Join(from, entry.Name())
		dst := filepath.Join(to, entry.Name())
		if err := copyPath(src, dst); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(from, to string) error {
	src, err := os.Open(from)
	if err != nil {
		return store.Wrap(store.KindIOError, from, err)
	}
	defer src.Close()

	dst, err := os.OpenFile(to, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return store.Wrap(store.KindIOError, to, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return store.Wrap(store.KindIOError, to, err)
	}
	return nil
}
