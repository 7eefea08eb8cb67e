package ops

import (
	"os"
	"path/filepath"

	"github.com/kennycyb/pars/internal/store"
)

// ShowResult is the outcome of Show: either a rendered directory tree or
// a decrypted secret, never both.
type ShowResult struct {
	IsDir  bool
	Header string
	Tree   string
	Secret *store.Secret
}

// Show implements the ls_io dispatch of spec.md §4.6.7, shared by both
// the `ls` and `show` CLI commands: resolve name (the store root if
// empty), follow symlinks repeatedly, then render a tree for a
// directory or decrypt a file. Any other filesystem kind fails with
// KindInvalidFileType.
func (c *Context) Show(name string) (*ShowResult, error) {
	path := c.Root
	header := "Password Store"
	if name != "" {
		p, err := c.secretPath(name)
		if err != nil {
			return nil, err
		}
		path = p
		header = name
	}

	resolved, err := followSymlinks(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return nil, store.Wrap(store.KindNotFound, resolved, err)
	}

	switch {
	case info.IsDir():
		tree, err := store.Build(store.BuildConfig{FSRoot: resolved, Name: header, FilterType: store.FilterDisable})
		if err != nil {
			return nil, err
		}
		rendered := store.Render(tree, c.Colors, store.StripExt{Ext: c.Extension})
		return &ShowResult{IsDir: true, Header: header, Tree: header + "\n" + rendered}, nil
	case info.Mode().IsRegular():
		client, err := c.clientFor(resolved)
		if err != nil {
			return nil, err
		}
		secret, err := client.DecryptFile(c.Root, resolved)
		if err != nil {
			return nil, err
		}
		return &ShowResult{Secret: secret}, nil
	default:
		return nil, store.Newf(store.KindInvalidFileType, "%s is neither a file nor a directory", resolved)
	}
}

// followSymlinks repeatedly resolves a single level of symlink at path
// until a non-symlink is reached, per spec.md §4.6.7.
func followSymlinks(path string) (string, error) {
	for {
		info, err := os.Lstat(path)
		if err != nil {
			return "", store.Wrap(store.KindNotFound, path, err)
		}
		if info.Mode()&os.ModeSymlink == 0 {
			return path, nil
		}
		target, err := os.Readlink(path)
		if err != nil {
			return "", store.Wrap(store.KindIOError, path, err)
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(path), target)
		}
		path = target
	}
}
