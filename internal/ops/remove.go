package ops

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kennycyb/pars/internal/store"
)

// RemoveOptions controls Remove per spec.md §4.6.5.
type RemoveOptions struct {
	Recursive bool
	Force     bool
}

// Remove deletes the entry named by name, which may resolve either to a
// directory or to name+extension. Directories require Recursive; without
// Force the caller is prompted [y/N] on c.Stdin/c.Stdout.
func (c *Context) Remove(name string, opts RemoveOptions) error {
	path, err := c.secretPath(name)
	if err != nil {
		return err
	}

	isDir := store.IsDir(path)
	if isDir && !opts.Recursive {
		return store.Newf(store.KindIsDirectory, "%s is a directory, use --recursive to remove it", name)
	}

	if !opts.Force {
		ok, err := c.confirm(fmt.Sprintf("remove %s? [y/N] ", name))
		if err != nil {
			return err
		}
		if !ok {
			return store.New(store.KindUserCancelled, "removal cancelled")
		}
	}

	if isDir {
		if err := c.removeTree(path); err != nil {
			return err
		}
	} else {
		if err := os.Remove(path); err != nil {
			return store.Wrap(store.KindIOError, path, err)
		}
	}

	return c.commit(RemoveMessage(name))
}

// removeTree walks path and removes every file, printing one line per
// removed entry to c.Stdout, then removes the now-empty directories.
func (c *Context) removeTree(path string) error {
	var files []string
	err := filepath.WalkDir(path, func(p string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return store.Wrap(store.KindIOError, path, err)
	}

	for _, f := range files {
		if err := os.Remove(f); err != nil {
			return store.Wrap(store.KindIOError, f, err)
		}
		fmt.Fprintln(c.Stdout, f)
	}
	return os.RemoveAll(path)
}
