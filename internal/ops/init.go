package ops

import (
	"os"
	"path/filepath"

	"github.com/kennycyb/pars/internal/store"
)

// InitResult reports what Init did, for the CLI to print an appropriate
// notice.
type InitResult struct {
	// FirstInit is true when the store root had no prior .gpg-id at all.
	FirstInit bool
	// Unchanged is true when the new recipient set equals the old one.
	Unchanged bool
	// Reencrypted lists the files that were re-encrypted with the new
	// recipients.
	Reencrypted []string
}

// Init implements spec.md §4.6.1: ensure root and the target sub-path
// exist, then write or replace target's .gpg-id. If target had no
// .gpg-id, the new one is written and Init stops there (FirstInit is set
// only when target is the store root and the root had no .gpg-id);
// entries already under target are not re-encrypted in that case.
// Otherwise, if the new recipient set differs from the old one, every
// file under target (except .gpg-id itself) is decrypted with the old
// recipients and re-encrypted with the new ones.
func (c *Context) Init(subPath string, recipients []string) (*InitResult, error) {
	if err := os.MkdirAll(c.Root, 0o755); err != nil {
		return nil, store.Wrap(store.KindIOError, c.Root, err)
	}
	targetPath, err := store.Resolve(c.Root, subPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(targetPath, 0o755); err != nil {
		return nil, store.Wrap(store.KindIOError, targetPath, err)
	}

	gpgIDPath := filepath.Join(targetPath, store.GPGIDFilename)
	rootGPGIDPath := filepath.Join(c.Root, store.GPGIDFilename)
	_, rootHadGPGID := os.Stat(rootGPGIDPath)
	firstInit := os.IsNotExist(rootHadGPGID) && targetPath == filepath.Clean(c.Root)

	oldIDs, oldExisted, err := readGPGIDIfPresent(gpgIDPath)
	if err != nil {
		return nil, err
	}

	if !oldExisted {
		if err := store.WriteGPGID(gpgIDPath, recipients); err != nil {
			return nil, err
		}
		if err := c.commit(InitMessage(recipients)); err != nil {
			return nil, err
		}
		return &InitResult{FirstInit: firstInit}, nil
	}

	if store.SameRecipientSet(oldIDs, recipients) {
		return &InitResult{Unchanged: true}, nil
	}

	reencrypted, err := c.reencryptTree(targetPath, oldIDs, recipients)
	if err != nil {
		return nil, err
	}
	if err := store.WriteGPGID(gpgIDPath, recipients); err != nil {
		return nil, err
	}
	if err := c.commit(InitMessage(recipients)); err != nil {
		return nil, err
	}
	return &InitResult{Reencrypted: reencrypted}, nil
}

func readGPGIDIfPresent(path string) ([]string, bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, store.Wrap(store.KindIOError, path, err)
	}
	return store.ParseGPGID(string(data)), true, nil
}

// reencryptTree walks target recursively (via filepath.WalkDir) and
// re-encrypts every file except .gpg-id with newRecipients. Each file is
// decrypted with oldRecipients, backed up, re-encrypted, and its backup
// deleted on success. On any single failure the walk aborts immediately:
// earlier files remain re-encrypted under the new set, which is
// intentional per spec.md §4.6.1 — each file's own Guard ensures it is
// never left in a torn state even though the tree as a whole may be.
func (c *Context) reencryptTree(target string, oldRecipients, newRecipients []string) ([]string, error) {
	oldClient, err := c.clientWith(oldRecipients)
	if err != nil {
		return nil, err
	}
	newClient, err := c.clientWith(newRecipients)
	if err != nil {
		return nil, err
	}

	var done []string
	err = filepath.WalkDir(target, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if d.Name() == store.GPGIDFilename {
			return nil
		}

		secret, decErr := oldClient.DecryptFile(c.Root, path)
		if decErr != nil {
			return decErr
		}
		defer secret.Zero()

		reencErr := store.WithGuard(path, func() error {
			return newClient.Encrypt(secret.Expose(), path)
		})
		if reencErr != nil {
			return reencErr
		}
		done = append(done, path)
		return nil
	})
	if err != nil {
		return done, err
	}
	return done, nil
}
