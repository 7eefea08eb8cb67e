package store

import (
	"os"
)

// BackupExt is the suffix appended to a sibling backup file during
// overwrite, per spec.md §4.4.
const BackupExt = ".bak"

// Guard implements the Backup/Restore Guard: before overwriting an
// encrypted file it renames the existing file to a `.bak` sibling; on
// success the caller calls Commit to delete the backup, on failure it
// calls Restore to put the original back. This is the same rename-based
// swap the teacher uses for plain file copies in
// internal/service/backup/files.go, generalized to a scoped
// backup/restore/commit lifecycle instead of a one-shot copy.
type Guard struct {
	target     string
	backupPath string
	active     bool
}

// Backup renames target to target+".bak". Fails if target does not exist.
func Backup(target string) (*Guard, error) {
	if !exists(target) {
		return nil, Newf(KindNotFound, "cannot back up nonexistent file %s", target)
	}
	backupPath := target + BackupExt
	if err := os.Rename(target, backupPath); err != nil {
		return nil, Wrap(KindIOError, target, err)
	}
	return &Guard{target: target, backupPath: backupPath, active: true}, nil
}

// Commit deletes the backup after a successful replacement of target.
func (g *Guard) Commit() error {
	if g == nil || !g.active {
		return nil
	}
	g.active = false
	if err := os.Remove(g.backupPath); err != nil && !os.IsNotExist(err) {
		return Wrap(KindIOError, g.backupPath, err)
	}
	return nil
}

// Restore renames the backup back over target, undoing Backup.
func (g *Guard) Restore() error {
	if g == nil || !g.active {
		return nil
	}
	g.active = false
	if err := os.Rename(g.backupPath, g.target); err != nil {
		return Wrap(KindIOError, g.backupPath, err)
	}
	return nil
}

// WithGuard runs fn (typically an encrypt) around a scoped backup of
// target: if target exists, it is backed up first, fn's error triggers a
// restore, and success triggers a commit. If target does not exist, the
// guard is bypassed entirely and fn runs directly (a new-file encryption
// per spec.md §4.4).
func WithGuard(target string, fn func() error) error {
	if !exists(target) {
		return fn()
	}
	g, err := Backup(target)
	if err != nil {
		return err
	}
	if err := fn(); err != nil {
		if restoreErr := g.Restore(); restoreErr != nil {
			return restoreErr
		}
		return err
	}
	return g.Commit()
}
