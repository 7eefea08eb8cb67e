package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kennycyb/pars/internal/store"
)

func TestWithGuardRestoresOnFailure(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "secret.gpg")
	require.NoError(t, os.WriteFile(target, []byte("original"), 0o644))

	err := store.WithGuard(target, func() error {
		require.NoError(t, os.WriteFile(target, []byte("broken"), 0o644))
		return errors.New("encrypt failed")
	})
	require.Error(t, err)

	data, readErr := os.ReadFile(target)
	require.NoError(t, readErr)
	assert.Equal(t, "original", string(data))
	assert.NoFileExists(t, target+store.BackupExt)
}

func TestWithGuardCommitsOnSuccess(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "secret.gpg")
	require.NoError(t, os.WriteFile(target, []byte("original"), 0o644))

	err := store.WithGuard(target, func() error {
		return os.WriteFile(target, []byte("replaced"), 0o644)
	})
	require.NoError(t, err)

	data, readErr := os.ReadFile(target)
	require.NoError(t, readErr)
	assert.Equal(t, "replaced", string(data))
	assert.NoFileExists(t, target+store.BackupExt)
}

func TestWithGuardBypassedForNewFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "new.gpg")

	called := false
	err := store.WithGuard(target, func() error {
		called = true
		return os.WriteFile(target, []byte("fresh"), 0o644)
	})
	require.NoError(t, err)
	assert.True(t, called)
	assert.NoFileExists(t, target+store.BackupExt)
}
