package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kennycyb/pars/internal/store"
)

func TestResolve(t *testing.T) {
	root := t.TempDir()

	path, err := store.Resolve(root, "email/work.gpg")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "email", "work.gpg"), path)

	_, err = store.Resolve(root, "../escape")
	require.Error(t, err)
	assert.Equal(t, store.KindPathEscapesRoot, store.KindOf(err))
}

func TestResolveSecret(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "email"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "email", "work.gpg"), []byte("x"), 0o644))

	path, err := store.ResolveSecret(root, "email/work", "gpg")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "email", "work.gpg"), path)

	path, err = store.ResolveSecret(root, "email", "gpg")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "email"), path)

	_, err = store.ResolveSecret(root, "nope", "gpg")
	require.Error(t, err)
	assert.Equal(t, store.KindNotFound, store.KindOf(err))
}

func TestHasTrailingSeparator(t *testing.T) {
	assert.True(t, store.HasTrailingSeparator("email/"))
	assert.False(t, store.HasTrailingSeparator("email"))
}
