package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kennycyb/pars/internal/store"
)

func TestParseGPGID(t *testing.T) {
	ids := store.ParseGPGID("  alice@example.com \n\nbob@example.com\n   \n")
	assert.Equal(t, []string{"alice@example.com", "bob@example.com"}, ids)
}

func TestWriteGPGIDNoTrailingNewline(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, store.GPGIDFilename)
	require.NoError(t, store.WriteGPGID(path, []string{"alice@example.com", "bob@example.com"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com\nbob@example.com", string(data))
}

func TestRecipientsForWalksUpward(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "email", "work")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, store.WriteGPGID(filepath.Join(root, store.GPGIDFilename), []string{"root@example.com"}))

	ids, err := store.RecipientsFor(root, filepath.Join(sub, "secret.gpg"))
	require.NoError(t, err)
	assert.Equal(t, []string{"root@example.com"}, ids)

	require.NoError(t, store.WriteGPGID(filepath.Join(root, "email", store.GPGIDFilename), []string{"email@example.com"}))
	ids, err = store.RecipientsFor(root, filepath.Join(sub, "secret.gpg"))
	require.NoError(t, err)
	assert.Equal(t, []string{"email@example.com"}, ids)
}

func TestRecipientsForNoneFound(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "email"), 0o755))

	_, err := store.RecipientsFor(root, filepath.Join(root, "email", "secret.gpg"))
	require.Error(t, err)
	assert.Equal(t, store.KindNoRecipients, store.KindOf(err))
}

func TestSameRecipientSet(t *testing.T) {
	assert.True(t, store.SameRecipientSet([]string{"a", "b"}, []string{"b", "a"}))
	assert.False(t, store.SameRecipientSet([]string{"a"}, []string{"a", "b"}))
}
