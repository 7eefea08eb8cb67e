package ops_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowDirectoryRendersTree(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "email"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "email", "work.gpg"), []byte("x"), 0o644))

	c, _, _ := newTestContext(t, root)
	result, err := c.Show("")
	require.NoError(t, err)
	assert.True(t, result.IsDir)
	assert.Contains(t, result.Tree, "Password Store")
	assert.Contains(t, result.Tree, "email")
	assert.Contains(t, result.Tree, "work")
	assert.NotContains(t, result.Tree, "work.gpg")
}

func TestShowMissingEntryFails(t *testing.T) {
	root := t.TempDir()
	c, _, _ := newTestContext(t, root)
	_, err := c.Show("nonexistent")
	require.Error(t, err)
}
