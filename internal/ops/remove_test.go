package ops_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kennycyb/pars/internal/ops"
	"github.com/kennycyb/pars/internal/store"
)

func TestRemoveDirectoryWithoutRecursiveFails(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "email"), 0o755))

	c, _, _ := newTestContext(t, root)
	err := c.Remove("email", ops.RemoveOptions{})
	require.Error(t, err)
	assert.Equal(t, store.KindIsDirectory, store.KindOf(err))
}
